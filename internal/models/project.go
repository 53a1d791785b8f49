package models

import "time"

// Project is downstream data owned by an account; only the deletion
// cascade cares about it.
type Project struct {
	ID        uint      `gorm:"primaryKey"`
	AccountID uint      `gorm:"index;not null"`
	Name      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// ProjectAverage stores per-profile aggregate scores over projects.
type ProjectAverage struct {
	ID        uint      `gorm:"primaryKey"`
	ProfileID uint      `gorm:"index;not null"`
	Metric    string    `gorm:"not null"`
	Value     float64   `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"not null"`
}
