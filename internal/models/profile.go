package models

import "time"

// Profile holds optional display data owned by one account.
type Profile struct {
	ID        uint      `gorm:"primaryKey"`
	AccountID uint      `gorm:"uniqueIndex;not null"`
	Headline  string    `gorm:"not null;default:''"`
	Bio       string    `gorm:"not null;default:''"`
	CreatedAt time.Time `gorm:"not null"`
}
