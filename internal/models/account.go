package models

import "time"

// Account is the sole identity record. Email is stored exactly as submitted
// and acts as the primary lookup key; PublicID is what session tokens carry.
type Account struct {
	ID           uint       `gorm:"primaryKey"`
	PublicID     string     `gorm:"uniqueIndex;not null"`
	Email        string     `gorm:"uniqueIndex;not null"`
	FirstName    string     `gorm:"not null"`
	LastName     string     `gorm:"not null;default:''"`
	PasswordHash string     `gorm:"not null;default:''"`
	IsVerified   bool       `gorm:"not null;default:false"`
	OTPCode      *string
	OTPExpiresAt *time.Time
	CreatedAt    time.Time  `gorm:"not null"`
}

// HasCredential reports whether password login is possible at all.
// Federation-only accounts carry an empty hash and must never pass it.
func (account Account) HasCredential() bool {
	return account.PasswordHash != ""
}
