package model

import "time"

// User is the acting identity recorded on every price mutation.
// Login is local email+password; the demo admin is created by cmd/seed.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"size:320;uniqueIndex;not null"`
	Name         string `gorm:"size:255;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"size:20;not null;default:'user'"` // user | admin
	LastSignedIn time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
