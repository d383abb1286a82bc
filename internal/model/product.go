package model

import "time"

// Product is one item whose competitor prices are tracked.
type Product struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:255;uniqueIndex;not null"`
	Description *string `gorm:"type:text"`
	Category    *string `gorm:"size:100;index"`
	CreatedBy   uint    `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
