package model

import "time"

// Client is a registered customer of the shop, keyed by its unique code.
// Creation is get-or-create on code: the first registered name wins.
type Client struct {
	ID          uint    `gorm:"primaryKey"`
	Code        string  `gorm:"size:50;uniqueIndex;not null"`
	Name        string  `gorm:"size:255;index;not null"`
	Description *string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
