package model

import "time"

// SKU is one of a client's main items. Clients keep up to 10 — a UI rule,
// not enforced by the store.
type SKU struct {
	ID           uint    `gorm:"primaryKey"`
	ClientID     uint    `gorm:"not null;index"`
	Code         string  `gorm:"size:100;index;not null"`
	Name         string  `gorm:"size:255;not null"`
	Description  *string `gorm:"type:text"`
	DisplayOrder int     `gorm:"column:display_order;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Client Client `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
}

func (SKU) TableName() string { return "skus" }
