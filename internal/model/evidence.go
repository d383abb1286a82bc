package model

import "time"

// Evidence is an attachment (photo, document) linked to a client. The file
// itself lives in object storage; this row keeps the metadata.
type Evidence struct {
	ID          uint    `gorm:"primaryKey"`
	ClientID    uint    `gorm:"not null;index"`
	FileURL     string  `gorm:"type:text;not null"`
	FileName    string  `gorm:"size:255;not null"`
	FileType    string  `gorm:"size:50;not null"`
	FileSize    int64   `gorm:"not null"`
	Description *string `gorm:"type:text"`
	UploadedAt  time.Time `gorm:"autoCreateTime;index"`

	Client Client `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
}

func (Evidence) TableName() string { return "evidence" }
