package model

import "time"

// Competitor is one of the four monitored stores. The population is fixed
// seed data (Dinho, Adega Brasil, Franco, Diversos) and is never created,
// edited or deleted through the API.
type Competitor struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;uniqueIndex;not null"`
	Code      string `gorm:"size:20;uniqueIndex;not null"`
	CreatedAt time.Time
}
