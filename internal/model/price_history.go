package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Change types recorded in the audit trail.
const (
	ChangeCreated = "created"
	ChangeUpdated = "updated"
	ChangeDeleted = "deleted"
)

// PriceHistory registra cada alteração de preço. Rows are immutable — never
// updated or deleted once written. ProductID/CompetitorID are plain columns
// without a cascading FK so the audit trail survives entity deletion.
//
// PreviousValue is null for "created" entries; NewValue is null for "deleted"
// entries. Consumers must branch on ChangeType, never on the values alone.
type PriceHistory struct {
	ID            uint             `gorm:"primaryKey"`
	ProductID     uint             `gorm:"not null;index"`
	CompetitorID  uint             `gorm:"not null;index"`
	PreviousValue *decimal.Decimal `gorm:"type:decimal(10,2)"`
	NewValue      *decimal.Decimal `gorm:"type:decimal(10,2)"`
	ChangedBy     uint             `gorm:"not null"`
	ChangeType    string           `gorm:"size:10;not null"` // created | updated | deleted
	ChangedAt     time.Time        `gorm:"autoCreateTime;index"`
}
