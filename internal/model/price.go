package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Price is the single current value for one (product, competitor) pair.
// The composite unique index guarantees at most one row per pair; the FKs
// cascade so deleting a product or competitor removes its current prices
// (history rows are retained, see PriceHistory).
type Price struct {
	ID           uint            `gorm:"primaryKey"`
	ProductID    uint            `gorm:"not null;uniqueIndex:idx_price_product_competitor;index"`
	CompetitorID uint            `gorm:"not null;uniqueIndex:idx_price_product_competitor;index"`
	Value        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	RegisteredBy uint            `gorm:"not null"`
	RegisteredAt time.Time       `gorm:"autoCreateTime"`
	UpdatedAt    time.Time

	Product    Product    `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Competitor Competitor `gorm:"foreignKey:CompetitorID;constraint:OnDelete:CASCADE"`
}
