package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// RegisterPriceRequest carries a price as a decimal string; the service
// validates the `^\d+(\.\d{1,2})?$` format before parsing.
type RegisterPriceRequest struct {
	ProductID    uint   `json:"product_id" validate:"required"`
	CompetitorID uint   `json:"competitor_id" validate:"required"`
	Value        string `json:"value" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PriceResponse struct {
	ID             uint            `json:"id"`
	ProductID      uint            `json:"product_id"`
	ProductName    string          `json:"product_name,omitempty"`
	CompetitorID   uint            `json:"competitor_id"`
	CompetitorName string          `json:"competitor_name"`
	Value          decimal.Decimal `json:"value"`
	RegisteredBy   uint            `json:"registered_by"`
	RegisteredAt   time.Time       `json:"registered_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ComparisonCell is one (product, competitor) cell of the matrix. A nil cell
// in ComparisonRow.CompetitorPrices means no current price is registered.
type ComparisonCell struct {
	PriceID   uint            `json:"price_id"`
	Value     decimal.Decimal `json:"value"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ComparisonRow is the derived per-product row: one cell per competitor
// (keyed by competitor code), the mean of the present values rendered with
// two decimals ("0.00" when no competitor has a price) and the most recent
// price update (null when no prices exist).
type ComparisonRow struct {
	ID               uint                       `json:"id"`
	Name             string                     `json:"name"`
	Category         *string                    `json:"category"`
	Average          string                     `json:"average"`
	LastUpdated      *time.Time                 `json:"last_updated"`
	CompetitorPrices map[string]*ComparisonCell `json:"competitor_prices"`
}

// ExportFile is a rendered report ready for download.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}
