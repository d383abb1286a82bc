package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// HistoryFilter narrows the audit trail. All fields are optional and
// conjunctive; the zero filter returns the complete history.
type HistoryFilter struct {
	ProductID    *uint
	CompetitorID *uint
	Days         *int
}

// HistoryEntry is one immutable audit record, joined with the product and
// competitor names (blank when the referenced entity was deleted — history
// rows outlive the entities they point at).
type HistoryEntry struct {
	ID             uint             `json:"id"`
	ProductID      uint             `json:"product_id"`
	ProductName    string           `json:"product_name"`
	CompetitorID   uint             `json:"competitor_id"`
	CompetitorName string           `json:"competitor_name"`
	PreviousValue  *decimal.Decimal `json:"previous_value"`
	NewValue       *decimal.Decimal `json:"new_value"`
	ChangedBy      uint             `json:"changed_by"`
	ChangeType     string           `json:"change_type"`
	ChangedAt      time.Time        `json:"changed_at"`
}
