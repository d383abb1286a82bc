package repository

import (
	"context"
	"fmt"
	"time"

	"pricewatch/internal/dto"
	"pricewatch/internal/model"

	"gorm.io/gorm"
)

// PriceHistoryRepository appends to and reads the immutable audit trail.
// There is deliberately no Update or Delete — history rows are never touched
// once written.
type PriceHistoryRepository interface {
	CreateTx(tx *gorm.DB, h *model.PriceHistory) error
	List(ctx context.Context, filter dto.HistoryFilter) ([]dto.HistoryEntry, error)
}

type priceHistoryRepo struct{ db *gorm.DB }

func NewPriceHistoryRepository(db *gorm.DB) PriceHistoryRepository {
	return &priceHistoryRepo{db: db}
}

func (r *priceHistoryRepo) CreateTx(tx *gorm.DB, h *model.PriceHistory) error {
	return tx.Create(h).Error
}

// List returns audit entries newest-first. Filters are conjunctive and all
// optional. Product and competitor names come from a LEFT JOIN so entries
// referencing deleted entities still appear (with blank names).
func (r *priceHistoryRepo) List(ctx context.Context, filter dto.HistoryFilter) ([]dto.HistoryEntry, error) {
	q := r.db.WithContext(ctx).
		Table("price_histories AS ph").
		Select(`ph.id, ph.product_id, COALESCE(p.name, '') AS product_name,
			ph.competitor_id, COALESCE(c.name, '') AS competitor_name,
			ph.previous_value, ph.new_value, ph.changed_by, ph.change_type, ph.changed_at`).
		Joins("LEFT JOIN products p ON p.id = ph.product_id").
		Joins("LEFT JOIN competitors c ON c.id = ph.competitor_id")

	if filter.ProductID != nil {
		q = q.Where("ph.product_id = ?", *filter.ProductID)
	}
	if filter.CompetitorID != nil {
		q = q.Where("ph.competitor_id = ?", *filter.CompetitorID)
	}
	if filter.Days != nil {
		cutoff := time.Now().Add(-time.Duration(*filter.Days) * 24 * time.Hour)
		q = q.Where("ph.changed_at >= ?", cutoff)
	}

	var entries []dto.HistoryEntry
	if err := q.Order("ph.changed_at DESC").Scan(&entries).Error; err != nil {
		return nil, fmt.Errorf("list price history: %w", err)
	}
	return entries, nil
}
