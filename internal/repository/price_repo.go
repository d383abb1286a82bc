package repository

import (
	"context"
	"time"

	"pricewatch/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PriceRepository is the data access contract for current prices. The Tx
// methods run inside the mutation service's transaction — callers must pass
// the tx instance so the history write and the price write commit together.
type PriceRepository interface {
	FindByID(ctx context.Context, id uint) (*model.Price, error)
	ListByProduct(ctx context.Context, productID uint) ([]model.Price, error)
	ListAll(ctx context.Context) ([]model.Price, error)

	FindByPairTx(tx *gorm.DB, productID, competitorID uint) (*model.Price, error)
	CreateTx(tx *gorm.DB, p *model.Price) error
	UpdateValueTx(tx *gorm.DB, id uint, value decimal.Decimal, registeredBy uint) error
	DeleteTx(tx *gorm.DB, id uint) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type priceRepo struct{ db *gorm.DB }

func NewPriceRepository(db *gorm.DB) PriceRepository { return &priceRepo{db: db} }

func (r *priceRepo) FindByID(ctx context.Context, id uint) (*model.Price, error) {
	var p model.Price
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *priceRepo) ListByProduct(ctx context.Context, productID uint) ([]model.Price, error) {
	var prices []model.Price
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Preload("Competitor").
		Order("competitor_id ASC").
		Find(&prices).Error
	return prices, err
}

func (r *priceRepo) ListAll(ctx context.Context) ([]model.Price, error) {
	var prices []model.Price
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Competitor").
		Order("product_id ASC, competitor_id ASC").
		Find(&prices).Error
	return prices, err
}

func (r *priceRepo) FindByPairTx(tx *gorm.DB, productID, competitorID uint) (*model.Price, error) {
	var p model.Price
	err := tx.Where("product_id = ? AND competitor_id = ?", productID, competitorID).First(&p).Error
	return &p, err
}

func (r *priceRepo) CreateTx(tx *gorm.DB, p *model.Price) error {
	return tx.Create(p).Error
}

func (r *priceRepo) UpdateValueTx(tx *gorm.DB, id uint, value decimal.Decimal, registeredBy uint) error {
	return tx.Model(&model.Price{}).Where("id = ?", id).Updates(map[string]interface{}{
		"value":         value,
		"registered_by": registeredBy,
		"updated_at":    time.Now(),
	}).Error
}

func (r *priceRepo) DeleteTx(tx *gorm.DB, id uint) error {
	return tx.Delete(&model.Price{}, id).Error
}

func (r *priceRepo) DB() *gorm.DB { return r.db }
