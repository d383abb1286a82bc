package repository

import (
	"context"

	"pricewatch/internal/model"

	"gorm.io/gorm"
)

type SKURepository interface {
	Create(ctx context.Context, s *model.SKU) error
	FindByID(ctx context.Context, id uint) (*model.SKU, error)
	ListByClient(ctx context.Context, clientID uint) ([]model.SKU, error)
	Delete(ctx context.Context, id uint) error
}

type skuRepo struct{ db *gorm.DB }

func NewSKURepository(db *gorm.DB) SKURepository { return &skuRepo{db: db} }

func (r *skuRepo) Create(ctx context.Context, s *model.SKU) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *skuRepo) FindByID(ctx context.Context, id uint) (*model.SKU, error) {
	var s model.SKU
	err := r.db.WithContext(ctx).First(&s, id).Error
	return &s, err
}

func (r *skuRepo) ListByClient(ctx context.Context, clientID uint) ([]model.SKU, error) {
	var skus []model.SKU
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("display_order ASC").
		Find(&skus).Error
	return skus, err
}

func (r *skuRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.SKU{}, id).Error
}
