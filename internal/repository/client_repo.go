package repository

import (
	"context"

	"pricewatch/internal/model"

	"gorm.io/gorm"
)

type ClientRepository interface {
	Create(ctx context.Context, c *model.Client) error
	FindByID(ctx context.Context, id uint) (*model.Client, error)
	FindByCode(ctx context.Context, code string) (*model.Client, error)
	List(ctx context.Context) ([]model.Client, error)
}

type clientRepo struct{ db *gorm.DB }

func NewClientRepository(db *gorm.DB) ClientRepository { return &clientRepo{db: db} }

func (r *clientRepo) Create(ctx context.Context, c *model.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clientRepo) FindByID(ctx context.Context, id uint) (*model.Client, error) {
	var c model.Client
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *clientRepo) FindByCode(ctx context.Context, code string) (*model.Client, error) {
	var c model.Client
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&c).Error
	return &c, err
}

func (r *clientRepo) List(ctx context.Context) ([]model.Client, error) {
	var clients []model.Client
	err := r.db.WithContext(ctx).Order("name ASC").Find(&clients).Error
	return clients, err
}
