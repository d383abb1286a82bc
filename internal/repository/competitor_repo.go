package repository

import (
	"context"

	"pricewatch/internal/model"

	"gorm.io/gorm"
)

type CompetitorRepository interface {
	FindByID(ctx context.Context, id uint) (*model.Competitor, error)
	// List returns the fixed population in seed order (Dinho, Adega Brasil,
	// Franco, Diversos) — the column order of the matrix and the reports.
	List(ctx context.Context) ([]model.Competitor, error)
}

type competitorRepo struct{ db *gorm.DB }

func NewCompetitorRepository(db *gorm.DB) CompetitorRepository {
	return &competitorRepo{db: db}
}

func (r *competitorRepo) FindByID(ctx context.Context, id uint) (*model.Competitor, error) {
	var c model.Competitor
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *competitorRepo) List(ctx context.Context) ([]model.Competitor, error) {
	var competitors []model.Competitor
	err := r.db.WithContext(ctx).Order("id ASC").Find(&competitors).Error
	return competitors, err
}
