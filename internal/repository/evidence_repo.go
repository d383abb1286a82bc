package repository

import (
	"context"

	"pricewatch/internal/model"

	"gorm.io/gorm"
)

type EvidenceRepository interface {
	Create(ctx context.Context, e *model.Evidence) error
	FindByID(ctx context.Context, id uint) (*model.Evidence, error)
	ListByClient(ctx context.Context, clientID uint) ([]model.Evidence, error)
	Delete(ctx context.Context, id uint) error
}

type evidenceRepo struct{ db *gorm.DB }

func NewEvidenceRepository(db *gorm.DB) EvidenceRepository { return &evidenceRepo{db: db} }

func (r *evidenceRepo) Create(ctx context.Context, e *model.Evidence) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *evidenceRepo) FindByID(ctx context.Context, id uint) (*model.Evidence, error) {
	var e model.Evidence
	err := r.db.WithContext(ctx).First(&e, id).Error
	return &e, err
}

func (r *evidenceRepo) ListByClient(ctx context.Context, clientID uint) ([]model.Evidence, error) {
	var rows []model.Evidence
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("uploaded_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *evidenceRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Evidence{}, id).Error
}
