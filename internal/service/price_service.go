package service

import (
	"context"
	"errors"
	"regexp"

	"pricewatch/internal/dto"
	"pricewatch/internal/model"
	"pricewatch/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Non-negative decimal with at most two fractional digits, e.g. "12.90".
var priceValuePattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// PriceService is the mutation side of price tracking: every write to the
// prices table produces exactly one price_histories row, committed in the
// same transaction so a failure between the two steps cannot split them.
type PriceService interface {
	Register(ctx context.Context, req dto.RegisterPriceRequest, userID uint) error
	Delete(ctx context.Context, priceID uint) error
	ListByProduct(ctx context.Context, productID uint) ([]dto.PriceResponse, error)
	ListAll(ctx context.Context) ([]dto.PriceResponse, error)
}

type priceService struct {
	prices      repository.PriceRepository
	history     repository.PriceHistoryRepository
	products    repository.ProductRepository
	competitors repository.CompetitorRepository
}

func NewPriceService(
	prices repository.PriceRepository,
	history repository.PriceHistoryRepository,
	products repository.ProductRepository,
	competitors repository.CompetitorRepository,
) PriceService {
	return &priceService{
		prices:      prices,
		history:     history,
		products:    products,
		competitors: competitors,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// Register upserts the current price for a (product, competitor) pair.
// Update path: the history row captures the previous value BEFORE the price
// row is overwritten. Create path: price row first, then the history row.
func (s *priceService) Register(ctx context.Context, req dto.RegisterPriceRequest, userID uint) error {
	if !priceValuePattern.MatchString(req.Value) {
		return ErrInvalidValue
	}
	value, err := decimal.NewFromString(req.Value)
	if err != nil {
		return ErrInvalidValue
	}

	if _, err := s.products.FindByID(ctx, req.ProductID); err != nil {
		return translate(err)
	}
	if _, err := s.competitors.FindByID(ctx, req.CompetitorID); err != nil {
		return translate(err)
	}

	return runTx(ctx, s.prices.DB(), func(tx *gorm.DB) error {
		existing, err := s.prices.FindByPairTx(tx, req.ProductID, req.CompetitorID)
		switch {
		case err == nil:
			prev := existing.Value
			h := &model.PriceHistory{
				ProductID:     req.ProductID,
				CompetitorID:  req.CompetitorID,
				PreviousValue: &prev,
				NewValue:      &value,
				ChangedBy:     userID,
				ChangeType:    model.ChangeUpdated,
			}
			if err := s.history.CreateTx(tx, h); err != nil {
				return err
			}
			return s.prices.UpdateValueTx(tx, existing.ID, value, userID)

		case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, ErrNotFound):
			p := &model.Price{
				ProductID:    req.ProductID,
				CompetitorID: req.CompetitorID,
				Value:        value,
				RegisteredBy: userID,
			}
			if err := s.prices.CreateTx(tx, p); err != nil {
				return err
			}
			return s.history.CreateTx(tx, &model.PriceHistory{
				ProductID:    req.ProductID,
				CompetitorID: req.CompetitorID,
				NewValue:     &value,
				ChangedBy:    userID,
				ChangeType:   model.ChangeCreated,
			})

		default:
			return err
		}
	})
}

// Delete appends the "deleted" audit row (NewValue left null — the row's
// change type marks the deletion, not a sentinel value) and then removes the
// current price, in one transaction.
func (s *priceService) Delete(ctx context.Context, priceID uint) error {
	price, err := s.prices.FindByID(ctx, priceID)
	if err != nil {
		return translate(err)
	}

	return runTx(ctx, s.prices.DB(), func(tx *gorm.DB) error {
		prev := price.Value
		h := &model.PriceHistory{
			ProductID:     price.ProductID,
			CompetitorID:  price.CompetitorID,
			PreviousValue: &prev,
			ChangedBy:     price.RegisteredBy,
			ChangeType:    model.ChangeDeleted,
		}
		if err := s.history.CreateTx(tx, h); err != nil {
			return err
		}
		return s.prices.DeleteTx(tx, price.ID)
	})
}

func (s *priceService) ListByProduct(ctx context.Context, productID uint) ([]dto.PriceResponse, error) {
	prices, err := s.prices.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return pricesToResponses(prices), nil
}

func (s *priceService) ListAll(ctx context.Context) ([]dto.PriceResponse, error) {
	prices, err := s.prices.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return pricesToResponses(prices), nil
}

func pricesToResponses(prices []model.Price) []dto.PriceResponse {
	out := make([]dto.PriceResponse, 0, len(prices))
	for _, p := range prices {
		out = append(out, dto.PriceResponse{
			ID:             p.ID,
			ProductID:      p.ProductID,
			ProductName:    p.Product.Name,
			CompetitorID:   p.CompetitorID,
			CompetitorName: p.Competitor.Name,
			Value:          p.Value,
			RegisteredBy:   p.RegisteredBy,
			RegisteredAt:   p.RegisteredAt,
			UpdatedAt:      p.UpdatedAt,
		})
	}
	return out
}
