package service

import (
	"context"

	"pricewatch/internal/dto"
	"pricewatch/internal/model"
	"pricewatch/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ComparisonService is the read side: the per-product comparison matrix, the
// filtered audit history and per-product averages. Everything is recomputed
// on every call — prices mutate independently of when the matrix is read, so
// there is no cache to go stale.
//
// Reads degrade to empty results when the store is unreachable (the UI
// renders an empty state); only mutations surface store failures.
type ComparisonService interface {
	Matrix(ctx context.Context) []dto.ComparisonRow
	History(ctx context.Context, filter dto.HistoryFilter) []dto.HistoryEntry
	AverageByProduct(ctx context.Context, productID uint) *string
	Competitors(ctx context.Context) []dto.CompetitorResponse
}

type comparisonService struct {
	products    repository.ProductRepository
	competitors repository.CompetitorRepository
	prices      repository.PriceRepository
	history     repository.PriceHistoryRepository
}

func NewComparisonService(
	products repository.ProductRepository,
	competitors repository.CompetitorRepository,
	prices repository.PriceRepository,
	history repository.PriceHistoryRepository,
) ComparisonService {
	return &comparisonService{
		products:    products,
		competitors: competitors,
		prices:      prices,
		history:     history,
	}
}

// Matrix joins products × competitors × current prices into one row per
// product, ordered by product name. Cells without a registered price are nil;
// the average covers only the competitors that have one.
func (s *comparisonService) Matrix(ctx context.Context) []dto.ComparisonRow {
	products, err := s.products.List(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("comparison matrix: products unavailable, returning empty")
		return []dto.ComparisonRow{}
	}
	competitors, err := s.competitors.List(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("comparison matrix: competitors unavailable, returning empty")
		return []dto.ComparisonRow{}
	}
	prices, err := s.prices.ListAll(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("comparison matrix: prices unavailable, returning empty")
		return []dto.ComparisonRow{}
	}

	byProduct := make(map[uint]map[uint]*model.Price, len(products))
	for i := range prices {
		p := &prices[i]
		if byProduct[p.ProductID] == nil {
			byProduct[p.ProductID] = make(map[uint]*model.Price, len(competitors))
		}
		byProduct[p.ProductID][p.CompetitorID] = p
	}

	rows := make([]dto.ComparisonRow, 0, len(products))
	for _, product := range products {
		row := dto.ComparisonRow{
			ID:               product.ID,
			Name:             product.Name,
			Category:         product.Category,
			CompetitorPrices: make(map[string]*dto.ComparisonCell, len(competitors)),
		}

		sum := decimal.Zero
		count := 0
		for _, competitor := range competitors {
			price := byProduct[product.ID][competitor.ID]
			if price == nil {
				row.CompetitorPrices[competitor.Code] = nil
				continue
			}
			row.CompetitorPrices[competitor.Code] = &dto.ComparisonCell{
				PriceID:   price.ID,
				Value:     price.Value,
				UpdatedAt: price.UpdatedAt,
			}
			sum = sum.Add(price.Value)
			count++
			if row.LastUpdated == nil || price.UpdatedAt.After(*row.LastUpdated) {
				t := price.UpdatedAt
				row.LastUpdated = &t
			}
		}

		if count > 0 {
			row.Average = sum.Div(decimal.NewFromInt(int64(count))).StringFixed(2)
		} else {
			row.Average = "0.00"
		}
		rows = append(rows, row)
	}
	return rows
}

// History returns the audit trail newest-first, restricted by the optional
// conjunctive filters.
func (s *comparisonService) History(ctx context.Context, filter dto.HistoryFilter) []dto.HistoryEntry {
	entries, err := s.history.List(ctx, filter)
	if err != nil {
		log.Warn().Err(err).Msg("price history unavailable, returning empty")
		return []dto.HistoryEntry{}
	}
	if entries == nil {
		entries = []dto.HistoryEntry{}
	}
	return entries
}

// AverageByProduct returns the mean of the product's current prices with two
// decimals, or nil when the product has no prices (or the store is down).
func (s *comparisonService) AverageByProduct(ctx context.Context, productID uint) *string {
	prices, err := s.prices.ListByProduct(ctx, productID)
	if err != nil {
		log.Warn().Err(err).Uint("product_id", productID).Msg("average unavailable")
		return nil
	}
	if len(prices) == 0 {
		return nil
	}

	sum := decimal.Zero
	for _, p := range prices {
		sum = sum.Add(p.Value)
	}
	avg := sum.Div(decimal.NewFromInt(int64(len(prices)))).StringFixed(2)
	return &avg
}

func (s *comparisonService) Competitors(ctx context.Context) []dto.CompetitorResponse {
	competitors, err := s.competitors.List(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("competitors unavailable, returning empty")
		return []dto.CompetitorResponse{}
	}
	out := make([]dto.CompetitorResponse, 0, len(competitors))
	for _, c := range competitors {
		out = append(out, dto.CompetitorResponse{ID: c.ID, Name: c.Name, Code: c.Code})
	}
	return out
}
