package tests

import (
	"context"
	"testing"

	"pricewatch/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrix_SingleProductScenario(t *testing.T) {
	priceSvc, priceRepo, historyRepo, productRepo := buildPriceSvc()
	comparisonSvc := buildComparisonSvc(productRepo, priceRepo, historyRepo)
	ctx := context.Background()

	p := seedProduct(productRepo, "Smirnoff Ice")

	// 12.90 at Dinho: row average equals the single price
	require.NoError(t, priceSvc.Register(ctx, dto.RegisterPriceRequest{
		ProductID: p.ID, CompetitorID: 1, Value: "12.90",
	}, 1))

	rows := comparisonSvc.Matrix(ctx)
	require.Len(t, rows, 1)
	assert.Equal(t, "12.90", rows[0].Average)
	require.NotNil(t, rows[0].CompetitorPrices["DINHO"])
	assert.True(t, rows[0].CompetitorPrices["DINHO"].Value.Equal(mustDecimal("12.90")))
	assert.Nil(t, rows[0].CompetitorPrices["ADEGA_BRASIL"])
	assert.Nil(t, rows[0].CompetitorPrices["FRANCO"])
	assert.Nil(t, rows[0].CompetitorPrices["DIVERSOS"])
	assert.NotNil(t, rows[0].LastUpdated)

	// 13.50 at Adega Brasil: average becomes (12.90+13.50)/2 = 13.20
	require.NoError(t, priceSvc.Register(ctx, dto.RegisterPriceRequest{
		ProductID: p.ID, CompetitorID: 2, Value: "13.50",
	}, 1))

	rows = comparisonSvc.Matrix(ctx)
	require.Len(t, rows, 1)
	assert.Equal(t, "13.20", rows[0].Average)

	// Dinho corrected to 11.90: average (11.90+13.50)/2 = 12.70, 3 audit rows
	require.NoError(t, priceSvc.Register(ctx, dto.RegisterPriceRequest{
		ProductID: p.ID, CompetitorID: 1, Value: "11.90",
	}, 1))

	rows = comparisonSvc.Matrix(ctx)
	require.Len(t, rows, 1)
	assert.Equal(t, "12.70", rows[0].Average)
	assert.Len(t, historyRepo.rows, 3)
}

func TestMatrix_AverageRoundsToTwoDecimals(t *testing.T) {
	priceSvc, priceRepo, historyRepo, productRepo := buildPriceSvc()
	comparisonSvc := buildComparisonSvc(productRepo, priceRepo, historyRepo)
	ctx := context.Background()

	p := seedProduct(productRepo, "Original 600ml")
	for i, v := range []string{"10.00", "11.00", "10.50"} {
		require.NoError(t, priceSvc.Register(ctx, dto.RegisterPriceRequest{
			ProductID: p.ID, CompetitorID: uint(i + 1), Value: v,
		}, 1))
	}

	rows := comparisonSvc.Matrix(ctx)
	require.Len(t, rows, 1)
	assert.Equal(t, "10.50", rows[0].Average)
}

func TestMatrix_ProductWithoutPrices(t *testing.T) {
	_, priceRepo, historyRepo, productRepo := buildPriceSvc()
	comparisonSvc := buildComparisonSvc(productRepo, priceRepo, historyRepo)

	seedProduct(productRepo, "Produto Novo")

	rows := comparisonSvc.Matrix(context.Background())
	require.Len(t, rows, 1)
	assert.Equal(t, "0.00", rows[0].Average)
	assert.Nil(t, rows[0].LastUpdated)
	for _, code := range []string{"DINHO", "ADEGA_BRASIL", "FRANCO", "DIVERSOS"} {
		cell, present := rows[0].CompetitorPrices[code]
		assert.True(t, present, "cell for %s must exist", code)
		assert.Nil(t, cell)
	}
}

func TestMatrix_OrderedByProductName(t *testing.T) {
	_, priceRepo, historyRepo, productRepo := buildPriceSvc()
	comparisonSvc := buildComparisonSvc(productRepo, priceRepo, historyRepo)

	seedProduct(productRepo, "Zero Coca 2L")
	seedProduct(productRepo, "Agua Mineral")

	rows := comparisonSvc.Matrix(context.Background())
	require.Len(t, rows, 2)
	assert.Equal(t, "Agua Mineral", rows[0].Name)
	assert.Equal(t, "Zero Coca 2L", rows[1].Name)
}

func TestMatrix_DegradesToEmptyWhenStoreDown(t *testing.T) {
	_, priceRepo, historyRepo, productRepo := buildPriceSvc()
	comparisonSvc := buildComparisonSvc(productRepo, priceRepo, historyRepo)

	seedProduct(productRepo, "Qualquer")
	productRepo.fail = true

	rows := comparisonSvc.Matrix(context.Background())
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestAverageByProduct(t *testing.T) {
	priceSvc, priceRepo, historyRepo, productRepo := buildPriceSvc()
	comparisonSvc := buildComparisonSvc(productRepo, priceRepo, historyRepo)
	ctx := context.Background()

	p := seedProduct(productRepo, "Vinho Tinto")

	assert.Nil(t, comparisonSvc.AverageByProduct(ctx, p.ID))

	require.NoError(t, priceSvc.Register(ctx, dto.RegisterPriceRequest{
		ProductID: p.ID, CompetitorID: 1, Value: "30.00",
	}, 1))
	require.NoError(t, priceSvc.Register(ctx, dto.RegisterPriceRequest{
		ProductID: p.ID, CompetitorID: 4, Value: "35.01",
	}, 1))

	avg := comparisonSvc.AverageByProduct(ctx, p.ID)
	require.NotNil(t, avg)
	assert.Equal(t, "32.51", *avg)
}

func TestCompetitors_FixedSeedOrder(t *testing.T) {
	_, priceRepo, historyRepo, productRepo := buildPriceSvc()
	comparisonSvc := buildComparisonSvc(productRepo, priceRepo, historyRepo)

	competitors := comparisonSvc.Competitors(context.Background())
	require.Len(t, competitors, 4)
	assert.Equal(t, "Dinho", competitors[0].Name)
	assert.Equal(t, "Adega Brasil", competitors[1].Name)
	assert.Equal(t, "Franco", competitors[2].Name)
	assert.Equal(t, "Diversos", competitors[3].Name)
}
