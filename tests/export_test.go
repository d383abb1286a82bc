package tests

import (
	"bytes"
	"context"
	"testing"
	"time"

	"pricewatch/internal/dto"
	"pricewatch/internal/infra"
	"pricewatch/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubComparison feeds canned matrix/history data into the export service.
type stubComparison struct {
	rows        []dto.ComparisonRow
	entries     []dto.HistoryEntry
	competitors []dto.CompetitorResponse
	lastFilter  dto.HistoryFilter
}

func (s *stubComparison) Matrix(context.Context) []dto.ComparisonRow { return s.rows }
func (s *stubComparison) History(_ context.Context, f dto.HistoryFilter) []dto.HistoryEntry {
	s.lastFilter = f
	return s.entries
}
func (s *stubComparison) AverageByProduct(context.Context, uint) *string { return nil }
func (s *stubComparison) Competitors(context.Context) []dto.CompetitorResponse {
	return s.competitors
}

var _ service.ComparisonService = (*stubComparison)(nil)

func sampleComparisonData() ([]dto.ComparisonRow, []dto.CompetitorResponse) {
	now := time.Now()
	competitors := []dto.CompetitorResponse{
		{ID: 1, Name: "Dinho", Code: "DINHO"},
		{ID: 2, Name: "Adega Brasil", Code: "ADEGA_BRASIL"},
		{ID: 3, Name: "Franco", Code: "FRANCO"},
		{ID: 4, Name: "Diversos", Code: "DIVERSOS"},
	}
	rows := []dto.ComparisonRow{
		{
			ID: 1, Name: "Smirnoff Ice", Average: "12.70", LastUpdated: &now,
			CompetitorPrices: map[string]*dto.ComparisonCell{
				"DINHO":        {PriceID: 1, Value: mustDecimal("11.90"), UpdatedAt: now},
				"ADEGA_BRASIL": {PriceID: 2, Value: mustDecimal("13.50"), UpdatedAt: now},
				"FRANCO":       nil,
				"DIVERSOS":     nil,
			},
		},
		{
			ID: 2, Name: "Produto Sem Preço", Average: "0.00",
			CompetitorPrices: map[string]*dto.ComparisonCell{
				"DINHO": nil, "ADEGA_BRASIL": nil, "FRANCO": nil, "DIVERSOS": nil,
			},
		},
	}
	return rows, competitors
}

func sampleHistoryEntries() []dto.HistoryEntry {
	now := time.Now()
	prev := mustDecimal("12.90")
	newV := mustDecimal("11.90")
	return []dto.HistoryEntry{
		{ID: 3, ProductName: "Smirnoff Ice", CompetitorName: "Dinho",
			PreviousValue: &prev, NewValue: &newV, ChangeType: "updated", ChangedAt: now},
		{ID: 2, ProductName: "Smirnoff Ice", CompetitorName: "Dinho",
			PreviousValue: &prev, ChangeType: "deleted", ChangedAt: now.Add(-time.Hour)},
		{ID: 1, ProductName: "", CompetitorName: "Dinho",
			NewValue: &newV, ChangeType: "created", ChangedAt: now.Add(-2 * time.Hour)},
	}
}

func TestRenderComparisonPDF(t *testing.T) {
	rows, competitors := sampleComparisonData()

	data, err := infra.RenderComparisonPDF(rows, competitors, time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	// empty matrix still renders a valid document
	data, err = infra.RenderComparisonPDF(nil, competitors, time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRenderHistoryPDF(t *testing.T) {
	data, err := infra.RenderHistoryPDF(sampleHistoryEntries(), time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	data, err = infra.RenderHistoryPDF(nil, time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRenderComparisonExcel(t *testing.T) {
	rows, competitors := sampleComparisonData()

	data, err := infra.RenderComparisonExcel(rows, competitors, time.Now())
	require.NoError(t, err)
	// xlsx is a zip container
	assert.True(t, bytes.HasPrefix(data, []byte("PK")))
}

func TestRenderHistoryExcel(t *testing.T) {
	data, err := infra.RenderHistoryExcel(sampleHistoryEntries(), time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("PK")))
}

func TestExportService_FilenamesAndContentTypes(t *testing.T) {
	rows, competitors := sampleComparisonData()
	stub := &stubComparison{rows: rows, entries: sampleHistoryEntries(), competitors: competitors}
	svc := service.NewExportService(stub)
	ctx := context.Background()
	today := time.Now().Format("2006-01-02")

	file, err := svc.ComparisonPDF(ctx)
	require.NoError(t, err)
	assert.Equal(t, "comparacao-precos-"+today+".pdf", file.Filename)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.NotEmpty(t, file.Data)

	file, err = svc.ComparisonExcel(ctx)
	require.NoError(t, err)
	assert.Equal(t, "comparacao-precos-"+today+".xlsx", file.Filename)

	days := 30
	file, err = svc.HistoryPDF(ctx, &days)
	require.NoError(t, err)
	assert.Equal(t, "historico-precos-"+today+".pdf", file.Filename)
	require.NotNil(t, stub.lastFilter.Days)
	assert.Equal(t, 30, *stub.lastFilter.Days)

	file, err = svc.HistoryExcel(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "historico-precos-"+today+".xlsx", file.Filename)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		file.ContentType)
}
