package service

import (
	"context"
	"fmt"
	"time"

	"pricewatch/internal/dto"
	"pricewatch/internal/infra"
)

// ExportService renders the comparison matrix and the audit history as
// downloadable documents. The renderers are pure functions over the same
// projections the JSON endpoints serve; empty data still yields a valid
// document (headers and summary, no rows).
type ExportService interface {
	ComparisonPDF(ctx context.Context) (*dto.ExportFile, error)
	ComparisonExcel(ctx context.Context) (*dto.ExportFile, error)
	HistoryPDF(ctx context.Context, days *int) (*dto.ExportFile, error)
	HistoryExcel(ctx context.Context, days *int) (*dto.ExportFile, error)
}

type exportService struct {
	comparison ComparisonService
}

func NewExportService(comparison ComparisonService) ExportService {
	return &exportService{comparison: comparison}
}

const (
	pdfContentType  = "application/pdf"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

func (s *exportService) ComparisonPDF(ctx context.Context) (*dto.ExportFile, error) {
	now := time.Now()
	data, err := infra.RenderComparisonPDF(s.comparison.Matrix(ctx), s.comparison.Competitors(ctx), now)
	if err != nil {
		return nil, fmt.Errorf("render comparison pdf: %w", err)
	}
	return &dto.ExportFile{
		Filename:    fmt.Sprintf("comparacao-precos-%s.pdf", now.Format("2006-01-02")),
		ContentType: pdfContentType,
		Data:        data,
	}, nil
}

func (s *exportService) ComparisonExcel(ctx context.Context) (*dto.ExportFile, error) {
	now := time.Now()
	data, err := infra.RenderComparisonExcel(s.comparison.Matrix(ctx), s.comparison.Competitors(ctx), now)
	if err != nil {
		return nil, fmt.Errorf("render comparison excel: %w", err)
	}
	return &dto.ExportFile{
		Filename:    fmt.Sprintf("comparacao-precos-%s.xlsx", now.Format("2006-01-02")),
		ContentType: xlsxContentType,
		Data:        data,
	}, nil
}

func (s *exportService) HistoryPDF(ctx context.Context, days *int) (*dto.ExportFile, error) {
	now := time.Now()
	entries := s.comparison.History(ctx, dto.HistoryFilter{Days: days})
	data, err := infra.RenderHistoryPDF(entries, now)
	if err != nil {
		return nil, fmt.Errorf("render history pdf: %w", err)
	}
	return &dto.ExportFile{
		Filename:    fmt.Sprintf("historico-precos-%s.pdf", now.Format("2006-01-02")),
		ContentType: pdfContentType,
		Data:        data,
	}, nil
}

func (s *exportService) HistoryExcel(ctx context.Context, days *int) (*dto.ExportFile, error) {
	now := time.Now()
	entries := s.comparison.History(ctx, dto.HistoryFilter{Days: days})
	data, err := infra.RenderHistoryExcel(entries, now)
	if err != nil {
		return nil, fmt.Errorf("render history excel: %w", err)
	}
	return &dto.ExportFile{
		Filename:    fmt.Sprintf("historico-precos-%s.xlsx", now.Format("2006-01-02")),
		ContentType: xlsxContentType,
		Data:        data,
	}, nil
}
