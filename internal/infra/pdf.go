package infra

// pdf.go — report rendering with go-pdf/fpdf.
// Two fixed-layout tabular documents:
//   - comparison: one row per product, one column per competitor, plus the
//     average and the last update date
//   - history: one row per audit entry, newest first
// Both render a valid document for empty input (title + summary, no rows).

import (
	"bytes"
	"fmt"
	"time"

	"pricewatch/internal/dto"

	"github.com/go-pdf/fpdf"
)

// RenderComparisonPDF lays the comparison matrix out on landscape A4.
func RenderComparisonPDF(rows []dto.ComparisonRow, competitors []dto.CompetitorResponse, generatedAt time.Time) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	contentW := pageW - 20

	reportHeader(pdf, tr, "Relatório de Comparação de Preços", generatedAt)

	// Executive summary: overall mean of the per-product averages
	overall := "-"
	if len(rows) > 0 {
		sum := 0.0
		for _, r := range rows {
			var v float64
			fmt.Sscanf(r.Average, "%f", &v)
			sum += v
		}
		overall = fmt.Sprintf("R$ %.2f", sum/float64(len(rows)))
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 5, tr("Resumo Executivo"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, tr(fmt.Sprintf("Total de Produtos: %d", len(rows))), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, tr(fmt.Sprintf("Preço Médio Geral: %s", overall)), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	// Column layout: product name wide, competitors even, average + date
	nameW := contentW * 0.22
	avgW := contentW * 0.10
	dateW := contentW * 0.14
	compW := 0.0
	if len(competitors) > 0 {
		compW = (contentW - nameW - avgW - dateW) / float64(len(competitors))
	}

	drawHeader := func() {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.CellFormat(nameW, 6, tr("Produto"), "B", 0, "L", false, 0, "")
		for _, c := range competitors {
			pdf.CellFormat(compW, 6, tr(c.Name), "B", 0, "C", false, 0, "")
		}
		pdf.CellFormat(avgW, 6, tr("Média"), "B", 0, "C", false, 0, "")
		pdf.CellFormat(dateW, 6, tr("Última Atualização"), "B", 1, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 8)
	}
	drawHeader()

	for _, row := range rows {
		if pdf.GetY() > pageH-20 {
			pdf.AddPage()
			drawHeader()
		}
		pdf.CellFormat(nameW, 6, tr(truncate(row.Name, 40)), "", 0, "L", false, 0, "")
		for _, c := range competitors {
			pdf.CellFormat(compW, 6, tr(cellText(row.CompetitorPrices[c.Code])), "", 0, "C", false, 0, "")
		}
		pdf.CellFormat(avgW, 6, tr(averageText(row.Average)), "", 0, "C", false, 0, "")
		last := "-"
		if row.LastUpdated != nil {
			last = row.LastUpdated.Format("02/01/2006")
		}
		pdf.CellFormat(dateW, 6, last, "", 1, "C", false, 0, "")
	}

	reportFooter(pdf, tr, pageH)
	return pdfBytes(pdf)
}

// RenderHistoryPDF lays the audit trail out on portrait A4, newest first.
func RenderHistoryPDF(entries []dto.HistoryEntry, generatedAt time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	contentW := pageW - 20

	reportHeader(pdf, tr, "Relatório de Histórico de Preços", generatedAt)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 5, tr("Resumo Executivo"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, tr(fmt.Sprintf("Total de Alterações: %d", len(entries))), "", 1, "L", false, 0, "")
	if len(entries) > 0 {
		period := fmt.Sprintf("Período: %s a %s",
			entries[len(entries)-1].ChangedAt.Format("02/01/2006"),
			entries[0].ChangedAt.Format("02/01/2006"))
		pdf.CellFormat(contentW, 5, tr(period), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	widths := []float64{
		contentW * 0.23, // Produto
		contentW * 0.17, // Concorrente
		contentW * 0.12, // Tipo
		contentW * 0.14, // Valor Anterior
		contentW * 0.14, // Novo Valor
		contentW * 0.20, // Data e Hora
	}
	headers := []string{"Produto", "Concorrente", "Tipo", "Valor Anterior", "Novo Valor", "Data e Hora"}

	drawHeader := func() {
		pdf.SetFont("Helvetica", "B", 8)
		for i, h := range headers {
			align := "C"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 6, tr(h), "B", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 8)
	}
	drawHeader()

	for _, e := range entries {
		if pdf.GetY() > pageH-20 {
			pdf.AddPage()
			drawHeader()
		}
		pdf.CellFormat(widths[0], 6, tr(truncate(textOrDash(e.ProductName), 32)), "", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, tr(textOrDash(e.CompetitorName)), "", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], 6, tr(changeTypeLabel(e.ChangeType)), "", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 6, tr(historyValueText(e.PreviousValue)), "", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], 6, tr(historyValueText(e.NewValue)), "", 0, "C", false, 0, "")
		pdf.CellFormat(widths[5], 6, e.ChangedAt.Format("02/01/2006 15:04:05"), "", 1, "C", false, 0, "")
	}

	reportFooter(pdf, tr, pageH)
	return pdfBytes(pdf)
}

func reportHeader(pdf *fpdf.Fpdf, tr func(string) string, title string, generatedAt time.Time) {
	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 8, reportBrand, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW, 7, tr(title), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	stamp := fmt.Sprintf("Gerado em: %s às %s", generatedAt.Format("02/01/2006"), generatedAt.Format("15:04:05"))
	pdf.CellFormat(contentW, 5, tr(stamp), "", 1, "C", false, 0, "")
	pdf.Ln(3)
}

func reportFooter(pdf *fpdf.Fpdf, tr func(string) string, pageH float64) {
	pdf.SetY(pageH - 12)
	pdf.SetFont("Helvetica", "I", 7)
	pageW, _ := pdf.GetPageSize()
	pdf.CellFormat(pageW-20, 4, tr("Relatório confidencial - "+reportBrand), "", 1, "C", false, 0, "")
}

func pdfBytes(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
