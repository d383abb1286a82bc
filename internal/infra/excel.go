package infra

// excel.go — spreadsheet rendering with excelize. Mirrors the PDF layout:
// title block, executive summary, then the data table.

import (
	"fmt"
	"time"

	"pricewatch/internal/dto"

	"github.com/xuri/excelize/v2"
)

// RenderComparisonExcel writes the comparison matrix to a single-sheet xlsx.
func RenderComparisonExcel(rows []dto.ComparisonRow, competitors []dto.CompetitorResponse, generatedAt time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Comparação"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

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

	data := [][]interface{}{
		{reportBrand + " - Relatório de Comparação de Preços"},
		{fmt.Sprintf("Gerado em: %s às %s", generatedAt.Format("02/01/2006"), generatedAt.Format("15:04:05"))},
		{},
		{"Resumo Executivo"},
		{"Total de Produtos", len(rows)},
		{"Preço Médio Geral", overall},
		{},
	}

	header := []interface{}{"Produto"}
	for _, c := range competitors {
		header = append(header, c.Name)
	}
	header = append(header, "Média", "Última Atualização")
	data = append(data, header)

	for _, row := range rows {
		r := []interface{}{row.Name}
		for _, c := range competitors {
			r = append(r, cellText(row.CompetitorPrices[c.Code]))
		}
		last := "-"
		if row.LastUpdated != nil {
			last = row.LastUpdated.Format("02/01/2006")
		}
		r = append(r, averageText(row.Average), last)
		data = append(data, r)
	}

	if err := writeRows(f, sheet, data); err != nil {
		return nil, err
	}

	_ = f.SetColWidth(sheet, "A", "A", 28)
	lastCol, _ := excelize.ColumnNumberToName(len(header))
	_ = f.SetColWidth(sheet, "B", lastCol, 17)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderHistoryExcel writes the audit trail to a single-sheet xlsx, newest
// first (the order the entries arrive in).
func RenderHistoryExcel(entries []dto.HistoryEntry, generatedAt time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Histórico"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	data := [][]interface{}{
		{reportBrand + " - Relatório de Histórico de Preços"},
		{fmt.Sprintf("Gerado em: %s às %s", generatedAt.Format("02/01/2006"), generatedAt.Format("15:04:05"))},
		{},
		{"Resumo Executivo"},
		{"Total de Alterações", len(entries)},
	}
	if len(entries) > 0 {
		data = append(data, []interface{}{
			"Período",
			fmt.Sprintf("%s a %s",
				entries[len(entries)-1].ChangedAt.Format("02/01/2006"),
				entries[0].ChangedAt.Format("02/01/2006")),
		})
	}
	data = append(data,
		[]interface{}{},
		[]interface{}{"Produto", "Concorrente", "Tipo de Alteração", "Valor Anterior", "Novo Valor", "Data e Hora"},
	)

	for _, e := range entries {
		data = append(data, []interface{}{
			textOrDash(e.ProductName),
			textOrDash(e.CompetitorName),
			changeTypeLabel(e.ChangeType),
			historyValueText(e.PreviousValue),
			historyValueText(e.NewValue),
			e.ChangedAt.Format("02/01/2006 15:04"),
		})
	}

	if err := writeRows(f, sheet, data); err != nil {
		return nil, err
	}

	_ = f.SetColWidth(sheet, "A", "A", 28)
	_ = f.SetColWidth(sheet, "B", "F", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, data [][]interface{}) error {
	for i, row := range data {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
