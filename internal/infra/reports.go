package infra

import (
	"strings"

	"pricewatch/internal/dto"

	"github.com/shopspring/decimal"
)

// Shared bits between the PDF and Excel renderers.

const reportBrand = "Adega Mufs"

// formatBRL renders a decimal as Brazilian currency ("R$ 12,90").
func formatBRL(d decimal.Decimal) string {
	return "R$ " + strings.Replace(d.StringFixed(2), ".", ",", 1)
}

// cellText renders one matrix cell, "-" when no price is registered.
func cellText(cell *dto.ComparisonCell) string {
	if cell == nil {
		return "-"
	}
	return formatBRL(cell.Value)
}

// changeTypeLabel localizes the audit change kind.
func changeTypeLabel(changeType string) string {
	switch changeType {
	case "created":
		return "Criado"
	case "updated":
		return "Atualizado"
	case "deleted":
		return "Removido"
	default:
		return changeType
	}
}

// historyValueText renders previous/new values; deletion entries have no new
// value (null), which renders as "-" same as a missing previous value.
func historyValueText(v *decimal.Decimal) string {
	if v == nil {
		return "-"
	}
	return formatBRL(*v)
}

func textOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// averageText parses the matrix's 2-decimal average string back into BRL
// formatting for the documents.
func averageText(average string) string {
	d, err := decimal.NewFromString(average)
	if err != nil {
		return "-"
	}
	return formatBRL(d)
}
