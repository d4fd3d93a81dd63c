// Package ledger holds the arithmetic of captação ledger entries.
package ledger

import (
	"strings"

	"github.com/guibecker772/advisor-control/internal/core/domain"
	"github.com/guibecker772/advisor-control/internal/utils/dates"
	"github.com/guibecker772/advisor-control/internal/utils/textnorm"
	"github.com/shopspring/decimal"
)

var outflowTypes = []string{
	domain.LancamentoResgate,
	domain.LancamentoTransferenciaOut,
	"saida",
	"retirada",
}

// NormalizeType folds an entry type into its stored key, defaulting to captacao_liquida.
func NormalizeType(entryType string) string {
	t := strings.ReplaceAll(textnorm.Fold(entryType), " ", "_")
	if t == "" {
		return domain.LancamentoCaptacaoLiquida
	}
	return t
}

// InferDirection derives the direction of an entry from its type and the sign of value.
func InferDirection(entryType string, value decimal.Decimal) domain.Direction {
	if value.IsNegative() {
		return domain.DirectionOut
	}
	if textnorm.In(NormalizeType(entryType), outflowTypes...) {
		return domain.DirectionOut
	}
	return domain.DirectionIn
}

// ParseDirection reads an explicit direction, falling back to inference when blank.
func ParseDirection(raw, entryType string, value decimal.Decimal) domain.Direction {
	switch textnorm.Fold(raw) {
	case "entrada", "in":
		return domain.DirectionIn
	case "saida", "out":
		return domain.DirectionOut
	}
	return InferDirection(entryType, value)
}

// Summarize sums the entries dated inside [first day of month, first day of next month).
func Summarize(entries []domain.CaptacaoLancamento, year, month int) domain.CaptacaoSummary {
	summary := domain.CaptacaoSummary{
		Year:     year,
		Month:    month,
		Entradas: decimal.Zero,
		Saidas:   decimal.Zero,
		Liquido:  decimal.Zero,
	}
	for _, e := range entries {
		if !dates.InMonth(e.Date, year, month) {
			continue
		}
		summary.Count++
		if e.Direction == domain.DirectionOut {
			summary.Saidas = summary.Saidas.Add(e.Value.Abs())
		} else {
			summary.Entradas = summary.Entradas.Add(e.Value.Abs())
		}
	}
	summary.Liquido = summary.Entradas.Sub(summary.Saidas)
	return summary
}
