package ledger

import (
	"testing"

	"github.com/guibecker772/advisor-control/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInferDirection(t *testing.T) {
	tests := []struct {
		name      string
		entryType string
		value     string
		want      domain.Direction
	}{
		{"net inflow", "captacao_liquida", "100", domain.DirectionIn},
		{"xp transfer", "transferencia_xp", "250", domain.DirectionIn},
		{"redemption", "Resgate", "100", domain.DirectionOut},
		{"outgoing transfer", "transferencia saida", "100", domain.DirectionOut},
		{"negative value", "captacao_liquida", "-100", domain.DirectionOut},
		{"blank type", "", "1", domain.DirectionIn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferDirection(tt.entryType, decimal.RequireFromString(tt.value)))
		})
	}
}

func TestParseDirection(t *testing.T) {
	assert.Equal(t, domain.DirectionOut, ParseDirection("Saída", "captacao_liquida", decimal.NewFromInt(1)))
	assert.Equal(t, domain.DirectionIn, ParseDirection("entrada", "resgate", decimal.NewFromInt(1)))
	assert.Equal(t, domain.DirectionOut, ParseDirection("", "resgate", decimal.NewFromInt(1)))
}

func TestNormalizeType(t *testing.T) {
	assert.Equal(t, domain.LancamentoCaptacaoLiquida, NormalizeType(""))
	assert.Equal(t, domain.LancamentoTransferenciaXP, NormalizeType(" Transferência XP "))
}

func TestSummarize_ExcludesPreviousMonthBoundary(t *testing.T) {
	entries := []domain.CaptacaoLancamento{
		{Date: "2025-12-31", Direction: domain.DirectionIn, Value: decimal.NewFromInt(999)},
		{Date: "2026-01-01", Direction: domain.DirectionIn, Value: decimal.NewFromInt(100)},
		{Date: "2026-01-15", Direction: domain.DirectionOut, Value: decimal.NewFromInt(30)},
		{Date: "2026-01-31", Direction: domain.DirectionIn, Value: decimal.NewFromInt(50)},
		{Date: "2026-02-01", Direction: domain.DirectionIn, Value: decimal.NewFromInt(7)},
	}

	got := Summarize(entries, 2026, 1)

	assert.Equal(t, 3, got.Count)
	assert.True(t, got.Entradas.Equal(decimal.NewFromInt(150)), got.Entradas.String())
	assert.True(t, got.Saidas.Equal(decimal.NewFromInt(30)), got.Saidas.String())
	assert.True(t, got.Liquido.Equal(decimal.NewFromInt(120)), got.Liquido.String())
}

func TestSummarize_Empty(t *testing.T) {
	got := Summarize(nil, 2026, 2)
	assert.Zero(t, got.Count)
	assert.True(t, got.Liquido.IsZero())
}
