package domain_test

import (
	"testing"

	"github.com/guibecker772/advisor-control/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCaptacaoLancamento_SignedValue(t *testing.T) {
	in := domain.CaptacaoLancamento{Direction: domain.DirectionIn, Value: decimal.NewFromInt(100)}
	out := domain.CaptacaoLancamento{Direction: domain.DirectionOut, Value: decimal.NewFromInt(100)}
	assert.True(t, in.SignedValue().Equal(decimal.NewFromInt(100)))
	assert.True(t, out.SignedValue().Equal(decimal.NewFromInt(-100)))
}

func TestDirection_Opposite(t *testing.T) {
	assert.Equal(t, domain.DirectionOut, domain.DirectionIn.Opposite())
	assert.Equal(t, domain.DirectionIn, domain.DirectionOut.Opposite())
}

func TestSourceRefs(t *testing.T) {
	assert.Equal(t, "prospect_conversion:p-1", domain.ProspectConversionRef("p-1"))
	assert.Equal(t, "prospect_conversion_reversal:p-1", domain.ProspectReversalRef("p-1"))
}

func TestProspect_IsWon(t *testing.T) {
	for _, s := range []string{"won", "Ganho", " GANHO ", "closedWon", "closed_won"} {
		assert.True(t, domain.IsWonStatus(s), s)
	}
	for _, s := range []string{"", "perdido", "proposta", "closed won", "ganhou"} {
		assert.False(t, domain.IsWonStatus(s), s)
	}
}

func TestProspect_ConversionGaps(t *testing.T) {
	p := domain.Prospect{Status: "ganho"}
	assert.Len(t, p.ConversionGaps(), 2)

	p.RealizedValue = decimal.NewFromInt(100)
	p.RealizedDate = "2026-01-10"
	assert.Empty(t, p.ConversionGaps())
}
