package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Direction says whether a ledger entry brings money in or takes it out.
type Direction string

const (
	DirectionIn  Direction = "entrada"
	DirectionOut Direction = "saida"
)

// Opposite returns the inverse direction.
func (d Direction) Opposite() Direction {
	if d == DirectionOut {
		return DirectionIn
	}
	return DirectionOut
}

// Ledger entry types.
const (
	LancamentoCaptacaoLiquida  = "captacao_liquida"
	LancamentoTransferenciaXP  = "transferencia_xp"
	LancamentoResgate          = "resgate"
	LancamentoTransferenciaOut = "transferencia_saida"
)

// Idempotency key prefixes used by automated writers.
const (
	SourceRefProspectConversion = "prospect_conversion"
	SourceRefProspectReversal   = "prospect_conversion_reversal"
)

// ProspectConversionRef is the sourceRef of the entry created when a prospect is won.
func ProspectConversionRef(prospectID string) string {
	return fmt.Sprintf("%s:%s", SourceRefProspectConversion, prospectID)
}

// ProspectReversalRef is the sourceRef of the entry offsetting a conversion.
func ProspectReversalRef(prospectID string) string {
	return fmt.Sprintf("%s:%s", SourceRefProspectReversal, prospectID)
}

// CaptacaoLancamento is a capital inflow/outflow ledger entry.
// Value is always non-negative; Direction carries the sign.
type CaptacaoLancamento struct {
	LancamentoID string          `json:"id"`
	OwnerID      string          `json:"ownerId"`
	ClientID     string          `json:"clientId,omitempty"`
	ClientName   string          `json:"clientName,omitempty"`
	Date         string          `json:"data"` // YYYY-MM-DD
	Month        int             `json:"mes"`
	Year         int             `json:"ano"`
	Direction    Direction       `json:"direcao"`
	Type         string          `json:"tipo"`
	Value        decimal.Decimal `json:"valor"`
	Origin       string          `json:"origem,omitempty"`
	Description  string          `json:"descricao,omitempty"`
	SourceRef    string          `json:"sourceRef,omitempty"`
	AuditFields
}

// SignedValue returns Value with the sign implied by Direction.
func (l CaptacaoLancamento) SignedValue() decimal.Decimal {
	if l.Direction == DirectionOut {
		return l.Value.Neg()
	}
	return l.Value
}

// IsAutomated reports whether the entry is owned by an automated writer.
func (l CaptacaoLancamento) IsAutomated() bool {
	return l.SourceRef != ""
}

// CaptacaoSummary aggregates entries of one month.
type CaptacaoSummary struct {
	Year     int             `json:"ano"`
	Month    int             `json:"mes"`
	Entradas decimal.Decimal `json:"entradas"`
	Saidas   decimal.Decimal `json:"saidas"`
	Liquido  decimal.Decimal `json:"liquido"`
	Count    int             `json:"count"`
}

// LancamentoFilter narrows ledger listings.
type LancamentoFilter struct {
	Year  int
	Month int
}
