package dto

import (
	"time"

	"github.com/guibecker772/advisor-control/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LancamentoRequest creates or replaces a manual ledger entry. A negative
// value or an outflow type makes it a saída when Direction is omitted.
type LancamentoRequest struct {
	ClientID    string          `json:"clientId"`
	ClientName  string          `json:"clientName"`
	Date        string          `json:"data" binding:"required,isodate"`
	Direction   string          `json:"direcao" binding:"omitempty,oneof=entrada saida"`
	Type        string          `json:"tipo"`
	Value       decimal.Decimal `json:"valor"`
	Origin      string          `json:"origem"`
	Description string          `json:"descricao"`
	Version     *int64          `json:"version"`
}

// ListLancamentosParams defines query parameters for listing ledger entries.
type ListLancamentosParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=200"`
	NextToken *string `form:"nextToken"`
	Year      int     `form:"ano" binding:"omitempty,min=1900,max=9999"`
	Month     int     `form:"mes" binding:"omitempty,min=1,max=12"`
}

// SummaryParams selects the month of a captação summary.
type SummaryParams struct {
	Year  int `form:"ano" binding:"required,min=1900,max=9999"`
	Month int `form:"mes" binding:"required,min=1,max=12"`
}

// ExportParams selects the owner and the month range of an export.
type ExportParams struct {
	OwnerID string `form:"ownerId"`
	From    string `form:"from" binding:"required,yyyymm"`
	To      string `form:"to" binding:"required,yyyymm"`
}

// LancamentoResponse defines the data returned for a ledger entry.
type LancamentoResponse struct {
	LancamentoID  string           `json:"id"`
	ClientID      string           `json:"clientId,omitempty"`
	ClientName    string           `json:"clientName,omitempty"`
	Date          string           `json:"data"`
	Month         int              `json:"mes"`
	Year          int              `json:"ano"`
	Direction     domain.Direction `json:"direcao"`
	Type          string           `json:"tipo"`
	Value         decimal.Decimal  `json:"valor"`
	SignedValue   decimal.Decimal  `json:"valorAssinado"`
	Origin        string           `json:"origem,omitempty"`
	Description   string           `json:"descricao,omitempty"`
	SourceRef     string           `json:"sourceRef,omitempty"`
	Version       int64            `json:"version"`
	CreatedAt     time.Time        `json:"createdAt"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
}

// ListLancamentosResponse is one page of ledger entries.
type ListLancamentosResponse struct {
	Lancamentos []LancamentoResponse `json:"lancamentos"`
	NextToken   *string              `json:"nextToken,omitempty"`
}

// CaptacaoSummaryResponse is the monthly aggregation of ledger entries.
type CaptacaoSummaryResponse struct {
	Year     int             `json:"ano"`
	Month    int             `json:"mes"`
	Entradas decimal.Decimal `json:"entradas"`
	Saidas   decimal.Decimal `json:"saidas"`
	Liquido  decimal.Decimal `json:"liquido"`
	Count    int             `json:"count"`
}

// ToLancamentoResponse converts a domain entry to LancamentoResponse DTO
func ToLancamentoResponse(l *domain.CaptacaoLancamento) LancamentoResponse {
	return LancamentoResponse{
		LancamentoID:  l.LancamentoID,
		ClientID:      l.ClientID,
		ClientName:    l.ClientName,
		Date:          l.Date,
		Month:         l.Month,
		Year:          l.Year,
		Direction:     l.Direction,
		Type:          l.Type,
		Value:         l.Value,
		SignedValue:   l.SignedValue(),
		Origin:        l.Origin,
		Description:   l.Description,
		SourceRef:     l.SourceRef,
		Version:       l.Version,
		CreatedAt:     l.CreatedAt,
		LastUpdatedAt: l.LastUpdatedAt,
	}
}

// ToListLancamentoResponse converts a slice of entries to LancamentoResponse DTOs
func ToListLancamentoResponse(list []domain.CaptacaoLancamento) []LancamentoResponse {
	res := make([]LancamentoResponse, len(list))
	for i := range list {
		res[i] = ToLancamentoResponse(&list[i])
	}
	return res
}

// ToCaptacaoSummaryResponse converts a domain summary to its response DTO
func ToCaptacaoSummaryResponse(s domain.CaptacaoSummary) CaptacaoSummaryResponse {
	return CaptacaoSummaryResponse{
		Year:     s.Year,
		Month:    s.Month,
		Entradas: s.Entradas,
		Saidas:   s.Saidas,
		Liquido:  s.Liquido,
		Count:    s.Count,
	}
}
