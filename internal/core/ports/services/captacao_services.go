package services

import (
	"context"

	"github.com/guibecker772/advisor-control/internal/core/domain"
	"github.com/guibecker772/advisor-control/internal/dto"
)

// CaptacaoReaderSvc defines read operations for ledger entries
type CaptacaoReaderSvc interface {
	GetLancamentoByID(ctx context.Context, ownerID, lancamentoID string) (*domain.CaptacaoLancamento, error)
	ListLancamentos(ctx context.Context, ownerID string, params dto.ListLancamentosParams) (*dto.ListLancamentosResponse, error)

	// GetMonthlySummary sums the entries dated inside the month.
	GetMonthlySummary(ctx context.Context, ownerID string, year, month int) (domain.CaptacaoSummary, error)
}

// CaptacaoWriterSvc defines write operations for manual ledger entries
type CaptacaoWriterSvc interface {
	CreateLancamento(ctx context.Context, ownerID string, req dto.LancamentoRequest) (*domain.CaptacaoLancamento, error)
	UpdateLancamento(ctx context.Context, ownerID, lancamentoID string, req dto.LancamentoRequest) (*domain.CaptacaoLancamento, error)
	DeleteLancamento(ctx context.Context, ownerID, lancamentoID string) error
}

// CaptacaoTransferSvc moves ledger entries in and out of spreadsheets.
type CaptacaoTransferSvc interface {
	// ExportXLSX renders the entries of ownerID between two YYYY-MM months, inclusive.
	ExportXLSX(ctx context.Context, callerID, ownerID, fromMonth, toMonth string) ([]byte, error)

	// ImportLancamentos guards the import route; importing is not supported.
	ImportLancamentos(ctx context.Context, callerID, ownerID string) error
}

// CaptacaoSvcFacade combines all ledger-related service interfaces
type CaptacaoSvcFacade interface {
	CaptacaoReaderSvc
	CaptacaoWriterSvc
	CaptacaoTransferSvc
}
