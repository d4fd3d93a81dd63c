package repositories

import (
	"context"

	"github.com/guibecker772/advisor-control/internal/core/domain"
)

// CaptacaoReader defines read operations for ledger entries
type CaptacaoReader interface {
	// FindLancamentoByID retrieves an entry of ownerID.
	FindLancamentoByID(ctx context.Context, ownerID, lancamentoID string) (*domain.CaptacaoLancamento, error)

	// FindLancamentoBySourceRef retrieves the entry an automated writer keyed by sourceRef.
	FindLancamentoBySourceRef(ctx context.Context, ownerID, sourceRef string) (*domain.CaptacaoLancamento, error)

	// ListLancamentos retrieves a page of entries, newest first, and the token of the next page.
	ListLancamentos(ctx context.Context, ownerID string, filter domain.LancamentoFilter, limit int, nextToken *string) ([]domain.CaptacaoLancamento, *string, error)

	// ListLancamentosBetween retrieves entries dated in [from, to), dates as YYYY-MM-DD.
	ListLancamentosBetween(ctx context.Context, ownerID, from, to string) ([]domain.CaptacaoLancamento, error)
}

// CaptacaoWriter defines write operations for ledger entries
type CaptacaoWriter interface {
	SaveLancamento(ctx context.Context, lancamento domain.CaptacaoLancamento) error
	UpdateLancamento(ctx context.Context, lancamento domain.CaptacaoLancamento, expectedVersion int64) error
	DeleteLancamento(ctx context.Context, ownerID, lancamentoID string) error

	// UpsertLancamentoBySourceRef inserts the entry or overwrites the one holding the
	// same (owner, sourceRef) and returns the stored row.
	UpsertLancamentoBySourceRef(ctx context.Context, lancamento domain.CaptacaoLancamento) (*domain.CaptacaoLancamento, error)

	// DeleteLancamentoBySourceRef removes the entry keyed by sourceRef, if any.
	DeleteLancamentoBySourceRef(ctx context.Context, ownerID, sourceRef string) error
}

// CaptacaoRepositoryFacade combines all ledger-related repository interfaces
type CaptacaoRepositoryFacade interface {
	CaptacaoReader
	CaptacaoWriter
}
