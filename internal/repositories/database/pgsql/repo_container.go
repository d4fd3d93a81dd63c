package pgsql

import (
	portsrepo "github.com/guibecker772/advisor-control/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ClientRepo:   newPgxClientRepository(dbPool),
		ProspectRepo: newPgxProspectRepository(dbPool),
		CaptacaoRepo: newPgxCaptacaoRepository(dbPool),
		OfferRepo:    newPgxOfferRepository(dbPool),
		UnitOfWork:   newPgxUnitOfWork(dbPool),
	}
}
