package pgsql

import (
	"context"
	"fmt"

	portsrepo "github.com/guibecker772/advisor-control/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxUnitOfWork binds a pgx transaction to the context handed to fn.
type PgxUnitOfWork struct {
	BaseRepository
}

func newPgxUnitOfWork(pool *pgxpool.Pool) *PgxUnitOfWork {
	return &PgxUnitOfWork{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UnitOfWork = (*PgxUnitOfWork)(nil)

// RunInTx runs fn in a transaction. Nested calls join the outer transaction.
func (u *PgxUnitOfWork) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := u.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			_ = u.Rollback(ctx, tx)
			panic(p)
		}
		if err != nil {
			if rbErr := u.Rollback(ctx, tx); rbErr != nil {
				err = fmt.Errorf("%w (rollback: %v)", err, rbErr)
			}
		}
	}()

	if err = fn(withTx(ctx, tx)); err != nil {
		return err
	}
	return u.Commit(ctx, tx)
}
