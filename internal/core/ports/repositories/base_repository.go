package repositories

import "context"

// UnitOfWork runs fn inside one database transaction. Repository calls made
// with the ctx handed to fn join that transaction; fn returning an error rolls
// everything back.
type UnitOfWork interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
