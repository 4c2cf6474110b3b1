package repository

import (
	"context"
	"fmt"
)

// Tx is the commit/rollback half of every transaction handle
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// WithTx begins a transaction, runs fn inside it and commits.
// Any error returned by fn leaves the transaction to the deferred rollback.
func WithTx[T Tx](ctx context.Context, begin func(context.Context) (T, error), fn func(T) error) error {
	tx, err := begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTx, err)
	}
	defer SafeRollback(ctx, tx)

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTx, err)
	}
	return nil
}
