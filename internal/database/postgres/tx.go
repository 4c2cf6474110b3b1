package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/BrandishEconomy_Go/internal/repository"
)

// Tx wraps a pgx transaction and implements every transaction-scoped
// repository contract, so one handle can serve player, inventory and
// daily bonus operations inside the same unit of work.
type Tx struct {
	tx pgx.Tx
}

var (
	_ repository.PlayerTx    = (*Tx)(nil)
	_ repository.InventoryTx = (*Tx)(nil)
	_ repository.DailyTx     = (*Tx)(nil)
)

func beginTx(ctx context.Context, db *pgxpool.Pool) (*Tx, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &Tx{tx: tx}, nil
}

// Commit commits the transaction
func (t *Tx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *Tx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
