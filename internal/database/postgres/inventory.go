package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/BrandishEconomy_Go/internal/domain"
	"github.com/osse101/BrandishEconomy_Go/internal/repository"
)

// InventoryRepository implements repository.Inventory for PostgreSQL
type InventoryRepository struct {
	db *pgxpool.Pool
}

var _ repository.Inventory = (*InventoryRepository)(nil)

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// BeginTx starts a new transaction
func (r *InventoryRepository) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	return beginTx(ctx, r.db)
}

// InventoryExists reports whether the player's inventory container exists
func (t *Tx) InventoryExists(ctx context.Context, playerID int) (bool, error) {
	exists, err := queryExists(ctx, t.tx, queryInventoryExists, playerID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCheckInventory, err)
	}
	return exists, nil
}

// ItemExists reports whether the item is in the catalog
func (t *Tx) ItemExists(ctx context.Context, itemID int) (bool, error) {
	exists, err := queryExists(ctx, t.tx, queryItemExists, itemID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCheckItem, err)
	}
	return exists, nil
}

// GetInventoryEntries lists every line the player holds, joined with the catalog
func (t *Tx) GetInventoryEntries(ctx context.Context, playerID int) ([]domain.InventoryEntry, error) {
	rows, err := t.tx.Query(ctx, queryGetInventoryEntries, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}
	defer rows.Close()

	entries := make([]domain.InventoryEntry, 0)
	for rows.Next() {
		var e domain.InventoryEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.Count); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}
	return entries, nil
}

// GetInventoryEntry returns a single line, nil when the player holds none
func (t *Tx) GetInventoryEntry(ctx context.Context, playerID, itemID int) (*domain.InventoryEntry, error) {
	var e domain.InventoryEntry
	err := t.tx.QueryRow(ctx, queryGetInventoryEntry, playerID, itemID).Scan(&e.ID, &e.Name, &e.Description, &e.Count)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventoryEntry, err)
	}
	return &e, nil
}

// GetItemCountForUpdate reads and locks a line
func (t *Tx) GetItemCountForUpdate(ctx context.Context, playerID, itemID int) (int, bool, error) {
	count, found, err := queryInt64(ctx, t.tx, queryGetItemCountForUpdate, playerID, itemID)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", ErrMsgFailedToLockInventoryLine, err)
	}
	return int(count), found, nil
}

// IncrementItem creates the line with delta or adds delta to it atomically
func (t *Tx) IncrementItem(ctx context.Context, playerID, itemID, delta int) error {
	if _, err := t.tx.Exec(ctx, queryIncrementItem, playerID, itemID, delta); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToIncrementItem, err)
	}
	return nil
}

// UpdateItemCount adds delta to an existing line
func (t *Tx) UpdateItemCount(ctx context.Context, playerID, itemID, delta int) error {
	found, err := execAffected(ctx, t.tx, queryUpdateItemCount, playerID, itemID, delta)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateItemCount, err)
	}
	if !found {
		return errors.New(ErrMsgInventoryLineVanished)
	}
	return nil
}

// DeleteInventoryLine removes a line entirely
func (t *Tx) DeleteInventoryLine(ctx context.Context, playerID, itemID int) error {
	found, err := execAffected(ctx, t.tx, queryDeleteInventoryLine, playerID, itemID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteInventoryLine, err)
	}
	if !found {
		return errors.New(ErrMsgInventoryLineVanished)
	}
	return nil
}
