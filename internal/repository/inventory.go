package repository

import (
	"context"

	"github.com/osse101/BrandishEconomy_Go/internal/domain"
)

// InventoryOps are the inventory line operations available inside a transaction
type InventoryOps interface {
	InventoryExists(ctx context.Context, playerID int) (bool, error)
	ItemExists(ctx context.Context, itemID int) (bool, error)
	GetInventoryEntries(ctx context.Context, playerID int) ([]domain.InventoryEntry, error)
	// GetInventoryEntry returns nil when the player holds none of the item
	GetInventoryEntry(ctx context.Context, playerID, itemID int) (*domain.InventoryEntry, error)
	// GetItemCountForUpdate locks the line until the transaction ends
	GetItemCountForUpdate(ctx context.Context, playerID, itemID int) (int, bool, error)
	// IncrementItem creates the line or adds delta to it
	IncrementItem(ctx context.Context, playerID, itemID, delta int) error
	UpdateItemCount(ctx context.Context, playerID, itemID, delta int) error
	DeleteInventoryLine(ctx context.Context, playerID, itemID int) error
}

// InventoryTx is a transaction scoped to inventory operations
type InventoryTx interface {
	Tx
	InventoryOps
}

// Inventory defines the storage contract for the inventory manager
type Inventory interface {
	BeginTx(ctx context.Context) (InventoryTx, error)
}
