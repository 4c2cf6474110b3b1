package repository

import (
	"context"

	"github.com/osse101/BrandishEconomy_Go/internal/domain"
)

// Item defines the storage contract for the item catalog.
// Each call is a single statement.
type Item interface {
	CreateItem(ctx context.Context, name, description string) (int, error)
	// GetItem returns nil when the item does not exist
	GetItem(ctx context.Context, itemID int) (*domain.Item, error)
	GetItems(ctx context.Context) ([]domain.Item, error)
	// UpdateItem changes the non-nil fields and reports whether the item exists
	UpdateItem(ctx context.Context, itemID int, name, description *string) (bool, error)
	DeleteItem(ctx context.Context, itemID int) (bool, error)
}
