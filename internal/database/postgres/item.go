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

// ItemRepository implements repository.Item for PostgreSQL
type ItemRepository struct {
	db *pgxpool.Pool
}

var _ repository.Item = (*ItemRepository)(nil)

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

// CreateItem adds an item to the catalog
func (r *ItemRepository) CreateItem(ctx context.Context, name, description string) (int, error) {
	var id int
	if err := r.db.QueryRow(ctx, queryCreateItem, name, description).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCreateItem, err)
	}
	return id, nil
}

// GetItem returns nil when the item does not exist
func (r *ItemRepository) GetItem(ctx context.Context, itemID int) (*domain.Item, error) {
	var item domain.Item
	err := r.db.QueryRow(ctx, queryGetItem, itemID).Scan(&item.ID, &item.Name, &item.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItem, err)
	}
	return &item, nil
}

// GetItems lists the catalog ordered by id
func (r *ItemRepository) GetItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.db.Query(ctx, queryGetItems)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItems, err)
	}
	defer rows.Close()

	items := make([]domain.Item, 0)
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Description); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItems, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItems, err)
	}
	return items, nil
}

// UpdateItem changes whichever of name and description is non-nil
func (r *ItemRepository) UpdateItem(ctx context.Context, itemID int, name, description *string) (bool, error) {
	found, err := execAffected(ctx, r.db, queryUpdateItem, itemID, name, description)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateItem, err)
	}
	return found, nil
}

// DeleteItem removes an item; inventory lines holding it cascade
func (r *ItemRepository) DeleteItem(ctx context.Context, itemID int) (bool, error) {
	found, err := execAffected(ctx, r.db, queryDeleteItem, itemID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToDeleteItem, err)
	}
	return found, nil
}
