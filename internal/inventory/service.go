package inventory

import (
	"context"
	"fmt"

	"github.com/osse101/BrandishEconomy_Go/internal/domain"
	"github.com/osse101/BrandishEconomy_Go/internal/logger"
	"github.com/osse101/BrandishEconomy_Go/internal/metrics"
	"github.com/osse101/BrandishEconomy_Go/internal/repository"
)

// Service defines the inventory operations
type Service interface {
	GetAllItems(ctx context.Context, playerID int) ([]domain.InventoryEntry, error)
	GetItem(ctx context.Context, playerID, itemID int) (*domain.InventoryEntry, error)
	// ModifyItem adds delta (possibly negative) to the count the player holds.
	// A line that reaches zero is removed; one that would go below zero is rejected untouched.
	ModifyItem(ctx context.Context, playerID, itemID, delta int) error
}

type service struct {
	repo repository.Inventory
}

// NewService creates a new inventory service
func NewService(repo repository.Inventory) Service {
	return &service{repo: repo}
}

func (s *service) GetAllItems(ctx context.Context, playerID int) ([]domain.InventoryEntry, error) {
	var entries []domain.InventoryEntry
	err := repository.WithTx(ctx, s.repo.BeginTx, func(tx repository.InventoryTx) error {
		if err := ensureInventory(ctx, tx, playerID); err != nil {
			return err
		}
		var err error
		entries, err = tx.GetInventoryEntries(ctx, playerID)
		return err
	})
	return entries, err
}

func (s *service) GetItem(ctx context.Context, playerID, itemID int) (*domain.InventoryEntry, error) {
	var entry *domain.InventoryEntry
	err := repository.WithTx(ctx, s.repo.BeginTx, func(tx repository.InventoryTx) error {
		if err := ensureInventory(ctx, tx, playerID); err != nil {
			return err
		}
		if err := ensureItem(ctx, tx, itemID); err != nil {
			return err
		}
		var err error
		entry, err = tx.GetInventoryEntry(ctx, playerID, itemID)
		if err != nil {
			return err
		}
		if entry == nil {
			return domain.ItemNotInInventory(playerID, itemID)
		}
		return nil
	})
	return entry, err
}

func (s *service) ModifyItem(ctx context.Context, playerID, itemID, delta int) error {
	if delta == 0 {
		return nil
	}

	log := logger.FromContext(ctx)
	log.Debug(LogMsgModifyingItem, logger.AttrKeyPlayerID, playerID, logger.AttrKeyItemID, itemID, "delta", delta)

	err := repository.WithTx(ctx, s.repo.BeginTx, func(tx repository.InventoryTx) error {
		if err := ensureInventory(ctx, tx, playerID); err != nil {
			return err
		}
		if err := ensureItem(ctx, tx, itemID); err != nil {
			return err
		}
		if delta > 0 {
			return tx.IncrementItem(ctx, playerID, itemID, delta)
		}
		return removeItems(ctx, tx, playerID, itemID, delta)
	})
	if err != nil {
		return err
	}

	if delta > 0 {
		metrics.InventoryChanges.WithLabelValues(metrics.DirectionAdd).Inc()
	} else {
		metrics.InventoryChanges.WithLabelValues(metrics.DirectionRemove).Inc()
	}
	log.Info(LogMsgItemModified, logger.AttrKeyPlayerID, playerID, logger.AttrKeyItemID, itemID, "delta", delta)
	return nil
}

// removeItems applies a negative delta to a locked line
func removeItems(ctx context.Context, tx repository.InventoryTx, playerID, itemID, delta int) error {
	count, found, err := tx.GetItemCountForUpdate(ctx, playerID, itemID)
	if err != nil {
		return err
	}
	if !found {
		return domain.ItemNotInInventory(playerID, itemID)
	}

	remaining := count + delta
	switch {
	case remaining < 0:
		metrics.InventoryRejected.Inc()
		return domain.OperationNotAllowed(OpModifyItem,
			fmt.Sprintf(ReasonInsufficientQuantity, count, -delta))
	case remaining == 0:
		return tx.DeleteInventoryLine(ctx, playerID, itemID)
	default:
		return tx.UpdateItemCount(ctx, playerID, itemID, delta)
	}
}

func ensureInventory(ctx context.Context, tx repository.InventoryTx, playerID int) error {
	exists, err := tx.InventoryExists(ctx, playerID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.PlayerNotFound(playerID)
	}
	return nil
}

func ensureItem(ctx context.Context, tx repository.InventoryTx, itemID int) error {
	exists, err := tx.ItemExists(ctx, itemID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ItemDoesNotExist(itemID)
	}
	return nil
}
