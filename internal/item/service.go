package item

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/BrandishEconomy_Go/internal/domain"
	"github.com/osse101/BrandishEconomy_Go/internal/logger"
	"github.com/osse101/BrandishEconomy_Go/internal/repository"
)

// Service defines the item catalog operations
type Service interface {
	CreateItem(ctx context.Context, name, description string) (int, error)
	GetItem(ctx context.Context, itemID int) (*domain.Item, error)
	GetItems(ctx context.Context) ([]domain.Item, error)
	// UpdateItem changes only the fields that are non-nil
	UpdateItem(ctx context.Context, itemID int, name, description *string) error
	DeleteItem(ctx context.Context, itemID int) error
}

type service struct {
	repo repository.Item
}

// NewService creates a new item service
func NewService(repo repository.Item) Service {
	return &service{repo: repo}
}

func (s *service) CreateItem(ctx context.Context, name, description string) (int, error) {
	if strings.TrimSpace(name) == "" {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyName)
	}

	id, err := s.repo.CreateItem(ctx, name, description)
	if err != nil {
		return 0, err
	}
	logger.FromContext(ctx).Info(LogMsgItemCreated, logger.AttrKeyItemID, id, "name", name)
	return id, nil
}

func (s *service) GetItem(ctx context.Context, itemID int) (*domain.Item, error) {
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ItemDoesNotExist(itemID)
	}
	return item, nil
}

func (s *service) GetItems(ctx context.Context) ([]domain.Item, error) {
	return s.repo.GetItems(ctx)
}

func (s *service) UpdateItem(ctx context.Context, itemID int, name, description *string) error {
	if name != nil && strings.TrimSpace(*name) == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyName)
	}

	found, err := s.repo.UpdateItem(ctx, itemID, name, description)
	if err != nil {
		return err
	}
	if !found {
		return domain.ItemDoesNotExist(itemID)
	}
	logger.FromContext(ctx).Info(LogMsgItemUpdated, logger.AttrKeyItemID, itemID)
	return nil
}

func (s *service) DeleteItem(ctx context.Context, itemID int) error {
	found, err := s.repo.DeleteItem(ctx, itemID)
	if err != nil {
		return err
	}
	if !found {
		return domain.ItemDoesNotExist(itemID)
	}
	logger.FromContext(ctx).Info(LogMsgItemDeleted, logger.AttrKeyItemID, itemID)
	return nil
}
