package inventory

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/BrandishEconomy_Go/internal/domain"
	"github.com/osse101/BrandishEconomy_Go/internal/repository"
)

// MockRepository implements repository.Inventory for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.InventoryTx), args.Error(1)
}

// MockTx implements repository.InventoryTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) InventoryExists(ctx context.Context, playerID int) (bool, error) {
	args := m.Called(ctx, playerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTx) ItemExists(ctx context.Context, itemID int) (bool, error) {
	args := m.Called(ctx, itemID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTx) GetInventoryEntries(ctx context.Context, playerID int) ([]domain.InventoryEntry, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryEntry), args.Error(1)
}

func (m *MockTx) GetInventoryEntry(ctx context.Context, playerID, itemID int) (*domain.InventoryEntry, error) {
	args := m.Called(ctx, playerID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryEntry), args.Error(1)
}

func (m *MockTx) GetItemCountForUpdate(ctx context.Context, playerID, itemID int) (int, bool, error) {
	args := m.Called(ctx, playerID, itemID)
	return args.Int(0), args.Bool(1), args.Error(2)
}

func (m *MockTx) IncrementItem(ctx context.Context, playerID, itemID, delta int) error {
	args := m.Called(ctx, playerID, itemID, delta)
	return args.Error(0)
}

func (m *MockTx) UpdateItemCount(ctx context.Context, playerID, itemID, delta int) error {
	args := m.Called(ctx, playerID, itemID, delta)
	return args.Error(0)
}

func (m *MockTx) DeleteInventoryLine(ctx context.Context, playerID, itemID int) error {
	args := m.Called(ctx, playerID, itemID)
	return args.Error(0)
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var (
	_ repository.Inventory   = (*MockRepository)(nil)
	_ repository.InventoryTx = (*MockTx)(nil)
)
