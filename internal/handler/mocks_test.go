package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/BrandishEconomy_Go/internal/domain"
)

type MockPlayerService struct {
	mock.Mock
}

func NewMockPlayerService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPlayerService {
	m := &MockPlayerService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPlayerService) CreatePlayer(ctx context.Context, isAdmin bool, discordID *uint64) (int, error) {
	args := m.Called(ctx, isAdmin, discordID)
	return args.Int(0), args.Error(1)
}

func (m *MockPlayerService) GetPlayer(ctx context.Context, playerID int) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerService) GetAllPlayers(ctx context.Context) ([]domain.Player, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Player), args.Error(1)
}

func (m *MockPlayerService) GetPlayerIDByDiscordID(ctx context.Context, discordID uint64) (int, error) {
	args := m.Called(ctx, discordID)
	return args.Int(0), args.Error(1)
}

func (m *MockPlayerService) GetAccount(ctx context.Context, playerID int) (*domain.User, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockPlayerService) GetMoney(ctx context.Context, playerID int) (int64, error) {
	args := m.Called(ctx, playerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPlayerService) SetMoney(ctx context.Context, playerID int, value int64) error {
	return m.Called(ctx, playerID, value).Error(0)
}

func (m *MockPlayerService) AddMoney(ctx context.Context, playerID int, delta int64) (int64, error) {
	args := m.Called(ctx, playerID, delta)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPlayerService) GetExperience(ctx context.Context, playerID int) (int64, error) {
	args := m.Called(ctx, playerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPlayerService) SetExperience(ctx context.Context, playerID int, value int64) error {
	return m.Called(ctx, playerID, value).Error(0)
}

func (m *MockPlayerService) AddExperience(ctx context.Context, playerID int, delta int64) (int64, error) {
	args := m.Called(ctx, playerID, delta)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPlayerService) GetGuildID(ctx context.Context, playerID int) (*int, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*int), args.Error(1)
}

func (m *MockPlayerService) SetGuildID(ctx context.Context, playerID int, guildID *int) error {
	return m.Called(ctx, playerID, guildID).Error(0)
}

type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) GetAllItems(ctx context.Context, playerID int) ([]domain.InventoryEntry, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryEntry), args.Error(1)
}

func (m *MockInventoryService) GetItem(ctx context.Context, playerID, itemID int) (*domain.InventoryEntry, error) {
	args := m.Called(ctx, playerID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryEntry), args.Error(1)
}

func (m *MockInventoryService) ModifyItem(ctx context.Context, playerID, itemID, delta int) error {
	return m.Called(ctx, playerID, itemID, delta).Error(0)
}

type MockDailyService struct {
	mock.Mock
}

func (m *MockDailyService) ClaimToday(ctx context.Context, playerID int) (*domain.AcquiredDaily, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AcquiredDaily), args.Error(1)
}

func (m *MockDailyService) GetDailyStreak(ctx context.Context, playerID int) (*domain.DailyStreak, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyStreak), args.Error(1)
}

type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) CreateItem(ctx context.Context, name, description string) (int, error) {
	args := m.Called(ctx, name, description)
	return args.Int(0), args.Error(1)
}

func (m *MockItemService) GetItem(ctx context.Context, itemID int) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemService) GetItems(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemService) UpdateItem(ctx context.Context, itemID int, name, description *string) error {
	return m.Called(ctx, itemID, name, description).Error(0)
}

func (m *MockItemService) DeleteItem(ctx context.Context, itemID int) error {
	return m.Called(ctx, itemID).Error(0)
}

type MockGuildService struct {
	mock.Mock
}

func (m *MockGuildService) CreateGuild(ctx context.Context, name, description string, discordID *uint64) (int, error) {
	args := m.Called(ctx, name, description, discordID)
	return args.Int(0), args.Error(1)
}

func (m *MockGuildService) GetGuild(ctx context.Context, guildID int) (*domain.Guild, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guild), args.Error(1)
}

type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}
