package dailybonus

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/BrandishEconomy_Go/internal/domain"
	"github.com/osse101/BrandishEconomy_Go/internal/repository"
)

// MockRepository implements repository.Daily for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.DailyTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.DailyTx), args.Error(1)
}

// MockTx implements repository.DailyTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) GetDailyBonus(ctx context.Context, playerID int) (*domain.DailyBonusState, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyBonusState), args.Error(1)
}

func (m *MockTx) GetDailyBonusForUpdate(ctx context.Context, playerID int) (*domain.DailyBonusState, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyBonusState), args.Error(1)
}

func (m *MockTx) UpdateDailyBonus(ctx context.Context, playerID int, lastClaimed time.Time, streak int) (bool, error) {
	args := m.Called(ctx, playerID, lastClaimed, streak)
	return args.Bool(0), args.Error(1)
}

func (m *MockTx) GetPlayer(ctx context.Context, playerID int) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockTx) GetMoney(ctx context.Context, playerID int) (int64, bool, error) {
	args := m.Called(ctx, playerID)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *MockTx) SetMoney(ctx context.Context, playerID int, value int64) (bool, error) {
	args := m.Called(ctx, playerID, value)
	return args.Bool(0), args.Error(1)
}

func (m *MockTx) AddMoney(ctx context.Context, playerID int, delta int64) (int64, bool, error) {
	args := m.Called(ctx, playerID, delta)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *MockTx) GetExperience(ctx context.Context, playerID int) (int64, bool, error) {
	args := m.Called(ctx, playerID)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *MockTx) SetExperience(ctx context.Context, playerID int, value int64) (bool, error) {
	args := m.Called(ctx, playerID, value)
	return args.Bool(0), args.Error(1)
}

func (m *MockTx) AddExperience(ctx context.Context, playerID int, delta int64) (int64, bool, error) {
	args := m.Called(ctx, playerID, delta)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *MockTx) GetGuildID(ctx context.Context, playerID int) (*int, bool, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*int), args.Bool(1), args.Error(2)
}

func (m *MockTx) SetGuildID(ctx context.Context, playerID int, guildID *int) (bool, error) {
	args := m.Called(ctx, playerID, guildID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTx) GuildExists(ctx context.Context, guildID int) (bool, error) {
	args := m.Called(ctx, guildID)
	return args.Bool(0), args.Error(1)
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
	_ repository.Daily   = (*MockRepository)(nil)
	_ repository.DailyTx = (*MockTx)(nil)
)
