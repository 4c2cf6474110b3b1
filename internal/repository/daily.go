package repository

import (
	"context"
	"time"

	"github.com/osse101/BrandishEconomy_Go/internal/domain"
)

// DailyOps are the daily bonus row operations available inside a transaction
type DailyOps interface {
	// GetDailyBonus returns nil when the player has no daily bonus row
	GetDailyBonus(ctx context.Context, playerID int) (*domain.DailyBonusState, error)
	// GetDailyBonusForUpdate locks the row until the transaction ends
	GetDailyBonusForUpdate(ctx context.Context, playerID int) (*domain.DailyBonusState, error)
	UpdateDailyBonus(ctx context.Context, playerID int, lastClaimed time.Time, streak int) (bool, error)
}

// DailyTx combines daily bonus and player operations in one transaction
// so a claim and its money credit commit or roll back together
type DailyTx interface {
	Tx
	DailyOps
	PlayerOps
}

// Daily defines the storage contract for the daily bonus engine
type Daily interface {
	BeginTx(ctx context.Context) (DailyTx, error)
}
