package player

import (
	"context"

	"github.com/osse101/BrandishEconomy_Go/internal/domain"
	"github.com/osse101/BrandishEconomy_Go/internal/repository"
)

// Money reads a balance inside an existing transaction
func Money(ctx context.Context, ops repository.PlayerOps, playerID int) (int64, error) {
	money, found, err := ops.GetMoney(ctx, playerID)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, domain.PlayerNotFound(playerID)
	}
	return money, nil
}

// CreditMoney adds delta to a balance inside an existing transaction and
// returns the new balance. The caller owns commit and rollback.
func CreditMoney(ctx context.Context, ops repository.PlayerOps, playerID int, delta int64) (int64, error) {
	balance, found, err := ops.AddMoney(ctx, playerID, delta)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, domain.PlayerNotFound(playerID)
	}
	return balance, nil
}

// Experience reads experience inside an existing transaction
func Experience(ctx context.Context, ops repository.PlayerOps, playerID int) (int64, error) {
	xp, found, err := ops.GetExperience(ctx, playerID)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, domain.PlayerNotFound(playerID)
	}
	return xp, nil
}

// CreditExperience adds delta to experience inside an existing transaction
func CreditExperience(ctx context.Context, ops repository.PlayerOps, playerID int, delta int64) (int64, error) {
	xp, found, err := ops.AddExperience(ctx, playerID, delta)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, domain.PlayerNotFound(playerID)
	}
	return xp, nil
}
