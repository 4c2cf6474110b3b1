package dailybonus

import (
	"context"

	"github.com/osse101/BrandishEconomy_Go/internal/clock"
	"github.com/osse101/BrandishEconomy_Go/internal/domain"
	"github.com/osse101/BrandishEconomy_Go/internal/logger"
	"github.com/osse101/BrandishEconomy_Go/internal/metrics"
	"github.com/osse101/BrandishEconomy_Go/internal/player"
	"github.com/osse101/BrandishEconomy_Go/internal/repository"
)

// Service defines the daily bonus operations
type Service interface {
	// ClaimToday awards the daily money at most once per UTC day.
	// A repeated claim on the same day returns a zero reward and the current balance.
	ClaimToday(ctx context.Context, playerID int) (*domain.AcquiredDaily, error)
	GetDailyStreak(ctx context.Context, playerID int) (*domain.DailyStreak, error)
}

type service struct {
	repo       repository.Daily
	clock      clock.Clock
	dailyMoney int64
}

// NewService creates a new daily bonus service
func NewService(repo repository.Daily, clk clock.Clock, dailyMoney int64) Service {
	return &service{
		repo:       repo,
		clock:      clk,
		dailyMoney: dailyMoney,
	}
}

func (s *service) ClaimToday(ctx context.Context, playerID int) (*domain.AcquiredDaily, error) {
	today := domain.DateOf(s.clock.Now())

	var (
		result  domain.AcquiredDaily
		outcome Outcome
		streak  int
	)
	err := repository.WithTx(ctx, s.repo.BeginTx, func(tx repository.DailyTx) error {
		state, err := tx.GetDailyBonusForUpdate(ctx, playerID)
		if err != nil {
			return err
		}
		if state == nil {
			return domain.PlayerNotFound(playerID)
		}

		outcome = DecideClaim(state.LastClaimed, today)
		if outcome == AlreadyClaimed {
			streak = state.Streak
			result.Balance, err = player.Money(ctx, tx, playerID)
			return err
		}

		streak = NextStreak(outcome, state.Streak)
		found, err := tx.UpdateDailyBonus(ctx, playerID, today, streak)
		if err != nil {
			return err
		}
		if !found {
			return domain.PlayerNotFound(playerID)
		}

		result.Balance, err = player.CreditMoney(ctx, tx, playerID, s.dailyMoney)
		if err != nil {
			return err
		}
		result.Reward = s.dailyMoney
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.DailyClaims.WithLabelValues(outcome.String()).Inc()
	log := logger.FromContext(ctx)
	if outcome == AlreadyClaimed {
		log.Debug(LogMsgDailyAlreadyClaimed, logger.AttrKeyPlayerID, playerID)
	} else {
		metrics.RecordMoneyDelta(result.Reward)
		log.Info(LogMsgDailyClaimed,
			logger.AttrKeyPlayerID, playerID,
			"outcome", outcome.String(),
			"streak", streak,
			"reward", result.Reward)
	}
	return &result, nil
}

func (s *service) GetDailyStreak(ctx context.Context, playerID int) (*domain.DailyStreak, error) {
	today := domain.DateOf(s.clock.Now())

	var streak domain.DailyStreak
	err := repository.WithTx(ctx, s.repo.BeginTx, func(tx repository.DailyTx) error {
		state, err := tx.GetDailyBonus(ctx, playerID)
		if err != nil {
			return err
		}
		if state == nil {
			return domain.PlayerNotFound(playerID)
		}
		streak = DisplayStreak(state.LastClaimed, today, state.Streak)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &streak, nil
}
