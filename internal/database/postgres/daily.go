package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/BrandishEconomy_Go/internal/domain"
	"github.com/osse101/BrandishEconomy_Go/internal/repository"
)

// DailyRepository implements repository.Daily for PostgreSQL
type DailyRepository struct {
	db *pgxpool.Pool
}

var _ repository.Daily = (*DailyRepository)(nil)

// NewDailyRepository creates a new DailyRepository
func NewDailyRepository(db *pgxpool.Pool) *DailyRepository {
	return &DailyRepository{db: db}
}

// BeginTx starts a new transaction
func (r *DailyRepository) BeginTx(ctx context.Context) (repository.DailyTx, error) {
	return beginTx(ctx, r.db)
}

// GetDailyBonus reads the streak row without locking it
func (t *Tx) GetDailyBonus(ctx context.Context, playerID int) (*domain.DailyBonusState, error) {
	return t.getDailyBonus(ctx, queryGetDailyBonus, playerID)
}

// GetDailyBonusForUpdate reads the streak row and locks it until the transaction ends
func (t *Tx) GetDailyBonusForUpdate(ctx context.Context, playerID int) (*domain.DailyBonusState, error) {
	return t.getDailyBonus(ctx, queryGetDailyBonusForUpdate, playerID)
}

func (t *Tx) getDailyBonus(ctx context.Context, sql string, playerID int) (*domain.DailyBonusState, error) {
	var s domain.DailyBonusState
	err := t.tx.QueryRow(ctx, sql, playerID).Scan(&s.PlayerID, &s.LastClaimed, &s.Streak)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetDailyBonus, err)
	}
	s.LastClaimed = domain.DateOf(s.LastClaimed)
	return &s, nil
}

// UpdateDailyBonus stores a new claim date and streak
func (t *Tx) UpdateDailyBonus(ctx context.Context, playerID int, lastClaimed time.Time, streak int) (bool, error) {
	found, err := execAffected(ctx, t.tx, queryUpdateDailyBonus, playerID, domain.DateOf(lastClaimed), streak)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateDailyBonus, err)
	}
	return found, nil
}
