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

// PlayerRepository implements repository.Player for PostgreSQL
type PlayerRepository struct {
	db *pgxpool.Pool
}

var _ repository.Player = (*PlayerRepository)(nil)

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// BeginTx starts a new transaction
func (r *PlayerRepository) BeginTx(ctx context.Context) (repository.PlayerTx, error) {
	return beginTx(ctx, r.db)
}

// CreatePlayer inserts the user, player, inventory and daily bonus rows in one transaction
func (r *PlayerRepository) CreatePlayer(ctx context.Context, params repository.NewPlayer) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer repository.SafeRollback(ctx, tx)

	var playerID int
	err = tx.QueryRow(ctx, queryInsertUser, params.IsAdmin, snowflakeParam(params.DiscordID)).Scan(&playerID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %d", domain.ErrDiscordIDTaken, *params.DiscordID)
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertUser, err)
	}

	if _, err := tx.Exec(ctx, queryInsertPlayer, playerID, params.StartingMoney); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertPlayer, err)
	}
	if _, err := tx.Exec(ctx, queryInsertInventory, playerID); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertInventory, err)
	}
	if _, err := tx.Exec(ctx, queryInsertDailyBonus, playerID, domain.DateOf(params.LastClaimed)); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertDailyBonus, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return playerID, nil
}

// GetAllPlayers returns every player ordered by id
func (r *PlayerRepository) GetAllPlayers(ctx context.Context) ([]domain.Player, error) {
	rows, err := r.db.Query(ctx, queryGetAllPlayers)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlayers, err)
	}
	defer rows.Close()

	players := make([]domain.Player, 0)
	for rows.Next() {
		var p domain.Player
		if err := rows.Scan(&p.ID, &p.Money, &p.Experience, &p.GuildID); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlayers, err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlayers, err)
	}
	return players, nil
}

// GetPlayerIDByDiscordID resolves a discord snowflake to a player id
func (r *PlayerRepository) GetPlayerIDByDiscordID(ctx context.Context, discordID uint64) (int, bool, error) {
	id, found, err := queryInt64(ctx, r.db, queryGetPlayerIDByDiscordID, snowflakeParam(&discordID))
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlayerByDc, err)
	}
	return int(id), found, nil
}

// GetUser returns the account row behind a player, nil when the player does not exist
func (r *PlayerRepository) GetUser(ctx context.Context, playerID int) (*domain.User, error) {
	var (
		u         domain.User
		discordID *string
	)
	err := r.db.QueryRow(ctx, queryGetUser, playerID).Scan(&u.ID, &u.DateJoined, &u.IsAdmin, &discordID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	if u.DiscordID, err = parseSnowflake(discordID); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetPlayer returns nil when the player does not exist
func (t *Tx) GetPlayer(ctx context.Context, playerID int) (*domain.Player, error) {
	var p domain.Player
	err := t.tx.QueryRow(ctx, queryGetPlayer, playerID).Scan(&p.ID, &p.Money, &p.Experience, &p.GuildID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlayer, err)
	}
	return &p, nil
}

// GetMoney reads the balance of a player
func (t *Tx) GetMoney(ctx context.Context, playerID int) (int64, bool, error) {
	money, found, err := queryInt64(ctx, t.tx, queryGetMoney, playerID)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", ErrMsgFailedToGetMoney, err)
	}
	return money, found, nil
}

// SetMoney overwrites the balance of a player
func (t *Tx) SetMoney(ctx context.Context, playerID int, value int64) (bool, error) {
	found, err := execAffected(ctx, t.tx, querySetMoney, playerID, value)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateMoney, err)
	}
	return found, nil
}

// AddMoney applies delta in a single statement and returns the new balance
func (t *Tx) AddMoney(ctx context.Context, playerID int, delta int64) (int64, bool, error) {
	money, found, err := queryInt64(ctx, t.tx, queryAddMoney, playerID, delta)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateMoney, err)
	}
	return money, found, nil
}

// GetExperience reads the experience of a player
func (t *Tx) GetExperience(ctx context.Context, playerID int) (int64, bool, error) {
	xp, found, err := queryInt64(ctx, t.tx, queryGetExperience, playerID)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", ErrMsgFailedToGetExperience, err)
	}
	return xp, found, nil
}

// SetExperience overwrites the experience of a player
func (t *Tx) SetExperience(ctx context.Context, playerID int, value int64) (bool, error) {
	found, err := execAffected(ctx, t.tx, querySetExperience, playerID, value)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateExperience, err)
	}
	return found, nil
}

// AddExperience applies delta in a single statement and returns the new total
func (t *Tx) AddExperience(ctx context.Context, playerID int, delta int64) (int64, bool, error) {
	xp, found, err := queryInt64(ctx, t.tx, queryAddExperience, playerID, delta)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateExperience, err)
	}
	return xp, found, nil
}

// GetGuildID returns the guild of a player, nil when guildless
func (t *Tx) GetGuildID(ctx context.Context, playerID int) (*int, bool, error) {
	var guildID *int
	err := t.tx.QueryRow(ctx, queryGetGuildID, playerID).Scan(&guildID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", ErrMsgFailedToGetGuildID, err)
	}
	return guildID, true, nil
}

// SetGuildID assigns a guild, or clears it when guildID is nil
func (t *Tx) SetGuildID(ctx context.Context, playerID int, guildID *int) (bool, error) {
	found, err := execAffected(ctx, t.tx, querySetGuildID, playerID, guildID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateGuildID, err)
	}
	return found, nil
}

// GuildExists reports whether a guild row exists
func (t *Tx) GuildExists(ctx context.Context, guildID int) (bool, error) {
	exists, err := queryExists(ctx, t.tx, queryGuildExists, guildID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCheckGuild, err)
	}
	return exists, nil
}
