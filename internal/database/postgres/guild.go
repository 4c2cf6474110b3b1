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

// GuildRepository implements repository.Guild for PostgreSQL
type GuildRepository struct {
	db *pgxpool.Pool
}

var _ repository.Guild = (*GuildRepository)(nil)

// NewGuildRepository creates a new GuildRepository
func NewGuildRepository(db *pgxpool.Pool) *GuildRepository {
	return &GuildRepository{db: db}
}

// CreateGuild inserts a guild row
func (r *GuildRepository) CreateGuild(ctx context.Context, name, description string, discordID *uint64) (int, error) {
	var id int
	err := r.db.QueryRow(ctx, queryCreateGuild, name, description, snowflakeParam(discordID)).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %d", domain.ErrDiscordIDTaken, *discordID)
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCreateGuild, err)
	}
	return id, nil
}

// GetGuild returns nil when the guild does not exist
func (r *GuildRepository) GetGuild(ctx context.Context, guildID int) (*domain.Guild, error) {
	var (
		g         domain.Guild
		discordID *string
	)
	err := r.db.QueryRow(ctx, queryGetGuild, guildID).Scan(&g.ID, &discordID, &g.Name, &g.Description, &g.PlayerCount)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetGuild, err)
	}
	if g.DiscordID, err = parseSnowflake(discordID); err != nil {
		return nil, err
	}
	return &g, nil
}
