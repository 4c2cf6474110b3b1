package repository

import (
	"context"

	"github.com/osse101/BrandishEconomy_Go/internal/domain"
)

// Guild defines the storage contract for guilds
type Guild interface {
	CreateGuild(ctx context.Context, name, description string, discordID *uint64) (int, error)
	// GetGuild returns nil when the guild does not exist
	GetGuild(ctx context.Context, guildID int) (*domain.Guild, error)
}
