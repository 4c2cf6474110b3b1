package repository

import (
	"context"
	"time"

	"github.com/osse101/BrandishEconomy_Go/internal/domain"
)

// NewPlayer carries everything needed to create a player and its dependent rows
type NewPlayer struct {
	IsAdmin       bool
	DiscordID     *uint64
	StartingMoney int64
	// LastClaimed seeds the daily bonus row, normally yesterday so the first claim continues nothing
	LastClaimed time.Time
}

// PlayerOps are the player row operations available inside a transaction.
// The bool results report whether the player row exists.
type PlayerOps interface {
	GetPlayer(ctx context.Context, playerID int) (*domain.Player, error)
	GetMoney(ctx context.Context, playerID int) (int64, bool, error)
	SetMoney(ctx context.Context, playerID int, value int64) (bool, error)
	AddMoney(ctx context.Context, playerID int, delta int64) (int64, bool, error)
	GetExperience(ctx context.Context, playerID int) (int64, bool, error)
	SetExperience(ctx context.Context, playerID int, value int64) (bool, error)
	AddExperience(ctx context.Context, playerID int, delta int64) (int64, bool, error)
	GetGuildID(ctx context.Context, playerID int) (*int, bool, error)
	SetGuildID(ctx context.Context, playerID int, guildID *int) (bool, error)
	GuildExists(ctx context.Context, guildID int) (bool, error)
}

// PlayerTx is a transaction scoped to player economy operations
type PlayerTx interface {
	Tx
	PlayerOps
}

// Player defines the storage contract for the player economy manager
type Player interface {
	BeginTx(ctx context.Context) (PlayerTx, error)
	// CreatePlayer inserts the user, player, inventory and daily bonus rows atomically
	CreatePlayer(ctx context.Context, params NewPlayer) (int, error)
	GetAllPlayers(ctx context.Context) ([]domain.Player, error)
	GetPlayerIDByDiscordID(ctx context.Context, discordID uint64) (int, bool, error)
	// GetUser returns nil when no player exists with that id
	GetUser(ctx context.Context, playerID int) (*domain.User, error)
}
