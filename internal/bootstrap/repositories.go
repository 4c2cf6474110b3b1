package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/BrandishEconomy_Go/internal/clock"
	"github.com/osse101/BrandishEconomy_Go/internal/config"
	"github.com/osse101/BrandishEconomy_Go/internal/dailybonus"
	"github.com/osse101/BrandishEconomy_Go/internal/database/postgres"
	"github.com/osse101/BrandishEconomy_Go/internal/guild"
	"github.com/osse101/BrandishEconomy_Go/internal/inventory"
	"github.com/osse101/BrandishEconomy_Go/internal/item"
	"github.com/osse101/BrandishEconomy_Go/internal/player"
	"github.com/osse101/BrandishEconomy_Go/internal/repository"
	"github.com/osse101/BrandishEconomy_Go/internal/server"
)

// Repositories holds all repository implementations used by the application
type Repositories struct {
	Player    repository.Player
	Inventory repository.Inventory
	Daily     repository.Daily
	Item      repository.Item
	Guild     repository.Guild
}

// InitializeRepositories creates the PostgreSQL repositories over one pool
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Player:    postgres.NewPlayerRepository(dbPool),
		Inventory: postgres.NewInventoryRepository(dbPool),
		Daily:     postgres.NewDailyRepository(dbPool),
		Item:      postgres.NewItemRepository(dbPool),
		Guild:     postgres.NewGuildRepository(dbPool),
	}
}

// InitializeServices builds every manager from its repository.
// All managers share one clock so the daily bonus and player creation agree on "today".
func InitializeServices(cfg *config.Config, repos *Repositories, clk clock.Clock) server.Services {
	return server.Services{
		Player: player.NewService(repos.Player, clk, player.Config{
			StartingMoney:    cfg.StartingMoney,
			DiscordCacheSize: cfg.DiscordCacheSize,
			DiscordCacheTTL:  cfg.DiscordCacheTTL,
		}),
		Inventory: inventory.NewService(repos.Inventory),
		Daily:     dailybonus.NewService(repos.Daily, clk, cfg.DailyMoney),
		Item:      item.NewService(repos.Item),
		Guild:     guild.NewService(repos.Guild),
	}
}

// ServerOptions maps the HTTP settings onto server.Options
func ServerOptions(cfg *config.Config) server.Options {
	return server.Options{
		Port:            cfg.Port,
		APIKey:          cfg.APIKey,
		TrustedProxies:  cfg.TrustedProxies,
		RateLimit:       cfg.RateLimit,
		RateLimitWindow: cfg.RateLimitWindow,
	}
}
