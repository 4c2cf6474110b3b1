package player

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/BrandishEconomy_Go/internal/clock"
	"github.com/osse101/BrandishEconomy_Go/internal/domain"
	"github.com/osse101/BrandishEconomy_Go/internal/logger"
	"github.com/osse101/BrandishEconomy_Go/internal/metrics"
	"github.com/osse101/BrandishEconomy_Go/internal/repository"
)

// Service defines the player economy operations.
// Each call runs in exactly one transaction.
type Service interface {
	CreatePlayer(ctx context.Context, isAdmin bool, discordID *uint64) (int, error)
	GetPlayer(ctx context.Context, playerID int) (*domain.Player, error)
	GetAllPlayers(ctx context.Context) ([]domain.Player, error)
	GetPlayerIDByDiscordID(ctx context.Context, discordID uint64) (int, error)
	// GetAccount returns the user row behind a player
	GetAccount(ctx context.Context, playerID int) (*domain.User, error)

	GetMoney(ctx context.Context, playerID int) (int64, error)
	SetMoney(ctx context.Context, playerID int, value int64) error
	AddMoney(ctx context.Context, playerID int, delta int64) (int64, error)

	GetExperience(ctx context.Context, playerID int) (int64, error)
	SetExperience(ctx context.Context, playerID int, value int64) error
	AddExperience(ctx context.Context, playerID int, delta int64) (int64, error)

	GetGuildID(ctx context.Context, playerID int) (*int, error)
	SetGuildID(ctx context.Context, playerID int, guildID *int) error
}

// Config holds the tunables of the player service
type Config struct {
	StartingMoney    int64
	DiscordCacheSize int
	DiscordCacheTTL  time.Duration
}

// DefaultConfig returns the stock economy settings
func DefaultConfig() Config {
	return Config{
		StartingMoney:    domain.DefaultStartingMoney,
		DiscordCacheSize: DefaultDiscordCacheSize,
		DiscordCacheTTL:  DefaultDiscordCacheTTL,
	}
}

type service struct {
	repo          repository.Player
	clock         clock.Clock
	startingMoney int64
	discordCache  *discordCache
}

// NewService creates a new player service
func NewService(repo repository.Player, clk clock.Clock, cfg Config) Service {
	if cfg.DiscordCacheSize <= 0 {
		cfg.DiscordCacheSize = DefaultDiscordCacheSize
	}
	return &service{
		repo:          repo,
		clock:         clk,
		startingMoney: cfg.StartingMoney,
		discordCache:  newDiscordCache(cfg.DiscordCacheSize, cfg.DiscordCacheTTL),
	}
}

func (s *service) CreatePlayer(ctx context.Context, isAdmin bool, discordID *uint64) (int, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCreatingPlayer, "is_admin", isAdmin, "has_discord_id", discordID != nil)

	today := domain.DateOf(s.clock.Now())
	playerID, err := s.repo.CreatePlayer(ctx, repository.NewPlayer{
		IsAdmin:       isAdmin,
		DiscordID:     discordID,
		StartingMoney: s.startingMoney,
		LastClaimed:   today.Add(-domain.Day),
	})
	if err != nil {
		log.Error(LogMsgCreatePlayerFailed, "error", err)
		return 0, err
	}

	metrics.PlayersCreated.Inc()
	if discordID != nil {
		s.discordCache.Set(*discordID, playerID)
	}
	log.Info(LogMsgPlayerCreated, logger.AttrKeyPlayerID, playerID)
	return playerID, nil
}

func (s *service) GetPlayer(ctx context.Context, playerID int) (*domain.Player, error) {
	var p *domain.Player
	err := repository.WithTx(ctx, s.repo.BeginTx, func(tx repository.PlayerTx) error {
		var err error
		p, err = tx.GetPlayer(ctx, playerID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.PlayerNotFound(playerID)
		}
		return nil
	})
	return p, err
}

func (s *service) GetAccount(ctx context.Context, playerID int) (*domain.User, error) {
	u, err := s.repo.GetUser(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.PlayerNotFound(playerID)
	}
	return u, nil
}

func (s *service) GetAllPlayers(ctx context.Context) ([]domain.Player, error) {
	return s.repo.GetAllPlayers(ctx)
}

func (s *service) GetPlayerIDByDiscordID(ctx context.Context, discordID uint64) (int, error) {
	if id, ok := s.discordCache.Get(discordID); ok {
		logger.FromContext(ctx).Debug(LogMsgDiscordCacheHit, logger.AttrKeyDiscordID, discordID, logger.AttrKeyPlayerID, id)
		return id, nil
	}

	id, found, err := s.repo.GetPlayerIDByDiscordID(ctx, discordID)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, fmt.Errorf("%w: %d", domain.ErrDiscordPlayerNotFound, discordID)
	}
	s.discordCache.Set(discordID, id)
	return id, nil
}

func (s *service) GetMoney(ctx context.Context, playerID int) (int64, error) {
	var money int64
	err := repository.WithTx(ctx, s.repo.BeginTx, func(tx repository.PlayerTx) error {
		var err error
		money, err = Money(ctx, tx, playerID)
		return err
	})
	return money, err
}

func (s *service) SetMoney(ctx context.Context, playerID int, value int64) error {
	return repository.WithTx(ctx, s.repo.BeginTx, func(tx repository.PlayerTx) error {
		found, err := tx.SetMoney(ctx, playerID, value)
		if err != nil {
			return err
		}
		if !found {
			return domain.PlayerNotFound(playerID)
		}
		return nil
	})
}

func (s *service) AddMoney(ctx context.Context, playerID int, delta int64) (int64, error) {
	var balance int64
	err := repository.WithTx(ctx, s.repo.BeginTx, func(tx repository.PlayerTx) error {
		var err error
		balance, err = CreditMoney(ctx, tx, playerID, delta)
		return err
	})
	if err != nil {
		return 0, err
	}

	metrics.RecordMoneyDelta(delta)
	logger.FromContext(ctx).Debug(LogMsgMoneyAdjusted, logger.AttrKeyPlayerID, playerID, "delta", delta, "balance", balance)
	return balance, nil
}

func (s *service) GetExperience(ctx context.Context, playerID int) (int64, error) {
	var xp int64
	err := repository.WithTx(ctx, s.repo.BeginTx, func(tx repository.PlayerTx) error {
		var err error
		xp, err = Experience(ctx, tx, playerID)
		return err
	})
	return xp, err
}

func (s *service) SetExperience(ctx context.Context, playerID int, value int64) error {
	return repository.WithTx(ctx, s.repo.BeginTx, func(tx repository.PlayerTx) error {
		found, err := tx.SetExperience(ctx, playerID, value)
		if err != nil {
			return err
		}
		if !found {
			return domain.PlayerNotFound(playerID)
		}
		return nil
	})
}

func (s *service) AddExperience(ctx context.Context, playerID int, delta int64) (int64, error) {
	var xp int64
	err := repository.WithTx(ctx, s.repo.BeginTx, func(tx repository.PlayerTx) error {
		var err error
		xp, err = CreditExperience(ctx, tx, playerID, delta)
		return err
	})
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Debug(LogMsgExperienceAdjusted, logger.AttrKeyPlayerID, playerID, "delta", delta, "experience", xp)
	return xp, nil
}

func (s *service) GetGuildID(ctx context.Context, playerID int) (*int, error) {
	var guildID *int
	err := repository.WithTx(ctx, s.repo.BeginTx, func(tx repository.PlayerTx) error {
		id, found, err := tx.GetGuildID(ctx, playerID)
		if err != nil {
			return err
		}
		if !found {
			return domain.PlayerNotFound(playerID)
		}
		guildID = id
		return nil
	})
	return guildID, err
}

// SetGuildID checks the guild before the player, so an unknown guild wins over an unknown player
func (s *service) SetGuildID(ctx context.Context, playerID int, guildID *int) error {
	err := repository.WithTx(ctx, s.repo.BeginTx, func(tx repository.PlayerTx) error {
		if guildID != nil {
			exists, err := tx.GuildExists(ctx, *guildID)
			if err != nil {
				return err
			}
			if !exists {
				return domain.GuildNotFound(*guildID)
			}
		}

		found, err := tx.SetGuildID(ctx, playerID, guildID)
		if err != nil {
			return err
		}
		if !found {
			return domain.PlayerNotFound(playerID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	attrs := []any{logger.AttrKeyPlayerID, playerID}
	if guildID != nil {
		attrs = append(attrs, logger.AttrKeyGuildID, *guildID)
	}
	logger.FromContext(ctx).Info(LogMsgGuildChanged, attrs...)
	return nil
}
