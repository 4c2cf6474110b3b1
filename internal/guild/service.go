package guild

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/BrandishEconomy_Go/internal/domain"
	"github.com/osse101/BrandishEconomy_Go/internal/logger"
	"github.com/osse101/BrandishEconomy_Go/internal/repository"
)

// Service defines guild operations
type Service interface {
	CreateGuild(ctx context.Context, name, description string, discordID *uint64) (int, error)
	GetGuild(ctx context.Context, guildID int) (*domain.Guild, error)
}

type service struct {
	repo repository.Guild
}

// NewService creates a new guild service
func NewService(repo repository.Guild) Service {
	return &service{repo: repo}
}

func (s *service) CreateGuild(ctx context.Context, name, description string, discordID *uint64) (int, error) {
	if strings.TrimSpace(name) == "" {
		return 0, fmt.Errorf("%w: guild name must not be empty", domain.ErrInvalidInput)
	}

	id, err := s.repo.CreateGuild(ctx, name, description, discordID)
	if err != nil {
		return 0, err
	}
	logger.FromContext(ctx).Info("Guild created", logger.AttrKeyGuildID, id, "name", name)
	return id, nil
}

func (s *service) GetGuild(ctx context.Context, guildID int) (*domain.Guild, error) {
	g, err := s.repo.GetGuild(ctx, guildID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.GuildNotFound(guildID)
	}
	return g, nil
}
