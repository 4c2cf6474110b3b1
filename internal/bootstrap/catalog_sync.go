package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/BrandishEconomy_Go/internal/item"
	"github.com/osse101/BrandishEconomy_Go/internal/repository"
)

// SyncItemCatalog loads the item catalog file and reconciles it with the items table.
// It is a no-op when path is empty.
func SyncItemCatalog(ctx context.Context, path string, repo repository.Item) error {
	if path == "" {
		return nil
	}

	loader, err := item.NewLoader()
	if err != nil {
		return err
	}
	cfg, err := loader.Load(path)
	if err != nil {
		return err
	}
	if err := loader.Validate(cfg); err != nil {
		return fmt.Errorf("invalid item catalog %s: %w", path, err)
	}

	result, err := loader.Sync(ctx, cfg, repo)
	if err != nil {
		return fmt.Errorf("failed to sync item catalog: %w", err)
	}

	slog.Info(LogMsgCatalogSynced,
		"path", path,
		"version", cfg.Version,
		"inserted", result.Inserted,
		"updated", result.Updated,
		"skipped", result.Skipped)
	return nil
}
