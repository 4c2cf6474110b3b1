package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/BrandishEconomy_Go/internal/bootstrap"
	"github.com/osse101/BrandishEconomy_Go/internal/clock"
	"github.com/osse101/BrandishEconomy_Go/internal/config"
	"github.com/osse101/BrandishEconomy_Go/internal/database"
	"github.com/osse101/BrandishEconomy_Go/internal/server"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(ctx, cfg.PoolConfig())
	if err != nil {
		return err
	}

	if err := database.Migrate(ctx, dbPool); err != nil {
		dbPool.Close()
		return err
	}
	slog.Info(bootstrap.LogMsgMigrationsApplied)

	repos := bootstrap.InitializeRepositories(dbPool)
	if err := bootstrap.SyncItemCatalog(ctx, cfg.ItemsFile, repos.Item); err != nil {
		dbPool.Close()
		return err
	}

	services := bootstrap.InitializeServices(cfg, repos, clock.NewRealClock())
	srv := server.NewServer(bootstrap.ServerOptions(cfg), dbPool, services)

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serveErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{Server: srv, DBPool: dbPool})

	return err
}
