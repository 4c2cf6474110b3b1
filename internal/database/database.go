package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool interface for database connection pool operations
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// PoolConfig sizes the connection pool and names its sessions
type PoolConfig struct {
	ConnString  string
	MaxConns    int
	MaxConnIdle time.Duration
	MaxConnLife time.Duration
	// AppName shows up as application_name in pg_stat_activity
	AppName string
}

// ConnString builds a postgres URL from its parts
func ConnString(user, password, host, port, name string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, name)
}

// NewPool opens a pool whose sessions all run in UTC, so DATE values written by
// the daily bonus engine line up with the UTC calendar days it computes.
func NewPool(ctx context.Context, cfg PoolConfig) (*pgxpool.Pool, error) {
	pc, err := pgxpool.ParseConfig(cfg.ConnString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	maxConns := min(max(cfg.MaxConns, 1), math.MaxInt32)
	pc.MaxConns = int32(maxConns)
	pc.MinConns = min(DefaultMinConnections, pc.MaxConns)
	pc.MaxConnLifetime = cfg.MaxConnLife
	pc.MaxConnIdleTime = cfg.MaxConnIdle

	pc.ConnConfig.RuntimeParams[RuntimeParamTimezone] = SessionTimezone
	if cfg.AppName != "" {
		pc.ConnConfig.RuntimeParams[RuntimeParamApplicationName] = cfg.AppName
	}

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Info(LogMsgSuccessfullyConnectedToDatabase,
		"max_conns", pc.MaxConns,
		"application_name", cfg.AppName)
	return pool, nil
}
