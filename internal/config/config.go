package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/osse101/BrandishEconomy_Go/internal/database"
	"github.com/osse101/BrandishEconomy_Go/internal/logger"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"brandish-economy"`
	Version     string `env:"VERSION" envDefault:"dev"`
	// LogDir additionally writes session log files when set
	LogDir string `env:"LOG_DIR"`

	DBUser        string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword    string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost        string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort        string        `env:"DB_PORT" envDefault:"5432"`
	DBName        string        `env:"DB_NAME" envDefault:"brandisheconomy"`
	DBMaxConns    int           `env:"DB_MAX_CONNS" envDefault:"20"`
	DBMaxConnIdle time.Duration `env:"DB_MAX_CONN_IDLE" envDefault:"5m"`
	DBMaxConnLife time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`

	// APIKey enables X-API-Key authentication when set
	APIKey          string        `env:"API_KEY"`
	TrustedProxies  []string      `env:"TRUSTED_PROXIES" envSeparator:","`
	RateLimit       int           `env:"RATE_LIMIT" envDefault:"1000"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"5m"`

	StartingMoney    int64         `env:"STARTING_MONEY" envDefault:"1000"`
	DailyMoney       int64         `env:"DAILY_MONEY" envDefault:"100"`
	DiscordCacheSize int           `env:"DISCORD_CACHE_SIZE" envDefault:"10000"`
	DiscordCacheTTL  time.Duration `env:"DISCORD_CACHE_TTL" envDefault:"30m"`

	// ItemsFile seeds the item catalog at startup when set
	ItemsFile string `env:"ITEMS_FILE"`
}

// Load reads an optional .env file, then the process environment
func Load() (*Config, error) {
	// A missing .env is fine; real env vars still apply
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges that env parsing cannot express
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}
	switch strings.ToLower(c.LogFormat) {
	case logger.LogFormatJSON, logger.LogFormatText:
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be %q or %q, got %q", logger.LogFormatJSON, logger.LogFormatText, c.LogFormat))
	}
	if !logger.IsKnownEnvironment(c.Environment) {
		errs = append(errs, fmt.Errorf("ENVIRONMENT must be one of dev, staging, prod, test, got %q", c.Environment))
	}
	if c.DBMaxConns < 1 {
		errs = append(errs, fmt.Errorf("DB_MAX_CONNS must be positive, got %d", c.DBMaxConns))
	}
	if c.RateLimit < 1 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT must be positive, got %d", c.RateLimit))
	}
	if c.RateLimitWindow <= 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", c.RateLimitWindow))
	}
	if c.StartingMoney < 0 {
		errs = append(errs, fmt.Errorf("STARTING_MONEY must not be negative, got %d", c.StartingMoney))
	}
	if c.DailyMoney < 0 {
		errs = append(errs, fmt.Errorf("DAILY_MONEY must not be negative, got %d", c.DailyMoney))
	}
	if c.DiscordCacheSize < 1 {
		errs = append(errs, fmt.Errorf("DISCORD_CACHE_SIZE must be positive, got %d", c.DiscordCacheSize))
	}
	if c.DiscordCacheTTL <= 0 {
		errs = append(errs, fmt.Errorf("DISCORD_CACHE_TTL must be positive, got %s", c.DiscordCacheTTL))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return database.ConnString(c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// PoolConfig maps the DB_* fields onto database.PoolConfig
func (c *Config) PoolConfig() database.PoolConfig {
	return database.PoolConfig{
		ConnString:  c.GetDBConnString(),
		MaxConns:    c.DBMaxConns,
		MaxConnIdle: c.DBMaxConnIdle,
		MaxConnLife: c.DBMaxConnLife,
		AppName:     c.ServiceName,
	}
}

// LoggerConfig maps the logging fields onto logger.Config
func (c *Config) LoggerConfig() logger.Config {
	return logger.NewConfig(c.LogLevel, c.LogFormat, c.ServiceName, c.Version, c.Environment,
		c.Environment == logger.EnvironmentDev)
}
