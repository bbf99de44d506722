package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth      AuthConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Bootstrap BootstrapConfig
}

type AuthConfig struct {
	JWTSecret  string        `env:"JWT_SECRET, required"`
	JWTIssuer  string        `env:"JWT_ISSUER, default=inventory-system"`
	TokenTTL   time.Duration `env:"JWT_TTL,    default=24h"`
	BcryptCost int           `env:"BCRYPT_COST, default=10"`
}

type DatabaseConfig struct {
	Driver          string        `env:"DB_DRIVER,            default=postgres"`
	URL             string        `env:"DATABASE_URL,         required"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS,    default=20"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS,    default=10"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME, default=30m"`
}

// RedisConfig is optional; an empty Addr disables Idempotency-Key handling.
type RedisConfig struct {
	Addr           string        `env:"REDIS_ADDR"`
	Password       string        `env:"REDIS_PASSWORD"`
	DB             int           `env:"REDIS_DB,        default=0"`
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL, default=24h"`
}

// BootstrapConfig names the accounts seeded into an empty user table.
type BootstrapConfig struct {
	AdminUsername string `env:"BOOTSTRAP_ADMIN_USERNAME"`
	AdminPassword string `env:"BOOTSTRAP_ADMIN_PASSWORD"`
	ShopUsername  string `env:"BOOTSTRAP_SHOP_USERNAME"`
	ShopPassword  string `env:"BOOTSTRAP_SHOP_PASSWORD"`
}

// IsDevelopment enables human-readable log output.
func (c *Config) IsDevelopment() bool { return c.Env == "development" }

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads configuration through lookuper; tests pass a map.
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if len(cfg.Auth.JWTSecret) < 32 {
		return nil, fmt.Errorf("config: JWT_SECRET must be at least 32 bytes")
	}
	if cfg.Database.Driver != "postgres" && cfg.Database.Driver != "sqlite" {
		return nil, fmt.Errorf("config: DB_DRIVER must be postgres or sqlite, got %q", cfg.Database.Driver)
	}
	return &cfg, nil
}
