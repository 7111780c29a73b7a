package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the process configuration, loaded once at startup and passed
// explicitly through constructors.
type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// TokenTTL bounds the lifetime of issued bearer tokens.
	TokenTTL time.Duration `env:"TOKEN_TTL, default=24h"`
	// RequestTimeout is the deadline applied to every in-flight request,
	// which also bounds how long a request may queue for a pool connection.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT, default=30s"`
	// AssetDir is the directory uploaded client images are stored in.
	AssetDir string `env:"ASSET_DIR, default=./uploads"`

	DB    DBConfig
	Redis RedisConfig
}

type DBConfig struct {
	Host     string `env:"DB_HOST,      default=localhost"`
	Port     string `env:"DB_PORT,      default=5432"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME"`
	MaxConns int32  `env:"DB_MAX_CONNS, default=10"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// DSN renders the postgres connection string for pgx.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}
	return &cfg, nil
}
