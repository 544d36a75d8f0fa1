package config

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-envconfig"
)

const (
	SecretStrategyPlain  = "plain"
	SecretStrategyBcrypt = "bcrypt"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Auth AuthConfig

	// JWTSecretGenerated is set when JWT_SECRET was empty in development and a
	// random per-process key was used instead.
	JWTSecretGenerated bool
}

type AuthConfig struct {
	TokenTTL       time.Duration `env:"TOKEN_TTL,       default=24h"`
	SecretStrategy string        `env:"SECRET_STRATEGY, default=plain"`
	BcryptCost     int           `env:"BCRYPT_COST,     default=10"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration from l and checks the secret strategy.
// JWT_SECRET is mandatory outside development; in development an empty one is
// replaced by a random key, so tokens never verify against an empty key.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}

	switch cfg.Auth.SecretStrategy {
	case SecretStrategyPlain, SecretStrategyBcrypt:
	default:
		return nil, fmt.Errorf("unknown SECRET_STRATEGY %q", cfg.Auth.SecretStrategy)
	}

	if cfg.JWTSecret == "" {
		if !cfg.IsDevelopment() {
			return nil, fmt.Errorf("JWT_SECRET is required when ENV=%q", cfg.Env)
		}
		cfg.JWTSecret = uuid.NewString()
		cfg.JWTSecretGenerated = true
	}
	return &cfg, nil
}

// IsDevelopment reports whether human-friendly logging should be used.
func (c *Config) IsDevelopment() bool { return c.Env == "development" }
