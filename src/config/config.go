package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Supported KV_BACKEND values
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds the process configuration read from the environment
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	Backend  string `env:"KV_BACKEND" envDefault:"sqlite"`
	DBDriver string `env:"DB_DRIVER" envDefault:"sqlite3"`
	DBPath   string `env:"DB_PATH" envDefault:"./data/config.db"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"127.0.0.1:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPrefix   string `env:"REDIS_PREFIX" envDefault:"rollout-config"`

	APIPrefix          string `env:"API_PREFIX" envDefault:"/dev/player_rollouts"`
	RolloutNamespace   string `env:"ROLLOUT_NAMESPACE" envDefault:"rollouts"`
	WhitelistNamespace string `env:"WHITELIST_NAMESPACE" envDefault:"whitelist"`

	CORSAllowOrigins []string      `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`
	BodyLimit        string        `env:"BODY_LIMIT" envDefault:"1M"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// ParseEnv fills target's env-tagged fields from the environment
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment into a Config and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects unknown backends and empty namespaces
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendSQLite:
		if c.DBDriver != "sqlite3" && c.DBDriver != "sqlite" {
			return fmt.Errorf("invalid DB_DRIVER %q: must be sqlite3 or sqlite", c.DBDriver)
		}
	case BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("invalid KV_BACKEND %q: must be sqlite, redis or memory", c.Backend)
	}

	if c.RolloutNamespace == "" || c.WhitelistNamespace == "" {
		return fmt.Errorf("namespaces must not be empty")
	}
	if c.RolloutNamespace == c.WhitelistNamespace {
		return fmt.Errorf("rollout and whitelist namespaces must differ, both are %q", c.RolloutNamespace)
	}

	return nil
}
