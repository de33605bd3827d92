package config

import (
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment   string `env:"TANELORN_ENVIRONMENT"    envDefault:"development"`
	LogLevelName  string `env:"TANELORN_LOG_LEVEL"      envDefault:"info"`
	LogFile       string `env:"TANELORN_LOG_FILE"       envDefault:"tanelorn.log"`
	Seed          int64  `env:"TANELORN_SEED"           envDefault:"0"`
	PlayerName    string `env:"TANELORN_PLAYER_NAME"    envDefault:"Adventurer"`
	StartingTurns int    `env:"TANELORN_STARTING_TURNS" envDefault:"20"`
	BountyCount   int    `env:"TANELORN_BOUNTY_COUNT"   envDefault:"4"`

	LogLevel slog.Level
}

// Defaults returns the configuration used when nothing is set.
func Defaults() *Config {
	return &Config{
		Environment:   "development",
		LogLevelName:  "info",
		LogFile:       "tanelorn.log",
		PlayerName:    "Adventurer",
		StartingTurns: 20,
		BountyCount:   4,
		LogLevel:      slog.LevelInfo,
	}
}

// Load reads the environment. A malformed value falls back to the defaults
// as a whole.
func Load() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		slog.Warn("Invalid environment, using defaults", "error", err)
		return Defaults()
	}
	if cfg.StartingTurns <= 0 {
		cfg.StartingTurns = 20
	}
	if cfg.BountyCount <= 0 {
		cfg.BountyCount = 4
	}
	cfg.LogLevel = parseLogLevel(cfg.LogLevelName)
	return cfg
}

// IsProduction reports whether logs should be machine readable.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
