package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, Defaults(), cfg)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("TANELORN_ENVIRONMENT", "production")
	t.Setenv("TANELORN_LOG_LEVEL", "DEBUG")
	t.Setenv("TANELORN_LOG_FILE", "/tmp/bbs.log")
	t.Setenv("TANELORN_SEED", "1234")
	t.Setenv("TANELORN_PLAYER_NAME", "Elric")
	t.Setenv("TANELORN_STARTING_TURNS", "35")
	t.Setenv("TANELORN_BOUNTY_COUNT", "2")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "/tmp/bbs.log", cfg.LogFile)
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, "Elric", cfg.PlayerName)
	assert.Equal(t, 35, cfg.StartingTurns)
	assert.Equal(t, 2, cfg.BountyCount)
}

func TestLoad_InvalidFallsBack(t *testing.T) {
	t.Setenv("TANELORN_SEED", "not-a-number")
	t.Setenv("TANELORN_PLAYER_NAME", "Elric")

	assert.Equal(t, Defaults(), Load())
}

func TestLoad_NonPositiveCounts(t *testing.T) {
	t.Setenv("TANELORN_STARTING_TURNS", "0")
	t.Setenv("TANELORN_BOUNTY_COUNT", "-3")

	cfg := Load()
	assert.Equal(t, 20, cfg.StartingTurns)
	assert.Equal(t, 4, cfg.BountyCount)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"loud", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseLogLevel(tt.in); got != tt.want {
				t.Errorf("parseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
