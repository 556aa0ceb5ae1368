package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DerekDew/poe2-api-stub/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	rq := require.New(t)

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal(8000, cfg.HTTP.Port)
	rq.Equal([]string{"*"}, cfg.HTTP.Origins())
	rq.True(cfg.Alerts.Enabled)
	rq.InDelta(100, cfg.Alerts.MinScore, 1e-9)
	rq.Equal("change-me", cfg.Alerts.Secret)
	rq.Empty(cfg.Redis.Address)
}

func TestLoadOverrides(t *testing.T) {
	rq := require.New(t)

	t.Setenv("PORT", "9001")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("ALERTS_ENABLED", "false")
	t.Setenv("ALERTS_MIN_SCORE", "250.5")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal(9001, cfg.HTTP.Port)
	rq.Equal([]string{"https://a.example", "https://b.example"}, cfg.HTTP.Origins())
	rq.False(cfg.Alerts.Enabled)
	rq.InDelta(250.5, cfg.Alerts.MinScore, 1e-9)
	rq.Equal("localhost:6379", cfg.Redis.Address)
}
