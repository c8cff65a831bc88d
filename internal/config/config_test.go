package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/monstertamer/internal/errors"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"MONSTERTAMER_PROFILE", "MONSTERTAMER_STORE", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
		"MONSTERTAMER_SEED", "MONSTERTAMER_SKIP_ANIMATIONS", "MONSTERTAMER_TEXT_SPEED", "MONSTERTAMER_FPS", "MONSTERTAMER_LOG_FILE", "MONSTERTAMER_MUTE",
		"HONEYCOMB_MONSTERTAMER_API_KEY", "HONEYCOMB_MONSTERTAMER_DATASET",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.Profile)
	assert.Equal(t, "monstertamer.log", cfg.LogFile)
	assert.Equal(t, StoreMemory, cfg.Store.Backend)
	assert.Equal(t, "localhost:6379", cfg.Store.Redis.Addr)
	assert.Equal(t, int64(0), cfg.Game.Seed)
	assert.False(t, cfg.Game.SkipAnimations)
	assert.Equal(t, 30, cfg.Game.FPS)
	assert.Equal(t, "monstertamer", cfg.Telemetry.HoneycombDataset)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONSTERTAMER_PROFILE", "ash")
	t.Setenv("MONSTERTAMER_STORE", "Redis")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("MONSTERTAMER_SEED", "42")
	t.Setenv("MONSTERTAMER_SKIP_ANIMATIONS", "true")
	t.Setenv("MONSTERTAMER_TEXT_SPEED", "fast")
	t.Setenv("MONSTERTAMER_FPS", "60")
	t.Setenv("MONSTERTAMER_MUTE", "1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "ash", cfg.Profile)
	assert.Equal(t, StoreRedis, cfg.Store.Backend)
	assert.Equal(t, RedisConfig{Addr: "redis:6379", DB: 3}, cfg.Store.Redis)
	assert.Equal(t, GameConfig{Seed: 42, SkipAnimations: true, TextSpeed: "fast", FPS: 60, Muted: true}, cfg.Game)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	clearEnv(t)
	t.Setenv("REDIS_DB", "two")
	t.Setenv("MONSTERTAMER_SKIP_ANIMATIONS", "sometimes")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Store.Redis.DB)
	assert.False(t, cfg.Game.SkipAnimations)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown store", "MONSTERTAMER_STORE", "postgres"},
		{"fps too high", "MONSTERTAMER_FPS", "500"},
		{"fps negative", "MONSTERTAMER_FPS", "-1"},
		{"profile with colon", "MONSTERTAMER_PROFILE", "a:b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.True(t, errors.IsValidation(err))
		})
	}
}
