// Package config reads runtime settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/samdwyer/monstertamer/internal/errors"
)

// Store backends.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config holds all configuration for the application
type Config struct {
	Profile   string
	// LogFile receives log output while the terminal is owned by the game.
	LogFile   string
	Store     StoreConfig
	Game      GameConfig
	Telemetry TelemetryConfig
}

// StoreConfig selects where saves live
type StoreConfig struct {
	Backend string
	Redis   RedisConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// GameConfig holds the frame loop and battle overrides.
type GameConfig struct {
	// Seed for random number generation. 0 means seed from the clock.
	Seed int64
	// SkipAnimations forces skip mode in every battle regardless of the saved options.
	SkipAnimations bool
	// TextSpeed overrides the saved text speed when set.
	TextSpeed string
	FPS       int
	// Muted silences the terminal bell.
	Muted bool
}

// TelemetryConfig holds the Honeycomb credentials used to build OTEL_* variables.
type TelemetryConfig struct {
	HoneycombAPIKey  string
	HoneycombDataset string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Profile: getEnvOrDefault("MONSTERTAMER_PROFILE", "default"),
		LogFile: getEnvOrDefault("MONSTERTAMER_LOG_FILE", "monstertamer.log"),
		Store: StoreConfig{
			Backend: strings.ToLower(getEnvOrDefault("MONSTERTAMER_STORE", StoreMemory)),
			Redis: RedisConfig{
				Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
				Password: os.Getenv("REDIS_PASSWORD"),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
		},
		Game: GameConfig{
			Seed:           int64(getEnvAsIntOrDefault("MONSTERTAMER_SEED", 0)),
			SkipAnimations: getEnvAsBoolOrDefault("MONSTERTAMER_SKIP_ANIMATIONS", false),
			TextSpeed:      os.Getenv("MONSTERTAMER_TEXT_SPEED"),
			FPS:            getEnvAsIntOrDefault("MONSTERTAMER_FPS", 30),
			Muted:          getEnvAsBoolOrDefault("MONSTERTAMER_MUTE", false),
		},
		Telemetry: TelemetryConfig{
			HoneycombAPIKey:  os.Getenv("HONEYCOMB_MONSTERTAMER_API_KEY"),
			HoneycombDataset: getEnvOrDefault("HONEYCOMB_MONSTERTAMER_DATASET", "monstertamer"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values Load cannot fall back on.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case StoreMemory, StoreRedis:
	default:
		return errors.Validationf("MONSTERTAMER_STORE must be %q or %q, got %q", StoreMemory, StoreRedis, c.Store.Backend)
	}
	if c.Store.Backend == StoreRedis && c.Store.Redis.Addr == "" {
		return errors.Validationf("REDIS_ADDR is required for the redis store")
	}
	if c.Profile == "" || strings.ContainsAny(c.Profile, ": ") {
		return errors.Validationf("MONSTERTAMER_PROFILE %q must be non-empty without spaces or colons", c.Profile)
	}
	if c.Game.FPS < 1 || c.Game.FPS > 120 {
		return errors.Validationf("MONSTERTAMER_FPS must be in [1,120], got %d", c.Game.FPS).WithMeta("fps", c.Game.FPS)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
