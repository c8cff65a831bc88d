// Package main is the entry point for monstertamer.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/samdwyer/monstertamer/internal/config"
	"github.com/samdwyer/monstertamer/internal/game"
	"github.com/samdwyer/monstertamer/internal/gamedata"
	"github.com/samdwyer/monstertamer/internal/store"
	"github.com/samdwyer/monstertamer/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// The terminal belongs to the game once it starts, so logs go to a file.
	if f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err != nil {
		log.Printf("Warning: cannot open log file %s: %v", cfg.LogFile, err)
	} else {
		defer f.Close()
		log.SetOutput(f)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	telemetry.ConfigureHoneycomb(cfg.Telemetry.HoneycombAPIKey, cfg.Telemetry.HoneycombDataset)
	shutdown, err := telemetry.Setup(ctx, cfg.Profile)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	registry, err := gamedata.LoadRegistry()
	if err != nil {
		log.Fatalf("Failed to load game data: %v", err)
	}

	repo, closeRepo := openRepository(ctx, cfg)
	defer closeRepo()

	ds, err := store.NewDataStore(store.DataStoreConfig{Repository: repo, Registry: registry})
	if err != nil {
		log.Fatalf("Failed to create data store: %v", err)
	}
	if err := ds.Load(ctx); err != nil {
		log.Fatalf("Failed to load save data: %v", err)
	}

	g, err := game.New(game.Config{
		Seed:           cfg.Game.Seed,
		FPS:            cfg.Game.FPS,
		SkipAnimations: cfg.Game.SkipAnimations,
		TextSpeed:      cfg.Game.TextSpeed,
		Muted:          cfg.Game.Muted,
	}, ds, registry)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	runErr := g.Run(ctx)

	saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := ds.Save(saveCtx); err != nil {
		log.Printf("Failed to save on exit: %v", err)
	}

	if runErr != nil {
		log.Fatalf("Game error: %v", runErr)
	}
}

// openRepository picks the save backend, falling back to memory when Redis is unreachable.
func openRepository(ctx context.Context, cfg *config.Config) (store.Repository, func()) {
	if cfg.Store.Backend != config.StoreRedis {
		log.Println("Using in-memory save data")
		return store.NewInMemoryRepository(), func() {}
	}

	log.Printf("Connecting to Redis at: %s", cfg.Store.Redis.Addr)
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Store.Redis.Addr,
		Password: cfg.Store.Redis.Password,
		DB:       cfg.Store.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		log.Println("Falling back to in-memory save data")
		_ = client.Close()
		return store.NewInMemoryRepository(), func() {}
	}

	log.Printf("Using Redis for save data, profile %q", cfg.Profile)
	return store.NewRedis(client, cfg.Profile), func() {
		if err := client.Close(); err != nil {
			log.Printf("Error closing Redis client: %v", err)
		}
	}
}
