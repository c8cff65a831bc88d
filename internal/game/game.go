package game

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/samdwyer/monstertamer/internal/battle"
	"github.com/samdwyer/monstertamer/internal/dice"
	"github.com/samdwyer/monstertamer/internal/gamedata"
	"github.com/samdwyer/monstertamer/internal/input"
	"github.com/samdwyer/monstertamer/internal/scene"
	"github.com/samdwyer/monstertamer/internal/store"
	"github.com/samdwyer/monstertamer/internal/telemetry"
	"github.com/samdwyer/monstertamer/internal/ui"
	"github.com/samdwyer/monstertamer/internal/world"
)

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	manager  *scene.Manager
	store    *store.DataStore
	registry *gamedata.Registry

	overworld *OverworldScene
	running   bool
}

// New creates a game drawing to the terminal.
func New(cfg Config, ds *store.DataStore, registry *gamedata.Registry) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(cfg, screen, ds, registry), nil
}

// NewWithScreen creates a game on an initialized screen.
func NewWithScreen(cfg Config, screen *ui.Screen, ds *store.DataStore, registry *gamedata.Registry) *Game {
	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		manager:  scene.NewManager(),
		store:    ds,
		registry: registry,
		running:  true,
	}
}

// Run executes the main game loop until the player quits or ctx is done.
// The screen is closed on return.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	seed := g.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	initCtx, initSpan := tracer.Start(ctx, "game.init")
	m := world.NewMap(world.DefaultWidth, world.DefaultHeight, rand.New(rand.NewSource(seed)))
	m.Generate(initCtx)

	g.overworld = NewOverworldScene(ctx, OverworldConfig{
		Manager:        g.manager,
		Store:          g.store,
		Registry:       g.registry,
		Map:            m,
		Roller:         dice.NewRandomRoller(seed),
		Audio:          battle.NewBellPlayer(g.screen, g.cfg.Muted),
		SkipAnimations: g.cfg.SkipAnimations,
		TextDelay:      g.cfg.textDelay(),
	})
	g.manager.Start(g.overworld)

	startX, startY := m.Start()
	initSpan.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.Int("overworld.clearings", len(m.Clearings)),
		attribute.Int("player.start_x", startX),
		attribute.Int("player.start_y", startY),
		attribute.Int("party.size", len(g.store.Party())),
	)
	initSpan.End()

	// PollEvent blocks, so events are read on their own goroutine.
	events := make(chan tcell.Event)
	done := make(chan struct{})
	var eg errgroup.Group
	eg.Go(func() error {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-done:
				return nil
			}
		}
	})

	frame := g.cfg.frameDuration()
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	var pending []input.Action
	last := time.Now()
	g.draw()

	for g.running {
		select {
		case <-ctx.Done():
			g.running = false

		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				g.screen.Sync()
				continue
			}
			action := input.FromEvent(ev)
			if action == input.ActionQuit {
				g.running = false
				continue
			}
			if action != input.ActionNone {
				pending = append(pending, action)
			}

		case now := <-ticker.C:
			action := input.ActionNone
			if len(pending) > 0 {
				action, pending = pending[0], pending[1:]
			}
			g.manager.Update(now.Sub(last), action)
			last = now
			g.draw()
		}
	}

	close(done)
	g.screen.Close()
	if err := eg.Wait(); err != nil {
		log.Printf("game: event reader: %v", err)
	}
	return nil
}

func (g *Game) draw() {
	g.renderer.Begin()
	g.manager.Draw(g.renderer)
	g.renderer.End()
}

// Overworld returns the root scene once Run has started.
func (g *Game) Overworld() *OverworldScene {
	return g.overworld
}
