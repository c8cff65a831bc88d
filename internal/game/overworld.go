package game

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/monstertamer/internal/battle"
	"github.com/samdwyer/monstertamer/internal/dice"
	"github.com/samdwyer/monstertamer/internal/entity"
	"github.com/samdwyer/monstertamer/internal/gamedata"
	"github.com/samdwyer/monstertamer/internal/input"
	"github.com/samdwyer/monstertamer/internal/scene"
	"github.com/samdwyer/monstertamer/internal/store"
	"github.com/samdwyer/monstertamer/internal/telemetry"
	"github.com/samdwyer/monstertamer/internal/ui"
	"github.com/samdwyer/monstertamer/internal/world"
)

var (
	styleTree   = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	stylePath   = tcell.StyleDefault.Foreground(tcell.ColorTan)
	styleGrass  = tcell.StyleDefault.Foreground(tcell.ColorLimeGreen)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// OverworldConfig configures an OverworldScene.
type OverworldConfig struct {
	Manager  *scene.Manager
	Store    *store.DataStore
	Registry *gamedata.Registry
	Map      *world.Map
	Roller   dice.Roller
	// Audio is handed to every battle.
	Audio battle.AudioPlayer

	SkipAnimations bool
	TextDelay      time.Duration
}

// OverworldScene is the map the player walks. Steps on grass may start a wild battle.
type OverworldScene struct {
	ctx      context.Context
	tracer   trace.Tracer
	manager  *scene.Manager
	store    *store.DataStore
	registry *gamedata.Registry
	world    *world.Map
	roller   dice.Roller
	audio    battle.AudioPlayer
	skip     bool
	delay    time.Duration

	x, y    int
	state   State
	message string
	battles int
	last    *battle.Result
}

// NewOverworldScene places the player at the map's start.
func NewOverworldScene(ctx context.Context, cfg OverworldConfig) *OverworldScene {
	x, y := cfg.Map.Start()
	return &OverworldScene{
		ctx:      ctx,
		tracer:   telemetry.Tracer("game"),
		manager:  cfg.Manager,
		store:    cfg.Store,
		registry: cfg.Registry,
		world:    cfg.Map,
		roller:   cfg.Roller,
		audio:    cfg.Audio,
		skip:     cfg.SkipAnimations,
		delay:    cfg.TextDelay,
		x:        x,
		y:        y,
		state:    StateExplore,
		message:  "Walk through tall grass to find wild monsters. Esc opens your party.",
	}
}

// Name implements scene.Scene.
func (o *OverworldScene) Name() string { return "OVERWORLD" }

// State returns what the player is doing.
func (o *OverworldScene) State() State { return o.state }

// Position returns the player's map position.
func (o *OverworldScene) Position() (int, int) { return o.x, o.y }

// LastResult returns how the most recent battle ended, or nil before the first one.
func (o *OverworldScene) LastResult() *battle.Result { return o.last }

// Update implements scene.Scene.
func (o *OverworldScene) Update(dt time.Duration, action input.Action) {
	switch action {
	case input.ActionUp:
		o.step(0, -1)
	case input.ActionDown:
		o.step(0, 1)
	case input.ActionLeft:
		o.step(-1, 0)
	case input.ActionRight:
		o.step(1, 0)
	case input.ActionCancel:
		o.openParty()
	}
}

func (o *OverworldScene) step(dx, dy int) {
	nx, ny := o.x+dx, o.y+dy
	if !o.world.IsPassable(nx, ny) {
		return
	}
	o.x, o.y = nx, ny
	if o.world.CheckEncounter(nx, ny, o.roller) {
		o.startBattle()
	}
}

// startBattle spawns a wild monster from the encounter table and launches the battle on top.
func (o *OverworldScene) startBattle() {
	species, level := o.registry.SpawnRandom(o.roller)
	if species == nil {
		log.Printf("overworld: encounter table is empty")
		return
	}
	_, span := o.tracer.Start(o.ctx, "overworld.encounter")
	span.SetAttributes(
		attribute.String("encounter.species", species.Name),
		attribute.Int("encounter.level", level),
		attribute.Int("encounter.x", o.x),
		attribute.Int("encounter.y", o.y),
	)
	span.End()

	enemy := entity.NewMonster(fmt.Sprintf("wild-%d", o.battles+1), species, level)
	b, err := battle.New(o.ctx, battle.Config{
		Manager:        o.manager,
		Store:          o.store,
		Registry:       o.registry,
		Roller:         o.roller,
		Enemy:          enemy,
		Audio:          o.audio,
		SkipAnimations: o.skip,
		TextDelay:      o.delay,
	})
	if err != nil {
		log.Printf("overworld: could not start battle: %v", err)
		o.message = "Something rustled in the grass, but nothing came out."
		return
	}
	o.battles++
	o.state = StateBattle
	o.manager.Launch(b)
}

func (o *OverworldScene) openParty() {
	o.state = StateParty
	o.manager.Launch(scene.NewPartyScene(scene.PartyConfig{
		Manager: o.manager,
		Party:   o.store.Party(),
		Request: scene.PartyRequest{ActiveBattleMonsterPartyIndex: -1},
	}))
}

// Resume implements scene.Scene.
func (o *OverworldScene) Resume(payload any) {
	o.state = StateExplore
	switch p := payload.(type) {
	case battle.Result:
		o.afterBattle(p)
	case scene.PartyResult:
		if p.WasMonsterSelected {
			o.setLead(p.SelectedMonsterIndex)
		}
	}
}

func (o *OverworldScene) afterBattle(result battle.Result) {
	o.last = &result
	switch result.Outcome {
	case battle.OutcomeWon:
		o.message = "You won the battle."
	case battle.OutcomeCaught:
		o.message = "You caught a new monster!"
		if result.Caught != nil && !result.Caught.JoinedParty {
			o.message = fmt.Sprintf("%s was sent to the box.", result.Caught.Name)
		}
	case battle.OutcomeFled:
		o.message = "You got away."
	case battle.OutcomeLost:
		o.recover()
	}
}

// recover heals the whole party and sends the player back to the start.
func (o *OverworldScene) recover() {
	for _, m := range o.store.Party() {
		m.Heal(m.MaxHP)
	}
	if err := o.store.SaveParty(o.ctx); err != nil {
		log.Printf("overworld: failed to save healed party: %v", err)
	}
	o.x, o.y = o.world.Start()
	o.message = "You hurried back to the start and your monsters recovered."
}

// setLead moves the chosen monster to the front so it is sent out first.
func (o *OverworldScene) setLead(idx int) {
	party := o.store.Party()
	if idx <= 0 || idx >= len(party) {
		return
	}
	party[0], party[idx] = party[idx], party[0]
	o.store.SetParty(party)
	if err := o.store.SaveParty(o.ctx); err != nil {
		log.Printf("overworld: failed to save party order: %v", err)
	}
	o.message = fmt.Sprintf("%s now leads the party.", party[0].Name)
}

// Draw implements scene.Scene.
func (o *OverworldScene) Draw(r *ui.Renderer) {
	for y := 0; y < o.world.Height; y++ {
		for x := 0; x < o.world.Width; x++ {
			tile := o.world.GetTile(x, y)
			style := stylePath
			switch tile {
			case world.TileTree:
				style = styleTree
			case world.TileGrass:
				style = styleGrass
			}
			r.Text(x, y, string(tile.Rune()), style)
		}
	}
	r.Text(o.x, o.y, "@", stylePlayer)

	_, h := r.Size()
	status := o.world.Height
	if status >= h {
		status = h - 2
	}
	if party := o.store.Party(); len(party) > 0 {
		lead := party[0]
		r.Text(0, status, fmt.Sprintf("%s Lv%d HP %d/%d  party %d  box %d",
			lead.Name, lead.CurrentLevel, lead.CurrentHP, lead.MaxHP, len(party), len(o.store.Box())), ui.StyleText)
	}
	r.Text(0, status+1, o.message, ui.StyleDim)
}
