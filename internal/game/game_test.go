package game

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/monstertamer/internal/battle"
	"github.com/samdwyer/monstertamer/internal/dice"
	"github.com/samdwyer/monstertamer/internal/entity"
	"github.com/samdwyer/monstertamer/internal/gamedata"
	"github.com/samdwyer/monstertamer/internal/input"
	"github.com/samdwyer/monstertamer/internal/scene"
	"github.com/samdwyer/monstertamer/internal/store"
	"github.com/samdwyer/monstertamer/internal/ui"
	"github.com/samdwyer/monstertamer/internal/uuid"
	"github.com/samdwyer/monstertamer/internal/world"
)

const frame = 16 * time.Millisecond

// testMap is a single corridor: path at x=1..3, grass at x=4..5, on row 2.
// The player starts at the center, (3, 2).
func testMap() *world.Map {
	m := world.NewMap(7, 5, rand.New(rand.NewSource(1)))
	for x := 1; x <= 3; x++ {
		m.Tiles[2][x] = world.TilePath
	}
	m.Tiles[2][4] = world.TileGrass
	m.Tiles[2][5] = world.TileGrass
	return m
}

type overworldHarness struct {
	t         *testing.T
	manager   *scene.Manager
	store     *store.DataStore
	roller    *dice.ManualRoller
	overworld *OverworldScene
}

func newOverworldHarness(t *testing.T, party entity.Party, rolls ...int) *overworldHarness {
	t.Helper()
	ctx := context.Background()
	registry := gamedata.MustLoadRegistry()

	repo := store.NewInMemoryRepository()
	require.NoError(t, repo.SaveParty(ctx, party))
	ds, err := store.NewDataStore(store.DataStoreConfig{
		Repository:    repo,
		Registry:      registry,
		UUIDGenerator: uuid.NewSequenceGenerator("mon"),
	})
	require.NoError(t, err)
	require.NoError(t, ds.Load(ctx))

	h := &overworldHarness{
		t:       t,
		manager: scene.NewManager(),
		store:   ds,
		roller:  dice.NewManualRoller(rolls...),
	}
	h.overworld = NewOverworldScene(ctx, OverworldConfig{
		Manager:        h.manager,
		Store:          ds,
		Registry:       registry,
		Map:            testMap(),
		Roller:         h.roller,
		SkipAnimations: true,
	})
	h.manager.Start(h.overworld)
	return h
}

func (h *overworldHarness) press(actions ...input.Action) {
	for _, a := range actions {
		h.manager.Update(frame, a)
	}
}

func (h *overworldHarness) currentBattle() *battle.Battle {
	h.t.Helper()
	b, ok := h.manager.Current().(*battle.Battle)
	require.True(h.t, ok, "expected a battle on top, got %s", h.manager.Current().Name())
	return b
}

func (h *overworldHarness) runUntilBack() {
	h.t.Helper()
	for i := 0; i < 1000 && h.manager.Current() != scene.Scene(h.overworld); i++ {
		h.manager.Update(frame, input.ActionNone)
	}
	require.Equal(h.t, scene.Scene(h.overworld), h.manager.Current())
}

func healthyParty(t *testing.T) entity.Party {
	registry := gamedata.MustLoadRegistry()
	return entity.Party{
		entity.NewMonster("p1", registry.Species(1), 5),
		entity.NewMonster("p2", registry.Species(4), 3),
	}
}

func TestWalkingIsBlockedByTrees(t *testing.T) {
	h := newOverworldHarness(t, healthyParty(t))

	h.press(input.ActionUp)
	x, y := h.overworld.Position()
	assert.Equal(t, [2]int{3, 2}, [2]int{x, y})

	h.press(input.ActionLeft, input.ActionLeft, input.ActionLeft)
	x, y = h.overworld.Position()
	assert.Equal(t, [2]int{1, 2}, [2]int{x, y})
	assert.Equal(t, 0, h.roller.Calls(), "paths never roll for encounters")
}

func TestGrassWithoutEncounter(t *testing.T) {
	h := newOverworldHarness(t, healthyParty(t), world.EncounterChance+1)

	h.press(input.ActionRight)

	x, _ := h.overworld.Position()
	assert.Equal(t, 4, x)
	assert.Equal(t, StateExplore, h.overworld.State())
	assert.Equal(t, scene.Scene(h.overworld), h.manager.Current())
	assert.Equal(t, 1, h.roller.Calls())
}

func TestEncounterStartsBattleAndFleeReturns(t *testing.T) {
	h := newOverworldHarness(t, healthyParty(t), 1)

	h.press(input.ActionRight)
	b := h.currentBattle()
	assert.Equal(t, StateBattle, h.overworld.State())
	assert.Equal(t, "Iguanignite", b.Enemy().GetName())
	assert.Equal(t, 2, b.Enemy().GetLevel())

	for i := 0; i < 100 && b.CurrentState() != battle.StatePlayerInput; i++ {
		h.press(input.ActionNone)
	}
	require.Equal(t, battle.StatePlayerInput, b.CurrentState())

	h.roller.SetRolls(6)
	h.press(input.ActionRight, input.ActionDown, input.ActionOK)
	h.runUntilBack()

	assert.Equal(t, StateExplore, h.overworld.State())
	require.NotNil(t, h.overworld.LastResult())
	assert.Equal(t, battle.OutcomeFled, h.overworld.LastResult().Outcome)
	assert.Equal(t, "You got away.", h.overworld.message)
}

func TestLosingHealsPartyAndReturnsToStart(t *testing.T) {
	registry := gamedata.MustLoadRegistry()
	fainted := entity.NewMonster("p1", registry.Species(1), 5)
	fainted.CurrentHP = 0
	h := newOverworldHarness(t, entity.Party{fainted}, 1)

	h.press(input.ActionRight)
	h.currentBattle()
	h.runUntilBack()

	assert.Equal(t, battle.OutcomeLost, h.overworld.LastResult().Outcome)
	x, y := h.overworld.Position()
	assert.Equal(t, [2]int{3, 2}, [2]int{x, y})
	lead := h.store.Party()[0]
	assert.Equal(t, lead.MaxHP, lead.CurrentHP)
}

func TestPartyScreenSetsLead(t *testing.T) {
	h := newOverworldHarness(t, healthyParty(t))

	h.press(input.ActionCancel)
	_, ok := h.manager.Current().(*scene.PartyScene)
	require.True(t, ok)
	assert.Equal(t, StateParty, h.overworld.State())

	h.press(input.ActionDown, input.ActionOK)

	assert.Equal(t, scene.Scene(h.overworld), h.manager.Current())
	assert.Equal(t, StateExplore, h.overworld.State())
	assert.Equal(t, "p2", h.store.Party()[0].ID)
	assert.Equal(t, "Aquavalor now leads the party.", h.overworld.message)
}

func TestResumeWithBoxedCapture(t *testing.T) {
	h := newOverworldHarness(t, healthyParty(t))

	h.overworld.Resume(battle.Result{
		Outcome: battle.OutcomeCaught,
		Caught:  &battle.Caught{ID: "mon-1", Name: "Frostsaber"},
	})

	assert.Equal(t, "Frostsaber was sent to the box.", h.overworld.message)
}

func TestOverworldDraw(t *testing.T) {
	h := newOverworldHarness(t, healthyParty(t))

	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := ui.NewScreenFrom(sim)
	require.NoError(t, err)
	defer screen.Close()
	sim.SetSize(20, 10)
	r := ui.NewRenderer(screen)

	r.Begin()
	h.manager.Draw(r)
	r.End()

	cells, w, _ := sim.GetContents()
	assert.Equal(t, '@', cells[2*w+3].Runes[0])
	assert.Equal(t, '"', cells[2*w+4].Runes[0])
	assert.Equal(t, world.TileTree.Rune(), cells[0].Runes[0])
}

func newTestGame(t *testing.T) (*Game, tcell.SimulationScreen) {
	t.Helper()
	registry := gamedata.MustLoadRegistry()
	ds, err := store.NewDataStore(store.DataStoreConfig{Repository: store.NewInMemoryRepository(), Registry: registry})
	require.NoError(t, err)
	require.NoError(t, ds.Load(context.Background()))

	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := ui.NewScreenFrom(sim)
	require.NoError(t, err)
	sim.SetSize(80, 30)

	return NewWithScreen(Config{Seed: 7, FPS: 120, SkipAnimations: true, Muted: true}, screen, ds, registry), sim
}

func TestRunQuitsOnCtrlC(t *testing.T) {
	g, sim := newTestGame(t)
	sim.InjectKey(tcell.KeyCtrlC, 0, tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- g.Run(context.Background()) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after ctrl-c")
	}
	require.NotNil(t, g.Overworld())
}

func TestRunStopsWhenContextIsCancelled(t *testing.T) {
	g, _ := newTestGame(t)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	require.NoError(t, g.Run(ctx))
	assert.Equal(t, StateExplore, g.Overworld().State())
}

func TestConfigDefaults(t *testing.T) {
	assert.Equal(t, time.Second/30, Config{}.frameDuration())
	assert.Equal(t, time.Second/60, Config{FPS: 60}.frameDuration())
	assert.Equal(t, time.Duration(0), Config{}.textDelay())
	assert.Equal(t, 15*time.Millisecond, Config{TextSpeed: "fast"}.textDelay())
}

func TestStateNames(t *testing.T) {
	assert.Equal(t, "explore", StateExplore.String())
	assert.Equal(t, "battle", StateBattle.String())
	assert.Equal(t, "party", StateParty.String())
	assert.Equal(t, "unknown", State(9).String())
}
