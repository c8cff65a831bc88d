package scene

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/monstertamer/internal/anim"
	"github.com/samdwyer/monstertamer/internal/combat"
	"github.com/samdwyer/monstertamer/internal/dice"
	"github.com/samdwyer/monstertamer/internal/entity"
	"github.com/samdwyer/monstertamer/internal/gamedata"
	"github.com/samdwyer/monstertamer/internal/input"
	"github.com/samdwyer/monstertamer/internal/store"
	"github.com/samdwyer/monstertamer/internal/ui"
	"github.com/samdwyer/monstertamer/internal/uuid"
)

// recordingScene remembers every payload it is resumed with.
type recordingScene struct {
	name     string
	updates  int
	payloads []any
}

func (s *recordingScene) Name() string                                  { return s.name }
func (s *recordingScene) Update(dt time.Duration, action input.Action) { s.updates++ }
func (s *recordingScene) Draw(r *ui.Renderer)                          {}
func (s *recordingScene) Resume(payload any)                           { s.payloads = append(s.payloads, payload) }

func TestManagerPausesAndResumes(t *testing.T) {
	m := NewManager()
	battle := &recordingScene{name: "BATTLE"}
	sub := &recordingScene{name: "SUB"}

	m.Start(battle)
	m.Update(time.Millisecond, input.ActionNone)
	assert.Equal(t, 1, battle.updates)

	m.Launch(sub)
	assert.Equal(t, 2, m.Depth())
	m.Update(time.Millisecond, input.ActionNone)
	assert.Equal(t, 1, battle.updates, "paused scenes are not updated")
	assert.Equal(t, 1, sub.updates)

	m.Stop("done")
	assert.Same(t, battle, m.Current())
	assert.Equal(t, []any{"done"}, battle.payloads)

	m.Stop(nil)
	assert.Nil(t, m.Current())
	m.Stop(nil)
	assert.Equal(t, 0, m.Depth())
}

func newTestStore(t *testing.T) (*store.DataStore, *gamedata.Registry) {
	t.Helper()
	registry := gamedata.MustLoadRegistry()
	ds, err := store.NewDataStore(store.DataStoreConfig{
		Repository:    store.NewInMemoryRepository(),
		Registry:      registry,
		UUIDGenerator: uuid.NewSequenceGenerator("mon"),
	})
	require.NoError(t, err)
	require.NoError(t, ds.Load(context.Background()))
	return ds, registry
}

func newInventoryHarness(t *testing.T) (*Manager, *recordingScene, *InventoryScene, *store.DataStore, *entity.BattleMonster) {
	t.Helper()
	ds, registry := newTestStore(t)
	target := entity.NewBattleMonster(entity.BattleMonsterConfig{
		Record:         ds.Party()[0],
		Side:           entity.SidePlayer,
		Timeline:       anim.NewTimeline(),
		SkipAnimations: true,
	})

	m := NewManager()
	caller := &recordingScene{name: "BATTLE"}
	m.Start(caller)
	inv := NewInventoryScene(InventoryConfig{
		Manager:  m,
		Store:    ds,
		Registry: registry,
		Resolver: combat.NewResolver(dice.NewManualRoller()),
		Target:   target,
	})
	m.Launch(inv)
	return m, caller, inv, ds, target
}

func TestInventoryHealsAndConsumes(t *testing.T) {
	m, caller, _, ds, target := newInventoryHarness(t)
	target.Record().CurrentHP = 1

	// First entry is the potion
	m.Update(0, input.ActionOK)

	require.Len(t, caller.payloads, 1)
	result, ok := caller.payloads[0].(InventoryResult)
	require.True(t, ok)
	assert.True(t, result.WasItemUsed)
	assert.Equal(t, "Potion", result.Item.Name)
	assert.Equal(t, 31, target.GetHP())
	assert.Equal(t, 9, ds.Inventory().Quantity(1))
}

func TestInventoryRefusesFullHealthHeal(t *testing.T) {
	m, caller, inv, ds, _ := newInventoryHarness(t)

	m.Update(0, input.ActionOK)

	assert.Empty(t, caller.payloads)
	assert.Contains(t, inv.message, "full health")
	assert.Equal(t, 10, ds.Inventory().Quantity(1))
}

func TestInventoryCaptureItemIsConsumedOnly(t *testing.T) {
	m, caller, _, ds, target := newInventoryHarness(t)
	hp := target.GetHP()

	m.Update(0, input.ActionDown)
	m.Update(0, input.ActionOK)

	require.Len(t, caller.payloads, 1)
	result := caller.payloads[0].(InventoryResult)
	assert.Equal(t, gamedata.ItemCapture, result.Item.TypeKey)
	assert.Equal(t, 9, ds.Inventory().Quantity(2))
	assert.Equal(t, hp, target.GetHP())
}

func TestInventoryCancel(t *testing.T) {
	m, caller, _, _, _ := newInventoryHarness(t)
	m.Update(0, input.ActionCancel)
	require.Len(t, caller.payloads, 1)
	assert.Equal(t, InventoryResult{}, caller.payloads[0])

	m2, caller2, _, _, _ := newInventoryHarness(t)
	for i := 0; i < 5; i++ {
		m2.Update(0, input.ActionDown)
	}
	m2.Update(0, input.ActionOK)
	require.Len(t, caller2.payloads, 1)
	assert.False(t, caller2.payloads[0].(InventoryResult).WasItemUsed)
}

func partyOf(t *testing.T, hps ...int) entity.Party {
	t.Helper()
	registry := gamedata.MustLoadRegistry()
	party := entity.Party{}
	for i, hp := range hps {
		m := entity.NewMonster(string(rune('a'+i)), registry.Species(1), 5)
		m.CurrentHP = hp
		party = append(party, m)
	}
	return party
}

func TestPartySelection(t *testing.T) {
	m := NewManager()
	caller := &recordingScene{name: "BATTLE"}
	m.Start(caller)
	ps := NewPartyScene(PartyConfig{Manager: m, Party: partyOf(t, 10, 0, 20), Request: PartyRequest{ActiveBattleMonsterPartyIndex: 0}})
	m.Launch(ps)

	m.Update(0, input.ActionOK)
	assert.Contains(t, ps.message, "already in battle")

	m.Update(0, input.ActionDown)
	m.Update(0, input.ActionOK)
	assert.Contains(t, ps.message, "no strength left")
	assert.Empty(t, caller.payloads)

	m.Update(0, input.ActionDown)
	m.Update(0, input.ActionOK)
	require.Len(t, caller.payloads, 1)
	assert.Equal(t, PartyResult{WasMonsterSelected: true, SelectedMonsterIndex: 2}, caller.payloads[0])
}

func TestPartyCancel(t *testing.T) {
	m := NewManager()
	caller := &recordingScene{name: "BATTLE"}
	m.Start(caller)
	m.Launch(NewPartyScene(PartyConfig{Manager: m, Party: partyOf(t, 10, 10)}))

	m.Update(0, input.ActionCancel)
	require.Len(t, caller.payloads, 1)
	assert.Equal(t, PartyResult{}, caller.payloads[0])
}

func TestPartyCancelBlockedAfterKnockOut(t *testing.T) {
	m := NewManager()
	caller := &recordingScene{name: "BATTLE"}
	m.Start(caller)
	ps := NewPartyScene(PartyConfig{
		Manager: m,
		Party:   partyOf(t, 0, 10),
		Request: PartyRequest{ActiveBattleMonsterPartyIndex: 0, ActiveMonsterKnockedOut: true},
	})
	m.Launch(ps)

	m.Update(0, input.ActionCancel)
	assert.Empty(t, caller.payloads)
	assert.Same(t, ps, m.Current())
}
