package scene

import (
	"fmt"
	"log"
	"time"

	"github.com/samdwyer/monstertamer/internal/combat"
	"github.com/samdwyer/monstertamer/internal/entity"
	"github.com/samdwyer/monstertamer/internal/gamedata"
	"github.com/samdwyer/monstertamer/internal/input"
	"github.com/samdwyer/monstertamer/internal/store"
	"github.com/samdwyer/monstertamer/internal/ui"
)

// InventoryResult is the payload the inventory resumes its caller with.
type InventoryResult struct {
	WasItemUsed bool
	Item        *gamedata.ItemDef
}

// InventoryConfig configures an InventoryScene.
type InventoryConfig struct {
	Manager  *Manager
	Store    *store.DataStore
	Registry *gamedata.Registry
	Resolver *combat.Resolver
	// Target is the monster heal items are used on.
	Target *entity.BattleMonster
}

// InventoryScene lets the player pick an item from the bag during a battle.
// Heal items are applied to the target and consumed here; capture items are
// only consumed, the battle runs the capture.
type InventoryScene struct {
	manager  *Manager
	store    *store.DataStore
	registry *gamedata.Registry
	resolver *combat.Resolver
	target   *entity.BattleMonster

	cursor  int
	message string
}

// NewInventoryScene creates the inventory sub-scene.
func NewInventoryScene(cfg InventoryConfig) *InventoryScene {
	return &InventoryScene{
		manager:  cfg.Manager,
		store:    cfg.Store,
		registry: cfg.Registry,
		resolver: cfg.Resolver,
		target:   cfg.Target,
		message:  "Choose an item",
	}
}

// Name implements Scene.
func (s *InventoryScene) Name() string { return "INVENTORY" }

// Resume implements Scene. The inventory launches nothing.
func (s *InventoryScene) Resume(payload any) {}

// entries is the bag with unknown items filtered out.
func (s *InventoryScene) entries() []store.InventoryEntry {
	var out []store.InventoryEntry
	for _, e := range s.store.Inventory() {
		if e.Quantity > 0 && s.registry.Item(e.ItemID) != nil {
			out = append(out, e)
		}
	}
	return out
}

// Update implements Scene. The last row is CANCEL.
func (s *InventoryScene) Update(dt time.Duration, action input.Action) {
	entries := s.entries()
	rows := len(entries) + 1
	if s.cursor >= rows {
		s.cursor = rows - 1
	}

	switch action {
	case input.ActionUp:
		if s.cursor > 0 {
			s.cursor--
		}
	case input.ActionDown:
		if s.cursor < rows-1 {
			s.cursor++
		}
	case input.ActionCancel:
		s.close(InventoryResult{})
	case input.ActionOK:
		if s.cursor == len(entries) {
			s.close(InventoryResult{})
			return
		}
		s.use(s.registry.Item(entries[s.cursor].ItemID))
	}
}

func (s *InventoryScene) use(item *gamedata.ItemDef) {
	result := s.resolver.ResolveItem(item, s.target)
	if !result.Success {
		s.message = result.Message
		return
	}
	if item.TypeKey == gamedata.ItemHeal && result.Healing <= 0 {
		s.message = fmt.Sprintf("%s is already at full health", s.target.GetName())
		return
	}

	if err := s.store.ConsumeItem(item.ID); err != nil {
		log.Printf("inventory: failed to consume %s: %v", item.Name, err)
		s.message = "You don't have any left"
		return
	}
	if result.Healing > 0 {
		s.target.Record().Heal(result.Healing)
	}
	s.close(InventoryResult{WasItemUsed: true, Item: item})
}

func (s *InventoryScene) close(result InventoryResult) {
	s.manager.Stop(result)
}

// Draw implements Scene.
func (s *InventoryScene) Draw(r *ui.Renderer) {
	w, h := r.Size()
	r.Box(0, 0, w, h, ui.StyleBorder)
	r.Text(2, 1, "BAG", ui.StyleCursor)

	entries := s.entries()
	y := 3
	for i, e := range entries {
		item := s.registry.Item(e.ItemID)
		style := ui.StyleText
		prefix := "  "
		if i == s.cursor {
			style = ui.StyleCursor
			prefix = "> "
		}
		r.Text(2, y, fmt.Sprintf("%s%-16s x%d", prefix, item.Name, e.Quantity), style)
		r.Text(26, y, item.Description, ui.StyleDim)
		y++
	}

	style := ui.StyleText
	prefix := "  "
	if s.cursor == len(entries) {
		style = ui.StyleCursor
		prefix = "> "
	}
	r.Text(2, y+1, prefix+"CANCEL", style)
	r.Text(2, h-2, s.message, ui.StyleText)
}
