package gamedata

import (
	"log"

	"github.com/samdwyer/monstertamer/internal/dice"
	"github.com/samdwyer/monstertamer/internal/errors"
)

// MaxAttacks is the largest attack roster a monster can carry.
const MaxAttacks = 4

// Registry holds loaded definitions and provides lookup and spawning utilities.
type Registry struct {
	attacks     map[int]*AttackDef
	species     map[int]*SpeciesDef
	items       map[int]*ItemDef
	allItems    []ItemDef
	encounters  []EncounterDef
	totalWeight int
}

// NewRegistry creates a registry from loaded definitions.
func NewRegistry(attacks []AttackDef, species []SpeciesDef, items []ItemDef, encounters []EncounterDef) *Registry {
	r := &Registry{
		attacks:    make(map[int]*AttackDef, len(attacks)),
		species:    make(map[int]*SpeciesDef, len(species)),
		items:      make(map[int]*ItemDef, len(items)),
		allItems:   items,
		encounters: encounters,
	}
	for i := range attacks {
		r.attacks[attacks[i].ID] = &attacks[i]
	}
	for i := range species {
		r.species[species[i].ID] = &species[i]
	}
	for i := range items {
		r.items[items[i].ID] = &items[i]
	}
	for _, e := range encounters {
		r.totalWeight += e.SpawnWeight
	}
	return r
}

// LoadRegistry loads every embedded data table and validates cross references.
func LoadRegistry() (*Registry, error) {
	attacks, err := Load[attacksFile]("attacks.json")
	if err != nil {
		return nil, err
	}
	monsters, err := Load[monstersFile]("monsters.json")
	if err != nil {
		return nil, err
	}
	items, err := Load[itemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	encounters, err := Load[encountersFile]("encounters.json")
	if err != nil {
		return nil, err
	}

	r := NewRegistry(attacks.Attacks, monsters.Monsters, items.Items, encounters.Encounters)
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	r, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return r
}

// Validate checks that the tables reference each other consistently.
func (r *Registry) Validate() error {
	if len(r.species) == 0 {
		return errors.Validationf("no monsters loaded")
	}
	for id, s := range r.species {
		if len(s.AttackIDs) > MaxAttacks {
			return errors.Validationf("monster %d has %d attacks, max is %d", id, len(s.AttackIDs), MaxAttacks)
		}
		for _, attackID := range s.AttackIDs {
			if r.attacks[attackID] == nil {
				return errors.Validationf("monster %d references unknown attack %d", id, attackID)
			}
		}
	}
	for _, e := range r.encounters {
		if r.species[e.MonsterID] == nil {
			return errors.Validationf("encounter references unknown monster %d", e.MonsterID)
		}
		if e.MinLevel < 1 || e.MaxLevel < e.MinLevel {
			return errors.Validationf("encounter for monster %d has invalid level range %d-%d", e.MonsterID, e.MinLevel, e.MaxLevel)
		}
	}
	return nil
}

// Attack returns the attack with the given ID, or nil if not found.
func (r *Registry) Attack(id int) *AttackDef {
	return r.attacks[id]
}

// Attacks returns attack definitions for a list of IDs.
// Missing IDs are logged and skipped.
func (r *Registry) Attacks(ids []int) []*AttackDef {
	result := make([]*AttackDef, 0, len(ids))
	for _, id := range ids {
		attack := r.attacks[id]
		if attack == nil {
			log.Printf("gamedata: attack %d not found, skipping", id)
			continue
		}
		result = append(result, attack)
		if len(result) == MaxAttacks {
			break
		}
	}
	return result
}

// Species returns the monster species with the given ID, or nil if not found.
func (r *Registry) Species(id int) *SpeciesDef {
	return r.species[id]
}

// Item returns the item with the given ID, or nil if not found.
func (r *Registry) Item(id int) *ItemDef {
	return r.items[id]
}

// Items returns all item definitions.
func (r *Registry) Items() []ItemDef {
	return r.allItems
}

// SpawnRandom picks an encounter using weighted probability and rolls its level.
// Encounters with a higher spawnWeight are more likely to be selected.
func (r *Registry) SpawnRandom(roller dice.Roller) (*SpeciesDef, int) {
	if r.totalWeight <= 0 || len(r.encounters) == 0 {
		return nil, 0
	}

	roll := roller.Between(0, r.totalWeight-1)

	cumulative := 0
	for _, e := range r.encounters {
		cumulative += e.SpawnWeight
		if roll < cumulative {
			return r.species[e.MonsterID], roller.Between(e.MinLevel, e.MaxLevel)
		}
	}

	e := r.encounters[0]
	return r.species[e.MonsterID], e.MinLevel
}
