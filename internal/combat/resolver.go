// Package combat provides the turn rules for monster battles: who moves first,
// how much an attack hurts, whether a flee works and what an item does.
package combat

import (
	"fmt"

	"github.com/samdwyer/monstertamer/internal/dice"
	"github.com/samdwyer/monstertamer/internal/gamedata"
)

// Combatant is anything that can attack or be attacked in a battle.
type Combatant interface {
	GetName() string
	GetAttack() int
	GetHP() int
	GetMaxHP() int
	IsFainted() bool
}

// AttackResult contains the outcome of resolving an attack.
type AttackResult struct {
	Success bool
	Damage  int    // Amount to apply to the target
	Message string // Human-readable description
}

// ItemResult contains the outcome of using an item on a monster.
type ItemResult struct {
	Success bool
	Healing int
	Capture bool // True when the item starts a capture attempt
	Message string
}

// Resolver calculates attack and item effects. It never mutates combatants;
// the caller applies the result once its animations have played.
type Resolver struct {
	roller dice.Roller
}

// NewResolver creates a new resolver drawing from roller.
func NewResolver(roller dice.Roller) *Resolver {
	return &Resolver{roller: roller}
}

// Resolve works out an attack from user to target.
func (r *Resolver) Resolve(attack *gamedata.AttackDef, user Combatant, target Combatant) AttackResult {
	if attack == nil {
		return AttackResult{Success: false, Message: "Invalid attack"}
	}
	if user.IsFainted() {
		return AttackResult{Success: false, Message: user.GetName() + " cannot attack"}
	}

	return AttackResult{
		Success: true,
		Damage:  r.CalculateDamage(attack, user, target),
		Message: AttackMessage(user, attack),
	}
}

// CalculateDamage returns the damage an attack would deal without applying it.
// Damage is the attacker's current attack stat.
func (r *Resolver) CalculateDamage(attack *gamedata.AttackDef, user Combatant, target Combatant) int {
	if attack == nil {
		return 0
	}
	damage := user.GetAttack()
	if damage < 0 {
		damage = 0
	}
	return damage
}

// PlayerAttacksFirst flips a fair coin for turn order.
func (r *Resolver) PlayerAttacksFirst() bool {
	return r.roller.Between(0, 1) == 0
}

// FleeSucceeds rolls 1-10; anything above 5 gets away.
func (r *Resolver) FleeSucceeds() bool {
	return r.roller.Between(1, 10) > 5
}

// ResolveItem works out what item does when used on target.
func (r *Resolver) ResolveItem(item *gamedata.ItemDef, target Combatant) ItemResult {
	if item == nil {
		return ItemResult{Success: false, Message: "Invalid item"}
	}

	switch item.TypeKey {
	case gamedata.ItemHeal:
		if target.IsFainted() {
			return ItemResult{Success: false, Message: target.GetName() + " has fainted and cannot be healed"}
		}
		healing := item.Value
		if room := target.GetMaxHP() - target.GetHP(); healing > room {
			healing = room
		}
		return ItemResult{
			Success: true,
			Healing: healing,
			Message: UsedItemMessage(item),
		}
	case gamedata.ItemCapture:
		return ItemResult{
			Success: true,
			Capture: true,
			Message: fmt.Sprintf("You threw a %s", item.Name),
		}
	default:
		return ItemResult{Success: false, Message: "Unknown item type"}
	}
}

// AttackMessage is the info pane line for an attack.
func AttackMessage(user Combatant, attack *gamedata.AttackDef) string {
	return fmt.Sprintf("%s used %s", user.GetName(), attack.Name)
}

// UsedItemMessage is the info pane line after an item is used from the bag.
func UsedItemMessage(item *gamedata.ItemDef) string {
	return fmt.Sprintf("You used the following item: %s", item.Name)
}
