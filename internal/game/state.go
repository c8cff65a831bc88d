// Package game provides the main loop and the overworld that starts battles.
package game

// State represents what the player is currently doing.
type State int

const (
	// StateExplore is walking the overworld.
	StateExplore State = iota
	// StateBattle is a wild battle in progress, with its sub-scenes on top.
	StateBattle
	// StateParty is the party screen opened from the overworld.
	StateParty
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateBattle:
		return "battle"
	case StateParty:
		return "party"
	default:
		return "unknown"
	}
}
