// Package input maps terminal key events onto the small set of actions scenes understand.
package input

import "github.com/gdamore/tcell/v2"

// Action is a discrete player input.
type Action int

const (
	// ActionNone means the event did not map to anything.
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionOK
	ActionCancel
	// ActionQuit leaves the game.
	ActionQuit
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionOK:
		return "ok"
	case ActionCancel:
		return "cancel"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// IsDirection reports whether the action is one of the four arrows.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}

// FromEvent converts a tcell event into an Action.
func FromEvent(ev tcell.Event) Action {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return ActionNone
	}

	switch key.Key() {
	case tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyUp:
		return ActionUp
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyEnter:
		return ActionOK
	case tcell.KeyEscape, tcell.KeyBackspace, tcell.KeyBackspace2:
		return ActionCancel

	case tcell.KeyRune:
		switch key.Rune() {
		case ' ', 'z', 'Z':
			return ActionOK
		case 'x', 'X':
			return ActionCancel
		case 'w', 'W', 'k':
			return ActionUp
		case 's', 'S', 'j':
			return ActionDown
		case 'a', 'A', 'h':
			return ActionLeft
		case 'd', 'D', 'l':
			return ActionRight
		case 'q', 'Q':
			return ActionQuit
		}
	}
	return ActionNone
}
