package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestFromEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		want Action
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionUp},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), ActionDown},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionLeft},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), ActionRight},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ActionOK},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionOK},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionCancel},
		{"x", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ActionCancel},
		{"wasd", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), ActionLeft},
		{"quit", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ActionQuit},
		{"unmapped rune", tcell.NewEventKey(tcell.KeyRune, '7', tcell.ModNone), ActionNone},
		{"resize", tcell.NewEventResize(80, 24), ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromEvent(tt.ev))
		})
	}
}

func TestActionHelpers(t *testing.T) {
	assert.True(t, ActionLeft.IsDirection())
	assert.False(t, ActionOK.IsDirection())
	assert.Equal(t, "cancel", ActionCancel.String())
	assert.Equal(t, "unknown", Action(42).String())
}
