// Package scene runs the stack of active scenes. Launching a sub-scene pauses
// the one below it; stopping the sub-scene resumes the one below with a result payload.
package scene

import (
	"log"
	"time"

	"github.com/samdwyer/monstertamer/internal/input"
	"github.com/samdwyer/monstertamer/internal/ui"
)

// Scene is one screen of the game.
type Scene interface {
	// Name identifies the scene in logs.
	Name() string
	// Update advances the scene by dt. action is ActionNone on frames without input.
	Update(dt time.Duration, action input.Action)
	// Draw renders the scene.
	Draw(r *ui.Renderer)
	// Resume is called when a sub-scene launched on top of this one stops.
	// A nil or unexpected payload means no selection was made.
	Resume(payload any)
}

// Manager holds the scene stack. Only the top scene is updated and drawn.
type Manager struct {
	stack []Scene
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// Start replaces the whole stack with s.
func (m *Manager) Start(s Scene) {
	log.Printf("scene: start %s", s.Name())
	m.stack = []Scene{s}
}

// Launch pauses the current scene and runs s on top of it.
func (m *Manager) Launch(s Scene) {
	if cur := m.Current(); cur != nil {
		log.Printf("scene: pause %s, launch %s", cur.Name(), s.Name())
	}
	m.stack = append(m.stack, s)
}

// Stop removes the top scene and resumes the one beneath with payload.
func (m *Manager) Stop(payload any) {
	if len(m.stack) == 0 {
		return
	}
	top := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]

	next := m.Current()
	if next == nil {
		log.Printf("scene: stop %s, stack empty", top.Name())
		return
	}
	log.Printf("scene: stop %s, resume %s", top.Name(), next.Name())
	next.Resume(payload)
}

// Current returns the running scene, or nil.
func (m *Manager) Current() Scene {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

// Depth returns how many scenes are on the stack.
func (m *Manager) Depth() int {
	return len(m.stack)
}

// Update advances the running scene.
func (m *Manager) Update(dt time.Duration, action input.Action) {
	if cur := m.Current(); cur != nil {
		cur.Update(dt, action)
	}
}

// Draw renders the running scene.
func (m *Manager) Draw(r *ui.Renderer) {
	if cur := m.Current(); cur != nil {
		cur.Draw(r)
	}
}
