package scene

import (
	"fmt"
	"time"

	"github.com/samdwyer/monstertamer/internal/entity"
	"github.com/samdwyer/monstertamer/internal/input"
	"github.com/samdwyer/monstertamer/internal/ui"
)

// PartyRequest is what the battle tells the party screen when launching it.
type PartyRequest struct {
	ActiveBattleMonsterPartyIndex int
	ActiveMonsterKnockedOut       bool
}

// PartyResult is the payload the party screen resumes its caller with.
type PartyResult struct {
	WasMonsterSelected   bool
	SelectedMonsterIndex int
}

// PartyConfig configures a PartyScene.
type PartyConfig struct {
	Manager *Manager
	Party   entity.Party
	Request PartyRequest
}

// PartyScene lets the player pick the monster to send out next.
type PartyScene struct {
	manager *Manager
	party   entity.Party
	request PartyRequest

	cursor  int
	message string
}

// NewPartyScene creates the party selection sub-scene.
func NewPartyScene(cfg PartyConfig) *PartyScene {
	s := &PartyScene{
		manager: cfg.Manager,
		party:   cfg.Party,
		request: cfg.Request,
		message: "Choose a monster",
	}
	if cfg.Request.ActiveMonsterKnockedOut {
		s.message = "Your monster is knocked out, choose a new one"
	}
	return s
}

// Name implements Scene.
func (s *PartyScene) Name() string { return "PARTY" }

// Resume implements Scene. The party screen launches nothing.
func (s *PartyScene) Resume(payload any) {}

// Update implements Scene.
func (s *PartyScene) Update(dt time.Duration, action input.Action) {
	switch action {
	case input.ActionUp:
		if s.cursor > 0 {
			s.cursor--
		}
	case input.ActionDown:
		if s.cursor < len(s.party)-1 {
			s.cursor++
		}
	case input.ActionCancel:
		if s.request.ActiveMonsterKnockedOut {
			s.message = "You must select a new monster to continue"
			return
		}
		s.manager.Stop(PartyResult{})
	case input.ActionOK:
		s.choose()
	}
}

func (s *PartyScene) choose() {
	if s.cursor < 0 || s.cursor >= len(s.party) {
		return
	}
	m := s.party[s.cursor]
	switch {
	case s.cursor == s.request.ActiveBattleMonsterPartyIndex:
		s.message = fmt.Sprintf("%s is already in battle", m.Name)
	case m.IsFainted():
		s.message = fmt.Sprintf("%s has no strength left to fight", m.Name)
	default:
		s.manager.Stop(PartyResult{WasMonsterSelected: true, SelectedMonsterIndex: s.cursor})
	}
}

// Draw implements Scene.
func (s *PartyScene) Draw(r *ui.Renderer) {
	w, h := r.Size()
	r.Box(0, 0, w, h, ui.StyleBorder)
	r.Text(2, 1, "PARTY", ui.StyleCursor)

	for i, m := range s.party {
		y := 3 + i*2
		style := ui.StyleText
		prefix := "  "
		if i == s.cursor {
			style = ui.StyleCursor
			prefix = "> "
		}
		if m.IsFainted() {
			style = ui.StyleDim
		}
		r.Text(2, y, fmt.Sprintf("%s%-12s Lv%-3d %3d/%-3d", prefix, m.Name, m.CurrentLevel, m.CurrentHP, m.MaxHP), style)
		r.Bar(36, y, 20, m.HealthRatio(), ui.HealthStyle(m.HealthRatio()))
	}
	r.Text(2, h-2, s.message, ui.StyleText)
}
