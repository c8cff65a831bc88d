package battle

//go:generate mockgen -destination=mocks/mock_effects.go -package=mocks -source=effects.go

import (
	"time"

	"github.com/samdwyer/monstertamer/internal/anim"
	"github.com/samdwyer/monstertamer/internal/entity"
)

// AttackAnimator plays the visual for an attack landing on target.
// done must be called once the animation is over; with skip set it must be called before returning.
type AttackAnimator interface {
	PlayAttack(animationName string, target entity.Side, skip bool, done func())
}

// AudioPlayer plays fire-and-forget sound effects.
type AudioPlayer interface {
	PlaySoundEffect(key string)
}

// Beeper is anything that can ring the terminal bell.
type Beeper interface {
	Beep()
}

const flashDuration = 400 * time.Millisecond

// FlashAnimator draws attacks by flashing the target's panel.
type FlashAnimator struct {
	tl *anim.Timeline

	active  bool
	target  entity.Side
	current string
}

// NewFlashAnimator creates an animator driven by tl.
func NewFlashAnimator(tl *anim.Timeline) *FlashAnimator {
	return &FlashAnimator{tl: tl}
}

// PlayAttack implements AttackAnimator.
func (a *FlashAnimator) PlayAttack(animationName string, target entity.Side, skip bool, done func()) {
	if skip {
		done()
		return
	}
	a.active = true
	a.target = target
	a.current = animationName
	a.tl.After(flashDuration, func() {
		a.active = false
		a.current = ""
		done()
	})
}

// Flashing reports whether side is being hit, and by which animation.
func (a *FlashAnimator) Flashing(side entity.Side) (string, bool) {
	if !a.active || a.target != side {
		return "", false
	}
	return a.current, true
}

// BellPlayer plays every sound effect as the terminal bell.
type BellPlayer struct {
	beeper Beeper
	muted  bool
}

// NewBellPlayer creates a player that rings b. A muted player does nothing.
func NewBellPlayer(b Beeper, muted bool) *BellPlayer {
	return &BellPlayer{beeper: b, muted: muted}
}

// PlaySoundEffect implements AudioPlayer.
func (p *BellPlayer) PlaySoundEffect(key string) {
	if p.muted || p.beeper == nil || key == "" {
		return
	}
	p.beeper.Beep()
}

type silentAudio struct{}

func (silentAudio) PlaySoundEffect(string) {}

var (
	_ AttackAnimator = (*FlashAnimator)(nil)
	_ AudioPlayer    = (*BellPlayer)(nil)
)
