package entity

import (
	"time"

	"github.com/samdwyer/monstertamer/internal/anim"
)

const (
	throwDuration = 600 * time.Millisecond
	shakeDuration = 300 * time.Millisecond
	shakePause    = 200 * time.Millisecond
)

// Ball is the capture ball thrown at the enemy.
type Ball struct {
	tl   *anim.Timeline
	skip bool

	visible  bool
	progress float64 // 0 at the player's side, 1 on the enemy
	tilt     int     // -1, 0 or 1 while shaking
}

// NewBall creates a hidden ball.
func NewBall(tl *anim.Timeline, skip bool) *Ball {
	return &Ball{tl: tl, skip: skip}
}

// Visible reports whether the ball is on screen.
func (b *Ball) Visible() bool { return b.visible }

// Progress returns how far along its throw arc the ball is, in [0,1].
func (b *Ball) Progress() float64 { return b.progress }

// Tilt returns the current shake direction.
func (b *Ball) Tilt() int { return b.tilt }

// PlayThrowBallAnimation shows the ball and moves it onto the enemy.
func (b *Ball) PlayThrowBallAnimation(onComplete func()) {
	b.visible = true
	b.tilt = 0
	b.tl.Tween(anim.TweenConfig{
		From:       0,
		To:         1,
		Duration:   throwDuration,
		Skip:       b.skip,
		OnUpdate:   func(v float64) { b.progress = v },
		OnComplete: onComplete,
	})
}

// PlayShakeBallAnimation rocks the ball count times. A count of zero completes immediately.
func (b *Ball) PlayShakeBallAnimation(count int, onComplete func()) {
	seq := anim.NewSequence()
	for i := 0; i < count; i++ {
		seq.Then(anim.Delay(b.tl, shakePause, b.skip))
		seq.Then(func(done func()) {
			b.tl.Tween(anim.TweenConfig{
				From:     0,
				To:       4,
				Duration: shakeDuration,
				Skip:     b.skip,
				OnUpdate: func(v float64) {
					switch int(v) {
					case 0, 2:
						b.tilt = -1
					case 1, 3:
						b.tilt = 1
					default:
						b.tilt = 0
					}
				},
				OnComplete: done,
			})
		})
	}
	seq.Run(onComplete)
}

// Hide removes the ball from the screen.
func (b *Ball) Hide() {
	b.visible = false
	b.progress = 0
	b.tilt = 0
}
