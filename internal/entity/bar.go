package entity

import (
	"time"

	"github.com/samdwyer/monstertamer/internal/anim"
)

// Bar is a meter shown as a fraction of its full width, such as a health or experience bar.
type Bar struct {
	tl      *anim.Timeline
	value   float64
	tween   *anim.Tween
	visible bool
}

// NewBar creates a bar at value.
func NewBar(tl *anim.Timeline, value float64) *Bar {
	return &Bar{tl: tl, value: clamp01(value), visible: true}
}

// Value returns the displayed fraction in [0,1].
func (b *Bar) Value() float64 { return b.value }

// Visible reports whether the bar is shown.
func (b *Bar) Visible() bool { return b.visible }

// SetVisible shows or hides the bar.
func (b *Bar) SetVisible(v bool) { b.visible = v }

// Set jumps the bar to value, cancelling any running transition.
func (b *Bar) Set(value float64) {
	b.stop()
	b.value = clamp01(value)
}

// SetAnimated moves the bar to value over duration and then calls onComplete.
// With skip set the bar jumps and onComplete runs before SetAnimated returns.
func (b *Bar) SetAnimated(value float64, duration time.Duration, skip bool, onComplete func()) {
	b.stop()
	b.tween = b.tl.Tween(anim.TweenConfig{
		From:     b.value,
		To:       clamp01(value),
		Duration: duration,
		Skip:     skip,
		OnUpdate: func(v float64) {
			b.value = v
		},
		OnComplete: onComplete,
	})
}

func (b *Bar) stop() {
	if b.tween != nil && !b.tween.Done() {
		b.tween.Stop()
	}
	b.tween = nil
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
