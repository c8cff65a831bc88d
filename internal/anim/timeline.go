// Package anim provides the frame-driven timing primitives the battle is sequenced with:
// delayed calls, numeric tweens and ordered step sequences.
//
// Nothing here blocks. Work is scheduled on a Timeline and runs when the owner
// advances it with Update, once per frame.
package anim

import (
	"sort"
	"time"
)

// Timeline schedules delayed callbacks and tweens against a frame clock.
type Timeline struct {
	now    time.Duration
	seq    uint64
	timers []*Timer
	tweens []*Tween
}

// NewTimeline creates an empty timeline at time zero.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Timer is a pending delayed call.
type Timer struct {
	due     time.Duration
	seq     uint64
	fn      func()
	stopped bool
}

// Stop prevents the timer from firing. It reports whether the timer was still pending.
func (t *Timer) Stop() bool {
	if t.stopped || t.fn == nil {
		return false
	}
	t.stopped = true
	return true
}

// Now returns the timeline's clock.
func (tl *Timeline) Now() time.Duration {
	return tl.now
}

// After schedules fn to run once d has elapsed on the timeline.
// Calls due on the same frame run in the order they were scheduled.
func (tl *Timeline) After(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	tl.seq++
	t := &Timer{due: tl.now + d, seq: tl.seq, fn: fn}
	tl.timers = append(tl.timers, t)
	return t
}

// Update advances the clock by dt, steps running tweens and fires due timers.
// Work scheduled while firing is picked up on a later Update.
func (tl *Timeline) Update(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	tl.now += dt

	tweens := tl.tweens
	tl.tweens = nil
	for _, tw := range tweens {
		if tw.step(dt) {
			tl.tweens = append(tl.tweens, tw)
		}
	}

	var due, later []*Timer
	for _, t := range tl.timers {
		switch {
		case t.stopped:
		case t.due <= tl.now:
			due = append(due, t)
		default:
			later = append(later, t)
		}
	}
	tl.timers = later

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})
	for _, t := range due {
		if t.stopped {
			continue
		}
		t.stopped = true
		t.fn()
	}
}

// Pending returns the number of timers and tweens still running.
func (tl *Timeline) Pending() int {
	n := len(tl.tweens)
	for _, t := range tl.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Clear drops every pending timer and tween without running them.
func (tl *Timeline) Clear() {
	for _, t := range tl.timers {
		t.stopped = true
	}
	for _, tw := range tl.tweens {
		tw.stopped = true
	}
	tl.timers = nil
	tl.tweens = nil
}

// Flush runs the timeline forward until nothing is pending or maxFrames frames have passed.
// It returns the number of frames advanced.
func (tl *Timeline) Flush(frame time.Duration, maxFrames int) int {
	frames := 0
	for tl.Pending() > 0 && frames < maxFrames {
		tl.Update(frame)
		frames++
	}
	return frames
}
