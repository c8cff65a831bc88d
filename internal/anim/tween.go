package anim

import "time"

// TweenConfig describes a numeric transition from From to To.
type TweenConfig struct {
	From     float64
	To       float64
	Duration time.Duration
	// Skip jumps straight to To and completes synchronously.
	Skip       bool
	OnUpdate   func(v float64)
	OnComplete func()
}

// Tween is a running numeric transition.
type Tween struct {
	cfg     TweenConfig
	elapsed time.Duration
	stopped bool
	done    bool
}

// Tween starts a transition. With Skip set, or a non-positive duration, OnUpdate
// receives To and OnComplete runs before Tween returns.
func (tl *Timeline) Tween(cfg TweenConfig) *Tween {
	tw := &Tween{cfg: cfg}
	if cfg.Skip || cfg.Duration <= 0 {
		tw.finish()
		return tw
	}
	if cfg.OnUpdate != nil {
		cfg.OnUpdate(cfg.From)
	}
	tl.tweens = append(tl.tweens, tw)
	return tw
}

// Stop halts the tween where it is. OnComplete will not run.
func (tw *Tween) Stop() {
	tw.stopped = true
}

// Done reports whether the tween reached its end value.
func (tw *Tween) Done() bool {
	return tw.done
}

// step advances the tween and reports whether it is still running.
func (tw *Tween) step(dt time.Duration) bool {
	if tw.stopped {
		return false
	}
	tw.elapsed += dt
	if tw.elapsed >= tw.cfg.Duration {
		tw.finish()
		return false
	}
	if tw.cfg.OnUpdate != nil {
		progress := float64(tw.elapsed) / float64(tw.cfg.Duration)
		tw.cfg.OnUpdate(tw.cfg.From + (tw.cfg.To-tw.cfg.From)*progress)
	}
	return true
}

func (tw *Tween) finish() {
	tw.done = true
	if tw.cfg.OnUpdate != nil {
		tw.cfg.OnUpdate(tw.cfg.To)
	}
	if tw.cfg.OnComplete != nil {
		tw.cfg.OnComplete()
	}
}
