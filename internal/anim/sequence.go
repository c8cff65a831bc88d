package anim

import "time"

// Step is one unit of asynchronous work. It must call done exactly once when it
// has finished, either synchronously or from a later timeline callback.
type Step func(done func())

// Sequence runs steps one after another, each starting only after the previous
// step has called done. A cancelled sequence stops before its next step.
type Sequence struct {
	steps     []Step
	index     int
	running   bool
	cancelled bool
	finished  bool
}

// NewSequence builds a sequence from steps. Nil steps are skipped.
func NewSequence(steps ...Step) *Sequence {
	s := &Sequence{}
	for _, step := range steps {
		if step != nil {
			s.steps = append(s.steps, step)
		}
	}
	return s
}

// Then appends a step and returns the sequence for chaining.
func (s *Sequence) Then(step Step) *Sequence {
	if step != nil {
		s.steps = append(s.steps, step)
	}
	return s
}

// Run starts the sequence. onComplete runs after the last step finishes and is
// never called for a cancelled sequence. Run is a no-op on a sequence already started.
func (s *Sequence) Run(onComplete func()) {
	if s.running || s.finished {
		return
	}
	s.running = true
	s.next(onComplete)
}

// Cancel stops the sequence before its next step.
func (s *Sequence) Cancel() {
	s.cancelled = true
}

// Cancelled reports whether Cancel was called.
func (s *Sequence) Cancelled() bool {
	return s.cancelled
}

// Finished reports whether every step completed.
func (s *Sequence) Finished() bool {
	return s.finished
}

func (s *Sequence) next(onComplete func()) {
	if s.cancelled {
		return
	}
	if s.index >= len(s.steps) {
		s.running = false
		s.finished = true
		if onComplete != nil {
			onComplete()
		}
		return
	}

	step := s.steps[s.index]
	s.index++

	called := false
	step(func() {
		if called {
			return
		}
		called = true
		s.next(onComplete)
	})
}

// Delay returns a step that waits d on tl. With skip set it finishes immediately.
func Delay(tl *Timeline, d time.Duration, skip bool) Step {
	return func(done func()) {
		if skip || d <= 0 {
			done()
			return
		}
		tl.After(d, done)
	}
}

// Do returns a step that runs fn and finishes immediately.
func Do(fn func()) Step {
	return func(done func()) {
		fn()
		done()
	}
}
