package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 16 * time.Millisecond

func TestAfterFiresInScheduledOrder(t *testing.T) {
	tl := NewTimeline()
	var got []string
	tl.After(50*time.Millisecond, func() { got = append(got, "b") })
	tl.After(20*time.Millisecond, func() { got = append(got, "a") })
	tl.After(50*time.Millisecond, func() { got = append(got, "c") })

	tl.Update(30 * time.Millisecond)
	assert.Equal(t, []string{"a"}, got)

	tl.Update(30 * time.Millisecond)
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, 0, tl.Pending())
}

func TestTimerScheduledWhileFiringRunsNextUpdate(t *testing.T) {
	tl := NewTimeline()
	var got []string
	tl.After(0, func() {
		got = append(got, "first")
		tl.After(0, func() { got = append(got, "second") })
	})

	tl.Update(frame)
	assert.Equal(t, []string{"first"}, got)
	tl.Update(frame)
	assert.Equal(t, []string{"first", "second"}, got)
}

func TestTimerStop(t *testing.T) {
	tl := NewTimeline()
	fired := false
	timer := tl.After(frame, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())
	tl.Update(frame * 2)
	assert.False(t, fired)
}

func TestClearDropsEverything(t *testing.T) {
	tl := NewTimeline()
	fired := false
	tl.After(frame, func() { fired = true })
	tl.Tween(TweenConfig{From: 0, To: 1, Duration: time.Second, OnComplete: func() { fired = true }})
	require.Equal(t, 2, tl.Pending())

	tl.Clear()
	tl.Update(2 * time.Second)

	assert.False(t, fired)
	assert.Equal(t, 0, tl.Pending())
}

func TestTweenInterpolatesAndCompletes(t *testing.T) {
	tl := NewTimeline()
	var values []float64
	completed := false
	tl.Tween(TweenConfig{
		From:       100,
		To:         0,
		Duration:   100 * time.Millisecond,
		OnUpdate:   func(v float64) { values = append(values, v) },
		OnComplete: func() { completed = true },
	})

	tl.Update(50 * time.Millisecond)
	assert.False(t, completed)
	assert.InDelta(t, 50, values[len(values)-1], 0.001)

	tl.Update(50 * time.Millisecond)
	assert.True(t, completed)
	assert.InDelta(t, 0, values[len(values)-1], 0.001)
	assert.Equal(t, 100.0, values[0])
}

func TestTweenSkipCompletesSynchronously(t *testing.T) {
	tl := NewTimeline()
	var last float64
	completed := false

	tw := tl.Tween(TweenConfig{
		From:       0,
		To:         0.4,
		Duration:   time.Second,
		Skip:       true,
		OnUpdate:   func(v float64) { last = v },
		OnComplete: func() { completed = true },
	})

	assert.True(t, completed)
	assert.True(t, tw.Done())
	assert.Equal(t, 0.4, last)
	assert.Equal(t, 0, tl.Pending())
}

func TestSequenceRunsStepsInOrder(t *testing.T) {
	tl := NewTimeline()
	var got []string

	seq := NewSequence(
		Do(func() { got = append(got, "one") }),
		Delay(tl, 100*time.Millisecond, false),
		func(done func()) {
			got = append(got, "two")
			tl.After(frame, done)
		},
	).Then(Do(func() { got = append(got, "three") }))

	completed := false
	seq.Run(func() { completed = true })

	assert.Equal(t, []string{"one"}, got)
	tl.Flush(frame, 100)

	assert.Equal(t, []string{"one", "two", "three"}, got)
	assert.True(t, completed)
	assert.True(t, seq.Finished())
}

func TestSequenceSkipIsSynchronous(t *testing.T) {
	tl := NewTimeline()
	completed := false

	NewSequence(Delay(tl, time.Second, true), nil, Delay(tl, 0, false)).Run(func() { completed = true })

	assert.True(t, completed)
	assert.Equal(t, 0, tl.Pending())
}

func TestSequenceCancel(t *testing.T) {
	tl := NewTimeline()
	ran := false
	completed := false
	seq := NewSequence(Delay(tl, frame, false), Do(func() { ran = true }))
	seq.Run(func() { completed = true })

	seq.Cancel()
	tl.Flush(frame, 10)

	assert.False(t, ran)
	assert.False(t, completed)
	assert.True(t, seq.Cancelled())
}

func TestSequenceIgnoresDoubleDone(t *testing.T) {
	count := 0
	NewSequence(func(done func()) {
		done()
		done()
	}, Do(func() { count++ })).Run(nil)

	assert.Equal(t, 1, count)
}
