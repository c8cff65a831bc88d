package dice

import "sync"

// ManualRoller returns predetermined rolls, for tests.
// Each queued value is clamped into the requested range. Once the queue is
// exhausted every call returns the range minimum.
type ManualRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
	calls     int
}

// NewManualRoller creates a roller that will return the given rolls in order.
func NewManualRoller(rolls ...int) *ManualRoller {
	return &ManualRoller{rolls: rolls}
}

// SetNextRoll appends a roll to the queue
func (m *ManualRoller) SetNextRoll(roll int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append(m.rolls, roll)
}

// SetRolls replaces the queue
func (m *ManualRoller) SetRolls(rolls ...int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// Remaining returns how many queued rolls have not been used yet.
func (m *ManualRoller) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rolls) - m.rollIndex
}

// Calls returns the number of Between calls made so far.
func (m *ManualRoller) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Between implements Roller.Between
func (m *ManualRoller) Between(min, max int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	if m.rollIndex >= len(m.rolls) {
		return min
	}
	roll := m.rolls[m.rollIndex]
	m.rollIndex++

	if roll < min {
		return min
	}
	if roll > max {
		return max
	}
	return roll
}

var _ Roller = (*ManualRoller)(nil)
