// Package dice provides the random number source used by battle rolls.
package dice

import (
	"math/rand"
	"sync"
)

// Roller draws integers for battle decisions.
// Injecting it keeps every random outcome reproducible in tests.
type Roller interface {
	// Between returns a uniformly distributed integer in [min, max], both inclusive.
	Between(min, max int) int
}

// randomRoller implements Roller on a seeded math/rand source.
type randomRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomRoller creates a roller seeded with the given value.
func NewRandomRoller(seed int64) Roller {
	return &randomRoller{rng: rand.New(rand.NewSource(seed))}
}

// Between implements Roller.Between
func (r *randomRoller) Between(min, max int) int {
	if max <= min {
		return min
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return min + r.rng.Intn(max-min+1)
}
