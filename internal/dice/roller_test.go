package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomRollerStaysInRange(t *testing.T) {
	r := NewRandomRoller(12345)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := r.Between(1, 10)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 10)
		seen[v] = true
	}
	// Both bounds are inclusive
	assert.True(t, seen[1])
	assert.True(t, seen[10])
}

func TestRandomRollerReproducible(t *testing.T) {
	r1 := NewRandomRoller(42)
	r2 := NewRandomRoller(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, r1.Between(0, 100), r2.Between(0, 100))
	}
}

func TestRandomRollerDegenerateRange(t *testing.T) {
	r := NewRandomRoller(1)
	assert.Equal(t, 3, r.Between(3, 3))
	assert.Equal(t, 5, r.Between(5, 2))
}

func TestManualRoller(t *testing.T) {
	m := NewManualRoller(6, 0, 200)

	assert.Equal(t, 6, m.Between(1, 10))
	assert.Equal(t, 1, m.Between(1, 10), "clamped to min")
	assert.Equal(t, 100, m.Between(0, 100), "clamped to max")
	assert.Equal(t, 0, m.Remaining())
	assert.Equal(t, 5, m.Between(5, 8), "exhausted queue returns min")
	assert.Equal(t, 4, m.Calls())

	m.SetRolls(2)
	assert.Equal(t, 2, m.Between(0, 3))
}
