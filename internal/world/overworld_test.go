package world

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/monstertamer/internal/dice"
)

func generate(seed int64) *Map {
	m := NewMap(DefaultWidth, DefaultHeight, rand.New(rand.NewSource(seed)))
	m.Generate(context.Background())
	return m
}

func TestMapReproducibility(t *testing.T) {
	m1, m2 := generate(12345), generate(12345)

	require.Equal(t, m1.Clearings, m2.Clearings)
	assert.Equal(t, m1.Tiles, m2.Tiles)
}

func TestMapDifferentSeeds(t *testing.T) {
	m1, m2 := generate(12345), generate(54321)
	assert.NotEqual(t, m1.Tiles, m2.Tiles)
}

func TestMapBorderIsForest(t *testing.T) {
	m := generate(7)
	for x := 0; x < m.Width; x++ {
		assert.Equal(t, TileTree, m.GetTile(x, 0))
		assert.Equal(t, TileTree, m.GetTile(x, m.Height-1))
	}
	for y := 0; y < m.Height; y++ {
		assert.Equal(t, TileTree, m.GetTile(0, y))
		assert.Equal(t, TileTree, m.GetTile(m.Width-1, y))
	}
	assert.False(t, m.IsPassable(-1, 3))
}

func TestStartClearingIsSafe(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		m := generate(seed)
		require.NotEmpty(t, m.Clearings, "seed %d", seed)

		x, y := m.Start()
		assert.True(t, m.IsPassable(x, y), "seed %d", seed)

		start := m.Clearings[0]
		for yy := start.Y; yy < start.Y+start.Height; yy++ {
			for xx := start.X; xx < start.X+start.Width; xx++ {
				assert.NotEqual(t, TileGrass, m.GetTile(xx, yy), "seed %d at (%d,%d)", seed, xx, yy)
			}
		}
	}
}

func TestMapIsConnectedAndHasGrass(t *testing.T) {
	m := generate(99)

	sx, sy := m.Start()
	seen := map[[2]int]bool{{sx, sy}: true}
	queue := [][2]int{{sx, sy}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range [][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}} {
			n := [2]int{p[0] + d[0], p[1] + d[1]}
			if !seen[n] && m.IsPassable(n[0], n[1]) {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}

	grass := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !m.IsPassable(x, y) {
				continue
			}
			assert.True(t, seen[[2]int{x, y}], "(%d,%d) unreachable", x, y)
			if m.GetTile(x, y) == TileGrass {
				grass++
			}
		}
	}
	if len(m.Clearings) > 1 {
		assert.Positive(t, grass)
	}
}

func TestCheckEncounter(t *testing.T) {
	m := NewMap(5, 5, rand.New(rand.NewSource(1)))
	m.Tiles[2][2] = TileGrass
	m.Tiles[2][1] = TilePath

	tests := []struct {
		name  string
		x, y  int
		roll  int
		want  bool
		calls int
	}{
		{"grass low roll", 2, 2, 1, true, 1},
		{"grass at chance", 2, 2, EncounterChance, true, 1},
		{"grass above chance", 2, 2, EncounterChance + 1, false, 1},
		{"path never rolls", 1, 2, 1, false, 0},
		{"tree never rolls", 0, 0, 1, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := dice.NewManualRoller(tt.roll)
			assert.Equal(t, tt.want, m.CheckEncounter(tt.x, tt.y, roller))
			assert.Equal(t, tt.calls, roller.Calls())
		})
	}
}
