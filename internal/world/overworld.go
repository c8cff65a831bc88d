package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/monstertamer/internal/dice"
	"github.com/samdwyer/monstertamer/internal/telemetry"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24

	// EncounterChance is the percent chance per step on grass of meeting a wild monster.
	EncounterChance = 10

	minClearingSize = 6
	maxClearingSize = 14
	minLeafSize     = 8
	// grassPercent of each clearing's inner tiles are grass, except in the start clearing.
	grassPercent = 60
)

// Map is the overworld: clearings joined by paths, some of them overgrown with grass.
type Map struct {
	Width     int
	Height    int
	Tiles     [][]Tile
	Clearings []Clearing
	rng       *rand.Rand
}

// NewMap creates a map filled with forest. A nil rng is seeded from the clock.
func NewMap(width, height int, rng *rand.Rand) *Map {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = TileTree
		}
	}

	return &Map{
		Width:  width,
		Height: height,
		Tiles:  tiles,
		rng:    rng,
	}
}

// Generate lays out clearings with BSP, joins them with paths and plants grass.
func (m *Map) Generate(ctx context.Context) {
	_, span := telemetry.Tracer("world").Start(ctx, "overworld.generate")
	defer span.End()

	startTime := time.Now()

	root := &bspNode{x: 1, y: 1, width: m.Width - 2, height: m.Height - 2}
	m.splitNode(root)
	m.createClearings(root)
	m.connectClearings(root)

	grass := 0
	for i, c := range m.Clearings {
		if i == 0 {
			continue
		}
		grass += m.plantGrass(c)
	}

	span.SetAttributes(
		attribute.Int("overworld.width", m.Width),
		attribute.Int("overworld.height", m.Height),
		attribute.Int("overworld.clearing_count", len(m.Clearings)),
		attribute.Int("overworld.grass_tiles", grass),
		attribute.Int64("overworld.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

// Start returns where the player begins: the center of the first clearing, which never has grass.
func (m *Map) Start() (int, int) {
	if len(m.Clearings) == 0 {
		return m.Width / 2, m.Height / 2
	}
	return m.Clearings[0].Center()
}

// IsPassable returns true if the given position can be walked on.
func (m *Map) IsPassable(x, y int) bool {
	return m.GetTile(x, y).IsPassable()
}

// GetTile returns the tile at the given position. Outside the map is forest.
func (m *Map) GetTile(x, y int) Tile {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return TileTree
	}
	return m.Tiles[y][x]
}

// CheckEncounter rolls for a wild monster after a step onto (x, y).
// Only grass tiles roll; the roll hits when it is at most EncounterChance.
func (m *Map) CheckEncounter(x, y int, roller dice.Roller) bool {
	if !m.GetTile(x, y).HasEncounters() {
		return false
	}
	return roller.Between(1, 100) <= EncounterChance
}

type bspNode struct {
	x, y          int
	width, height int
	left, right   *bspNode
	clearing      *Clearing
}

func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

func (m *Map) splitNode(node *bspNode) {
	var splitHorizontally bool
	switch {
	case node.width > node.height && node.width >= minLeafSize*2:
		splitHorizontally = false
	case node.height >= minLeafSize*2:
		splitHorizontally = true
	case node.width >= minLeafSize*2:
		splitHorizontally = false
	default:
		return
	}

	size := node.width
	if splitHorizontally {
		size = node.height
	}
	lo, hi := minLeafSize, size-minLeafSize
	if hi < lo {
		return
	}
	splitPos := lo + m.rng.Intn(hi-lo+1)

	if splitHorizontally {
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPos}
		node.right = &bspNode{x: node.x, y: node.y + splitPos, width: node.width, height: node.height - splitPos}
	} else {
		node.left = &bspNode{x: node.x, y: node.y, width: splitPos, height: node.height}
		node.right = &bspNode{x: node.x + splitPos, y: node.y, width: node.width - splitPos, height: node.height}
	}

	m.splitNode(node.left)
	m.splitNode(node.right)
}

func (m *Map) createClearings(node *bspNode) {
	if node == nil {
		return
	}
	if !node.isLeaf() {
		m.createClearings(node.left)
		m.createClearings(node.right)
		return
	}

	w := min(maxClearingSize, node.width-2)
	h := min(maxClearingSize, node.height-2)
	if w < minClearingSize || h < minClearingSize {
		return
	}
	w = minClearingSize + m.rng.Intn(w-minClearingSize+1)
	h = minClearingSize + m.rng.Intn(h-minClearingSize+1)

	c := Clearing{
		X:      node.x + 1 + m.rng.Intn(node.width-w-1),
		Y:      node.y + 1 + m.rng.Intn(node.height-h-1),
		Width:  w,
		Height: h,
	}
	node.clearing = &c
	m.Clearings = append(m.Clearings, c)

	for y := c.Y; y < c.Y+c.Height; y++ {
		for x := c.X; x < c.X+c.Width; x++ {
			m.setPath(x, y)
		}
	}
}

// plantGrass covers the inside of c with grass, leaving a one-tile path border.
func (m *Map) plantGrass(c Clearing) int {
	planted := 0
	for y := c.Y + 1; y < c.Y+c.Height-1; y++ {
		for x := c.X + 1; x < c.X+c.Width-1; x++ {
			if m.Tiles[y][x] == TilePath && m.rng.Intn(100) < grassPercent {
				m.Tiles[y][x] = TileGrass
				planted++
			}
		}
	}
	return planted
}

func (m *Map) connectClearings(node *bspNode) {
	if node == nil || node.isLeaf() {
		return
	}
	m.connectClearings(node.left)
	m.connectClearings(node.right)

	left, right := m.anyClearing(node.left), m.anyClearing(node.right)
	if left == nil || right == nil {
		return
	}
	x1, y1 := left.Center()
	x2, y2 := right.Center()
	if m.rng.Intn(2) == 0 {
		m.carveHorizontal(x1, x2, y1)
		m.carveVertical(y1, y2, x2)
	} else {
		m.carveVertical(y1, y2, x1)
		m.carveHorizontal(x1, x2, y2)
	}
}

func (m *Map) anyClearing(node *bspNode) *Clearing {
	if node == nil {
		return nil
	}
	if node.clearing != nil {
		return node.clearing
	}
	if c := m.anyClearing(node.left); c != nil {
		return c
	}
	return m.anyClearing(node.right)
}

func (m *Map) carveHorizontal(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		m.setPath(x, y)
	}
}

func (m *Map) carveVertical(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		m.setPath(x, y)
	}
}

// setPath clears a tile unless it is on the forest border.
func (m *Map) setPath(x, y int) {
	if x > 0 && x < m.Width-1 && y > 0 && y < m.Height-1 {
		m.Tiles[y][x] = TilePath
	}
}
