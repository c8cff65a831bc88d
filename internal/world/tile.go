// Package world generates the overworld map the player walks between battles.
package world

// Tile represents a single map tile.
type Tile rune

const (
	// TileTree is impassable forest.
	TileTree Tile = '♣'
	// TilePath is walkable ground with no encounters.
	TilePath Tile = '.'
	// TileGrass is walkable tall grass where wild monsters hide.
	TileGrass Tile = '"'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TilePath || t == TileGrass
}

// HasEncounters reports whether wild monsters can appear on the tile.
func (t Tile) HasEncounters() bool {
	return t == TileGrass
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
