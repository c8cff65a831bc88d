package world

// Clearing is a rectangular open area cut out of the forest.
type Clearing struct {
	X, Y          int // Top-left corner position
	Width, Height int
}

// Center returns the center coordinates of the clearing.
func (c Clearing) Center() (int, int) {
	return c.X + c.Width/2, c.Y + c.Height/2
}

// Contains returns true if the given point is inside the clearing.
func (c Clearing) Contains(x, y int) bool {
	return x >= c.X && x < c.X+c.Width && y >= c.Y && y < c.Y+c.Height
}
