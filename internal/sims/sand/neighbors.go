package sand

import "mad-sand/internal/core"

// Neighborhood is the 3x3 view every update rule decides from:
//
//	0 1 2
//	3 8 4
//	5 6 7
//
// Index 8 is the cell's own coordinate. Rules index into it positionally.
type Neighborhood [9]Layer

// Neighborhood indices.
const (
	UpLeft = iota
	Up
	UpRight
	Left
	Right
	DownLeft
	Down
	DownRight
	Self
)

var neighborOffsets = [9]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
	{0, 0},
}

// Offset returns the displacement of neighborhood index i from the centre.
func Offset(i int) Point { return neighborOffsets[i] }

// Sample reads the neighborhood of p. Coordinates outside g come back as
// LayerBoundary.
func Sample(g *core.ByteGrid, p Point) Neighborhood {
	var n Neighborhood
	for i, off := range neighborOffsets {
		n[i] = Layer(g.At(p.X+off.X, p.Y+off.Y))
	}
	return n
}

// TouchesTop reports whether any of the three upper neighbors is off-grid.
func (n Neighborhood) TouchesTop() bool {
	return n[UpLeft] == LayerBoundary || n[Up] == LayerBoundary || n[UpRight] == LayerBoundary
}
