package sand

import "fmt"

// Point is a grid coordinate. Y grows downwards.
type Point struct {
	X, Y int
}

// Add translates p by (dx, dy).
func (p Point) Add(dx, dy int) Point { return Point{X: p.X + dx, Y: p.Y + dy} }

// Sub returns the offset from q to p.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// adjacent reports whether q lies in the 3x3 block centred on p.
func (p Point) adjacent(q Point) bool {
	d := q.Sub(p)
	return d.X >= -1 && d.X <= 1 && d.Y >= -1 && d.Y <= 1
}

// orthogonal reports whether q shares an edge with p.
func (p Point) orthogonal(q Point) bool {
	d := q.Sub(p)
	return (d.X == 0 && (d.Y == 1 || d.Y == -1)) || (d.Y == 0 && (d.X == 1 || d.X == -1))
}
