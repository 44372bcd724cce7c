package components

import "math"

// Position represents an entity's world position.
type Position struct {
	X, Y float64
}

// Distance returns the Euclidean distance between two positions.
// Every nearest query and range check goes through here.
func Distance(a, b Position) float64 {
	vx := a.X - b.X
	vy := a.Y - b.Y
	return math.Sqrt(vx*vx + vy*vy)
}
