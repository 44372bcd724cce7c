// Package systems provides the per-entity rules of the simulation.
package systems

import (
	"math"

	"github.com/pthm-cable/forage/components"
)

// StepToward moves pos toward target by the ratio law: the per-axis share of
// the Manhattan delta, scaled by speed. rx+ry == 1, so the step magnitude is
// below speed except along a pure axis. This is not a normalized vector.
//
// When the two points coincide both ratios are 0/0; the bot then slides
// speed units along +y.
func StepToward(pos *components.Position, target components.Position, speed int) {
	s := float64(speed)
	dx := math.Abs(pos.X - target.X)
	dy := math.Abs(pos.Y - target.Y)

	rx := dx / (dx + dy)
	ry := dy / (dx + dy)

	if math.IsNaN(rx) {
		pos.Y += s
		return
	}
	if math.IsNaN(ry) {
		pos.X += s
		return
	}

	if target.X > pos.X {
		pos.X += rx * s
	} else {
		pos.X -= rx * s
	}

	if target.Y > pos.Y {
		pos.Y += ry * s
	} else {
		pos.Y -= ry * s
	}
}
