// internal/component/movement.go
package component

import "math"

// Position is a point on the battlefield in pixels.
type Position struct {
	X, Y float64
}

// DistanceTo returns the euclidean distance between two positions.
func (p Position) DistanceTo(o Position) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}
