// internal/system/movement.go
package system

import (
	"math"

	"github.com/psiegel-series/zombiebunker/internal/component"
)

// MovementSystem walks every live enemy straight at the bunker.
type MovementSystem struct {
	bunker *component.Bunker
}

func NewMovementSystem(bunker *component.Bunker) *MovementSystem {
	return &MovementSystem{bunker: bunker}
}

// Update moves enemies by speed*deltaTime and returns the ones that touched the
// bunker this tick. Those are flagged ReachedEnd; the caller applies their
// contact damage and removes them.
func (s *MovementSystem) Update(deltaTime float64, enemies []*component.Enemy) []*component.Enemy {
	var reached []*component.Enemy
	target := s.bunker.Position
	for _, e := range enemies {
		if !e.Alive() {
			continue
		}
		touch := s.bunker.Radius + e.Radius

		dx := target.X - e.Position.X
		dy := target.Y - e.Position.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist > touch {
			step := e.Speed * deltaTime
			if step >= dist-touch {
				// Stop on the bunker's edge instead of overshooting into it.
				step = dist - touch
			}
			e.Position.X += (dx / dist) * step
			e.Position.Y += (dy / dist) * step
			dist -= step
		}

		if dist <= touch+1e-9 {
			e.ReachedEnd = true
			reached = append(reached, e)
		}
	}
	return reached
}
