// internal/system/projectile.go
package system

import (
	"github.com/psiegel-series/zombiebunker/internal/entity"
	"github.com/psiegel-series/zombiebunker/internal/types"
	"github.com/psiegel-series/zombiebunker/internal/utils"
)

// arrivalRadius is how close a tracer must get before it counts as arrived.
const arrivalRadius = 4.0

// ProjectileSystem flies bullet tracers toward where their shots landed and
// removes them on arrival.
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for id, t := range s.ecs.Tracers {
		dx := t.To.X - t.Position.X
		dy := t.To.Y - t.Position.Y
		dist := utils.Distance(t.Position.X, t.Position.Y, t.To.X, t.To.Y)

		step := t.Speed * deltaTime
		if dist <= step || dist < arrivalRadius {
			t.Position = t.To
			t.Arrived = true
			s.removeProjectile(id)
			continue
		}
		t.Position.X += dx / dist * step
		t.Position.Y += dy / dist * step
	}
}

func (s *ProjectileSystem) removeProjectile(id types.EntityID) {
	delete(s.ecs.Tracers, id)
}
