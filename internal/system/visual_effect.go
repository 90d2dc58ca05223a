// internal/system/visual_effect.go
package system

import "github.com/psiegel-series/zombiebunker/internal/entity"

// VisualEffectSystem runs down damage flashes and detonation rings.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer -= deltaTime
		if flash.Timer <= 0 {
			delete(s.ecs.DamageFlashes, id)
		}
	}

	for id, blast := range s.ecs.Blasts {
		blast.Timer += deltaTime
		if blast.Timer >= blast.Duration {
			delete(s.ecs.Blasts, id)
		}
	}
}
