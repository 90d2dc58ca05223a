// internal/entity/ecs.go
package entity

import (
	"sort"

	"github.com/psiegel-series/zombiebunker/internal/component"
	"github.com/psiegel-series/zombiebunker/internal/defs"
	"github.com/psiegel-series/zombiebunker/internal/types"
)

// ECS is the host-owned roster of battlefield entities.
type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	Enemies       map[types.EntityID]*component.Enemy
	DamageFlashes map[types.EntityID]*component.DamageFlash
	Blasts        map[types.EntityID]*component.Blast
	Tracers       map[types.EntityID]*component.Tracer
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Enemies:       make(map[types.EntityID]*component.Enemy),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Blasts:        make(map[types.EntityID]*component.Blast),
		Tracers:       make(map[types.EntityID]*component.Tracer),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddEnemy materializes an enemy of the given tier at p.
func (ecs *ECS) AddEnemy(def defs.EnemyDefinition, p component.Position) *component.Enemy {
	e := component.NewEnemy(ecs.NewEntity(), def, p)
	ecs.Enemies[e.ID] = e
	return e
}

// RemoveEnemy drops an enemy and its visual state.
func (ecs *ECS) RemoveEnemy(id types.EntityID) {
	delete(ecs.Enemies, id)
	delete(ecs.DamageFlashes, id)
}

// AddBlast registers a detonation ring.
func (ecs *ECS) AddBlast(b *component.Blast) types.EntityID {
	id := ecs.NewEntity()
	ecs.Blasts[id] = b
	return id
}

// AddTracer registers a bullet streak.
func (ecs *ECS) AddTracer(t *component.Tracer) types.EntityID {
	id := ecs.NewEntity()
	ecs.Tracers[id] = t
	return id
}

// LiveEnemies returns targetable enemies ordered by spawn id, so every
// consumer iterates them in the same order.
func (ecs *ECS) LiveEnemies() []*component.Enemy {
	live := make([]*component.Enemy, 0, len(ecs.Enemies))
	for _, e := range ecs.Enemies {
		if e.Alive() {
			live = append(live, e)
		}
	}
	sort.Slice(live, func(i, j int) bool { return live[i].ID < live[j].ID })
	return live
}

// AliveCount is the number of enemies still on the field.
func (ecs *ECS) AliveCount() int {
	n := 0
	for _, e := range ecs.Enemies {
		if e.Alive() {
			n++
		}
	}
	return n
}

// Clear removes every entity.
func (ecs *ECS) Clear() {
	for id := range ecs.Enemies {
		ecs.RemoveEnemy(id)
	}
	for id := range ecs.Blasts {
		delete(ecs.Blasts, id)
	}
	for id := range ecs.Tracers {
		delete(ecs.Tracers, id)
	}
}
