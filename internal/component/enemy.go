// internal/component/enemy.go
package component

import (
	"github.com/psiegel-series/zombiebunker/internal/defs"
	"github.com/psiegel-series/zombiebunker/internal/types"
)

// Enemy is a live target. The host owns its identity and removal; combat only
// reads its position and lowers its health.
type Enemy struct {
	ID         types.EntityID
	Kind       defs.EnemyKind
	Position   Position
	Health     Health
	Speed      float64
	Radius     float64
	Damage     float64
	ReachedEnd bool // touched the bunker this tick
}

// NewEnemy builds an enemy at p from its tier definition.
func NewEnemy(id types.EntityID, def defs.EnemyDefinition, p Position) *Enemy {
	return &Enemy{
		ID:       id,
		Kind:     def.ID,
		Position: p,
		Health:   Health{Value: def.Health, Max: def.Health},
		Speed:    def.Speed,
		Radius:   def.Radius,
		Damage:   def.Damage,
	}
}

// IsDead reports whether health has reached zero.
func (e *Enemy) IsDead() bool {
	return e.Health.Value <= 0
}

// Alive reports whether the enemy can still be targeted.
func (e *Enemy) Alive() bool {
	return !e.IsDead() && !e.ReachedEnd
}

// TakeDamage lowers health, floored at zero. It returns true when this call
// killed the enemy.
func (e *Enemy) TakeDamage(amount float64) bool {
	if e.IsDead() || amount <= 0 {
		return false
	}
	e.Health.Value -= amount
	if e.Health.Value <= 0 {
		e.Health.Value = 0
		return true
	}
	return false
}
