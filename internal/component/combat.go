// internal/component/combat.go
package component

import "github.com/psiegel-series/zombiebunker/internal/defs"

// Health tracks current and maximum hit points.
type Health struct {
	Value float64
	Max   float64
}

// Fraction returns Value/Max in [0,1].
func (h Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Value / h.Max
}

// Effect is the descriptor emitted for one match: the locked tile kind, the
// run length and whether the run held a powered or a wildcard tile.
type Effect struct {
	Kind      defs.TileKind
	Count     int
	Powered   bool
	Airstrike bool
}

// FireZone burns every enemy inside Radius for DPS per second until Remaining
// runs out.
type FireZone struct {
	ID        int
	Center    Position
	Radius    float64
	Remaining float64 // seconds
	DPS       float64
	Powered   bool
}

// Expired reports whether the zone's timer has elapsed.
func (z *FireZone) Expired() bool {
	return z.Remaining <= 0
}

// Contains reports whether p lies within the zone radius.
func (z *FireZone) Contains(p Position) bool {
	return z.Center.DistanceTo(p) <= z.Radius
}

// Bunker is the defended point. Its health reaching zero ends the session.
type Bunker struct {
	Position Position
	Radius   float64
	Health   Health
}

// Heal adds amount, capped at the maximum, and returns the amount applied.
func (b *Bunker) Heal(amount float64) float64 {
	before := b.Health.Value
	b.Health.Value += amount
	if b.Health.Value > b.Health.Max {
		b.Health.Value = b.Health.Max
	}
	return b.Health.Value - before
}

// Damage subtracts amount, floored at zero.
func (b *Bunker) Damage(amount float64) {
	b.Health.Value -= amount
	if b.Health.Value < 0 {
		b.Health.Value = 0
	}
}

// Destroyed reports the terminal state.
func (b *Bunker) Destroyed() bool {
	return b.Health.Value <= 0
}
