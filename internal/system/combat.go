// internal/system/combat.go
package system

import (
	"math"
	"sort"

	"github.com/psiegel-series/zombiebunker/internal/component"
	"github.com/psiegel-series/zombiebunker/internal/config"
	"github.com/psiegel-series/zombiebunker/internal/defs"
	"github.com/psiegel-series/zombiebunker/internal/utils"
)

// Action is how an effect descriptor was interpreted.
type Action int

const (
	ActionNone Action = iota
	ActionHeal
	ActionShot
	ActionBlast
	ActionFireZone
	ActionAirstrike
)

func (a Action) String() string {
	switch a {
	case ActionHeal:
		return "heal"
	case ActionShot:
		return "shot"
	case ActionBlast:
		return "blast"
	case ActionFireZone:
		return "fire_zone"
	case ActionAirstrike:
		return "airstrike"
	}
	return "none"
}

// Hit is damage dealt to one enemy.
type Hit struct {
	Target *component.Enemy
	Damage float64
	Killed bool
}

// Detonation is where an area effect went off. Cosmetic detonations deal no
// damage; they happen when the field was empty.
type Detonation struct {
	Center   component.Position
	Radius   float64
	Cosmetic bool
}

// CombatResult is the feedback for one resolved effect.
type CombatResult struct {
	Effect     component.Effect
	Action     Action
	Direction  defs.Direction
	Healed     float64
	Hits       []Hit
	Detonation *Detonation
	Zone       *component.FireZone
}

// Kills returns the enemies this result killed.
func (r CombatResult) Kills() []*component.Enemy {
	var killed []*component.Enemy
	for _, h := range r.Hits {
		if h.Killed {
			killed = append(killed, h.Target)
		}
	}
	return killed
}

// ZoneTick is the feedback of one fire-zone advancement.
type ZoneTick struct {
	Expired []*component.FireZone
	Hits    []Hit
}

// Field is the battlefield rectangle anchored at the origin.
type Field struct {
	Width, Height float64
}

// CombatSystem resolves effect descriptors against the live enemies and owns
// the fire zones. It mutates enemy health and the bunker, nothing else.
type CombatSystem struct {
	bunker     *component.Bunker
	field      Field
	rng        *utils.PRNGService
	zones      []*component.FireZone
	nextZoneID int
}

func NewCombatSystem(bunker *component.Bunker, field Field, rng *utils.PRNGService) *CombatSystem {
	return &CombatSystem{
		bunker: bunker,
		field:  field,
		rng:    rng,
	}
}

// Bunker returns the defended point.
func (s *CombatSystem) Bunker() *component.Bunker {
	return s.bunker
}

// Zones returns the active fire zones.
func (s *CombatSystem) Zones() []*component.FireZone {
	return s.zones
}

// Reset drops every active zone.
func (s *CombatSystem) Reset() {
	s.zones = nil
}

// Resolve applies effects in order. Enemies killed by an earlier effect are no
// longer targets for later ones.
func (s *CombatSystem) Resolve(effects []component.Effect, targets []*component.Enemy) []CombatResult {
	results := make([]CombatResult, 0, len(effects))
	for _, e := range effects {
		results = append(results, s.ResolveEffect(e, targets))
	}
	return results
}

// ResolveEffect applies a single effect descriptor.
func (s *CombatSystem) ResolveEffect(e component.Effect, targets []*component.Enemy) CombatResult {
	res := CombatResult{Effect: e}

	// A wildcard in the run overrides whatever kind the run locked onto.
	if e.Airstrike {
		res.Action = ActionAirstrike
		for _, t := range targets {
			if t.Alive() {
				res.Hits = append(res.Hits, applyDamage(t, config.AirstrikeDamage))
			}
		}
		return res
	}

	switch e.Kind.Family() {
	case defs.FamilyMedkit:
		res.Action = ActionHeal
		amount := config.HealAmount
		if e.Powered {
			amount = config.PoweredHealAmount
		}
		res.Healed = s.bunker.Heal(amount)

	case defs.FamilyBullet:
		res.Action = ActionShot
		res.Direction = e.Kind.Direction()
		res.Hits = s.fireBullet(res.Direction, e.Powered, targets)

	case defs.FamilyGrenade:
		res.Action = ActionBlast
		res.Detonation, res.Hits = s.throwGrenade(e.Powered, targets)

	case defs.FamilyGasoline:
		res.Action = ActionFireZone
		res.Zone = s.igniteZone(e.Powered)

	case defs.FamilyAirstrike:
		// An all-wildcard run always carries the airstrike flag; nothing else
		// reaches here.
	}
	return res
}

// inQuadrant tests the sign and dominant axis of (dx,dy) for a direction. A
// target exactly on a diagonal passes both adjacent tests.
func inQuadrant(dir defs.Direction, dx, dy float64) bool {
	switch dir {
	case defs.DirNorth:
		return math.Abs(dy) >= math.Abs(dx) && dy < 0
	case defs.DirSouth:
		return math.Abs(dy) >= math.Abs(dx) && dy > 0
	case defs.DirEast:
		return math.Abs(dx) >= math.Abs(dy) && dx > 0
	case defs.DirWest:
		return math.Abs(dx) >= math.Abs(dy) && dx < 0
	}
	return false
}

func (s *CombatSystem) fireBullet(dir defs.Direction, powered bool, targets []*component.Enemy) []Hit {
	origin := s.bunker.Position

	type candidate struct {
		enemy *component.Enemy
		dist  float64
	}
	var candidates []candidate
	for _, t := range targets {
		if !t.Alive() {
			continue
		}
		dx := t.Position.X - origin.X
		dy := t.Position.Y - origin.Y
		if inQuadrant(dir, dx, dy) {
			candidates = append(candidates, candidate{enemy: t, dist: math.Hypot(dx, dy)})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].dist < candidates[j].dist })

	damage := config.BulletDamage
	if powered {
		damage = config.HeavyBulletDamage
	}

	var accepted []*component.Enemy
	for _, c := range candidates {
		if !powered && occluded(origin, c.enemy, accepted) {
			continue
		}
		accepted = append(accepted, c.enemy)
	}

	hits := make([]Hit, 0, len(accepted))
	for _, t := range accepted {
		hits = append(hits, applyDamage(t, damage))
	}
	return hits
}

// occluded reports whether any nearer accepted enemy sits within twice its own
// radius of the line from origin through target.
func occluded(origin component.Position, target *component.Enemy, nearer []*component.Enemy) bool {
	for _, n := range nearer {
		d := utils.PointLineDistance(n.Position.X, n.Position.Y,
			origin.X, origin.Y, target.Position.X, target.Position.Y)
		if d < 2*n.Radius {
			return true
		}
	}
	return false
}

func (s *CombatSystem) throwGrenade(powered bool, targets []*component.Enemy) (*Detonation, []Hit) {
	radius, damage := config.GrenadeRadius, config.GrenadeDamage
	if powered {
		radius, damage = config.RocketRadius, config.RocketDamage
	}

	var live []*component.Enemy
	for _, t := range targets {
		if t.Alive() {
			live = append(live, t)
		}
	}

	if len(live) == 0 {
		center := component.Position{
			X: s.rng.Float64() * s.field.Width,
			Y: s.rng.Float64() * s.field.Height,
		}
		return &Detonation{Center: center, Radius: radius, Cosmetic: true}, nil
	}

	center := DensestCluster(live, radius)
	var inside []*component.Enemy
	for _, t := range live {
		if center.DistanceTo(t.Position) <= radius {
			inside = append(inside, t)
		}
	}

	hits := make([]Hit, 0, len(inside))
	for _, t := range inside {
		hits = append(hits, applyDamage(t, damage))
	}
	return &Detonation{Center: center, Radius: radius}, hits
}

// DensestCluster returns the position of the enemy with the most enemies
// (itself included) within radius. The first one found wins ties.
func DensestCluster(live []*component.Enemy, radius float64) component.Position {
	best := live[0]
	bestCount := -1
	for _, candidate := range live {
		count := 0
		for _, other := range live {
			if candidate.Position.DistanceTo(other.Position) <= radius {
				count++
			}
		}
		if count > bestCount {
			best, bestCount = candidate, count
		}
	}
	return best.Position
}

func (s *CombatSystem) igniteZone(powered bool) *component.FireZone {
	s.nextZoneID++
	zone := &component.FireZone{
		ID:        s.nextZoneID,
		Center:    s.bunker.Position,
		Radius:    config.FireZoneRadius,
		Remaining: config.FireZoneDuration,
		DPS:       config.FireZoneDPS,
	}
	if powered {
		zone.Radius = config.NapalmZoneRadius
		zone.Remaining = config.NapalmZoneDuration
		zone.DPS = config.NapalmZoneDPS
		zone.Powered = true
	}
	s.zones = append(s.zones, zone)
	return zone
}

// Update advances every fire zone by deltaTime seconds: timers run down,
// elapsed zones are dropped and the rest burn every live enemy inside them.
func (s *CombatSystem) Update(deltaTime float64, targets []*component.Enemy) ZoneTick {
	var tick ZoneTick
	active := s.zones[:0]
	for _, z := range s.zones {
		z.Remaining -= deltaTime
		if z.Expired() {
			tick.Expired = append(tick.Expired, z)
			continue
		}
		active = append(active, z)

		for _, t := range targets {
			if t.Alive() && z.Contains(t.Position) {
				tick.Hits = append(tick.Hits, applyDamage(t, z.DPS*deltaTime))
			}
		}
	}
	for i := len(active); i < len(s.zones); i++ {
		s.zones[i] = nil
	}
	s.zones = active
	return tick
}

// DamageBunker applies contact damage and reports whether the bunker fell.
func (s *CombatSystem) DamageBunker(amount float64) bool {
	s.bunker.Damage(amount)
	return s.bunker.Destroyed()
}

func applyDamage(t *component.Enemy, amount float64) Hit {
	return Hit{Target: t, Damage: amount, Killed: t.TakeDamage(amount)}
}
