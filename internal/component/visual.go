// internal/component/visual.go
package component

// DamageFlash marks an enemy to be drawn in the hit color for a short time.
type DamageFlash struct {
	Timer    float64 // time left
	Duration float64
}

// Blast is the expanding ring drawn where an area effect detonated.
type Blast struct {
	Center    Position
	MaxRadius float64
	Timer     float64 // time elapsed
	Duration  float64
}

// Progress returns Timer/Duration in [0,1].
func (b *Blast) Progress() float64 {
	if b.Duration <= 0 {
		return 1
	}
	p := b.Timer / b.Duration
	if p > 1 {
		return 1
	}
	return p
}

// Tracer is a cosmetic bullet streak flying from From to To. Damage has
// already been applied when it is created.
type Tracer struct {
	From     Position
	To       Position
	Position Position
	Speed    float64 // pixels per second
	Arrived  bool
}

// NewTracer starts a tracer at from.
func NewTracer(from, to Position, speed float64) *Tracer {
	return &Tracer{From: from, To: to, Position: from, Speed: speed}
}
