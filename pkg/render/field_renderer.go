// pkg/render/field_renderer.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/psiegel-series/zombiebunker/internal/component"
	"github.com/psiegel-series/zombiebunker/internal/config"
	"github.com/psiegel-series/zombiebunker/internal/defs"
	"github.com/psiegel-series/zombiebunker/internal/entity"
	"github.com/psiegel-series/zombiebunker/internal/utils"
)

// FieldColors holds the colors of battlefield entities.
type FieldColors struct {
	Bunker       color.RGBA
	BunkerStroke color.RGBA
	FireZone     color.RGBA
	Blast        color.RGBA
	HealthBar    color.RGBA
	HealthBarBg  color.RGBA
	Flash        color.RGBA
	Tracer       color.RGBA
}

// FieldRenderer draws the battlefield: bunker, fire zones, enemies and
// detonation rings.
type FieldRenderer struct {
	width, height float32
	palette       Palette
	colors        FieldColors
}

func NewFieldRenderer(width, height float32, palette Palette, colors FieldColors) *FieldRenderer {
	return &FieldRenderer{width: width, height: height, palette: palette, colors: colors}
}

// Draw renders one frame of the battlefield.
func (r *FieldRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS, bunker *component.Bunker, zones []*component.FireZone) {
	vector.DrawFilledRect(screen, 0, 0, r.width, r.height, r.palette.BackgroundColor, false)
	vector.StrokeLine(screen, 0, r.height, r.width, r.height, 2, r.palette.DividerColor, false)

	for _, z := range zones {
		alpha := r.colors.FireZone.A
		if z.Remaining < 1 {
			alpha = uint8(float64(alpha) * z.Remaining)
		}
		vector.DrawFilledCircle(screen, float32(z.Center.X), float32(z.Center.Y), float32(z.Radius), WithAlpha(r.colors.FireZone, alpha), true)
	}

	r.drawBunker(screen, bunker)

	for _, e := range ecs.LiveEnemies() {
		r.drawEnemy(screen, e, ecs.DamageFlashes[e.ID])
	}

	for _, t := range ecs.Tracers {
		r.drawTracer(screen, t)
	}

	for _, b := range ecs.Blasts {
		p := float32(b.Progress())
		radius := float32(b.MaxRadius) * utils.Lerp(0.3, 1, p)
		alpha := uint8(float32(r.colors.Blast.A) * (1 - p))
		vector.StrokeCircle(screen, float32(b.Center.X), float32(b.Center.Y), radius, 3, WithAlpha(r.colors.Blast, alpha), true)
	}
}

func (r *FieldRenderer) drawBunker(screen *ebiten.Image, b *component.Bunker) {
	x, y, rad := float32(b.Position.X), float32(b.Position.Y), float32(b.Radius)
	vector.DrawFilledCircle(screen, x, y, rad, r.colors.Bunker, true)
	vector.StrokeCircle(screen, x, y, rad, 2, r.colors.BunkerStroke, true)
}

func (r *FieldRenderer) drawEnemy(screen *ebiten.Image, e *component.Enemy, flash *component.DamageFlash) {
	x, y, rad := float32(e.Position.X), float32(e.Position.Y), float32(e.Radius)

	fill := color.RGBA{0x66, 0xcc, 0x44, 0xff}
	if def, ok := defs.EnemyLibrary[e.Kind]; ok {
		fill = def.Visuals.Color
	}
	if flash != nil {
		fill = r.colors.Flash
	}
	vector.DrawFilledCircle(screen, x, y, rad, fill, true)
	vector.StrokeCircle(screen, x, y, rad, 1, DarkenColor(fill), true)

	if frac := e.Health.Fraction(); frac < 1 {
		barW := rad * 2
		barY := y - rad - 6
		vector.DrawFilledRect(screen, x-rad, barY, barW, 3, r.colors.HealthBarBg, false)
		vector.DrawFilledRect(screen, x-rad, barY, barW*float32(frac), 3, r.colors.HealthBar, false)
	}
}

// drawTracer draws a short streak trailing behind the tracer's head.
func (r *FieldRenderer) drawTracer(screen *ebiten.Image, t *component.Tracer) {
	dx, dy := t.To.X-t.From.X, t.To.Y-t.From.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}
	tailX := t.Position.X - dx/dist*config.TracerLength
	tailY := t.Position.Y - dy/dist*config.TracerLength
	vector.StrokeLine(screen, float32(tailX), float32(tailY), float32(t.Position.X), float32(t.Position.Y), 2, r.colors.Tracer, true)
}
