// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const pressDecay = 12.0

// PauseButton is a round button that toggles the paused state.
type PauseButton struct {
	X, Y           float32
	Size           float32
	Color          color.RGBA
	IsPaused       bool
	LastToggleTime time.Time

	pressScale float64
}

func NewPauseButton(x, y, size float32, clr color.RGBA) *PauseButton {
	return &PauseButton{X: x, Y: y, Size: size, Color: clr, pressScale: 1}
}

// IsClicked reports whether (x,y) is inside the button.
func (b *PauseButton) IsClicked(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	return dx*dx+dy*dy <= b.Size*b.Size
}

// TogglePause flips the state and starts the press animation.
func (b *PauseButton) TogglePause() {
	b.IsPaused = !b.IsPaused
	b.LastToggleTime = time.Now()
	b.pressScale = 0.85
}

// SetPaused sets the state without animating.
func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}

// Update eases the press animation back to full size.
func (b *PauseButton) Update(deltaTime float64) {
	b.pressScale = 1 - (1-b.pressScale)*math.Exp(-pressDecay*deltaTime)
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	size := b.Size * float32(b.pressScale)
	vector.StrokeCircle(screen, b.X, b.Y, size, 2, b.Color, true)

	if b.IsPaused {
		// Play triangle.
		ax, ay := b.X-size*0.3, b.Y-size*0.45
		bx, by := b.X+size*0.5, b.Y
		cx, cy := b.X-size*0.3, b.Y+size*0.45
		vector.StrokeLine(screen, ax, ay, bx, by, 2, b.Color, true)
		vector.StrokeLine(screen, bx, by, cx, cy, 2, b.Color, true)
		vector.StrokeLine(screen, cx, cy, ax, ay, 2, b.Color, true)
		return
	}

	barW := size * 0.22
	barH := size * 0.9
	vector.DrawFilledRect(screen, b.X-size*0.35, b.Y-barH/2, barW, barH, b.Color, true)
	vector.DrawFilledRect(screen, b.X+size*0.35-barW, b.Y-barH/2, barW, barH, b.Color, true)
}
