// internal/ui/health_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/psiegel-series/zombiebunker/internal/component"
	"github.com/psiegel-series/zombiebunker/internal/utils"
)

const (
	healthBarWidth  = 160
	healthBarHeight = 12
	borderWidth     = 1
)

var (
	healthFullColor = color.RGBA{70, 170, 110, 230}
	healthLowColor  = color.RGBA{204, 51, 51, 230}
	borderColor     = color.White
)

// BunkerHealthIndicator shows the bunker's health as a bar with a numeric
// label.
type BunkerHealthIndicator struct {
	X, Y     float32
	fontFace font.Face
}

func NewBunkerHealthIndicator(x, y float32, face font.Face) *BunkerHealthIndicator {
	return &BunkerHealthIndicator{X: x, Y: y, fontFace: face}
}

// Draw renders the bar. Below a third of max health it turns red.
func (i *BunkerHealthIndicator) Draw(screen *ebiten.Image, health component.Health) {
	vector.StrokeRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, borderWidth, borderColor, true)

	frac := utils.Clamp(health.Fraction(), 0, 1)
	fill := healthFullColor
	if frac < 1.0/3 {
		fill = healthLowColor
	}
	fillWidth := float32(float64(healthBarWidth-borderWidth*2) * frac)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, healthBarHeight-borderWidth*2, fill, true)
	}

	label := fmt.Sprintf("%.0f/%.0f", health.Value, health.Max)
	text.Draw(screen, label, i.fontFace, int(i.X)+healthBarWidth+8, int(i.Y)+healthBarHeight-1, borderColor)
}
