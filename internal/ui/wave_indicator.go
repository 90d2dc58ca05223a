// internal/ui/wave_indicator.go
package ui

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator shows the current wave number in Roman numerals.
type WaveIndicator struct {
	X, Y             int
	Color            color.RGBA
	BossColor        color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
	fontFace         font.Face
}

func NewWaveIndicator(x, y int, face font.Face) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            color.RGBA{100, 160, 255, 255},
		BossColor:        color.RGBA{230, 60, 60, 255},
		OutlineColor:     color.RGBA{255, 255, 255, 255},
		OutlineThickness: 1,
		fontFace:         face,
	}
}

// toRoman converts a positive integer to Roman numerals.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw renders the wave number centred on X. Boss waves are drawn in red.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int, breakSeconds float64) {
	if waveNumber <= 0 {
		return
	}

	label := toRoman(waveNumber)
	textColor := i.Color
	if waveNumber%5 == 0 {
		textColor = i.BossColor
	}

	bounds := text.BoundString(i.fontFace, label)
	x := i.X - bounds.Dx()/2
	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, i.fontFace, x+dx, i.Y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, i.fontFace, x, i.Y, textColor)

	if breakSeconds > 0 {
		next := fmt.Sprintf("next wave %ds", int(math.Ceil(breakSeconds)))
		nb := text.BoundString(i.fontFace, next)
		text.Draw(screen, next, i.fontFace, i.X-nb.Dx()/2, i.Y+bounds.Dy()+6, i.OutlineColor)
	}
}
