// pkg/render/color.go
package render

import "image/color"

// Palette holds the colors for the static backdrop of both play areas.
type Palette struct {
	BackgroundColor color.RGBA
	GridAreaColor   color.RGBA
	DividerColor    color.RGBA
	CellStrokeColor color.RGBA
	TextLightColor  color.RGBA
	TextDarkColor   color.RGBA
	HighlightColor  color.RGBA
	StrokeWidth     float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor moves a color halfway towards white.
func LightenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: c.R + (255-c.R)/2,
		G: c.G + (255-c.G)/2,
		B: c.B + (255-c.B)/2,
		A: c.A,
	}
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}

// TextColorOn picks a readable text color for the given fill.
func TextColorOn(fill color.RGBA, p Palette) color.RGBA {
	if (int(fill.R)+int(fill.G)+int(fill.B))/3 > 128 {
		return p.TextDarkColor
	}
	return p.TextLightColor
}
