// internal/state/resources.go
package state

import (
	"golang.org/x/image/font"

	"github.com/psiegel-series/zombiebunker/internal/app"
	"github.com/psiegel-series/zombiebunker/internal/config"
	"github.com/psiegel-series/zombiebunker/pkg/render"
)

// Resources are shared by every screen and survive restarts.
type Resources struct {
	Options   app.Options
	Face      font.Face
	TitleFace font.Face
	Palette   render.Palette
}

// NewResources loads fonts and builds the palette from config.
func NewResources(opts app.Options) *Resources {
	return &Resources{
		Options:   opts,
		Face:      render.LoadFace(13),
		TitleFace: render.LoadFace(28),
		Palette: render.Palette{
			BackgroundColor: config.BackgroundColor,
			GridAreaColor:   config.GridAreaColor,
			DividerColor:    config.DividerColor,
			CellStrokeColor: config.CellStrokeColor,
			TextLightColor:  config.TextLightColor,
			TextDarkColor:   config.BackgroundColor,
			HighlightColor:  config.HighlightColor,
			StrokeWidth:     2,
		},
	}
}
