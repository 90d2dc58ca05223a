// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"github.com/psiegel-series/zombiebunker/internal/component"
	"github.com/psiegel-series/zombiebunker/internal/event"
	"github.com/psiegel-series/zombiebunker/internal/score"
)

// HUDData is the per-frame snapshot the HUD draws.
type HUDData struct {
	Bunker       component.Health
	Wave         int
	BreakSeconds float64
	Chain        int
	Summary      *score.Summary
}

// HUD groups the overlay widgets drawn on top of the battlefield.
type HUD struct {
	Health      *BunkerHealthIndicator
	Wave        *WaveIndicator
	PauseButton *PauseButton
	Feed        *EventFeed

	textColor color.RGBA
	fontFace  font.Face
}

// NewHUD lays the widgets out for a screen of the given width.
func NewHUD(screenWidth int, face, titleFace font.Face, textColor color.RGBA, d *event.Dispatcher) *HUD {
	h := &HUD{
		Health:      NewBunkerHealthIndicator(12, 12, face),
		Wave:        NewWaveIndicator(screenWidth/2, 40, titleFace),
		PauseButton: NewPauseButton(float32(screenWidth-28), 28, 16, textColor),
		Feed:        NewEventFeed(12, 60, face, textColor),
		textColor:   textColor,
		fontFace:    face,
	}
	h.Feed.Subscribe(d)
	return h
}

func (h *HUD) Update(deltaTime float64) {
	h.PauseButton.Update(deltaTime)
	h.Feed.Update(deltaTime)
}

func (h *HUD) Draw(screen *ebiten.Image, data HUDData) {
	h.Health.Draw(screen, data.Bunker)
	h.Wave.Draw(screen, data.Wave, data.BreakSeconds)
	h.PauseButton.Draw(screen)
	h.Feed.Draw(screen)

	if data.Summary != nil {
		label := fmt.Sprintf("%d", data.Summary.Score)
		b := text.BoundString(h.fontFace, label)
		text.Draw(screen, label, h.fontFace, screen.Bounds().Dx()-56-b.Dx(), 33, h.textColor)
	}
	if data.Chain > 1 {
		label := fmt.Sprintf("chain x%d", data.Chain)
		b := text.BoundString(h.fontFace, label)
		text.Draw(screen, label, h.fontFace, (screen.Bounds().Dx()-b.Dx())/2, 70, h.textColor)
	}
}
