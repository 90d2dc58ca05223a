// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/psiegel-series/zombiebunker/internal/config"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the session and draws it dimmed underneath.
type PauseState struct {
	sm   *StateMachine
	prev *GameState
}

func NewPauseState(sm *StateMachine, prev *GameState) *PauseState {
	return &PauseState{sm: sm, prev: prev}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || s.prev.hud.PauseButton.IsClicked(x, y)
	}
	s.prev.hud.PauseButton.Update(deltaTime)

	if unpause {
		s.prev.hud.PauseButton.TogglePause()
		s.sm.SetState(s.prev)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.prev.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)
	drawCentered(screen, "PAUSED", s.prev.res.TitleFace, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
