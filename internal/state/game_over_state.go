// internal/state/game_over_state.go
package state

import (
	"image/color"
	"log"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/psiegel-series/zombiebunker/internal/config"
)

const reportLineHeight = 18

// GameOverState shows the session report over the final frame.
type GameOverState struct {
	sm     *StateMachine
	res    *Resources
	last   *GameState
	report string
	copied bool
}

func NewGameOverState(sm *StateMachine, res *Resources, last *GameState) *GameOverState {
	return &GameOverState{sm: sm, res: res, last: last, report: last.game.Summary.Report()}
}

func (s *GameOverState) Enter() {
	log.Printf("Session over\n%s", s.report)
}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := clipboard.WriteAll(s.report); err != nil {
			log.Printf("Failed to copy report to clipboard: %v", err)
		} else {
			s.copied = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.sm.SetState(NewGameState(s.sm, s.res))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.last.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 170}, false)

	top := config.ScreenHeight/2 - 120
	drawCentered(screen, "BUNKER LOST", s.res.TitleFace, top, config.HealthBarColor)

	for i, line := range strings.Split(s.report, "\n") {
		text.Draw(screen, line, s.res.Face, 60, top+40+i*reportLineHeight, config.TextLightColor)
	}

	hint := "R restart   C copy report"
	if s.copied {
		hint = "R restart   report copied"
	}
	drawCentered(screen, hint, s.res.Face, top+220, config.HighlightColor)
}

func (s *GameOverState) Exit() {}
