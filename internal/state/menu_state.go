// internal/state/menu_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"github.com/psiegel-series/zombiebunker/internal/config"
)

// MenuState is the title screen.
type MenuState struct {
	sm  *StateMachine
	res *Resources
}

func NewMenuState(sm *StateMachine, res *Resources) *MenuState {
	return &MenuState{sm: sm, res: res}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(NewGameState(m.sm, m.res))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	drawCentered(screen, "ZOMBIE BUNKER", m.res.TitleFace, config.ScreenHeight/2-40, config.TextLightColor)
	drawCentered(screen, "match tiles to defend the bunker", m.res.Face, config.ScreenHeight/2, config.TextLightColor)
	drawCentered(screen, "click or press space", m.res.Face, config.ScreenHeight/2+40, config.HighlightColor)
}

func (m *MenuState) Exit() {}

func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	b := text.BoundString(face, s)
	text.Draw(screen, s, face, (config.ScreenWidth-b.Dx())/2, y, clr)
}
