// internal/state/game_state.go
package state

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/psiegel-series/zombiebunker/internal/app"
	"github.com/psiegel-series/zombiebunker/internal/board"
	"github.com/psiegel-series/zombiebunker/internal/config"
	"github.com/psiegel-series/zombiebunker/internal/system"
	"github.com/psiegel-series/zombiebunker/internal/ui"
	"github.com/psiegel-series/zombiebunker/pkg/gridmap"
	"github.com/psiegel-series/zombiebunker/pkg/render"
)

// pointer tracks one press on the grid from button down to release.
type pointer struct {
	down     bool
	startX   float64
	startY   float64
	cell     board.Cell
	onGrid   bool
	dragging bool
	axis     app.Axis
	index    int
}

// GameState is the running session: battlefield on top, tile grid below.
type GameState struct {
	sm    *StateMachine
	res   *Resources
	game  *app.Game
	debug bool

	layout        gridmap.Layout
	tileRenderer  *render.TileRenderer
	fieldRenderer *render.FieldRenderer
	hud           *ui.HUD

	selected *board.Cell
	hint     []board.Cell
	ptr      pointer
}

func NewGameState(sm *StateMachine, res *Resources) *GameState {
	gameLogic := app.NewGame(res.Options)

	layout := gridmap.Centered(config.GridRows, config.GridCols, config.CellSize, config.CellGap,
		0, config.FieldHeight, config.ScreenWidth, config.ScreenHeight-config.FieldHeight)

	fieldColors := render.FieldColors{
		Bunker:       config.BunkerColor,
		BunkerStroke: config.BunkerStroke,
		FireZone:     config.FireZoneColor,
		Blast:        config.BlastColor,
		HealthBar:    config.HealthBarColor,
		HealthBarBg:  config.HealthBarBg,
		Flash:        config.TextLightColor,
		Tracer:       config.TracerColor,
	}

	return &GameState{
		sm:            sm,
		res:           res,
		game:          gameLogic,
		layout:        layout,
		tileRenderer:  render.NewTileRenderer(layout, res.Palette, res.Face, config.ScreenWidth, config.ScreenHeight),
		fieldRenderer: render.NewFieldRenderer(config.FieldWidth, config.FieldHeight, res.Palette, fieldColors),
		hud:           ui.NewHUD(config.ScreenWidth, res.Face, res.TitleFace, config.TextLightColor, gameLogic.EventDispatcher),
	}
}

// Game exposes the session to the pause and game-over screens.
func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Enter() {
	g.hud.PauseButton.SetPaused(false)
	g.game.Start()
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.pause()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		if a, b, ok := g.game.Hint(); ok {
			g.hint = []board.Cell{a, b}
		}
	}

	g.handlePointer()
	g.game.Update(deltaTime)
	g.hud.Update(deltaTime)

	if g.game.IsOver() {
		g.sm.SetState(NewGameOverState(g.sm, g.res, g))
	}
}

func (g *GameState) pause() {
	g.cancelPointer()
	g.hud.PauseButton.TogglePause()
	g.sm.SetState(NewPauseState(g.sm, g))
}

func (g *GameState) handlePointer() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.hud.PauseButton.IsClicked(x, y) {
			g.pause()
			return
		}
		g.press(float64(x), float64(y))
	}

	if g.ptr.down && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.drag(float64(x), float64(y))
	}

	if g.ptr.down && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.release()
	}
}

func (g *GameState) press(x, y float64) {
	row, col, ok := g.layout.PixelToCell(x, y)
	g.ptr = pointer{down: true, startX: x, startY: y, cell: board.Cell{Row: row, Col: col}, onGrid: ok}
}

// drag locks the gesture to an axis once it passes the threshold, then
// previews the row or column rotated by whole cells.
func (g *GameState) drag(x, y float64) {
	if !g.ptr.onGrid {
		return
	}
	dx, dy := x-g.ptr.startX, y-g.ptr.startY

	if !g.ptr.dragging {
		axis := app.DragAxis(dx, dy)
		if axis == app.AxisNone || !g.game.BeginShift() {
			return
		}
		g.ptr.dragging = true
		g.ptr.axis = axis
		g.ptr.index = g.ptr.cell.Row
		if axis == app.AxisColumn {
			g.ptr.index = g.ptr.cell.Col
		}
		g.selected = nil
	}

	delta := dx
	if g.ptr.axis == app.AxisColumn {
		delta = dy
	}
	g.game.PreviewShift(g.ptr.axis, g.ptr.index, g.layout.ShiftOffset(delta))
}

func (g *GameState) release() {
	defer func() { g.ptr = pointer{} }()

	if g.ptr.dragging {
		if g.game.CommitShift() {
			g.hint = nil
		}
		return
	}
	if !g.ptr.onGrid || g.game.Busy() {
		return
	}

	cell := g.ptr.cell
	switch {
	case g.selected == nil:
		g.selected = &cell
	case *g.selected == cell:
		g.selected = nil
	case board.Adjacent(*g.selected, cell):
		if g.game.TrySwap(*g.selected, cell) {
			g.hint = nil
		}
		g.selected = nil
	default:
		g.selected = &cell
	}
}

func (g *GameState) cancelPointer() {
	if g.ptr.dragging {
		g.game.CancelShift()
	}
	g.ptr = pointer{}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.fieldRenderer.Draw(screen, g.game.ECS, g.game.Bunker, g.game.CombatSystem.Zones())
	g.tileRenderer.Draw(screen, g.game.Board, render.TileOverlay{Selected: g.selected, Hint: g.hint})
	if g.ptr.dragging {
		g.tileRenderer.DrawShiftPreview(screen, g.ptr.axis == app.AxisRow, g.ptr.index)
	}

	waves := g.game.WaveSystem
	breakSeconds := 0.0
	if waves.State() == system.WaveBreak {
		breakSeconds = waves.BreakRemaining().Seconds()
	}
	g.hud.Draw(screen, ui.HUDData{
		Bunker:       g.game.Bunker.Health,
		Wave:         waves.Wave(),
		BreakSeconds: breakSeconds,
		Chain:        g.game.Chain(),
		Summary:      g.game.Summary,
	})

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"TPS %.0f  seed %d  enemies %d  wave %s  board %s  t %.1f",
			ebiten.ActualTPS(), g.game.Seed(), g.game.ECS.AliveCount(), waves.State(), g.game.Phase(),
			math.Floor(g.game.GameTime()*10)/10,
		), 4, config.FieldHeight-16)
	}
}

func (g *GameState) Exit() {}
