// internal/app/board_control.go
package app

import (
	"log"

	"github.com/psiegel-series/zombiebunker/internal/board"
	"github.com/psiegel-series/zombiebunker/internal/component"
	"github.com/psiegel-series/zombiebunker/internal/config"
	"github.com/psiegel-series/zombiebunker/internal/event"
	"github.com/psiegel-series/zombiebunker/internal/system"
)

// StepResult is the render feedback of one cascade step.
type StepResult struct {
	Chain      int // 1 for the move itself, 2+ for cascades
	Resolution system.MatchResolution
	Combat     []system.CombatResult
	Moves      []board.Move
	Fills      []board.Fill
	Settled    bool // no matches were found; the board accepts input again
	Reshuffled bool
}

// Axis is the direction a drag gesture locked onto.
type Axis int

const (
	AxisNone Axis = iota
	AxisRow
	AxisColumn
)

// DragAxis locks a drag to the dominant axis once it passes DragThreshold.
func DragAxis(dx, dy float64) Axis {
	adx, ady := dx, dy
	if adx < 0 {
		adx = -adx
	}
	if ady < 0 {
		ady = -ady
	}
	if adx < config.DragThreshold && ady < config.DragThreshold {
		return AxisNone
	}
	if adx >= ady {
		return AxisRow
	}
	return AxisColumn
}

type dragState struct {
	base   board.Grid
	axis   Axis
	index  int
	offset int
}

// LastStep returns the most recent cascade step, nil before the first move.
func (g *Game) LastStep() *StepResult {
	return g.lastStep
}

// Chain returns the depth of the running cascade.
func (g *Game) Chain() int {
	return g.chain
}

// TrySwap exchanges two adjacent cells if the swap produces a match. It is
// rejected while the board is busy.
func (g *Game) TrySwap(a, b board.Cell) bool {
	if g.Busy() || !board.Adjacent(a, b) {
		return false
	}
	if !g.Board.WouldMatch(a.Row, a.Col, b.Row, b.Col) {
		return false
	}
	g.Board.Swap(a.Row, a.Col, b.Row, b.Col)
	g.beginCascade()
	return true
}

// Hint returns a productive swap if the board has one.
func (g *Game) Hint() (a, b board.Cell, ok bool) {
	return g.Board.FindHint()
}

func (g *Game) beginCascade() {
	g.phase = component.BoardCascading
	g.chain = 0
	g.stepTimer = config.CascadeStepDelay
}

// CompleteStep runs the next cascade step immediately. Hosts call it when the
// previous step's animation finished; Update calls it after CascadeStepDelay.
// It returns nil when no cascade is running.
func (g *Game) CompleteStep() *StepResult {
	if g.phase != component.BoardCascading {
		return nil
	}

	matches := g.Board.FindMatches()
	if len(matches) == 0 {
		g.phase = component.BoardIdle
		g.chain = 0
		g.lastStep = &StepResult{Settled: true, Reshuffled: g.reshuffleIfDead()}
		return g.lastStep
	}

	g.chain++
	step := &StepResult{Chain: g.chain}
	step.Resolution = g.MatchEffectSystem.Resolve(matches, g.Board)
	for i, m := range matches {
		g.Summary.AddMatch(m.Len(), g.chain)
		g.EventDispatcher.Dispatch(event.Event{Type: event.EffectDispatched, Data: step.Resolution.Effects[i]})
	}

	step.Combat = g.CombatSystem.Resolve(step.Resolution.Effects, g.ECS.LiveEnemies())
	for _, r := range step.Combat {
		g.handleCombatResult(r)
	}

	g.MatchEffectSystem.Apply(g.Board, step.Resolution)
	step.Moves = g.Board.ApplyGravity()
	step.Fills = g.Board.FillEmpty()

	g.cleanupDestroyedEntities()
	g.stepTimer = config.CascadeStepDelay
	g.lastStep = step
	return step
}

// SettleBoard runs cascade steps until the board accepts input again.
func (g *Game) SettleBoard() {
	for g.phase == component.BoardCascading {
		g.CompleteStep()
	}
}

func (g *Game) handleCombatResult(r system.CombatResult) {
	if r.Detonation != nil {
		g.ECS.AddBlast(&component.Blast{
			Center:    r.Detonation.Center,
			MaxRadius: r.Detonation.Radius,
			Duration:  blastDuration,
		})
		g.EventDispatcher.Dispatch(event.Event{Type: event.Detonation, Data: *r.Detonation})
	}
	if r.Action == system.ActionShot {
		for _, h := range r.Hits {
			g.ECS.AddTracer(component.NewTracer(g.Bunker.Position, h.Target.Position, config.TracerSpeed))
		}
	}
	if r.Zone != nil {
		g.EventDispatcher.Dispatch(event.Event{Type: event.FireZoneCreated, Data: r.Zone})
	}
	g.flashHits(r.Hits)
}

// reshuffleIfDead regenerates the board when no swap can produce a match.
func (g *Game) reshuffleIfDead() bool {
	if _, _, ok := g.Board.FindHint(); ok {
		return false
	}
	log.Printf("No moves left, reshuffling board")
	g.Board.Reshuffle()
	g.EventDispatcher.Dispatch(event.Event{Type: event.BoardReshuffled})
	return true
}

// BeginShift snapshots the board before a drag preview.
func (g *Game) BeginShift() bool {
	if g.Busy() {
		return false
	}
	g.drag = dragState{base: g.Board.Snapshot()}
	g.phase = component.BoardDragging
	return true
}

// PreviewShift shows the board with one row or column rotated by offset from
// the snapshot. Previews never compound.
func (g *Game) PreviewShift(axis Axis, index, offset int) {
	if g.phase != component.BoardDragging {
		return
	}
	g.Board.Restore(g.drag.base)
	g.drag.axis, g.drag.index, g.drag.offset = axis, index, offset
	switch axis {
	case AxisRow:
		g.Board.ShiftRow(index, offset)
	case AxisColumn:
		g.Board.ShiftColumn(index, offset)
	}
}

// CommitShift keeps the previewed shift if it produced a match and starts the
// cascade. Otherwise the board snaps back and false is returned.
func (g *Game) CommitShift() bool {
	if g.phase != component.BoardDragging {
		return false
	}
	if g.drag.axis == AxisNone || len(g.Board.FindMatches()) == 0 {
		g.CancelShift()
		return false
	}
	g.drag = dragState{}
	g.beginCascade()
	return true
}

// CancelShift restores the snapshot taken by BeginShift.
func (g *Game) CancelShift() {
	if g.phase != component.BoardDragging {
		return
	}
	g.Board.Restore(g.drag.base)
	g.drag = dragState{}
	g.phase = component.BoardIdle
}
