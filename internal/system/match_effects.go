// internal/system/match_effects.go
package system

import (
	"github.com/psiegel-series/zombiebunker/internal/board"
	"github.com/psiegel-series/zombiebunker/internal/component"
	"github.com/psiegel-series/zombiebunker/internal/defs"
)

// GridReader is the read access the dispatcher needs to see the actual tile in
// each matched cell.
type GridReader interface {
	Get(row, col int) defs.TileKind
}

// GridWriter is the write access used to clear matched cells and drop bonus
// tiles.
type GridWriter interface {
	Set(row, col int, kind defs.TileKind)
}

// Placement is a bonus tile left behind by a match.
type Placement struct {
	Cell board.Cell
	Kind defs.TileKind
}

// MatchResolution is everything one findMatches pass produces, computed before
// any cell is cleared.
type MatchResolution struct {
	Matches    []board.Match
	Effects    []component.Effect // one per match, in match order
	Special    []bool             // per match: length >= 5 or crossing a same-kind match
	Placements []Placement
	Cleared    []board.Cell // matched cells that are not bonus positions
}

// MatchEffectSystem turns detected matches into effect descriptors and bonus
// tile placements.
type MatchEffectSystem struct{}

func NewMatchEffectSystem() *MatchEffectSystem {
	return &MatchEffectSystem{}
}

// Resolve classifies matches against the current grid. It does not mutate the
// grid; call Apply afterwards.
func (s *MatchEffectSystem) Resolve(matches []board.Match, grid GridReader) MatchResolution {
	res := MatchResolution{
		Matches: matches,
		Effects: make([]component.Effect, len(matches)),
		Special: make([]bool, len(matches)),
	}

	for i, m := range matches {
		effect := component.Effect{Kind: m.Kind, Count: m.Len()}
		for _, c := range m.Cells {
			kind := grid.Get(c.Row, c.Col)
			if kind.IsPowered() {
				effect.Powered = true
			}
			if kind.IsWildcard() {
				effect.Airstrike = true
			}
		}
		res.Effects[i] = effect

		if m.Len() >= 5 {
			res.Special[i] = true
		}
	}

	// Crossings: T, L and + shapes of the same base kind.
	for i := range matches {
		for j := i + 1; j < len(matches); j++ {
			if matches[i].Kind == matches[j].Kind && matches[i].Intersects(matches[j]) {
				res.Special[i] = true
				res.Special[j] = true
			}
		}
	}

	bonus := make(map[board.Cell]int) // cell -> index into Placements
	place := func(c board.Cell, kind defs.TileKind) {
		if idx, taken := bonus[c]; taken {
			// A wildcard outranks a powered tile on the same cell.
			if kind.IsWildcard() {
				res.Placements[idx].Kind = kind
			}
			return
		}
		bonus[c] = len(res.Placements)
		res.Placements = append(res.Placements, Placement{Cell: c, Kind: kind})
	}

	for i, m := range matches {
		switch {
		case res.Special[i]:
			place(m.Center(), defs.TileWildcard)
		case m.Len() >= 4:
			if powered, ok := m.Kind.Powered(); ok {
				place(m.Last(), powered)
			}
		}
	}

	seen := make(map[board.Cell]bool)
	for _, m := range matches {
		for _, c := range m.Cells {
			if seen[c] {
				continue
			}
			seen[c] = true
			if _, isBonus := bonus[c]; !isBonus {
				res.Cleared = append(res.Cleared, c)
			}
		}
	}

	return res
}

// Apply empties the cleared cells and writes the bonus tiles.
func (s *MatchEffectSystem) Apply(grid GridWriter, res MatchResolution) {
	for _, c := range res.Cleared {
		grid.Set(c.Row, c.Col, defs.TileEmpty)
	}
	for _, p := range res.Placements {
		grid.Set(p.Cell.Row, p.Cell.Col, p.Kind)
	}
}
