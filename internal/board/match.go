// internal/board/match.go
package board

import "github.com/psiegel-series/zombiebunker/internal/defs"

// Match is one qualifying run. Kind is the base kind the run locked onto, or
// the wildcard for an all-wildcard run. Cells are ordered left-to-right or
// top-to-bottom. Matches from one pass may share cells.
type Match struct {
	Kind       defs.TileKind
	Cells      []Cell
	Horizontal bool
}

// Len returns the run length.
func (m Match) Len() int {
	return len(m.Cells)
}

// Center returns the cell at index len/2.
func (m Match) Center() Cell {
	return m.Cells[len(m.Cells)/2]
}

// Last returns the final cell of the run.
func (m Match) Last() Cell {
	return m.Cells[len(m.Cells)-1]
}

// Contains reports whether c is part of the run.
func (m Match) Contains(c Cell) bool {
	for _, mc := range m.Cells {
		if mc == c {
			return true
		}
	}
	return false
}

// Intersects reports whether the two runs share at least one cell.
func (m Match) Intersects(other Match) bool {
	for _, c := range other.Cells {
		if m.Contains(c) {
			return true
		}
	}
	return false
}

const minRun = 3

type run struct {
	start, end int
	kind       defs.TileKind
}

// scanLine finds qualifying runs along one axis. A run locks onto the base kind
// of its first non-wildcard tile; wildcards extend any run and a different base
// kind or an empty cell ends it. Trailing wildcards of a run may also open the
// next one when that run starts on a different base kind.
func scanLine(line []defs.TileKind, allWildcard bool) []run {
	var runs []run
	n := len(line)
	i := 0
	for i < n {
		if line[i] == defs.TileEmpty {
			i++
			continue
		}

		locked := defs.TileEmpty
		j := i
		for j < n {
			t := line[j]
			if t == defs.TileEmpty {
				break
			}
			if t.IsWildcard() {
				j++
				continue
			}
			if locked == defs.TileEmpty {
				locked = t.Base()
			} else if t.Base() != locked {
				break
			}
			j++
		}

		if j-i >= minRun {
			switch {
			case locked != defs.TileEmpty:
				runs = append(runs, run{start: i, end: j, kind: locked})
			case allWildcard:
				runs = append(runs, run{start: i, end: j, kind: defs.TileWildcard})
			}
		}

		// Only a different base kind can reuse the trailing wildcards. At the
		// line end or an empty cell they would form a sub-run of this one.
		next := j
		if j < n && line[j] != defs.TileEmpty {
			for next > i && line[next-1].IsWildcard() {
				next--
			}
			if next <= i {
				next = j
			}
		}
		i = next
	}
	return runs
}

func rowOf(g *Grid, row int) []defs.TileKind {
	return g[row][:]
}

func colOf(g *Grid, col int) []defs.TileKind {
	line := make([]defs.TileKind, Rows)
	for r := 0; r < Rows; r++ {
		line[r] = g[r][col]
	}
	return line
}

// FindMatches scans every row, then every column, and returns all qualifying
// runs. The result depends only on the grid contents.
func (b *Board) FindMatches() []Match {
	return findMatches(&b.cells, b.opts.AllWildcardRuns)
}

func findMatches(g *Grid, allWildcard bool) []Match {
	var matches []Match
	for row := 0; row < Rows; row++ {
		for _, r := range scanLine(rowOf(g, row), allWildcard) {
			m := Match{Kind: r.kind, Horizontal: true}
			for c := r.start; c < r.end; c++ {
				m.Cells = append(m.Cells, Cell{Row: row, Col: c})
			}
			matches = append(matches, m)
		}
	}
	for col := 0; col < Cols; col++ {
		for _, r := range scanLine(colOf(g, col), allWildcard) {
			m := Match{Kind: r.kind}
			for row := r.start; row < r.end; row++ {
				m.Cells = append(m.Cells, Cell{Row: row, Col: col})
			}
			matches = append(matches, m)
		}
	}
	return matches
}

// WouldMatch reports whether swapping the two cells puts either of them in a
// qualifying run along its row or column. The swap is evaluated on a copy, so
// the live grid is never touched.
func (b *Board) WouldMatch(r1, c1, r2, c2 int) bool {
	if !inBounds(r1, c1) || !inBounds(r2, c2) {
		return false
	}
	trial := b.cells
	trial[r1][c1], trial[r2][c2] = trial[r2][c2], trial[r1][c1]
	return runThrough(&trial, r1, c1, b.opts.AllWildcardRuns) ||
		runThrough(&trial, r2, c2, b.opts.AllWildcardRuns)
}

func runThrough(g *Grid, row, col int, allWildcard bool) bool {
	if g[row][col] == defs.TileEmpty {
		return false
	}
	for _, r := range scanLine(rowOf(g, row), allWildcard) {
		if col >= r.start && col < r.end {
			return true
		}
	}
	for _, r := range scanLine(colOf(g, col), allWildcard) {
		if row >= r.start && row < r.end {
			return true
		}
	}
	return false
}

// FindHint returns the first adjacent swap, in row-major order, that would
// produce a match. ok is false when the board has no productive swap.
func (b *Board) FindHint() (a, c Cell, ok bool) {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if col+1 < Cols && b.WouldMatch(row, col, row, col+1) {
				return Cell{row, col}, Cell{row, col + 1}, true
			}
			if row+1 < Rows && b.WouldMatch(row, col, row+1, col) {
				return Cell{row, col}, Cell{row + 1, col}, true
			}
		}
	}
	return Cell{}, Cell{}, false
}

// Adjacent reports whether two cells share an edge.
func Adjacent(a, c Cell) bool {
	dr := a.Row - c.Row
	dc := a.Col - c.Col
	return (dr == 0 && (dc == 1 || dc == -1)) || (dc == 0 && (dr == 1 || dr == -1))
}
