// internal/board/board.go
package board

import (
	"github.com/psiegel-series/zombiebunker/internal/config"
	"github.com/psiegel-series/zombiebunker/internal/defs"
	"github.com/psiegel-series/zombiebunker/internal/utils"
)

const (
	Rows = config.GridRows
	Cols = config.GridCols
)

// Grid is a value copy of every cell. Assigning a Grid deep-copies it, which is
// what Snapshot and Restore rely on.
type Grid [Rows][Cols]defs.TileKind

// Cell addresses one grid position.
type Cell struct {
	Row, Col int
}

// Move records a tile falling from one row to another within a column.
type Move struct {
	Col     int
	FromRow int
	ToRow   int
}

// Fill records a new tile dropped into an empty cell.
type Fill struct {
	Row  int
	Col  int
	Kind defs.TileKind
}

// Options configures a Board at construction time.
type Options struct {
	// AllWildcardRuns makes a run made only of wildcard tiles count as a match,
	// reported with the wildcard kind. When false such runs are ignored.
	AllWildcardRuns bool
}

// DefaultOptions counts all-wildcard runs.
var DefaultOptions = Options{AllWildcardRuns: true}

// Board owns the tile grid. It is not safe for concurrent use; the host drives
// it from a single goroutine and must not call mutating methods while a
// clear-and-refill sequence is in flight.
type Board struct {
	cells Grid
	rng   *utils.PRNGService
	opts  Options
}

// New creates a board populated without the two-back match pattern.
func New(rng *utils.PRNGService, opts Options) *Board {
	if rng == nil {
		panic("board: rng cannot be nil")
	}
	b := &Board{rng: rng, opts: opts}
	b.fillWithoutMatches()
	return b
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// Get returns the tile at (row, col), or TileEmpty out of range.
func (b *Board) Get(row, col int) defs.TileKind {
	if !inBounds(row, col) {
		return defs.TileEmpty
	}
	return b.cells[row][col]
}

// Set writes the tile at (row, col). Out-of-range writes are ignored.
func (b *Board) Set(row, col int, kind defs.TileKind) {
	if !inBounds(row, col) {
		return
	}
	b.cells[row][col] = kind
}

// Swap exchanges two cells unconditionally. Out-of-range coordinates make it a
// no-op.
func (b *Board) Swap(r1, c1, r2, c2 int) {
	if !inBounds(r1, c1) || !inBounds(r2, c2) {
		return
	}
	b.cells[r1][c1], b.cells[r2][c2] = b.cells[r2][c2], b.cells[r1][c1]
}

// Snapshot captures every cell.
func (b *Board) Snapshot() Grid {
	return b.cells
}

// Restore overwrites every cell with g.
func (b *Board) Restore(g Grid) {
	b.cells = g
}

func normalizeOffset(offset, n int) int {
	return ((offset % n) + n) % n
}

// ShiftRow rotates a row cyclically; positive offsets move tiles right.
func (b *Board) ShiftRow(row, offset int) {
	if row < 0 || row >= Rows {
		return
	}
	k := normalizeOffset(offset, Cols)
	if k == 0 {
		return
	}
	old := b.cells[row]
	for c := 0; c < Cols; c++ {
		b.cells[row][(c+k)%Cols] = old[c]
	}
}

// ShiftColumn rotates a column cyclically; positive offsets move tiles down.
func (b *Board) ShiftColumn(col, offset int) {
	if col < 0 || col >= Cols {
		return
	}
	k := normalizeOffset(offset, Rows)
	if k == 0 {
		return
	}
	var old [Rows]defs.TileKind
	for r := 0; r < Rows; r++ {
		old[r] = b.cells[r][col]
	}
	for r := 0; r < Rows; r++ {
		b.cells[(r+k)%Rows][col] = old[r]
	}
}

// ApplyGravity compacts every column downward, keeping relative order, and
// reports each tile that actually moved.
func (b *Board) ApplyGravity() []Move {
	var moves []Move
	for col := 0; col < Cols; col++ {
		write := Rows - 1
		for row := Rows - 1; row >= 0; row-- {
			kind := b.cells[row][col]
			if kind == defs.TileEmpty {
				continue
			}
			if row != write {
				b.cells[write][col] = kind
				b.cells[row][col] = defs.TileEmpty
				moves = append(moves, Move{Col: col, FromRow: row, ToRow: write})
			}
			write--
		}
	}
	return moves
}

// FillEmpty drops a random base tile into every empty cell, top-down per
// column.
func (b *Board) FillEmpty() []Fill {
	var fills []Fill
	for col := 0; col < Cols; col++ {
		for row := 0; row < Rows; row++ {
			if b.cells[row][col] != defs.TileEmpty {
				continue
			}
			kind := defs.BaseKinds[b.rng.Intn(len(defs.BaseKinds))]
			b.cells[row][col] = kind
			fills = append(fills, Fill{Row: row, Col: col, Kind: kind})
		}
	}
	return fills
}

// Reshuffle repopulates the whole board with the anti-match fill.
func (b *Board) Reshuffle() {
	b.cells = Grid{}
	b.fillWithoutMatches()
}

// fillWithoutMatches draws every cell while excluding the kind that would
// complete a three-run with the two cells directly left or directly above.
// Longer-range combinations are not checked.
func (b *Board) fillWithoutMatches() {
	allowed := make([]defs.TileKind, 0, len(defs.BaseKinds))
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			var forbidH, forbidV defs.TileKind
			if col >= 2 && b.cells[row][col-1] == b.cells[row][col-2] {
				forbidH = b.cells[row][col-1]
			}
			if row >= 2 && b.cells[row-1][col] == b.cells[row-2][col] {
				forbidV = b.cells[row-1][col]
			}

			allowed = allowed[:0]
			for _, k := range defs.BaseKinds {
				if k != forbidH && k != forbidV {
					allowed = append(allowed, k)
				}
			}
			b.cells[row][col] = allowed[b.rng.Intn(len(allowed))]
		}
	}
}
