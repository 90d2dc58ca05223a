// internal/board/format.go
package board

import (
	"fmt"
	"strings"

	"github.com/psiegel-series/zombiebunker/internal/defs"
)

// Grid text form: one line per row, one glyph per cell. Base kinds are upper
// case, their powered forms lower case, '*' is the wildcard and '.' is empty.
var glyphs = map[defs.TileKind]byte{
	defs.TileEmpty:      '.',
	defs.TileBulletN:    'N',
	defs.TileBulletS:    'S',
	defs.TileBulletE:    'E',
	defs.TileBulletW:    'W',
	defs.TileGrenade:    'G',
	defs.TileGasoline:   'F',
	defs.TileMedkit:     'M',
	defs.TileHeavyN:     'n',
	defs.TileHeavyS:     's',
	defs.TileHeavyE:     'e',
	defs.TileHeavyW:     'w',
	defs.TileRocket:     'g',
	defs.TileNapalm:     'f',
	defs.TileMegaMedkit: 'm',
	defs.TileAirstrike:  '*',
}

var kindsByGlyph = func() map[byte]defs.TileKind {
	m := make(map[byte]defs.TileKind, len(glyphs))
	for k, g := range glyphs {
		m[g] = k
	}
	return m
}()

// String renders the grid in its text form.
func (g Grid) String() string {
	var sb strings.Builder
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			sb.WriteByte(glyphs[g[row][col]])
		}
		if row < Rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ParseGrid reads the text form produced by Grid.String.
func ParseGrid(rows ...string) (Grid, error) {
	var g Grid
	if len(rows) != Rows {
		return g, fmt.Errorf("parse grid: want %d rows, got %d", Rows, len(rows))
	}
	for r, line := range rows {
		if len(line) != Cols {
			return g, fmt.Errorf("parse grid: row %d: want %d cells, got %d", r, Cols, len(line))
		}
		for c := 0; c < Cols; c++ {
			kind, ok := kindsByGlyph[line[c]]
			if !ok {
				return g, fmt.Errorf("parse grid: row %d col %d: unknown glyph %q", r, c, line[c])
			}
			g[r][c] = kind
		}
	}
	return g, nil
}

// MustParseGrid is ParseGrid for fixed layouts; it panics on malformed input.
func MustParseGrid(rows ...string) Grid {
	g, err := ParseGrid(rows...)
	if err != nil {
		panic(err)
	}
	return g
}
