package board

import (
	"testing"

	"github.com/psiegel-series/zombiebunker/internal/defs"
	"github.com/psiegel-series/zombiebunker/internal/utils"
)

// fillerGrid alternates two pairs of kinds so no row or column holds a run,
// and never uses the N/S/E bullets that the tests place on top of it.
func fillerGrid(rows map[int]string) Grid {
	lines := make([]string, Rows)
	for r := 0; r < Rows; r++ {
		if line, ok := rows[r]; ok {
			lines[r] = line
		} else if r%2 == 0 {
			lines[r] = "FMFMFMF"
		} else {
			lines[r] = "GWGWGWG"
		}
	}
	return MustParseGrid(lines...)
}

func newTestBoard(t *testing.T, g Grid) *Board {
	t.Helper()
	b := New(utils.NewPRNGService(7), DefaultOptions)
	b.Restore(g)
	return b
}

func TestNew_FreshBoardHasNoMatches(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		b := New(utils.NewPRNGService(seed), DefaultOptions)
		if m := b.FindMatches(); len(m) != 0 {
			t.Fatalf("seed %d: fresh board has %d matches:\n%s", seed, len(m), b.Snapshot())
		}
		for r := 0; r < Rows; r++ {
			for c := 0; c < Cols; c++ {
				if !b.Get(r, c).IsBase() {
					t.Fatalf("seed %d: cell (%d,%d) holds non-base %s", seed, r, c, b.Get(r, c))
				}
			}
		}
	}
}

func TestNew_SameSeedSameBoard(t *testing.T) {
	a := New(utils.NewPRNGService(99), DefaultOptions)
	b := New(utils.NewPRNGService(99), DefaultOptions)
	if a.Snapshot() != b.Snapshot() {
		t.Fatalf("same seed produced different boards:\n%s\n--\n%s", a.Snapshot(), b.Snapshot())
	}
}

func TestFillerGrid_HasNoMatches(t *testing.T) {
	b := newTestBoard(t, fillerGrid(nil))
	if m := b.FindMatches(); len(m) != 0 {
		t.Fatalf("filler grid should be match-free, got %d", len(m))
	}
}

func TestGetSet_OutOfRange(t *testing.T) {
	b := newTestBoard(t, fillerGrid(nil))
	before := b.Snapshot()

	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {Rows, 0}, {0, Cols}, {100, 100}} {
		if got := b.Get(rc[0], rc[1]); got != defs.TileEmpty {
			t.Fatalf("Get(%d,%d) = %s, want empty", rc[0], rc[1], got)
		}
		b.Set(rc[0], rc[1], defs.TileAirstrike)
	}
	if b.Snapshot() != before {
		t.Fatal("out-of-range Set mutated the grid")
	}

	b.Set(2, 3, defs.TileRocket)
	if got := b.Get(2, 3); got != defs.TileRocket {
		t.Fatalf("Get(2,3) = %s, want rocket", got)
	}
}

func TestSwap(t *testing.T) {
	b := newTestBoard(t, fillerGrid(map[int]string{0: "NSFMFMF"}))
	b.Swap(0, 0, 0, 1)
	if b.Get(0, 0) != defs.TileBulletS || b.Get(0, 1) != defs.TileBulletN {
		t.Fatalf("swap did not exchange cells:\n%s", b.Snapshot())
	}
}

func TestSnapshotRestore_Identity(t *testing.T) {
	b := New(utils.NewPRNGService(3), DefaultOptions)
	snap := b.Snapshot()
	b.Restore(snap)
	if b.Snapshot() != snap {
		t.Fatal("restore of an untouched snapshot changed the grid")
	}

	b.ShiftRow(2, 3)
	b.ShiftColumn(5, -2)
	b.Restore(snap)
	if b.Snapshot() != snap {
		t.Fatal("restore did not undo trial shifts")
	}
}

func TestSnapshot_IsDeepCopy(t *testing.T) {
	b := newTestBoard(t, fillerGrid(nil))
	snap := b.Snapshot()
	b.Set(0, 0, defs.TileAirstrike)
	if snap[0][0] == defs.TileAirstrike {
		t.Fatal("snapshot aliases live grid")
	}
}

func TestShiftRow_Direction(t *testing.T) {
	b := newTestBoard(t, MustParseGrid(
		"NSEWGFM",
		"NSEWGFM",
		"NSEWGFM",
		"NSEWGFM",
		"NSEWGFM",
		"NSEWGFM",
		"NSEWGFM",
	))
	b.ShiftRow(0, 1)
	b.ShiftRow(1, -1)
	b.ShiftRow(2, 8)
	b.ShiftRow(3, 0)
	got := b.Snapshot().String()
	want := "MNSEWGF\nSEWGFMN\nMNSEWGF\nNSEWGFM\nNSEWGFM\nNSEWGFM\nNSEWGFM"
	if got != want {
		t.Fatalf("shift result:\n%s\nwant:\n%s", got, want)
	}
}

func TestShiftColumn_Direction(t *testing.T) {
	b := newTestBoard(t, fillerGrid(map[int]string{0: "NFMFMFM"}))
	b.ShiftColumn(0, 1)
	if b.Get(1, 0) != defs.TileBulletN {
		t.Fatalf("ShiftColumn(0,1) should move row 0 to row 1, got %s", b.Get(1, 0))
	}
	if b.Get(0, 0) != defs.TileGasoline {
		t.Fatalf("ShiftColumn(0,1) should wrap the last row to the top, got %s", b.Get(0, 0))
	}
}

func TestShift_CyclicInverse(t *testing.T) {
	b := New(utils.NewPRNGService(11), DefaultOptions)
	orig := b.Snapshot()
	for i := 0; i < Rows; i++ {
		for k := -15; k <= 15; k++ {
			b.ShiftRow(i, k)
			b.ShiftRow(i, -k)
			if b.Snapshot() != orig {
				t.Fatalf("ShiftRow(%d,%d) then ShiftRow(%d,%d) did not restore the row", i, k, i, -k)
			}
			b.ShiftColumn(i, k)
			b.ShiftColumn(i, -k)
			if b.Snapshot() != orig {
				t.Fatalf("ShiftColumn(%d,%d) then ShiftColumn(%d,%d) did not restore the column", i, k, i, -k)
			}
		}
	}
}

func TestShift_OutOfRangeIsNoop(t *testing.T) {
	b := New(utils.NewPRNGService(5), DefaultOptions)
	orig := b.Snapshot()
	b.ShiftRow(-1, 2)
	b.ShiftRow(Rows, 2)
	b.ShiftColumn(-1, 2)
	b.ShiftColumn(Cols, 2)
	if b.Snapshot() != orig {
		t.Fatal("out-of-range shifts mutated the grid")
	}
}

func TestApplyGravity_CompactsAndPreservesOrder(t *testing.T) {
	b := newTestBoard(t, MustParseGrid(
		"NFMFMFM",
		".GWGWGW",
		"SFMFMFM",
		".GWGWGW",
		"EFMFMFM",
		".GWGWGW",
		".FMFMFM",
	))
	moves := b.ApplyGravity()

	want := []Move{
		{Col: 0, FromRow: 4, ToRow: 6},
		{Col: 0, FromRow: 2, ToRow: 5},
		{Col: 0, FromRow: 0, ToRow: 4},
	}
	if len(moves) != len(want) {
		t.Fatalf("got %d moves %v, want %v", len(moves), moves, want)
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Fatalf("move %d = %+v, want %+v", i, moves[i], want[i])
		}
	}

	col := []defs.TileKind{b.Get(4, 0), b.Get(5, 0), b.Get(6, 0)}
	if col[0] != defs.TileBulletN || col[1] != defs.TileBulletS || col[2] != defs.TileBulletE {
		t.Fatalf("column order not preserved: %v", col)
	}
	for r := 0; r < 4; r++ {
		if b.Get(r, 0) != defs.TileEmpty {
			t.Fatalf("row %d col 0 should be empty after gravity", r)
		}
	}
}

func TestApplyGravity_Idempotent(t *testing.T) {
	b := New(utils.NewPRNGService(21), DefaultOptions)
	b.Set(6, 2, defs.TileEmpty)
	b.Set(3, 2, defs.TileEmpty)
	b.Set(0, 4, defs.TileEmpty)

	if first := b.ApplyGravity(); len(first) == 0 {
		t.Fatal("first gravity pass should move tiles")
	}
	if second := b.ApplyGravity(); len(second) != 0 {
		t.Fatalf("second gravity pass should be empty, got %v", second)
	}
}

func TestFillEmpty_OnlyBaseKinds(t *testing.T) {
	b := newTestBoard(t, fillerGrid(nil))
	for c := 0; c < Cols; c++ {
		b.Set(0, c, defs.TileEmpty)
		b.Set(1, c, defs.TileEmpty)
	}
	fills := b.FillEmpty()
	if len(fills) != 2*Cols {
		t.Fatalf("got %d fills, want %d", len(fills), 2*Cols)
	}
	for i, f := range fills {
		if !f.Kind.IsBase() {
			t.Fatalf("fill %d is %s, want a base kind", i, f.Kind)
		}
		if b.Get(f.Row, f.Col) != f.Kind {
			t.Fatalf("fill %d reported %s but cell holds %s", i, f.Kind, b.Get(f.Row, f.Col))
		}
	}
	// Top-down per column.
	if fills[0].Col != 0 || fills[0].Row != 0 || fills[1].Col != 0 || fills[1].Row != 1 {
		t.Fatalf("fills not ordered top-down per column: %v", fills[:2])
	}
	if again := b.FillEmpty(); len(again) != 0 {
		t.Fatalf("full board should need no fills, got %d", len(again))
	}
}

func TestReshuffle_NoMatches(t *testing.T) {
	b := newTestBoard(t, fillerGrid(map[int]string{0: "NNNMFMF"}))
	b.Reshuffle()
	if m := b.FindMatches(); len(m) != 0 {
		t.Fatalf("reshuffled board has %d matches", len(m))
	}
}
