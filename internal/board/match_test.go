package board

import (
	"strings"
	"testing"

	"github.com/psiegel-series/zombiebunker/internal/defs"
	"github.com/psiegel-series/zombiebunker/internal/utils"
)

func TestFindMatches_PlainRun(t *testing.T) {
	b := newTestBoard(t, fillerGrid(map[int]string{0: "NNNMFMF"}))
	matches := b.FindMatches()
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	m := matches[0]
	if m.Kind != defs.TileBulletN || m.Len() != 3 || !m.Horizontal {
		t.Fatalf("unexpected match %+v", m)
	}
	for i, c := range m.Cells {
		if c != (Cell{Row: 0, Col: i}) {
			t.Fatalf("cell %d = %+v, want (0,%d)", i, c, i)
		}
	}
}

func TestFindMatches_Vertical(t *testing.T) {
	b := newTestBoard(t, fillerGrid(map[int]string{
		2: "FMFSFMF",
		3: "GWGSGWG",
		4: "FMFSFMF",
	}))
	matches := b.FindMatches()
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	m := matches[0]
	if m.Horizontal || m.Kind != defs.TileBulletS || m.Cells[0] != (Cell{2, 3}) || m.Last() != (Cell{4, 3}) {
		t.Fatalf("unexpected match %+v", m)
	}
}

func TestFindMatches_PoweredJoinsBaseRun(t *testing.T) {
	b := newTestBoard(t, fillerGrid(map[int]string{0: "NnNMFMF"}))
	matches := b.FindMatches()
	if len(matches) != 1 || matches[0].Kind != defs.TileBulletN || matches[0].Len() != 3 {
		t.Fatalf("powered tile should extend its base run, got %+v", matches)
	}
}

func TestFindMatches_DifferentBaseEndsRun(t *testing.T) {
	b := newTestBoard(t, fillerGrid(map[int]string{0: "NNSNFMF"}))
	if matches := b.FindMatches(); len(matches) != 0 {
		t.Fatalf("a different base kind must end the run, got %+v", matches)
	}
}

func TestFindMatches_WildcardExtendsRun(t *testing.T) {
	b := newTestBoard(t, fillerGrid(map[int]string{0: "N*NMFMF"}))
	matches := b.FindMatches()
	if len(matches) != 1 || matches[0].Kind != defs.TileBulletN || matches[0].Len() != 3 {
		t.Fatalf("wildcard should extend the run, got %+v", matches)
	}
}

func TestFindMatches_LeadingWildcardLocksOnFirstKind(t *testing.T) {
	b := newTestBoard(t, fillerGrid(map[int]string{0: "**EEFMF"}))
	matches := b.FindMatches()
	if len(matches) != 1 || matches[0].Kind != defs.TileBulletE || matches[0].Len() != 4 {
		t.Fatalf("run should lock onto the first non-wildcard kind, got %+v", matches)
	}
}

func TestFindMatches_TrailingWildcardsShared(t *testing.T) {
	b := newTestBoard(t, fillerGrid(map[int]string{0: "NN**SSF"}))
	matches := b.FindMatches()
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2: %+v", len(matches), matches)
	}
	if matches[0].Kind != defs.TileBulletN || matches[0].Len() != 4 {
		t.Fatalf("first match %+v, want N x4", matches[0])
	}
	if matches[1].Kind != defs.TileBulletS || matches[1].Len() != 4 || matches[1].Cells[0] != (Cell{0, 2}) {
		t.Fatalf("second match %+v, want S x4 starting at (0,2)", matches[1])
	}
}

func TestFindMatches_TrailingWildcardsAtLineEndStayInRun(t *testing.T) {
	for _, row := range []string{"FMNN***", "***NNFM"} {
		b := newTestBoard(t, fillerGrid(map[int]string{0: row}))
		matches := b.FindMatches()
		if len(matches) != 1 {
			t.Fatalf("%s: got %d matches, want 1: %+v", row, len(matches), matches)
		}
		if matches[0].Kind != defs.TileBulletN || matches[0].Len() != 5 {
			t.Fatalf("%s: match %+v, want N x5", row, matches[0])
		}
	}
}

func TestFindMatches_WildcardsBeforeEmptyStayInRun(t *testing.T) {
	b := newTestBoard(t, fillerGrid(map[int]string{0: "NN***.F"}))
	matches := b.FindMatches()
	if len(matches) != 1 || matches[0].Kind != defs.TileBulletN || matches[0].Len() != 5 {
		t.Fatalf("got %+v, want a single N x5", matches)
	}
}

func TestFindMatches_AllWildcardPolicy(t *testing.T) {
	g := fillerGrid(map[int]string{0: "***.FMF"})

	counted := New(utils.NewPRNGService(1), Options{AllWildcardRuns: true})
	counted.Restore(g)
	matches := counted.FindMatches()
	if len(matches) != 1 || matches[0].Kind != defs.TileWildcard || matches[0].Len() != 3 {
		t.Fatalf("all-wildcard run should count with the policy on, got %+v", matches)
	}

	ignored := New(utils.NewPRNGService(1), Options{AllWildcardRuns: false})
	ignored.Restore(g)
	if matches := ignored.FindMatches(); len(matches) != 0 {
		t.Fatalf("all-wildcard run should be ignored with the policy off, got %+v", matches)
	}
}

func TestFindMatches_RowsBeforeColumns(t *testing.T) {
	b := newTestBoard(t, fillerGrid(map[int]string{
		1: "GNNNGWG",
		2: "FMNMFMF",
		3: "GWNWGWG",
	}))
	matches := b.FindMatches()
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2: %+v", len(matches), matches)
	}
	if !matches[0].Horizontal || matches[1].Horizontal {
		t.Fatal("row matches must be reported before column matches")
	}
	if !matches[0].Intersects(matches[1]) {
		t.Fatal("crossing runs should share a cell")
	}
}

func TestWouldMatch(t *testing.T) {
	b := newTestBoard(t, fillerGrid(map[int]string{
		2: "FMNMFMF",
		3: "NNSNGWG",
	}))
	before := b.Snapshot()

	if !b.WouldMatch(2, 2, 3, 2) {
		t.Fatal("swapping (2,2)<->(3,2) completes N x4 and should match")
	}
	if b.WouldMatch(0, 0, 0, 1) {
		t.Fatal("swapping two filler cells should not match")
	}
	if b.WouldMatch(0, 0, -1, 0) {
		t.Fatal("out-of-range swap should not match")
	}
	if b.Snapshot() != before {
		t.Fatal("WouldMatch left the grid changed")
	}
}

func TestWouldMatch_OnlyChecksSwappedCells(t *testing.T) {
	// A run already exists elsewhere; a swap that does not touch it is false.
	b := newTestBoard(t, fillerGrid(map[int]string{0: "NNNMFMF"}))
	if b.WouldMatch(5, 0, 5, 1) {
		t.Fatal("an existing run away from the swapped cells must not count")
	}
}

func TestFindHint(t *testing.T) {
	b := newTestBoard(t, fillerGrid(map[int]string{
		2: "FMNMFMF",
		3: "NNSNGWG",
	}))
	a, c, ok := b.FindHint()
	if !ok {
		t.Fatal("expected a hint")
	}
	if !Adjacent(a, c) {
		t.Fatalf("hint cells %+v %+v are not adjacent", a, c)
	}
	if !b.WouldMatch(a.Row, a.Col, c.Row, c.Col) {
		t.Fatal("hint swap does not match")
	}

	dead := newTestBoard(t, fillerGrid(nil))
	if _, _, ok := dead.FindHint(); ok {
		t.Fatal("filler grid should have no productive swap")
	}
}

func TestAdjacent(t *testing.T) {
	if !Adjacent(Cell{1, 1}, Cell{1, 2}) || !Adjacent(Cell{1, 1}, Cell{0, 1}) {
		t.Fatal("edge neighbours should be adjacent")
	}
	if Adjacent(Cell{1, 1}, Cell{2, 2}) || Adjacent(Cell{1, 1}, Cell{1, 1}) || Adjacent(Cell{1, 1}, Cell{1, 3}) {
		t.Fatal("diagonal, identical and distant cells are not adjacent")
	}
}

func TestParseGrid_RoundTrip(t *testing.T) {
	b := New(utils.NewPRNGService(8), DefaultOptions)
	b.Set(0, 0, defs.TileAirstrike)
	b.Set(1, 1, defs.TileNapalm)
	b.Set(2, 2, defs.TileEmpty)
	text := b.Snapshot().String()

	g, err := ParseGrid(strings.Split(text, "\n")...)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	if g != b.Snapshot() {
		t.Fatal("parsed grid differs from original")
	}

	if _, err := ParseGrid("NNN"); err == nil {
		t.Fatal("short input should fail")
	}
}
