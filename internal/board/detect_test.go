package board

import (
	"math/rand"
	"testing"
)

// mustBoard builds a board from a literal grid, failing the test on invalid
// input. colors must cover every value in the grid.
func mustBoard(t *testing.T, grid [][]Color, colors int) *Board {
	t.Helper()
	b, err := NewPredefined(grid, colors, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewPredefined() failed: %v", err)
	}
	return b
}

func TestFindLineFormationsRow(t *testing.T) {
	// Three separate 3-runs in one row plus a too-short tail.
	b := mustBoard(t, [][]Color{
		{1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4},
	}, 4)

	formations := b.FindLineFormations()
	if len(formations) != 3 {
		t.Fatalf("Expected 3 line formations, got %d", len(formations))
	}
	for i, f := range formations {
		if f.Score != ScoreLine3 {
			t.Errorf("Formation %d: expected score %d, got %d", i, ScoreLine3, f.Score)
		}
		if len(f.Cells) != 3 {
			t.Errorf("Formation %d: expected 3 cells, got %d", i, len(f.Cells))
		}
	}
}

func TestLineScoresByLength(t *testing.T) {
	tests := []struct {
		name  string
		row   []Color
		score int
		cells int
	}{
		{"length 3", []Color{1, 1, 1, 2, 3}, ScoreLine3, 3},
		{"length 4", []Color{1, 1, 1, 1, 2}, ScoreLine4, 4},
		{"length 5", []Color{1, 1, 1, 1, 1}, ScoreLine5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, [][]Color{tt.row}, 3)
			formations := b.FindLineFormations()
			if len(formations) != 1 {
				t.Fatalf("Expected 1 formation, got %d", len(formations))
			}
			if formations[0].Score != tt.score {
				t.Errorf("Expected score %d, got %d", tt.score, formations[0].Score)
			}
			if len(formations[0].Cells) != tt.cells {
				t.Errorf("Expected %d cells, got %d", tt.cells, len(formations[0].Cells))
			}
		})
	}
}

func TestFindLFormationAbsorbsItsLines(t *testing.T) {
	// Vertical arm down column 0, horizontal arm along the bottom row. The L
	// must win overlap resolution against both of its 3-cell line arms.
	b := mustBoard(t, [][]Color{
		{1, 2, 3},
		{1, 3, 2},
		{1, 1, 1},
	}, 3)

	ls := b.FindLFormations()
	if len(ls) != 1 {
		t.Fatalf("Expected 1 L formation, got %d", len(ls))
	}
	if ls[0].Score != ScoreL {
		t.Errorf("Expected L score %d, got %d", ScoreL, ls[0].Score)
	}
	if len(ls[0].Cells) != 5 {
		t.Errorf("Expected 5 cells (shared corner deduplicated), got %d", len(ls[0].Cells))
	}

	all := b.FindAllFormations()
	if len(all) != 1 {
		t.Fatalf("Expected overlap resolution to keep only the L, got %d formations", len(all))
	}
	if all[0].Score != ScoreL {
		t.Errorf("Expected winning score %d, got %d", ScoreL, all[0].Score)
	}
}

func TestFindTFormationAbsorbsItsLines(t *testing.T) {
	// T with center (2,1): stem up two cells, crossbar both sides.
	b := mustBoard(t, [][]Color{
		{2, 1, 3},
		{3, 1, 2},
		{1, 1, 1},
		{2, 3, 2},
	}, 3)

	ts := b.FindTFormations()
	if len(ts) != 1 {
		t.Fatalf("Expected 1 T formation, got %d", len(ts))
	}
	if ts[0].Score != ScoreT {
		t.Errorf("Expected T score %d, got %d", ScoreT, ts[0].Score)
	}
	if len(ts[0].Cells) != 5 {
		t.Errorf("Expected 5 cells, got %d", len(ts[0].Cells))
	}

	all := b.FindAllFormations()
	if len(all) != 1 {
		t.Fatalf("Expected overlap resolution to keep only the T, got %d formations", len(all))
	}
	if all[0].Score != ScoreT {
		t.Errorf("Expected winning score %d, got %d", ScoreT, all[0].Score)
	}
}

func TestFindAllFormationsEmptyOnQuietBoard(t *testing.T) {
	b := mustBoard(t, [][]Color{
		{1, 2, 1, 2},
		{2, 1, 2, 1},
		{1, 2, 1, 2},
		{2, 1, 2, 1},
	}, 2)

	if got := b.FindAllFormations(); len(got) != 0 {
		t.Errorf("Expected no formations on checkerboard, got %d", len(got))
	}
}

func TestFindAllFormationsDisjoint(t *testing.T) {
	// Random boards tend to contain overlapping candidates; the accepted set
	// must always be pairwise disjoint.
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		b := New(8, 8, 3, rng)
		formations := b.FindAllFormations()

		claimed := make(map[Cell]bool)
		for _, f := range formations {
			for _, cell := range f.Cells {
				if claimed[cell] {
					t.Fatalf("Board %d: cell %v claimed by two formations", i, cell)
				}
				claimed[cell] = true
			}
		}
	}
}

func TestDetectionDoesNotMutate(t *testing.T) {
	b := mustBoard(t, [][]Color{
		{1, 2, 3},
		{1, 3, 2},
		{1, 1, 1},
	}, 3)
	before := b.Snapshot()

	b.FindLineFormations()
	b.FindLFormations()
	b.FindTFormations()
	b.FindAllFormations()

	after := b.Snapshot()
	for r := range before {
		for c := range before[r] {
			if before[r][c] != after[r][c] {
				t.Fatalf("Detection mutated cell (%d,%d): %v -> %v", r, c, before[r][c], after[r][c])
			}
		}
	}
}

func TestDetectionIdempotent(t *testing.T) {
	b := mustBoard(t, [][]Color{
		{1, 1, 1, 2},
		{2, 3, 2, 3},
		{3, 2, 3, 2},
	}, 3)

	first := b.FindAllFormations()
	second := b.FindAllFormations()
	if len(first) != len(second) {
		t.Fatalf("Detection not idempotent: %d vs %d formations", len(first), len(second))
	}
	for i := range first {
		if !first[i].sameCells(&second[i]) || first[i].Score != second[i].Score {
			t.Errorf("Formation %d differs between passes", i)
		}
	}
}
