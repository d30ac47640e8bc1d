package board

import (
	"math/rand"
	"testing"
)

func TestNewFillsPlayableColors(t *testing.T) {
	b := New(11, 11, 4, rand.New(rand.NewSource(42)))

	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			color := b.At(r, c)
			if color < 1 || int(color) > 4 {
				t.Fatalf("Cell (%d,%d) has color %d outside 1..4", r, c, color)
			}
		}
	}
}

func TestNewPredefinedValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name    string
		grid    [][]Color
		colors  int
		wantErr bool
	}{
		{"valid", [][]Color{{1, 2}, {3, 4}}, 4, false},
		{"empty allowed", [][]Color{{1, 0}, {2, 1}}, 2, false},
		{"no rows", [][]Color{}, 4, true},
		{"ragged", [][]Color{{1, 2}, {3}}, 4, true},
		{"color above palette", [][]Color{{1, 5}, {2, 1}}, 4, true},
		{"negative color", [][]Color{{1, -1}, {2, 1}}, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPredefined(tt.grid, tt.colors, rng)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewPredefined() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAtOutOfBounds(t *testing.T) {
	b := mustBoard(t, [][]Color{{1, 2}, {3, 4}}, 4)

	probes := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {-1, -1}}
	for _, p := range probes {
		if got := b.At(p[0], p[1]); got != Empty {
			t.Errorf("At(%d,%d) = %v, expected Empty", p[0], p[1], got)
		}
	}
}

func TestRemoveFormationsExactCells(t *testing.T) {
	b := mustBoard(t, [][]Color{
		{1, 1, 1, 2},
		{2, 3, 2, 3},
		{3, 2, 3, 2},
	}, 3)

	formations := b.FindAllFormations()
	if len(formations) != 1 {
		t.Fatalf("Expected 1 formation, got %d", len(formations))
	}

	score := b.RemoveFormations(formations)
	if score != ScoreLine3 {
		t.Errorf("Expected score %d, got %d", ScoreLine3, score)
	}

	// Exactly the run cells are now empty.
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			inRun := r == 0 && c < 3
			if (b.At(r, c) == Empty) != inRun {
				t.Errorf("Cell (%d,%d) = %v after removal", r, c, b.At(r, c))
			}
		}
	}
}

func TestRemoveFormationsNoDoubleCredit(t *testing.T) {
	b := mustBoard(t, [][]Color{
		{1, 1, 1, 2},
		{2, 3, 2, 3},
	}, 3)

	run := []Cell{{0, 0}, {0, 1}, {0, 2}}
	duplicated := []Formation{
		{Cells: run, Score: ScoreLine3},
		{Cells: run, Score: ScoreLine3},
	}

	if score := b.RemoveFormations(duplicated); score != ScoreLine3 {
		t.Errorf("Expected %d for duplicated input, got %d", ScoreLine3, score)
	}
}

func TestApplyGravityCompactsColumns(t *testing.T) {
	b := mustBoard(t, [][]Color{
		{1, 0, 2},
		{0, 0, 3},
		{2, 0, 0},
		{0, 1, 1},
	}, 3)

	b.ApplyGravity()

	// Column 0: tiles 1,2 keep their top-to-bottom order at the bottom.
	wantCol0 := []Color{0, 0, 1, 2}
	for r, want := range wantCol0 {
		if got := b.At(r, 0); got != want {
			t.Errorf("Column 0 row %d = %v, expected %v", r, got, want)
		}
	}

	// Column 1: single tile falls to the bottom.
	wantCol1 := []Color{0, 0, 0, 1}
	for r, want := range wantCol1 {
		if got := b.At(r, 1); got != want {
			t.Errorf("Column 1 row %d = %v, expected %v", r, got, want)
		}
	}

	// Column 2: order 2,3,1 preserved.
	wantCol2 := []Color{0, 2, 3, 1}
	for r, want := range wantCol2 {
		if got := b.At(r, 2); got != want {
			t.Errorf("Column 2 row %d = %v, expected %v", r, got, want)
		}
	}
}

func TestRefillFillsOnlyEmpties(t *testing.T) {
	b := mustBoard(t, [][]Color{
		{1, 0, 2},
		{0, 3, 0},
	}, 3)

	b.Refill()

	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			color := b.At(r, c)
			if color < 1 || int(color) > 3 {
				t.Errorf("Cell (%d,%d) = %v after refill", r, c, color)
			}
		}
	}

	// Pre-existing tiles are untouched.
	if b.At(0, 0) != 1 || b.At(0, 2) != 2 || b.At(1, 1) != 3 {
		t.Error("Refill changed a non-empty cell")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	b := mustBoard(t, [][]Color{{1, 2}, {3, 1}}, 3)

	snap := b.Snapshot()
	snap[0][0] = 3

	if b.At(0, 0) != 1 {
		t.Error("Mutating the snapshot changed the board")
	}
}

func TestCloneIndependence(t *testing.T) {
	b := mustBoard(t, [][]Color{{1, 2}, {3, 1}}, 3)
	clone := b.Clone()

	if !b.Equal(clone) {
		t.Fatal("Clone differs from original")
	}

	clone.set(0, 0, 2)
	if b.At(0, 0) != 1 {
		t.Error("Mutating the clone changed the original")
	}
	if b.Equal(clone) {
		t.Error("Equal() missed a difference")
	}
}
