package board

import (
	"math/rand"
	"testing"
)

func TestLocalSwapScoreSimpleLine(t *testing.T) {
	b := mustBoard(t, oneMoveGrid(), 3)
	before := b.Snapshot()

	score := b.LocalSwapScore(Move{0, 1, 1, 1})
	if score != ScoreLine3 {
		t.Errorf("Expected local score %d, got %d", ScoreLine3, score)
	}

	// The probe must leave the board untouched.
	assertGridEqual(t, b, before)
}

func TestLocalSwapScoreTwoRuns(t *testing.T) {
	// Swapping (1,1) and (1,2) completes a vertical 4-run in column 2 and a
	// vertical 3-run in column 1; both are credited once.
	b := mustBoard(t, [][]Color{
		{2, 3, 1, 3},
		{1, 1, 3, 1},
		{2, 3, 1, 3},
		{3, 2, 1, 2},
	}, 3)

	score := b.LocalSwapScore(Move{1, 1, 1, 2})
	want := ScoreLine4 + ScoreLine3
	if score != want {
		t.Errorf("Expected local score %d, got %d", want, score)
	}
}

func TestLocalSwapScoreZeroForUnproductive(t *testing.T) {
	b := mustBoard(t, quietGrid(), 2)
	if score := b.LocalSwapScore(Move{0, 0, 0, 1}); score != 0 {
		t.Errorf("Expected 0 for unproductive swap, got %d", score)
	}
}

func TestLocalSwapScoreDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	b := New(9, 9, 3, rng)

	for _, mv := range b.PossibleMoves() {
		first := b.LocalSwapScore(mv)
		second := b.LocalSwapScore(mv)
		if first != second {
			t.Fatalf("LocalSwapScore(%v) not deterministic: %d vs %d", mv, first, second)
		}
	}
}

func TestCascadePotentialZeroOnFullBoard(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	b := New(8, 8, 4, rng)

	for _, mv := range b.PossibleMoves() {
		if p := b.CascadePotential(mv); p != 0 {
			t.Errorf("Expected 0 potential on a gap-free board, got %v for %v", p, mv)
		}
	}
}

func TestCascadePotentialCountsNearMatches(t *testing.T) {
	// Column 1 above the endpoint holds two matching tiles and one gap.
	b := mustBoard(t, [][]Color{
		{2, 1, 3},
		{3, 0, 2},
		{2, 1, 3},
		{1, 3, 2},
	}, 3)

	// Endpoint (3,1): the vertical window rows 0..2 of column 1 is 1,0,1.
	p := b.CascadePotential(Move{3, 1, 3, 2})
	if p < 0.5 {
		t.Errorf("Expected potential >= 0.5, got %v", p)
	}
	if p > 2.0 {
		t.Errorf("Potential %v exceeds the cap", p)
	}
}

func TestCascadePotentialCapped(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 10; i++ {
		b := New(8, 8, 2, rng)
		// Punch gaps to raise the near-match count.
		for r := 0; r < 8; r += 2 {
			for c := 0; c < 8; c += 2 {
				b.set(r, c, Empty)
			}
		}
		for _, mv := range []Move{{3, 3, 3, 4}, {4, 4, 5, 4}} {
			if p := b.CascadePotential(mv); p > 2.0 {
				t.Fatalf("Potential %v exceeds cap 2.0", p)
			}
		}
	}
}
