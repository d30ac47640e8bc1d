package tournament

import (
	"testing"

	"github.com/vovakirdan/match3-arena/internal/game"
)

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Games != 0 || s.SuccessRate != 0 || s.AvgPoints != 0 {
		t.Errorf("Expected zero summary, got %+v", s)
	}
}

func TestSummarize(t *testing.T) {
	outcomes := []game.Outcome{
		{GameID: 0, Points: 100, Swaps: 10, Cascades: 12, ReachedTarget: true,
			Reason: game.ReachedTarget, SwapsToTarget: 8},
		{GameID: 1, Points: 40, Swaps: 20, Cascades: 22, ReachedTarget: false,
			Reason: game.NoMoves, SwapsToTarget: game.MilestoneAbsent},
		{GameID: 2, Points: 120, Swaps: 6, Cascades: 8, ReachedTarget: true,
			Reason: game.ReachedTarget, SwapsToTarget: 4},
		{GameID: 3, Points: 60, Swaps: 16, Cascades: 18, ReachedTarget: false,
			Reason: game.NoMoves, SwapsToTarget: game.MilestoneAbsent},
	}

	s := Summarize(outcomes)

	if s.Games != 4 {
		t.Errorf("Games = %d, expected 4", s.Games)
	}
	if s.SuccessRate != 50 {
		t.Errorf("SuccessRate = %v, expected 50", s.SuccessRate)
	}
	if s.AvgPoints != 80 {
		t.Errorf("AvgPoints = %v, expected 80", s.AvgPoints)
	}
	if s.MedianPoints != 80 {
		// Sorted points 40,60,100,120; even count averages the middle two.
		t.Errorf("MedianPoints = %v, expected 80", s.MedianPoints)
	}
	if s.AvgSwaps != 13 {
		t.Errorf("AvgSwaps = %v, expected 13", s.AvgSwaps)
	}
	if s.MedianSwaps != 13 {
		t.Errorf("MedianSwaps = %v, expected 13", s.MedianSwaps)
	}
	if s.AvgCascades != 15 {
		t.Errorf("AvgCascades = %v, expected 15", s.AvgCascades)
	}

	if s.MilestoneGames != 2 {
		t.Errorf("MilestoneGames = %d, expected 2", s.MilestoneGames)
	}
	if s.AvgSwapsToTarget != 6 {
		t.Errorf("AvgSwapsToTarget = %v, expected 6", s.AvgSwapsToTarget)
	}
	if s.MedianSwapsToTarget != 6 {
		t.Errorf("MedianSwapsToTarget = %v, expected 6", s.MedianSwapsToTarget)
	}
}

func TestMedianOddCount(t *testing.T) {
	outcomes := []game.Outcome{
		{Points: 10, SwapsToTarget: game.MilestoneAbsent},
		{Points: 30, SwapsToTarget: game.MilestoneAbsent},
		{Points: 20, SwapsToTarget: game.MilestoneAbsent},
	}

	s := Summarize(outcomes)
	if s.MedianPoints != 20 {
		t.Errorf("MedianPoints = %v, expected 20", s.MedianPoints)
	}
	if s.MilestoneGames != 0 {
		t.Errorf("MilestoneGames = %d, expected 0", s.MilestoneGames)
	}
	if s.AvgSwapsToTarget != 0 || s.MedianSwapsToTarget != 0 {
		t.Error("Milestone aggregates should stay zero when never reached")
	}
}
