package tournament

import (
	"sort"

	"github.com/vovakirdan/match3-arena/internal/game"
)

// Summary aggregates the outcomes of one tournament.
// Milestone averages cover only the games that crossed the target;
// MilestoneGames says how many did.
type Summary struct {
	Games       int
	SuccessRate float64 // Percent of games reaching the target

	AvgPoints    float64
	MedianPoints float64

	AvgSwaps    float64
	MedianSwaps float64

	AvgCascades    float64
	MedianCascades float64

	MilestoneGames      int
	AvgSwapsToTarget    float64
	MedianSwapsToTarget float64
}

// Summarize computes aggregate statistics over the given outcomes.
func Summarize(outcomes []game.Outcome) Summary {
	s := Summary{Games: len(outcomes)}
	if len(outcomes) == 0 {
		return s
	}

	points := make([]float64, 0, len(outcomes))
	swaps := make([]float64, 0, len(outcomes))
	cascades := make([]float64, 0, len(outcomes))
	var milestones []float64
	reached := 0

	for _, o := range outcomes {
		points = append(points, float64(o.Points))
		swaps = append(swaps, float64(o.Swaps))
		cascades = append(cascades, float64(o.Cascades))
		if o.ReachedTarget {
			reached++
		}
		if o.SwapsToTarget != game.MilestoneAbsent {
			milestones = append(milestones, float64(o.SwapsToTarget))
		}
	}

	s.SuccessRate = float64(reached) / float64(len(outcomes)) * 100
	s.AvgPoints = mean(points)
	s.MedianPoints = median(points)
	s.AvgSwaps = mean(swaps)
	s.MedianSwaps = median(swaps)
	s.AvgCascades = mean(cascades)
	s.MedianCascades = median(cascades)

	s.MilestoneGames = len(milestones)
	if len(milestones) > 0 {
		s.AvgSwapsToTarget = mean(milestones)
		s.MedianSwapsToTarget = median(milestones)
	}
	return s
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
