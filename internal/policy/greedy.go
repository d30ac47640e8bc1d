package policy

import "github.com/vovakirdan/match3-arena/internal/board"

// Greedy ranks moves purely by the local delta score estimate.
// This is the baseline single-ply policy.
type Greedy struct{}

// NewGreedy creates the baseline policy.
func NewGreedy() *Greedy {
	return &Greedy{}
}

func init() {
	Register("greedy", func() Policy {
		return NewGreedy()
	})
}

// Name returns the policy identifier.
func (p *Greedy) Name() string { return "greedy" }

// Description returns a one-line summary.
func (p *Greedy) Description() string {
	return "Highest immediate local score, no move memory"
}

// Score returns the local delta estimate for the move.
func (p *Greedy) Score(b *board.Board, mv board.Move, history map[board.Move]int) float64 {
	return float64(b.LocalSwapScore(mv))
}
