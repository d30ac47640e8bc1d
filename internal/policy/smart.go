package policy

import "github.com/vovakirdan/match3-arena/internal/board"

// Default heuristic constants for the enhanced policy. They are tunable
// policy knobs, not correctness requirements.
const (
	DefaultRepeatPenalty = 0.8
	DefaultCascadeWeight = 0.2
	DefaultPotentialCap  = 2.0
)

// Smart extends the greedy ranking with a penalty for repeating the exact
// same swap and a bounded bonus for moves likely to trigger follow-up
// cascades.
type Smart struct {
	RepeatPenalty float64 // Multiplier applied when the move was already played
	CascadeWeight float64 // Weight of the cascade-potential bonus
	PotentialCap  float64 // Upper bound on the raw potential estimate
}

// NewSmart creates the enhanced policy with default constants.
func NewSmart() *Smart {
	return &Smart{
		RepeatPenalty: DefaultRepeatPenalty,
		CascadeWeight: DefaultCascadeWeight,
		PotentialCap:  DefaultPotentialCap,
	}
}

func init() {
	Register("smart", func() Policy {
		return NewSmart()
	})
}

// Name returns the policy identifier.
func (p *Smart) Name() string { return "smart" }

// Description returns a one-line summary.
func (p *Smart) Description() string {
	return "Local score with repeat penalty and cascade-potential bonus"
}

// Score combines the local delta estimate with the repetition penalty and the
// capped cascade bonus.
func (p *Smart) Score(b *board.Board, mv board.Move, history map[board.Move]int) float64 {
	score := float64(b.LocalSwapScore(mv))

	if history[mv] > 0 {
		score *= p.RepeatPenalty
	}

	potential := b.CascadePotential(mv)
	if potential > p.PotentialCap {
		potential = p.PotentialCap
	}
	return score * (1 + p.CascadeWeight*potential)
}
