package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/match3-arena/internal/board"
	"github.com/vovakirdan/match3-arena/internal/policy"
)

// Defaults for the liveness caps. Both exist to fail loudly on logic errors
// rather than hang; legitimate games stay far below them.
const (
	DefaultMaxCascadePasses = 10000
	DefaultMaxSwaps         = 1000000
)

// Config describes one game instance. Each game owns its board and RNG
// stream, so instances may run on concurrent workers without sharing state.
type Config struct {
	Rows   int
	Cols   int
	Colors int // Palette size K
	Target int
	Seed   int64

	// Predefined is an optional starting grid; nil means a random board.
	Predefined [][]board.Color

	// Policy ranks candidate moves. Required.
	Policy policy.Policy

	// MaxCascadePasses caps detect/remove/gravity/refill passes per move.
	// Zero selects DefaultMaxCascadePasses.
	MaxCascadePasses int

	// MaxSwaps caps the total swaps in one game. Zero selects DefaultMaxSwaps.
	MaxSwaps int
}

// Manager runs the greedy per-turn loop for a single game.
// It is strictly sequential; there is no intra-game concurrency.
type Manager struct {
	board  *board.Board
	target int
	pol    policy.Policy

	score         int
	swaps         int
	cascades      int
	swapsToTarget int

	history  map[board.Move]int
	maxPass  int
	maxSwaps int
	started  bool
}

// New creates a game manager. The board is filled from cfg.Predefined when
// given, otherwise randomly from the seeded RNG.
func New(cfg Config) (*Manager, error) {
	if cfg.Policy == nil {
		return nil, fmt.Errorf("game: config has no policy")
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	var b *board.Board
	var err error
	if cfg.Predefined != nil {
		b, err = board.NewPredefined(cfg.Predefined, cfg.Colors, rng)
		if err != nil {
			return nil, fmt.Errorf("game: %w", err)
		}
	} else {
		b = board.New(cfg.Rows, cfg.Cols, cfg.Colors, rng)
	}

	maxPass := cfg.MaxCascadePasses
	if maxPass <= 0 {
		maxPass = DefaultMaxCascadePasses
	}
	maxSwaps := cfg.MaxSwaps
	if maxSwaps <= 0 {
		maxSwaps = DefaultMaxSwaps
	}

	return &Manager{
		board:         b,
		target:        cfg.Target,
		pol:           cfg.Policy,
		swapsToTarget: MilestoneAbsent,
		history:       make(map[board.Move]int),
		maxPass:       maxPass,
		maxSwaps:      maxSwaps,
	}, nil
}

// Board exposes the underlying board for rendering and inspection.
func (m *Manager) Board() *board.Board { return m.board }

// Score returns the running score.
func (m *Manager) Score() int { return m.score }

// Swaps returns the number of committed swaps.
func (m *Manager) Swaps() int { return m.swaps }

// Cascades returns the total cascade count.
func (m *Manager) Cascades() int { return m.cascades }

// Target returns the target score.
func (m *Manager) Target() int { return m.target }

// resolveCascades drains the board: detect the overlap-resolved formation
// set, and while it is non-empty remove it, apply gravity and refill. Each
// full pass counts as one cascade. Refill is unconstrained random, so the
// loop has no theoretical bound; the pass cap turns a runaway loop into an
// error instead of a hang.
func (m *Manager) resolveCascades() (int, error) {
	score := 0
	for pass := 0; ; pass++ {
		if pass >= m.maxPass {
			return score, fmt.Errorf("game: cascade did not stabilize after %d passes", m.maxPass)
		}
		formations := m.board.FindAllFormations()
		if len(formations) == 0 {
			return score, nil
		}
		score += m.board.RemoveFormations(formations)
		m.board.ApplyGravity()
		m.board.Refill()
		m.cascades++
	}
}

// checkMilestone records the swap count the first time the score reaches the
// target. Later crossings never overwrite it.
func (m *Manager) checkMilestone() {
	if m.swapsToTarget == MilestoneAbsent && m.score >= m.target {
		m.swapsToTarget = m.swaps
	}
}

// bestMove picks the maximum-scoring candidate; ties go to the earlier move
// in enumeration order (row-major, horizontal before vertical).
func (m *Manager) bestMove() (board.Move, bool) {
	moves := m.board.PossibleMoves()
	if len(moves) == 0 {
		return board.Move{}, false
	}

	best := moves[0]
	bestScore := m.pol.Score(m.board, best, m.history)
	for _, mv := range moves[1:] {
		if s := m.pol.Score(m.board, mv, m.history); s > bestScore {
			best = mv
			bestScore = s
		}
	}
	return best, true
}

func (m *Manager) outcome(reason StoppingReason) Outcome {
	return Outcome{
		Points:        m.score,
		Swaps:         m.swaps,
		Cascades:      m.cascades,
		ReachedTarget: reason == ReachedTarget,
		Reason:        reason,
		SwapsToTarget: m.swapsToTarget,
	}
}

// Step plays one turn. On the first call it resolves any formations standing
// on the initial board before checking the target. It returns done=true with
// the final outcome when the game ended on this call.
func (m *Manager) Step() (Outcome, bool, error) {
	if !m.started {
		m.started = true
		gained, err := m.resolveCascades()
		if err != nil {
			return Outcome{}, false, err
		}
		m.score += gained
		m.checkMilestone()
	}

	if m.score >= m.target {
		return m.outcome(ReachedTarget), true, nil
	}

	mv, ok := m.bestMove()
	if !ok {
		return m.outcome(NoMoves), true, nil
	}

	if m.swaps >= m.maxSwaps {
		return Outcome{}, false, fmt.Errorf("game: swap cap %d exceeded without termination", m.maxSwaps)
	}

	if !m.board.TrySwap(mv.R1, mv.C1, mv.R2, mv.C2) {
		// PossibleMoves and TrySwap share the same local test, so an
		// enumerated move can never be rejected.
		return Outcome{}, false, fmt.Errorf("game: enumerated move %v rejected by TrySwap", mv)
	}
	m.swaps++
	m.history[mv]++

	gained, err := m.resolveCascades()
	if err != nil {
		return Outcome{}, false, err
	}
	m.score += gained
	m.checkMilestone()

	return Outcome{}, false, nil
}

// Play runs the game to completion and returns its outcome. Termination is
// guaranteed for well-formed boards: the move space is finite and checked
// exhaustively each turn, and the caps bound pathological cases.
func (m *Manager) Play() (Outcome, error) {
	for {
		out, done, err := m.Step()
		if err != nil {
			return Outcome{}, err
		}
		if done {
			return out, nil
		}
	}
}
