// Package tournament runs N independent games on a worker pool and
// aggregates their outcomes. Games share no mutable state: each one owns its
// board and RNG stream, so workers never need locking and results are
// deterministic for a fixed base seed regardless of scheduling.
package tournament

import (
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/match3-arena/internal/boards"
	"github.com/vovakirdan/match3-arena/internal/game"
	"github.com/vovakirdan/match3-arena/internal/policy"
)

// seedStride separates per-game RNG streams derived from the base seed.
const seedStride = 1_000_003

// Config describes one tournament.
type Config struct {
	Games  int
	Rows   int
	Cols   int
	Colors int
	Target int
	Policy string

	// Seed is the base seed; game i plays with Seed + i*seedStride.
	// Zero means derive from the current time.
	Seed int64

	// Workers is the pool size; zero or negative means runtime.NumCPU().
	Workers int

	// Boards optionally provides predefined starting grids indexed by game
	// id. Nil entries and ids beyond its length fall back to random boards.
	Boards []boards.Grid

	// NewPolicy optionally overrides registry lookup, letting callers pass a
	// policy with tuned constants. Called once per game; instances must not be
	// shared across games. Policy is still required for validation and
	// reporting.
	NewPolicy func() policy.Policy

	// Caps forwarded to each game; zero selects the game package defaults.
	MaxCascadePasses int
	MaxSwaps         int
}

// Result is a finished tournament: outcomes ordered by game id plus their
// aggregate summary.
type Result struct {
	Outcomes []game.Outcome
	Summary  Summary
	Seed     int64
	Elapsed  time.Duration
}

// Run plays cfg.Games games concurrently and collects one outcome per game.
// A game that fails (cap exceeded, bad predefined grid) is logged and
// excluded from the outcomes; it never aborts the tournament.
func Run(cfg Config, logger *log.Logger) (*Result, error) {
	if cfg.Games <= 0 {
		return nil, fmt.Errorf("tournament: game count %d must be positive", cfg.Games)
	}
	if !policy.Exists(cfg.Policy) {
		return nil, fmt.Errorf("tournament: unknown policy %q", cfg.Policy)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > cfg.Games {
		workers = cfg.Games
	}

	start := time.Now()

	type gameResult struct {
		id      int
		outcome game.Outcome
		err     error
	}

	jobs := make(chan int, cfg.Games)
	results := make(chan gameResult, cfg.Games)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range jobs {
				outcome, err := playOne(cfg, id, seed)
				results <- gameResult{id: id, outcome: outcome, err: err}
			}
		}()
	}

	for id := 0; id < cfg.Games; id++ {
		jobs <- id
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	outcomes := make([]game.Outcome, 0, cfg.Games)
	for r := range results {
		if r.err != nil {
			if logger != nil {
				logger.Error("game failed", "game_id", r.id, "error", r.err)
			}
			continue
		}
		outcomes = append(outcomes, r.outcome)
	}

	// Workers finish out of order; the report is indexed by game id.
	sort.Slice(outcomes, func(i, j int) bool {
		return outcomes[i].GameID < outcomes[j].GameID
	})

	return &Result{
		Outcomes: outcomes,
		Summary:  Summarize(outcomes),
		Seed:     seed,
		Elapsed:  time.Since(start),
	}, nil
}

// playOne runs a single fully self-contained game.
func playOne(cfg Config, id int, baseSeed int64) (game.Outcome, error) {
	var pol policy.Policy
	if cfg.NewPolicy != nil {
		pol = cfg.NewPolicy()
	} else {
		var err error
		pol, err = policy.Create(cfg.Policy)
		if err != nil {
			return game.Outcome{}, err
		}
	}

	gameCfg := game.Config{
		Rows:             cfg.Rows,
		Cols:             cfg.Cols,
		Colors:           cfg.Colors,
		Target:           cfg.Target,
		Seed:             baseSeed + int64(id)*seedStride,
		Policy:           pol,
		MaxCascadePasses: cfg.MaxCascadePasses,
		MaxSwaps:         cfg.MaxSwaps,
	}
	if id < len(cfg.Boards) && cfg.Boards[id] != nil {
		gameCfg.Predefined = cfg.Boards[id]
	}

	mgr, err := game.New(gameCfg)
	if err != nil {
		return game.Outcome{}, err
	}

	outcome, err := mgr.Play()
	if err != nil {
		return game.Outcome{}, err
	}
	outcome.GameID = id
	return outcome, nil
}
