package tournament

import (
	"testing"

	"github.com/vovakirdan/match3-arena/internal/boards"
	"github.com/vovakirdan/match3-arena/internal/policy"
)

func smallConfig() Config {
	return Config{
		Games:   6,
		Rows:    6,
		Cols:    6,
		Colors:  4,
		Target:  50,
		Policy:  "greedy",
		Seed:    42,
		Workers: 3,
	}
}

func TestRunValidation(t *testing.T) {
	cfg := smallConfig()
	cfg.Games = 0
	if _, err := Run(cfg, nil); err == nil {
		t.Error("Expected error for zero games")
	}

	cfg = smallConfig()
	cfg.Policy = "nope"
	if _, err := Run(cfg, nil); err == nil {
		t.Error("Expected error for unknown policy")
	}
}

func TestRunCollectsAllGames(t *testing.T) {
	cfg := smallConfig()

	res, err := Run(cfg, nil)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if len(res.Outcomes) != cfg.Games {
		t.Fatalf("Expected %d outcomes, got %d", cfg.Games, len(res.Outcomes))
	}
	for i, o := range res.Outcomes {
		if o.GameID != i {
			t.Errorf("Outcome %d has GameID %d; expected ascending ids", i, o.GameID)
		}
	}
	if res.Summary.Games != cfg.Games {
		t.Errorf("Summary covers %d games, expected %d", res.Summary.Games, cfg.Games)
	}
	if res.Seed != cfg.Seed {
		t.Errorf("Result seed %d, expected %d", res.Seed, cfg.Seed)
	}
}

func TestRunDeterministicAcrossWorkerCounts(t *testing.T) {
	one := smallConfig()
	one.Workers = 1
	many := smallConfig()
	many.Workers = 4

	resOne, err := Run(one, nil)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	resMany, err := Run(many, nil)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if len(resOne.Outcomes) != len(resMany.Outcomes) {
		t.Fatalf("Outcome counts differ: %d vs %d", len(resOne.Outcomes), len(resMany.Outcomes))
	}
	for i := range resOne.Outcomes {
		if resOne.Outcomes[i] != resMany.Outcomes[i] {
			t.Errorf("Game %d differs across worker counts: %+v vs %+v",
				i, resOne.Outcomes[i], resMany.Outcomes[i])
		}
	}
}

func TestRunPredefinedBoards(t *testing.T) {
	// A dead checkerboard for game 0; games beyond the list play random boards.
	dead := boards.Grid{
		{1, 2, 1, 2},
		{2, 1, 2, 1},
		{1, 2, 1, 2},
		{2, 1, 2, 1},
	}

	cfg := smallConfig()
	cfg.Games = 3
	cfg.Rows = 4
	cfg.Cols = 4
	cfg.Boards = []boards.Grid{dead, nil}

	res, err := Run(cfg, nil)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if len(res.Outcomes) != 3 {
		t.Fatalf("Expected 3 outcomes, got %d", len(res.Outcomes))
	}

	// The dead board cannot score a point.
	if res.Outcomes[0].Points != 0 || res.Outcomes[0].Swaps != 0 {
		t.Errorf("Dead board produced points=%d swaps=%d",
			res.Outcomes[0].Points, res.Outcomes[0].Swaps)
	}
}

func TestRunCustomPolicyFactory(t *testing.T) {
	// A tuned smart policy injected via NewPolicy must behave exactly like the
	// registry default when its constants match the defaults.
	base := smallConfig()
	base.Games = 3
	base.Policy = "smart"

	viaRegistry, err := Run(base, nil)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	injected := base
	injected.NewPolicy = func() policy.Policy { return policy.NewSmart() }

	viaFactory, err := Run(injected, nil)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if len(viaRegistry.Outcomes) != len(viaFactory.Outcomes) {
		t.Fatalf("Outcome counts differ: %d vs %d",
			len(viaRegistry.Outcomes), len(viaFactory.Outcomes))
	}
	for i := range viaRegistry.Outcomes {
		if viaRegistry.Outcomes[i] != viaFactory.Outcomes[i] {
			t.Errorf("Game %d differs between registry and factory: %+v vs %+v",
				i, viaRegistry.Outcomes[i], viaFactory.Outcomes[i])
		}
	}
}
