package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/match3-arena/internal/game"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Parent directories and the file itself are created.
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveAndRetrieveTournament(t *testing.T) {
	store := openTestStore(t)

	meta := TournamentMeta{
		Policy: "smart",
		Games:  2,
		Rows:   11,
		Cols:   11,
		Colors: 6,
		Target: 10000,
		Seed:   42,
	}
	outcomes := []game.Outcome{
		{GameID: 0, Points: 10100, Swaps: 40, Cascades: 55, ReachedTarget: true,
			Reason: game.ReachedTarget, SwapsToTarget: 38},
		{GameID: 1, Points: 900, Swaps: 25, Cascades: 30, ReachedTarget: false,
			Reason: game.NoMoves, SwapsToTarget: game.MilestoneAbsent},
	}

	id, err := store.SaveTournament(meta, outcomes)
	if err != nil {
		t.Fatalf("SaveTournament() failed: %v", err)
	}
	if id <= 0 {
		t.Fatalf("Expected positive tournament ID, got %d", id)
	}

	metas, err := store.RecentTournaments(10)
	if err != nil {
		t.Fatalf("RecentTournaments() failed: %v", err)
	}
	if len(metas) != 1 {
		t.Fatalf("Expected 1 tournament, got %d", len(metas))
	}
	got := metas[0]
	if got.ID != id || got.Policy != "smart" || got.Games != 2 || got.Seed != 42 {
		t.Errorf("Retrieved meta %+v does not match saved", got)
	}

	records, err := store.Outcomes(id)
	if err != nil {
		t.Fatalf("Outcomes() failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 outcomes, got %d", len(records))
	}

	// Ordered by game id, fields round-trip including the absent milestone.
	if records[0].Outcome != outcomes[0] {
		t.Errorf("Outcome 0 = %+v, expected %+v", records[0].Outcome, outcomes[0])
	}
	if records[1].Outcome != outcomes[1] {
		t.Errorf("Outcome 1 = %+v, expected %+v", records[1].Outcome, outcomes[1])
	}
	if records[1].Outcome.SwapsToTarget != game.MilestoneAbsent {
		t.Errorf("Absent milestone came back as %d", records[1].Outcome.SwapsToTarget)
	}
}

func TestTournamentStats(t *testing.T) {
	store := openTestStore(t)

	meta := TournamentMeta{Policy: "greedy", Games: 3, Rows: 11, Cols: 11, Colors: 4, Target: 100, Seed: 1}
	outcomes := []game.Outcome{
		{GameID: 0, Points: 100, Swaps: 10, ReachedTarget: true, Reason: game.ReachedTarget, SwapsToTarget: 9},
		{GameID: 1, Points: 200, Swaps: 20, ReachedTarget: true, Reason: game.ReachedTarget, SwapsToTarget: 15},
		{GameID: 2, Points: 60, Swaps: 30, ReachedTarget: false, Reason: game.NoMoves, SwapsToTarget: game.MilestoneAbsent},
	}

	id, err := store.SaveTournament(meta, outcomes)
	if err != nil {
		t.Fatalf("SaveTournament() failed: %v", err)
	}

	stats, err := store.TournamentStats(id)
	if err != nil {
		t.Fatalf("TournamentStats() failed: %v", err)
	}

	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, expected 3", stats.GamesCount)
	}
	if stats.AvgPoints != 120 {
		t.Errorf("AvgPoints = %v, expected 120", stats.AvgPoints)
	}
	if stats.MaxPoints != 200 {
		t.Errorf("MaxPoints = %d, expected 200", stats.MaxPoints)
	}
	if stats.AvgSwaps != 20 {
		t.Errorf("AvgSwaps = %v, expected 20", stats.AvgSwaps)
	}
	if stats.ReachedCount != 2 {
		t.Errorf("ReachedCount = %d, expected 2", stats.ReachedCount)
	}
}

func TestRecentTournamentsOrder(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 3; i++ {
		meta := TournamentMeta{Policy: "greedy", Games: 1, Rows: 4, Cols: 4, Colors: 4, Target: 10, Seed: int64(i)}
		if _, err := store.SaveTournament(meta, nil); err != nil {
			t.Fatalf("SaveTournament() failed: %v", err)
		}
	}

	metas, err := store.RecentTournaments(2)
	if err != nil {
		t.Fatalf("RecentTournaments() failed: %v", err)
	}
	if len(metas) != 2 {
		t.Fatalf("Expected limit of 2, got %d", len(metas))
	}
	// Most recent first; inserts share a timestamp so the id breaks the tie.
	if metas[0].ID < metas[1].ID {
		t.Errorf("Expected descending order, got ids %d then %d", metas[0].ID, metas[1].ID)
	}
}

func TestOutcomesEmptyTournament(t *testing.T) {
	store := openTestStore(t)

	records, err := store.Outcomes(12345)
	if err != nil {
		t.Fatalf("Outcomes() failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected no outcomes for unknown tournament, got %d", len(records))
	}
}
