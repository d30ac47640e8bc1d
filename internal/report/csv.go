// Package report writes tournament results: a per-game CSV record and a
// styled terminal summary.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vovakirdan/match3-arena/internal/game"
)

// csvHeader matches the historical report layout; moves_to_target is empty
// when the game never crossed the target.
var csvHeader = []string{
	"game_id", "points", "swaps", "total_cascades",
	"reached_target", "stopping_reason", "moves_to_target",
}

// WriteCSV writes one record per game to the file at path, creating parent
// directories as needed.
func WriteCSV(path string, outcomes []game.Outcome) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("report: cannot create directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: cannot create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("report: cannot write header: %w", err)
	}

	for _, o := range outcomes {
		milestone := ""
		if o.SwapsToTarget != game.MilestoneAbsent {
			milestone = strconv.Itoa(o.SwapsToTarget)
		}
		record := []string{
			strconv.Itoa(o.GameID),
			strconv.Itoa(o.Points),
			strconv.Itoa(o.Swaps),
			strconv.Itoa(o.Cascades),
			strconv.FormatBool(o.ReachedTarget),
			string(o.Reason),
			milestone,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("report: cannot write record for game %d: %w", o.GameID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("report: flush failed: %w", err)
	}
	return nil
}
