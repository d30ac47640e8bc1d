// Package boards loads predefined starting grids from a text resource.
// The format is one or more boards separated by a blank line; each board is
// exactly rows lines of cols whitespace-separated small integers, where 1..K
// encode colors and 0 is reserved for empty (and should not appear in a
// starting board).
package boards

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/match3-arena/internal/board"
)

// Grid is a parsed starting board.
type Grid [][]board.Color

// Load reads every board from the file at path. Boards that fail to parse or
// whose shape does not match rows×cols are logged and returned as nil
// entries, so the corresponding game index falls back to a random board; a
// malformed board is never fatal to the run. Only an unreadable file is an
// error.
func Load(path string, rows, cols, colors int, logger *log.Logger) ([]Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("boards: cannot read %s: %w", path, err)
	}

	blocks := strings.Split(strings.TrimSpace(string(data)), "\n\n")
	grids := make([]Grid, len(blocks))
	for i, block := range blocks {
		grid, parseErr := parseBlock(block, rows, cols, colors)
		if parseErr != nil {
			if logger != nil {
				logger.Warn("skipping predefined board, using random fallback",
					"index", i, "error", parseErr)
			}
			continue
		}
		grids[i] = grid
	}
	return grids, nil
}

// parseBlock parses one blank-line-delimited board block.
func parseBlock(block string, rows, cols, colors int) (Grid, error) {
	lines := strings.Split(strings.TrimSpace(block), "\n")
	if len(lines) != rows {
		return nil, fmt.Errorf("boards: got %d rows, want %d", len(lines), rows)
	}

	grid := make(Grid, rows)
	for r, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != cols {
			return nil, fmt.Errorf("boards: row %d has %d columns, want %d", r, len(fields), cols)
		}
		row := make([]board.Color, cols)
		for c, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("boards: row %d col %d: %w", r, c, err)
			}
			if v < 1 || v > colors {
				return nil, fmt.Errorf("boards: row %d col %d: color %d outside 1..%d", r, c, v, colors)
			}
			row[c] = board.Color(v)
		}
		grid[r] = row
	}
	return grid, nil
}
