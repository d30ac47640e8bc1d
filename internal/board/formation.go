package board

import "sort"

// Formation scores.
const (
	ScoreLine3 = 5
	ScoreLine4 = 10
	ScoreLine5 = 50 // Any run of 5 or more
	ScoreL     = 20
	ScoreT     = 30
)

// Formation is an ephemeral set of distinct same-colored cells plus the score
// it is worth. Formations are produced by one detection pass and consumed by
// the following removal; they are never persisted.
type Formation struct {
	Cells []Cell
	Score int
}

// lineScore maps a run length (>=3) to its score.
func lineScore(length int) int {
	switch {
	case length == 3:
		return ScoreLine3
	case length == 4:
		return ScoreLine4
	default:
		return ScoreLine5
	}
}

// normalize sorts the cell list in row-major order so that formations found
// via different origins or orientations compare equal.
func (f *Formation) normalize() {
	sort.Slice(f.Cells, func(i, j int) bool {
		if f.Cells[i].Row != f.Cells[j].Row {
			return f.Cells[i].Row < f.Cells[j].Row
		}
		return f.Cells[i].Col < f.Cells[j].Col
	})
}

// sameCells reports whether two normalized formations cover the same cells.
func (f *Formation) sameCells(other *Formation) bool {
	if len(f.Cells) != len(other.Cells) {
		return false
	}
	for i, c := range f.Cells {
		if c != other.Cells[i] {
			return false
		}
	}
	return true
}

// overlaps reports whether any cell of f is already claimed.
func (f *Formation) overlaps(claimed map[Cell]bool) bool {
	for _, c := range f.Cells {
		if claimed[c] {
			return true
		}
	}
	return false
}
