package board

// localRadius bounds the neighborhood inspected around a swapped cell by the
// local delta estimator (5x5 box).
const localRadius = 2

// LocalSwapScore estimates the immediate score a swap would yield without a
// full-board detection pass. Only the bounded neighborhoods of the two
// swapped cells are scanned; cells already credited to one local match are
// claimed so overlapping local matches are not counted twice. The estimate is
// a ranking signal for move selection, not the canonical post-cascade score.
// The board is unchanged when this returns.
func (b *Board) LocalSwapScore(mv Move) int {
	b.swapCells(mv.R1, mv.C1, mv.R2, mv.C2)
	defer b.swapCells(mv.R1, mv.C1, mv.R2, mv.C2)

	score := 0
	used := make(map[Cell]bool)

	// Line runs through any cell of the two neighborhoods, in row-major order
	// so the estimate is reproducible.
	for _, cell := range b.localNeighborhood(mv) {
		if used[cell] {
			continue
		}
		r, c := cell.Row, cell.Col

		if hlen := b.runLengthHorizontal(r, c); hlen >= 3 {
			color := b.At(r, c)
			left := c
			for left-1 >= 0 && b.At(r, left-1) == color {
				left--
			}
			fresh := false
			for cc := left; cc < left+hlen; cc++ {
				if !used[Cell{r, cc}] {
					used[Cell{r, cc}] = true
					fresh = true
				}
			}
			if fresh {
				score += lineScore(hlen)
			}
		}

		if vlen := b.runLengthVertical(r, c); vlen >= 3 {
			color := b.At(r, c)
			top := r
			for top-1 >= 0 && b.At(top-1, c) == color {
				top--
			}
			fresh := false
			for rr := top; rr < top+vlen; rr++ {
				if !used[Cell{rr, c}] {
					used[Cell{rr, c}] = true
					fresh = true
				}
			}
			if fresh {
				score += lineScore(vlen)
			}
		}
	}

	// L and T shapes touching the swapped cells. Their exact footprint is not
	// recovered locally, so the whole neighborhood is claimed to avoid double
	// counting against the line runs above.
	for _, cell := range [2]Cell{{mv.R1, mv.C1}, {mv.R2, mv.C2}} {
		if used[cell] {
			continue
		}
		if b.checkLAt(cell.Row, cell.Col) {
			b.claimNeighborhood(used, cell)
			score += ScoreL
		} else if b.checkTAt(cell.Row, cell.Col) {
			b.claimNeighborhood(used, cell)
			score += ScoreT
		}
	}

	return score
}

// localNeighborhood returns the in-bounds cells of the 5x5 boxes around both
// swap endpoints, deduplicated, in row-major order.
func (b *Board) localNeighborhood(mv Move) []Cell {
	seen := make(map[Cell]bool)
	cells := make([]Cell, 0, 50)

	minRow := min(mv.R1, mv.R2) - localRadius
	maxRow := max(mv.R1, mv.R2) + localRadius
	for r := minRow; r <= maxRow; r++ {
		for _, anchor := range [2]Cell{{mv.R1, mv.C1}, {mv.R2, mv.C2}} {
			if r < anchor.Row-localRadius || r > anchor.Row+localRadius {
				continue
			}
			for c := anchor.Col - localRadius; c <= anchor.Col+localRadius; c++ {
				cell := Cell{r, c}
				if !b.InBounds(r, c) || seen[cell] {
					continue
				}
				seen[cell] = true
				cells = append(cells, cell)
			}
		}
	}
	return cells
}

func (b *Board) claimNeighborhood(used map[Cell]bool, center Cell) {
	for dr := -localRadius; dr <= localRadius; dr++ {
		for dc := -localRadius; dc <= localRadius; dc++ {
			r, c := center.Row+dr, center.Col+dc
			if b.InBounds(r, c) {
				used[Cell{r, c}] = true
			}
		}
	}
}

// CascadePotential estimates how likely follow-up cascades are after the
// given move by scanning short windows around both endpoints for
// "two matching tiles plus one gap" patterns that gravity could later align.
// The result is in [0, 2]; on a board with no empty cells it is always 0.
// Heuristic only, never part of canonical scoring.
func (b *Board) CascadePotential(mv Move) float64 {
	potential := 0.0

	for _, cell := range [2]Cell{{mv.R1, mv.C1}, {mv.R2, mv.C2}} {
		row, col := cell.Row, cell.Col

		// Vertical windows above the cell: tiles there may fall into a line.
		for r := max(0, row-3); r < row; r++ {
			if r+2 >= b.rows {
				break
			}
			if b.windowNearMatch(Cell{r, col}, Cell{r + 1, col}, Cell{r + 2, col}) {
				potential += 0.5
			}
		}

		// Horizontal windows through the cell.
		for c := max(0, col-2); c <= col && c+2 < b.cols; c++ {
			if b.windowNearMatch(Cell{row, c}, Cell{row, c + 1}, Cell{row, c + 2}) {
				potential += 0.5
			}
		}
	}

	if potential > 2.0 {
		potential = 2.0
	}
	return potential
}

// windowNearMatch reports whether a 3-cell window holds exactly two tiles of
// one color and one gap.
func (b *Board) windowNearMatch(cells ...Cell) bool {
	empties := 0
	var color Color
	count := 0
	for _, cell := range cells {
		c := b.At(cell.Row, cell.Col)
		if c == Empty {
			empties++
			continue
		}
		if color == Empty {
			color = c
		}
		if c != color {
			return false
		}
		count++
	}
	return empties == 1 && count == 2
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
