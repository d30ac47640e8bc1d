package board

// TrySwap attempts a player move: exchange two cells and keep the exchange
// only when it is adjacent and puts at least one of the swapped cells into a
// qualifying line (>=3), L or T. The check is local to the neighborhood of
// the two cells, so its cost is independent of board size. A rejected swap
// leaves the grid bit-identical to before the attempt.
//
// Equal-color swaps are not special-cased: they fall out of the generic check
// because exchanging equal tiles cannot create a new formation.
func (b *Board) TrySwap(r1, c1, r2, c2 int) bool {
	if !b.InBounds(r1, c1) || !b.InBounds(r2, c2) {
		return false
	}
	if abs(r1-r2)+abs(c1-c2) != 1 {
		return false
	}

	b.swapCells(r1, c1, r2, c2)
	if !b.swapCreatesFormation(r1, c1, r2, c2) {
		b.swapCells(r1, c1, r2, c2)
		return false
	}
	return true
}

// swapCreatesFormation reports whether either swapped cell now participates
// in a qualifying formation. Called with the tentative swap already applied.
func (b *Board) swapCreatesFormation(r1, c1, r2, c2 int) bool {
	if b.runLengthHorizontal(r1, c1) >= 3 || b.runLengthVertical(r1, c1) >= 3 {
		return true
	}
	if b.runLengthHorizontal(r2, c2) >= 3 || b.runLengthVertical(r2, c2) >= 3 {
		return true
	}
	if b.checkLAt(r1, c1) || b.checkTAt(r1, c1) {
		return true
	}
	if b.checkLAt(r2, c2) || b.checkTAt(r2, c2) {
		return true
	}
	return false
}

// runLengthHorizontal returns the length of the contiguous horizontal run of
// the color at (row, col) that includes that cell, or 0 for an empty cell.
func (b *Board) runLengthHorizontal(row, col int) int {
	color := b.At(row, col)
	if color == Empty {
		return 0
	}
	length := 1
	for c := col - 1; c >= 0 && b.At(row, c) == color; c-- {
		length++
	}
	for c := col + 1; c < b.cols && b.At(row, c) == color; c++ {
		length++
	}
	return length
}

// runLengthVertical is the vertical counterpart of runLengthHorizontal.
func (b *Board) runLengthVertical(row, col int) int {
	color := b.At(row, col)
	if color == Empty {
		return 0
	}
	length := 1
	for r := row - 1; r >= 0 && b.At(r, col) == color; r-- {
		length++
	}
	for r := row + 1; r < b.rows && b.At(r, col) == color; r++ {
		length++
	}
	return length
}

// lBases are the 3x3 box origins around a cell that could host an L
// containing it as a corner.
var lBases = [4][2]int{{-2, -2}, {-2, 0}, {0, -2}, {0, 0}}

// checkLAt reports whether an L of the color at (row, col) exists within the
// 3x3 boxes anchored around that cell.
func (b *Board) checkLAt(row, col int) bool {
	color := b.At(row, col)
	if color == Empty {
		return false
	}
	for _, base := range lBases {
		baseR := row + base[0]
		baseC := col + base[1]
		// Four L orientations anchored at the box
		if b.lArmsMatch(color, baseR, baseC, 1, 0, baseR+2, baseC, 0, 1) {
			return true // Down + right
		}
		if b.lArmsMatch(color, baseR, baseC+2, 1, 0, baseR+2, baseC+2, 0, -1) {
			return true // Down + left
		}
		if b.lArmsMatch(color, baseR+2, baseC, -1, 0, baseR, baseC, 0, 1) {
			return true // Up + right
		}
		if b.lArmsMatch(color, baseR+2, baseC+2, -1, 0, baseR, baseC+2, 0, -1) {
			return true // Up + left
		}
	}
	return false
}

// lArmsMatch checks one L candidate: a 3-cell arm from (vr, vc) stepping by
// (vdr, vdc) plus a 3-cell arm from (hr, hc) stepping by (hdr, hdc).
func (b *Board) lArmsMatch(color Color, vr, vc, vdr, vdc, hr, hc, hdr, hdc int) bool {
	for i := 0; i < 3; i++ {
		r, c := vr+vdr*i, vc+vdc*i
		if !b.InBounds(r, c) || b.At(r, c) != color {
			return false
		}
	}
	for i := 0; i < 3; i++ {
		r, c := hr+hdr*i, hc+hdc*i
		if !b.InBounds(r, c) || b.At(r, c) != color {
			return false
		}
	}
	return true
}

// checkTAt reports whether a T exists with its center in the 3x3
// neighborhood of (row, col).
func (b *Board) checkTAt(row, col int) bool {
	if b.At(row, col) == Empty {
		return false
	}
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			r, c := row+dr, col+dc
			if !b.InBounds(r, c) {
				continue
			}
			center := b.At(r, c)
			if center == Empty {
				continue
			}
			if b.tMatchesAt(center, r, c) {
				return true
			}
		}
	}
	return false
}

// tMatchesAt checks the four T orientations for a given center.
func (b *Board) tMatchesAt(color Color, row, col int) bool {
	stems := [4][2]int{{-1, 0}, {1, 0}, {0, 1}, {0, -1}}
	for _, stem := range stems {
		ok := true
		for i := 1; i <= 2; i++ {
			r, c := row+stem[0]*i, col+stem[1]*i
			if !b.InBounds(r, c) || b.At(r, c) != color {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		// Crossbar runs perpendicular to the stem, one cell each side.
		cross := [2][2]int{{stem[1], stem[0]}, {-stem[1], -stem[0]}}
		for _, d := range cross {
			r, c := row+d[0], col+d[1]
			if !b.InBounds(r, c) || b.At(r, c) != color {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
