package board

// PossibleMoves enumerates every legal swap on the board: for each cell in
// row-major order it probes the swap with its right neighbor, then with its
// neighbor below, using the same local-only test as TrySwap. The board is
// unchanged when this returns, and the enumeration order is deterministic so
// greedy tie-breaks are reproducible.
func (b *Board) PossibleMoves() []Move {
	var moves []Move

	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			if col+1 < b.cols {
				b.swapCells(row, col, row, col+1)
				if b.swapCreatesFormation(row, col, row, col+1) {
					moves = append(moves, Move{row, col, row, col + 1})
				}
				b.swapCells(row, col, row, col+1)
			}
			if row+1 < b.rows {
				b.swapCells(row, col, row+1, col)
				if b.swapCreatesFormation(row, col, row+1, col) {
					moves = append(moves, Move{row, col, row + 1, col})
				}
				b.swapCells(row, col, row+1, col)
			}
		}
	}

	return moves
}
