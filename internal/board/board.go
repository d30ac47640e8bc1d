package board

import (
	"fmt"
	"math/rand"
)

// Cell is a grid coordinate. Row 0 is the top row.
type Cell struct {
	Row, Col int
}

// Move is an ordered pair of adjacent coordinates to swap.
// Moves produced by PossibleMoves always have (R1,C1) before (R2,C2)
// in row-major order, with the horizontal pair listed before the vertical one.
type Move struct {
	R1, C1, R2, C2 int
}

// Board owns a rows×cols matrix of colors. Cells are stored in row-major
// order: index = row*cols + col. The board also owns its RNG so that
// concurrent games are independently reproducible.
type Board struct {
	rows   int
	cols   int
	colors int // Playable palette size K; tiles are 1..K
	cells  []Color
	rng    *rand.Rand
}

// New creates a board filled with uniformly random playable tiles.
// Initial formations are not cleared here; the game resolves them for score.
func New(rows, cols, colors int, rng *rand.Rand) *Board {
	b := &Board{
		rows:   rows,
		cols:   cols,
		colors: colors,
		cells:  make([]Color, rows*cols),
		rng:    rng,
	}
	for i := range b.cells {
		b.cells[i] = b.randomColor()
	}
	return b
}

// NewPredefined creates a board from a pre-parsed grid. The grid must be
// rectangular and contain only Empty or colors within the palette.
func NewPredefined(grid [][]Color, colors int, rng *rand.Rand) (*Board, error) {
	rows := len(grid)
	if rows == 0 {
		return nil, fmt.Errorf("board: predefined grid has no rows")
	}
	cols := len(grid[0])
	b := &Board{
		rows:   rows,
		cols:   cols,
		colors: colors,
		cells:  make([]Color, rows*cols),
		rng:    rng,
	}
	for r, line := range grid {
		if len(line) != cols {
			return nil, fmt.Errorf("board: row %d has %d columns, want %d", r, len(line), cols)
		}
		for c, color := range line {
			if color < Empty || int(color) > colors {
				return nil, fmt.Errorf("board: invalid color %d at (%d,%d)", color, r, c)
			}
			b.cells[r*cols+c] = color
		}
	}
	return b, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Colors returns the palette size K.
func (b *Board) Colors() int { return b.colors }

// InBounds reports whether (row, col) is inside the grid.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// At returns the color at (row, col), or Empty when out of bounds.
// Out-of-bounds reads are legal so formation scans can probe freely.
func (b *Board) At(row, col int) Color {
	if !b.InBounds(row, col) {
		return Empty
	}
	return b.cells[row*b.cols+col]
}

func (b *Board) set(row, col int, c Color) {
	b.cells[row*b.cols+col] = c
}

func (b *Board) swapCells(r1, c1, r2, c2 int) {
	i, j := r1*b.cols+c1, r2*b.cols+c2
	b.cells[i], b.cells[j] = b.cells[j], b.cells[i]
}

func (b *Board) randomColor() Color {
	return Color(b.rng.Intn(b.colors) + 1)
}

// Snapshot returns a copy of the grid as nested slices, row by row.
// Used by the renderer and by tests; mutating the copy does not touch the board.
func (b *Board) Snapshot() [][]Color {
	grid := make([][]Color, b.rows)
	for r := 0; r < b.rows; r++ {
		row := make([]Color, b.cols)
		copy(row, b.cells[r*b.cols:(r+1)*b.cols])
		grid[r] = row
	}
	return grid
}

// Equal reports whether two boards have identical dimensions and contents.
func (b *Board) Equal(other *Board) bool {
	if b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for i, c := range b.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the board sharing the same RNG.
func (b *Board) Clone() *Board {
	cells := make([]Color, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		rows:   b.rows,
		cols:   b.cols,
		colors: b.colors,
		cells:  cells,
		rng:    b.rng,
	}
}

// RemoveFormations zeroes every cell covered by the given formations and
// returns the score earned. A formation is credited only when it contributes
// at least one cell that was not already removed by an earlier formation in
// the same call, which guards against double-counting overlapping input.
func (b *Board) RemoveFormations(formations []Formation) int {
	score := 0
	removed := make(map[Cell]bool)

	for _, f := range formations {
		fresh := false
		for _, cell := range f.Cells {
			if !removed[cell] {
				fresh = true
				break
			}
		}
		if !fresh {
			continue
		}
		score += f.Score
		for _, cell := range f.Cells {
			removed[cell] = true
		}
	}

	for cell := range removed {
		b.set(cell.Row, cell.Col, Empty)
	}
	return score
}

// ApplyGravity compacts every column downward, preserving the relative order
// of tiles. Vacated cells at the top of a column become Empty.
func (b *Board) ApplyGravity() {
	for col := 0; col < b.cols; col++ {
		write := b.rows - 1
		for row := b.rows - 1; row >= 0; row-- {
			if c := b.At(row, col); c != Empty {
				b.set(write, col, c)
				write--
			}
		}
		for row := write; row >= 0; row-- {
			b.set(row, col, Empty)
		}
	}
}

// Refill assigns a uniformly random playable color to every Empty cell,
// independent per cell.
func (b *Board) Refill() {
	for i, c := range b.cells {
		if c == Empty {
			b.cells[i] = b.randomColor()
		}
	}
}
