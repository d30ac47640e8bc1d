package board

import "sort"

// FindLineFormations scans each row, then each column, for maximal runs of
// identical non-empty color with length >= 3.
func (b *Board) FindLineFormations() []Formation {
	var formations []Formation

	emit := func(cells []Cell, length int, color Color) {
		if length < 3 || color == Empty {
			return
		}
		run := make([]Cell, len(cells))
		copy(run, cells)
		formations = append(formations, Formation{Cells: run, Score: lineScore(length)})
	}

	// Horizontal runs
	for row := 0; row < b.rows; row++ {
		current := b.At(row, 0)
		cells := []Cell{{row, 0}}
		for col := 1; col < b.cols; col++ {
			color := b.At(row, col)
			if color == current && color != Empty {
				cells = append(cells, Cell{row, col})
				continue
			}
			emit(cells, len(cells), current)
			cells = cells[:0]
			cells = append(cells, Cell{row, col})
			current = color
		}
		emit(cells, len(cells), current)
	}

	// Vertical runs
	for col := 0; col < b.cols; col++ {
		current := b.At(0, col)
		cells := []Cell{{0, col}}
		for row := 1; row < b.rows; row++ {
			color := b.At(row, col)
			if color == current && color != Empty {
				cells = append(cells, Cell{row, col})
				continue
			}
			emit(cells, len(cells), current)
			cells = cells[:0]
			cells = append(cells, Cell{row, col})
			current = color
		}
		emit(cells, len(cells), current)
	}

	return formations
}

// FindLFormations finds L shapes: a 3-cell vertical arm and a 3-cell
// horizontal arm of the same non-empty color sharing a corner. Each origin is
// probed in 4 orientations; identical cell-sets are kept once.
func (b *Board) FindLFormations() []Formation {
	var formations []Formation

	for row := 0; row < b.rows-2; row++ {
		for col := 0; col < b.cols-2; col++ {
			color := b.At(row, col)
			if color == Empty {
				continue
			}
			for orientation := 0; orientation < 4; orientation++ {
				vertical := orientation < 2
				right := orientation%2 == 1

				cells := make([]Cell, 0, 6)
				valid := true

				// Vertical arm
				for i := 0; i < 3 && valid; i++ {
					r, c := row, col
					if vertical {
						r += i
					} else {
						r -= i
						if right {
							c += 2
						}
					}
					if !b.InBounds(r, c) || b.At(r, c) != color {
						valid = false
						break
					}
					cells = append(cells, Cell{r, c})
				}
				if !valid {
					continue
				}

				// Horizontal arm
				for i := 0; i < 3 && valid; i++ {
					r, c := row, col
					if vertical {
						r += 2
					}
					if right {
						c += i
					} else {
						c -= i
					}
					if !b.InBounds(r, c) || b.At(r, c) != color {
						valid = false
						break
					}
					cells = append(cells, Cell{r, c})
				}
				if !valid {
					continue
				}

				f := Formation{Cells: dedupCells(cells), Score: ScoreL}
				f.normalize()
				if !containsFormation(formations, &f) {
					formations = append(formations, f)
				}
			}
		}
	}

	return formations
}

// FindTFormations finds T shapes: a 2-cell stem plus a 2-cell crossbar
// through an interior center, all of the same non-empty color. Each center is
// probed in 4 orientations; identical cell-sets are kept once.
func (b *Board) FindTFormations() []Formation {
	var formations []Formation

	for row := 1; row < b.rows-1; row++ {
		for col := 1; col < b.cols-1; col++ {
			color := b.At(row, col)
			if color == Empty {
				continue
			}
			for orientation := 0; orientation < 4; orientation++ {
				cells := []Cell{{row, col}}
				valid := true

				if orientation < 2 {
					// Vertical stem, horizontal crossbar
					dr := 1
					if orientation == 0 {
						dr = -1
					}
					for i := 1; i <= 2; i++ {
						r := row + dr*i
						if !b.InBounds(r, col) || b.At(r, col) != color {
							valid = false
							break
						}
						cells = append(cells, Cell{r, col})
					}
					if valid {
						for _, dc := range [2]int{-1, 1} {
							if !b.InBounds(row, col+dc) || b.At(row, col+dc) != color {
								valid = false
								break
							}
							cells = append(cells, Cell{row, col + dc})
						}
					}
				} else {
					// Horizontal stem, vertical crossbar
					dc := 1
					if orientation == 3 {
						dc = -1
					}
					for i := 1; i <= 2; i++ {
						c := col + dc*i
						if !b.InBounds(row, c) || b.At(row, c) != color {
							valid = false
							break
						}
						cells = append(cells, Cell{row, c})
					}
					if valid {
						for _, dr := range [2]int{-1, 1} {
							if !b.InBounds(row+dr, col) || b.At(row+dr, col) != color {
								valid = false
								break
							}
							cells = append(cells, Cell{row + dr, col})
						}
					}
				}
				if !valid {
					continue
				}

				f := Formation{Cells: cells, Score: ScoreT}
				f.normalize()
				if !containsFormation(formations, &f) {
					formations = append(formations, f)
				}
			}
		}
	}

	return formations
}

// FindAllFormations runs the three detectors and resolves overlaps: all
// candidates are sorted descending by score (stable, so lines come before L
// before T, and row-major scan order breaks ties within a detector), then
// accepted greedily only when disjoint from every previously accepted cell.
// The result is the authoritative non-overlapping set used for scoring and
// removal; its cell-sets are pairwise disjoint.
func (b *Board) FindAllFormations() []Formation {
	var all []Formation
	all = append(all, b.FindLineFormations()...)
	all = append(all, b.FindLFormations()...)
	all = append(all, b.FindTFormations()...)

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Score > all[j].Score
	})

	claimed := make(map[Cell]bool)
	var final []Formation
	for i := range all {
		if all[i].overlaps(claimed) {
			continue
		}
		final = append(final, all[i])
		for _, c := range all[i].Cells {
			claimed[c] = true
		}
	}
	return final
}

// dedupCells drops duplicate coordinates, keeping first occurrence.
// The shared corner of an L appears in both arms.
func dedupCells(cells []Cell) []Cell {
	seen := make(map[Cell]bool, len(cells))
	out := cells[:0]
	for _, c := range cells {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

func containsFormation(formations []Formation, f *Formation) bool {
	for i := range formations {
		if formations[i].sameCells(f) {
			return true
		}
	}
	return false
}
