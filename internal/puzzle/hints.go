package puzzle

// Hints are the run-length clues shown along the board edges: for each
// line, the lengths of its consecutive filled runs in order. A line with
// no filled cells gets an empty clue list, which the UI renders as "0".
type Hints struct {
	Rows [][]int
	Cols [][]int
}

// DeriveHints computes the row and column clues for a solution grid.
func DeriveHints(g *Grid) Hints {
	h := Hints{
		Rows: make([][]int, g.Size),
		Cols: make([][]int, g.Size),
	}
	for row := 0; row < g.Size; row++ {
		h.Rows[row] = lineRuns(g.Size, func(i int) uint8 { return g.Get(row, i) })
	}
	for col := 0; col < g.Size; col++ {
		h.Cols[col] = lineRuns(g.Size, func(i int) uint8 { return g.Get(i, col) })
	}
	return h
}

// lineRuns collects the filled run lengths along one line.
func lineRuns(length int, cell func(i int) uint8) []int {
	runs := []int{}
	current := 0
	for i := 0; i < length; i++ {
		if cell(i) == 1 {
			current++
			continue
		}
		if current > 0 {
			runs = append(runs, current)
			current = 0
		}
	}
	if current > 0 {
		runs = append(runs, current)
	}
	return runs
}

// MaxRowHintLen returns the longest row clue list, which the renderer
// uses to size the left hint gutter.
func (h Hints) MaxRowHintLen() int {
	max := 0
	for _, runs := range h.Rows {
		if len(runs) > max {
			max = len(runs)
		}
	}
	if max == 0 {
		max = 1
	}
	return max
}

// MaxColHintLen returns the longest column clue list, used to size the
// top hint band.
func (h Hints) MaxColHintLen() int {
	max := 0
	for _, runs := range h.Cols {
		if len(runs) > max {
			max = len(runs)
		}
	}
	if max == 0 {
		max = 1
	}
	return max
}
