package puzzle

// The evaluator compares a player grid against a solution grid. All
// queries are pure and re-derived on every call; nothing is cached.
// A cell matches when it is filled exactly where the solution is filled.
// Crossed and empty are interchangeable: crosses are bookkeeping for the
// player, not answers.
//
// Callers guarantee equal dimensions and in-range line indices;
// violating either is a programming error, not a recoverable condition.

// CellMatches reports whether one player cell satisfies one solution cell.
func CellMatches(solution uint8, player CellState) bool {
	if solution == 1 {
		return player == StateFilled
	}
	return player != StateFilled
}

// Solved reports whether every cell of the player grid matches the
// solution.
func Solved(sol *Grid, player *PlayerGrid) bool {
	for row := 0; row < sol.Size; row++ {
		for col := 0; col < sol.Size; col++ {
			if !CellMatches(sol.Get(row, col), player.Get(row, col)) {
				return false
			}
		}
	}
	return true
}

// RowSolved reports whether every cell in row matches the solution.
// Used for partial-progress feedback independent of the overall win.
func RowSolved(sol *Grid, player *PlayerGrid, row int) bool {
	for col := 0; col < sol.Size; col++ {
		if !CellMatches(sol.Get(row, col), player.Get(row, col)) {
			return false
		}
	}
	return true
}

// ColSolved reports whether every cell in col matches the solution.
func ColSolved(sol *Grid, player *PlayerGrid, col int) bool {
	for row := 0; row < sol.Size; row++ {
		if !CellMatches(sol.Get(row, col), player.Get(row, col)) {
			return false
		}
	}
	return true
}
