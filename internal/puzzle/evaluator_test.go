package puzzle

import "testing"

// gridFrom builds a solution grid from row-major literals.
func gridFrom(size int, cells ...uint8) *Grid {
	g := NewGrid(size)
	copy(g.Cells, cells)
	return g
}

// playerFrom builds a player grid from row-major literals.
func playerFrom(size int, cells ...CellState) *PlayerGrid {
	p := NewPlayerGrid(size)
	copy(p.Cells, cells)
	return p
}

func TestCellMatches(t *testing.T) {
	cases := []struct {
		solution uint8
		player   CellState
		want     bool
	}{
		{1, StateFilled, true},
		{1, StateEmpty, false},
		{1, StateCrossed, false},
		{0, StateEmpty, true},
		{0, StateCrossed, true},
		{0, StateFilled, false},
	}
	for _, tc := range cases {
		if got := CellMatches(tc.solution, tc.player); got != tc.want {
			t.Errorf("CellMatches(%d, %s) = %v, want %v", tc.solution, tc.player, got, tc.want)
		}
	}
}

func TestSolvedExampleScenario(t *testing.T) {
	// SolutionGrid [[1,0],[0,1]] against [[FILLED,EMPTY],[CROSSED,FILLED]].
	sol := gridFrom(2,
		1, 0,
		0, 1,
	)
	player := playerFrom(2,
		StateFilled, StateEmpty,
		StateCrossed, StateFilled,
	)

	if !Solved(sol, player) {
		t.Error("whole-grid win should be true")
	}
	if !RowSolved(sol, player, 0) {
		t.Error("row 0 should be solved")
	}
	if !ColSolved(sol, player, 1) {
		t.Error("column 1 should be solved")
	}
}

func TestSolvedRequiresEveryCell(t *testing.T) {
	sol := gridFrom(2,
		1, 0,
		0, 1,
	)
	player := playerFrom(2,
		StateFilled, StateEmpty,
		StateEmpty, StateEmpty, // (1,1) missing
	)

	if Solved(sol, player) {
		t.Error("grid with one unmatched cell must not be solved")
	}
	if !RowSolved(sol, player, 0) {
		t.Error("row 0 is still solved on its own")
	}
	if RowSolved(sol, player, 1) {
		t.Error("row 1 must not be solved")
	}
	if !ColSolved(sol, player, 0) {
		t.Error("column 0 is still solved on its own")
	}
	if ColSolved(sol, player, 1) {
		t.Error("column 1 must not be solved")
	}
}

func TestSolvedOverfilledFails(t *testing.T) {
	// Filling an empty solution cell breaks the match even when every
	// filled cell is marked.
	sol := gridFrom(2,
		1, 0,
		0, 0,
	)
	player := playerFrom(2,
		StateFilled, StateFilled,
		StateEmpty, StateEmpty,
	)

	if Solved(sol, player) {
		t.Error("excess fill must not count as a win")
	}
}

func TestWinEquivalentToAllLines(t *testing.T) {
	// The whole-grid verdict must agree with the conjunction of all
	// row and column verdicts, solved or not.
	band := Band{Label: "mid", Min: 0.4, Max: 0.7}
	for seed := Seed(0); seed < 30; seed++ {
		sol := Generate(seed, 6, band).Grid

		// A correct player grid, then a perturbed one.
		for _, flip := range []bool{false, true} {
			player := NewPlayerGrid(6)
			for row := 0; row < 6; row++ {
				for col := 0; col < 6; col++ {
					if sol.Get(row, col) == 1 {
						player.Set(row, col, StateFilled)
					}
				}
			}
			if flip {
				r := int(seed) % 6
				c := int(seed/6) % 6
				if player.Get(r, c) == StateFilled {
					player.Set(r, c, StateEmpty)
				} else {
					player.Set(r, c, StateFilled)
				}
			}

			allLines := true
			for i := 0; i < 6; i++ {
				if !RowSolved(sol, player, i) || !ColSolved(sol, player, i) {
					allLines = false
					break
				}
			}
			if Solved(sol, player) != allLines {
				t.Fatalf("seed=%d flip=%v: whole-grid verdict disagrees with line verdicts", seed, flip)
			}
		}
	}
}

func TestCrossedEmptySymmetry(t *testing.T) {
	// Swapping every CROSSED for EMPTY (and vice versa) never changes
	// any verdict.
	band := Band{Label: "mid", Min: 0.3, Max: 0.7}
	for seed := Seed(0); seed < 20; seed++ {
		sol := Generate(seed, 5, band).Grid

		player := NewPlayerGrid(5)
		rng := NewRNG(seed + 1000)
		for i := range player.Cells {
			player.Cells[i] = CellState(rng.Range(0, 2))
		}

		swapped := player.Clone()
		for i, s := range swapped.Cells {
			switch s {
			case StateCrossed:
				swapped.Cells[i] = StateEmpty
			case StateEmpty:
				swapped.Cells[i] = StateCrossed
			}
		}

		if Solved(sol, player) != Solved(sol, swapped) {
			t.Fatalf("seed=%d: whole-grid verdict changed under cross/empty swap", seed)
		}
		for i := 0; i < 5; i++ {
			if RowSolved(sol, player, i) != RowSolved(sol, swapped, i) {
				t.Fatalf("seed=%d: row %d verdict changed under cross/empty swap", seed, i)
			}
			if ColSolved(sol, player, i) != ColSolved(sol, swapped, i) {
				t.Fatalf("seed=%d: column %d verdict changed under cross/empty swap", seed, i)
			}
		}
	}
}

func TestEvaluatorIsPure(t *testing.T) {
	sol := gridFrom(2,
		1, 0,
		0, 1,
	)
	player := playerFrom(2,
		StateFilled, StateEmpty,
		StateEmpty, StateFilled,
	)

	// Repeated queries with mutations in between always reflect the
	// current grids; nothing is cached.
	if !Solved(sol, player) {
		t.Fatal("setup should be solved")
	}
	player.Set(0, 0, StateEmpty)
	if Solved(sol, player) {
		t.Error("verdict must follow the mutation")
	}
	player.Set(0, 0, StateFilled)
	if !Solved(sol, player) {
		t.Error("verdict must follow the mutation back")
	}
}
