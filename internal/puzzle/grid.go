package puzzle

// Grid is a square binary solution grid. Cells are stored in row-major
// order: index = row*Size + col, with 1 meaning filled and 0 empty.
// A Grid is never mutated after generation hands it out.
type Grid struct {
	Size  int
	Cells []uint8
}

// NewGrid creates an all-empty grid of the given size.
func NewGrid(size int) *Grid {
	return &Grid{
		Size:  size,
		Cells: make([]uint8, size*size),
	}
}

func (g *Grid) index(row, col int) int {
	return row*g.Size + col
}

// InBounds reports whether (row, col) is inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Size && col >= 0 && col < g.Size
}

// Get returns the cell at (row, col). Out-of-bounds reads return 0,
// which is what the smoothing pass wants for edge neighbors.
func (g *Grid) Get(row, col int) uint8 {
	if !g.InBounds(row, col) {
		return 0
	}
	return g.Cells[g.index(row, col)]
}

// Set writes the cell at (row, col). Out-of-bounds writes are ignored.
func (g *Grid) Set(row, col int, v uint8) {
	if g.InBounds(row, col) {
		g.Cells[g.index(row, col)] = v
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]uint8, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{Size: g.Size, Cells: cells}
}

// FilledCount returns the number of filled cells.
func (g *Grid) FilledCount() int {
	count := 0
	for _, c := range g.Cells {
		if c == 1 {
			count++
		}
	}
	return count
}

// Density returns the fraction of filled cells.
func (g *Grid) Density() float64 {
	if len(g.Cells) == 0 {
		return 0
	}
	return float64(g.FilledCount()) / float64(len(g.Cells))
}

// Equal reports whether two grids have identical size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.Size != other.Size {
		return false
	}
	for i, c := range g.Cells {
		if c != other.Cells[i] {
			return false
		}
	}
	return true
}

// CellState is the three-valued state of a player grid cell.
type CellState uint8

const (
	StateEmpty CellState = iota
	StateFilled
	StateCrossed
)

// String returns a human-readable name for the state.
func (s CellState) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateFilled:
		return "filled"
	case StateCrossed:
		return "crossed"
	default:
		return "unknown"
	}
}

// PlayerGrid holds the player's marks. It always matches the dimensions
// of the solution grid it is played against; the cells are mutated one
// at a time by player input and reset wholesale on a new game.
type PlayerGrid struct {
	Size  int
	Cells []CellState
}

// NewPlayerGrid creates an all-empty player grid of the given size.
func NewPlayerGrid(size int) *PlayerGrid {
	return &PlayerGrid{
		Size:  size,
		Cells: make([]CellState, size*size),
	}
}

func (p *PlayerGrid) index(row, col int) int {
	return row*p.Size + col
}

// InBounds reports whether (row, col) is inside the grid.
func (p *PlayerGrid) InBounds(row, col int) bool {
	return row >= 0 && row < p.Size && col >= 0 && col < p.Size
}

// Get returns the state at (row, col), StateEmpty when out of bounds.
func (p *PlayerGrid) Get(row, col int) CellState {
	if !p.InBounds(row, col) {
		return StateEmpty
	}
	return p.Cells[p.index(row, col)]
}

// Set writes the state at (row, col). Out-of-bounds writes are ignored.
func (p *PlayerGrid) Set(row, col int, s CellState) {
	if p.InBounds(row, col) {
		p.Cells[p.index(row, col)] = s
	}
}

// Clear resets every cell to StateEmpty.
func (p *PlayerGrid) Clear() {
	for i := range p.Cells {
		p.Cells[i] = StateEmpty
	}
}

// Clone returns a deep copy of the player grid.
func (p *PlayerGrid) Clone() *PlayerGrid {
	cells := make([]CellState, len(p.Cells))
	copy(cells, p.Cells)
	return &PlayerGrid{Size: p.Size, Cells: cells}
}
