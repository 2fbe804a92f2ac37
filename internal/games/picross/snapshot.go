package picross

import (
	"strings"

	"github.com/dkotenko/picross/internal/puzzle"
)

// Phase represents the coarse session state.
type Phase string

const (
	PhaseLoading     Phase = "loading"
	PhasePlaying     Phase = "playing"
	PhasePaused      Phase = "paused"
	PhaseWon         Phase = "won"
	PhasePausedSmall Phase = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Mode       string
	Seed       uint32
	Size       int
	Difficulty string
	Solution   string // Row-major '0'/'1' encoding of the hidden grid
	Marks      string // Row-major '.', '#', 'x' encoding of the player grid
	CurRow     int
	CurCol     int
	Elapsed    int
	Mistakes   int
	Phase      Phase
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	phase := PhasePlaying
	switch {
	case g.tooSmall:
		phase = PhasePausedSmall
	case g.loading():
		phase = PhaseLoading
	case g.won:
		phase = PhaseWon
	case g.paused:
		phase = PhasePaused
	}

	return Snapshot{
		Mode:       string(g.mode),
		Seed:       uint32(g.data.Seed),
		Size:       g.size,
		Difficulty: g.band.Label,
		Solution:   encodeSolution(g),
		Marks:      encodeMarks(g),
		CurRow:     g.curRow,
		CurCol:     g.curCol,
		Elapsed:    g.elapsed,
		Mistakes:   g.mistakes,
		Phase:      phase,
	}
}

func encodeSolution(g *Game) string {
	var b strings.Builder
	b.Grow(g.size * g.size)
	for _, cell := range g.data.Grid.Cells {
		b.WriteByte('0' + cell)
	}
	return b.String()
}

func encodeMarks(g *Game) string {
	var b strings.Builder
	b.Grow(g.size * g.size)
	for _, cell := range g.player.Cells {
		switch cell {
		case puzzle.StateFilled:
			b.WriteByte('#')
		case puzzle.StateCrossed:
			b.WriteByte('x')
		default:
			b.WriteByte('.')
		}
	}
	return b.String()
}
