package puzzle

import (
	"context"
	"fmt"
	"time"
)

// Smoothing constants. Empirically chosen; the density plausibility
// tests treat them as fixed contract values.
const (
	smoothIterations = 2
	surviveNeighbors = 3 // filled cell stays filled at >= this many
	birthNeighbors   = 4 // empty cell becomes filled at >= this many
	smoothMinDensity = 0.3
	smoothMaxDensity = 0.8
)

// PuzzleData bundles a generated solution with its identity metadata.
type PuzzleData struct {
	Title string
	Grid  *Grid
	Size  int
	Seed  Seed
}

// Generate produces the solution grid for (seed, size, band).
// It is a pure function: the same inputs always produce a bit-identical
// grid. The pipeline order is fixed because later stages consume RNG
// state left by earlier ones:
//
//  1. draw the concrete target density from the band
//  2. noise pass, row-major, one draw per cell
//  3. two cellular-automata smoothing iterations, mid-range densities only
//  4. non-degeneracy correction
//
// Size and band validation belongs to callers; the generator itself
// rejects nothing.
func Generate(seed Seed, size int, band Band) PuzzleData {
	rng := NewRNG(seed)

	targetDensity := band.Min + rng.Next()*(band.Max-band.Min)

	grid := NewGrid(size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if rng.Bool(targetDensity) {
				grid.Set(row, col, 1)
			}
		}
	}

	// Extreme densities keep their raw noise character so near-solid and
	// near-empty boards stay recognizable; only mid-range patterns are
	// smoothed into coherent shapes.
	if targetDensity > smoothMinDensity && targetDensity < smoothMaxDensity {
		for i := 0; i < smoothIterations; i++ {
			grid = smooth(grid)
		}
	}

	correctDegenerate(grid)

	return PuzzleData{
		Title: fmt.Sprintf("Pattern #%d", seed),
		Grid:  grid,
		Size:  size,
		Seed:  seed,
	}
}

// smooth runs one cellular-automata iteration. Neighbor counts are taken
// from the pre-iteration grid and results written to a fresh grid, so no
// cell sees a neighbor updated within the same pass.
func smooth(g *Grid) *Grid {
	next := NewGrid(g.Size)
	for row := 0; row < g.Size; row++ {
		for col := 0; col < g.Size; col++ {
			n := filledNeighbors(g, row, col)
			if g.Get(row, col) == 1 {
				if n >= surviveNeighbors {
					next.Set(row, col, 1)
				}
			} else if n >= birthNeighbors {
				next.Set(row, col, 1)
			}
		}
	}
	return next
}

// filledNeighbors counts filled cells in the Moore neighborhood of
// (row, col). Out-of-bounds neighbors simply do not count.
func filledNeighbors(g *Grid, row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.Get(row+dr, col+dc) == 1 {
				count++
			}
		}
	}
	return count
}

// correctDegenerate enforces that the grid has at least one filled and
// one empty cell. The correction applies at most once per condition and
// never re-triggers smoothing.
func correctDegenerate(g *Grid) {
	filled := g.FilledCount()
	switch {
	case filled == 0:
		g.Set(g.Size/2, g.Size/2, 1)
	case filled == len(g.Cells):
		g.Set(0, 0, 0)
	}
}

// GenerateWithDelay runs Generate after waiting at least delay, so a
// host UI can show a loading state. The delay carries no semantics: the
// computation itself is synchronous and local, and cancelling the
// context before the delay elapses abandons the call with no partial
// state. A zero or negative delay computes immediately.
func GenerateWithDelay(ctx context.Context, delay time.Duration, seed Seed, size int, band Band) (PuzzleData, error) {
	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return PuzzleData{}, ctx.Err()
		case <-timer.C:
		}
	}
	return Generate(seed, size, band), nil
}
