package picross

import (
	"strings"
	"testing"
	"time"

	"github.com/dkotenko/picross/internal/core"
	"github.com/dkotenko/picross/internal/puzzle"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  100,
		ScreenH:  40,
		TickRate: 30,
	}
}

// newTestGame resets package selection state and returns a classic game
// past its loading phase.
func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	SetSize(0)
	SetDifficulty("")
	SetConfigPath("")

	g := New()
	g.Reset(testConfig(seed))
	drainLoading(g)
	return g
}

func drainLoading(g *Game) {
	input := core.NewInputFrame()
	for g.loading() {
		g.Step(input)
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and input script should produce
	// identical snapshots
	script := func(g *Game) {
		drainLoading(g)
		input := core.NewInputFrame()
		for i := 0; i < 60; i++ {
			input.Clear()
			switch i {
			case 5:
				input.Set(core.ActionRight)
			case 10:
				input.Set(core.ActionFill)
			case 20:
				input.Set(core.ActionDown)
			case 30:
				input.Set(core.ActionCross)
			}
			g.Step(input)
		}
	}

	SetSize(0)
	SetDifficulty("")
	SetConfigPath("")

	g1 := New()
	g1.Reset(testConfig(777))
	script(g1)

	g2 := New()
	g2.Reset(testConfig(777))
	script(g2)

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestLoadingPhaseDefersPlay(t *testing.T) {
	SetSize(0)
	SetDifficulty("")
	SetConfigPath("")

	g := New()
	g.Reset(testConfig(42))

	if !g.State().Loading {
		t.Fatal("game should start in loading phase")
	}

	// Inputs during loading must not move the cursor or start the clock
	input := core.NewInputFrame()
	input.Set(core.ActionRight)
	g.Step(input)

	if g.curCol != 0 {
		t.Error("cursor moved during loading")
	}
	if g.State().ElapsedTicks != 0 {
		t.Error("clock ran during loading")
	}

	drainLoading(g)
	if g.State().Loading {
		t.Error("loading should end after the delay elapses")
	}
}

func TestCursorClamped(t *testing.T) {
	g := newTestGame(t, 42)

	input := core.NewInputFrame()
	input.Set(core.ActionUp)
	g.Step(input)
	input.Clear()
	input.Set(core.ActionLeft)
	g.Step(input)

	if g.curRow != 0 || g.curCol != 0 {
		t.Errorf("cursor escaped top-left: (%d, %d)", g.curRow, g.curCol)
	}

	input.Clear()
	input.Set(core.ActionDown)
	for i := 0; i < g.size*2; i++ {
		g.Step(input)
	}
	if g.curRow != g.size-1 {
		t.Errorf("cursor escaped bottom edge: row %d", g.curRow)
	}
}

func TestFillTogglesAndCountsMistakes(t *testing.T) {
	g := newTestGame(t, 42)

	// Find one empty and one filled solution cell
	emptyRow, emptyCol := -1, -1
	filledRow, filledCol := -1, -1
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			if g.data.Grid.Get(row, col) == 1 && filledRow < 0 {
				filledRow, filledCol = row, col
			}
			if g.data.Grid.Get(row, col) == 0 && emptyRow < 0 {
				emptyRow, emptyCol = row, col
			}
		}
	}
	if emptyRow < 0 || filledRow < 0 {
		t.Fatal("generated puzzle should have both cell kinds")
	}

	fill := core.NewInputFrame()
	fill.Set(core.ActionFill)

	// Correct fill: no mistake
	g.curRow, g.curCol = filledRow, filledCol
	g.Step(fill)
	if g.mistakes != 0 {
		t.Errorf("correct fill counted as mistake")
	}
	if g.player.Get(filledRow, filledCol) != puzzle.StateFilled {
		t.Error("fill did not mark the cell")
	}

	// Wrong fill: one mistake
	g.curRow, g.curCol = emptyRow, emptyCol
	g.Step(fill)
	if g.mistakes != 1 {
		t.Errorf("mistakes = %d after contradicting fill, want 1", g.mistakes)
	}

	// Toggling the wrong fill off clears the mark but keeps the count
	g.Step(fill)
	if g.player.Get(emptyRow, emptyCol) != puzzle.StateEmpty {
		t.Error("second fill should toggle the cell back to empty")
	}
	if g.mistakes != 1 {
		t.Errorf("mistakes = %d after toggle-off, want 1", g.mistakes)
	}
}

func TestCrossIsNeverAMistake(t *testing.T) {
	g := newTestGame(t, 42)

	cross := core.NewInputFrame()
	cross.Set(core.ActionCross)

	for col := 0; col < g.size; col++ {
		g.curRow, g.curCol = 0, col
		g.Step(cross)
	}
	if g.mistakes != 0 {
		t.Errorf("crosses counted as mistakes: %d", g.mistakes)
	}
	if g.player.Get(0, 0) != puzzle.StateCrossed {
		t.Error("cross did not mark the cell")
	}
}

func TestWinDetection(t *testing.T) {
	g := newTestGame(t, 42)

	// Mark every filled solution cell except the last one directly,
	// then fill the last one through input so win detection runs.
	lastRow, lastCol := -1, -1
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			if g.data.Grid.Get(row, col) == 1 {
				lastRow, lastCol = row, col
			}
		}
	}
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			if g.data.Grid.Get(row, col) == 1 && !(row == lastRow && col == lastCol) {
				g.player.Set(row, col, puzzle.StateFilled)
			}
		}
	}

	if g.won {
		t.Fatal("game won before the final cell")
	}

	g.curRow, g.curCol = lastRow, lastCol
	fill := core.NewInputFrame()
	fill.Set(core.ActionFill)
	g.Step(fill)

	if !g.won {
		t.Fatal("filling the final cell should win the game")
	}
	if !g.State().Won {
		t.Error("State() does not report the win")
	}

	// The clock freezes after the win
	elapsed := g.elapsed
	g.Step(core.NewInputFrame())
	if g.elapsed != elapsed {
		t.Error("clock kept running after the win")
	}
}

func TestResultReflectsSession(t *testing.T) {
	g := newTestGame(t, 1234)

	res := g.Result()
	if res.Mode != "classic" {
		t.Errorf("mode = %q", res.Mode)
	}
	if res.Seed != uint32(g.data.Seed) {
		t.Errorf("seed = %d, want %d", res.Seed, g.data.Seed)
	}
	if res.Size != g.size {
		t.Errorf("size = %d, want %d", res.Size, g.size)
	}
	if res.Difficulty != g.band.Label {
		t.Errorf("difficulty = %q, want %q", res.Difficulty, g.band.Label)
	}
}

func TestPauseBlocksProgress(t *testing.T) {
	g := newTestGame(t, 42)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if !g.State().Paused {
		t.Fatal("pause did not engage")
	}

	elapsed := g.elapsed
	move := core.NewInputFrame()
	move.Set(core.ActionRight)
	g.Step(move)

	if g.curCol != 0 {
		t.Error("cursor moved while paused")
	}
	if g.elapsed != elapsed {
		t.Error("clock ran while paused")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("pause did not disengage")
	}
}

func TestRestartRollsFreshBoard(t *testing.T) {
	g := newTestGame(t, 42)

	fill := core.NewInputFrame()
	fill.Set(core.ActionFill)
	g.Step(fill)

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)
	drainLoading(g)

	snap := g.Snapshot()
	if strings.ContainsAny(snap.Marks, "#x") {
		t.Error("restart did not clear the player marks")
	}
	if snap.Elapsed != 0 {
		t.Errorf("restart did not reset the clock: %d", snap.Elapsed)
	}
	if snap.Phase != PhasePlaying {
		t.Errorf("phase after restart = %q", snap.Phase)
	}
}

func TestDailySeedIsDateDerived(t *testing.T) {
	SetConfigPath("")
	today := time.Now().UTC().Format("2006-01-02")
	want := puzzle.SeedFromText(today)

	g := NewDaily()
	g.Reset(testConfig(0))

	if g.data.Seed != want {
		t.Errorf("daily seed = %d, want %d (from %s)", g.data.Seed, want, today)
	}
	if g.size != dailySize {
		t.Errorf("daily size = %d, want %d", g.size, dailySize)
	}

	// A second daily session on the same day is the same puzzle
	g2 := NewDaily()
	g2.Reset(testConfig(99))
	if !g2.data.Grid.Equal(g.data.Grid) {
		t.Error("daily puzzles diverged within one day")
	}
}

func TestSeedTextOverridesNumericSeed(t *testing.T) {
	SetSize(0)
	SetDifficulty("")
	SetConfigPath("")

	cfg := testConfig(42)
	cfg.SeedText = "lighthouse"

	g := New()
	g.Reset(cfg)

	if g.data.Seed != puzzle.SeedFromText("lighthouse") {
		t.Errorf("seed text ignored: got %d", g.data.Seed)
	}
}

func TestRenderSmoke(t *testing.T) {
	g := newTestGame(t, 42)

	screen := core.NewScreen(100, 40)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Picross") {
		t.Error("HUD missing from render output")
	}
	if !strings.Contains(out, g.data.Title) {
		t.Errorf("puzzle title %q missing from render output", g.data.Title)
	}
}

func TestTooSmallWindow(t *testing.T) {
	SetSize(0)
	SetDifficulty("")
	SetConfigPath("")

	g := New()
	cfg := testConfig(42)
	cfg.ScreenW = 30
	cfg.ScreenH = 6
	g.Reset(cfg)
	drainLoading(g)

	if !g.tooSmall {
		t.Fatal("30x6 screen should be too small for a 10x10 board")
	}
	if g.Snapshot().Phase != PhasePausedSmall {
		t.Errorf("phase = %q", g.Snapshot().Phase)
	}

	screen := core.NewScreen(30, 6)
	g.Render(screen)
	if !strings.Contains(screen.String(), "small") {
		t.Error("too-small overlay missing")
	}
}
