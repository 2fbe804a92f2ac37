// Package picross implements the playable nonogram modes on top of the
// pure puzzle core. The game owns the player grid, cursor, and timers;
// every correctness question is answered by the evaluator, never here.
package picross

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dkotenko/picross/internal/config"
	"github.com/dkotenko/picross/internal/core"
	"github.com/dkotenko/picross/internal/puzzle"
	"github.com/dkotenko/picross/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeDaily   Mode = "daily"
)

// Daily puzzles are the same for everyone on a given UTC day.
const (
	dailySize       = 15
	dailyDifficulty = "normal"
)

// Game implements one picross session.
type Game struct {
	mode Mode

	cfg      config.PicrossConfig
	band     puzzle.Band
	size     int
	data     puzzle.PuzzleData
	hints    puzzle.Hints
	player   *puzzle.PlayerGrid
	tickRate int

	// Cursor state
	curRow int
	curCol int

	// Progress state
	elapsed  int // Ticks spent actively solving
	mistakes int
	rowDone  []bool
	colDone  []bool

	// Phase flags
	loadTicks int // Remaining cosmetic loading ticks
	won       bool
	paused    bool
	tooSmall  bool

	screenW int
	screenH int
}

// Package-level selection state, set by the CLI/setup screen before the
// mode is created (same pattern as per-game setters across the platform).
var (
	configPath         string
	selectedSize       int
	selectedDifficulty string
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetSize sets the board size for the next classic game. 0 means use
// the configured default.
func SetSize(size int) {
	selectedSize = size
}

// SetDifficulty sets the difficulty label for the next classic game.
// Empty means use the configured default.
func SetDifficulty(label string) {
	selectedDifficulty = label
}

// New creates a classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewDaily creates a daily mode game.
func NewDaily() *Game {
	return &Game{mode: ModeDaily}
}

func init() {
	registry.Register("classic", func() registry.Game {
		return New()
	})
	registry.Register("daily", func() registry.Game {
		return NewDaily()
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeDaily {
		return "Picross (Daily)"
	}
	return "Picross"
}

// Reset initializes/restarts the game with a freshly generated puzzle.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	pcfg, err := config.Load(configPath)
	if err != nil {
		pcfg = config.DefaultConfig()
	}
	g.cfg = pcfg

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}

	g.size, g.band = g.resolveBoard()
	seed := g.resolveSeed(cfg)

	g.data = puzzle.Generate(seed, g.size, g.band)
	g.hints = puzzle.DeriveHints(g.data.Grid)
	g.player = puzzle.NewPlayerGrid(g.size)

	g.curRow = 0
	g.curCol = 0
	g.elapsed = 0
	g.mistakes = 0
	g.rowDone = make([]bool, g.size)
	g.colDone = make([]bool, g.size)
	g.won = false
	g.paused = false
	g.loadTicks = g.cfg.Loading.DelayTicks

	g.refreshLines()
	g.checkTooSmall()
}

// resolveBoard picks the size and band for this session.
func (g *Game) resolveBoard() (int, puzzle.Band) {
	if g.mode == ModeDaily {
		band, err := g.cfg.BandFor(dailyDifficulty)
		if err != nil {
			band = puzzle.BandNormal
		}
		return dailySize, band
	}

	size := g.cfg.Board.DefaultSize
	if selectedSize > 0 && g.cfg.ValidSize(selectedSize) {
		size = selectedSize
	}
	if size <= 0 {
		size = 10
	}

	label := g.cfg.Board.DefaultDifficulty
	if selectedDifficulty != "" {
		label = selectedDifficulty
	}
	band, err := g.cfg.BandFor(label)
	if err != nil {
		band = puzzle.BandNormal
	}
	return size, band
}

// resolveSeed picks the puzzle seed: daily date > explicit phrase >
// numeric seed > fresh entropy.
func (g *Game) resolveSeed(cfg core.RuntimeConfig) puzzle.Seed {
	if g.mode == ModeDaily {
		return puzzle.SeedFromText(time.Now().UTC().Format("2006-01-02"))
	}
	if cfg.SeedText != "" {
		return puzzle.SeedFromText(cfg.SeedText)
	}
	if cfg.Seed != 0 {
		return puzzle.Seed(uint32(cfg.Seed))
	}
	return puzzle.RandomSeed()
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionRestart) && (g.won || !g.loading()) {
		g.Reset(core.RuntimeConfig{
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
			// Seed 0: a restart always rolls a fresh puzzle.
		})
		return core.StepResult{State: g.State()}
	}

	if g.loading() {
		g.loadTicks--
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.won {
		g.paused = !g.paused
	}

	if g.won || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.elapsed++
	g.processInput(input)

	return core.StepResult{State: g.State()}
}

func (g *Game) loading() bool {
	return g.loadTicks > 0
}

// processInput moves the cursor and applies marks.
func (g *Game) processInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		g.curRow = core.Clamp(g.curRow-1, 0, g.size-1)
	case input.Has(core.ActionDown):
		g.curRow = core.Clamp(g.curRow+1, 0, g.size-1)
	case input.Has(core.ActionLeft):
		g.curCol = core.Clamp(g.curCol-1, 0, g.size-1)
	case input.Has(core.ActionRight):
		g.curCol = core.Clamp(g.curCol+1, 0, g.size-1)
	}

	switch {
	case input.Has(core.ActionFill):
		g.toggle(puzzle.StateFilled)
	case input.Has(core.ActionCross):
		g.toggle(puzzle.StateCrossed)
	}
}

// toggle flips the cursor cell between state and empty, counts
// contradictions, and re-derives the line and win verdicts.
func (g *Game) toggle(state puzzle.CellState) {
	current := g.player.Get(g.curRow, g.curCol)
	next := state
	if current == state {
		next = puzzle.StateEmpty
	}
	g.player.Set(g.curRow, g.curCol, next)

	// A fill on an empty solution cell is a contradiction. Crosses are
	// never wrong in a scoring sense; they are player bookkeeping.
	if next == puzzle.StateFilled && g.data.Grid.Get(g.curRow, g.curCol) == 0 {
		g.mistakes++
	}

	g.refreshLines()
	if puzzle.Solved(g.data.Grid, g.player) {
		g.won = true
	}
}

// refreshLines re-derives per-line completion for progress display.
func (g *Game) refreshLines() {
	for i := 0; i < g.size; i++ {
		g.rowDone[i] = puzzle.RowSolved(g.data.Grid, g.player, i)
		g.colDone[i] = puzzle.ColSolved(g.data.Grid, g.player, i)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		ElapsedTicks: g.elapsed,
		Mistakes:     g.mistakes,
		Loading:      g.loading(),
		Won:          g.won,
		Paused:       g.paused,
	}
}

// Result returns the persistable outcome of this session.
func (g *Game) Result() core.Result {
	return core.Result{
		Mode:       string(g.mode),
		Seed:       uint32(g.data.Seed),
		Size:       g.size,
		Difficulty: g.band.Label,
		Ticks:      g.elapsed,
		Mistakes:   g.mistakes,
	}
}

// Puzzle exposes the generated puzzle, mainly for headless commands.
func (g *Game) Puzzle() puzzle.PuzzleData {
	return g.data
}

// ElapsedSeconds converts solve ticks to whole seconds.
func (g *Game) ElapsedSeconds() int {
	return g.elapsed / g.tickRate
}

// checkTooSmall verifies the board plus hint gutters fit the screen.
func (g *Game) checkTooSmall() {
	requiredW := g.gutterW() + g.size*2 + 2
	requiredH := g.gutterH() + g.size + hudHeight + 1
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
}

const hudHeight = 2

// gutterW is the width of the left row-hint gutter in characters.
func (g *Game) gutterW() int {
	return g.hints.MaxRowHintLen()*3 + 1
}

// gutterH is the height of the top column-hint band.
func (g *Game) gutterH() int {
	return g.hints.MaxColHintLen()
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	switch {
	case g.tooSmall:
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	case g.loading():
		g.renderOverlay(dst, "Generating "+g.data.Title, "One moment...")
		return
	}

	g.renderBoard(dst)

	switch {
	case g.won:
		g.renderOverlay(dst, "Solved!",
			fmt.Sprintf("%s in %ds — R for another", g.data.Title, g.ElapsedSeconds()))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s — %s  %dx%d  %s  %ds  mistakes: %d",
		g.Title(), g.data.Title, g.size, g.size, g.band.Label, g.ElapsedSeconds(), g.mistakes)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws hints and cells with the cursor highlighted.
func (g *Game) renderBoard(dst *core.Screen) {
	originX := (dst.Width() - g.size*2 - g.gutterW()) / 2
	if originX < 0 {
		originX = 0
	}
	boardX := originX + g.gutterW()
	boardY := hudHeight + g.gutterH() + 1

	g.renderColHints(dst, boardX, hudHeight+1)
	g.renderRowHints(dst, originX, boardY)

	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			ch, color := g.cellGlyph(row, col)
			if row == g.curRow && col == g.curCol && !g.won {
				color = core.ColorYellow
			}
			dst.SetColored(boardX+col*2, boardY+row, ch, color)
		}
	}
}

// cellGlyph maps a player cell to its rune and color.
func (g *Game) cellGlyph(row, col int) (rune, core.Color) {
	switch g.player.Get(row, col) {
	case puzzle.StateFilled:
		return '█', core.ColorCyan
	case puzzle.StateCrossed:
		return '×', core.ColorGray
	default:
		return '·', core.ColorDefault
	}
}

// renderColHints draws the column clues above the board, bottom-aligned.
func (g *Game) renderColHints(dst *core.Screen, boardX, topY int) {
	height := g.gutterH()
	for col := 0; col < g.size; col++ {
		runs := g.hints.Cols[col]
		color := core.ColorDefault
		if g.colDone[col] {
			color = core.ColorGreen
		}

		if len(runs) == 0 {
			dst.SetColored(boardX+col*2, topY+height-1, '0', color)
			continue
		}
		for i, run := range runs {
			y := topY + height - len(runs) + i
			text := strconv.Itoa(run)
			// Multi-digit clues keep only their last digit in the
			// 1-wide column slot on cramped screens.
			r := rune(text[len(text)-1])
			if run < 10 {
				r = rune('0' + run)
			}
			dst.SetColored(boardX+col*2, y, r, color)
		}
	}
}

// renderRowHints draws the row clues to the left of the board,
// right-aligned against the grid edge.
func (g *Game) renderRowHints(dst *core.Screen, originX, boardY int) {
	width := g.gutterW()
	for row := 0; row < g.size; row++ {
		runs := g.hints.Rows[row]
		color := core.ColorDefault
		if g.rowDone[row] {
			color = core.ColorGreen
		}

		text := "0"
		if len(runs) > 0 {
			parts := make([]string, len(runs))
			for i, run := range runs {
				parts[i] = strconv.Itoa(run)
			}
			text = strings.Join(parts, " ")
		}
		x := originX + width - len(text) - 1
		if x < 0 {
			x = 0
		}
		dst.DrawTextColored(x, boardY+row, text, color)
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	for y := boxY + 1; y < boxY+boxH-1; y++ {
		for x := boxX + 1; x < boxX+boxW-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
