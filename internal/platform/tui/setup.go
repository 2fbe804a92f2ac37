package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkotenko/picross/internal/config"
	"github.com/dkotenko/picross/internal/core"
)

// Setup rows, top to bottom.
const (
	setupRowSize = iota
	setupRowDifficulty
	setupRowSeed
	setupRowStart
	setupRowCount
)

// Selection holds the user's choices from the classic setup screen.
type Selection struct {
	Size       int
	Difficulty string
	SeedText   string // Empty means roll a random puzzle
}

// SetupModel lets users choose board size, difficulty, and an optional
// seed phrase before a classic game.
type SetupModel struct {
	cfg        config.PicrossConfig
	sizes      []int
	labels     []string
	sizeCursor int
	diffCursor int
	seedInput  textinput.Model
	cursor     int
	width      int
	height     int
	keyMapper  *KeyMapper
	selection  Selection
	choosing   bool
	quitting   bool
	back       bool
}

// NewSetupModel creates a new setup model from the loaded config.
func NewSetupModel(cfg config.PicrossConfig, width, height int) SetupModel {
	ti := textinput.New()
	ti.Placeholder = "random"
	ti.CharLimit = 64
	ti.Width = 24

	m := SetupModel{
		cfg:       cfg,
		sizes:     cfg.Board.Sizes,
		labels:    cfg.Labels(),
		seedInput: ti,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}

	for i, s := range m.sizes {
		if s == cfg.Board.DefaultSize {
			m.sizeCursor = i
		}
	}
	for i, l := range m.labels {
		if l == cfg.Board.DefaultDifficulty {
			m.diffCursor = i
		}
	}

	return m
}

// Init initializes the model.
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	// Cursor blink and other input messages
	var cmd tea.Cmd
	m.seedInput, cmd = m.seedInput.Update(msg)
	return m, cmd
}

func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Navigation keys work from every row, including the text input
	switch key {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.back = true
		return m, tea.Quit
	case "up", "shift+tab":
		return m.moveCursor(-1), nil
	case "down", "tab":
		return m.moveCursor(1), nil
	case "enter":
		if m.cursor == setupRowStart || m.cursor == setupRowSeed {
			return m.start()
		}
		return m.moveCursor(1), nil
	}

	// The seed row consumes everything else as text
	if m.cursor == setupRowSeed {
		var cmd tea.Cmd
		m.seedInput, cmd = m.seedInput.Update(msg)
		return m, cmd
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionLeft:
		m.cycle(-1)
	case MenuActionRight:
		m.cycle(1)
	case MenuActionSelect:
		return m.start()
	}

	return m, nil
}

// moveCursor shifts the row focus and manages the text input focus.
func (m SetupModel) moveCursor(delta int) SetupModel {
	m.cursor = core.Clamp(m.cursor+delta, 0, setupRowCount-1)
	if m.cursor == setupRowSeed {
		m.seedInput.Focus()
	} else {
		m.seedInput.Blur()
	}
	return m
}

// cycle steps the value on the current row.
func (m *SetupModel) cycle(delta int) {
	switch m.cursor {
	case setupRowSize:
		if n := len(m.sizes); n > 0 {
			m.sizeCursor = (m.sizeCursor + delta + n) % n
		}
	case setupRowDifficulty:
		if n := len(m.labels); n > 0 {
			m.diffCursor = (m.diffCursor + delta + n) % n
		}
	}
}

// start finalizes the selection.
func (m SetupModel) start() (tea.Model, tea.Cmd) {
	size := m.cfg.Board.DefaultSize
	if len(m.sizes) > 0 {
		size = m.sizes[m.sizeCursor]
	}
	difficulty := m.cfg.Board.DefaultDifficulty
	if len(m.labels) > 0 {
		difficulty = m.labels[m.diffCursor]
	}

	m.choosing = false
	m.selection = Selection{
		Size:       size,
		Difficulty: difficulty,
		SeedText:   strings.TrimSpace(m.seedInput.Value()),
	}
	return m, tea.Quit
}

// View renders the setup screen.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("NEW PUZZLE", m.width))
	b.WriteString("\n\n")

	size := "-"
	if len(m.sizes) > 0 {
		size = fmt.Sprintf("%dx%d", m.sizes[m.sizeCursor], m.sizes[m.sizeCursor])
	}
	difficulty := "-"
	if len(m.labels) > 0 {
		difficulty = m.labels[m.diffCursor]
	}

	rows := []string{
		fmt.Sprintf("Size:        < %s >", size),
		fmt.Sprintf("Difficulty:  < %s >", difficulty),
		fmt.Sprintf("Seed:        %s", m.seedInput.View()),
		"[ Start ]",
	}

	for i, row := range rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+row, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Left/Right: Change  |  Enter: Start  |  Esc: Back", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m SetupModel) Selected() *Selection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SetupModel) WantsBack() bool {
	return m.back
}

// RunSetup runs the classic setup screen and returns the selection.
// A nil selection means the user backed out or quit.
func RunSetup(cfg config.PicrossConfig, rtCfg core.RuntimeConfig) (*Selection, core.RuntimeConfig, error) {
	model := NewSetupModel(cfg, rtCfg.ScreenW, rtCfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, rtCfg, err
	}

	m, ok := finalModel.(SetupModel)
	if !ok {
		return nil, rtCfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, rtCfg, nil
	}

	return m.Selected(), rtCfg, nil
}
