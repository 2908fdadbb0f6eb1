package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// Model is the Bubble Tea model for a play session. It shows the start
// screen until Enter is pressed, then steps the game once per tick.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	hold     *HoldTracker
	frame    core.InputFrame
	state    core.GameState
	width    int
	height   int
	started  bool
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
// holdTicks is how long a direction stays held without a key repeat.
func NewModel(game registry.Game, cfg core.RuntimeConfig, holdTicks int) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		hold:   NewHoldTracker(holdTicks),
		frame:  core.NewInputFrame(),
		state:  core.GameState{HighScore: cfg.HighScore},
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
}

// Init starts the tick loop. The session itself starts from the start screen.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if !m.started {
		if action == core.ActionConfirm {
			m.game.Reset(m.config)
			m.state = m.game.State()
			m.started = true
		}
		return m, nil
	}

	switch action {
	case core.ActionLeft, core.ActionRight:
		for _, a := range m.hold.Press(action) {
			m.frame.Push(a)
		}
	case core.ActionJump, core.ActionPause:
		m.frame.Push(action)
	case core.ActionRestart:
		if m.state.GameOver {
			m.restart()
		}
	}

	return m, nil
}

// restart begins a new session with a fresh seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.config.HighScore = m.state.HighScore
	m.game.Reset(m.config)
	m.state = m.game.State()
	m.hold.Reset()
	m.frame.Clear()
}

// handleResize follows the terminal size. The session keeps running; the
// viewport rescales to the new grid.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.started {
		return m, tickCmd(m.config.TickRate)
	}

	m.frame.Push(m.hold.Tick())
	result := m.game.Step(m.frame)
	m.state = result.State
	if result.Ended {
		m.hold.Reset()
	}

	// Clear input for next frame
	m.frame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if !m.started {
		return
	}
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.started {
		return renderStartScreen(m.game.Title(), m.state.HighScore, m.width, m.height, m.help.View(m.keys))
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Started reports whether the player has left the start screen.
func (m Model) Started() bool {
	return m.started
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.state
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, holdTicks int) error {
	model := NewModel(game, cfg, holdTicks)

	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
