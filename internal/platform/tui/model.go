package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/twin-arcade/internal/core"
	"github.com/vovakirdan/twin-arcade/internal/registry"
)

// Model is the Bubble Tea model for running one arcade game. It owns the
// frame clock: every TickMsg becomes one bounded Step followed by a render.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	palette    Palette
	config     core.RuntimeConfig
	keys       KeyMap
	latch      *HoldLatch
	clock      *core.Clock
	inputFrame core.InputFrame
	gameState  core.GameState
	logger     *log.Logger
	exitOnBack bool // standalone play quits instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		palette:    defaultPalette,
		config:     cfg,
		keys:       DefaultKeyMap(),
		latch:      NewHoldLatch(DefaultHoldWindow),
		clock:      core.NewClock(core.DefaultMaxStep),
		inputFrame: core.NewInputFrame(),
		logger:     logger.WithPrefix(game.ID()),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.clock.Reset()
	m.logger.Debug("game ready", "seed", m.config.Seed, "difficulty", m.config.Difficulty)
	if r, ok := m.game.(registry.ConfigReporter); ok && r.ConfigErr() != nil {
		m.logger.Warn("using built-in config", "error", r.ConfigErr())
	}
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
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		// Back only leaves a game that is not in play.
		if m.gameState.Status == core.StatusRunning {
			return m, nil
		}
		m.backToMenu = true
		if m.exitOnBack {
			return m, tea.Quit
		}
		return m, nil
	}

	m.inputFrame.Set(action)
	m.latch.Press(action, time.Now())
	return m, nil
}

// handleResize processes window resize events. The simulations work in
// their own coordinates, so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation step with the clamped frame delta.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.Advance(now)
	m.latch.Apply(&m.inputFrame, now)

	result := m.game.Step(m.inputFrame, dt)
	if result.Changed {
		m.logger.Debug("status changed", "status", result.State.Status, "score", result.State.Score)
		if result.State.GameOver {
			m.logger.Info("run finished", "score", result.State.Score)
		}
		if result.State.Status != core.StatusRunning {
			m.latch.Release()
		}
	}
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return m.palette.Render(m.screen)
}

// GameState returns the state after the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to leave the game.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the current terminal until the user quits.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)
	model.exitOnBack = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run %s: %w", game.ID(), err)
	}
	return nil
}
