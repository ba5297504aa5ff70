package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/twin-arcade/internal/config"
	"github.com/vovakirdan/twin-arcade/internal/core"
	"github.com/vovakirdan/twin-arcade/internal/registry"
)

// gameBlurbs describes each game in the picker.
var gameBlurbs = map[string]struct{ mode, keys string }{
	"combat": {"vs CPU", "←/→ j k l ↑"},
	"tetris": {"solo", "←/→ ↓ x z space"},
}

// presets is the difficulty cycle shown in the menu header.
var presets = []config.DifficultyPreset{
	config.DifficultyFixed,
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

// MenuKeyMap defines the key bindings for the game picker.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Difficulty key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Difficulty, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Difficulty, k.Help, k.Quit},
	}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Difficulty: key.NewBinding(
			key.WithKeys("left", "right", "h", "l", "tab"),
			key.WithHelp("←/→", "difficulty"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	games     []registry.GameInfo
	table     table.Model
	help      help.Model
	keys      MenuKeyMap
	gameKeys  KeyMap
	showKeys  bool
	preset    int
	config    core.RuntimeConfig
	width     int
	height    int
	quitting  bool
	selection string // game ID, set when the user picks a game
}

// NewMenuModel creates a new menu model listing every registered game.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		games:    registry.List(),
		help:     help.New(),
		keys:     DefaultMenuKeyMap(),
		gameKeys: DefaultKeyMap(),
		config:   cfg,
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
	}
	if p, ok := config.ParsePreset(cfg.Difficulty); ok {
		m.preset = max(0, indexOf(presets, p))
	}
	m.table = m.createTable()
	return m
}

func indexOf(list []config.DifficultyPreset, p config.DifficultyPreset) int {
	for i, v := range list {
		if v == p {
			return i
		}
	}
	return -1
}

// createTable builds the game table.
func (m *MenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Game", Width: 16},
		{Title: "Mode", Width: 8},
		{Title: "Keys", Width: 18},
	}
	rows := make([]table.Row, 0, len(m.games))
	for _, g := range m.games {
		blurb := gameBlurbs[g.ID]
		rows = append(rows, table.Row{g.Title, blurb.mode, blurb.keys})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(len(rows)+1, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Select):
		if len(m.games) > 0 {
			m.selection = m.games[m.table.Cursor()].ID
			return m, tea.Quit
		}
		return m, nil

	case key.Matches(msg, m.keys.Difficulty):
		step := 1
		if s := msg.String(); s == "left" || s == "h" {
			step = len(presets) - 1
		}
		m.preset = (m.preset + step) % len(presets)
		m.config.Difficulty = string(presets[m.preset])
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.showKeys = !m.showKeys
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  T W I N   A R C A D E  "))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "  Difficulty: %s\n\n", accentStyle.Render(string(presets[m.preset])))
	b.WriteString(m.table.View())
	b.WriteString("\n\n")

	if m.showKeys {
		b.WriteString(mutedStyle.Render("In game:"))
		b.WriteString("\n")
		full := m.help
		full.ShowAll = true
		b.WriteString(full.View(m.gameKeys))
		b.WriteString("\n\n")
	}
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, b.String())
}

// Selected returns the chosen game ID, or "" if none was chosen.
func (m MenuModel) Selected() string {
	return m.selection
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the runtime config with any size or difficulty changes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}
