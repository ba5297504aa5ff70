package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/twin-arcade/internal/core"
)

// KeyMap holds the in-game key bindings shared by both games. Keys a game
// does not use are ignored by its Step.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	Drop      key.Binding
	RotateCW  key.Binding
	RotateCCW key.Binding
	Light     key.Binding
	Heavy     key.Binding
	Shoot     key.Binding
	Confirm   key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Pause, k.Restart, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Light, k.Heavy, k.Shoot},
		{k.RotateCW, k.RotateCCW, k.Drop},
		{k.Confirm, k.Pause, k.Restart, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "jump/rotate"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "soft drop"),
		),
		Drop: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "hard drop"),
		),
		RotateCW: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "rotate cw"),
		),
		RotateCCW: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "rotate ccw"),
		),
		Light: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "light"),
		),
		Heavy: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "heavy"),
		),
		Shoot: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "blaster"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start/pause"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action. Unknown keys map to
// ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Drop):
		return core.ActionDrop
	case key.Matches(msg, k.RotateCW):
		return core.ActionRotateCW
	case key.Matches(msg, k.RotateCCW):
		return core.ActionRotateCCW
	case key.Matches(msg, k.Light):
		return core.ActionLight
	case key.Matches(msg, k.Heavy):
		return core.ActionHeavy
	case key.Matches(msg, k.Shoot):
		return core.ActionShoot
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}

// DefaultHoldWindow is how long a movement key counts as held after its last
// press or auto-repeat. It has to outlast the terminal's initial repeat
// delay, which is commonly 250-500ms.
const DefaultHoldWindow = 500 * time.Millisecond

// HoldLatch turns repeated key presses into held state. Terminals report
// key-down and auto-repeat but never key-up, so a tracked action stays held
// until its window expires or the opposite direction is pressed.
type HoldLatch struct {
	window    time.Duration
	last      map[core.Action]time.Time
	opposites map[core.Action]core.Action
}

// NewHoldLatch creates a latch tracking left and right movement.
func NewHoldLatch(window time.Duration) *HoldLatch {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldLatch{
		window: window,
		last:   make(map[core.Action]time.Time),
		opposites: map[core.Action]core.Action{
			core.ActionLeft:  core.ActionRight,
			core.ActionRight: core.ActionLeft,
		},
	}
}

// Press records a key press at now. Untracked actions are ignored.
func (h *HoldLatch) Press(a core.Action, now time.Time) {
	opp, ok := h.opposites[a]
	if !ok {
		return
	}
	h.last[a] = now
	delete(h.last, opp)
}

// Apply marks every action pressed within the window as held in frame and
// forgets the expired ones.
func (h *HoldLatch) Apply(frame *core.InputFrame, now time.Time) {
	for a, at := range h.last {
		if now.Sub(at) > h.window {
			delete(h.last, a)
			continue
		}
		frame.SetHeld(a)
	}
}

// Release drops every held action.
func (h *HoldLatch) Release() {
	clear(h.last)
}
