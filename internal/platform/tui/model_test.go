package tui

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/twin-arcade/internal/core"
)

// recordingGame is a registry.Game that records what the host feeds it.
type recordingGame struct {
	flow   *core.Flow
	resets int
	frames []core.InputFrame
	deltas []time.Duration
}

func newRecordingGame() *recordingGame {
	return &recordingGame{flow: core.NewFlow(nil)}
}

func (g *recordingGame) ID() string               { return "recording" }
func (g *recordingGame) Title() string            { return "Recording" }
func (g *recordingGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *recordingGame) State() core.GameState    { return core.GameState{Status: g.flow.Status()} }

func (g *recordingGame) Render(dst *core.Screen) {
	dst.DrawTextColored(0, 0, g.flow.Status().String(), core.ColorDefault)
}

func (g *recordingGame) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	g.deltas = append(g.deltas, dt)
	before := g.flow.Status()
	if in.Has(core.ActionConfirm) {
		g.flow.Primary()
	}
	return core.StepResult{State: g.State(), Changed: g.flow.Status() != before}
}

func testModel(g *recordingGame) Model {
	cfg := core.RuntimeConfig{ScreenW: 20, ScreenH: 4, TickRate: 30, Seed: 1}
	return NewModel(g, cfg, log.New(io.Discard))
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelTickFeedsInput(t *testing.T) {
	g := newRecordingGame()
	m := testModel(g)
	m.Init()
	if g.resets != 1 {
		t.Fatalf("Init() reset the game %d times, expected 1", g.resets)
	}

	t0 := time.Now()
	m = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(m, TickMsg(t0))
	m = update(m, TickMsg(t0.Add(time.Second)))

	if len(g.frames) != 2 {
		t.Fatalf("game stepped %d times, expected 2", len(g.frames))
	}
	if !g.frames[0].Has(core.ActionConfirm) || g.frames[1].Has(core.ActionConfirm) {
		t.Error("a key press should reach exactly one frame")
	}
	if g.deltas[0] != 0 {
		t.Errorf("first delta = %v, expected 0", g.deltas[0])
	}
	if g.deltas[1] != core.DefaultMaxStep {
		t.Errorf("stalled delta = %v, expected %v", g.deltas[1], core.DefaultMaxStep)
	}
	if m.GameState().Status != core.StatusRunning {
		t.Errorf("status = %v, expected running", m.GameState().Status)
	}
}

func TestModelHeldMovement(t *testing.T) {
	g := newRecordingGame()
	m := testModel(g)

	m = update(m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(m, TickMsg(time.Now()))

	if !g.frames[0].IsHeld(core.ActionRight) {
		t.Error("a movement key should be latched as held")
	}
}

func TestModelBackOnlyWhenNotRunning(t *testing.T) {
	g := newRecordingGame()
	m := testModel(g)

	m = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(m, TickMsg(time.Now()))
	m = update(m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.BackToMenu() {
		t.Error("back should be ignored while running")
	}

	m = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(m, TickMsg(time.Now()))
	m = update(m, tea.KeyMsg{Type: tea.KeyEscape})
	if !m.BackToMenu() {
		t.Error("back should leave a paused game")
	}
}

func TestModelQuitAndView(t *testing.T) {
	g := newRecordingGame()
	m := testModel(g)

	if got := m.View(); got[:4] != "idle" {
		t.Errorf("View() = %q, expected the game's render", got)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil || !next.(Model).IsQuitting() {
		t.Error("ctrl+c should quit")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := newRecordingGame()
	m := testModel(g)
	m.Init()

	m = update(m, tea.WindowSizeMsg{Width: 40, Height: 10})
	if g.resets != 1 {
		t.Errorf("resize reset the game, resets = %d", g.resets)
	}
	if m.screen.Width() != 40 || m.screen.Height() != 10 {
		t.Errorf("screen = %dx%d, expected 40x10", m.screen.Width(), m.screen.Height())
	}
}
