package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/twin-arcade/internal/config"
	"github.com/vovakirdan/twin-arcade/internal/core"
	"github.com/vovakirdan/twin-arcade/internal/registry"
)

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// Game adapts Sim to the arcade registry.
type Game struct {
	sim       *Sim
	cfg       config.TetrisConfig
	configErr error
}

// New creates a puzzle game with the built-in table. Call Reset before use.
func New() *Game {
	cfg := config.DefaultTetrisConfig()
	return &Game{
		cfg: cfg,
		sim: NewSim(cfg, rand.New(rand.NewSource(0))),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset loads the table, applies the difficulty preset and deals a new idle
// board.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadTetris(rc.ConfigPath)
	g.configErr = err
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	if preset, ok := config.ParsePreset(rc.Difficulty); ok {
		config.ApplyTetrisPreset(&cfg, preset)
	}
	g.cfg = cfg
	g.sim = NewSim(cfg, rand.New(rand.NewSource(rc.Seed)))
}

// ConfigErr returns the error from the last config load, if any.
func (g *Game) ConfigErr() error {
	return g.configErr
}

// Sim exposes the underlying simulation.
func (g *Game) Sim() *Sim {
	return g.sim
}

// Step applies one frame of commands, then runs gravity.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	before := g.sim.Status()

	switch {
	case in.Has(core.ActionConfirm):
		g.sim.Primary()
	case in.Has(core.ActionPause):
		g.sim.TogglePause()
	case in.Has(core.ActionRestart):
		g.sim.Restart()
	}

	if in.Has(core.ActionLeft) {
		g.sim.MoveColumn(-1)
	}
	if in.Has(core.ActionRight) {
		g.sim.MoveColumn(1)
	}
	if in.Has(core.ActionUp) || in.Has(core.ActionRotateCW) {
		g.sim.Rotate(1)
	}
	if in.Has(core.ActionRotateCCW) {
		g.sim.Rotate(-1)
	}
	if in.Has(core.ActionDown) {
		g.sim.SoftDrop()
	}
	if in.Has(core.ActionDrop) {
		g.sim.HardDrop()
	}

	g.sim.Tick(dt.Seconds())

	return core.StepResult{State: g.State(), Changed: g.sim.Status() != before}
}

// State returns the platform summary.
func (g *Game) State() core.GameState {
	status := g.sim.Status()
	return core.GameState{
		Score:    g.sim.Progress().Score,
		Status:   status,
		GameOver: status == core.StatusOver,
		Paused:   status == core.StatusPaused,
	}
}
