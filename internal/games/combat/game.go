package combat

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/twin-arcade/internal/config"
	"github.com/vovakirdan/twin-arcade/internal/core"
	"github.com/vovakirdan/twin-arcade/internal/registry"
)

func init() {
	registry.Register("combat", func() registry.Game {
		return New()
	})
}

// Game adapts Sim to the arcade registry.
type Game struct {
	sim       *Sim
	cfg       config.CombatConfig
	configErr error
}

// New creates a combat game with the built-in tuning. Call Reset before use.
func New() *Game {
	cfg := config.DefaultCombatConfig()
	return &Game{
		cfg: cfg,
		sim: NewSim(cfg, rand.New(rand.NewSource(0))),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "combat"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Contra Combat"
}

// Reset loads the tuning table and builds a fresh, idle simulation.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadCombat(rc.ConfigPath)
	g.configErr = err
	if err != nil {
		cfg = config.DefaultCombatConfig()
	}
	if preset, ok := config.ParsePreset(rc.Difficulty); ok {
		config.ApplyCombatPreset(&cfg, preset)
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

// Step maps one frame of input onto the simulation and ticks it.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	before := g.sim.Status()

	switch {
	case in.Has(core.ActionConfirm):
		g.sim.Primary()
	case in.Has(core.ActionPause):
		g.sim.TogglePause()
	case in.Has(core.ActionRestart):
		g.sim.Reset()
	}

	left := in.IsHeld(core.ActionLeft) || in.Has(core.ActionLeft)
	right := in.IsHeld(core.ActionRight) || in.Has(core.ActionRight)
	g.sim.SetMovementAxis(left, right)
	if in.Has(core.ActionUp) {
		g.sim.RequestJump()
	}
	if in.Has(core.ActionLight) {
		g.sim.QueueAttack(AttackLight)
	}
	if in.Has(core.ActionHeavy) {
		g.sim.QueueAttack(AttackHeavy)
	}
	if in.Has(core.ActionShoot) {
		g.sim.QueueShot()
	}

	g.sim.Tick(dt.Seconds())

	return core.StepResult{State: g.State(), Changed: g.sim.Status() != before}
}

// State returns the platform summary. Score is the number of landed hits.
func (g *Game) State() core.GameState {
	status := g.sim.Status()
	return core.GameState{
		Score:    g.sim.Hits(),
		Status:   status,
		GameOver: status == core.StatusOver,
		Paused:   status == core.StatusPaused,
	}
}
