// Package tetris implements the falling-block puzzle. Sim holds the rules and
// runs headless; Game plugs it into the arcade registry.
package tetris

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/twin-arcade/internal/config"
	"github.com/vovakirdan/twin-arcade/internal/core"
)

// Progress is the scoring state shown on the HUD.
type Progress struct {
	Score        int
	Level        int
	Lines        int
	Combo        int // consecutive locks that cleared at least one row
	DropInterval int // milliseconds between gravity steps
}

// Sim is a single puzzle run.
type Sim struct {
	cfg        config.TetrisConfig
	rng        *rand.Rand
	flow       *core.Flow
	difficulty *config.DifficultyManager

	board    *Board
	bag      *Randomizer
	active   ActivePiece
	progress Progress

	dropCounter float64 // milliseconds since the last gravity step
	flash       float64 // seconds left on the level-up highlight
	lastClear   int
	pieces      int
	elapsed     float64
	ticks       uint64
}

// NewSim creates an idle puzzle with its first piece already dealt. rng
// drives the bag shuffle.
func NewSim(cfg config.TetrisConfig, rng *rand.Rand) *Sim {
	s := &Sim{
		cfg:        cfg,
		rng:        rng,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	s.flow = core.NewFlow(s.reset)
	s.reset()
	return s
}

func (s *Sim) reset() {
	s.board = NewBoard(s.cfg.Board.Cols, s.cfg.Board.Rows)
	s.bag = NewRandomizer(s.rng, s.cfg.QueueDepth)
	s.progress = Progress{Level: s.cfg.StartLevel}
	s.progress.DropInterval = DropInterval(s.cfg.Gravity, s.progress.Level)
	s.dropCounter = 0
	s.flash = 0
	s.lastClear = 0
	s.pieces = 0
	s.elapsed = 0
	s.ticks = 0
	s.spawn()
}

// DropInterval returns the gravity period in milliseconds for a level.
func DropInterval(g config.GravityConfig, level int) int {
	if g.LevelCap > 0 {
		level = min(level, g.LevelCap)
	}
	interval := int(math.Round(g.BaseMs * math.Pow(g.Factor, float64(level))))
	return max(g.MinMs, interval)
}

// Flow controls.

func (s *Sim) Start() bool       { return s.flow.Start() }
func (s *Sim) Pause() bool       { return s.flow.Pause() }
func (s *Sim) Resume() bool      { return s.flow.Resume() }
func (s *Sim) TogglePause() bool { return s.flow.TogglePause() }
func (s *Sim) Reset() bool       { return s.flow.Reset() }
func (s *Sim) Restart() bool     { return s.flow.Restart() }
func (s *Sim) Primary() bool     { return s.flow.Primary() }

// Status returns the flow state.
func (s *Sim) Status() core.Status { return s.flow.Status() }

// spawn deals the next piece. A piece that collides on entry ends the run.
func (s *Sim) spawn() {
	s.active = newActivePiece(s.bag.Next(), s.board.Cols)
	s.pieces++
	if s.board.Collide(s.active.Matrix, s.active.X, s.active.Y) {
		s.flow.End()
	}
}

func (s *Sim) fits(mat Matrix, x, y int) bool {
	return !s.board.Collide(mat, x, y)
}

// move shifts the active piece if the target is free.
func (s *Sim) move(dx, dy int) bool {
	if !s.fits(s.active.Matrix, s.active.X+dx, s.active.Y+dy) {
		return false
	}
	s.active.X += dx
	s.active.Y += dy
	return true
}

// MoveColumn shifts the piece sideways by dx columns.
func (s *Sim) MoveColumn(dx int) bool {
	if !s.flow.Running() {
		return false
	}
	return s.move(dx, 0)
}

// SoftDrop moves the piece down one row for a small score bonus. It never
// locks the piece.
func (s *Sim) SoftDrop() bool {
	if !s.flow.Running() || !s.move(0, 1) {
		return false
	}
	s.progress.Score += s.cfg.Scoring.SoftDrop
	return true
}

// HardDrop drops the piece as far as it goes, scores the distance and locks
// it. It returns the number of rows fallen.
func (s *Sim) HardDrop() int {
	if !s.flow.Running() {
		return 0
	}
	distance := 0
	for s.move(0, 1) {
		distance++
	}
	s.progress.Score += distance * s.cfg.Scoring.HardDrop
	s.lock()
	s.dropCounter = 0
	return distance
}

// Rotate turns the piece a quarter in dir, trying each kick offset in order.
// A rotation no offset can resolve leaves the piece untouched.
func (s *Sim) Rotate(dir int) bool {
	if !s.flow.Running() {
		return false
	}
	rotated := s.active.Matrix.Rotate(dir)
	for _, dx := range s.cfg.Kicks {
		if s.fits(rotated, s.active.X+dx, s.active.Y) {
			s.active.Matrix = rotated
			s.active.X += dx
			return true
		}
	}
	return false
}

// Tick advances the gravity timer by dt seconds.
func (s *Sim) Tick(dt float64) {
	if !s.flow.Running() {
		return
	}
	s.ticks++
	s.elapsed += dt
	s.flash = math.Max(0, s.flash-dt)

	s.dropCounter += dt * 1000
	if s.dropCounter > s.fallInterval() {
		s.step()
	}
}

// fallInterval is the level interval shortened by difficulty progression,
// when enabled.
func (s *Sim) fallInterval() float64 {
	base := float64(s.progress.DropInterval)
	speed := s.difficulty.Speed(1, s.progress.Score, s.elapsed)
	if speed <= 0 {
		return base
	}
	return base / speed
}

// step is one gravity step: fall a row or lock in place.
func (s *Sim) step() {
	if !s.move(0, 1) {
		s.lock()
	}
	s.dropCounter = 0
}

func (s *Sim) lock() {
	overflow := s.board.Merge(s.active)
	cleared := s.board.Sweep()
	s.lastClear = cleared
	s.score(cleared)

	if overflow {
		s.flow.End()
		return
	}
	s.spawn()
}

func (s *Sim) score(cleared int) {
	p := &s.progress
	if cleared == 0 {
		p.Combo = 0
		return
	}
	p.Combo++
	lines := s.cfg.Scoring.Lines
	points := lines[min(cleared, len(lines)-1)] * (p.Level + 1)
	if p.Combo > 1 {
		points += p.Combo * s.cfg.Scoring.ComboBonus
	}
	p.Score += points
	p.Lines += cleared

	level := max(s.cfg.StartLevel, p.Lines/s.cfg.Scoring.LinesPerLevel)
	if level != p.Level {
		p.Level = level
		p.DropInterval = DropInterval(s.cfg.Gravity, level)
		s.flash = s.cfg.LevelFlash
	}
}

// GhostY returns the row the active piece would land on.
func (s *Sim) GhostY() int {
	y := s.active.Y
	for s.fits(s.active.Matrix, s.active.X, y+1) {
		y++
	}
	return y
}

// Board returns a copy of the locked cells.
func (s *Sim) Board() [][]core.Color {
	return s.board.Clone()
}

// Queue returns the preview queue, head first.
func (s *Sim) Queue() []PieceKind {
	return s.bag.Queue()
}

// Active returns the falling piece.
func (s *Sim) Active() ActivePiece {
	return s.active
}

// Progress returns the scoring state.
func (s *Sim) Progress() Progress {
	return s.progress
}
