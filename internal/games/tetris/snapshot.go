package tetris

import (
	"fmt"
	"hash/fnv"
	"math"

	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/twin-arcade/internal/core"
)

// Snapshot is a detached copy of the puzzle state.
type Snapshot struct {
	Status    core.Status
	Tick      uint64
	Board     [][]core.Color
	Active    ActivePiece
	GhostY    int
	Queue     []PieceKind
	Progress  Progress
	LastClear int
	Pieces    int
	Flash     float64
	Fall      float64 // effective gravity interval in ms
}

// Snapshot copies the current state.
func (s *Sim) Snapshot() Snapshot {
	return Snapshot{
		Status:    s.flow.Status(),
		Tick:      s.ticks,
		Board:     s.board.Clone(),
		Active:    s.active,
		GhostY:    s.GhostY(),
		Queue:     s.bag.Queue(),
		Progress:  s.progress,
		LastClear: s.lastClear,
		Pieces:    s.pieces,
		Flash:     s.flash,
		Fall:      s.fallInterval(),
	}
}

// HUD is the per-frame display summary.
type HUD struct {
	Score       int
	Level       int
	Lines       int
	Combo       int
	Speed       string // fall interval, e.g. "1000ms"
	LevelUp     bool
	Next        []PieceKind
	Status      core.Status
	StatusLabel string
	Title       string // overlay title, empty while running
	Subtitle    string
}

// previewSlots is how many queued pieces the HUD shows.
const previewSlots = 3

// HUD derives the display values from the current state.
func (s *Sim) HUD() HUD {
	return s.Snapshot().HUD()
}

// HUD derives display values from a snapshot.
func (snap Snapshot) HUD() HUD {
	p := snap.Progress
	h := HUD{
		Score:   p.Score,
		Level:   p.Level,
		Lines:   p.Lines,
		Combo:   p.Combo,
		Speed:   fmt.Sprintf("%dms", int(math.Round(snap.Fall))),
		LevelUp: snap.Flash > 0,
		Next:    snap.Queue[:min(previewSlots, len(snap.Queue))],
		Status:  snap.Status,
	}

	switch snap.Status {
	case core.StatusIdle:
		h.StatusLabel = "IDLE"
		h.Title = "Press Enter"
		h.Subtitle = "Start the run and chase the tempo."
	case core.StatusRunning:
		h.StatusLabel = "RUNNING"
	case core.StatusPaused:
		h.StatusLabel = "PAUSED"
		h.Title = "Paused"
		h.Subtitle = "Take a breath, then press Enter to resume."
	case core.StatusOver:
		h.StatusLabel = "GAME OVER"
		h.Title = "Run Over"
		h.Subtitle = "Final score: " + humanize.Comma(int64(p.Score))
	}
	return h
}

// Hash fingerprints the snapshot for determinism tests.
func (snap Snapshot) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "S:%d;T:%d;", snap.Status, snap.Tick)
	for _, row := range snap.Board {
		for _, c := range row {
			fmt.Fprintf(h, "%d,", c)
		}
	}
	a := snap.Active
	fmt.Fprintf(h, "A:%d,%d,%d,%v;", a.Kind, a.X, a.Y, a.Matrix)
	fmt.Fprintf(h, "Q:%v;P:%+v;N:%d", snap.Queue, snap.Progress, snap.Pieces)
	return h.Sum64()
}
