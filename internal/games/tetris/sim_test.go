package tetris

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/twin-arcade/internal/config"
	"github.com/vovakirdan/twin-arcade/internal/core"
)

func newTestSim(seed int64) *Sim {
	return NewSim(config.DefaultTetrisConfig(), rand.New(rand.NewSource(seed)))
}

// running returns a started sim with the given piece placed at (x, y).
func running(kind PieceKind, x, y int) *Sim {
	s := newTestSim(1)
	s.Start()
	s.active = ActivePiece{Kind: kind, Matrix: Pieces[kind].Matrix, X: x, Y: y}
	return s
}

func TestNewSimIsIdle(t *testing.T) {
	s := newTestSim(1)
	snap := s.Snapshot()

	if snap.Status != core.StatusIdle {
		t.Errorf("Status = %v, expected idle", snap.Status)
	}
	if snap.Active.X != 3 || snap.Active.Y != -1 {
		t.Errorf("spawn = (%d,%d), expected (3,-1)", snap.Active.X, snap.Active.Y)
	}
	if len(snap.Queue) != 5 {
		t.Errorf("queue length = %d, expected 5", len(snap.Queue))
	}
	if snap.Progress.DropInterval != 1000 {
		t.Errorf("DropInterval = %d, expected 1000", snap.Progress.DropInterval)
	}
}

func TestDropInterval(t *testing.T) {
	g := config.DefaultTetrisConfig().Gravity
	tests := []struct {
		level  int
		expect int
	}{
		{0, 1000},
		{1, 880},
		{2, 774},
		{10, 279},
		{30, 90},
	}
	for _, tt := range tests {
		if got := DropInterval(g, tt.level); got != tt.expect {
			t.Errorf("DropInterval(%d) = %d, expected %d", tt.level, got, tt.expect)
		}
	}

	g.LevelCap = 1
	if got := DropInterval(g, 10); got != 880 {
		t.Errorf("capped DropInterval(10) = %d, expected 880", got)
	}
}

func TestORejectsMovePastRightWall(t *testing.T) {
	s := running(PieceO, 3, -1)

	for s.MoveColumn(1) {
	}
	a := s.Active()
	if a.X != 7 {
		t.Fatalf("O stopped at x = %d, expected 7 (cells in columns 8-9)", a.X)
	}
	if s.MoveColumn(1) {
		t.Error("MoveColumn(1) at column 9 should be rejected")
	}
	if s.Active() != a {
		t.Error("rejected move changed the piece")
	}
}

func TestTwoLineClearScoring(t *testing.T) {
	s := running(PieceO, 3, -1)
	fillRow(s.board, 18, 4, 5)
	fillRow(s.board, 19, 4, 5)

	dist := s.HardDrop()
	p := s.Progress()
	if got := p.Score - dist*2; got != 300 {
		t.Errorf("first double scored %d, expected 300", got)
	}
	if p.Lines != 2 || p.Combo != 1 {
		t.Errorf("lines = %d combo = %d, expected 2/1", p.Lines, p.Combo)
	}

	before := p.Score
	s.active = ActivePiece{Kind: PieceO, Matrix: Pieces[PieceO].Matrix, X: 3, Y: -1}
	fillRow(s.board, 18, 4, 5)
	fillRow(s.board, 19, 4, 5)

	dist = s.HardDrop()
	if got := s.Progress().Score - before - dist*2; got != 350 {
		t.Errorf("second double scored %d, expected 350", got)
	}
	if s.Progress().Combo != 2 {
		t.Errorf("combo = %d, expected 2", s.Progress().Combo)
	}
}

func TestLockWithoutClearResetsCombo(t *testing.T) {
	s := running(PieceO, 3, -1)
	s.progress.Combo = 3

	s.HardDrop()
	if s.Progress().Combo != 0 {
		t.Errorf("combo = %d after an empty lock, expected 0", s.Progress().Combo)
	}
	if s.Snapshot().LastClear != 0 {
		t.Errorf("LastClear = %d, expected 0", s.Snapshot().LastClear)
	}
}

func TestLevelUp(t *testing.T) {
	s := running(PieceI, 3, -1)
	s.progress.Lines = 9
	fillRow(s.board, 19, 3, 4, 5, 6)

	s.HardDrop()
	p := s.Progress()
	if p.Level != 1 || p.Lines != 10 {
		t.Fatalf("level = %d lines = %d, expected 1/10", p.Level, p.Lines)
	}
	if p.DropInterval != 880 {
		t.Errorf("DropInterval = %d, expected 880", p.DropInterval)
	}
	if !s.HUD().LevelUp {
		t.Error("HUD should flash after a level-up")
	}

	s.Tick(0.7)
	if s.HUD().LevelUp {
		t.Error("level-up flash should fade")
	}
}

func TestStartLevelIsFloor(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.StartLevel = 5
	s := NewSim(cfg, rand.New(rand.NewSource(1)))
	s.Start()
	s.active = ActivePiece{Kind: PieceI, Matrix: Pieces[PieceI].Matrix, X: 3, Y: -1}
	fillRow(s.board, 19, 3, 4, 5, 6)

	s.HardDrop()
	p := s.Progress()
	if p.Level != 5 {
		t.Errorf("level = %d, expected to stay at start level 5", p.Level)
	}
	// 100 x (5+1) plus the hard drop
	if p.Score < 600 {
		t.Errorf("score = %d, expected the level multiplier", p.Score)
	}
}

func TestSoftDrop(t *testing.T) {
	s := running(PieceO, 3, -1)

	if !s.SoftDrop() {
		t.Fatal("SoftDrop() on an open board failed")
	}
	if s.Active().Y != 0 || s.Progress().Score != 1 {
		t.Errorf("after SoftDrop y = %d score = %d, expected 0/1", s.Active().Y, s.Progress().Score)
	}

	s.active.Y = 18
	if s.SoftDrop() {
		t.Error("SoftDrop() on the floor should fail")
	}
	if s.Snapshot().Pieces != 1 {
		t.Error("SoftDrop() must not lock the piece")
	}
	if s.Progress().Score != 1 {
		t.Errorf("blocked SoftDrop() scored, score = %d", s.Progress().Score)
	}
}

func TestHardDropScoresTwoPerRow(t *testing.T) {
	s := running(PieceO, 3, -1)

	dist := s.HardDrop()
	if dist != 19 {
		t.Errorf("HardDrop() = %d rows, expected 19", dist)
	}
	if s.Progress().Score != 38 {
		t.Errorf("score = %d, expected 38", s.Progress().Score)
	}
	if !s.board.Filled(4, 19) || !s.board.Filled(5, 18) {
		t.Error("hard drop did not lock the piece on the floor")
	}
	if s.Snapshot().Pieces != 2 {
		t.Errorf("pieces = %d, expected a new piece after lock", s.Snapshot().Pieces)
	}
}

func TestGravity(t *testing.T) {
	s := running(PieceO, 3, -1)

	s.Tick(0.5)
	s.Tick(0.5)
	if s.Active().Y != -1 {
		t.Fatalf("piece fell at exactly the interval, y = %d", s.Active().Y)
	}
	s.Tick(0.001)
	if s.Active().Y != 0 {
		t.Errorf("piece should fall once the interval is exceeded, y = %d", s.Active().Y)
	}
	if s.dropCounter != 0 {
		t.Errorf("drop counter = %v after a step, expected 0", s.dropCounter)
	}
}

func TestGravityLocksOnFloor(t *testing.T) {
	s := running(PieceO, 3, 18)

	s.Tick(1.01)
	if !s.board.Filled(4, 19) {
		t.Error("gravity on the floor should lock the piece")
	}
	if s.Active().Y != -1 {
		t.Errorf("next piece y = %d, expected spawn row -1", s.Active().Y)
	}
}

func TestRotateKicksOffLeftWall(t *testing.T) {
	vertical := Pieces[PieceI].Matrix.Rotate(1)
	s := running(PieceI, -2, 5)
	s.active.Matrix = vertical

	if !s.Rotate(1) {
		t.Fatal("Rotate() against the left wall should kick")
	}
	a := s.Active()
	if a.X != 0 {
		t.Errorf("kicked x = %d, expected 0", a.X)
	}
	if a.Matrix != vertical.Rotate(1) {
		t.Error("matrix was not rotated")
	}
	if s.board.Collide(a.Matrix, a.X, a.Y) {
		t.Error("kicked piece overlaps")
	}
}

func TestRotateBlockedRestoresPiece(t *testing.T) {
	s := running(PieceI, -2, 5)
	s.active.Matrix = Pieces[PieceI].Matrix.Rotate(1)
	for y := 0; y < s.board.Rows; y++ {
		fillRow(s.board, y, 0)
	}
	before := s.Active()

	if s.Rotate(1) {
		t.Fatal("Rotate() with no free offset should fail")
	}
	if s.Active() != before {
		t.Errorf("piece changed after a rejected rotation: %+v -> %+v", before, s.Active())
	}
}

func TestOverflowEndsRun(t *testing.T) {
	s := running(PieceO, 3, -1)
	for y := 1; y < s.board.Rows; y++ {
		s.board.Cells[y][4] = core.ColorRed
		s.board.Cells[y][5] = core.ColorRed
	}

	s.HardDrop()
	if s.Status() != core.StatusOver {
		t.Errorf("status = %v after locking above the top, expected over", s.Status())
	}
	if s.Snapshot().Pieces != 1 {
		t.Error("no piece should spawn after overflow")
	}
}

func TestSpawnCollisionEndsRun(t *testing.T) {
	s := running(PieceO, 3, -1)
	fillRow(s.board, 0, 0)

	s.spawn()
	if s.Status() != core.StatusOver {
		t.Errorf("status = %v after a blocked spawn, expected over", s.Status())
	}
}

func TestInputIgnoredUnlessRunning(t *testing.T) {
	s := newTestSim(1)
	before := s.Snapshot().Hash()

	check := func(label string) {
		t.Helper()
		if s.MoveColumn(1) || s.SoftDrop() || s.Rotate(1) || s.HardDrop() != 0 {
			t.Errorf("%s: input accepted", label)
		}
		s.Tick(2)
	}

	check("idle")
	if s.Snapshot().Hash() != before {
		t.Error("idle sim changed")
	}

	s.Start()
	s.Pause()
	paused := s.Snapshot().Hash()
	check("paused")
	if s.Snapshot().Hash() != paused {
		t.Error("paused sim changed")
	}
}

func TestPauseResumeIdempotent(t *testing.T) {
	s := newTestSim(1)
	s.Start()
	s.Tick(0.1)

	if !s.Pause() {
		t.Fatal("Pause() while running failed")
	}
	h := s.Snapshot().Hash()
	if s.Pause() {
		t.Error("Pause() while paused reported a transition")
	}
	if s.Snapshot().Hash() != h {
		t.Error("second Pause() changed state")
	}

	s.Resume()
	if s.Resume() {
		t.Error("Resume() while running reported a transition")
	}
}

func TestResetAndRestart(t *testing.T) {
	s := running(PieceO, 3, -1)
	s.HardDrop()

	s.Reset()
	snap := s.Snapshot()
	if snap.Status != core.StatusIdle || snap.Progress.Score != 0 || snap.Pieces != 1 {
		t.Errorf("after Reset: %+v", snap.Progress)
	}
	for _, row := range snap.Board {
		for _, c := range row {
			if c != core.ColorDefault {
				t.Fatal("Reset() left locked cells")
			}
		}
	}

	s.Start()
	s.Tick(0.1)
	s.Pause()
	if !s.Restart() || s.Status() != core.StatusRunning {
		t.Errorf("Restart() from paused: status = %v", s.Status())
	}
	if s.Snapshot().Tick != 0 {
		t.Error("Restart() did not reset the tick counter")
	}
}

func TestGhostY(t *testing.T) {
	s := running(PieceO, 3, -1)
	if got := s.GhostY(); got != 18 {
		t.Errorf("GhostY() on an empty board = %d, expected 18", got)
	}
	s.board.Cells[10][4] = core.ColorRed
	if got := s.GhostY(); got != 8 {
		t.Errorf("GhostY() over a block = %d, expected 8", got)
	}
}

func TestHUDSpeedFollowsDifficulty(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.Difficulty = config.DifficultyConfig{
		Enabled:     true,
		Progression: config.ProgressionConfig{Type: "time", MaxAt: 10},
		Scaling:     config.ScalingConfig{SpeedMultiplier: 1},
	}
	s := NewSim(cfg, rand.New(rand.NewSource(1)))
	s.Start()

	if got := s.HUD().Speed; got != "1000ms" {
		t.Errorf("Speed at start = %q, expected 1000ms", got)
	}
	s.elapsed = 10
	if got := s.HUD().Speed; got != "500ms" {
		t.Errorf("Speed at full difficulty = %q, expected 500ms", got)
	}
	if s.Snapshot().Progress.DropInterval != 1000 {
		t.Error("difficulty should not change the level interval")
	}
}

func TestHUDOverlay(t *testing.T) {
	s := newTestSim(1)
	hud := s.HUD()
	if hud.StatusLabel != "IDLE" || hud.Title != "Press Enter" {
		t.Errorf("idle HUD = %+v", hud)
	}
	if len(hud.Next) != 3 || hud.Speed != "1000ms" {
		t.Errorf("idle HUD next = %v speed = %q", hud.Next, hud.Speed)
	}

	s.Start()
	if hud := s.HUD(); hud.Title != "" || hud.StatusLabel != "RUNNING" {
		t.Errorf("running HUD = %+v", hud)
	}

	s.progress.Score = 12345
	s.active = ActivePiece{Kind: PieceO, Matrix: Pieces[PieceO].Matrix, X: 3, Y: -1}
	s.board.Cells[1][4] = core.ColorRed
	s.HardDrop()
	hud = s.HUD()
	if hud.StatusLabel != "GAME OVER" || hud.Subtitle != "Final score: 12,345" {
		t.Errorf("over HUD = %+v", hud)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() uint64 {
		s := newTestSim(7)
		s.Start()
		for i := 0; i < 400; i++ {
			switch i % 5 {
			case 0:
				s.MoveColumn(-1)
			case 1:
				s.Rotate(1)
			case 3:
				s.MoveColumn(1)
			}
			if i%17 == 0 {
				s.HardDrop()
			}
			s.Tick(1.0 / 30)
		}
		return s.Snapshot().Hash()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("same seed produced different states: %x != %x", a, b)
	}
}
