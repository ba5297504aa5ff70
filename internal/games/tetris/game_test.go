package tetris

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/twin-arcade/internal/core"
	"github.com/vovakirdan/twin-arcade/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: seed}
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists("tetris") {
		t.Fatal("tetris is not registered")
	}
	g, err := registry.Create("tetris")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.Title() != "Tetris" {
		t.Errorf("Title() = %q, expected Tetris", g.Title())
	}
}

func TestGameFlowKeys(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	res := g.Step(press(core.ActionConfirm), 0)
	if res.State.Status != core.StatusRunning || !res.Changed {
		t.Fatalf("Confirm: status = %v changed = %v", res.State.Status, res.Changed)
	}

	res = g.Step(press(core.ActionPause), 16*time.Millisecond)
	if !res.State.Paused {
		t.Errorf("Pause: state = %+v", res.State)
	}

	res = g.Step(press(core.ActionRestart), 16*time.Millisecond)
	if res.State.Status != core.StatusRunning {
		t.Errorf("Restart: status = %v, expected running", res.State.Status)
	}
}

func TestGameCommands(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.Step(press(core.ActionConfirm), 0)

	x := g.Sim().Active().X
	g.Step(press(core.ActionLeft), 0)
	if got := g.Sim().Active().X; got != x-1 {
		t.Errorf("Left: x = %d, expected %d", got, x-1)
	}
	g.Step(press(core.ActionRight), 0)
	g.Step(press(core.ActionRight), 0)
	if got := g.Sim().Active().X; got != x+1 {
		t.Errorf("Right: x = %d, expected %d", got, x+1)
	}

	g.Step(press(core.ActionDown), 0)
	if g.State().Score != 1 {
		t.Errorf("Down: score = %d, expected 1", g.State().Score)
	}

	g.Step(press(core.ActionDrop), 0)
	if g.Sim().Snapshot().Pieces != 2 {
		t.Error("Drop did not lock the piece")
	}
}

func TestGameRotateKeys(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.Step(press(core.ActionConfirm), 0)
	g.Sim().active = ActivePiece{Kind: PieceT, Matrix: Pieces[PieceT].Matrix, X: 3, Y: 4}

	g.Step(press(core.ActionRotateCW), 0)
	if g.Sim().Active().Matrix != Pieces[PieceT].Matrix.Rotate(1) {
		t.Error("RotateCW did not turn the piece clockwise")
	}
	g.Step(press(core.ActionRotateCCW), 0)
	if g.Sim().Active().Matrix != Pieces[PieceT].Matrix {
		t.Error("RotateCCW did not undo the turn")
	}
	g.Step(press(core.ActionUp), 0)
	if g.Sim().Active().Matrix != Pieces[PieceT].Matrix.Rotate(1) {
		t.Error("Up should rotate clockwise")
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"TETRIS", "IDLE", "Press Enter", "Next", "1000ms", string(separatorRune)} {
		if !strings.Contains(out, want) {
			t.Errorf("idle render missing %q", want)
		}
	}

	g.Step(press(core.ActionConfirm), 0)
	screen.Clear()
	g.Render(screen)
	out = screen.String()
	if strings.Contains(out, "Press Enter") {
		t.Error("running render still shows the overlay")
	}
	if !strings.Contains(out, string(blockRune)) {
		t.Error("running render has no piece")
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() uint64 {
		g := New()
		g.Reset(testRuntime(11))
		g.Step(press(core.ActionConfirm), 0)
		for i := 0; i < 300; i++ {
			in := core.NewInputFrame()
			if i%9 == 0 {
				in.Set(core.ActionDrop)
			}
			if i%4 == 1 {
				in.Set(core.ActionLeft)
			}
			g.Step(in, 33*time.Millisecond)
		}
		return g.Sim().Snapshot().Hash()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("same seed produced different games: %x != %x", a, b)
	}
}
