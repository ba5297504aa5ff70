package tetris

import (
	"fmt"

	"github.com/vovakirdan/twin-arcade/internal/core"
)

const (
	cellWidth     = 2 // terminal columns per board cell
	panelGap      = 3
	blockRune     = '█'
	ghostRune     = '░'
	emptyRune     = '·'
	separatorRune = '┊'
	panelWidth    = 16
)

// Render draws the current snapshot.
func (g *Game) Render(dst *core.Screen) {
	snap := g.sim.Snapshot()
	drawSnapshot(dst, snap, snap.HUD())
}

func drawSnapshot(dst *core.Screen, snap Snapshot, hud HUD) {
	rows := len(snap.Board)
	cols := 0
	if rows > 0 {
		cols = len(snap.Board[0])
	}

	boardW := cols*cellWidth + 2
	totalW := boardW + panelGap + panelWidth
	left := max(0, (dst.Width()-totalW)/2)
	top := 1

	dst.DrawTextColored(left, 0, "TETRIS", core.ColorBrightWhite)
	dst.DrawTextColored(left+boardW-len(hud.StatusLabel), 0, hud.StatusLabel, statusColor(hud.Status))

	frame := core.NewRect(left, top, boardW, rows+2)
	dst.DrawBoxColored(frame, core.ColorGray)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			drawCell(dst, left, top, x, y, emptyRune, core.ColorGray)
			if c := snap.Board[y][x]; c != core.ColorDefault {
				drawCell(dst, left, top, x, y, blockRune, c)
			}
		}
	}

	if snap.Status != core.StatusIdle {
		drawPiece(dst, left, top, snap.Active, snap.GhostY, ghostRune, snap.Active.Color())
		drawPiece(dst, left, top, snap.Active, snap.Active.Y, blockRune, snap.Active.Color())
	}

	dst.DrawVLine(left+boardW+panelGap/2, top, rows+2, separatorRune, core.ColorGray)
	drawPanel(dst, left+boardW+panelGap, top, hud)

	if hud.Title != "" {
		mid := top + rows/2
		drawCentered(dst, left, boardW, mid, hud.Title, core.ColorBrightWhite)
		drawCentered(dst, left, boardW, mid+1, hud.Subtitle, core.ColorGray)
	}

	footer := "←/→ move  ↑/X rotate  Z ccw  ↓ soft  Space hard  Enter start/pause  R restart"
	dst.DrawTextColored(0, dst.Height()-1, footer, core.ColorGray)
}

// drawCell paints one board cell; cells above the board are skipped.
func drawCell(dst *core.Screen, left, top, x, y int, r rune, c core.Color) {
	if y < 0 {
		return
	}
	sx := left + 1 + x*cellWidth
	sy := top + 1 + y
	for i := 0; i < cellWidth; i++ {
		dst.SetColored(sx+i, sy, r, c)
	}
}

func drawPiece(dst *core.Screen, left, top int, p ActivePiece, y int, r rune, c core.Color) {
	for my := range p.Matrix {
		for mx := range p.Matrix[my] {
			if p.Matrix[my][mx] {
				drawCell(dst, left, top, p.X+mx, y+my, r, c)
			}
		}
	}
}

func drawPanel(dst *core.Screen, x, y int, hud HUD) {
	levelColor := core.ColorWhite
	if hud.LevelUp {
		levelColor = core.ColorBrightYellow
	}
	lines := []struct {
		text  string
		color core.Color
	}{
		{fmt.Sprintf("Score  %d", hud.Score), core.ColorBrightWhite},
		{fmt.Sprintf("Level  %d", hud.Level), levelColor},
		{fmt.Sprintf("Lines  %d", hud.Lines), core.ColorWhite},
		{fmt.Sprintf("Speed  %s", hud.Speed), core.ColorWhite},
		{fmt.Sprintf("Combo  %d", hud.Combo), core.ColorWhite},
	}
	for i, l := range lines {
		dst.DrawTextColored(x, y+i, l.text, l.color)
	}

	y += len(lines) + 1
	dst.DrawTextColored(x, y, "Next", core.ColorGray)
	y++
	for _, kind := range hud.Next {
		drawPreview(dst, x, y, kind)
		y += 3
	}
}

// drawPreview draws the top two rows of a piece's spawn matrix, which hold
// every cell of every spawn orientation.
func drawPreview(dst *core.Screen, x, y int, kind PieceKind) {
	mat := Pieces[kind].Matrix
	for my := 0; my < 2; my++ {
		for mx := range mat[my] {
			if !mat[my][mx] {
				continue
			}
			for i := 0; i < cellWidth; i++ {
				dst.SetColored(x+mx*cellWidth+i, y+my, blockRune, kind.Color())
			}
		}
	}
}

func drawCentered(dst *core.Screen, left, width, y int, text string, c core.Color) {
	x := left + max(0, (width-len([]rune(text)))/2)
	dst.DrawTextColored(x, y, text, c)
}

func statusColor(s core.Status) core.Color {
	switch s {
	case core.StatusRunning:
		return core.ColorBrightGreen
	case core.StatusPaused:
		return core.ColorYellow
	case core.StatusOver:
		return core.ColorBrightRed
	default:
		return core.ColorGray
	}
}
