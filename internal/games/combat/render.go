package combat

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/twin-arcade/internal/core"
)

// Visual characters for rendering.
const (
	BodyChar    = '█'
	BlinkChar   = '▒'
	GroundChar  = '═'
	ShotChar    = '•'
	SparkChar   = '*'
	SwingChar   = '~'
	ComboSwing  = '≈'
	healthWidth = 20
	shakeCell   = 10 // shake units per cell of jitter
)

// Render draws the current snapshot.
func (g *Game) Render(dst *core.Screen) {
	snap := g.sim.Snapshot()
	drawSnapshot(dst, snap, snap.HUD(g.cfg.Fighter.MaxHealth))
}

// viewport maps world coordinates onto the screen rows between the HUD and
// the footer, shifted by the shake jitter.
type viewport struct {
	top    int
	dx     int
	sx, sy float64
}

func newViewport(dst *core.Screen, snap Snapshot) viewport {
	rows := max(dst.Height()-4, 1)
	dx, dy := shakeOffset(snap)
	return viewport{
		top: 2 + dy,
		dx:  dx,
		sx:  float64(dst.Width()) / snap.Arena.Width,
		sy:  float64(rows) / snap.Arena.Height,
	}
}

// shakeOffset turns the shake amount into a cell offset. The direction
// alternates with the tick so the same snapshot always draws the same way.
func shakeOffset(snap Snapshot) (dx, dy int) {
	if snap.Shake <= 0 {
		return 0, 0
	}
	dx = int(math.Ceil(snap.Shake / shakeCell))
	if snap.Tick%2 == 1 {
		dx = -dx
	}
	if snap.Tick/2%2 == 1 {
		dy = 1
	}
	return dx, dy
}

func (v viewport) rect(x, y, w, h float64) core.Rect {
	left := v.dx + int(math.Floor(x*v.sx))
	top := v.top + int(math.Floor(y*v.sy))
	return core.NewRect(left, top, max(1, int(math.Round(w*v.sx))), max(1, int(math.Round(h*v.sy))))
}

func (v viewport) point(x, y float64) (int, int) {
	return v.dx + int(math.Floor(x*v.sx)), v.top + int(math.Floor(y*v.sy))
}

func drawSnapshot(dst *core.Screen, snap Snapshot, hud HUD) {
	v := newViewport(dst, snap)

	drawHUD(dst, hud)

	_, groundRow := v.point(0, snap.Arena.GroundY)
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorGray)

	drawFighter(dst, v, &snap.Player, core.ColorBrightGreen)
	drawFighter(dst, v, &snap.Enemy, core.ColorBrightRed)

	for _, p := range snap.Projectiles {
		x, y := v.point(p.X, p.Y)
		color := core.ColorYellow
		if p.Owner == SideEnemy {
			color = core.ColorOrange
		}
		dst.SetColored(x, y, ShotChar, color)
	}
	for _, fx := range snap.Effects {
		x, y := v.point(fx.X, fx.Y)
		dst.SetColored(x, y, SparkChar, core.ColorBrightYellow)
	}

	if hud.Title != "" {
		mid := dst.Height() / 2
		dst.DrawTextCenteredColored(mid-1, hud.Title, core.ColorBrightWhite)
		dst.DrawTextCenteredColored(mid, hud.Subtitle, core.ColorGray)
	}

	footer := "←/→ move  ↑ jump  J light  K heavy  L blaster  Enter start/pause  R reset"
	dst.DrawTextColored(0, dst.Height()-1, footer, core.ColorGray)
}

func drawFighter(dst *core.Screen, v viewport, f *Fighter, color core.Color) {
	body := v.rect(f.Pos.X, f.Pos.Y, f.Width, f.Height)
	ch := BodyChar
	if f.Blink > 0 {
		ch = BlinkChar
	}
	dst.DrawRectColored(body, ch, color)

	// eye on the facing side
	eye := body.X
	if f.Facing > 0 {
		eye = body.Right() - 1
	}
	dst.SetColored(eye, body.Y, '◆', core.ColorBrightWhite)

	if f.Attack == nil {
		return
	}
	swing, swingColor := SwingChar, core.ColorYellow
	if f.Attack.ComboName != "" {
		swing, swingColor = ComboSwing, core.ColorBrightMagenta
	}
	reach := max(1, int(math.Round(f.Attack.Reach*v.sx))-body.W/2)
	row := body.Y + body.H/2
	for i := 0; i < reach; i++ {
		x := body.Right() + i
		if f.Facing < 0 {
			x = body.X - 1 - i
		}
		dst.SetColored(x, row, swing, swingColor)
	}
}

func drawHUD(dst *core.Screen, hud HUD) {
	left := fmt.Sprintf("P1 %s %3d", healthBar(hud.PlayerHealthPct), hud.PlayerHP)
	right := fmt.Sprintf("%3d %s CPU", hud.EnemyHP, healthBar(hud.EnemyHealthPct))
	dst.DrawTextColored(0, 0, left, core.ColorBrightGreen)
	dst.DrawTextColored(dst.Width()-len([]rune(right)), 0, right, core.ColorBrightRed)

	combo := fmt.Sprintf("[%s] x%d %s", hud.StatusLabel, hud.ComboCount, hud.ComboLabel)
	dst.DrawTextCenteredColored(1, combo, core.ColorBrightYellow)
}

func healthBar(pct float64) string {
	filled := int(math.Round(core.ClampF(pct, 0, 100) / 100 * healthWidth))
	return strings.Repeat("█", filled) + strings.Repeat("░", healthWidth-filled)
}
