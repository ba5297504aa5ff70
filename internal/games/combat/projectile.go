package combat

import (
	"github.com/vovakirdan/twin-arcade/internal/config"
)

// Projectile is a blaster shot. Owner is the side that fired it.
type Projectile struct {
	Owner  Side
	X, Y   float64
	Dir    float64
	Speed  float64
	Damage float64
	Life   float64
}

// newProjectile spawns a shot at the muzzle of f.
func newProjectile(f *Fighter, cfg config.ProjectileConfig) Projectile {
	offset := -cfg.MuzzleGap
	if f.Facing == 1 {
		offset = f.Width + cfg.MuzzleGap
	}
	return Projectile{
		Owner:  f.Side,
		X:      f.Pos.X + offset,
		Y:      f.Pos.Y + f.Height*cfg.HeightRatio,
		Dir:    f.Facing,
		Speed:  cfg.Speed,
		Damage: cfg.Damage,
		Life:   cfg.Life,
	}
}

// advanceProjectiles moves every shot and drops expired or off-arena ones.
// The slice is filtered in place.
func advanceProjectiles(shots []Projectile, dt float64, arena config.ArenaConfig) []Projectile {
	kept := shots[:0]
	for _, p := range shots {
		p.X += p.Speed * p.Dir * dt
		p.Life -= dt
		if p.Life > 0 && p.X > -arena.CullMargin && p.X < arena.Width+arena.CullMargin {
			kept = append(kept, p)
		}
	}
	return kept
}
