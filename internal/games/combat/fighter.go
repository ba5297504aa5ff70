package combat

import (
	"github.com/vovakirdan/twin-arcade/internal/config"
	"github.com/vovakirdan/twin-arcade/internal/core"
)

// Side identifies one of the two fighters.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SidePlayer {
		return SideEnemy
	}
	return SidePlayer
}

func (s Side) String() string {
	if s == SidePlayer {
		return "player"
	}
	return "enemy"
}

// Fighter is one combatant. It is owned by the Sim and mutated only inside Tick
// and the input operations.
type Fighter struct {
	Side   Side
	Pos    core.Vec2 // top-left corner
	Vel    core.Vec2
	Width  float64
	Height float64
	Facing float64 // -1 or 1
	Health float64

	Attack       *Attack
	AttackLanded bool

	Cooldown     float64 // until the next attack may start
	Stun         float64
	Blink        float64
	ShotCooldown float64
	OnGround     bool

	Streak Streak
}

func newFighter(side Side, x, facing float64, cfg config.CombatConfig) Fighter {
	return Fighter{
		Side:     side,
		Pos:      core.Vec2{X: x, Y: cfg.Arena.GroundY - cfg.Fighter.Height},
		Width:    cfg.Fighter.Width,
		Height:   cfg.Fighter.Height,
		Facing:   facing,
		Health:   cfg.Fighter.MaxHealth,
		OnGround: true,
	}
}

// Body returns the fighter's hurtbox.
func (f *Fighter) Body() core.RectF {
	return core.RectF{X: f.Pos.X, Y: f.Pos.Y, W: f.Width, H: f.Height}
}

// CenterX returns the horizontal center of the body.
func (f *Fighter) CenterX() float64 {
	return f.Pos.X + f.Width/2
}

// Alive reports whether the fighter still has health.
func (f *Fighter) Alive() bool {
	return f.Health > 0
}

// canAct reports whether a new attack may start.
func (f *Fighter) canAct() bool {
	return f.Stun <= 0 && f.Attack == nil && f.Cooldown <= 0
}

// decayTimers runs step 1 and 2 of the fighter update.
func (f *Fighter) decayTimers(dt float64) {
	f.Cooldown = core.Approach(f.Cooldown, dt)
	f.Stun = core.Approach(f.Stun, dt)
	f.Blink = core.Approach(f.Blink, dt)
	f.ShotCooldown = core.Approach(f.ShotCooldown, dt)

	if f.Attack != nil {
		f.Attack.Timer -= dt
		if f.Attack.Timer <= 0 {
			f.Attack = nil
			f.AttackLanded = false
		}
	}
}

// integrate applies gravity, moves the body and clamps it to the arena.
func (f *Fighter) integrate(dt float64, cfg config.CombatConfig) {
	f.Vel.Y += cfg.Physics.Gravity * dt
	f.Pos.X += f.Vel.X * dt
	f.Pos.Y += f.Vel.Y * dt

	floor := cfg.Arena.GroundY - f.Height
	if f.Pos.Y >= floor {
		f.Pos.Y = floor
		f.Vel.Y = 0
		f.OnGround = true
	} else {
		f.OnGround = false
	}

	f.Pos.X = core.ClampF(f.Pos.X, cfg.Arena.Margin, cfg.Arena.Width-f.Width-cfg.Arena.Margin)

	switch dz := cfg.Physics.FacingDeadzone; {
	case f.Vel.X > dz:
		f.Facing = 1
	case f.Vel.X < -dz:
		f.Facing = -1
	}
}

// jump launches the fighter if it stands on the ground.
func (f *Fighter) jump(speed float64) bool {
	if !f.OnGround {
		return false
	}
	f.Vel.Y = -speed
	f.OnGround = false
	return true
}

// towards returns the direction from f to x. Zero distance resolves to the
// fighter's own facing.
func (f *Fighter) towards(x float64) float64 {
	if d := core.Sign(x - f.Pos.X); d != 0 {
		return d
	}
	return f.Facing
}
