package combat

import (
	"math"

	"github.com/vovakirdan/twin-arcade/internal/config"
	"github.com/vovakirdan/twin-arcade/internal/core"
)

// AIMode is the enemy director's behavior profile.
type AIMode int

const (
	ModeNeutral AIMode = iota
	ModeAggressive
	ModeDefensive
)

func (m AIMode) String() string {
	switch m {
	case ModeAggressive:
		return "aggressive"
	case ModeDefensive:
		return "defensive"
	default:
		return "neutral"
	}
}

// AIAction is a discrete maneuver that overrides the director until it ends.
type AIAction struct {
	Timer float64
	Dir   float64
}

// AIState is the enemy director's memory between ticks.
type AIState struct {
	Mode         AIMode
	ModeTimer    float64
	Dash         *AIAction
	DashCooldown float64
	Think        float64
	StrafeTimer  float64
	StrafeDir    float64
	Queue        []AttackType
}

func newAIState() AIState {
	return AIState{Mode: ModeNeutral, StrafeDir: 1}
}

func (s *Sim) randRange(r config.Range) float64 {
	return r.Min + s.rng.Float64()*(r.Max-r.Min)
}

func (s *Sim) setMode(m AIMode) {
	s.ai.Mode = m
	s.ai.ModeTimer = s.randRange(s.cfg.AI.ModeTimer)
}

func (s *Sim) modeProfile() config.AIMode {
	return s.cfg.AI.Mode(s.ai.Mode.String())
}

// chooseMode re-rolls the behavior mode. Low health and a long player
// streak push toward defensive without forcing it.
func (s *Sim) chooseMode() {
	ai := s.cfg.AI
	if s.enemy.Health < ai.LowHealth && s.rng.Float64() < ai.LowHealthChance {
		s.setMode(ModeDefensive)
		return
	}
	if s.player.Streak.Count >= ai.StreakPressure && s.rng.Float64() < ai.StreakPressureChance {
		s.setMode(ModeDefensive)
		return
	}
	switch roll := s.rng.Float64(); {
	case roll < ai.AggressiveRoll:
		s.setMode(ModeAggressive)
	case roll < ai.NeutralRoll:
		s.setMode(ModeNeutral)
	default:
		s.setMode(ModeDefensive)
	}
}

// startDash begins a dash in dir unless the dash is on cooldown.
func (s *Sim) startDash(dir float64) bool {
	if s.ai.DashCooldown > 0 {
		return false
	}
	s.ai.Dash = &AIAction{Timer: s.cfg.AI.DashTime, Dir: dir}
	s.ai.DashCooldown = s.cfg.AI.DashCooldown
	return true
}

// tryDisengage rolls the mode's retreat chance after the enemy lands a hit.
func (s *Sim) tryDisengage() {
	if s.ai.Dash != nil || s.ai.DashCooldown > 0 || s.enemy.Stun > 0 {
		return
	}
	if s.rng.Float64() > s.modeProfile().Retreat {
		return
	}
	s.startDash(-s.enemy.towards(s.player.Pos.X))
}

// chance applies difficulty scaling to a base probability.
func (s *Sim) chance(base float64) float64 {
	return s.difficulty.Chance(base, s.hits, s.now)
}

// updateAI drives the enemy's velocity and attacks for one tick.
// It only runs while the enemy is not stunned.
func (s *Sim) updateAI(dt float64) {
	ai := &s.ai
	cfg := s.cfg.AI
	e := &s.enemy
	p := &s.player

	ai.ModeTimer = math.Max(0, ai.ModeTimer-dt)
	ai.DashCooldown = math.Max(0, ai.DashCooldown-dt)
	ai.Think = math.Max(0, ai.Think-dt)
	ai.StrafeTimer = math.Max(0, ai.StrafeTimer-dt)

	if ai.ModeTimer <= 0 {
		s.chooseMode()
	}

	if ai.Dash != nil {
		ai.Dash.Timer -= dt
		e.Vel.X = ai.Dash.Dir * s.cfg.Physics.EnemySpeed * cfg.DashSpeed
		if ai.Dash.Timer <= 0 {
			ai.Dash = nil
		}
		return
	}

	if len(ai.Queue) > 0 && e.canAct() {
		next := ai.Queue[0]
		ai.Queue = ai.Queue[1:]
		startAttack(e, s.cfg, next, nil)
	}

	distance := p.Pos.X - e.Pos.X
	if distance >= 0 {
		e.Facing = 1
	} else {
		e.Facing = -1
	}
	absDist := math.Abs(distance)
	toward := e.towards(p.Pos.X)
	mode := s.modeProfile()
	speed := s.cfg.Physics.EnemySpeed * s.difficulty.Speed(mode.Speed, s.hits, s.now)

	if p.Attack != nil && absDist < cfg.ThreatRange {
		dir := -toward
		if ai.Mode == ModeAggressive && s.rng.Float64() < cfg.CounterDashChance {
			dir = toward
		}
		if s.startDash(dir) {
			return
		}
		if e.OnGround && s.rng.Float64() < cfg.EvadeJumpChance {
			e.jump(s.cfg.Physics.JumpSpeed * cfg.EvadeJump)
		}
	}

	if e.canAct() && ai.Think <= 0 {
		switch {
		case absDist < cfg.CloseRange:
			if s.rng.Float64() < s.chance(mode.Combo) {
				route := []AttackType{AttackLight, AttackLight, AttackHeavy}
				if s.rng.Float64() < cfg.RouteChance {
					route = []AttackType{AttackLight, AttackHeavy, AttackLight}
				}
				ai.Queue = append(ai.Queue, route...)
			} else {
				t := AttackHeavy
				if s.rng.Float64() < cfg.LightChance {
					t = AttackLight
				}
				startAttack(e, s.cfg, t, nil)
			}
			ai.Think = s.randRange(cfg.MeleeThink)
		case absDist > cfg.ShotRange && e.ShotCooldown <= 0 && s.rng.Float64() < s.chance(mode.Shoot):
			s.fire(e)
			ai.Think = s.randRange(cfg.ShotThink)
		}
	}

	sign := core.Sign(distance)
	switch {
	case absDist > mode.Desired+cfg.Band:
		e.Vel.X = sign * speed
	case absDist < mode.Desired-cfg.Band:
		e.Vel.X = -sign * speed
	default:
		if ai.StrafeTimer <= 0 {
			ai.StrafeTimer = s.randRange(cfg.StrafeTimer)
			ai.StrafeDir = 1
			if s.rng.Float64() < 0.5 {
				ai.StrafeDir = -1
			}
		}
		e.Vel.X = ai.StrafeDir * speed * cfg.StrafeSpeed
	}

	if ai.Mode == ModeAggressive && absDist > cfg.RushRange && s.rng.Float64() < cfg.RushChance {
		s.startDash(toward)
	}

	if absDist > cfg.HopRange && e.OnGround && s.rng.Float64() < cfg.HopChance {
		e.jump(s.cfg.Physics.JumpSpeed * cfg.HopJump)
	}
}
