// Package combat implements Contra Combat, a one-on-one action fight against
// a CPU opponent. Sim is the headless simulation; Game adapts it to the
// arcade registry and draws it into a terminal screen.
package combat

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/twin-arcade/internal/config"
	"github.com/vovakirdan/twin-arcade/internal/core"
)

// HitEffect is a short-lived spark drawn where a hit landed.
type HitEffect struct {
	X, Y float64
	Life float64
	Size float64
}

// Screen shake amounts. Hits and combos raise the shake to at least their
// amount; it then drains at shakeDecay per second.
const (
	hitShake   = 10
	comboShake = 8
	shakeDecay = 36
)

// Sim owns every piece of combat state. The zero value is not usable; create
// one with NewSim.
type Sim struct {
	cfg        config.CombatConfig
	rng        *rand.Rand
	flow       *core.Flow
	difficulty *config.DifficultyManager
	catalog    []ComboDefinition

	player Fighter
	enemy  Fighter
	ai     AIState

	buffer      InputBuffer
	projectiles []Projectile
	effects     []HitEffect
	announce    ComboAnnouncement
	hits        int
	shake       float64

	moveLeft, moveRight bool
	jumpQueued          bool

	now   float64 // seconds spent running since the last reset
	ticks uint64
}

// NewSim creates a combat simulation in the idle state. rng drives every AI
// decision; pass a seeded source for reproducible fights.
func NewSim(cfg config.CombatConfig, rng *rand.Rand) *Sim {
	s := &Sim{
		cfg:        cfg,
		rng:        rng,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		catalog:    buildCatalog(cfg.Combos),
	}
	s.flow = core.NewFlow(s.reset)
	s.reset()
	return s
}

// reset puts every entity, timer and counter back to its initial value.
// The RNG is not reseeded.
func (s *Sim) reset() {
	s.player = newFighter(SidePlayer, s.cfg.Fighter.PlayerSpawnX, 1, s.cfg)
	s.enemy = newFighter(SideEnemy, s.cfg.Fighter.EnemySpawnX, -1, s.cfg)
	s.ai = newAIState()
	s.buffer = NewInputBuffer(s.cfg.Combo.Window)
	s.projectiles = nil
	s.effects = nil
	s.announce = ComboAnnouncement{}
	s.hits = 0
	s.shake = 0
	s.moveLeft, s.moveRight = false, false
	s.jumpQueued = false
	s.now = 0
	s.ticks = 0
}

// Flow controls.

func (s *Sim) Start() bool       { return s.flow.Start() }
func (s *Sim) Pause() bool       { return s.flow.Pause() }
func (s *Sim) Resume() bool      { return s.flow.Resume() }
func (s *Sim) TogglePause() bool { return s.flow.TogglePause() }
func (s *Sim) Reset() bool       { return s.flow.Reset() }
func (s *Sim) Primary() bool     { return s.flow.Primary() }

// Status returns the flow state.
func (s *Sim) Status() core.Status { return s.flow.Status() }

// SetMovementAxis latches the player's horizontal input.
func (s *Sim) SetMovementAxis(left, right bool) {
	if !s.flow.Running() {
		return
	}
	s.moveLeft, s.moveRight = left, right
}

// RequestJump asks the player to jump on the next tick.
func (s *Sim) RequestJump() {
	if !s.flow.Running() {
		return
	}
	s.jumpQueued = true
}

// QueueAttack starts a player attack, upgraded to a combo special when the
// buffered inputs match a catalog entry. Ignored while stunned, attacking or
// on cooldown.
func (s *Sim) QueueAttack(t AttackType) {
	if !s.flow.Running() || !s.player.canAct() {
		return
	}
	if t == AttackLight || t == AttackHeavy {
		s.buffer.Push(t, s.now)
		if combo := s.buffer.Match(s.catalog); combo != nil {
			startAttack(&s.player, s.cfg, AttackSpecial, combo)
			s.buffer.Clear()
			s.announce = ComboAnnouncement{Name: combo.Name, Timer: s.cfg.Combo.Announce}
			s.shake = math.Max(s.shake, comboShake)
			return
		}
	}
	startAttack(&s.player, s.cfg, t, nil)
}

// QueueShot fires the player's blaster if it is ready.
func (s *Sim) QueueShot() {
	if !s.flow.Running() {
		return
	}
	s.fire(&s.player)
}

func (s *Sim) fire(f *Fighter) {
	if f.ShotCooldown > 0 || f.Stun > 0 {
		return
	}
	s.projectiles = append(s.projectiles, newProjectile(f, s.cfg.Projectile))
	if f.Side == SideEnemy {
		f.ShotCooldown = s.cfg.Fighter.EnemyShotCooldown
	} else {
		f.ShotCooldown = s.cfg.Fighter.PlayerShotCooldown
	}
}

// Tick advances the fight by dt seconds. It does nothing unless running.
func (s *Sim) Tick(dt float64) {
	if !s.flow.Running() {
		return
	}
	s.now += dt
	s.ticks++

	s.updateFighter(&s.player, dt)
	s.updateFighter(&s.enemy, dt)

	s.projectiles = advanceProjectiles(s.projectiles, dt, s.cfg.Arena)

	s.checkMelee(&s.player, &s.enemy)
	s.checkMelee(&s.enemy, &s.player)
	s.checkProjectiles()

	s.updateEffects(dt)
	s.shake = core.Approach(s.shake, shakeDecay*dt)
	s.player.Streak.Decay(s.now, s.cfg.Combo.Decay)
	s.announce.decay(dt)

	if !s.player.Alive() || !s.enemy.Alive() {
		s.flow.End()
	}
}

func (s *Sim) updateFighter(f *Fighter, dt float64) {
	f.decayTimers(dt)

	if f.Stun > 0 {
		f.Vel.X = 0
	} else if f.Side == SidePlayer {
		dir := 0.0
		if s.moveRight {
			dir++
		}
		if s.moveLeft {
			dir--
		}
		f.Vel.X = dir * s.cfg.Physics.PlayerSpeed
		if s.jumpQueued {
			f.jump(s.cfg.Physics.JumpSpeed)
		}
		s.jumpQueued = false
	} else {
		s.updateAI(dt)
	}

	f.integrate(dt, s.cfg)
}

// checkMelee lands attacker's active swing on target at most once per swing.
// The target must be in front, within reach and vertically overlapping.
func (s *Sim) checkMelee(attacker, target *Fighter) {
	a := attacker.Attack
	if a == nil || attacker.AttackLanded {
		return
	}
	dx := target.CenterX() - attacker.CenterX()
	facingOK := dx == 0 || core.Sign(dx) == attacker.Facing
	inReach := dx < a.Reach && dx > -a.Reach
	overlap := target.Pos.Y+target.Height > attacker.Pos.Y+s.cfg.Hit.TopMargin &&
		target.Pos.Y < attacker.Pos.Y+attacker.Height-s.cfg.Hit.BottomMargin

	if facingOK && inReach && overlap {
		s.applyHit(attacker, target, a.Damage, a.Knockback, a.Hitstun, target.CenterX(), target.Pos.Y+24)
		attacker.AttackLanded = true
	}
}

// checkProjectiles resolves shots against the opposing fighter's body.
// A shot that lands is removed immediately.
func (s *Sim) checkProjectiles() {
	kept := s.projectiles[:0]
	for _, p := range s.projectiles {
		owner, target := s.fighter(p.Owner), s.fighter(p.Owner.Opponent())
		if target.Body().ContainsPoint(p.X, p.Y) {
			s.applyHit(owner, target, p.Damage, s.cfg.Projectile.Knockback, s.cfg.Hit.Stun, p.X, p.Y)
			continue
		}
		kept = append(kept, p)
	}
	s.projectiles = kept
}

func (s *Sim) fighter(side Side) *Fighter {
	if side == SidePlayer {
		return &s.player
	}
	return &s.enemy
}

func (s *Sim) applyHit(attacker, target *Fighter, damage, knock, stun, x, y float64) {
	target.Health = core.ClampF(target.Health-damage, 0, s.cfg.Fighter.MaxHealth)
	target.Vel.X = knock * attacker.Facing
	target.Vel.Y = -s.cfg.Hit.Lift
	target.Stun = stun
	target.Blink = s.cfg.Hit.Blink
	s.effects = append(s.effects, HitEffect{X: x, Y: y, Life: s.cfg.Hit.EffectLife, Size: s.cfg.Hit.EffectSize})
	s.shake = math.Max(s.shake, hitShake)

	switch attacker.Side {
	case SideEnemy:
		s.tryDisengage()
	case SidePlayer:
		attacker.Streak.Hit(s.now, s.cfg.Combo.Decay)
		s.hits++
	}
}

func (s *Sim) updateEffects(dt float64) {
	kept := s.effects[:0]
	for _, fx := range s.effects {
		fx.Life -= dt
		if fx.Life > 0 {
			kept = append(kept, fx)
		}
	}
	s.effects = kept
}

// Outcome reports the winner once the fight is over. A double knockout
// counts as a loss for the player.
func (s *Sim) Outcome() (winner Side, over bool) {
	if s.flow.Status() != core.StatusOver {
		return 0, false
	}
	if !s.enemy.Alive() && s.player.Alive() {
		return SidePlayer, true
	}
	return SideEnemy, true
}

// Hits returns the number of player hits landed this run.
func (s *Sim) Hits() int { return s.hits }

// Elapsed returns the seconds spent running since the last reset.
func (s *Sim) Elapsed() float64 { return s.now }
