package combat

import (
	"fmt"
	"hash/fnv"
	"math"

	"github.com/vovakirdan/twin-arcade/internal/core"
)

// Snapshot is a read-only copy of everything a renderer or test needs.
// Mutating it has no effect on the Sim.
type Snapshot struct {
	Status      core.Status
	Tick        uint64
	Time        float64
	Arena       ArenaSize
	Player      Fighter
	Enemy       Fighter
	Projectiles []Projectile
	Effects     []HitEffect
	AIMode      AIMode
	Announce    ComboAnnouncement
	Hits        int
	BestCombo   int
	Buffered    []BufferEntry
	Shake       float64
}

// ArenaSize is the world-space playfield used for scaling.
type ArenaSize struct {
	Width, Height, GroundY float64
}

// Snapshot copies the current state.
func (s *Sim) Snapshot() Snapshot {
	return Snapshot{
		Status:      s.flow.Status(),
		Tick:        s.ticks,
		Time:        s.now,
		Arena:       ArenaSize{Width: s.cfg.Arena.Width, Height: s.cfg.Arena.Height, GroundY: s.cfg.Arena.GroundY},
		Player:      copyFighter(s.player),
		Enemy:       copyFighter(s.enemy),
		Projectiles: append([]Projectile(nil), s.projectiles...),
		Effects:     append([]HitEffect(nil), s.effects...),
		AIMode:      s.ai.Mode,
		Announce:    s.announce,
		Hits:        s.hits,
		BestCombo:   s.player.Streak.Best,
		Buffered:    s.buffer.Entries(),
		Shake:       s.shake,
	}
}

func copyFighter(f Fighter) Fighter {
	if f.Attack != nil {
		a := *f.Attack
		f.Attack = &a
	}
	return f
}

// HUD is the per-frame display summary.
type HUD struct {
	PlayerHealthPct float64 // 0-100
	EnemyHealthPct  float64
	PlayerHP        int // health rounded up
	EnemyHP         int
	ComboCount      int
	ComboLabel      string
	Hits            int
	BestCombo       int
	Status          core.Status
	StatusLabel     string
	Title           string // overlay title, empty while running
	Subtitle        string
}

// HUD derives the display values from the current state.
func (s *Sim) HUD() HUD {
	return s.Snapshot().HUD(s.cfg.Fighter.MaxHealth)
}

// HUD derives display values from a snapshot.
func (snap Snapshot) HUD(maxHealth float64) HUD {
	h := HUD{
		PlayerHealthPct: snap.Player.Health / maxHealth * 100,
		EnemyHealthPct:  snap.Enemy.Health / maxHealth * 100,
		PlayerHP:        int(math.Ceil(snap.Player.Health)),
		EnemyHP:         int(math.Ceil(snap.Enemy.Health)),
		ComboCount:      snap.Player.Streak.Count,
		Hits:            snap.Hits,
		BestCombo:       snap.BestCombo,
		Status:          snap.Status,
	}

	switch {
	case snap.Announce.Name != "":
		h.ComboLabel = snap.Announce.Name
	case h.ComboCount > 1:
		h.ComboLabel = "Chain"
	default:
		h.ComboLabel = "-"
	}

	switch snap.Status {
	case core.StatusIdle:
		h.StatusLabel = "IDLE"
		h.Title = "Press Enter"
		h.Subtitle = "Lock and load. Keep combos alive to break the enemy."
	case core.StatusRunning:
		h.StatusLabel = "LIVE"
	case core.StatusPaused:
		h.StatusLabel = "PAUSED"
		h.Title = "Paused"
		h.Subtitle = "Press Enter to resume."
	case core.StatusOver:
		h.StatusLabel = "RESULT"
		h.Title = "Mission Failed"
		if snap.Enemy.Health <= 0 && snap.Player.Health > 0 {
			h.Title = "Mission Complete"
		}
		h.Subtitle = fmt.Sprintf("Hits: %d | Best combo: %d", snap.Hits, snap.BestCombo)
	}
	return h
}

// Hash fingerprints the snapshot for determinism tests.
func (snap Snapshot) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "S:%d;T:%d;%.6f;", snap.Status, snap.Tick, snap.Time)
	for _, f := range []Fighter{snap.Player, snap.Enemy} {
		fmt.Fprintf(h, "F:%.6f,%.6f,%.6f,%.6f,%v,%.4f,%.4f,%.4f,%.4f,%v,%d;",
			f.Pos.X, f.Pos.Y, f.Vel.X, f.Vel.Y, f.Facing, f.Health,
			f.Cooldown, f.Stun, f.ShotCooldown, f.OnGround, f.Streak.Count)
		if f.Attack != nil {
			fmt.Fprintf(h, "A:%d,%.4f,%s;", f.Attack.Type, f.Attack.Timer, f.Attack.ComboName)
		}
	}
	for _, p := range snap.Projectiles {
		fmt.Fprintf(h, "P:%d,%.4f,%.4f,%.4f;", p.Owner, p.X, p.Y, p.Life)
	}
	fmt.Fprintf(h, "M:%d;H:%d;B:%d;E:%d;K:%.4f", snap.AIMode, snap.Hits, snap.BestCombo, len(snap.Effects), snap.Shake)
	return h.Sum64()
}
