package combat

import (
	"fmt"

	"github.com/vovakirdan/twin-arcade/internal/config"
)

// AttackType tags melee attacks.
type AttackType int

const (
	AttackLight AttackType = iota
	AttackHeavy
	AttackSpecial
)

func (t AttackType) String() string {
	switch t {
	case AttackLight:
		return "light"
	case AttackHeavy:
		return "heavy"
	case AttackSpecial:
		return "special"
	default:
		return "unknown"
	}
}

// ParseAttackType maps a config tag to an AttackType.
func ParseAttackType(s string) (AttackType, error) {
	switch s {
	case "light":
		return AttackLight, nil
	case "heavy":
		return AttackHeavy, nil
	case "special":
		return AttackSpecial, nil
	}
	return 0, fmt.Errorf("unknown attack type %q", s)
}

// Attack is an active melee swing. A fighter has at most one.
type Attack struct {
	Type      AttackType
	Timer     float64 // remaining active time
	Damage    float64
	Reach     float64
	Knockback float64
	Hitstun   float64
	ComboName string
}

func attackSpec(cfg config.AttackTable, t AttackType) config.AttackSpec {
	switch t {
	case AttackHeavy:
		return cfg.Heavy
	case AttackSpecial:
		return cfg.Special
	default:
		return cfg.Light
	}
}

// newAttack builds an attack of type t, boosted by combo when non-nil.
func newAttack(cfg config.CombatConfig, t AttackType, combo *ComboDefinition) *Attack {
	base := attackSpec(cfg.Attacks, t)
	a := &Attack{
		Type:      t,
		Timer:     base.Duration,
		Damage:    base.Damage,
		Reach:     base.Reach,
		Knockback: base.Knockback,
		Hitstun:   base.Hitstun,
	}
	if combo != nil {
		a.Damage = combo.Damage
		a.Knockback = combo.Knockback
		a.Reach = base.Reach + cfg.Combo.ReachBonus
		a.ComboName = combo.Name
	}
	return a
}

// startAttack replaces any active attack and applies the type's cooldown.
func startAttack(f *Fighter, cfg config.CombatConfig, t AttackType, combo *ComboDefinition) {
	f.Attack = newAttack(cfg, t, combo)
	f.AttackLanded = false
	f.Cooldown = attackSpec(cfg.Attacks, t).Cooldown
}
