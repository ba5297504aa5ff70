package config

import (
	_ "embed"
)

//go:embed defaults/combat.yaml
var defaultCombatYAML []byte

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultCombatConfig returns the built-in combat table. It matches
// defaults/combat.yaml and is used when the embedded file cannot be parsed.
func DefaultCombatConfig() CombatConfig {
	return CombatConfig{
		Arena: ArenaConfig{Width: 960, Height: 540, GroundY: 420, Margin: 30, CullMargin: 40},
		Physics: CombatPhysics{
			Gravity:        1800,
			PlayerSpeed:    240,
			EnemySpeed:     250,
			JumpSpeed:      620,
			FacingDeadzone: 0.1,
		},
		Fighter: FighterConfig{
			Width:              48,
			Height:             88,
			MaxHealth:          100,
			PlayerSpawnX:       200,
			EnemySpawnX:        700,
			PlayerShotCooldown: 0.6,
			EnemyShotCooldown:  0.45,
		},
		Attacks: AttackTable{
			Light:   AttackSpec{Duration: 0.22, Damage: 6, Reach: 68, Knockback: 220, Hitstun: 0.18, Cooldown: 0.14},
			Heavy:   AttackSpec{Duration: 0.34, Damage: 10, Reach: 76, Knockback: 260, Hitstun: 0.24, Cooldown: 0.2},
			Special: AttackSpec{Duration: 0.45, Damage: 18, Reach: 90, Knockback: 340, Hitstun: 0.32, Cooldown: 0.3},
		},
		Combos: []ComboSpec{
			{Name: "Blaster Uppercut", Sequence: []string{"light", "light", "heavy"}, Damage: 20, Knockback: 380},
			{Name: "Spiral Kick", Sequence: []string{"light", "heavy", "light"}, Damage: 18, Knockback: 320},
			{Name: "Breaker Shot", Sequence: []string{"heavy", "heavy", "light"}, Damage: 22, Knockback: 400},
		},
		Combo: ComboTiming{Window: 0.9, Decay: 0.75, Announce: 1.2, ReachBonus: 16},
		Projectile: ProjectileConfig{
			Speed:       520,
			Damage:      4,
			Life:        1.4,
			Knockback:   120,
			MuzzleGap:   12,
			HeightRatio: 0.4,
		},
		Hit: HitConfig{
			Lift:         220,
			Stun:         0.16,
			Blink:        0.12,
			EffectLife:   0.2,
			EffectSize:   18,
			TopMargin:    12,
			BottomMargin: 8,
		},
		AI: AIConfig{
			Modes: AIModes{
				Aggressive: AIMode{Desired: 110, Speed: 1.2, Shoot: 0.08, Combo: 0.5, Retreat: 0.35},
				Neutral:    AIMode{Desired: 170, Speed: 1.05, Shoot: 0.1, Combo: 0.32, Retreat: 0.6},
				Defensive:  AIMode{Desired: 230, Speed: 0.95, Shoot: 0.14, Combo: 0.2, Retreat: 0.85},
			},
			ModeTimer:            Range{Min: 0.9, Max: 1.8},
			LowHealth:            35,
			LowHealthChance:      0.7,
			StreakPressure:       3,
			StreakPressureChance: 0.6,
			AggressiveRoll:       0.25,
			NeutralRoll:          0.7,
			DashTime:             0.18,
			DashCooldown:         0.9,
			DashSpeed:            2.4,
			ThreatRange:          130,
			CounterDashChance:    0.2,
			EvadeJumpChance:      0.4,
			EvadeJump:            0.85,
			CloseRange:           120,
			RouteChance:          0.4,
			LightChance:          0.55,
			MeleeThink:           Range{Min: 0.14, Max: 0.32},
			ShotRange:            170,
			ShotThink:            Range{Min: 0.2, Max: 0.42},
			Band:                 24,
			StrafeTimer:          Range{Min: 0.4, Max: 1.2},
			StrafeSpeed:          0.55,
			RushRange:            200,
			RushChance:           0.07,
			HopRange:             220,
			HopChance:            0.004,
			HopJump:              0.8,
		},
		Difficulty: DifficultyConfig{
			Enabled:     false,
			Progression: ProgressionConfig{Type: "time", MaxAt: 90},
			Scaling:     ScalingConfig{SpeedMultiplier: 0.35, AggressionBoost: 0.1},
		},
	}
}

// DefaultTetrisConfig returns the built-in puzzle table.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board:   BoardConfig{Cols: 10, Rows: 20},
		Gravity: GravityConfig{BaseMs: 1000, Factor: 0.88, MinMs: 90},
		Scoring: ScoringConfig{
			Lines:         []int{0, 100, 300, 500, 800},
			ComboBonus:    25,
			SoftDrop:      1,
			HardDrop:      2,
			LinesPerLevel: 10,
		},
		QueueDepth: 5,
		Kicks:      []int{0, 1, -1, 2, -2},
		LevelFlash: 0.6,
		Difficulty: DifficultyConfig{Progression: ProgressionConfig{Type: "none"}},
	}
}
