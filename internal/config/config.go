// Package config provides YAML-based tuning tables for both games, their
// embedded defaults, and difficulty management.
package config

// CombatConfig contains every tunable constant of the combat simulation.
type CombatConfig struct {
	Arena      ArenaConfig      `yaml:"arena" json:"arena"`
	Physics    CombatPhysics    `yaml:"physics" json:"physics"`
	Fighter    FighterConfig    `yaml:"fighter" json:"fighter"`
	Attacks    AttackTable      `yaml:"attacks" json:"attacks"`
	Combos     []ComboSpec      `yaml:"combos" json:"combos"`
	Combo      ComboTiming      `yaml:"combo" json:"combo"`
	Projectile ProjectileConfig `yaml:"projectile" json:"projectile"`
	Hit        HitConfig        `yaml:"hit" json:"hit"`
	AI         AIConfig         `yaml:"ai" json:"ai"`
	Difficulty DifficultyConfig `yaml:"difficulty" json:"difficulty"`
}

// ArenaConfig is the world-space playfield.
type ArenaConfig struct {
	Width      float64 `yaml:"width" json:"width"`
	Height     float64 `yaml:"height" json:"height"`
	GroundY    float64 `yaml:"ground_y" json:"ground_y"`
	Margin     float64 `yaml:"margin" json:"margin"`           // side bound for fighters
	CullMargin float64 `yaml:"cull_margin" json:"cull_margin"` // projectiles beyond this are dropped
}

// CombatPhysics holds movement constants, in world units per second.
type CombatPhysics struct {
	Gravity        float64 `yaml:"gravity" json:"gravity"`
	PlayerSpeed    float64 `yaml:"player_speed" json:"player_speed"`
	EnemySpeed     float64 `yaml:"enemy_speed" json:"enemy_speed"`
	JumpSpeed      float64 `yaml:"jump_speed" json:"jump_speed"`
	FacingDeadzone float64 `yaml:"facing_deadzone" json:"facing_deadzone"`
}

// FighterConfig describes both fighter bodies.
type FighterConfig struct {
	Width              float64 `yaml:"width" json:"width"`
	Height             float64 `yaml:"height" json:"height"`
	MaxHealth          float64 `yaml:"max_health" json:"max_health"`
	PlayerSpawnX       float64 `yaml:"player_spawn_x" json:"player_spawn_x"`
	EnemySpawnX        float64 `yaml:"enemy_spawn_x" json:"enemy_spawn_x"`
	PlayerShotCooldown float64 `yaml:"player_shot_cooldown" json:"player_shot_cooldown"`
	EnemyShotCooldown  float64 `yaml:"enemy_shot_cooldown" json:"enemy_shot_cooldown"`
}

// AttackSpec is the base profile of one attack type.
type AttackSpec struct {
	Duration  float64 `yaml:"duration" json:"duration"`
	Damage    float64 `yaml:"damage" json:"damage"`
	Reach     float64 `yaml:"reach" json:"reach"`
	Knockback float64 `yaml:"knockback" json:"knockback"`
	Hitstun   float64 `yaml:"hitstun" json:"hitstun"`
	Cooldown  float64 `yaml:"cooldown" json:"cooldown"`
}

// AttackTable maps the three attack types to their profiles.
type AttackTable struct {
	Light   AttackSpec `yaml:"light" json:"light"`
	Heavy   AttackSpec `yaml:"heavy" json:"heavy"`
	Special AttackSpec `yaml:"special" json:"special"`
}

// ComboSpec is one catalog entry. Sequence holds "light"/"heavy" tags.
type ComboSpec struct {
	Name      string   `yaml:"name" json:"name"`
	Sequence  []string `yaml:"sequence" json:"sequence"`
	Damage    float64  `yaml:"damage" json:"damage"`
	Knockback float64  `yaml:"knockback" json:"knockback"`
}

// ComboTiming holds the input-buffer window and hit-streak decay.
type ComboTiming struct {
	Window     float64 `yaml:"window" json:"window"`
	Decay      float64 `yaml:"decay" json:"decay"`
	Announce   float64 `yaml:"announce" json:"announce"`
	ReachBonus float64 `yaml:"reach_bonus" json:"reach_bonus"`
}

// ProjectileConfig describes blaster shots.
type ProjectileConfig struct {
	Speed       float64 `yaml:"speed" json:"speed"`
	Damage      float64 `yaml:"damage" json:"damage"`
	Life        float64 `yaml:"life" json:"life"`
	Knockback   float64 `yaml:"knockback" json:"knockback"`
	MuzzleGap   float64 `yaml:"muzzle_gap" json:"muzzle_gap"`
	HeightRatio float64 `yaml:"height_ratio" json:"height_ratio"`
}

// HitConfig controls what happens to a fighter that gets hit.
type HitConfig struct {
	Lift         float64 `yaml:"lift" json:"lift"`
	Stun         float64 `yaml:"stun" json:"stun"` // stun from projectiles
	Blink        float64 `yaml:"blink" json:"blink"`
	EffectLife   float64 `yaml:"effect_life" json:"effect_life"`
	EffectSize   float64 `yaml:"effect_size" json:"effect_size"`
	TopMargin    float64 `yaml:"top_margin" json:"top_margin"`
	BottomMargin float64 `yaml:"bottom_margin" json:"bottom_margin"`
}

// AIMode is one behavior profile of the enemy director.
type AIMode struct {
	Desired float64 `yaml:"desired" json:"desired"` // preferred distance to the player
	Speed   float64 `yaml:"speed" json:"speed"`     // multiplier on enemy speed
	Shoot   float64 `yaml:"shoot" json:"shoot"`     // chance to fire at long range
	Combo   float64 `yaml:"combo" json:"combo"`     // chance to queue a 3-hit route
	Retreat float64 `yaml:"retreat" json:"retreat"` // chance to dash away after landing a hit
}

// AIModes lists the three profiles.
type AIModes struct {
	Aggressive AIMode `yaml:"aggressive" json:"aggressive"`
	Neutral    AIMode `yaml:"neutral" json:"neutral"`
	Defensive  AIMode `yaml:"defensive" json:"defensive"`
}

// Range is a closed interval for randomized timers.
type Range struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// AIConfig holds every probability and distance the director uses.
type AIConfig struct {
	Modes AIModes `yaml:"modes" json:"modes"`

	ModeTimer            Range   `yaml:"mode_timer" json:"mode_timer"`
	LowHealth            float64 `yaml:"low_health" json:"low_health"`
	LowHealthChance      float64 `yaml:"low_health_chance" json:"low_health_chance"`
	StreakPressure       int     `yaml:"streak_pressure" json:"streak_pressure"`
	StreakPressureChance float64 `yaml:"streak_pressure_chance" json:"streak_pressure_chance"`
	AggressiveRoll       float64 `yaml:"aggressive_roll" json:"aggressive_roll"` // roll below: aggressive
	NeutralRoll          float64 `yaml:"neutral_roll" json:"neutral_roll"`       // roll below: neutral, else defensive

	DashTime     float64 `yaml:"dash_time" json:"dash_time"`
	DashCooldown float64 `yaml:"dash_cooldown" json:"dash_cooldown"`
	DashSpeed    float64 `yaml:"dash_speed" json:"dash_speed"`

	ThreatRange       float64 `yaml:"threat_range" json:"threat_range"`
	CounterDashChance float64 `yaml:"counter_dash_chance" json:"counter_dash_chance"`
	EvadeJumpChance   float64 `yaml:"evade_jump_chance" json:"evade_jump_chance"`
	EvadeJump         float64 `yaml:"evade_jump" json:"evade_jump"`

	CloseRange  float64 `yaml:"close_range" json:"close_range"`
	RouteChance float64 `yaml:"route_chance" json:"route_chance"` // chance of light-heavy-light over light-light-heavy
	LightChance float64 `yaml:"light_chance" json:"light_chance"`
	MeleeThink  Range   `yaml:"melee_think" json:"melee_think"`
	ShotRange   float64 `yaml:"shot_range" json:"shot_range"`
	ShotThink   Range   `yaml:"shot_think" json:"shot_think"`

	Band        float64 `yaml:"band" json:"band"`
	StrafeTimer Range   `yaml:"strafe_timer" json:"strafe_timer"`
	StrafeSpeed float64 `yaml:"strafe_speed" json:"strafe_speed"`

	RushRange  float64 `yaml:"rush_range" json:"rush_range"`
	RushChance float64 `yaml:"rush_chance" json:"rush_chance"`
	HopRange   float64 `yaml:"hop_range" json:"hop_range"`
	HopChance  float64 `yaml:"hop_chance" json:"hop_chance"`
	HopJump    float64 `yaml:"hop_jump" json:"hop_jump"`
}

// Mode returns the profile for a mode name, falling back to neutral.
func (c AIConfig) Mode(name string) AIMode {
	switch name {
	case "aggressive":
		return c.Modes.Aggressive
	case "defensive":
		return c.Modes.Defensive
	default:
		return c.Modes.Neutral
	}
}

// TetrisConfig contains every tunable constant of the puzzle simulation.
type TetrisConfig struct {
	Board      BoardConfig      `yaml:"board" json:"board"`
	Gravity    GravityConfig    `yaml:"gravity" json:"gravity"`
	Scoring    ScoringConfig    `yaml:"scoring" json:"scoring"`
	QueueDepth int              `yaml:"queue_depth" json:"queue_depth"`
	Kicks      []int            `yaml:"kicks" json:"kicks"`
	StartLevel int              `yaml:"start_level" json:"start_level"`
	LevelFlash float64          `yaml:"level_flash" json:"level_flash"`
	Difficulty DifficultyConfig `yaml:"difficulty" json:"difficulty"`
}

// BoardConfig is the grid size.
type BoardConfig struct {
	Cols int `yaml:"cols" json:"cols"`
	Rows int `yaml:"rows" json:"rows"`
}

// GravityConfig drives the fall interval: max(Min, round(Base * Factor^level)).
type GravityConfig struct {
	BaseMs   float64 `yaml:"base_ms" json:"base_ms"`
	Factor   float64 `yaml:"factor" json:"factor"`
	MinMs    int     `yaml:"min_ms" json:"min_ms"`
	LevelCap int     `yaml:"level_cap" json:"level_cap"`
}

// ScoringConfig holds the line-clear table and drop rewards.
type ScoringConfig struct {
	Lines         []int `yaml:"lines" json:"lines"` // indexed by rows cleared
	ComboBonus    int   `yaml:"combo_bonus" json:"combo_bonus"`
	SoftDrop      int   `yaml:"soft_drop" json:"soft_drop"`
	HardDrop      int   `yaml:"hard_drop" json:"hard_drop"`
	LinesPerLevel int   `yaml:"lines_per_level" json:"lines_per_level"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" json:"enabled"`
	InitialLevel float64           `yaml:"initial_level" json:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" json:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" json:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string  `yaml:"type" json:"type"`     // "score", "time", or "none"
	MaxAt float64 `yaml:"max_at" json:"max_at"` // score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at level 1.0.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" json:"speed_multiplier"` // added to the AI speed multiplier
	AggressionBoost float64 `yaml:"aggression_boost" json:"aggression_boost"` // added to shot and combo chances
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty selects fixed.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	case "":
		return DifficultyFixed, true
	}
	return "", false
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
