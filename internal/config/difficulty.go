package config

import "math"

// DifficultyManager interpolates a difficulty level from score or elapsed time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0, 1),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level in [0, 1].
// score is used by "score" progression, elapsed seconds by "time".
func (d *DifficultyManager) Level(score int, elapsed float64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := d.cfg.Progression.MaxAt
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = elapsed / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0, 1)
	return d.initialLevel + progress*(1-d.initialLevel)
}

// Speed scales base by the speed multiplier at the current level.
func (d *DifficultyManager) Speed(base float64, score int, elapsed float64) float64 {
	if !d.IsEnabled() {
		return base
	}
	return base * (1 + d.Level(score, elapsed)*d.cfg.Scaling.SpeedMultiplier)
}

// Chance raises a probability by the aggression boost at the current level,
// capped at 1.
func (d *DifficultyManager) Chance(base float64, score int, elapsed float64) float64 {
	if !d.IsEnabled() {
		return base
	}
	return clampF(base+d.Level(score, elapsed)*d.cfg.Scaling.AggressionBoost, 0, 1)
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
