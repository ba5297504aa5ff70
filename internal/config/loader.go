package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCombat loads the combat table.
// Search order: customPath -> ~/.arcade/configs/combat.yaml -> ./configs/combat.yaml -> embedded default
func LoadCombat(customPath string) (CombatConfig, error) {
	cfg, err := load("combat.yaml", customPath, defaultCombatYAML, DefaultCombatConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid combat config: %w", err)
	}
	return cfg, nil
}

// LoadTetris loads the puzzle table.
// Search order: customPath -> ~/.arcade/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
func LoadTetris(customPath string) (TetrisConfig, error) {
	cfg, err := load("tetris.yaml", customPath, defaultTetrisYAML, DefaultTetrisConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid tetris config: %w", err)
	}
	return cfg, nil
}

// load decodes the first config found onto a copy of the hardcoded defaults,
// so files may override only the keys they care about.
func load[T any](filename, customPath string, embedded []byte, fallback func() T) (T, error) {
	if customPath != "" {
		cfg := fallback()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := fallback()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate rejects tables the simulation cannot run with.
func (c CombatConfig) Validate() error {
	var errs []error
	if c.Arena.Width <= 0 || c.Arena.GroundY <= 0 {
		errs = append(errs, errors.New("arena width and ground_y must be positive"))
	}
	if c.Fighter.MaxHealth <= 0 {
		errs = append(errs, errors.New("fighter.max_health must be positive"))
	}
	if c.Combo.Window <= 0 || c.Combo.Decay <= 0 {
		errs = append(errs, errors.New("combo window and decay must be positive"))
	}
	for _, combo := range c.Combos {
		if len(combo.Sequence) == 0 {
			errs = append(errs, fmt.Errorf("combo %q has an empty sequence", combo.Name))
		}
		for _, tag := range combo.Sequence {
			if tag != "light" && tag != "heavy" {
				errs = append(errs, fmt.Errorf("combo %q: unknown attack %q", combo.Name, tag))
			}
		}
	}
	if c.AI.ModeTimer.Max < c.AI.ModeTimer.Min {
		errs = append(errs, errors.New("ai.mode_timer max is below min"))
	}
	return errors.Join(errs...)
}

// Validate rejects tables the simulation cannot run with.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.Board.Cols < 4 || c.Board.Rows < 4 {
		errs = append(errs, fmt.Errorf("board %dx%d is smaller than a piece", c.Board.Cols, c.Board.Rows))
	}
	if c.QueueDepth < 1 {
		errs = append(errs, errors.New("queue_depth must be at least 1"))
	}
	if len(c.Scoring.Lines) < 5 {
		errs = append(errs, errors.New("scoring.lines needs entries for 0-4 rows"))
	}
	if c.Scoring.LinesPerLevel < 1 {
		errs = append(errs, errors.New("scoring.lines_per_level must be positive"))
	}
	if len(c.Kicks) == 0 {
		errs = append(errs, errors.New("kicks must contain at least the zero offset"))
	}
	return errors.Join(errs...)
}

// ApplyCombatPreset modifies the combat table for a difficulty preset.
func ApplyCombatPreset(cfg *CombatConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.AI.Modes.Aggressive.Shoot *= 0.5
		cfg.AI.Modes.Neutral.Shoot *= 0.5
		cfg.AI.Modes.Defensive.Shoot *= 0.5
		cfg.Physics.EnemySpeed *= 0.85
	case DifficultyHard:
		cfg.AI.Modes.Aggressive.Combo = clampF(cfg.AI.Modes.Aggressive.Combo+0.15, 0, 1)
		cfg.AI.Modes.Neutral.Combo = clampF(cfg.AI.Modes.Neutral.Combo+0.15, 0, 1)
		cfg.AI.AggressiveRoll = clampF(cfg.AI.AggressiveRoll+0.15, 0, cfg.AI.NeutralRoll)
	}
}

// ApplyTetrisPreset modifies the puzzle table for a difficulty preset.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.StartLevel = 0
		cfg.Gravity.MinMs = max(cfg.Gravity.MinMs, 150)
	case DifficultyNormal:
		cfg.StartLevel = 2
	case DifficultyHard:
		cfg.StartLevel = 5
	}
}
