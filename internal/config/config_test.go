package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var combat CombatConfig
	if err := yaml.Unmarshal(defaultCombatYAML, &combat); err != nil {
		t.Fatalf("embedded combat.yaml: %v", err)
	}
	if !reflect.DeepEqual(combat, DefaultCombatConfig()) {
		t.Errorf("embedded combat.yaml differs from DefaultCombatConfig()\n got: %+v\nwant: %+v", combat, DefaultCombatConfig())
	}

	var tetris TetrisConfig
	if err := yaml.Unmarshal(defaultTetrisYAML, &tetris); err != nil {
		t.Fatalf("embedded tetris.yaml: %v", err)
	}
	if !reflect.DeepEqual(tetris, DefaultTetrisConfig()) {
		t.Errorf("embedded tetris.yaml differs from DefaultTetrisConfig()\n got: %+v\nwant: %+v", tetris, DefaultTetrisConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultCombatConfig().Validate(); err != nil {
		t.Errorf("DefaultCombatConfig().Validate() = %v", err)
	}
	if err := DefaultTetrisConfig().Validate(); err != nil {
		t.Errorf("DefaultTetrisConfig().Validate() = %v", err)
	}
}

func TestLoadCustomPathOverridesKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	body := "board:\n  cols: 12\nqueue_depth: 3\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris() error = %v", err)
	}
	if cfg.Board.Cols != 12 || cfg.QueueDepth != 3 {
		t.Errorf("overrides not applied: cols=%d depth=%d", cfg.Board.Cols, cfg.QueueDepth)
	}
	if cfg.Board.Rows != 20 || cfg.Scoring.ComboBonus != 25 {
		t.Errorf("unset keys should keep defaults: rows=%d bonus=%d", cfg.Board.Rows, cfg.Scoring.ComboBonus)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadCombat(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadCombat() on a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("arena: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCombat(bad); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("LoadCombat() error = %v, expected parse failure", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	body := "combos:\n  - name: Broken\n    sequence: [light, kick]\n"
	if err := os.WriteFile(invalid, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCombat(invalid); err == nil || !strings.Contains(err.Error(), "kick") {
		t.Errorf("LoadCombat() error = %v, expected unknown attack", err)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
		ok   bool
	}{
		{"easy", DifficultyEasy, true},
		{"hard", DifficultyHard, true},
		{"", DifficultyFixed, true},
		{"insane", "", false},
	}
	for _, tt := range tests {
		got, ok := ParsePreset(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParsePreset(%q) = %q, %v; expected %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestApplyPresets(t *testing.T) {
	combat := DefaultCombatConfig()
	ApplyCombatPreset(&combat, DifficultyFixed)
	if combat.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	ApplyCombatPreset(&combat, DifficultyHard)
	if !combat.Difficulty.Enabled || combat.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: enabled=%v level=%v", combat.Difficulty.Enabled, combat.Difficulty.InitialLevel)
	}
	if combat.AI.AggressiveRoll <= 0.25 || combat.AI.AggressiveRoll > combat.AI.NeutralRoll {
		t.Errorf("hard preset aggressive roll = %v", combat.AI.AggressiveRoll)
	}

	tetris := DefaultTetrisConfig()
	ApplyTetrisPreset(&tetris, DifficultyHard)
	if tetris.StartLevel != 5 {
		t.Errorf("hard tetris start level = %d, expected 5", tetris.StartLevel)
	}
}
