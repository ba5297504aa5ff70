package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestSchemaUsesYAMLKeys(t *testing.T) {
	tests := []struct {
		game string
		keys []string
	}{
		{"combat", []string{`"arena"`, `"ground_y"`, `"mode_timer"`}},
		{"tetris", []string{`"queue_depth"`, `"lines_per_level"`, `"kicks"`}},
	}

	for _, tt := range tests {
		t.Run(tt.game, func(t *testing.T) {
			schema, err := Schema(tt.game)
			if err != nil {
				t.Fatalf("Schema(%q) error: %v", tt.game, err)
			}
			data, err := json.Marshal(schema)
			if err != nil {
				t.Fatalf("marshal schema: %v", err)
			}
			for _, k := range tt.keys {
				if !strings.Contains(string(data), k) {
					t.Errorf("schema for %s is missing %s", tt.game, k)
				}
			}
			if strings.Contains(string(data), `"required"`) {
				t.Error("tuning keys should all be optional")
			}
		})
	}
}

func TestSchemaUnknownGame(t *testing.T) {
	if _, err := Schema("pong"); err == nil {
		t.Error("Schema(\"pong\") should fail")
	}
	if _, err := Load("pong", "", DifficultyFixed); err == nil {
		t.Error("Load(\"pong\") should fail")
	}
}

func TestLoadAppliesPreset(t *testing.T) {
	got, err := Load("tetris", "", DifficultyHard)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg := got.(TetrisConfig); cfg.StartLevel != 5 {
		t.Errorf("StartLevel = %d, expected 5", cfg.StartLevel)
	}
}

func TestLoadFallsBackOnBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "combat.yaml")
	if err := os.WriteFile(path, []byte("arena: ["), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := Load("combat", path, DifficultyFixed)
	if err == nil {
		t.Fatal("Load() should report the broken file")
	}
	if cfg := got.(CombatConfig); cfg.Arena.Width != DefaultCombatConfig().Arena.Width {
		t.Errorf("Arena.Width = %v, expected the default", cfg.Arena.Width)
	}
}

func TestJSONTagsMirrorYAML(t *testing.T) {
	seen := map[reflect.Type]bool{}
	var walk func(typ reflect.Type)
	walk = func(typ reflect.Type) {
		for typ.Kind() == reflect.Slice || typ.Kind() == reflect.Pointer {
			typ = typ.Elem()
		}
		if typ.Kind() != reflect.Struct || seen[typ] {
			return
		}
		seen[typ] = true
		for i := range typ.NumField() {
			f := typ.Field(i)
			if y, j := f.Tag.Get("yaml"), f.Tag.Get("json"); y != j {
				t.Errorf("%s.%s: json tag %q, expected %q", typ.Name(), f.Name, j, y)
			}
			walk(f.Type)
		}
	}
	walk(reflect.TypeOf(CombatConfig{}))
	walk(reflect.TypeOf(TetrisConfig{}))
}
