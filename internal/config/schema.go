package config

import (
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON Schema of a game's tuning file. The json tags on
// the config structs mirror the yaml ones, so keys match the file. None are
// required, since files override the defaults key by key.
func Schema(game string) (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{RequiredFromJSONSchemaTags: true}

	var schema *jsonschema.Schema
	switch game {
	case "combat":
		schema = reflector.Reflect(new(CombatConfig))
		schema.Title = "Contra Combat tuning"
		schema.Description = "Overrides for ~/.arcade/configs/combat.yaml"
	case "tetris":
		schema = reflector.Reflect(new(TetrisConfig))
		schema.Title = "Tetris tuning"
		schema.Description = "Overrides for ~/.arcade/configs/tetris.yaml"
	default:
		return nil, fmt.Errorf("no tuning table for game %q", game)
	}
	return schema, nil
}

// Load returns the effective tuning table of a game after the loader search
// and the difficulty preset. The error reports a config that could not be
// used; the returned table is still valid.
func Load(game, customPath string, preset DifficultyPreset) (any, error) {
	switch game {
	case "combat":
		cfg, err := LoadCombat(customPath)
		if err != nil {
			cfg = DefaultCombatConfig()
		}
		ApplyCombatPreset(&cfg, preset)
		return cfg, err
	case "tetris":
		cfg, err := LoadTetris(customPath)
		if err != nil {
			cfg = DefaultTetrisConfig()
		}
		ApplyTetrisPreset(&cfg, preset)
		return cfg, err
	}
	return nil, fmt.Errorf("no tuning table for game %q", game)
}
