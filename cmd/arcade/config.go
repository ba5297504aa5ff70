package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/twin-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect game tuning tables",
	Long: `Print the JSON Schema or the effective values of a game's tuning YAML.

Examples:
  arcade config schema tetris > tetris.schema.json
  arcade config dump combat --difficulty hard
  arcade config dump tetris --config ./my-tetris.yaml`,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema <game>",
	Short: "Print the JSON Schema of a tuning file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := config.Schema(args[0])
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal schema: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}

var configDumpCmd = &cobra.Command{
	Use:   "dump <game>",
	Short: "Print the effective tuning table as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		preset, _ := config.ParsePreset(viper.GetString("difficulty"))
		cfg, err := config.Load(args[0], viper.GetString("config"), preset)
		if cfg == nil {
			return err
		}
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v, showing built-in values\n", err)
		}

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		defer enc.Close()
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configDumpCmd)
	rootCmd.AddCommand(configCmd)
}
