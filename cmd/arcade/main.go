// arcade hosts Contra Combat and Tetris in the terminal or over SSH.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//
// Global flags (also read from ARCADE_* environment variables):
//
//	--fps <rate>           - Set tick rate (default: 30)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--config <path>        - Custom tuning YAML for the selected game
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--log-file <path>      - Write logs to a file
//	--debug                - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vovakirdan/twin-arcade/internal/config"
	"github.com/vovakirdan/twin-arcade/internal/core"

	// Import games to register them
	_ "github.com/vovakirdan/twin-arcade/internal/games/combat"
	_ "github.com/vovakirdan/twin-arcade/internal/games/tetris"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Twin Arcade - Contra Combat and Tetris in your terminal",
	Long: `Twin Arcade runs two games on one fixed-step engine: a one-on-one
combat match against the CPU, and Tetris.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play

Examples:
  arcade list
  arcade play tetris
  arcade play combat --difficulty hard
  arcade menu --seed 42
  arcade serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if _, ok := config.ParsePreset(viper.GetString("difficulty")); !ok {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", viper.GetString("difficulty"))
		}
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Int("fps", 30, "Tick rate (frames per second)")
	flags.Int64("seed", 0, "RNG seed (0 = random based on time)")
	flags.String("config", "", "Path to custom game config YAML")
	flags.String("difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	flags.String("log-file", "", "Write logs to this file")
	flags.Bool("debug", false, "Enable debug logging")

	for _, name := range []string{"fps", "seed", "config", "difficulty", "log-file", "debug"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
	viper.SetEnvPrefix("arcade")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
}

// runtimeConfig builds the per-game config from flags and environment.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   viper.GetInt("fps"),
		Seed:       viper.GetInt64("seed"),
		ConfigPath: viper.GetString("config"),
		Difficulty: viper.GetString("difficulty"),
	}
}

// newLogger builds the process logger. Interactive commands own the terminal,
// so they only log when a log file is given; the server always logs to
// stderr. The returned close function is never nil.
func newLogger(interactive bool) (*log.Logger, func() error, error) {
	var out io.Writer = os.Stderr
	closer := func() error { return nil }

	if path := viper.GetString("log-file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, closer, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f.Close
	} else if interactive {
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
	})
	if viper.GetBool("debug") {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}
