package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/twin-arcade/internal/platform/tui"
	"github.com/vovakirdan/twin-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Enter        - Start / pause / resume
  P            - Pause
  R            - Reset
  Esc/B        - Leave (when not running)
  Q/Ctrl+C     - Quit

Combat:
  ←/→ or A/D   - Move
  ↑/W          - Jump
  J / K / L    - Light / heavy / blaster

Tetris:
  ←/→ or A/D   - Shift
  ↑/W or X     - Rotate clockwise
  Z            - Rotate counter-clockwise
  ↓/S          - Soft drop
  Space        - Hard drop

Difficulty options:
  easy   - Forgiving AI, slower gravity
  normal - Default tuning
  hard   - Aggressive AI, faster gravity
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play tetris
  arcade play combat --difficulty hard
  arcade play tetris --seed 7
  arcade play combat --config ./my-combat.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	return tui.Run(game, runtimeConfig(width, height), logger)
}
