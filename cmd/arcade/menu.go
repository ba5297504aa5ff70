package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/twin-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, ←/→ to change difficulty and Enter to
select a game. Leaving a game returns you to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Cycle difficulty
  Enter/Space  - Select game
  ?            - Show game controls
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 60
  arcade menu --log-file arcade.log --debug`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	return tui.RunSession(runtimeConfig(width, height), logger)
}
