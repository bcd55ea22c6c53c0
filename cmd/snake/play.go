package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of snake right away.

The snake starts in the middle heading right. Eating a berry makes it
one cell longer; hitting a wall or the snake itself ends the game.
Every game is recorded and can be watched later with 'snake replay'.

Controls:
  Arrows/WASD  - Steer (reversing is ignored)
  R            - Restart (after game over)
  Ctrl+S       - Save the current frame as PNG in ~/.snake/screenshots
  Esc/Q/Ctrl+C - Quit

Examples:
  snake play
  snake play --seed 42
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

// terminalSize returns the size of stdout, or 80x24 if unknown.
func terminalSize() (width, height int) {
	width, height = 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Check the board fits before taking over the screen
	needW, needH := tui.RequiredSize(cfg)
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < needW || h < needH) {
		fmt.Fprintf(os.Stderr, "Error: terminal is %dx%d, a %dx%d grid needs at least %dx%d\n",
			w, h, cfg.GridSize, cfg.GridSize, needW, needH)
		fmt.Fprintln(os.Stderr, "Resize the terminal or lower grid_size in the config.")
		os.Exit(1)
	}

	runTUI(func(opts tui.Options) (tea.Model, error) {
		return tui.NewModel(cfg, opts)
	})
}
