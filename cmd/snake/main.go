// snake is a grid snake game for the terminal.
//
// Usage:
//
//	snake                    - Start menu to play or watch replays
//	snake play               - Play a game directly
//	snake serve              - Start SSH server for remote play
//	snake replays            - List recorded games
//	snake replay <id>        - Re-run a recorded game
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Game config YAML (default search: ~/.snake/config.yaml, ./configs/snake.yaml)
//	--seed <value>      - Set RNG seed for reproducible food placement
//	--db <path>         - Set database path (default: ~/.snake/replays.db)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
	flagKeep     int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake is the classic grid game: steer the snake, eat berries,
and avoid the walls and your own tail.

Running snake without a command opens a menu to start a game or
watch a recorded one.

Available commands:
  play     - Play a game directly
  serve    - Start SSH server for remote play
  replays  - List recorded games
  replay   - Re-run a recorded game
  config   - Print the effective configuration

Examples:
  snake
  snake play --seed 42
  snake serve --ssh :2222
  snake replay 3 --png final.png`,
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from config, random if unset)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/replays.db", "Path to replay database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.snake/snake.log", "Log file for terminal play (empty disables)")
	rootCmd.PersistentFlags().IntVar(&flagKeep, "keep", 500, "Replays to keep after each save (0 = all)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the game config and applies --seed.
func loadConfig() (config.Snake, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	return cfg, nil
}

// newLogger creates a logger writing to w at --log-level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// fileLogger returns a logger for terminal play, where stderr would
// corrupt the screen. It logs to --log-file, or nowhere if that fails.
func fileLogger() (*log.Logger, func()) {
	path := expandHome(flagLogFile)
	if path == "" {
		return newLogger(io.Discard, "snake"), func() {}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return newLogger(io.Discard, "snake"), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return newLogger(io.Discard, "snake"), func() {}
	}
	return newLogger(f, "snake"), func() { f.Close() }
}

// openStore opens the replay database. Play continues without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open replay database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// screenshotDir returns where Ctrl+S saves frames.
func screenshotDir() string {
	return expandHome("~/.snake/screenshots")
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, path[1:])
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := terminalSize()
	runTUI(func(opts tui.Options) (tea.Model, error) {
		return tui.NewSessionModel(cfg, opts, "", width, height), nil
	})
}

// runTUI opens logging and storage, runs the model built by newModel and
// closes everything before exiting on error.
func runTUI(newModel func(tui.Options) (tea.Model, error)) {
	logger, closeLog := fileLogger()
	store := openStore(logger)

	opts := tui.Options{
		Store:         store,
		Logger:        logger,
		ScreenshotDir: screenshotDir(),
		KeepReplays:   flagKeep,
	}

	model, err := newModel(opts)
	if err == nil {
		err = tui.Run(model)
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
