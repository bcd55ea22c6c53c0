package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/render"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagLimit    int
	flagPNGPath  string
	flagPNGWidth int
	flagWatch    bool
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List recorded games",
	Long: `Display the most recently recorded games, newest first.

Examples:
  snake replays
  snake replays --limit 50`,
	Args: cobra.NoArgs,
	Run:  runReplays,
}

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-run a recorded game",
	Long: `Re-run a recorded game from its seed and inputs and print where it
ended. The same seed and inputs always give the same game.

Examples:
  snake replay 3                      # Print the final state
  snake replay 3 --png final.png      # Also save the final frame
  snake replay 3 --png f.png --width 200
  snake replay 3 --png - > final.png  # PNG on stdout
  snake replay 3 --watch              # Watch it in the terminal`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replaysCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of replays to list")
	replayCmd.Flags().StringVar(&flagPNGPath, "png", "", "Write the final frame as PNG to this path (- for stdout)")
	replayCmd.Flags().IntVar(&flagPNGWidth, "width", 0, "Scale the PNG down to this width (0 = full size)")
	replayCmd.Flags().BoolVar(&flagWatch, "watch", false, "Play the replay back in the terminal")
}

func runReplays(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replay database: %v\n", err)
		os.Exit(1)
	}

	entries, err := store.RecentReplays(flagLimit)
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving replays: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No replays recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to record one!")
		return
	}

	// Print header
	fmt.Printf("  %-6s  %-6s  %-8s  %-6s  %-20s  %s\n", "ID", "Grid", "Ticks", "Inputs", "Seed", "Date")
	fmt.Printf("  %-6s  %-6s  %-8s  %-6s  %-20s  %s\n", "--", "----", "-----", "------", "----", "----")

	for _, e := range entries {
		fmt.Printf("  %-6d  %-6d  %-8d  %-6d  %-20d  %s\n",
			e.ID, e.GridSize, e.Ticks, len(e.Journal.Inputs), e.Seed,
			e.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func runReplay(_ *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid replay id %q\n", args[0])
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replay database: %v\n", err)
		os.Exit(1)
	}
	entry, err := store.Replay(id)
	store.Close()
	if errors.Is(err, storage.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "Error: no replay with id %d\n", id)
		fmt.Fprintln(os.Stderr, "Run 'snake replays' to see recorded games.")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading replay: %v\n", err)
		os.Exit(1)
	}

	if flagWatch {
		runTUI(func(opts tui.Options) (tea.Model, error) {
			opts.Store = nil // Playback is never recorded again
			return tui.NewPlaybackModel(entry.Journal, opts)
		})
		return
	}

	game, err := snake.Replay(entry.Journal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying: %v\n", err)
		os.Exit(1)
	}

	if flagPNGPath == "" {
		printSnapshot(id, game)
		return
	}

	cfg := game.Config()
	img := render.NewImage(cfg.GridSize, cfg.Scale)
	game.Render(img)

	// "-" streams the PNG to stdout instead of the summary
	if flagPNGPath == "-" {
		if err := img.EncodePNG(os.Stdout, flagPNGWidth); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printSnapshot(id, game)
	if err := img.SavePNG(flagPNGPath, flagPNGWidth); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Final frame written to %s\n", flagPNGPath)
}

func printSnapshot(id int64, game *snake.Game) {
	s := game.Snapshot()

	fmt.Printf("Replay #%d (seed %d, %dx%d grid)\n", id, game.Config().Seed, game.Config().GridSize, game.Config().GridSize)
	fmt.Println()
	fmt.Printf("  %-9s %s\n", "Phase", s.Phase)
	fmt.Printf("  %-9s %d\n", "Ticks", s.Tick)
	fmt.Printf("  %-9s %d\n", "Score", s.Score)
	fmt.Printf("  %-9s %d\n", "Length", s.Size)
	fmt.Printf("  %-9s %s\n", "Head", s.Head)
	fmt.Printf("  %-9s %s\n", "Food", s.Food)
	fmt.Printf("  %-9s %s\n", "Heading", s.Current)
	if err := game.Err(); err != nil {
		fmt.Printf("  %-9s %v\n", "Ended by", err)
	}
}
