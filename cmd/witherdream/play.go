package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/witherdream/internal/config"
	"github.com/vovakirdan/witherdream/internal/core"
	"github.com/vovakirdan/witherdream/internal/platform/tui"
	"github.com/vovakirdan/witherdream/internal/storage"
)

var flagWatch bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a dream session in this terminal.

Controls (defaults, see 'witherdream config'):
  W/A/S/D      - Walk
  Z            - Talk, use the bed; hold in a dream to wake up
  I            - Inventory
  Enter/Space  - Confirm
  Up/Down      - Menu and dialogue cursor
  Esc          - Back
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

With --watch the config file is reloaded whenever it changes, so speeds,
radii and key bindings can be tuned while playing.

Examples:
  witherdream play
  witherdream play --seed 42
  witherdream play --config ./witherdream.yaml --watch`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	logger, closeLog := fileLogger()
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	opts := []tui.ModelOption{tui.WithModelLogger(logger)}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open dream journal: %v\n", err)
		// Continue without storage - the game still works
	} else {
		defer store.Close()
		opts = append(opts, tui.WithStore(store))
	}

	if flagWatch {
		if path := config.ResolvePath(flagConfig); path == "" {
			fmt.Fprintln(os.Stderr, "Warning: no config file to watch, using built-in defaults")
		} else if watcher, watchErr := config.NewWatcher(path); watchErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot watch %s: %v\n", path, watchErr)
		} else {
			defer watcher.Close()
			logger.Info("watching config", "path", watcher.Path())
			opts = append(opts, tui.WithWatcher(watcher))
		}
	}

	if err := tui.Run(cfg, rt, opts...); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
