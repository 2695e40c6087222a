// witherdream is a terminal game about falling asleep and finding your way
// out of a dream maze.
//
// Usage:
//
//	witherdream play          - Play locally
//	witherdream serve         - Start SSH server for remote dreamers
//	witherdream journal       - Browse finished dreams
//	witherdream maze          - Print a generated maze
//	witherdream config        - Print the default configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 30)
//	--seed <value>   - Set RNG seed for reproducible dreams
//	--config <path>  - Use a specific config file
//	--db <path>      - Set journal path (default: ~/.witherdream/journal.db)
//	--debug          - Verbose logging
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/witherdream/internal/config"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
	flagDBPath string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "witherdream",
	Short: "Witherdream - fall asleep and wander a dream maze",
	Long: `Witherdream is a small terminal game. Lie down in your room, drift into
a randomly built dream world, collect what you find and hold the interact
key to wake up again.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  journal  - Browse the dreams you have finished
  maze     - Print a generated dream maze
  config   - Print the default configuration

Examples:
  witherdream play
  witherdream play --watch --config ./witherdream.yaml
  witherdream serve --ssh :2222
  witherdream journal --plain`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.witherdream/journal.db", "Path to dream journal database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(mazeCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration named by --config, or the first one
// found on the search path.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// logLevel returns the level selected by --debug.
func logLevel() log.Level {
	if flagDebug {
		return log.DebugLevel
	}
	return log.InfoLevel
}

// fileLogger returns a logger writing to ~/.witherdream/debug.log when
// --debug is set. The terminal belongs to the game while it runs.
func fileLogger() (*log.Logger, func()) {
	if !flagDebug {
		return log.New(io.Discard), func() {}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	dir := filepath.Join(home, ".witherdream")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return log.New(io.Discard), func() {}
	}

	return log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "witherdream",
		Level:           log.DebugLevel,
	}), func() { f.Close() }
}
