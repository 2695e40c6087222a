package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/witherdream/internal/config"
	"github.com/vovakirdan/witherdream/internal/maze"
)

var (
	flagMazeWidth  int
	flagMazeHeight int
)

var mazeCmd = &cobra.Command{
	Use:   "maze",
	Short: "Print a generated dream maze",
	Long: `Generate a maze the way a dream does and print it as text.
'#' is a wall. The size defaults to the configured maze.

Examples:
  witherdream maze
  witherdream maze --seed 7
  witherdream maze --width 41 --height 21`,
	Args: cobra.NoArgs,
	Run:  runMaze,
}

func init() {
	mazeCmd.Flags().IntVar(&flagMazeWidth, "width", 0, "Maze width in cells (0 = from config)")
	mazeCmd.Flags().IntVar(&flagMazeHeight, "height", 0, "Maze height in cells (0 = from config)")
}

func runMaze(_ *cobra.Command, _ []string) {
	mc := loadConfig().Maze
	if flagMazeWidth > 0 {
		mc.Width = flagMazeWidth
	}
	if flagMazeHeight > 0 {
		mc.Height = flagMazeHeight
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	grid := maze.Generate(mc.Width, mc.Height, mc.CellSize, rand.New(rand.NewSource(seed)))
	fmt.Println(grid.String())
	fmt.Printf("%dx%d, %d open cells, seed %d\n", grid.Width(), grid.Height(), grid.PathCount(), seed)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML, and where the active one is
read from. Save it to ~/.witherdream/config.yaml to customise.`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if path := config.ResolvePath(flagConfig); path != "" {
			fmt.Printf("# active config: %s\n", path)
		} else {
			fmt.Println("# active config: built-in defaults")
		}
		fmt.Print(string(config.DefaultYAML()))
	},
}
