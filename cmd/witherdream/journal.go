package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/witherdream/internal/platform/tui"
	"github.com/vovakirdan/witherdream/internal/storage"
)

var (
	flagJournalLimit int
	flagJournalPlain bool
	flagJournalClear bool
	flagJournalID    int64
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Browse finished dreams",
	Long: `Show the dreams recorded in the journal.

In a terminal the journal opens as a browser with a per-world sidebar.
--plain prints it instead, which is also the default when stdout is not a
terminal.

Examples:
  witherdream journal
  witherdream journal --plain --limit 20
  witherdream journal --id 12
  witherdream journal --clear`,
	Args: cobra.NoArgs,
	Run:  runJournal,
}

func init() {
	journalCmd.Flags().IntVar(&flagJournalLimit, "limit", 10, "Number of dreams to print in plain mode")
	journalCmd.Flags().BoolVar(&flagJournalPlain, "plain", false, "Print instead of opening the browser")
	journalCmd.Flags().BoolVar(&flagJournalClear, "clear", false, "Delete every recorded dream")
	journalCmd.Flags().Int64Var(&flagJournalID, "id", 0, "Print a single dream")
}

func runJournal(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening dream journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagJournalClear:
		err = store.ClearDreams()
		if err == nil {
			fmt.Println("Journal cleared.")
		}
	case flagJournalID > 0:
		err = printDream(store, flagJournalID)
	case flagJournalPlain || !term.IsTerminal(int(os.Stdout.Fd())):
		err = printJournal(store, flagJournalLimit)
	default:
		width, height, sizeErr := term.GetSize(int(os.Stdout.Fd()))
		if sizeErr != nil {
			width, height = 80, 24
		}
		err = tui.RunJournal(store, width, height)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printJournal(store *storage.Store, limit int) error {
	dreams, err := store.RecentDreams(limit)
	if err != nil {
		return err
	}

	fmt.Println("Dream Journal")
	fmt.Println()

	if len(dreams) == 0 {
		fmt.Println("No dreams recorded yet.")
		fmt.Println()
		fmt.Println("Run 'witherdream play', lie down and fall asleep.")
		return nil
	}

	fmt.Printf("  %-5s  %-10s  %-15s  %-6s  %-8s  %s\n", "ID", "Dreamer", "World", "Items", "Time", "Date")
	fmt.Printf("  %-5s  %-10s  %-15s  %-6s  %-8s  %s\n", "--", "-------", "-----", "-----", "----", "----")
	for _, d := range dreams {
		fmt.Printf("  %-5d  %-10s  %-15s  %-6d  %-8s  %s\n",
			d.ID, d.Dreamer, d.Theme, len(d.Items), fmt.Sprintf("%.1fs", d.Duration),
			d.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.WorldStats()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("Worlds")
	for _, ws := range stats {
		fmt.Printf("  %-15s  %3d dreams  %6.1fs  %3d items\n", ws.Theme, ws.Dreams, ws.TotalDuration, ws.ItemsFound)
	}
	return nil
}

func printDream(store *storage.Store, id int64) error {
	d, err := store.DreamByID(id)
	if err != nil {
		return err
	}
	if d == nil {
		return fmt.Errorf("no dream with id %d", id)
	}

	items := "none"
	if len(d.Items) > 0 {
		items = strings.Join(d.Items, ", ")
	}
	fmt.Printf("Dream #%d\n", d.ID)
	fmt.Printf("  Dreamer: %s\n", d.Dreamer)
	fmt.Printf("  World:   %s\n", d.Theme)
	fmt.Printf("  Maze:    %dx%d\n", d.MazeWidth, d.MazeHeight)
	fmt.Printf("  Items:   %s\n", items)
	fmt.Printf("  Time:    %.1fs\n", d.Duration)
	fmt.Printf("  Date:    %s\n", d.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}
