package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bonus-pong/internal/registry"
	"github.com/vovakirdan/bonus-pong/internal/storage"
)

var (
	flagLimit   int
	flagMatchID string
	flagClear   bool
)

var historyCmd = &cobra.Command{
	Use:   "history [mode]",
	Short: "Show finished matches",
	Long: `Display recent finished matches and win counts per side.
Without a mode, every mode is listed.

Examples:
  pong history
  pong history pong_duel --limit 5
  pong history --match 1f0e8c3a-5f8e-4d7e-9c1b-2a3b4c5d6e7f
  pong history pong --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of matches to show")
	historyCmd.Flags().StringVar(&flagMatchID, "match", "", "Show a single match by ID")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the history of the mode (or all modes)")
}

func runHistory(_ *cobra.Command, args []string) error {
	mode := ""
	if len(args) > 0 {
		mode = args[0]
		if !registry.Exists(mode) {
			return fmt.Errorf("unknown mode %q (run 'pong list' to see available modes)", mode)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagMatchID != "":
		return printMatch(store, flagMatchID)
	case flagClear:
		if err := store.ClearMatches(mode); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	}

	matches, err := store.RecentMatches(mode, flagLimit)
	if err != nil {
		return err
	}

	title := "all modes"
	if mode != "" {
		title = mode
	}
	fmt.Printf("Match History - %s\n", title)
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Finish a match with 'pong play' to see it here!")
		return nil
	}

	fmt.Printf("  %-16s  %-10s  %-7s  %-6s  %s\n", "Date", "Mode", "Score", "Winner", "Match")
	fmt.Printf("  %-16s  %-10s  %-7s  %-6s  %s\n", "----", "----", "-----", "------", "-----")
	for _, rec := range matches {
		fmt.Printf("  %-16s  %-10s  %-7s  %-6s  %s\n",
			rec.CreatedAt.Local().Format("2006-01-02 15:04"),
			rec.Mode,
			fmt.Sprintf("%d-%d", rec.ScoreLeft, rec.ScoreRight),
			rec.Winner,
			rec.MatchID,
		)
	}

	fmt.Println()
	return printStats(store, mode)
}

// printStats prints win counts for one mode, or for every played mode.
func printStats(store *storage.Store, mode string) error {
	var stats []*storage.ModeStats
	if mode != "" {
		s, err := store.ModeStats(mode)
		if err != nil {
			return err
		}
		stats = append(stats, s)
	} else {
		all, err := store.AllModeStats()
		if err != nil {
			return err
		}
		for _, s := range all {
			stats = append(stats, s)
		}
		sort.Slice(stats, func(i, j int) bool { return stats[i].Mode < stats[j].Mode })
	}

	for _, s := range stats {
		fmt.Printf("%s: %d matches, left %d - right %d wins\n", s.Mode, s.Matches, s.LeftWins, s.RightWins)
	}
	return nil
}

// printMatch prints a single recorded match.
func printMatch(store *storage.Store, matchID string) error {
	rec, err := store.MatchByID(matchID)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("no match with ID %s", matchID)
	}

	fps := flagFPS
	if fps <= 0 {
		fps = 60
	}
	played := time.Duration(rec.DurationTicks) * time.Second / time.Duration(fps)

	fmt.Printf("Match %s\n", rec.MatchID)
	fmt.Printf("  Mode:    %s\n", rec.Mode)
	fmt.Printf("  Score:   %d - %d\n", rec.ScoreLeft, rec.ScoreRight)
	fmt.Printf("  Winner:  %s\n", rec.Winner)
	fmt.Printf("  Played:  %s (%d ticks)\n", played.Round(time.Second), rec.DurationTicks)
	fmt.Printf("  Date:    %s\n", rec.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	return nil
}
