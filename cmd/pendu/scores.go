package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quillon/pendu/internal/history"
	"github.com/quillon/pendu/internal/mode"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Browse the round history",
	Long: `Show recent rounds for a mode (story, play, or duel), newest first.
Without an argument the totals of every mode are listed.

Examples:
  pendu scores
  pendu scores story
  pendu scores play --limit 25`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rounds to show")
}

func runScores(cmd *cobra.Command, args []string) {
	dbPath := flagDBPath
	if dbPath == "" {
		dbPath = history.DefaultPath()
	}
	store, err := history.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		printTotals(store)
		return
	}
	printRecent(store, args[0])
}

// printTotals lists per-mode aggregates.
func printTotals(store *history.Store) {
	fmt.Println("Round history:")
	fmt.Println()
	fmt.Printf("  %-10s  %-7s  %-5s  %-11s  %s\n", "Mode", "Rounds", "Wins", "Best reward", "Last played")
	fmt.Printf("  %-10s  %-7s  %-5s  %-11s  %s\n", "----", "------", "----", "-----------", "-----------")

	for _, info := range mode.List() {
		stats, err := store.ModeStats(info.ID)
		if err != nil || stats == nil || stats.Rounds == 0 {
			continue
		}
		fmt.Printf("  %-10s  %-7d  %-5d  %-11d  %s\n",
			info.ID, stats.Rounds, stats.Wins, stats.BestReward,
			stats.LastPlayed.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Run 'pendu scores <mode>' for the round list.")
}

// printRecent lists the latest rounds of one mode.
func printRecent(store *history.Store, modeID string) {
	if !mode.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Modes: story, play, duel.")
		os.Exit(1)
	}

	entries, err := store.Recent(modeID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading history: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recent rounds - %s\n", modeID)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No rounds recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-16s  %-14s  %-6s  %-6s  %s\n", "When", "Level", "Word", "Result", "Errors", "Reward")
	fmt.Printf("  %-16s  %-16s  %-14s  %-6s  %-6s  %s\n", "----", "-----", "----", "------", "------", "------")

	for _, e := range entries {
		result := "lost"
		if e.Won {
			result = "won"
		}
		fmt.Printf("  %-16s  %-16s  %-14s  %-6s  %-6d  %d\n",
			e.CreatedAt.Format("2006-01-02 15:04"), e.LevelName, e.Word, result, e.ErrorsUsed, e.Reward)
	}
}
