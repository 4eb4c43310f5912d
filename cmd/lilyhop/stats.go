package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lilyhop/internal/storage"
)

var (
	flagStatsPlayer string
	flagClearRuns   bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show run statistics",
	Long: `Display aggregate statistics over every recorded run, or over one
player's runs with --player. --clear-runs deletes the run history; the
leaderboard highscores are kept.

Examples:
  lilyhop stats
  lilyhop stats --player pondking
  lilyhop stats --clear-runs`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&flagStatsPlayer, "player", "", "Only count runs by this nickname")
	statsCmd.Flags().BoolVar(&flagClearRuns, "clear-runs", false, "Delete the recorded run history")
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening database: %v", err)
	}
	defer store.Close()

	if flagClearRuns {
		if err := store.ClearRuns(); err != nil {
			fatalf("clearing runs: %v", err)
		}
		fmt.Println("Run history cleared.")
		return
	}

	stats, err := store.Stats(flagStatsPlayer)
	if err != nil {
		fatalf("retrieving stats: %v", err)
	}

	title := "All players"
	if flagStatsPlayer != "" {
		title = flagStatsPlayer
	}
	fmt.Printf("Run Statistics - %s\n", title)
	fmt.Println()

	if stats.RunsCount == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-12s %d\n", "Runs", stats.RunsCount)
	fmt.Printf("  %-12s %d\n", "Players", stats.Players)
	fmt.Printf("  %-12s %d\n", "Best", stats.HighScore)
	fmt.Printf("  %-12s %.1f\n", "Average", stats.AvgScore)
	fmt.Printf("  %-12s %d\n", "Total", stats.TotalScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  %-12s %s\n", "Last played", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
