package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lilyhop/internal/storage"
)

var (
	flagRecent   bool
	flagBestRuns bool
	flagLimit    int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the best players, the most recent runs with --recent, or the
highest scoring single runs with --best-runs. Built-in players are marked
with *.

Examples:
  lilyhop scores
  lilyhop scores --limit 3
  lilyhop scores --recent
  lilyhop scores --best-runs --limit 5`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent runs instead of the leaderboard")
	scoresCmd.Flags().BoolVar(&flagBestRuns, "best-runs", false, "Show the highest scoring runs")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of entries to show")
}

func runScores(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "lilyhop")
	ctrl, store := openSession(loadGameConfig(), logger)
	if store == nil {
		fatalf("cannot open database %s", flagDBPath)
	}
	defer store.Close()

	if flagRecent || flagBestRuns {
		title := "Recent Runs"
		var runs []storage.RunEntry
		var err error
		if flagBestRuns {
			title = "Best Runs"
			runs, err = store.TopRuns(flagLimit)
		} else {
			runs, err = store.RecentRuns("", flagLimit)
		}
		if err != nil {
			fatalf("retrieving runs: %v", err)
		}
		printRuns(title, runs)
		return
	}

	fmt.Println("Leaderboard")
	fmt.Println()

	// Print header
	fmt.Printf("  %-4s  %-22s  %s\n", "Rank", "Player", "Best")
	fmt.Printf("  %-4s  %-22s  %s\n", "----", "------", "----")

	for i, p := range ctrl.Leaderboard(flagLimit) {
		name := p.Nickname
		if p.IsSeeded {
			name += " *"
		}
		if p.Nickname == ctrl.Nickname() {
			name += " (you)"
		}
		fmt.Printf("  %-4d  %-22s  %d\n", i+1, name, p.HighScore)
	}
}

func printRuns(title string, runs []storage.RunEntry) {
	fmt.Println(title)
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'lilyhop play' to record the first one!")
		return
	}

	fmt.Printf("  %-20s  %-6s  %s\n", "Player", "Score", "Date")
	fmt.Printf("  %-20s  %-6s  %s\n", "------", "-----", "----")
	for _, r := range runs {
		fmt.Printf("  %-20s  %-6d  %s\n", r.Nickname, r.Score, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
