package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lilyhop/internal/game"
	"github.com/vovakirdan/lilyhop/internal/session"
)

var (
	flagRuns     int
	flagMaxTicks uint64
	flagRealtime bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the autopilot without a terminal UI",
	Long: `Play runs headless with the autopilot and print the results.
With a fixed --seed the results are reproducible. Simulated runs are not
saved to the leaderboard.

Examples:
  lilyhop simulate
  lilyhop simulate --runs 20 --seed 42
  lilyhop simulate --max-ticks 3600 --difficulty hard
  lilyhop simulate --realtime --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of runs")
	simulateCmd.Flags().Uint64Var(&flagMaxTicks, "max-ticks", 36000, "Stop a run after this many ticks (0 = no limit)")
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks with the wall clock")
}

func runSimulate(_ *cobra.Command, _ []string) {
	cfg := loadGameConfig()
	logger := newLogger(os.Stderr, "simulate")

	fps := flagFPS
	if fps <= 0 {
		fps = 60
	}
	step := time.Second / time.Duration(fps)
	base := seed()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var total, best int
	played := 0
	for i := 0; i < flagRuns; i++ {
		sim := game.New(cfg, game.NewRand(base+int64(i)), game.WithSink(session.LogSink{Logger: logger}))
		runner := &game.Runner{
			Sim:      sim,
			Pilot:    game.NewAutopilot(cfg, step),
			Step:     step,
			MaxTicks: flagMaxTicks,
			Realtime: flagRealtime,
		}

		res, err := runner.Run(ctx)
		if errors.Is(err, context.Canceled) {
			fmt.Println("interrupted")
			break
		}
		if err != nil {
			fatalf("%v", err)
		}

		snap := res.Snapshot
		status := "lost"
		if res.Truncated {
			status = "tick limit"
		}
		fmt.Printf("run %-4d seed %-20d score %-6d jumps %-6d ticks %-7d %s\n",
			i+1, base+int64(i), snap.Score, snap.Jumps, snap.Tick, status)

		played++
		total += snap.Score
		best = max(best, snap.Score)
	}

	if played > 1 {
		fmt.Println()
		fmt.Printf("runs %d  best %d  average %.1f\n", played, best, float64(total)/float64(played))
	}
}
