package game

import (
	"context"
	"time"
)

// Result is the outcome of a headless run.
type Result struct {
	Snapshot  Snapshot
	Truncated bool // The tick limit ended the run
}

// Runner drives a simulation without a terminal. Each tick advances the
// simulation by Step; with Realtime set the ticks are paced by a wall-clock
// ticker, otherwise they run back to back.
type Runner struct {
	Sim      *Simulation
	Pilot    *Autopilot    // nil never jumps
	Step     time.Duration // <= 0 means one reference frame
	MaxTicks uint64        // 0 means unlimited
	Realtime bool
}

// Run starts a run if none is active and advances it until it ends, the
// tick limit is hit or ctx is cancelled. A cancelled run is ended so its
// sinks still see the final score.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	s := r.Sim
	step := r.Step
	if step <= 0 {
		step = s.Config().FrameDuration()
	}

	s.Start()

	var tick <-chan time.Time
	if r.Realtime {
		ticker := time.NewTicker(step)
		defer ticker.Stop()
		tick = ticker.C
	}

	var res Result
	for s.Phase() == PhaseRunning {
		if tick != nil {
			select {
			case <-ctx.Done():
				s.EndRun()
				return Result{Snapshot: s.Snapshot()}, ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			s.EndRun()
			return Result{Snapshot: s.Snapshot()}, err
		}

		if r.Pilot != nil && r.Pilot.ShouldJump(s.Snapshot()) {
			s.RequestJump()
		}
		s.AdvanceTick(step)

		if r.MaxTicks > 0 && s.Tick() >= r.MaxTicks && s.Phase() == PhaseRunning {
			s.EndRun()
			res.Truncated = true
		}
	}

	res.Snapshot = s.Snapshot()
	return res, nil
}
