package game

import "time"

// Snapshot captures the complete simulation state for rendering,
// determinism testing and the headless runner.
type Snapshot struct {
	Run       uint64
	Tick      uint64
	Phase     Phase
	Score     int
	Speed     float64
	Jumps     int
	Landings  int     // Landings on a pad in this run
	Outcome   Outcome // Outcome of the latest landing, valid when Landings > 0
	HasPad    bool
	Pad       Pad
	Airborne  bool
	LandingIn time.Duration // Time until the pending landing, zero if grounded
	Now       time.Duration // Scheduler time
}

// Snapshot returns the current simulation snapshot.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Run:      s.run,
		Tick:     s.tick,
		Phase:    s.phase,
		Score:    s.score,
		Speed:    s.speed,
		Jumps:    s.jumps,
		Landings: s.landings,
		Outcome:  s.lastOutcome,
		Airborne: s.airborne,
		Now:      s.sched.Now(),
	}
	if s.pad != nil {
		snap.HasPad = true
		snap.Pad = *s.pad
	}
	if s.landing.Pending() {
		snap.LandingIn = s.landing.Deadline() - s.sched.Now()
	}
	return snap
}

// JumpProgress returns how far through the current jump the frog is, in
// [0, 1]. Zero while grounded.
func (snap Snapshot) JumpProgress(jump time.Duration) float64 {
	if !snap.Airborne || jump <= 0 {
		return 0
	}
	p := 1 - float64(snap.LandingIn)/float64(jump)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
