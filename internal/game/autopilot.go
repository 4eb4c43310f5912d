package game

import (
	"time"

	"github.com/vovakirdan/lilyhop/internal/config"
)

// Autopilot decides when to jump by predicting where the pad will be when
// the landing resolves. It assumes the simulation is advanced by a fixed
// step and never jumps at a hazard pad or across a bounce.
type Autopilot struct {
	cfg  config.Config
	step time.Duration
}

// NewAutopilot creates an autopilot for a simulation advanced by step per
// tick. step <= 0 means one reference frame.
func NewAutopilot(cfg config.Config, step time.Duration) *Autopilot {
	if step <= 0 {
		step = cfg.FrameDuration()
	}
	return &Autopilot{cfg: cfg, step: step}
}

// ShouldJump reports whether a jump requested now would land safely.
func (a *Autopilot) ShouldJump(snap Snapshot) bool {
	if snap.Phase != PhaseRunning || snap.Airborne || !snap.HasPad {
		return false
	}
	if snap.Pad.Kind == KindHazard {
		return false
	}

	pad, ok := a.predict(snap.Pad)
	if !ok {
		return false
	}

	// Require the landing to hold within a unit either way
	for _, dx := range []float64{-1, 0, 1} {
		p := pad
		p.X += dx
		if out := Judge(a.cfg, p); out != OutcomeNormal && out != OutcomeGold {
			return false
		}
	}
	return true
}

// predict returns the pad as it will be when a jump requested now lands.
// ok is false if the pad bounces first, since bounces may replace it or
// turn it hazardous.
func (a *Autopilot) predict(pad Pad) (Pad, bool) {
	// The landing fires on tick n, before that tick's move
	n := (a.cfg.JumpDuration() + a.step - 1) / a.step
	moves := float64(n - 1)
	frames := float64(a.step) / float64(a.cfg.FrameDuration())

	pad.X += float64(pad.Dir) * pad.Speed * frames * moves
	if pad.X <= 0 || pad.X >= a.cfg.MaxPadX() {
		return pad, false
	}
	return pad, true
}
