// Package game implements the LilyHop simulation: a frog jumps onto a lily
// pad that slides back and forth across the field. Landing scores points and
// speeds the game up; missing the pad or landing on a hazardous one ends the
// run.
//
// The simulation is single-threaded. All mutation happens inside Start,
// RequestJump, AdvanceTick and EndRun; the delayed landing runs from the
// scheduler during AdvanceTick.
package game

import (
	"time"

	"github.com/vovakirdan/lilyhop/internal/clock"
	"github.com/vovakirdan/lilyhop/internal/config"
	"github.com/vovakirdan/lilyhop/internal/core"
)

// Phase is the lifecycle state of the simulation.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Outcome is the result of a landing.
type Outcome int

const (
	OutcomeMiss Outcome = iota
	OutcomeHazard
	OutcomeGold
	OutcomeNormal
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeMiss:
		return "miss"
	case OutcomeHazard:
		return "hazard"
	case OutcomeGold:
		return "gold"
	case OutcomeNormal:
		return "normal"
	default:
		return "unknown"
	}
}

// Judge decides what happens when the frog lands while pad is active.
// The pad footprint is shrunk by the landing margin on both edges.
func Judge(cfg config.Config, pad Pad) Outcome {
	frog := core.NewSpan(cfg.FrogX(), cfg.Frog.Width)
	target := pad.Span(cfg.Lily.Width).Inset(cfg.Frog.LandingMargin)

	switch {
	case !frog.Overlaps(target):
		return OutcomeMiss
	case pad.Kind == KindHazard:
		return OutcomeHazard
	case pad.Kind == KindGold:
		return OutcomeGold
	default:
		return OutcomeNormal
	}
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithSink adds an event sink.
func WithSink(k Sink) Option {
	return func(s *Simulation) {
		s.sinks = append(s.sinks, k)
	}
}

// WithScheduler replaces the internal scheduler.
func WithScheduler(sched *clock.Scheduler) Option {
	return func(s *Simulation) {
		s.sched = sched
	}
}

// Simulation is the game state machine. It owns the frog, the active pad,
// the score and the speed. Create it with New.
type Simulation struct {
	cfg   config.Config
	rng   Sampler
	gen   *Generator
	sched *clock.Scheduler
	sinks Sinks

	phase    Phase
	score    int
	speed    float64
	pad      *Pad // nil while no pad is active
	airborne bool
	landing  *clock.Timer
	run      uint64 // Incremented on every Start
	tick     uint64 // Ticks advanced in the current run
	jumps    int    // Jumps made in the current run

	landings    int     // Landings on an active pad in the current run
	lastOutcome Outcome // Outcome of the most recent of those landings
}

// New creates an idle simulation. rng feeds both the pad generator and the
// hazard rolls at bounces.
func New(cfg config.Config, rng Sampler, opts ...Option) *Simulation {
	s := &Simulation{
		cfg:   cfg,
		rng:   rng,
		gen:   NewGenerator(cfg, rng),
		sched: clock.NewScheduler(),
		phase: PhaseIdle,
		speed: cfg.Physics.BaseSpeed,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddSink registers another event sink.
func (s *Simulation) AddSink(k Sink) {
	s.sinks = append(s.sinks, k)
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() config.Config {
	return s.cfg
}

// Phase returns the current lifecycle phase.
func (s *Simulation) Phase() Phase {
	return s.phase
}

// Score returns the current score.
func (s *Simulation) Score() int {
	return s.score
}

// Speed returns the current game speed.
func (s *Simulation) Speed() float64 {
	return s.speed
}

// Airborne reports whether the frog is mid-jump.
func (s *Simulation) Airborne() bool {
	return s.airborne
}

// Pad returns the active pad, if any.
func (s *Simulation) Pad() (Pad, bool) {
	if s.pad == nil {
		return Pad{}, false
	}
	return *s.pad, true
}

// Tick returns the number of ticks advanced in the current run.
func (s *Simulation) Tick() uint64 {
	return s.tick
}

// Run returns the identifier of the current (or last) run.
func (s *Simulation) Run() uint64 {
	return s.run
}

// Start begins a fresh run from Idle or GameOver. Ignored while running.
func (s *Simulation) Start() {
	if s.phase == PhaseRunning {
		return
	}

	// Drop anything scheduled by the previous run
	s.landing.Stop()
	s.landing = nil
	s.sched.Reset()

	s.run++
	s.score = 0
	s.speed = s.cfg.Physics.BaseSpeed
	s.airborne = false
	s.tick = 0
	s.jumps = 0
	s.landings = 0
	s.lastOutcome = OutcomeMiss
	s.removePad()

	s.phase = PhaseRunning
	s.sinks.OnRunStarted(s.run)
	s.sinks.OnScoreChanged(s.score)
	s.spawnPad()
}

// RequestJump launches the frog if it is on the ground during a run.
// Extra requests while airborne are ignored, so only one landing is ever
// pending.
func (s *Simulation) RequestJump() {
	if s.phase != PhaseRunning || s.airborne {
		return
	}

	s.airborne = true
	s.jumps++
	run := s.run
	s.landing = s.sched.After(s.cfg.JumpDuration(), func() {
		s.land(run)
	})
	s.sinks.OnFrogJumped()
}

// AdvanceTick advances the run by dt. The pad moves speed units per
// reference frame, scaled by dt; dt <= 0 counts as exactly one frame.
// A landing that falls due during dt is resolved before the pad moves.
func (s *Simulation) AdvanceTick(dt time.Duration) {
	if s.phase != PhaseRunning {
		return
	}

	frame := s.cfg.FrameDuration()
	if dt <= 0 {
		dt = frame
	}
	s.tick++

	s.sched.Advance(dt)
	if s.phase != PhaseRunning {
		return
	}

	if s.pad != nil {
		s.movePad(float64(dt) / float64(frame))
	}
}

// EndRun finishes the current run and reports the final score.
// Calling it outside a run, or twice, has no effect.
func (s *Simulation) EndRun() {
	if s.phase != PhaseRunning {
		return
	}

	s.landing.Stop()
	s.landing = nil
	s.sched.Reset()
	s.airborne = false
	s.phase = PhaseGameOver
	s.sinks.OnRunEnded(s.score)
}

// land is the scheduled end of a jump. A landing from an earlier run is
// discarded.
func (s *Simulation) land(run uint64) {
	if run != s.run || s.phase != PhaseRunning {
		return
	}
	s.landing = nil
	s.resolveLanding()
}

// resolveLanding grounds the frog and applies the landing outcome.
func (s *Simulation) resolveLanding() {
	s.airborne = false
	s.sinks.OnFrogLanded()

	if s.pad == nil {
		return
	}

	outcome := Judge(s.cfg, *s.pad)
	s.landings++
	s.lastOutcome = outcome

	switch outcome {
	case OutcomeMiss, OutcomeHazard:
		s.EndRun()

	case OutcomeGold:
		s.score += s.cfg.Lily.GoldScore
		s.speed += s.cfg.Physics.SpeedIncrement
		s.sinks.OnScoreChanged(s.score)
		s.removePad()
		s.spawnPad()

	case OutcomeNormal:
		s.score++
		s.speed += s.cfg.Physics.SpeedIncrement
		s.pad.Speed = s.speed
		s.sinks.OnScoreChanged(s.score)
	}
}

// movePad moves the pad by the given number of frames and handles a bounce.
func (s *Simulation) movePad(frames float64) {
	p := s.pad
	p.X += float64(p.Dir) * p.Speed * frames

	maxX := s.cfg.MaxPadX()
	if p.X > 0 && p.X < maxX {
		s.sinks.OnPadMoved(s.view(*p))
		return
	}

	// Bounce: temporary pads are replaced, normal pads may turn hazardous
	if p.Kind == KindGold || p.Kind == KindHazard {
		s.removePad()
		s.spawnPad()
		p = s.pad
	} else if s.rng.Float64() < s.cfg.Lily.BadTransformChance {
		p.Kind = KindHazard
		s.sinks.OnPadTransformed(s.view(*p))
	}

	if p.X <= 0 {
		p.X = 0
		p.Dir = 1
	} else {
		p.X = maxX
		p.Dir = -1
	}
	s.sinks.OnPadMoved(s.view(*p))
}

// spawnPad creates the active pad at the current speed.
func (s *Simulation) spawnPad() {
	pad := s.gen.Spawn(s.speed)
	s.pad = &pad
	s.sinks.OnPadSpawned(s.view(pad))
}

// removePad discards the active pad, if any.
func (s *Simulation) removePad() {
	if s.pad == nil {
		return
	}
	s.pad = nil
	s.sinks.OnPadRemoved()
}

func (s *Simulation) view(p Pad) PadView {
	return PadView{
		Kind:   p.Kind,
		X:      p.X,
		Y:      s.cfg.Field.SpawnY,
		Width:  s.cfg.Lily.Width,
		Height: s.cfg.Lily.Height,
		Dir:    p.Dir,
		Speed:  p.Speed,
	}
}
