package game

import (
	"testing"

	"github.com/vovakirdan/lilyhop/internal/config"
)

// scriptSampler returns queued values first, then fallback forever.
// The default fallback (0.99) yields normal pads spawned on the left and
// never turns a pad hazardous.
type scriptSampler struct {
	queue    []float64
	fallback float64
	draws    int
}

func newScript(vals ...float64) *scriptSampler {
	return &scriptSampler{queue: vals, fallback: 0.99}
}

func (s *scriptSampler) push(vals ...float64) {
	s.queue = append(s.queue, vals...)
}

func (s *scriptSampler) Float64() float64 {
	s.draws++
	if len(s.queue) == 0 {
		return s.fallback
	}
	v := s.queue[0]
	s.queue = s.queue[1:]
	return v
}

// recordingSink counts every event it receives.
type recordingSink struct {
	started     []uint64
	scores      []int
	spawned     []PadView
	moved       int
	transformed []PadView
	removed     int
	ended       []int
	jumped      int
	landed      int
}

func (r *recordingSink) OnRunStarted(run uint64)      { r.started = append(r.started, run) }
func (r *recordingSink) OnScoreChanged(score int)     { r.scores = append(r.scores, score) }
func (r *recordingSink) OnPadSpawned(pad PadView)     { r.spawned = append(r.spawned, pad) }
func (r *recordingSink) OnPadMoved(PadView)           { r.moved++ }
func (r *recordingSink) OnPadTransformed(pad PadView) { r.transformed = append(r.transformed, pad) }
func (r *recordingSink) OnPadRemoved()                { r.removed++ }
func (r *recordingSink) OnRunEnded(score int)         { r.ended = append(r.ended, score) }
func (r *recordingSink) OnFrogJumped()                { r.jumped++ }
func (r *recordingSink) OnFrogLanded()                { r.landed++ }

// newTestSim builds a simulation with the default config and a recording sink.
func newTestSim(t *testing.T, rng Sampler) (*Simulation, *recordingSink) {
	t.Helper()
	rec := &recordingSink{}
	return New(config.Default(), rng, WithSink(rec)), rec
}

// completeJump requests a jump and ticks one frame at a time until the frog
// is back on the ground.
func completeJump(t *testing.T, s *Simulation) {
	t.Helper()
	s.RequestJump()
	for i := 0; s.Airborne(); i++ {
		if i > 1000 {
			t.Fatal("jump never landed")
		}
		s.AdvanceTick(0)
	}
}

// parkPad replaces the active pad with a stationary one at x.
func parkPad(s *Simulation, kind Kind, x float64) *Pad {
	s.pad = &Pad{Kind: kind, X: x, Dir: 1, Speed: 0}
	return s.pad
}
