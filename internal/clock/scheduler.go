// Package clock provides a virtual-time scheduler for the simulation.
// Time only moves when the owner calls Advance, so timers fire on the same
// goroutine that drives the ticks and need no locking.
package clock

import (
	"sort"
	"time"
)

// Timer is a pending callback created by Scheduler.After.
type Timer struct {
	id      uint64
	at      time.Duration
	fn      func()
	fired   bool
	stopped bool
}

// Stop prevents the timer from firing.
// Returns false if the timer already fired or was already stopped.
func (t *Timer) Stop() bool {
	if t == nil || t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// Pending reports whether the timer is still waiting to fire.
func (t *Timer) Pending() bool {
	return t != nil && !t.fired && !t.stopped
}

// Deadline returns the virtual time at which the timer fires.
func (t *Timer) Deadline() time.Duration {
	return t.at
}

// Scheduler is a virtual clock with a queue of one-shot timers.
type Scheduler struct {
	now    time.Duration
	nextID uint64
	timers []*Timer
}

// NewScheduler creates a scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once the clock has advanced by d.
// A non-positive d fires on the next Advance call.
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	s.nextID++
	t := &Timer{
		id: s.nextID,
		at: s.now + d,
		fn: fn,
	}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward by dt and fires every timer whose deadline
// has been reached, earliest first (creation order breaks ties).
// Timers scheduled by a firing callback fire in the same call if they are
// already due. Returns the number of timers fired.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt > 0 {
		s.now += dt
	}

	fired := 0
	for {
		t := s.nextDue()
		if t == nil {
			break
		}
		t.fired = true
		fired++
		if t.fn != nil {
			t.fn()
		}
	}
	s.compact()
	return fired
}

// nextDue returns the earliest pending timer that is due, or nil.
func (s *Scheduler) nextDue() *Timer {
	var best *Timer
	for _, t := range s.timers {
		if !t.Pending() || t.at > s.now {
			continue
		}
		if best == nil || t.at < best.at || (t.at == best.at && t.id < best.id) {
			best = t
		}
	}
	return best
}

// compact drops fired and stopped timers from the queue.
func (s *Scheduler) compact() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if t.Pending() {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = live
}

// Pending returns the number of timers waiting to fire.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if t.Pending() {
			n++
		}
	}
	return n
}

// Deadlines returns the deadlines of all pending timers in firing order.
func (s *Scheduler) Deadlines() []time.Duration {
	var out []time.Duration
	for _, t := range s.timers {
		if t.Pending() {
			out = append(out, t.at)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Reset stops every pending timer. The clock keeps its current time.
func (s *Scheduler) Reset() {
	for _, t := range s.timers {
		t.Stop()
	}
	s.timers = s.timers[:0]
}
