package clock

import (
	"testing"
	"time"
)

func TestSchedulerFiresAtDeadline(t *testing.T) {
	s := NewScheduler()
	calls := 0
	s.After(300*time.Millisecond, func() { calls++ })

	if n := s.Advance(299 * time.Millisecond); n != 0 {
		t.Fatalf("Advance before deadline fired %d timers", n)
	}
	if calls != 0 {
		t.Fatal("timer fired early")
	}

	if n := s.Advance(time.Millisecond); n != 1 {
		t.Fatalf("Advance at deadline fired %d timers, expected 1", n)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}

	// Never fires twice
	s.Advance(time.Second)
	if calls != 1 {
		t.Errorf("timer fired again, calls=%d", calls)
	}
	if s.Pending() != 0 {
		t.Errorf("expected no pending timers, got %d", s.Pending())
	}
}

func TestSchedulerOrder(t *testing.T) {
	s := NewScheduler()
	var order []int

	s.After(30*time.Millisecond, func() { order = append(order, 3) })
	s.After(10*time.Millisecond, func() { order = append(order, 1) })
	s.After(20*time.Millisecond, func() { order = append(order, 2) })
	s.After(20*time.Millisecond, func() { order = append(order, 22) })

	s.Advance(time.Second)

	expected := []int{1, 2, 22, 3}
	if len(order) != len(expected) {
		t.Fatalf("order = %v, expected %v", order, expected)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Fatalf("order = %v, expected %v", order, expected)
		}
	}
}

func TestTimerStop(t *testing.T) {
	s := NewScheduler()
	fired := false
	timer := s.After(10*time.Millisecond, func() { fired = true })

	if !timer.Pending() {
		t.Fatal("new timer should be pending")
	}
	if !timer.Stop() {
		t.Fatal("Stop() on pending timer should return true")
	}
	if timer.Stop() {
		t.Error("second Stop() should return false")
	}

	s.Advance(time.Second)
	if fired {
		t.Error("stopped timer fired")
	}

	var nilTimer *Timer
	if nilTimer.Stop() || nilTimer.Pending() {
		t.Error("nil timer should be inert")
	}
}

func TestSchedulerReset(t *testing.T) {
	s := NewScheduler()
	fired := 0
	a := s.After(10*time.Millisecond, func() { fired++ })
	s.After(20*time.Millisecond, func() { fired++ })
	s.Advance(5 * time.Millisecond)

	s.Reset()
	if s.Pending() != 0 {
		t.Errorf("Reset should drop timers, %d pending", s.Pending())
	}
	if a.Pending() {
		t.Error("timer should not be pending after Reset")
	}
	if s.Now() != 5*time.Millisecond {
		t.Errorf("Reset should keep time, Now() = %v", s.Now())
	}

	s.Advance(time.Second)
	if fired != 0 {
		t.Errorf("timers fired after Reset: %d", fired)
	}
}

func TestSchedulerNestedTimer(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.After(10*time.Millisecond, func() {
		order = append(order, "outer")
		s.After(0, func() { order = append(order, "inner") })
	})

	s.Advance(10 * time.Millisecond)
	if len(order) != 2 || order[1] != "inner" {
		t.Errorf("order = %v, expected [outer inner]", order)
	}
}

func TestSchedulerDeadlines(t *testing.T) {
	s := NewScheduler()
	s.Advance(100 * time.Millisecond)
	s.After(50*time.Millisecond, nil)
	s.After(10*time.Millisecond, nil)

	d := s.Deadlines()
	if len(d) != 2 || d[0] != 110*time.Millisecond || d[1] != 150*time.Millisecond {
		t.Errorf("Deadlines() = %v", d)
	}
}
