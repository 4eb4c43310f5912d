package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/lilyhop/internal/config"
)

func TestRunnerTickLimit(t *testing.T) {
	s, rec := newTestSim(t, newScript())
	r := &Runner{Sim: s, MaxTicks: 500}

	res, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !res.Truncated {
		t.Error("expected the tick limit to end the run")
	}
	if res.Snapshot.Tick != 500 {
		t.Errorf("Tick = %d, expected 500", res.Snapshot.Tick)
	}
	if res.Snapshot.Phase != PhaseGameOver {
		t.Errorf("Phase = %v, expected %v", res.Snapshot.Phase, PhaseGameOver)
	}
	if len(rec.ended) != 1 {
		t.Errorf("OnRunEnded called %d times, expected 1", len(rec.ended))
	}
}

func TestRunnerEndsOnMiss(t *testing.T) {
	cfg := config.Default()
	s := New(cfg, newScript())
	s.Start()
	parkPad(s, KindNormal, 0)
	s.RequestJump()

	r := &Runner{Sim: s, MaxTicks: 1000}
	res, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if res.Truncated {
		t.Error("miss should end the run before the tick limit")
	}
	if res.Snapshot.Phase != PhaseGameOver || res.Snapshot.Score != 0 {
		t.Errorf("result = %+v", res.Snapshot)
	}
}

func TestRunnerCancelled(t *testing.T) {
	s, rec := newTestSim(t, newScript())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := (&Runner{Sim: s}).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, expected context.Canceled", err)
	}
	if res.Snapshot.Phase != PhaseGameOver {
		t.Errorf("Phase = %v, expected %v", res.Snapshot.Phase, PhaseGameOver)
	}
	if len(rec.ended) != 1 {
		t.Errorf("OnRunEnded called %d times, expected 1", len(rec.ended))
	}
}

func TestRunnerRealtime(t *testing.T) {
	s, _ := newTestSim(t, newScript())
	r := &Runner{Sim: s, Step: time.Millisecond, MaxTicks: 5, Realtime: true}

	start := time.Now()
	res, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !res.Truncated || res.Snapshot.Tick != 5 {
		t.Errorf("result = %+v", res)
	}
	if elapsed := time.Since(start); elapsed < 4*time.Millisecond {
		t.Errorf("realtime run took %v, expected paced ticks", elapsed)
	}
}

func TestRunnerRealtimeCancelled(t *testing.T) {
	s, _ := newTestSim(t, newScript())
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := (&Runner{Sim: s, Realtime: true}).Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() error = %v, expected context.DeadlineExceeded", err)
	}
}
