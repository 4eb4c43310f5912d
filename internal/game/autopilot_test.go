package game

import (
	"context"
	"testing"
	"time"

	"github.com/vovakirdan/lilyhop/internal/config"
)

func TestAutopilotSkipsUnsafePads(t *testing.T) {
	cfg := config.Default()
	pilot := NewAutopilot(cfg, 0)
	s := New(cfg, newScript())
	s.Start()

	tests := []struct {
		name string
		pad  Pad
		want bool
	}{
		{"stationary under frog", Pad{Kind: KindNormal, X: 135, Dir: 1}, true},
		{"stationary gold under frog", Pad{Kind: KindGold, X: 135, Dir: 1}, true},
		{"stationary far left", Pad{Kind: KindNormal, X: 10, Dir: 1}, false},
		{"hazard under frog", Pad{Kind: KindHazard, X: 135, Dir: 1}, false},
		// 18 moves of 3 bring x=40 to 94, inside the landing window
		{"arriving in time", Pad{Kind: KindNormal, X: 40, Dir: 1, Speed: 3}, true},
		// Would reach the wall before landing
		{"bounces first", Pad{Kind: KindNormal, X: 250, Dir: 1, Speed: 3}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snap := s.Snapshot()
			snap.HasPad = true
			snap.Pad = tc.pad
			if got := pilot.ShouldJump(snap); got != tc.want {
				t.Errorf("ShouldJump() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestAutopilotIdleOrAirborne(t *testing.T) {
	cfg := config.Default()
	pilot := NewAutopilot(cfg, 0)
	s := New(cfg, newScript())

	if pilot.ShouldJump(s.Snapshot()) {
		t.Error("ShouldJump() while idle")
	}

	s.Start()
	parkPad(s, KindNormal, 135)
	s.RequestJump()
	if pilot.ShouldJump(s.Snapshot()) {
		t.Error("ShouldJump() while airborne")
	}
}

func TestAutopilotScores(t *testing.T) {
	cfg := config.Default()
	s := New(cfg, NewRand(7))
	r := &Runner{Sim: s, Pilot: NewAutopilot(cfg, 0), MaxTicks: 3000}

	res, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !res.Truncated {
		t.Errorf("autopilot lost a run at tick %d with score %d", res.Snapshot.Tick, res.Snapshot.Score)
	}
	if res.Snapshot.Score == 0 {
		t.Error("autopilot never scored")
	}
}

func TestAutopilotCoarseStep(t *testing.T) {
	cfg := config.Default()
	step := 50 * time.Millisecond
	s := New(cfg, NewRand(3))
	r := &Runner{Sim: s, Pilot: NewAutopilot(cfg, step), Step: step, MaxTicks: 600}

	res, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !res.Truncated || res.Snapshot.Score == 0 {
		t.Errorf("coarse autopilot result = %+v", res)
	}
}
