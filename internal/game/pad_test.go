package game

import (
	"testing"

	"github.com/vovakirdan/lilyhop/internal/config"
)

func TestSpawnForcedSamples(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name      string
		samples   []float64
		kind      Kind
		x         float64
		dir       int
		speedMult float64
	}{
		{"gold from left", []float64{0.1, 0.9}, KindGold, -60, 1, 1.5},
		{"normal from right", []float64{0.5, 0.5}, KindNormal, 330, -1, 1},
		{"normal from left", []float64{0.15, 0.51}, KindNormal, -60, 1, 1},
		{"gold from right", []float64{0, 0}, KindGold, 330, -1, 1.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rng := newScript(tc.samples...)
			pad := NewGenerator(cfg, rng).Spawn(4)

			if pad.Kind != tc.kind {
				t.Errorf("Kind = %v, expected %v", pad.Kind, tc.kind)
			}
			if pad.X != tc.x || pad.Dir != tc.dir {
				t.Errorf("X=%v Dir=%d, expected X=%v Dir=%d", pad.X, pad.Dir, tc.x, tc.dir)
			}
			if pad.Speed != 4*tc.speedMult {
				t.Errorf("Speed = %v, expected %v", pad.Speed, 4*tc.speedMult)
			}
			if rng.draws != 2 {
				t.Errorf("Spawn drew %d samples, expected 2", rng.draws)
			}
		})
	}
}

func TestSpawnNeverHazard(t *testing.T) {
	cfg := config.Default()
	gen := NewGenerator(cfg, NewRand(1))

	gold, left := 0, 0
	const n = 10000
	for i := 0; i < n; i++ {
		pad := gen.Spawn(cfg.Physics.BaseSpeed)
		if pad.Kind == KindHazard {
			t.Fatal("Spawn produced a hazard pad")
		}
		if pad.Kind == KindGold {
			gold++
		}
		// Always heading into the field
		if pad.X < 0 {
			left++
			if pad.Dir != 1 {
				t.Fatalf("left spawn moving %d", pad.Dir)
			}
		} else if pad.Dir != -1 {
			t.Fatalf("right spawn moving %d", pad.Dir)
		}
	}

	if ratio := float64(gold) / n; ratio < 0.12 || ratio > 0.18 {
		t.Errorf("gold ratio = %.3f, expected about %.2f", ratio, cfg.Lily.GoldChance)
	}
	if ratio := float64(left) / n; ratio < 0.45 || ratio > 0.55 {
		t.Errorf("left ratio = %.3f, expected about 0.5", ratio)
	}
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		KindNormal: "normal",
		KindGold:   "gold",
		KindHazard: "hazard",
		Kind(42):   "unknown",
	}
	for k, want := range tests {
		if k.String() != want {
			t.Errorf("Kind(%d).String() = %q, expected %q", int(k), k.String(), want)
		}
	}
}
