package game

import (
	"math/rand"

	"github.com/vovakirdan/lilyhop/internal/config"
	"github.com/vovakirdan/lilyhop/internal/core"
)

// Kind is the type of a lily pad.
type Kind int

const (
	KindNormal Kind = iota
	KindGold
	KindHazard // Only reached by a normal pad turning at a bounce
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindGold:
		return "gold"
	case KindHazard:
		return "hazard"
	default:
		return "unknown"
	}
}

// Pad is the active lily pad.
type Pad struct {
	Kind  Kind
	X     float64 // Left edge in field units
	Dir   int     // +1 moving right, -1 moving left
	Speed float64 // Field units per reference frame
}

// Span returns the horizontal footprint of a pad of the given width.
func (p Pad) Span(width float64) core.Span {
	return core.NewSpan(p.X, width)
}

// PadView is the render-facing description of a pad.
type PadView struct {
	Kind   Kind
	X, Y   float64
	Width  float64
	Height float64
	Dir    int
	Speed  float64
}

// Sampler is the source of uniform samples in [0, 1).
// *rand.Rand satisfies it.
type Sampler interface {
	Float64() float64
}

// NewRand returns a seeded sampler for deterministic runs.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Generator creates new pads. It does not know whether a pad is already
// active; the simulation guarantees at most one.
type Generator struct {
	cfg config.Config
	rng Sampler
}

// NewGenerator creates a pad generator drawing from rng.
func NewGenerator(cfg config.Config, rng Sampler) *Generator {
	return &Generator{cfg: cfg, rng: rng}
}

// Spawn creates a pad just outside the field, heading inward.
// The first sample picks gold vs normal, the second picks the side.
func (g *Generator) Spawn(speed float64) Pad {
	kind := KindNormal
	if g.rng.Float64() < g.cfg.Lily.GoldChance {
		kind = KindGold
	}

	pad := Pad{Kind: kind, Speed: speed}
	if g.rng.Float64() > 0.5 {
		pad.X = -g.cfg.Lily.Width
		pad.Dir = 1
	} else {
		pad.X = g.cfg.Field.Width
		pad.Dir = -1
	}

	if kind == KindGold {
		pad.Speed = speed * g.cfg.Lily.GoldSpeedMultiplier
	}
	return pad
}
