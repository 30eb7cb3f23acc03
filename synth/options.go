package synth

import (
	"math/rand"
	"time"
)

// Generator synthesizes waveform tables from a shared random source.
type Generator struct {
	rng *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets a deterministic seed for all random draws.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand sets an explicit random source, shared with the caller.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// NewGenerator creates a generator. Without options the source is
// time-seeded and runs are not reproducible.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Rand returns the generator's random source, for callers that must draw
// from the same stream (e.g. per-segment parameter jitter).
func (g *Generator) Rand() *rand.Rand {
	return g.rng
}
