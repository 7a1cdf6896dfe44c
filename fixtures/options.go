package fixtures

import "github.com/katalvlaran/gridwave/rng"

// config holds the state Generators may need beyond the grid they mutate.
// Never exported; callers reach it only through Options.
type config struct {
	rng rng.Source
}

// Option customizes a BuildSample call by mutating a config before any
// Generator runs.
type Option func(*config)

// newConfig returns a config with the package default (a fixed-seed
// rng.Std, for reproducible fixtures by default) with opts applied in
// order.
func newConfig(opts ...Option) *config {
	cfg := &config{rng: rng.NewStd(1)}
	for _, o := range opts {
		o(cfg)
	}

	return cfg
}

// WithRNG overrides the random source RandomSparse (and any future
// stochastic generator) draws from. Panics on nil.
func WithRNG(r rng.Source) Option {
	if r == nil {
		panic("fixtures: WithRNG(nil)")
	}

	return func(c *config) { c.rng = r }
}
