package resolve

import (
	"context"

	"github.com/katalvlaran/gridwave/queue"
	"github.com/katalvlaran/gridwave/rng"
)

// config holds everything an Option can customize about a Resolve call.
type config struct {
	queue       queue.CollapseQueue
	rng         rng.Source
	ctx         context.Context
	subscribers []Subscriber
}

// Option customizes a Resolve call by mutating a config before the run
// starts.
type Option func(*config)

// defaultConfig returns the config a Resolve call uses when the caller
// supplies no Options: an EntropyQueue, a fixed-seed rng.Std, and a
// background context.
func defaultConfig() *config {
	return &config{
		queue: queue.NewEntropyQueue(),
		rng:   rng.NewStd(1),
		ctx:   context.Background(),
	}
}

// WithQueue selects the ordering policy driving the resolve. Panics on
// nil.
func WithQueue(q queue.CollapseQueue) Option {
	if q == nil {
		panic("resolve: WithQueue(nil)")
	}

	return func(c *config) { c.queue = q }
}

// WithRNG selects the random source backing every weighted draw and
// entropy-noise sample. Panics on nil.
func WithRNG(r rng.Source) Option {
	if r == nil {
		panic("resolve: WithRNG(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithContext lets the caller cancel a long-running resolve; Resolve
// checks ctx.Err() once per iteration. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("resolve: WithContext(nil)")
	}

	return func(c *config) { c.ctx = ctx }
}

// WithSubscriber registers an observer; it may be called more than once
// to register several.
func WithSubscriber(s Subscriber) Option {
	return func(c *config) { c.subscribers = append(c.subscribers, s) }
}
