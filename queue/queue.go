package queue

import (
	"github.com/katalvlaran/gridwave/collapse"
	"github.com/katalvlaran/gridwave/grid"
	"github.com/katalvlaran/gridwave/rng"
)

// CollapseQueue is the ordering policy a resolve drives: which
// uncollapsed position to visit next, and how the queue reacts to a
// cell's options changing underneath it.
//
// Populate and Next/Update all operate on the same collapse.Grid the
// resolver owns; a CollapseQueue never stores cell data of its own, only
// positions and whatever bookkeeping it needs to order them.
type CollapseQueue interface {
	// Populate seeds g with a fresh uncollapsed cell at every position in
	// positions that isn't already filled (pre-seeded collapsed cells are
	// left alone), and records all of them for ordering. src supplies
	// entropy tiebreak noise where the policy needs it.
	Populate(src rng.Source, g *collapse.Grid, positions []grid.Position)

	// Next pops and returns the next position to collapse, or ok=false
	// if the queue is empty.
	Next() (grid.Position, bool)

	// Update re-registers pos after its cell's options changed, so the
	// queue can re-rank it. Policies that ignore mid-run changes
	// (PositionQueue) may treat this as a no-op beyond bookkeeping.
	Update(pos grid.Position, cell collapse.Cell)

	// Len reports how many positions remain queued.
	Len() int

	// NeedsUpdateAfterOptionsChange reports whether the resolver must
	// call Update for every position the Propagator touches (true for
	// EntropyQueue, whose ranking depends on live entropy) or may skip
	// it (false for PositionQueue, whose order is fixed at Populate).
	NeedsUpdateAfterOptionsChange() bool

	// Propagating reports whether a collapse on this queue must run the
	// full Propagator cascade (true) or only a single-hop neighbour
	// purge (false).
	Propagating() bool
}
