package resolve

import "github.com/katalvlaran/gridwave/grid"

// Subscriber observes a resolve as it runs. Implementations must return
// quickly; Resolve calls these synchronously, on the same goroutine
// that drives the resolve.
type Subscriber interface {
	// OnGenerationStart fires once, before the first position is popped
	// from the queue.
	OnGenerationStart(size grid.Size)

	// OnCollapse fires once per collapsed position, after the cell has
	// been written back to the grid but before propagation/purge runs.
	OnCollapse(pos grid.Position, tileTypeID uint64, iteration int)
}
