package queue

import (
	"sort"

	"github.com/katalvlaran/gridwave/collapse"
	"github.com/katalvlaran/gridwave/grid"
	"github.com/katalvlaran/gridwave/rng"
)

// Corner is a bitmask over axes: bit i set means axis i counts down from
// its high end instead of up from zero. It closes the "starting corner"
// enumeration over any dimension count: 2^dim values.
type Corner uint32

// Named corners for the 2D case (axis 0 = x/"Left-Right", axis 1 =
// y/"Up-Down").
const (
	CornerUpLeft    Corner = 0
	CornerUpRight   Corner = 1 << 0
	CornerDownLeft  Corner = 1 << 1
	CornerDownRight Corner = CornerUpRight | CornerDownLeft
)

// Axis selects which dimension varies fastest (innermost) in a
// PositionQueue's traversal order. Rowwise/Columnwise name the 2D case;
// higher dimensions just pass the axis index directly.
const (
	AxisRowwise    = 0
	AxisColumnwise = 1
)

// PositionQueue visits positions in a fixed order chosen at construction
// from a closed (corner x primary axis) enumeration, ignoring live
// entropy entirely. A collapse only purges the immediate neighbours of
// the collapsed cell; it never runs the full Propagator.
type PositionQueue struct {
	corner    Corner
	primary   int
	size      grid.Size
	positions []grid.Position
	dirty     bool
}

// NewPositionQueue returns a PositionQueue that will start at corner and
// iterate axis primary fastest once Populate is called.
func NewPositionQueue(corner Corner, primary int) *PositionQueue {
	return &PositionQueue{corner: corner, primary: primary}
}

// Populate implements CollapseQueue.
func (q *PositionQueue) Populate(_ rng.Source, g *collapse.Grid, positions []grid.Position) {
	q.size = g.Size()
	table := g.Table()
	for _, pos := range positions {
		if g.IsFilled(pos) {
			continue
		}
		g.Set(pos, collapse.NewUncollapsedCell(table, 0))
		q.positions = append(q.positions, pos)
	}
	q.dirty = true
}

// Update implements CollapseQueue. PositionQueue's order never changes
// after Populate, so this only matters for positions not already queued.
func (q *PositionQueue) Update(pos grid.Position, _ collapse.Cell) {
	for _, p := range q.positions {
		if p.Equal(pos) {
			return
		}
	}
	q.positions = append(q.positions, pos)
	q.dirty = true
}

// Next implements CollapseQueue: pops the smallest-rank remaining
// position, i.e. the next one in traversal order.
func (q *PositionQueue) Next() (grid.Position, bool) {
	if len(q.positions) == 0 {
		return grid.Position{}, false
	}
	if q.dirty {
		sort.Slice(q.positions, func(i, j int) bool {
			return q.rank(q.positions[i]) > q.rank(q.positions[j])
		})
		q.dirty = false
	}
	idx := len(q.positions) - 1
	pos := q.positions[idx]
	q.positions = q.positions[:idx]

	return pos, true
}

// Len implements CollapseQueue.
func (q *PositionQueue) Len() int { return len(q.positions) }

// NeedsUpdateAfterOptionsChange implements CollapseQueue: false, order is
// fixed at construction.
func (q *PositionQueue) NeedsUpdateAfterOptionsChange() bool { return false }

// Propagating implements CollapseQueue: false, single-hop purge only.
func (q *PositionQueue) Propagating() bool { return false }

// rank computes the mixed-radix traversal key for pos: axes other than
// primary, ascending axis index, are the most significant digits, and
// primary is the least significant (fastest-varying) digit. Each axis's
// digit runs ascending or descending per corner's bit. Visiting positions
// in ascending rank order reproduces the requested corner/axis walk.
func (q *PositionQueue) rank(pos grid.Position) int {
	dim := pos.Dim
	eff := make([]int, dim)
	for i := 0; i < dim; i++ {
		c := int(pos.Coords[i])
		if q.corner&(1<<uint(i)) != 0 {
			c = int(q.size.Bounds[i]) - 1 - c
		}
		eff[i] = c
	}

	r := 0
	for axis := 0; axis < dim; axis++ {
		if axis == q.primary {
			continue
		}
		r = r*int(q.size.Bounds[axis]) + eff[axis]
	}
	r = r*int(q.size.Bounds[q.primary]) + eff[q.primary]

	return r
}
