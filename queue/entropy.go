package queue

import (
	"sort"

	"github.com/katalvlaran/gridwave/collapse"
	"github.com/katalvlaran/gridwave/grid"
	"github.com/katalvlaran/gridwave/option"
	"github.com/katalvlaran/gridwave/rng"
)

// EntropyQueue always hands out the currently-lowest-entropy uncollapsed
// position, entropy noise breaking ties. It drives full propagation
// after every collapse.
type EntropyQueue struct {
	positions []grid.Position
	entropy   map[grid.Position]float64
	dirty     bool
}

// NewEntropyQueue returns an empty EntropyQueue.
func NewEntropyQueue() *EntropyQueue {
	return &EntropyQueue{entropy: make(map[grid.Position]float64)}
}

// Populate implements CollapseQueue.
func (q *EntropyQueue) Populate(src rng.Source, g *collapse.Grid, positions []grid.Position) {
	table := g.Table()
	for _, pos := range positions {
		if g.IsFilled(pos) {
			continue
		}
		noise := src.Float32(option.EntropyNoiseRange)
		cell := collapse.NewUncollapsedCell(table, noise)
		g.Set(pos, cell)
		q.Update(pos, cell)
	}
}

// Update implements CollapseQueue: records or re-ranks pos by its cell's
// current entropy.
func (q *EntropyQueue) Update(pos grid.Position, cell collapse.Cell) {
	if _, ok := q.entropy[pos]; !ok {
		q.positions = append(q.positions, pos)
	}
	q.entropy[pos] = cell.Entropy()
	q.dirty = true
}

// Next implements CollapseQueue: pops the position with lowest entropy,
// position order breaking any exact tie.
func (q *EntropyQueue) Next() (grid.Position, bool) {
	if len(q.positions) == 0 {
		return grid.Position{}, false
	}
	if q.dirty {
		sort.Slice(q.positions, func(i, j int) bool {
			pi, pj := q.positions[i], q.positions[j]
			ei, ej := q.entropy[pi], q.entropy[pj]
			if ei != ej {
				return ei < ej
			}

			return pi.Less(pj)
		})
		q.dirty = false
	}
	pos := q.positions[0]
	q.positions = q.positions[1:]
	delete(q.entropy, pos)

	return pos, true
}

// Len implements CollapseQueue.
func (q *EntropyQueue) Len() int { return len(q.positions) }

// NeedsUpdateAfterOptionsChange implements CollapseQueue: true, since a
// touched cell's entropy changes its rank.
func (q *EntropyQueue) NeedsUpdateAfterOptionsChange() bool { return true }

// Propagating implements CollapseQueue: true, full cascade.
func (q *EntropyQueue) Propagating() bool { return true }
