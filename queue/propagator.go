package queue

import (
	"github.com/katalvlaran/gridwave/collapse"
	"github.com/katalvlaran/gridwave/grid"
	"github.com/katalvlaran/gridwave/option"
)

// Item is one pending "option i is no longer possible at pos" fact the
// Propagator still has to push to neighbours.
type Item struct {
	Pos     grid.Position
	Removed int
}

// Propagator is a LIFO worklist that cascades option removals through a
// collapse.Grid until it drains or a cell runs out of options entirely.
// It holds no grid/table state of its own; both are passed to Run.
type Propagator struct {
	stack []Item
}

// NewPropagator returns an empty Propagator.
func NewPropagator() *Propagator { return &Propagator{} }

// Push adds one item to the worklist.
func (p *Propagator) Push(it Item) { p.stack = append(p.stack, it) }

// PushAll adds every item in items to the worklist.
func (p *Propagator) PushAll(items []Item) { p.stack = append(p.stack, items...) }

// Run drains the worklist against g and table. For every popped item it
// walks every direction d, finds the neighbour n = d.Opposite().MarchStep
// from item.Pos, and for every option j that table would otherwise allow
// as n's neighbour in direction d (options enabled by item.Removed
// looking back via d.Opposite()), decrements n's ways count for j in
// direction d. An option eliminated this way is recorded on n's
// aggregate weight/remaining and pushed as a new worklist item.
//
// If any cell's Remaining reaches zero, Run stops immediately and
// returns that position with failed=true. Otherwise it returns every
// position whose cell lost at least one option, so the caller can
// re-rank them in its queue.
func (p *Propagator) Run(g *collapse.Grid, table *option.Table) (fail grid.Position, touched []grid.Position, failed bool) {
	touchedSet := make(map[grid.Position]struct{})
	size := g.Size()

	for len(p.stack) > 0 {
		item := p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]

		for _, d := range grid.AllDirections(size.Dim) {
			n, ok := d.Opposite().MarchStep(item.Pos, size)
			if !ok {
				continue
			}
			cell, ok := g.Get(n)
			if !ok || cell.Collapsed {
				continue
			}

			contradiction := false
			for _, j := range table.GetAllEnabledInDirection(item.Removed, d.Opposite()) {
				eliminated := cell.Ways.Decrement(j, d)
				if !eliminated {
					continue
				}
				cell.RemoveOption(table.GetWeights(j))
				if cell.Remaining == 0 {
					contradiction = true
					break
				}
				p.stack = append(p.stack, Item{Pos: n, Removed: j})
				touchedSet[n] = struct{}{}
			}
			g.Set(n, cell)
			if contradiction {
				return n, nil, true
			}
		}
	}

	out := make([]grid.Position, 0, len(touchedSet))
	for pos := range touchedSet {
		out = append(out, pos)
	}

	return grid.Position{}, out, false
}
