package resolve

import (
	"github.com/katalvlaran/gridwave/collapse"
	"github.com/katalvlaran/gridwave/grid"
	"github.com/katalvlaran/gridwave/option"
	"github.com/katalvlaran/gridwave/queue"
)

// Resolve drives g to completion over positions: every position not
// already collapsed is populated with a fresh uncollapsed cell, then
// repeatedly collapsed in the order the chosen queue picks, until
// positions is exhausted or a contradiction is found.
//
// The queue's Propagating() policy decides the collapse loop's shape:
// true runs the full Propagator cascade after every collapse (the
// EntropyQueue path); false purges only the immediate neighbours of the
// collapsed cell (the PositionQueue path).
func Resolve(g *collapse.Grid, positions []grid.Position, opts ...Option) (*collapse.CollapsedGrid, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(cfg)
	}

	for _, s := range cfg.subscribers {
		s.OnGenerationStart(g.Size())
	}

	g.ClearUncollapsed()
	cfg.queue.Populate(cfg.rng, g, positions)

	table := g.Table()
	if err := checkInitialContradiction(g, table, cfg.queue); err != nil {
		return nil, err
	}

	iteration := 0
	for {
		if err := cfg.ctx.Err(); err != nil {
			return nil, err
		}

		pos, ok := cfg.queue.Next()
		if !ok {
			break
		}

		cell, ok := g.Get(pos)
		if !ok || cell.Collapsed {
			continue
		}
		if cell.Remaining == 0 {
			return nil, &CollapseError{Kind: CollapseContradiction, Pos: pos, Iteration: iteration}
		}

		draw := cfg.rng.UintN(cell.Weight.Count)

		if cfg.queue.Propagating() {
			removed := cell.CollapseGatherRemoved(table, draw)
			g.Set(pos, cell)
			notify(cfg, pos, table.TileTypeID(cell.CollapseIdx), iteration)

			p := queue.NewPropagator()
			for _, opt := range removed {
				p.Push(queue.Item{Pos: pos, Removed: opt})
			}
			failPos, touched, failed := p.Run(g, table)
			if failed {
				return nil, &CollapseError{Kind: PropagationContradiction, Pos: failPos, Iteration: iteration}
			}
			if cfg.queue.NeedsUpdateAfterOptionsChange() {
				for _, t := range touched {
					tc, _ := g.Get(t)
					cfg.queue.Update(t, tc)
				}
			}
		} else {
			cell.CollapseBasic(table, draw)
			g.Set(pos, cell)
			notify(cfg, pos, table.TileTypeID(cell.CollapseIdx), iteration)

			if failPos, ok := purgeNeighbours(g, table, pos, cell.CollapseIdx); ok {
				return nil, &CollapseError{Kind: PropagationContradiction, Pos: failPos, Iteration: iteration}
			}
		}

		iteration++
	}

	return collapse.ToCollapsedGrid(g)
}

func notify(cfg *config, pos grid.Position, tileTypeID uint64, iteration int) {
	for _, s := range cfg.subscribers {
		s.OnCollapse(pos, tileTypeID, iteration)
	}
}

// checkInitialContradiction seeds a Propagator from every already-
// collapsed cell in g (pre-seeds supplied by the caller before Resolve
// ran) and runs it once, surfacing any contradiction it finds among
// uncollapsed cells before the main loop starts.
func checkInitialContradiction(g *collapse.Grid, table *option.Table, q queue.CollapseQueue) error {
	p := queue.NewPropagator()
	for _, pos := range g.Size().AllPositions() {
		cell, ok := g.Get(pos)
		if !ok || !cell.Collapsed {
			continue
		}
		for opt := 0; opt < table.Count(); opt++ {
			if opt == cell.CollapseIdx {
				continue
			}
			p.Push(queue.Item{Pos: pos, Removed: opt})
		}
	}

	failPos, touched, failed := p.Run(g, table)
	if failed {
		return &CollapseError{Kind: InitContradiction, Pos: failPos, Iteration: 0}
	}
	if q.NeedsUpdateAfterOptionsChange() {
		for _, t := range touched {
			tc, _ := g.Get(t)
			q.Update(t, tc)
		}
	}

	return nil
}

// purgeNeighbours purges from every uncollapsed immediate neighbour of
// pos every option the collapsed cell's chosen index does not permit in
// that direction. Returns the first neighbour whose Remaining reaches
// zero, if any.
func purgeNeighbours(g *collapse.Grid, table *option.Table, pos grid.Position, chosen int) (grid.Position, bool) {
	size := g.Size()
	for _, d := range grid.AllDirections(size.Dim) {
		n, ok := d.MarchStep(pos, size)
		if !ok {
			continue
		}
		cell, ok := g.Get(n)
		if !ok || cell.Collapsed {
			continue
		}

		allowed := make(map[int]struct{})
		for _, opt := range table.GetAllEnabledInDirection(chosen, d) {
			allowed[opt] = struct{}{}
		}

		for _, opt := range cell.Ways.IterPossible() {
			if _, ok := allowed[opt]; ok {
				continue
			}
			if !cell.Ways.PurgeOption(opt) {
				continue
			}
			cell.RemoveOption(table.GetWeights(opt))
		}

		g.Set(n, cell)
		if cell.Remaining == 0 {
			return n, true
		}
	}

	return grid.Position{}, false
}
