package collapse

import (
	"math"

	"github.com/katalvlaran/gridwave/option"
)

// Cell is one grid cell's collapse state: either collapsed to a single
// option index, or uncollapsed and tracking its own Ways,
// remaining-option count, aggregate weight, and entropy tiebreak noise.
//
// Cell carries no RNG of its own: entropy noise is sampled by the
// caller (queue.Populate) and passed to NewUncollapsedCell; the
// collapse draw is sampled by the caller (resolve) and passed to
// CollapseGatherRemoved/CollapseBasic.
type Cell struct {
	Collapsed   bool
	CollapseIdx int

	Ways      option.Ways
	Remaining int
	Weight    option.Weights
	Noise     float32
}

// NewCollapsedCell returns a cell already collapsed to optIdx, with an
// empty ways table and zero weight.
func NewCollapsedCell(optIdx int) Cell {
	return Cell{Collapsed: true, CollapseIdx: optIdx}
}

// NewUncollapsedCell builds a fresh uncollapsed cell from table's ways
// template. noise is the pre-sampled entropy tiebreak in
// [0, option.EntropyNoiseRange); pass 0 for queue kinds that don't need
// tie-breaking (PositionQueue).
func NewUncollapsedCell(table *option.Table, noise float32) Cell {
	ways := table.CloneWaysTemplate()
	var weight option.Weights
	for _, opt := range ways.IterPossible() {
		weight = weight.Add(table.GetWeights(opt))
	}

	return Cell{
		Ways:      ways,
		Remaining: table.PossibleOptionsCount(),
		Weight:    weight,
		Noise:     noise,
	}
}

// Entropy returns H = log2(weight_sum) - weight_log_sum/weight_sum +
// entropy_noise. Panics if called on a collapsed cell or one with
// Weight.Count == 0 (weight_sum must be > 0).
func (c Cell) Entropy() float64 {
	if c.Collapsed {
		panic("collapse: Entropy called on a collapsed cell")
	}
	if c.Weight.Count == 0 {
		panic("collapse: Entropy called on a cell with zero weight_sum")
	}
	sum := float64(c.Weight.Count)

	return math.Log2(sum) - float64(c.Weight.WeightLog)/sum + float64(c.Noise)
}

// CollapseGatherRemoved draws the chosen option using draw (a value
// uniformly sampled in [0, Weight.Count) by the caller), marks the cell
// collapsed, and returns every other currently-possible option index —
// the set the Propagator must push removals for.
//
// Ties at running-total boundaries are resolved by "strictly greater",
// so the last possible option absorbs any overflow; callers must ensure
// Weight.Count > 0 before calling.
func (c *Cell) CollapseGatherRemoved(table *option.Table, draw uint32) []int {
	chosen, possible := c.selectOption(table, draw)

	removed := make([]int, 0, len(possible)-1)
	for _, opt := range possible {
		if opt != chosen {
			removed = append(removed, opt)
		}
	}
	c.markCollapsed(chosen)

	return removed
}

// CollapseBasic performs the same weighted selection as
// CollapseGatherRemoved but discards the removed set, for resolvers
// (PositionQueue) that purge neighbours directly instead of running full
// propagation.
func (c *Cell) CollapseBasic(table *option.Table, draw uint32) {
	chosen, _ := c.selectOption(table, draw)
	c.markCollapsed(chosen)
}

func (c *Cell) selectOption(table *option.Table, draw uint32) (int, []int) {
	possible := c.Ways.IterPossible()
	var running uint32
	chosen := possible[len(possible)-1]
	for _, opt := range possible {
		running += table.GetWeights(opt).Count
		if running > draw {
			chosen = opt
			break
		}
	}

	return chosen, possible
}

func (c *Cell) markCollapsed(chosen int) {
	c.Collapsed = true
	c.CollapseIdx = chosen
	c.Ways = option.Ways{}
	c.Remaining = 0
	c.Weight = option.Weights{}
}

// RemoveOption records that option i (with weight w) is no longer
// possible for this cell: decrements Remaining and subtracts w from
// Weight, rounding WeightLog as option.Weights.Sub does.
func (c *Cell) RemoveOption(w option.Weights) {
	c.Remaining--
	c.Weight = c.Weight.Sub(w)
}
