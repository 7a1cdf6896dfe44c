package analyze

import (
	"github.com/katalvlaran/gridwave/grid"
	"github.com/katalvlaran/gridwave/option"
)

// Analyzer turns a filled sample grid into the two inputs option.Populate
// needs: how often each tile_type_id occurs, and which tile_type_ids may
// sit next to which in each direction.
type Analyzer interface {
	Analyze(sample *grid.Grid[grid.TypedData]) (*option.FrequencyHints, *option.AdjacencyRules, error)
}

// IdentityAnalyzer observes exactly what the sample shows: every filled
// tile increments its own frequency, and every filled-neighbour pair
// (in-bounds, no wraparound) becomes a permitted adjacency in both
// directions.
type IdentityAnalyzer struct{}

// NewIdentityAnalyzer returns an IdentityAnalyzer. It carries no state.
func NewIdentityAnalyzer() *IdentityAnalyzer { return &IdentityAnalyzer{} }

// Analyze implements Analyzer.
func (a *IdentityAnalyzer) Analyze(sample *grid.Grid[grid.TypedData]) (*option.FrequencyHints, *option.AdjacencyRules, error) {
	tiles := sample.IndexedIter()
	if len(tiles) == 0 {
		return nil, nil, ErrEmptySample
	}

	freq := option.NewFrequencyHints()
	for _, it := range tiles {
		freq.Observe(it.Value.TileTypeID())
	}

	rules := option.NewAdjacencyRules(sample.Size().Dim)
	for _, it := range tiles {
		centerID := it.Value.TileTypeID()
		for _, nb := range sample.GetNeighbours(it.Pos) {
			rules.Add(centerID, nb.Dir.Index(), nb.Value.TileTypeID())
		}
	}

	return freq, rules, nil
}
