package analyze

import (
	"github.com/katalvlaran/gridwave/grid"
	"github.com/katalvlaran/gridwave/option"
)

// BorderAnalyzer observes the same frequencies as IdentityAnalyzer but
// treats the sample as toroidal: a tile at the edge of the grid is also
// compared against the tile that wraps around to the opposite edge, in
// every direction. This is the analyzer to use for seamlessly-tileable
// samples, where the true neighbour of an edge tile is the one on the
// far side, not nothing.
type BorderAnalyzer struct{}

// NewBorderAnalyzer returns a BorderAnalyzer. It carries no state.
func NewBorderAnalyzer() *BorderAnalyzer { return &BorderAnalyzer{} }

// Analyze implements Analyzer.
func (a *BorderAnalyzer) Analyze(sample *grid.Grid[grid.TypedData]) (*option.FrequencyHints, *option.AdjacencyRules, error) {
	tiles := sample.IndexedIter()
	if len(tiles) == 0 {
		return nil, nil, ErrEmptySample
	}

	freq := option.NewFrequencyHints()
	for _, it := range tiles {
		freq.Observe(it.Value.TileTypeID())
	}

	size := sample.Size()
	rules := option.NewAdjacencyRules(size.Dim)
	for _, it := range tiles {
		centerID := it.Value.TileTypeID()
		for _, d := range grid.AllDirections(size.Dim) {
			np := wrapStep(it.Pos, d, size)
			v, ok := sample.GetDataAt(np)
			if !ok {
				continue
			}
			rules.Add(centerID, d.Index(), v.TileTypeID())
		}
	}

	return freq, rules, nil
}

// wrapStep returns pos stepped one unit along d, wrapping around to the
// opposite edge of size instead of failing at the boundary.
func wrapStep(pos grid.Position, d grid.Direction, size grid.Size) grid.Position {
	out := pos
	bound := size.Bounds[d.Axis]
	c := pos.Coords[d.Axis]
	if d.Positive {
		c = (c + 1) % bound
	} else if c == 0 {
		c = bound - 1
	} else {
		c--
	}
	out.Coords[d.Axis] = c

	return out
}
