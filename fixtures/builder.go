package fixtures

import (
	"fmt"

	"github.com/katalvlaran/gridwave/grid"
)

// tile is the concrete grid.TypedData every generator in this package
// produces: just a tile_type_id, nothing else. analyze.Analyzer only ever
// needs TileTypeID(), so fixtures never carries richer payloads.
type tile struct{ id uint64 }

// TileTypeID implements grid.TypedData.
func (t tile) TileTypeID() uint64 { return t.id }

// NewTile wraps a tile_type_id as grid.TypedData, for callers assembling
// a sample by hand instead of through a Generator.
func NewTile(tileTypeID uint64) grid.TypedData { return tile{id: tileTypeID} }

// Generator mutates a freshly allocated sample grid deterministically
// given cfg. BuildSample runs every Generator against the same grid, so a
// later Generator overwrites any cell an earlier one filled at the same
// position; nothing checks that a Generator fills any cell at all.
type Generator func(g *grid.Grid[grid.TypedData], cfg *config) error

// BuildSample allocates a grid of size and applies every Generator in
// order: one entry point, options resolved once, generators run in the
// order given.
func BuildSample(size grid.Size, opts []Option, gens ...Generator) (*grid.Grid[grid.TypedData], error) {
	cfg := newConfig(opts...)
	g := grid.NewGrid[grid.TypedData](size)
	for i, gen := range gens {
		if err := gen(g, cfg); err != nil {
			return nil, fmt.Errorf("fixtures: BuildSample: generator %d: %w", i, err)
		}
	}

	return g, nil
}
