package collapse

import (
	"fmt"

	"github.com/katalvlaran/gridwave/grid"
	"github.com/katalvlaran/gridwave/option"
)

// CollapsedGrid is the finished output of a successful resolve: a
// grid.Grid of CollapsedTileData plus the set of tile_type_ids actually
// observed. It has no dependency on option.Table — a CollapsedGrid can
// outlive the table that produced it.
type CollapsedGrid struct {
	inner    *grid.Grid[grid.CollapsedTileData]
	observed map[uint64]struct{}
}

// Size returns the grid's dimensions.
func (c *CollapsedGrid) Size() grid.Size { return c.inner.Size() }

// GetTileTypeID returns the tile_type_id at pos, if collapsed.
func (c *CollapsedGrid) GetTileTypeID(pos grid.Position) (uint64, bool) {
	v, ok := c.inner.GetDataAt(pos)

	return v.ID, ok
}

// ObservedTileTypeIDs returns every tile_type_id that appears anywhere in
// the grid, in no particular order.
func (c *CollapsedGrid) ObservedTileTypeIDs() []uint64 {
	out := make([]uint64, 0, len(c.observed))
	for id := range c.observed {
		out = append(out, id)
	}

	return out
}

// ToCollapsedGrid converts every collapsed cell of src into a
// CollapsedGrid. Returns ErrUncollapsedCell if src contains a filled cell
// that has not collapsed.
func ToCollapsedGrid(src *Grid) (*CollapsedGrid, error) {
	out := &CollapsedGrid{
		inner:    grid.NewGrid[grid.CollapsedTileData](src.Size()),
		observed: make(map[uint64]struct{}),
	}
	for _, pos := range src.Size().AllPositions() {
		cell, ok := src.Get(pos)
		if !ok {
			continue
		}
		if !cell.Collapsed {
			return nil, fmt.Errorf("collapse: ToCollapsedGrid at %v: %w", pos, ErrUncollapsedCell)
		}
		id := src.Table().TileTypeID(cell.CollapseIdx)
		out.inner.InsertData(pos, grid.CollapsedTileData{ID: id})
		out.observed[id] = struct{}{}
	}

	return out, nil
}

// FromCollapsedGrid rebuilds a CollapsibleGrid with every tile of src
// pre-seeded as collapsed, against table. Returns ErrUnknownTileType if
// src references a tile_type_id absent from table.
func FromCollapsedGrid(src *CollapsedGrid, table *option.Table) (*Grid, error) {
	out := NewGrid(src.Size(), table)
	for _, it := range src.inner.IndexedIter() {
		if err := out.Seed(it.Pos, it.Value.ID); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Rehydrate converts a CollapsedGrid into a grid.Grid[U] for any U the
// caller can construct from a tile_type_id, e.g. re-attaching visual or
// gameplay metadata the core never sees. Returns ErrRehydrate wrapping
// the first error build returns.
func Rehydrate[U any](src *CollapsedGrid, build func(tileTypeID uint64) (U, error)) (*grid.Grid[U], error) {
	out := grid.NewGrid[U](src.Size())
	for _, it := range src.inner.IndexedIter() {
		v, err := build(it.Value.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRehydrate, err)
		}
		out.InsertData(it.Pos, v)
	}

	return out, nil
}
