package collapse

import (
	"fmt"

	"github.com/katalvlaran/gridwave/grid"
	"github.com/katalvlaran/gridwave/option"
)

// Grid is a grid.Grid[Cell] plus the option.Table it was built from. The
// table is borrowed immutably for the grid's whole lifetime; a resolve
// borrows the grid itself exclusively.
//
// A freshly constructed Grid has no cells at all — not even uncollapsed
// ones. Callers pre-seed known tiles with Seed; Resolve populates the
// remaining requested positions with fresh uncollapsed cells before
// running.
type Grid struct {
	inner *grid.Grid[Cell]
	table *option.Table
}

// NewGrid allocates an empty CollapsibleGrid of the given size over
// table's option universe.
func NewGrid(size grid.Size, table *option.Table) *Grid {
	return &Grid{inner: grid.NewGrid[Cell](size), table: table}
}

// Size returns the grid's dimensions.
func (g *Grid) Size() grid.Size { return g.inner.Size() }

// Table returns the option table this grid resolves against.
func (g *Grid) Table() *option.Table { return g.table }

// Seed pre-collapses the cell at pos to tileTypeID, for maps that start
// with known fixed tiles. Returns ErrUnknownTileType if tileTypeID has
// no entry in the table.
func (g *Grid) Seed(pos grid.Position, tileTypeID uint64) error {
	idx, ok := g.table.OptionIndex(tileTypeID)
	if !ok {
		return fmt.Errorf("collapse: Seed(%v): %w", tileTypeID, ErrUnknownTileType)
	}
	g.inner.InsertData(pos, NewCollapsedCell(idx))

	return nil
}

// Get returns the cell at pos, if any.
func (g *Grid) Get(pos grid.Position) (Cell, bool) { return g.inner.GetDataAt(pos) }

// Set overwrites the cell at pos.
func (g *Grid) Set(pos grid.Position, c Cell) { g.inner.InsertData(pos, c) }

// Remove deletes the cell at pos, returning its former value if any.
func (g *Grid) Remove(pos grid.Position) (Cell, bool) { return g.inner.RemoveAt(pos) }

// IsFilled reports whether pos currently holds any cell.
func (g *Grid) IsFilled(pos grid.Position) bool { return g.inner.IsFilledAt(pos) }

// Mutate applies fn in place to the cell at pos, if any.
func (g *Grid) Mutate(pos grid.Position, fn func(*Cell)) bool { return g.inner.Mutate(pos, fn) }

// ClearUncollapsed removes every filled cell that is not yet collapsed,
// leaving pre-seeded collapsed cells untouched.
func (g *Grid) ClearUncollapsed() {
	for _, it := range g.inner.IndexedIter() {
		if !it.Value.Collapsed {
			g.inner.RemoveAt(it.Pos)
		}
	}
}
