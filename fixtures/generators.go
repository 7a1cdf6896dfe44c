package fixtures

import (
	"fmt"

	"github.com/katalvlaran/gridwave/grid"
)

// Checkerboard returns a Generator that fills every position of the
// target grid by parity: evenID where the sum of coordinates is even,
// oddID where it's odd. Works for any dimension count — the classic 2D
// checkerboard is the dim=2 special case.
func Checkerboard(evenID, oddID uint64) Generator {
	return func(g *grid.Grid[grid.TypedData], _ *config) error {
		size := g.Size()
		for _, pos := range size.AllPositions() {
			sum := uint32(0)
			for i := 0; i < pos.Dim; i++ {
				sum += pos.At(i)
			}
			id := evenID
			if sum%2 == 1 {
				id = oddID
			}
			g.InsertData(pos, tile{id: id})
		}

		return nil
	}
}

// Stripes returns a Generator that fills the target grid with bands
// perpendicular to axis: the tile at coordinate c along axis is
// ids[c % len(ids)], constant across every other axis. Returns
// ErrTooFewIDs if ids is empty.
func Stripes(axis int, ids []uint64) Generator {
	return func(g *grid.Grid[grid.TypedData], _ *config) error {
		if len(ids) == 0 {
			return ErrTooFewIDs
		}
		size := g.Size()
		if axis < 0 || axis >= size.Dim {
			return fmt.Errorf("fixtures: Stripes: axis %d out of range [0, %d)", axis, size.Dim)
		}
		for _, pos := range size.AllPositions() {
			id := ids[int(pos.At(axis))%len(ids)]
			g.InsertData(pos, tile{id: id})
		}

		return nil
	}
}

// RandomSparse returns a Generator that leaves each position empty with
// probability emptyProbability and otherwise fills it with a uniformly
// chosen id from ids, drawing from cfg.rng. Returns ErrTooFewIDs if ids is
// empty, or ErrBadProbability if emptyProbability is outside [0, 1].
func RandomSparse(ids []uint64, emptyProbability float32) Generator {
	return func(g *grid.Grid[grid.TypedData], cfg *config) error {
		if len(ids) == 0 {
			return ErrTooFewIDs
		}
		if emptyProbability < 0 || emptyProbability > 1 {
			return ErrBadProbability
		}
		for _, pos := range g.Size().AllPositions() {
			if cfg.rng.Float32(1) < emptyProbability {
				continue
			}
			idx := cfg.rng.UintN(uint32(len(ids)))
			g.InsertData(pos, tile{id: ids[idx]})
		}

		return nil
	}
}
