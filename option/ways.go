package option

import "github.com/katalvlaran/gridwave/grid"

// Ways is a per-option table of "ways to remain that option" counts, one
// count per direction. It has two lives in gridwave: Populate builds the
// table's template, one row per option, and collapse.NewUncollapsedCell
// takes its own mutable copy of it through Table.CloneWaysTemplate.
//
// Invariant: for a row that is not all-zero, every entry in it is >= 1.
// The moment any one direction's count reaches 0, the
// whole row is zeroed — an option with zero ways to be itself from any
// side is impossible for the holding cell, full stop.
type Ways struct {
	dim  int
	rows []grid.DirectionTable[uint32]
}

// NewWays returns a Ways with k all-zero rows for the given dim.
func NewWays(dim, k int) Ways {
	rows := make([]grid.DirectionTable[uint32], k)
	for i := range rows {
		rows[i] = grid.NewDirectionTable[uint32](dim)
	}

	return Ways{dim: dim, rows: rows}
}

// Len returns the number of option rows (K).
func (w Ways) Len() int { return len(w.rows) }

// Count returns the remaining-ways count for opt in direction d.
func (w Ways) Count(opt int, d grid.Direction) uint32 {
	return w.rows[opt].Get(d)
}

// SetRow overwrites the entire row for opt from a 2*dim-length slice,
// used once by Populate to build the initial template.
func (w *Ways) SetRow(opt int, counts []uint32) {
	w.rows[opt] = grid.NewDirectionTableFromSlice(w.dim, counts)
}

// IsPossible reports whether opt's row is currently non-zero.
func (w Ways) IsPossible(opt int) bool {
	raw := w.rows[opt].Raw()

	return len(raw) > 0 && raw[0] != 0
}

// IterPossible returns every option index whose row is non-zero, in
// ascending option-index order.
func (w Ways) IterPossible() []int {
	out := make([]int, 0, len(w.rows))
	for opt := range w.rows {
		if w.IsPossible(opt) {
			out = append(out, opt)
		}
	}

	return out
}

// Decrement lowers opt's count in direction d by one. If the count was
// already 0 this is a no-op returning false. If the decrement brings the
// count to 0, the entire row for opt is zeroed and Decrement returns true
// — the caller (Propagator) must then treat opt as eliminated for this
// cell and adjust remaining-count/weights accordingly.
func (w *Ways) Decrement(opt int, d grid.Direction) bool {
	cur := w.rows[opt].Get(d)
	if cur == 0 {
		return false
	}
	cur--
	w.rows[opt].Set(d, cur)
	if cur != 0 {
		return false
	}
	w.zeroRow(opt)

	return true
}

// PurgeOption forcibly zeroes opt's row, used by the position-based
// resolver's single-hop purge. Returns false if the row was already
// zero.
func (w *Ways) PurgeOption(opt int) bool {
	if !w.IsPossible(opt) {
		return false
	}
	w.zeroRow(opt)

	return true
}

func (w *Ways) zeroRow(opt int) {
	w.rows[opt] = grid.NewDirectionTable[uint32](w.dim)
}

// Clone returns an independent deep copy of w.
func (w Ways) Clone() Ways {
	rows := make([]grid.DirectionTable[uint32], len(w.rows))
	for i, r := range w.rows {
		rows[i] = r.Clone()
	}

	return Ways{dim: w.dim, rows: rows}
}
