package option

import "github.com/katalvlaran/gridwave/grid"

// Table is the resolved option universe the collapse engine runs
// against: a bijection tile_type_id <-> option index in [0, K), and for
// each option its per-direction adjacency, weight, and "ways" template.
//
// A Table is built once by Populate and is immutable for the lifetime of
// a resolve; all mutation during a run happens on per-cell copies of its
// WaysTemplate.
type Table struct {
	dim           int
	idByOption    []uint64
	optionByID    map[uint64]int
	adjacency     [][][]int // adjacency[opt][dirIndex] -> neighbour option indices
	weights       []Weights
	waysTemplate  Ways
	possibleCount int
}

// Populate builds a Table from FrequencyHints and AdjacencyRules:
//
//  1. tile_type_ids present in frequencies are sorted ascending and
//     assigned contiguous option indices 0..K.
//  2. weights[i] = NewWeights(count).
//  3. for each option i and direction d, adjacency[i][d] is built by
//     mapping every permitted neighbour external id under rules to its
//     option index, skipping ids absent from frequencies.
//  4. the ways template is computed: a direction whose adjacency list is
//     empty makes the whole option globally impossible, zeroing its
//     template row and decrementing PossibleOptionsCount.
//
// Returns ErrNoFrequencies if frequencies observed no tile_type_ids.
func Populate(frequencies *FrequencyHints, rules *AdjacencyRules) (*Table, error) {
	ids := frequencies.TileTypeIDs()
	if len(ids) == 0 {
		return nil, ErrNoFrequencies
	}
	dim := rules.Dim()
	k := len(ids)

	t := &Table{
		dim:           dim,
		idByOption:    ids,
		optionByID:    make(map[uint64]int, k),
		adjacency:     make([][][]int, k),
		weights:       make([]Weights, k),
		waysTemplate:  NewWays(dim, k),
		possibleCount: k,
	}
	for i, id := range ids {
		t.optionByID[id] = i
	}
	for i, id := range ids {
		count, _ := frequencies.Count(id)
		t.weights[i] = NewWeights(count)

		dirs := grid.AllDirections(dim)
		t.adjacency[i] = make([][]int, len(dirs))
		wayCounts := make([]uint32, len(dirs))
		anyEmpty := false
		for _, d := range dirs {
			allowed := rules.Allowed(id, d.Index())
			neighbours := make([]int, 0, len(allowed))
			for extID := range allowed {
				if idx, ok := t.optionByID[extID]; ok {
					neighbours = append(neighbours, idx)
				}
			}
			t.adjacency[i][d.Index()] = neighbours
			wayCounts[d.Index()] = uint32(len(neighbours))
			if len(neighbours) == 0 {
				anyEmpty = true
			}
		}
		if anyEmpty {
			t.possibleCount--
			// row already all-zero from NewWays.
		} else {
			t.waysTemplate.SetRow(i, wayCounts)
		}
	}

	return t, nil
}

// Dim returns the dimension count this table was built for.
func (t *Table) Dim() int { return t.dim }

// Count returns K, the number of options.
func (t *Table) Count() int { return len(t.idByOption) }

// PossibleOptionsCount returns the number of options that have at least
// one permitted neighbour in every direction.
func (t *Table) PossibleOptionsCount() int { return t.possibleCount }

// TileTypeID returns the external id for option index opt.
func (t *Table) TileTypeID(opt int) uint64 { return t.idByOption[opt] }

// OptionIndex returns the option index for an external tile_type_id.
func (t *Table) OptionIndex(tileTypeID uint64) (int, bool) {
	idx, ok := t.optionByID[tileTypeID]

	return idx, ok
}

// GetWeights returns the (count, weight_log) pair for opt.
func (t *Table) GetWeights(opt int) Weights { return t.weights[opt] }

// GetAllEnabledInDirection returns the option indices permitted as
// neighbours of opt in direction d.
func (t *Table) GetAllEnabledInDirection(opt int, d grid.Direction) []int {
	return t.adjacency[opt][d.Index()]
}

// CloneWaysTemplate returns a deep copy of the ways template, used to
// seed a freshly uncollapsed cell.
func (t *Table) CloneWaysTemplate() Ways { return t.waysTemplate.Clone() }
