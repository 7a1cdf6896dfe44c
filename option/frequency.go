package option

import "sort"

// FrequencyHints maps tile_type_id to a positive occurrence count used to
// bias weighted collapse. A tile_type_id with no recorded observation is
// simply absent, not present with weight 0.
type FrequencyHints struct {
	counts map[uint64]uint32
}

// NewFrequencyHints returns an empty FrequencyHints.
func NewFrequencyHints() *FrequencyHints {
	return &FrequencyHints{counts: make(map[uint64]uint32)}
}

// Observe increments the counter for tileTypeID by one, inserting it at
// count 1 if unseen.
func (f *FrequencyHints) Observe(tileTypeID uint64) {
	f.counts[tileTypeID]++
}

// Count returns the observed count for tileTypeID and whether it was ever
// observed.
func (f *FrequencyHints) Count(tileTypeID uint64) (uint32, bool) {
	c, ok := f.counts[tileTypeID]

	return c, ok
}

// TileTypeIDs returns every observed tile_type_id in ascending order,
// matching Populate's key-ordering contract for assigning option
// indices.
func (f *FrequencyHints) TileTypeIDs() []uint64 {
	out := make([]uint64, 0, len(f.counts))
	for id := range f.counts {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Len returns the number of distinct observed tile_type_ids.
func (f *FrequencyHints) Len() int { return len(f.counts) }
