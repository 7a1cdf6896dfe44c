package option_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwave/grid"
	"github.com/katalvlaran/gridwave/option"
)

// checkerboardRules builds the "two tile, mutually adjacent in every
// direction" rule set used by the checkerboard resolve tests.
func checkerboardRules(dim int) (*option.FrequencyHints, *option.AdjacencyRules) {
	freq := option.NewFrequencyHints()
	freq.Observe(0)
	freq.Observe(1)

	rules := option.NewAdjacencyRules(dim)
	for _, d := range grid.AllDirections(dim) {
		rules.Add(0, d.Index(), 1)
		rules.Add(1, d.Index(), 0)
	}

	return freq, rules
}

func TestPopulate_Checkerboard(t *testing.T) {
	freq, rules := checkerboardRules(2)
	tbl, err := option.Populate(freq, rules)
	require.NoError(t, err)

	assert.Equal(t, 2, tbl.Count())
	assert.Equal(t, 2, tbl.PossibleOptionsCount())

	idx0, ok := tbl.OptionIndex(0)
	require.True(t, ok)
	idx1, ok := tbl.OptionIndex(1)
	require.True(t, ok)

	for _, d := range grid.AllDirections(2) {
		enabled := tbl.GetAllEnabledInDirection(idx0, d)
		require.Len(t, enabled, 1)
		assert.Equal(t, idx1, enabled[0])
	}
}

func TestPopulate_GloballyImpossibleOption(t *testing.T) {
	freq := option.NewFrequencyHints()
	freq.Observe(7) // isolated: no rules recorded for it at all
	rules := option.NewAdjacencyRules(2)

	tbl, err := option.Populate(freq, rules)
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.PossibleOptionsCount(), "an option with an empty adjacency list in any direction is globally impossible")
}

func TestPopulate_EmptyFrequenciesErrors(t *testing.T) {
	_, err := option.Populate(option.NewFrequencyHints(), option.NewAdjacencyRules(2))
	assert.ErrorIs(t, err, option.ErrNoFrequencies)
}

func TestPopulate_SkipsUnobservedNeighbours(t *testing.T) {
	freq := option.NewFrequencyHints()
	freq.Observe(0)
	rules := option.NewAdjacencyRules(2)
	d := grid.AllDirections(2)[0]
	rules.Add(0, d.Index(), 99) // 99 was never observed by FrequencyHints

	// The only direction gets nothing real, so option 0 is impossible...
	// but every *other* direction has nothing either, so it is impossible
	// regardless. Use a fully-wired rule set to isolate the "skip unknown
	// neighbour" behavior instead.
	rules2 := option.NewAdjacencyRules(2)
	freq2 := option.NewFrequencyHints()
	freq2.Observe(0)
	freq2.Observe(1)
	for _, dir := range grid.AllDirections(2) {
		rules2.Add(0, dir.Index(), 1)
		rules2.Add(0, dir.Index(), 99) // unobserved neighbour, must be skipped
		rules2.Add(1, dir.Index(), 0)
	}
	tbl, err := option.Populate(freq2, rules2)
	require.NoError(t, err)
	idx0, _ := tbl.OptionIndex(0)
	idx1, _ := tbl.OptionIndex(1)
	for _, dir := range grid.AllDirections(2) {
		enabled := tbl.GetAllEnabledInDirection(idx0, dir)
		require.Len(t, enabled, 1, "unobserved neighbour id 99 must be skipped")
		assert.Equal(t, idx1, enabled[0])
	}
}
