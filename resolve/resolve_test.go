package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwave/collapse"
	"github.com/katalvlaran/gridwave/grid"
	"github.com/katalvlaran/gridwave/option"
	"github.com/katalvlaran/gridwave/queue"
	"github.com/katalvlaran/gridwave/resolve"
	"github.com/katalvlaran/gridwave/rng"
)

func checkerboardTable(t *testing.T, dim int) *option.Table {
	t.Helper()
	freq := option.NewFrequencyHints()
	freq.Observe(0)
	freq.Observe(1)
	rules := option.NewAdjacencyRules(dim)
	for _, d := range grid.AllDirections(dim) {
		rules.Add(0, d.Index(), 1)
		rules.Add(1, d.Index(), 0)
	}
	tbl, err := option.Populate(freq, rules)
	require.NoError(t, err)

	return tbl
}

func sameOptionTable(t *testing.T, dim int) *option.Table {
	t.Helper()
	freq := option.NewFrequencyHints()
	freq.Observe(0)
	freq.Observe(1)
	rules := option.NewAdjacencyRules(dim)
	for _, d := range grid.AllDirections(dim) {
		rules.Add(0, d.Index(), 0)
		rules.Add(1, d.Index(), 1)
	}
	tbl, err := option.Populate(freq, rules)
	require.NoError(t, err)

	return tbl
}

func TestResolve_Checkerboard4x4(t *testing.T) {
	tbl := checkerboardTable(t, 2)
	size := grid.MustNewSize(4, 4)
	g := collapse.NewGrid(size, tbl)

	cg, err := resolve.Resolve(g, size.AllPositions(), resolve.WithRNG(rng.NewStd(42)))
	require.NoError(t, err)

	for _, pos := range size.AllPositions() {
		id, ok := cg.GetTileTypeID(pos)
		require.True(t, ok)
		for _, d := range grid.AllDirections(2) {
			n, ok := d.MarchStep(pos, size)
			if !ok {
				continue
			}
			nid, ok := cg.GetTileTypeID(n)
			require.True(t, ok)
			assert.NotEqual(t, id, nid, "checkerboard neighbours must always differ")
		}
	}
}

func TestResolve_InitContradiction(t *testing.T) {
	tbl := sameOptionTable(t, 2)
	size := grid.MustNewSize(3, 1)
	g := collapse.NewGrid(size, tbl)
	require.NoError(t, g.Seed(grid.NewPosition(0, 0), 0))
	require.NoError(t, g.Seed(grid.NewPosition(2, 0), 1))

	_, err := resolve.Resolve(g, size.AllPositions(), resolve.WithRNG(rng.NewStd(1)))
	require.Error(t, err)
	assert.ErrorIs(t, err, resolve.ErrInitContradiction)

	var ce *resolve.CollapseError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, grid.NewPosition(1, 0), ce.Pos)
	assert.Equal(t, 0, ce.Iteration)
}

type recordingSubscriber struct {
	startSize   grid.Size
	iterations  []int
	tileTypeIDs []uint64
}

func (s *recordingSubscriber) OnGenerationStart(size grid.Size) { s.startSize = size }
func (s *recordingSubscriber) OnCollapse(pos grid.Position, tileTypeID uint64, iteration int) {
	s.iterations = append(s.iterations, iteration)
	s.tileTypeIDs = append(s.tileTypeIDs, tileTypeID)
}

func TestResolve_CascadeFiveCellRow(t *testing.T) {
	tbl := checkerboardTable(t, 2)
	size := grid.MustNewSize(5, 1)
	g := collapse.NewGrid(size, tbl)

	sub := &recordingSubscriber{}
	cg, err := resolve.Resolve(g, size.AllPositions(),
		resolve.WithRNG(rng.NewStd(7)),
		resolve.WithSubscriber(sub))
	require.NoError(t, err)

	assert.Equal(t, size, sub.startSize)
	require.Len(t, sub.iterations, 5)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, sub.iterations)

	for x := uint32(0); x < 4; x++ {
		id, _ := cg.GetTileTypeID(grid.NewPosition(x, 0))
		next, _ := cg.GetTileTypeID(grid.NewPosition(x+1, 0))
		assert.NotEqual(t, id, next)
	}
}

func TestResolve_PositionQueueSingleHopPurge(t *testing.T) {
	tbl := checkerboardTable(t, 2)
	size := grid.MustNewSize(3, 3)
	g := collapse.NewGrid(size, tbl)

	cg, err := resolve.Resolve(g, size.AllPositions(),
		resolve.WithQueue(queue.NewPositionQueue(queue.CornerUpLeft, queue.AxisRowwise)),
		resolve.WithRNG(rng.NewStd(3)))
	require.NoError(t, err)

	for _, pos := range size.AllPositions() {
		_, ok := cg.GetTileTypeID(pos)
		assert.True(t, ok, "every position must end up collapsed")
	}
}

func TestResolve_WeightedDistributionFavoursHigherFrequency(t *testing.T) {
	freq := option.NewFrequencyHints()
	freq.Observe(0)
	for i := 0; i < 9; i++ {
		freq.Observe(1)
	}
	rules := option.NewAdjacencyRules(1)
	for _, d := range grid.AllDirections(1) {
		rules.Add(0, d.Index(), 0)
		rules.Add(0, d.Index(), 1)
		rules.Add(1, d.Index(), 0)
		rules.Add(1, d.Index(), 1)
	}
	tbl, err := option.Populate(freq, rules)
	require.NoError(t, err)

	counts := map[uint64]int{}
	for seed := int64(0); seed < 200; seed++ {
		size := grid.MustNewSize(1)
		g := collapse.NewGrid(size, tbl)
		cg, err := resolve.Resolve(g, size.AllPositions(), resolve.WithRNG(rng.NewStd(seed)))
		require.NoError(t, err)
		id, ok := cg.GetTileTypeID(grid.NewPosition(0))
		require.True(t, ok)
		counts[id]++
	}

	assert.Greater(t, counts[1], counts[0], "option observed 9x more often should be chosen far more often")
}
