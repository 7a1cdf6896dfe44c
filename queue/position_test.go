package queue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwave/collapse"
	"github.com/katalvlaran/gridwave/grid"
	"github.com/katalvlaran/gridwave/queue"
)

func drainAll(t *testing.T, q *queue.PositionQueue) []grid.Position {
	t.Helper()
	var out []grid.Position
	for {
		pos, ok := q.Next()
		if !ok {
			break
		}
		out = append(out, pos)
	}

	return out
}

func TestPositionQueue_UpLeftRowwise(t *testing.T) {
	tbl := checkerboardTable(t, 2)
	size := grid.MustNewSize(3, 3)
	g := collapse.NewGrid(size, tbl)
	q := queue.NewPositionQueue(queue.CornerUpLeft, queue.AxisRowwise)
	q.Populate(nil, g, size.AllPositions())

	got := drainAll(t, q)
	want := []grid.Position{
		grid.NewPosition(0, 0), grid.NewPosition(1, 0), grid.NewPosition(2, 0),
		grid.NewPosition(0, 1), grid.NewPosition(1, 1), grid.NewPosition(2, 1),
		grid.NewPosition(0, 2), grid.NewPosition(1, 2), grid.NewPosition(2, 2),
	}
	assert.Equal(t, want, got)
}

func TestPositionQueue_UpRightRowwise(t *testing.T) {
	tbl := checkerboardTable(t, 2)
	size := grid.MustNewSize(3, 3)
	g := collapse.NewGrid(size, tbl)
	q := queue.NewPositionQueue(queue.CornerUpRight, queue.AxisRowwise)
	q.Populate(nil, g, size.AllPositions())

	got := drainAll(t, q)
	want := []grid.Position{
		grid.NewPosition(2, 0), grid.NewPosition(1, 0), grid.NewPosition(0, 0),
		grid.NewPosition(2, 1), grid.NewPosition(1, 1), grid.NewPosition(0, 1),
		grid.NewPosition(2, 2), grid.NewPosition(1, 2), grid.NewPosition(0, 2),
	}
	assert.Equal(t, want, got)
}

func TestPositionQueue_DownLeftRowwise(t *testing.T) {
	tbl := checkerboardTable(t, 2)
	size := grid.MustNewSize(3, 3)
	g := collapse.NewGrid(size, tbl)
	q := queue.NewPositionQueue(queue.CornerDownLeft, queue.AxisRowwise)
	q.Populate(nil, g, size.AllPositions())

	got := drainAll(t, q)
	want := []grid.Position{
		grid.NewPosition(0, 2), grid.NewPosition(1, 2), grid.NewPosition(2, 2),
		grid.NewPosition(0, 1), grid.NewPosition(1, 1), grid.NewPosition(2, 1),
		grid.NewPosition(0, 0), grid.NewPosition(1, 0), grid.NewPosition(2, 0),
	}
	assert.Equal(t, want, got)
}

func TestPositionQueue_DownRightRowwise(t *testing.T) {
	tbl := checkerboardTable(t, 2)
	size := grid.MustNewSize(3, 3)
	g := collapse.NewGrid(size, tbl)
	q := queue.NewPositionQueue(queue.CornerDownRight, queue.AxisRowwise)
	q.Populate(nil, g, size.AllPositions())

	got := drainAll(t, q)
	want := []grid.Position{
		grid.NewPosition(2, 2), grid.NewPosition(1, 2), grid.NewPosition(0, 2),
		grid.NewPosition(2, 1), grid.NewPosition(1, 1), grid.NewPosition(0, 1),
		grid.NewPosition(2, 0), grid.NewPosition(1, 0), grid.NewPosition(0, 0),
	}
	assert.Equal(t, want, got)
}

func TestPositionQueue_NeedsUpdateAfterOptionsChangeIsFalse(t *testing.T) {
	q := queue.NewPositionQueue(queue.CornerUpLeft, queue.AxisRowwise)
	assert.False(t, q.NeedsUpdateAfterOptionsChange())
	assert.False(t, q.Propagating())
}

func TestPositionQueue_PopulateSkipsPreSeededCells(t *testing.T) {
	tbl := checkerboardTable(t, 2)
	size := grid.MustNewSize(2, 1)
	g := collapse.NewGrid(size, tbl)
	require.NoError(t, g.Seed(grid.NewPosition(0, 0), 0))

	q := queue.NewPositionQueue(queue.CornerUpLeft, queue.AxisRowwise)
	q.Populate(nil, g, size.AllPositions())

	assert.Equal(t, 1, q.Len(), "the pre-seeded position is not queued for collapse")
}
