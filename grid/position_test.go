package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gridwave/grid"
)

func TestPosition_EqualAndLess(t *testing.T) {
	a := grid.NewPosition(1, 2)
	b := grid.NewPosition(1, 2)
	c := grid.NewPosition(2, 0)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, a.Less(c))
	assert.False(t, c.Less(a))
}

func TestPosition_AddSub(t *testing.T) {
	a := grid.NewPosition(3, 5)
	b := grid.NewPosition(1, 7)

	sum := a.Add(b)
	assert.Equal(t, grid.NewPosition(4, 12), sum)

	diff := a.Sub(b)
	assert.Equal(t, grid.NewPosition(2, 2), diff, "Sub is absolute difference, never negative")

	diff2 := b.Sub(a)
	assert.Equal(t, diff, diff2, "Sub is symmetric since it is absolute difference")
}

func TestPosition_DimMismatchPanics(t *testing.T) {
	a := grid.NewPosition(1, 2)
	b := grid.NewPosition(1, 2, 3)

	assert.Panics(t, func() { a.Less(b) })
	assert.Panics(t, func() { a.Add(b) })
}
