package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(3, 2)
	require.Len(t, g.Cells(), 6)

	g.Set(2, 1, 7)
	assert.Equal(t, uint8(7), g.At(2, 1))
	assert.Equal(t, uint8(7), g.Cells()[g.Index(2, 1)])

	for _, p := range [][2]int{{-1, 0}, {3, 0}, {0, -1}, {0, 2}} {
		assert.False(t, g.InBounds(p[0], p[1]), "%v", p)
		assert.Equal(t, OutOfBounds, g.At(p[0], p[1]), "%v", p)
	}

	g.Set(5, 5, 9)
	for _, v := range g.Cells() {
		assert.NotEqual(t, uint8(9), v, "out of bounds write must be dropped")
	}
}

func TestByteGridClampsDimensionsAndClears(t *testing.T) {
	g := NewByteGrid(0, -4)
	assert.Equal(t, 1, g.W)
	assert.Equal(t, 1, g.H)

	g = NewByteGrid(2, 2)
	g.Set(1, 1, 3)
	g.Clear()
	assert.Equal(t, []uint8{0, 0, 0, 0}, g.Cells())
}
