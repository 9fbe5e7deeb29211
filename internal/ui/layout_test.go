package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlowRow(t *testing.T) {
	cols, rows := flowRow(5, 8, 1, 30)
	assert.Equal(t, []int{0, 9, 18, 0, 9}, cols)
	assert.Equal(t, []int{0, 0, 0, 1, 1}, rows)

	cols, rows = flowRow(2, 8, 1, 4)
	assert.Equal(t, []int{0, 0}, cols, "oversized cells still get a row each")
	assert.Equal(t, []int{0, 1}, rows)

	cols, rows = flowRow(0, 8, 1, 80)
	assert.Empty(t, cols)
	assert.Empty(t, rows)
}

func TestHitmap(t *testing.T) {
	var h Hitmap
	h.Add(Zone{Kind: ZoneChip, Index: 0, X: 0, Y: 3, W: 8})
	h.Add(Zone{Kind: ZoneChip, Index: 1, X: 9, Y: 3, W: 8})

	z, ok := h.At(9, 3)
	assert.True(t, ok)
	assert.Equal(t, 1, z.Index)

	_, ok = h.At(8, 3)
	assert.False(t, ok, "gap between chips")
	_, ok = h.At(0, 4)
	assert.False(t, ok)

	h.Reset()
	assert.Empty(t, h.Zones())
}
