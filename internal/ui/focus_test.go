package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFocusManager_Rotation(t *testing.T) {
	f := NewFocusManager()
	var changes []Panel
	f.OnChange = func(_, to Panel) { changes = append(changes, to) }

	assert.True(t, f.Is(PanelPalette))
	assert.Equal(t, PanelResults, f.Next())
	assert.Equal(t, PanelPalette, f.Next())
	assert.Equal(t, PanelResults, f.Prev())
	assert.Equal(t, []Panel{PanelResults, PanelPalette, PanelResults}, changes)
}

func TestFocusManager_SetFocus(t *testing.T) {
	f := NewFocusManager()
	calls := 0
	f.OnChange = func(_, _ Panel) { calls++ }

	assert.True(t, f.SetFocus(PanelPalette))
	assert.Equal(t, 0, calls, "refocusing the current panel is not a change")
	assert.False(t, f.SetFocus(Panel("nowhere")))
	assert.True(t, f.Is(PanelPalette))
	assert.True(t, f.SetFocus(PanelResults))
	assert.Equal(t, 1, calls)
}
