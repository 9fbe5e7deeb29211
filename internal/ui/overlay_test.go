package ui

import (
	"testing"

	"chromamem/internal/dispatch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlayStack_PushPop(t *testing.T) {
	var s OverlayStack
	_, ok := s.Peek()
	assert.False(t, ok)

	s.Push(Overlay{View: NewHelpOverlay(NewKeyMap(dispatch.DefaultKeymap(), newRegistry())), Dismiss: []string{"esc"}})
	s.Push(Overlay{View: NewResetConfirmModal(3), Dismiss: []string{"esc"}})
	require.Equal(t, 2, s.Len())

	top, ok := s.Peek()
	require.True(t, ok)
	assert.IsType(t, &ConfirmModal{}, top.View)
	assert.True(t, top.IsDismissKey("esc"))
	assert.False(t, top.IsDismissKey("q"))

	s.Pop()
	top, _ = s.Peek()
	assert.IsType(t, &HelpOverlay{}, top.View)
	s.Pop()
	_, ok = s.Pop()
	assert.False(t, ok)
}

func TestConfirmModal_Keys(t *testing.T) {
	m := NewResetConfirmModal(1)
	assert.Contains(t, m.View(), "1 color will be removed")

	_, cmd := m.Update(keyMsg("y"))
	require.NotNil(t, cmd)
	assert.Equal(t, ResetMsg{}, cmd())

	_, cmd = m.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, ResetMsg{}, cmd())

	_, cmd = m.Update(keyMsg("n"))
	require.NotNil(t, cmd)
	assert.Equal(t, DismissModalMsg{}, cmd())

	_, cmd = m.Update(keyMsg("z"))
	assert.Nil(t, cmd)
}

func TestOverlayStack_UpdateTop(t *testing.T) {
	var s OverlayStack
	_, ok := s.UpdateTop(keyMsg("y"))
	assert.False(t, ok)

	s.Push(Overlay{View: NewResetConfirmModal(2)})
	cmd, ok := s.UpdateTop(keyMsg("y"))
	require.True(t, ok)
	require.NotNil(t, cmd)
	assert.Equal(t, ResetMsg{}, cmd())
}
