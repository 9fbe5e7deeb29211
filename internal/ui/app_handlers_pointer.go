package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleMouse resolves a left click against the zones of the last frame.
// Clicks are ignored while an overlay covers the tracker.
func (a *appModelAdapter) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if a.Overlays.Len() > 0 {
		return nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	z, ok := a.zones.At(msg.X, msg.Y)
	if !ok {
		return nil
	}
	switch z.Kind {
	case ZoneSwatch:
		a.Focus.SetFocus(PanelPalette)
		a.PaletteCursor = z.Index
		return a.apply(SelectColorMsg{Color: z.Color})
	case ZoneChip:
		return a.apply(RemoveEntryMsg{Index: z.Index})
	case ZoneReset:
		return a.apply(RequestResetMsg{})
	}
	return nil
}
