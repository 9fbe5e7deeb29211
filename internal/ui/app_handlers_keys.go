package ui

import (
	"chromamem/internal/palette"

	tea "github.com/charmbracelet/bubbletea"
)

// handleKey routes a key press. The top overlay sees keys first. Outside an
// overlay, color keys go to the dispatcher before the registry so a color
// bound to a letter still picks the color.
func (a *appModelAdapter) handleKey(msg tea.KeyMsg) tea.Cmd {
	s := msg.String()

	if top, ok := a.Overlays.Peek(); ok {
		if s == "ctrl+c" {
			return tea.Quit
		}
		if top.IsDismissKey(s) {
			a.Overlays.Pop()
			return nil
		}
		cmd, _ := a.Overlays.UpdateTop(msg)
		return cmd
	}

	if !a.KeyHandler.LeaderWaiting && a.Dispatcher.Dispatch(s) {
		return nil
	}
	if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
		return cmd
	}
	return a.handlePanelKey(s)
}

// handlePanelKey handles focus and cursor movement plus activation of the
// focused element.
func (a *appModelAdapter) handlePanelKey(s string) tea.Cmd {
	switch s {
	case "tab":
		a.Focus.Next()
	case "shift+tab":
		a.Focus.Prev()
	case "left", "h":
		a.moveCursor(-1)
	case "right", "l":
		a.moveCursor(1)
	case "enter":
		return a.activate()
	case "x", "delete", "backspace":
		if a.Focus.Is(PanelResults) && a.Session.HasEntries() {
			return a.apply(RemoveEntryMsg{Index: a.ResultCursor})
		}
	}
	return nil
}

func (a *appModelAdapter) moveCursor(delta int) {
	if a.Focus.Is(PanelPalette) {
		a.PaletteCursor = clamp(a.PaletteCursor+delta, 0, len(palette.All())-1)
		return
	}
	a.ResultCursor = clamp(a.ResultCursor+delta, 0, a.Session.Len()-1)
}

// activate picks the focused swatch or removes the focused chip.
func (a *appModelAdapter) activate() tea.Cmd {
	if a.Focus.Is(PanelPalette) {
		return a.apply(SelectColorMsg{Color: palette.All()[a.PaletteCursor]})
	}
	if !a.Session.HasEntries() {
		return nil
	}
	return a.apply(RemoveEntryMsg{Index: a.ResultCursor})
}

// clamp bounds v to [lo, hi]. An empty range (hi < lo) yields lo.
func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
