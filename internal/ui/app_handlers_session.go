package ui

import (
	"fmt"
	"log"

	"chromamem/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

// apply runs an action message against the session. Keyboard and pointer
// handlers call it synchronously so each action sees the state as of its
// own input event; commands from the registry and modals arrive through Update.
func (a *appModelAdapter) apply(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case SelectColorMsg:
		a.Session.Append(msg.Color)
	case RemoveEntryMsg:
		a.Session.RemoveAt(msg.Index)
	case RequestResetMsg:
		return a.handleRequestReset()
	case ResetMsg:
		a.Session.Clear()
		if a.Mode() == ModeConfirm {
			a.Overlays.Pop()
		}
	case ToggleHelpMsg:
		a.handleToggleHelp()
	case DismissModalMsg:
		a.Overlays.Pop()
	}
	return nil
}

// handleRequestReset clears the list, or asks first when ConfirmReset is set.
// With nothing to clear the request is ignored.
func (a *appModelAdapter) handleRequestReset() tea.Cmd {
	if !a.Session.HasEntries() {
		return nil
	}
	if !a.Options.ConfirmReset {
		a.Session.Clear()
		return nil
	}
	if a.Mode() != ModeConfirm {
		a.Overlays.Push(Overlay{
			View:    NewResetConfirmModal(a.Session.Len()),
			Dismiss: []string{"esc"},
		})
	}
	return nil
}

func (a *appModelAdapter) handleToggleHelp() {
	if a.Mode() == ModeHelp {
		a.Overlays.Pop()
		return
	}
	a.Overlays.Push(Overlay{
		View:    NewHelpOverlay(a.Keys),
		Dismiss: []string{"esc", "?", "q"},
	})
}

// onChange keeps the status line and result cursor in step with the session.
func (m *AppModel) onChange(ch session.Change) {
	m.StatusIsError = false
	switch ch.Op {
	case session.OpAppend:
		m.Status = fmt.Sprintf("Added %s as #%d", ch.Entry.Color, ch.Entry.Index+1)
	case session.OpRemove:
		m.Status = fmt.Sprintf("Removed #%d (%s)", ch.Entry.Index+1, ch.Entry.Color)
	case session.OpRemoveMiss:
		m.Status = fmt.Sprintf("Nothing at #%d", ch.Entry.Index+1)
		m.StatusIsError = true
		log.Printf("ui: remove #%d ignored, no such entry (len=%d)", ch.Entry.Index+1, ch.Len)
	case session.OpClear:
		noun := "colors"
		if ch.Removed == 1 {
			noun = "color"
		}
		m.Status = fmt.Sprintf("Reset %d %s", ch.Removed, noun)
	}
	m.clampResultCursor(ch.Len)
}

func (m *AppModel) clampResultCursor(n int) {
	if m.ResultCursor >= n {
		m.ResultCursor = n - 1
	}
	if m.ResultCursor < 0 {
		m.ResultCursor = 0
	}
}
