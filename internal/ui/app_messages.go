package ui

import "chromamem/internal/palette"

// SelectColorMsg appends Color to the session. Sent for clicks on a palette
// swatch and for enter on the focused swatch.
type SelectColorMsg struct {
	Color palette.Color
}

// RemoveEntryMsg removes the entry currently shown at Index (0-based).
type RemoveEntryMsg struct {
	Index int
}

// RequestResetMsg asks to clear the result list. It opens the confirmation
// modal when enabled, otherwise resets directly.
type RequestResetMsg struct{}

// ResetMsg clears the result list.
type ResetMsg struct{}

// ToggleHelpMsg opens or closes the help overlay (? or SPC ?).
type ToggleHelpMsg struct{}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct{}
