// Package ui is the Bubble Tea front end of the tracker.
//
// AppModel owns a session.Session and renders it as a palette of swatches
// above a result list of chips. Keyboard color keys go through a
// dispatch.Dispatcher and pointer clicks resolve against a Hitmap rebuilt on
// every render; both end at Session.Append, so the two input paths cannot
// diverge.
//
// Supporting pieces:
//   - View: a screen or modal with its own update and view (Elm-style)
//   - FocusManager: rotates keyboard focus between the palette and results
//   - OverlayStack: modals (help, reset confirmation) with dismiss keys
//   - KeybindRegistry/KeyHandler: spacemacs-style leader sequences (SPC r)
package ui
