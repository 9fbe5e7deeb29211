package ui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// HelpOverlay lists every binding in columns. Any of its dismiss keys closes it.
type HelpOverlay struct {
	keys help.KeyMap
}

var _ View = (*HelpOverlay)(nil)

// NewHelpOverlay creates the overlay for km.
func NewHelpOverlay(km help.KeyMap) *HelpOverlay {
	return &HelpOverlay{keys: km}
}

// Init implements View.
func (o *HelpOverlay) Init() tea.Cmd { return nil }

// Update implements View. Dismissal is handled by the overlay stack.
func (o *HelpOverlay) Update(tea.Msg) (View, tea.Cmd) { return o, nil }

// View implements View.
func (o *HelpOverlay) View() string {
	content := Styles.Title.Render("Keys") + "\n\n"
	content += newHelpModel().FullHelpView(o.keys.FullHelp())
	content += "\n\n" + Styles.Hint.Render("esc or ? to close")
	return Styles.Box.Render(content)
}
