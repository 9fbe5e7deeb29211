package ui

import (
	"sort"

	"chromamem/internal/dispatch"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap implements help.KeyMap for rendering keybind help with bubbles/help.Model.
// Color keys come from the dispatcher keymap; the rest mirror the bindings
// registered in newRegistry and the panel keys handled in app_handlers_keys.go.
type KeyMap struct {
	colors   dispatch.Keymap
	registry *KeybindRegistry
}

// NewKeyMap creates a KeyMap for the given color table and registry.
func NewKeyMap(colors dispatch.Keymap, registry *KeybindRegistry) *KeyMap {
	return &KeyMap{colors: colors, registry: registry}
}

func (km *KeyMap) colorBindings() []key.Binding {
	keys := km.colors.Keys()
	out := make([]key.Binding, 0, len(keys))
	for _, k := range keys {
		c, _ := km.colors.Lookup(k)
		out = append(out, key.NewBinding(key.WithKeys(k), key.WithHelp(k, c.String())))
	}
	return out
}

func navigationBindings() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch panel")),
		key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "pick / remove")),
		key.NewBinding(key.WithKeys("x", "delete", "backspace"), key.WithHelp("x", "remove")),
	}
}

func (km *KeyMap) actionBindings() []key.Binding {
	seqs := []string{"R", "?", "q", "SPC"}
	out := make([]key.Binding, 0, len(seqs))
	for _, s := range seqs {
		desc := "leader"
		if km.registry != nil && s != "SPC" {
			if km.registry.Lookup(s) == nil {
				continue
			}
			desc = km.registry.Description(s)
		}
		out = append(out, key.NewBinding(key.WithKeys(s), key.WithHelp(s, desc)))
	}
	return out
}

// ShortHelp returns bindings for the footer.
func (km *KeyMap) ShortHelp() []key.Binding {
	var out []key.Binding
	out = append(out, km.colorBindings()...)
	out = append(out, navigationBindings()[0], navigationBindings()[4])
	out = append(out, km.actionBindings()...)
	return out
}

// FullHelp returns bindings grouped by columns for the help overlay.
func (km *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		km.colorBindings(),
		navigationBindings(),
		km.actionBindings(),
	}
}

// newHelpModel returns a bubbles/help model styled like the rest of the UI.
func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	h.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.FullDesc = h.Styles.ShortDesc
	h.Styles.FullSeparator = h.Styles.ShortSeparator
	return h
}

// RenderFooterHelp renders the one-line help bar, truncated to width.
func RenderFooterHelp(km help.KeyMap, width int) string {
	h := newHelpModel()
	h.Width = width
	return h.ShortHelpView(km.ShortHelp())
}

// RenderKeybindHelp produces the transient help view shown after SPC.
// When keyHandler is in leader mode with a buffer (e.g. "SPC g"), shows next-level hints.
func RenderKeybindHelp(keyHandler *KeyHandler, mode AppMode) string {
	if keyHandler == nil {
		return ""
	}
	currentSeq := keyHandler.CurrentSeq()
	hints := keyHandler.Registry.LeaderHints(currentSeq, mode)
	if len(hints) == 0 {
		return ""
	}

	// Sort keys for stable display
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, hints[k]),
		))
	}
	bindings = append(bindings, key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)

	prefix := "SPC"
	if currentSeq != "" {
		prefix = currentSeq
	}
	content := Styles.Muted.Render(prefix) + " " + newHelpModel().ShortHelpView(bindings)
	return boxStyle.Render(content)
}
