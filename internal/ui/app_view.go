package ui

import (
	"fmt"
	"strconv"
	"strings"

	"chromamem/internal/palette"
	"chromamem/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
)

const (
	swatchWidth = 11
	swatchGap   = 2
	chipWidth   = 8
	chipGap     = 1
	panelIndent = 2

	emptyResult = "No colors added"
	resetLabel  = "[ Reset ]"
	removeLabel = "remove"
)

var statusErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDanger))

// render draws the tracker screen top to bottom. Each helper gets the row it
// starts on so it can record hit zones in screen coordinates.
func (a *appModelAdapter) render() string {
	width := a.Width
	if width <= 0 {
		width = defaultWidth
	}

	var lines []string
	lines = append(lines, Styles.Title.Render(Title))
	lines = append(lines, Styles.Hint.Render(textutil.Truncate(a.hintLine(), width)))
	lines = append(lines, "")
	lines = append(lines, a.panelHeader("Palette", PanelPalette))
	lines = append(lines, a.renderPalette(len(lines))...)
	lines = append(lines, "")
	lines = append(lines, a.renderResultHeader(len(lines)))
	lines = append(lines, "")
	lines = append(lines, a.renderResults(len(lines), width-panelIndent)...)
	lines = append(lines, "")
	lines = append(lines, a.renderStatus())

	if a.KeyHandler.LeaderWaiting {
		lines = append(lines, RenderKeybindHelp(a.KeyHandler, a.Mode()))
	} else {
		lines = append(lines, RenderFooterHelp(a.Keys, width))
	}
	return strings.Join(lines, "\n")
}

func (a *appModelAdapter) hintLine() string {
	keys := a.Dispatcher.Keymap().Keys()
	return fmt.Sprintf("Press %s or click a swatch to pick a color. Click a chip to remove it.",
		strings.Join(keys, "/"))
}

// panelHeader marks the focused panel with a chevron. Both variants have the
// same width so columns below do not shift with focus.
func (a *appModelAdapter) panelHeader(title string, p Panel) string {
	if a.Focus.Is(p) {
		return Styles.Focused.Render("› " + title)
	}
	return Styles.Section.Render("  " + title)
}

// renderPalette returns the swatch row and the cursor row beneath it.
func (a *appModelAdapter) renderPalette(y int) []string {
	km := a.Dispatcher.Keymap()
	var row, marker strings.Builder
	indent := strings.Repeat(" ", panelIndent)
	row.WriteString(indent)
	marker.WriteString(indent)

	gap := strings.Repeat(" ", swatchGap)
	x := panelIndent
	for i, c := range palette.All() {
		if i > 0 {
			row.WriteString(gap)
			marker.WriteString(gap)
			x += swatchGap
		}
		focused := a.Focus.Is(PanelPalette) && i == a.PaletteCursor
		label := textutil.Center(km.KeyFor(c)+" "+c.Title(), swatchWidth)
		row.WriteString(swatchStyle(c, focused).Render(label))

		mark := ""
		if focused {
			mark = "▲"
		}
		marker.WriteString(Styles.Focused.Render(textutil.Center(mark, swatchWidth)))

		a.zones.Add(Zone{Kind: ZoneSwatch, Color: c, Index: i, X: x, Y: y, W: swatchWidth})
		x += swatchWidth
	}
	return []string{row.String(), marker.String()}
}

// renderResultHeader shows the count and, when there is something to clear,
// the reset control.
func (a *appModelAdapter) renderResultHeader(y int) string {
	n := a.Session.Len()
	header := a.panelHeader(fmt.Sprintf("Result (%d)", n), PanelResults)
	if n == 0 {
		return header
	}
	header += "   "
	x := lipgloss.Width(header)
	button := Styles.Button.Render(resetLabel)
	a.zones.Add(Zone{Kind: ZoneReset, X: x, Y: y, W: lipgloss.Width(button)})
	return header + button
}

// renderResults lays chips out left to right, wrapping at maxWidth. Each chip
// shows its live 1-based ordinal; the focused chip reads "remove".
func (a *appModelAdapter) renderResults(y, maxWidth int) []string {
	entries := a.Session.Entries()
	indent := strings.Repeat(" ", panelIndent)
	if len(entries) == 0 {
		return []string{indent + Styles.Empty.Render(emptyResult)}
	}

	cols, rows := flowRow(len(entries), chipWidth, chipGap, maxWidth)
	lines := make([]string, rows[len(rows)-1]+1)
	widths := make([]int, len(lines))
	for i, e := range entries {
		r := rows[i]
		if pad := cols[i] - widths[r]; pad > 0 {
			lines[r] += strings.Repeat(" ", pad)
			widths[r] += pad
		}
		focused := a.Focus.Is(PanelResults) && i == a.ResultCursor
		label := strconv.Itoa(e.Index + 1)
		if focused {
			label = removeLabel
		}
		lines[r] += swatchStyle(e.Color, focused).Render(textutil.Center(label, chipWidth))
		widths[r] += chipWidth

		a.zones.Add(Zone{Kind: ZoneChip, Color: e.Color, Index: e.Index, X: panelIndent + cols[i], Y: y + r, W: chipWidth})
	}
	for i := range lines {
		lines[i] = indent + lines[i]
	}
	return lines
}

func (a *appModelAdapter) renderStatus() string {
	if a.Status == "" {
		return ""
	}
	if a.StatusIsError {
		return statusErrorStyle.Render(a.Status)
	}
	return Styles.Status.Render(a.Status)
}
