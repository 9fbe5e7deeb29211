package ui

import "chromamem/internal/palette"

// ZoneKind says what a click inside a zone does.
type ZoneKind int

const (
	ZoneSwatch ZoneKind = iota // append Color
	ZoneChip                   // remove the entry at Index
	ZoneReset                  // clear the sequence
)

// Zone is a single-row span of cells recorded while rendering.
type Zone struct {
	Kind  ZoneKind
	Color palette.Color
	Index int
	X, Y  int // top-left cell
	W     int // width in cells
}

// Contains reports whether cell (x, y) falls inside z.
func (z Zone) Contains(x, y int) bool {
	return y == z.Y && x >= z.X && x < z.X+z.W
}

// Hitmap maps screen cells back to the element drawn there.
// It is rebuilt on every render so it always matches the visible frame.
type Hitmap struct {
	zones []Zone
}

// Reset drops all zones.
func (h *Hitmap) Reset() {
	h.zones = h.zones[:0]
}

// Add records a zone.
func (h *Hitmap) Add(z Zone) {
	h.zones = append(h.zones, z)
}

// At returns the zone covering (x, y).
func (h *Hitmap) At(x, y int) (Zone, bool) {
	for _, z := range h.zones {
		if z.Contains(x, y) {
			return z, true
		}
	}
	return Zone{}, false
}

// Zones returns a copy of the recorded zones.
func (h *Hitmap) Zones() []Zone {
	out := make([]Zone, len(h.zones))
	copy(out, h.zones)
	return out
}

// flowRow places n cells of width w separated by gap, wrapping at maxWidth.
// It returns the (column, row) of every cell. At least one cell goes on
// each row even when it does not fit.
func flowRow(n, w, gap, maxWidth int) (cols, rows []int) {
	cols = make([]int, n)
	rows = make([]int, n)
	x, y := 0, 0
	for i := 0; i < n; i++ {
		if x > 0 && x+w > maxWidth {
			x = 0
			y++
		}
		cols[i], rows[i] = x, y
		x += w + gap
	}
	return cols, rows
}
