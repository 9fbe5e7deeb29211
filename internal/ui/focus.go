package ui

// Panel identifies a focusable region of the tracker screen.
type Panel string

const (
	PanelPalette Panel = "palette"
	PanelResults Panel = "results"
)

// FocusManager tracks which panel receives cursor keys and rotates focus
// in a fixed order.
type FocusManager struct {
	Current  Panel
	Order    []Panel
	OnChange func(from, to Panel)
}

// NewFocusManager starts on the palette.
func NewFocusManager() *FocusManager {
	return &FocusManager{
		Current: PanelPalette,
		Order:   []Panel{PanelPalette, PanelResults},
	}
}

// Next advances focus to the next panel in order.
func (f *FocusManager) Next() Panel {
	return f.step(1)
}

// Prev moves focus to the previous panel in order.
func (f *FocusManager) Prev() Panel {
	return f.step(-1)
}

func (f *FocusManager) step(delta int) Panel {
	if len(f.Order) == 0 {
		return ""
	}
	idx := 0
	for i, p := range f.Order {
		if p == f.Current {
			idx = i
			break
		}
	}
	n := len(f.Order)
	f.set(f.Order[((idx+delta)%n+n)%n])
	return f.Current
}

// SetFocus focuses p. Returns false if p is not in Order.
func (f *FocusManager) SetFocus(p Panel) bool {
	for _, o := range f.Order {
		if o == p {
			f.set(p)
			return true
		}
	}
	return false
}

// Is reports whether p has focus.
func (f *FocusManager) Is(p Panel) bool {
	return f.Current == p
}

func (f *FocusManager) set(p Panel) {
	from := f.Current
	f.Current = p
	if f.OnChange != nil && from != p {
		f.OnChange(from, p)
	}
}
