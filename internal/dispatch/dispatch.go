// Package dispatch maps discrete input symbols (keyboard keys) to palette
// colors and forwards recognized symbols to an attached Appender.
package dispatch

import (
	"sort"
	"sync"

	"chromamem/internal/palette"
	"chromamem/internal/sequence"

	"github.com/pkg/errors"
)

// Appender is the single entry point every input modality funnels into.
// *session.Session satisfies it.
type Appender interface {
	Append(c palette.Color) (sequence.Entry, bool)
}

// Keymap is an immutable key -> color table.
type Keymap struct {
	byKey   map[string]palette.Color
	byColor map[palette.Color]string
}

// DefaultKeymap binds the digit keys 1-4 to the palette in display order.
func DefaultKeymap() Keymap {
	km, _ := NewKeymap(map[palette.Color]string{
		palette.Red:    "1",
		palette.Green:  "2",
		palette.Blue:   "3",
		palette.Yellow: "4",
	})
	return km
}

// NewKeymap builds a keymap from a color -> key table. Every palette color
// needs exactly one non-empty key and no key may be shared.
func NewKeymap(keys map[palette.Color]string) (Keymap, error) {
	km := Keymap{
		byKey:   make(map[string]palette.Color, len(keys)),
		byColor: make(map[palette.Color]string, len(keys)),
	}
	for _, c := range palette.All() {
		k, ok := keys[c]
		if !ok || k == "" {
			return Keymap{}, errors.Errorf("no key bound to %s", c)
		}
		if other, dup := km.byKey[k]; dup {
			return Keymap{}, errors.Errorf("key %q bound to both %s and %s", k, other, c)
		}
		km.byKey[k] = c
		km.byColor[c] = k
	}
	for c := range keys {
		if !c.Valid() {
			return Keymap{}, errors.Errorf("color %d is not in the palette", int(c))
		}
	}
	return km, nil
}

// Lookup returns the color bound to key.
func (k Keymap) Lookup(key string) (palette.Color, bool) {
	c, ok := k.byKey[key]
	return c, ok
}

// KeyFor returns the key bound to c, or "" if none.
func (k Keymap) KeyFor(c palette.Color) string {
	return k.byColor[c]
}

// Keys returns the bound keys sorted by palette order.
func (k Keymap) Keys() []string {
	out := make([]string, 0, len(k.byKey))
	for key := range k.byKey {
		out = append(out, key)
	}
	sort.Slice(out, func(i, j int) bool {
		return k.byKey[out[i]] < k.byKey[out[j]]
	})
	return out
}

// Dispatcher turns key symbols into Append calls on its attached target.
type Dispatcher struct {
	mu     sync.Mutex
	keymap Keymap
	target Appender
	gen    int
}

// New creates a detached dispatcher.
func New(km Keymap) *Dispatcher {
	return &Dispatcher{keymap: km}
}

// Keymap returns the dispatcher's table.
func (d *Dispatcher) Keymap() Keymap {
	return d.keymap
}

// Attach routes subsequent dispatches to target until release is called.
// Attaching again replaces the previous target; a stale release then does nothing.
func (d *Dispatcher) Attach(target Appender) (release func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	gen := d.gen
	d.target = target
	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.gen == gen {
			d.target = nil
		}
	}
}

// Dispatch appends the color bound to key. It reports whether key was
// recognized and a target was attached; anything else is ignored.
func (d *Dispatcher) Dispatch(key string) bool {
	c, ok := d.keymap.Lookup(key)
	if !ok {
		return false
	}
	d.mu.Lock()
	target := d.target
	d.mu.Unlock()
	if target == nil {
		return false
	}
	target.Append(c)
	return true
}

// Replay dispatches keys in order and returns how many were recognized.
func (d *Dispatcher) Replay(keys []string) int {
	n := 0
	for _, k := range keys {
		if d.Dispatch(k) {
			n++
		}
	}
	return n
}
