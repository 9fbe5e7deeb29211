// Package sequence holds the ordered list of picked colors.
//
// Each Entry carries an Index that always equals its current position in the
// list. Index is not an identifier: after a removal every later entry shifts
// down by one, so callers must address entries by their live ordinal.
package sequence

import "chromamem/internal/palette"

// Entry is one recorded pick.
type Entry struct {
	Color palette.Color `json:"color"`
	Index int           `json:"index"`
}

// Sequence is an ordered, index-consistent list of entries.
// The zero value is an empty sequence ready to use. Not safe for concurrent use.
type Sequence struct {
	entries []Entry
}

// New returns an empty sequence.
func New() *Sequence {
	return &Sequence{}
}

// Append adds c at the end and returns the new entry.
func (s *Sequence) Append(c palette.Color) Entry {
	e := Entry{Color: c, Index: len(s.entries)}
	s.entries = append(s.entries, e)
	return e
}

// RemoveAt deletes the entry whose index is i and renumbers the rest.
// A miss leaves the sequence untouched and reports ok=false.
func (s *Sequence) RemoveAt(i int) (removed Entry, ok bool) {
	pos := -1
	for p, e := range s.entries {
		if e.Index == i {
			pos = p
			break
		}
	}
	if pos < 0 {
		return Entry{}, false
	}
	removed = s.entries[pos]
	s.entries = append(s.entries[:pos], s.entries[pos+1:]...)
	s.renumber()
	return removed, true
}

// Clear drops every entry and returns how many there were.
func (s *Sequence) Clear() int {
	n := len(s.entries)
	s.entries = nil
	return n
}

// renumber re-derives every index from its position.
func (s *Sequence) renumber() {
	for p := range s.entries {
		s.entries[p].Index = p
	}
}

// Entries returns a copy of the entries in order.
func (s *Sequence) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// At returns the entry at position i.
func (s *Sequence) At(i int) (Entry, bool) {
	if i < 0 || i >= len(s.entries) {
		return Entry{}, false
	}
	return s.entries[i], true
}

// Len returns the number of entries.
func (s *Sequence) Len() int {
	return len(s.entries)
}

// HasEntries reports whether the sequence is non-empty.
func (s *Sequence) HasEntries() bool {
	return len(s.entries) > 0
}
