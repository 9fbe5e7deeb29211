// Package session owns the selection sequence for one run of the tracker.
// A Session is created when the UI starts, reset by Clear, and dropped by
// Close on teardown. Listeners observe every change through Subscribe and
// release themselves with the returned function.
package session

import (
	"sync"
	"time"

	"chromamem/internal/palette"
	"chromamem/internal/sequence"
)

// Op names the kind of change a listener is told about.
type Op string

const (
	OpAppend     Op = "append"
	OpRemove     Op = "remove"
	OpRemoveMiss Op = "remove_miss"
	OpClear      Op = "clear"
)

// Change describes one operation applied to the session.
type Change struct {
	Op Op
	// Entry is the appended or removed entry. For OpRemoveMiss only
	// Entry.Index is set (the ordinal that matched nothing).
	Entry sequence.Entry
	// Removed is the number of entries dropped by OpClear.
	Removed int
	// Len is the sequence length after the change.
	Len int
	At  time.Time
}

// Listener receives changes synchronously, after the mutation completed.
type Listener func(Change)

type subscription struct {
	id int
	fn Listener
}

// Session wraps a sequence with lifecycle and change notification.
// Safe for concurrent use.
type Session struct {
	mu        sync.RWMutex
	seq       *sequence.Sequence
	listeners []subscription
	nextID    int
	closed    bool
	now       func() time.Time
}

// New creates an empty, open session.
func New() *Session {
	return &Session{
		seq: sequence.New(),
		now: time.Now,
	}
}

// Subscribe registers l and returns a function that removes it.
// Calling the returned function more than once is harmless.
// Subscribing to a closed session returns a no-op release.
func (s *Session) Subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || l == nil {
		return func() {}
	}
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, subscription{id: id, fn: l})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.listeners {
				if sub.id == id {
					s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// Append adds c to the end of the sequence.
// On a closed session it does nothing and returns ok=false.
func (s *Session) Append(c palette.Color) (sequence.Entry, bool) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return sequence.Entry{}, false
	}
	e := s.seq.Append(c)
	ch := Change{Op: OpAppend, Entry: e, Len: s.seq.Len(), At: s.now()}
	ls := s.snapshotListeners()
	s.mu.Unlock()

	notify(ls, ch)
	return e, true
}

// RemoveAt removes the entry currently at ordinal i. A miss changes nothing
// and is reported to listeners as OpRemoveMiss.
func (s *Session) RemoveAt(i int) (sequence.Entry, bool) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return sequence.Entry{}, false
	}
	removed, ok := s.seq.RemoveAt(i)
	ch := Change{Op: OpRemove, Entry: removed, Len: s.seq.Len(), At: s.now()}
	if !ok {
		ch.Op = OpRemoveMiss
		ch.Entry = sequence.Entry{Index: i}
	}
	ls := s.snapshotListeners()
	s.mu.Unlock()

	notify(ls, ch)
	return removed, ok
}

// Clear empties the sequence and returns how many entries were dropped.
func (s *Session) Clear() int {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return 0
	}
	n := s.seq.Clear()
	ch := Change{Op: OpClear, Removed: n, At: s.now()}
	ls := s.snapshotListeners()
	s.mu.Unlock()

	notify(ls, ch)
	return n
}

// Close drops the sequence and every listener. Further mutations are ignored.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.seq.Clear()
	s.listeners = nil
}

// Closed reports whether Close has been called.
func (s *Session) Closed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

// Entries returns a copy of the current entries.
func (s *Session) Entries() []sequence.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq.Entries()
}

// Len returns the number of entries.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq.Len()
}

// HasEntries reports whether at least one color has been picked.
func (s *Session) HasEntries() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq.HasEntries()
}

// snapshotListeners must be called with mu held.
func (s *Session) snapshotListeners() []Listener {
	out := make([]Listener, len(s.listeners))
	for i, sub := range s.listeners {
		out[i] = sub.fn
	}
	return out
}

func notify(ls []Listener, ch Change) {
	for _, l := range ls {
		l(ch)
	}
}
