package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"chromamem/internal/dispatch"
	"chromamem/internal/sequence"
	"chromamem/internal/session"

	"github.com/pkg/errors"
)

// runHeadless replays keys through a dispatcher attached to sess and prints
// the resulting sequence.
func runHeadless(sess *session.Session, km dispatch.Keymap, keys []string, asJSON bool, w io.Writer) error {
	d := dispatch.New(km)
	release := d.Attach(sess)
	defer release()

	if n := d.Replay(keys); n < len(keys) {
		log.Printf("headless: ignored %d of %d keys", len(keys)-n, len(keys))
	}
	return writeEntries(w, sess.Entries(), asJSON)
}

// writeEntries prints one "<ordinal> <color>" line per entry, or a JSON array.
func writeEntries(w io.Writer, entries []sequence.Entry, asJSON bool) error {
	if asJSON {
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			return errors.Wrap(err, "encode result")
		}
		return nil
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%d %s\n", e.Index+1, e.Color); err != nil {
			return errors.Wrap(err, "write result")
		}
	}
	return nil
}
