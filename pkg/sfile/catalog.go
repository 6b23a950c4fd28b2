package sfile

import (
	"fmt"
	"time"

	"github.com/seisio/sfile-go/pkg/sfile/event"
)

// Loader resolves a path to raw S-file text. The core never touches
// the filesystem itself; the CLI passes a hardened file reader, tests
// pass maps. Implementations must be safe for sequential reuse.
type Loader func(path string) ([]byte, error)

// Outcome is the result of parsing one path in a batch. Exactly one of
// Event and Err is set.
type Outcome struct {
	Path  string
	Event *event.Event
	Err   error
}

// Catalog is an ordered collection of events. Insertion order is
// preserved and duplicates are allowed. A Catalog is only mutated
// through the explicit Add and RemoveAt operations.
type Catalog struct {
	events []*event.Event
}

// New builds a catalog from events, preserving argument order.
func New(events ...*event.Event) *Catalog {
	c := &Catalog{}
	c.Add(events...)
	return c
}

// FromPaths loads and parses every path, in order. One bad file never
// suppresses its neighbours: the catalog holds the successfully parsed
// events and outcomes has exactly one entry per input path, in input
// order, carrying either the event or that file's error.
func FromPaths(load Loader, paths []string, opts ...Option) (*Catalog, []Outcome) {
	outcomes := make([]Outcome, len(paths))
	c := &Catalog{}
	for i, path := range paths {
		outcomes[i] = Outcome{Path: path}
		data, err := load(path)
		if err != nil {
			outcomes[i].Err = fmt.Errorf("load %s: %w", path, err)
			continue
		}
		ev, err := Parse(string(data), opts...)
		if err != nil {
			outcomes[i].Err = fmt.Errorf("parse %s: %w", path, err)
			continue
		}
		outcomes[i].Event = ev
		c.events = append(c.events, ev)
	}
	return c, outcomes
}

// Add appends events, preserving argument order. Nil events are skipped.
func (c *Catalog) Add(events ...*event.Event) {
	for _, ev := range events {
		if ev != nil {
			c.events = append(c.events, ev)
		}
	}
}

// RemoveAt removes the event at index i. Out-of-range indices are a no-op.
func (c *Catalog) RemoveAt(i int) {
	if i < 0 || i >= len(c.events) {
		return
	}
	c.events = append(c.events[:i], c.events[i+1:]...)
}

// Len returns the number of events.
func (c *Catalog) Len() int { return len(c.events) }

// At returns the event at index i, or nil if out of range.
func (c *Catalog) At(i int) *event.Event {
	if i < 0 || i >= len(c.events) {
		return nil
	}
	return c.events[i]
}

// Events returns the events in catalog order. The slice is a copy; the
// events themselves are shared (they are immutable).
func (c *Catalog) Events() []*event.Event {
	return append([]*event.Event(nil), c.events...)
}

// Filter returns a new catalog holding the events whose origin time
// falls within [min, max], inclusive, in the original order. A zero
// min or max leaves that side unbounded.
func (c *Catalog) Filter(min, max time.Time) *Catalog {
	out := &Catalog{}
	for _, ev := range c.events {
		t := ev.OriginTime()
		if !min.IsZero() && t.Before(min) {
			continue
		}
		if !max.IsZero() && t.After(max) {
			continue
		}
		out.events = append(out.events, ev)
	}
	return out
}

// String implements fmt.Stringer.
func (c *Catalog) String() string {
	return fmt.Sprintf("catalog of %d events", len(c.events))
}
