// Package model provides a deliberately simple, in-memory state model of
// slotmap's publicly observable behavior.
//
// The model is intentionally easy to audit: it keeps live entries in a
// slice in insertion order and favors clarity over performance. It knows
// nothing about slots, hashing or probing.
package model

import (
	"slices"

	"github.com/calvinalkan/slotmap/pkg/slotmap"
)

// Options configure the model.
type Options struct {
	// Capacity is the maximum number of live entries.
	Capacity int

	// MaxKeyLen rejects longer keys with ErrKeyTooLong; zero means unbounded.
	MaxKeyLen int

	// UpdateMovesLast makes an update of a present key the new Last entry.
	// True for Array/Vector, false for Ordered.
	UpdateMovesLast bool
}

// Record is one live entry.
type Record struct {
	Key     string
	Value   int32
	Touched uint64
}

// Map is the reference model. Records are kept in insertion order.
type Map struct {
	Options Options
	Records []Record
	Clock   uint64
}

// New returns an empty model.
func New(opts Options) *Map {
	return &Map{Options: opts}
}

// Clone makes a deep copy so tests can fork the exact same state.
func (m *Map) Clone() *Map {
	return &Map{
		Options: m.Options,
		Records: slices.Clone(m.Records),
		Clock:   m.Clock,
	}
}

// Insert stores value under key.
func (m *Map) Insert(key []byte, value int32) error {
	if m.Options.MaxKeyLen > 0 && len(key) > m.Options.MaxKeyLen {
		return slotmap.ErrKeyTooLong
	}

	idx := m.index(key)
	if idx >= 0 {
		m.Records[idx].Value = value
		if m.Options.UpdateMovesLast {
			m.Records[idx].Touched = m.tick()
		}

		return nil
	}

	if len(m.Records) >= m.Options.Capacity {
		return slotmap.ErrFull
	}

	m.Records = append(m.Records, Record{Key: string(key), Value: value, Touched: m.tick()})

	return nil
}

// Get returns the value stored under key.
func (m *Map) Get(key []byte) (int32, bool) {
	idx := m.index(key)
	if idx < 0 {
		return 0, false
	}

	return m.Records[idx].Value, true
}

// Remove deletes key and reports whether it was present.
func (m *Map) Remove(key []byte) bool {
	idx := m.index(key)
	if idx < 0 {
		return false
	}

	m.Records = slices.Delete(m.Records, idx, idx+1)

	return true
}

// First returns the earliest inserted live entry.
func (m *Map) First() (slotmap.Entry, bool) {
	if len(m.Records) == 0 {
		return slotmap.Entry{}, false
	}

	return entryOf(m.Records[0]), true
}

// Last returns the live entry with the latest touch.
func (m *Map) Last() (slotmap.Entry, bool) {
	if len(m.Records) == 0 {
		return slotmap.Entry{}, false
	}

	newest := m.Records[0]
	for _, rec := range m.Records[1:] {
		if rec.Touched > newest.Touched {
			newest = rec
		}
	}

	return entryOf(newest), true
}

// Len returns the number of live entries.
func (m *Map) Len() int { return len(m.Records) }

// Entries returns all live entries in insertion order.
func (m *Map) Entries() []slotmap.Entry {
	out := make([]slotmap.Entry, 0, len(m.Records))
	for _, rec := range m.Records {
		out = append(out, entryOf(rec))
	}

	return out
}

func (m *Map) index(key []byte) int {
	return slices.IndexFunc(m.Records, func(rec Record) bool { return rec.Key == string(key) })
}

func (m *Map) tick() uint64 {
	m.Clock++

	return m.Clock
}

func entryOf(rec Record) slotmap.Entry {
	return slotmap.Entry{Key: []byte(rec.Key), Value: rec.Value}
}
