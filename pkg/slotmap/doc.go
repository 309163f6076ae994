// Package slotmap provides bounded, fixed-capacity maps from byte keys to
// int32 values that also report their oldest and newest live entry.
//
// Capacity is chosen at construction and never changes. A full map is an
// error ([ErrFull]), not a trigger for growth.
//
// # Basic Usage
//
//	m, err := slotmap.NewVector(slotmap.Options{Capacity: 1024})
//	if err != nil {
//	    // ErrInvalidInput
//	}
//
//	err = m.Insert([]byte("BTC-200730-9000-C"), 42)
//	if errors.Is(err, slotmap.ErrFull) {
//	    // remove something, or rebuild into a larger map
//	}
//
//	v, ok := m.Get([]byte("BTC-200730-9000-C"))
//	oldest, ok := m.First()
//	newest, ok := m.Last()
//
// # Storage
//
// [Array] and [Vector] are open-addressed tables using linear probing over a
// preallocated slot array. [Array] stores keys in fixed-length buffers inside
// one arena and rejects keys longer than [Options.MaxKeyLen] with
// [ErrKeyTooLong]. [Vector] accepts keys of any length. [Ordered] layers an
// insertion-order list over a Go map.
//
// # Removal
//
// By default removal empties the slot without leaving a tombstone, and an
// endpoint removal recomputes First/Last by scanning the table in index
// order. A lookup whose probe chain crossed the vacated slot can then miss
// a live key. Set [Options.Tombstones] to keep probe chains intact and
// [Options.TrackOrder] to keep First/Last in true insertion/recency order.
//
// # Concurrency
//
// Maps are not safe for concurrent use. Callers must serialize access.
package slotmap
