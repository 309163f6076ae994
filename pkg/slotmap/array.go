package slotmap

import (
	"bytes"
	"fmt"
)

// Array is an open-addressed map whose keys live in fixed-length buffers.
//
// All key bytes share one arena of Capacity*MaxKeyLen bytes allocated by
// [NewArray]; inserts never allocate. Keys longer than MaxKeyLen are
// rejected with [ErrKeyTooLong].
//
// An Array must be obtained via [NewArray]; the zero value is not usable.
type Array struct {
	_ [0]func() // prevent external construction

	table     probeTable
	maxKeyLen int
}

// NewArray creates an empty Array. Zero Capacity and MaxKeyLen select
// [DefaultCapacity] and [DefaultMaxKeyLen]. opts.Storage is ignored.
//
// Possible errors: [ErrInvalidInput].
func NewArray(opts Options) (*Array, error) {
	opts, err := opts.normalize(StorageArray)
	if err != nil {
		return nil, err
	}

	keys := &fixedKeys{
		arena: make([]byte, opts.Capacity*opts.MaxKeyLen),
		lens:  make([]uint16, opts.Capacity),
		width: opts.MaxKeyLen,
	}

	return &Array{
		table:     newProbeTable(opts, keys),
		maxKeyLen: opts.MaxKeyLen,
	}, nil
}

// Insert stores value under key, replacing the value of a present key.
//
// Possible errors: [ErrKeyTooLong], [ErrFull].
func (a *Array) Insert(key []byte, value int32) error {
	if len(key) > a.maxKeyLen {
		return fmt.Errorf("key length %d > max_key_len %d: %w", len(key), a.maxKeyLen, ErrKeyTooLong)
	}

	return a.table.insert(key, value)
}

// Get returns the value stored under key.
func (a *Array) Get(key []byte) (int32, bool) {
	if len(key) > a.maxKeyLen {
		return 0, false
	}

	return a.table.get(key)
}

// Remove deletes key and reports whether it was present.
func (a *Array) Remove(key []byte) bool {
	if len(key) > a.maxKeyLen {
		return false
	}

	return a.table.remove(key)
}

// First returns the oldest live entry.
func (a *Array) First() (Entry, bool) { return a.table.first() }

// Last returns the most recently inserted or updated live entry.
func (a *Array) Last() (Entry, bool) { return a.table.last() }

// Len returns the number of live entries.
func (a *Array) Len() int { return a.table.count }

// Cap returns the fixed slot count.
func (a *Array) Cap() int { return len(a.table.states) }

// MaxKeyLen returns the key buffer length.
func (a *Array) MaxKeyLen() int { return a.maxKeyLen }

// fixedKeys stores each key in a width-byte window of one arena plus an
// explicit length. Bytes past the length are padding and never compared.
type fixedKeys struct {
	arena []byte
	lens  []uint16
	width int
}

func (k *fixedKeys) window(slot int) []byte {
	off := slot * k.width

	return k.arena[off : off+k.width]
}

func (k *fixedKeys) equal(slot int, key []byte) bool {
	return int(k.lens[slot]) == len(key) && bytes.Equal(k.window(slot)[:len(key)], key)
}

func (k *fixedKeys) store(slot int, key []byte) {
	buf := k.window(slot)
	n := copy(buf, key)
	clear(buf[n:])
	k.lens[slot] = uint16(n)
}

func (k *fixedKeys) load(slot int) []byte {
	return k.window(slot)[:k.lens[slot]]
}

func (k *fixedKeys) clear(slot int) {
	clear(k.window(slot))
	k.lens[slot] = 0
}
