package slotmap

import "bytes"

// Vector is an open-addressed map over a slot vector with keys of any
// length. Each occupied slot owns a private copy of its key; the buffer is
// reused when the slot is updated in place.
//
// A Vector must be obtained via [NewVector]; the zero value is not usable.
type Vector struct {
	_ [0]func() // prevent external construction

	table probeTable
}

// NewVector creates an empty Vector with opts.Capacity slots.
// opts.Storage and opts.MaxKeyLen are ignored.
//
// Possible errors: [ErrInvalidInput].
func NewVector(opts Options) (*Vector, error) {
	opts, err := opts.normalize(StorageVector)
	if err != nil {
		return nil, err
	}

	keys := &heapKeys{keys: make([][]byte, opts.Capacity)}

	return &Vector{table: newProbeTable(opts, keys)}, nil
}

// Insert stores value under key, replacing the value of a present key.
//
// Possible errors: [ErrFull].
func (v *Vector) Insert(key []byte, value int32) error {
	return v.table.insert(key, value)
}

// Get returns the value stored under key.
func (v *Vector) Get(key []byte) (int32, bool) { return v.table.get(key) }

// Remove deletes key and reports whether it was present.
func (v *Vector) Remove(key []byte) bool { return v.table.remove(key) }

// First returns the oldest live entry.
func (v *Vector) First() (Entry, bool) { return v.table.first() }

// Last returns the most recently inserted or updated live entry.
func (v *Vector) Last() (Entry, bool) { return v.table.last() }

// Len returns the number of live entries.
func (v *Vector) Len() int { return v.table.count }

// Cap returns the fixed slot count.
func (v *Vector) Cap() int { return len(v.table.states) }

type heapKeys struct {
	keys [][]byte
}

func (k *heapKeys) equal(slot int, key []byte) bool {
	return bytes.Equal(k.keys[slot], key)
}

func (k *heapKeys) store(slot int, key []byte) {
	k.keys[slot] = append(k.keys[slot][:0], key...)
}

func (k *heapKeys) load(slot int) []byte {
	return k.keys[slot]
}

func (k *heapKeys) clear(slot int) {
	k.keys[slot] = nil
}
