package slotmap

import "container/list"

// Ordered is a bounded map built from a Go map and an insertion-order list.
// Every operation is O(1).
//
// Unlike [Array] and [Vector], updating a present key keeps its position:
// Last reports the most recently inserted new key, not the most recently
// updated one.
//
// An Ordered must be obtained via [NewOrdered]; the zero value is not usable.
type Ordered struct {
	_ [0]func() // prevent external construction

	values   map[string]*list.Element
	order    *list.List
	capacity int
}

type orderedEntry struct {
	key   string
	value int32
}

// NewOrdered creates an empty Ordered map holding at most opts.Capacity keys.
// Only opts.Capacity is used.
//
// Possible errors: [ErrInvalidInput].
func NewOrdered(opts Options) (*Ordered, error) {
	opts, err := opts.normalize(StorageOrdered)
	if err != nil {
		return nil, err
	}

	return &Ordered{
		values:   make(map[string]*list.Element, opts.Capacity),
		order:    list.New(),
		capacity: opts.Capacity,
	}, nil
}

// Insert stores value under key, replacing the value of a present key.
//
// Possible errors: [ErrFull].
func (o *Ordered) Insert(key []byte, value int32) error {
	if elem, ok := o.values[string(key)]; ok {
		elem.Value.(*orderedEntry).value = value //nolint:forcetypeassert // only *orderedEntry is stored

		return nil
	}

	if len(o.values) == o.capacity {
		return ErrFull
	}

	k := string(key)
	o.values[k] = o.order.PushBack(&orderedEntry{key: k, value: value})

	return nil
}

// Get returns the value stored under key.
func (o *Ordered) Get(key []byte) (int32, bool) {
	elem, ok := o.values[string(key)]
	if !ok {
		return 0, false
	}

	return elem.Value.(*orderedEntry).value, true //nolint:forcetypeassert // only *orderedEntry is stored
}

// Remove deletes key and reports whether it was present.
func (o *Ordered) Remove(key []byte) bool {
	elem, ok := o.values[string(key)]
	if !ok {
		return false
	}

	delete(o.values, string(key))
	o.order.Remove(elem)

	return true
}

// First returns the earliest inserted live entry.
func (o *Ordered) First() (Entry, bool) { return entryOf(o.order.Front()) }

// Last returns the most recently inserted live entry.
func (o *Ordered) Last() (Entry, bool) { return entryOf(o.order.Back()) }

// Len returns the number of live entries.
func (o *Ordered) Len() int { return len(o.values) }

// Cap returns the maximum number of entries.
func (o *Ordered) Cap() int { return o.capacity }

func entryOf(elem *list.Element) (Entry, bool) {
	if elem == nil {
		return Entry{}, false
	}

	e := elem.Value.(*orderedEntry) //nolint:forcetypeassert // only *orderedEntry is stored

	return Entry{Key: []byte(e.key), Value: e.value}, true
}
