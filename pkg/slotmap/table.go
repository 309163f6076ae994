package slotmap

type slotState uint8

const (
	slotEmpty slotState = iota
	slotOccupied
	slotTombstone
)

// keyStore holds the key bytes of each slot. Implementations decide the
// representation; the table only ever asks about occupied slots.
type keyStore interface {
	equal(slot int, key []byte) bool
	store(slot int, key []byte)
	load(slot int) []byte
	clear(slot int)
}

// probeTable is the open-addressing core shared by Array and Vector.
//
// Probing is linear: home, home+1, ... wrapping at capacity, and never
// takes more than capacity steps. Slot state, values and keys are parallel
// arrays allocated once at construction.
type probeTable struct {
	states []slotState
	values []int32
	keys   keyStore
	ends   endpoints
	hasher Hasher

	tombstones     bool
	count          int
	tombstoneCount int
}

func newProbeTable(opts Options, keys keyStore) probeTable {
	return probeTable{
		states:     make([]slotState, opts.Capacity),
		values:     make([]int32, opts.Capacity),
		keys:       keys,
		ends:       newEndpoints(opts.Capacity, opts.TrackOrder),
		hasher:     opts.Hasher,
		tombstones: opts.Tombstones,
	}
}

func (t *probeTable) home(key []byte) int {
	return int(t.hasher(key) % uint64(len(t.states)))
}

func (t *probeTable) next(slot int) int {
	slot++
	if slot == len(t.states) {
		return 0
	}

	return slot
}

func (t *probeTable) prev(slot int) int {
	if slot == 0 {
		return len(t.states) - 1
	}

	return slot - 1
}

func (t *probeTable) occupied(slot int) bool {
	return t.states[slot] == slotOccupied
}

// find returns the slot holding key. An empty slot ends the probe; a
// tombstone does not.
func (t *probeTable) find(key []byte) (int, bool) {
	slot := t.home(key)

	for range len(t.states) {
		switch t.states[slot] {
		case slotEmpty:
			return noSlot, false
		case slotOccupied:
			if t.keys.equal(slot, key) {
				return slot, true
			}
		case slotTombstone:
		}

		slot = t.next(slot)
	}

	return noSlot, false
}

func (t *probeTable) insert(key []byte, value int32) error {
	slot := t.home(key)
	free := noSlot

	for range len(t.states) {
		switch t.states[slot] {
		case slotEmpty:
			if free == noSlot {
				free = slot
			}

			t.occupy(free, key, value)

			return nil
		case slotOccupied:
			if t.keys.equal(slot, key) {
				t.keys.store(slot, key)
				t.values[slot] = value
				t.ends.onUpdate(slot)

				return nil
			}
		case slotTombstone:
			// Keep probing: the key may live further down the chain.
			if free == noSlot {
				free = slot
			}
		}

		slot = t.next(slot)
	}

	if free != noSlot {
		t.occupy(free, key, value)

		return nil
	}

	return ErrFull
}

func (t *probeTable) occupy(slot int, key []byte, value int32) {
	if t.states[slot] == slotTombstone {
		t.tombstoneCount--
	}

	t.states[slot] = slotOccupied
	t.keys.store(slot, key)
	t.values[slot] = value
	t.count++
	t.ends.onInsert(slot)
}

func (t *probeTable) get(key []byte) (int32, bool) {
	slot, found := t.find(key)
	if !found {
		return 0, false
	}

	return t.values[slot], true
}

func (t *probeTable) remove(key []byte) bool {
	slot, found := t.find(key)
	if !found {
		return false
	}

	t.keys.clear(slot)
	t.values[slot] = 0
	t.count--

	if t.tombstones {
		t.vacate(slot)
	} else {
		t.states[slot] = slotEmpty
	}

	t.ends.onRemove(slot, len(t.states), t.occupied)

	return true
}

// vacate leaves a tombstone at slot, unless the following slot is empty:
// then no probe chain runs through slot, so it and any tombstones directly
// before it can become empty again.
func (t *probeTable) vacate(slot int) {
	if t.states[t.next(slot)] != slotEmpty {
		t.states[slot] = slotTombstone
		t.tombstoneCount++

		return
	}

	t.states[slot] = slotEmpty

	for i := t.prev(slot); t.states[i] == slotTombstone; i = t.prev(i) {
		t.states[i] = slotEmpty
		t.tombstoneCount--
	}
}

func (t *probeTable) entry(slot int) (Entry, bool) {
	if slot == noSlot {
		return Entry{}, false
	}

	key := t.keys.load(slot)
	keyCopy := make([]byte, len(key))
	copy(keyCopy, key)

	return Entry{Key: keyCopy, Value: t.values[slot]}, true
}

func (t *probeTable) first() (Entry, bool) {
	return t.entry(t.ends.first)
}

func (t *probeTable) last() (Entry, bool) {
	return t.entry(t.ends.last)
}
