package slotmap

// Export internal state for testing.
// This file is only compiled during tests.

func tableOf(m Map) *probeTable {
	switch mm := m.(type) {
	case *Array:
		return &mm.table
	case *Vector:
		return &mm.table
	default:
		return nil
	}
}

// SlotOfForTesting returns the slot index holding key, or -1.
func SlotOfForTesting(m Map, key []byte) int {
	t := tableOf(m)
	if t == nil {
		return -1
	}

	slot, _ := t.find(key)

	return slot
}

// TombstonesForTesting returns the number of tombstone slots.
func TombstonesForTesting(m Map) int {
	t := tableOf(m)
	if t == nil {
		return 0
	}

	return t.tombstoneCount
}

// OccupiedSlotsForTesting returns the occupied slot indices in index order.
func OccupiedSlotsForTesting(m Map) []int {
	t := tableOf(m)
	if t == nil {
		return nil
	}

	var out []int

	for i := range t.states {
		if t.occupied(i) {
			out = append(out, i)
		}
	}

	return out
}
