// Probe-order, tombstone and endpoint-maintenance tests. Hashers are
// replaced so that slot placement is known exactly.

package slotmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/slotmap/pkg/slotmap"
)

func Test_Vector_Places_Colliding_Keys_In_Increasing_Slots_When_Home_Taken(t *testing.T) {
	t.Parallel()

	v := newVector(t, slotmap.Options{Capacity: 4, Hasher: constHasher(0)})

	mustInsert(t, v, "a", 1)
	mustInsert(t, v, "b", 2)
	mustInsert(t, v, "c", 3)

	require.Equal(t, 0, slotmap.SlotOfForTesting(v, []byte("a")), "slot of a")
	require.Equal(t, 1, slotmap.SlotOfForTesting(v, []byte("b")), "slot of b")
	require.Equal(t, 2, slotmap.SlotOfForTesting(v, []byte("c")), "slot of c")
}

func Test_Array_Wraps_Probe_To_Slot_Zero_When_Last_Slot_Taken(t *testing.T) {
	t.Parallel()

	a := newArray(t, slotmap.Options{Capacity: 4, Hasher: constHasher(3)})

	mustInsert(t, a, "a", 1)
	mustInsert(t, a, "b", 2)
	mustInsert(t, a, "c", 3)

	require.Equal(t, 3, slotmap.SlotOfForTesting(a, []byte("a")), "slot of a")
	require.Equal(t, 0, slotmap.SlotOfForTesting(a, []byte("b")), "slot of b")
	require.Equal(t, 1, slotmap.SlotOfForTesting(a, []byte("c")), "slot of c")
}

func Test_Vector_Reduces_Hash_Modulo_Capacity_When_Hash_Exceeds_Capacity(t *testing.T) {
	t.Parallel()

	v := newVector(t, slotmap.Options{Capacity: 5, Hasher: constHasher(17)})

	mustInsert(t, v, "a", 1)
	require.Equal(t, 2, slotmap.SlotOfForTesting(v, []byte("a")), "17 mod 5")
}

func Test_Vector_Updates_In_Place_When_Key_Lives_Past_Collisions(t *testing.T) {
	t.Parallel()

	v := newVector(t, slotmap.Options{Capacity: 4, Hasher: constHasher(0)})

	mustInsert(t, v, "a", 1)
	mustInsert(t, v, "b", 2)
	mustInsert(t, v, "b", 20)

	require.Equal(t, 1, slotmap.SlotOfForTesting(v, []byte("b")), "update must not move b")
	require.Equal(t, []int{0, 1}, slotmap.OccupiedSlotsForTesting(v), "occupied slots")
	requireGet(t, v, "b", 20)
}

// The default removal empties the slot without a tombstone. A key stored
// past the vacated slot on the same probe chain becomes unreachable.
func Test_Vector_Misses_Key_Past_Vacated_Slot_When_Tombstones_Disabled(t *testing.T) {
	t.Parallel()

	v := newVector(t, slotmap.Options{Capacity: 4, Hasher: constHasher(0)})

	mustInsert(t, v, "a", 1)
	mustInsert(t, v, "b", 2)

	v.Remove([]byte("a"))

	requireMissing(t, v, "b")
	require.Equal(t, 1, v.Len(), "b is still stored")
	require.False(t, v.Remove([]byte("b")), "Remove cannot reach b either")

	// Reinserting lands in the vacated home slot, leaving two copies of b.
	mustInsert(t, v, "b", 3)
	require.Equal(t, 2, v.Len(), "duplicate b after reinsertion")
	require.Equal(t, []int{0, 1}, slotmap.OccupiedSlotsForTesting(v), "occupied slots")
	requireGet(t, v, "b", 3)
}

func Test_Vector_Finds_Key_Past_Vacated_Slot_When_Tombstones_Enabled(t *testing.T) {
	t.Parallel()

	v := newVector(t, slotmap.Options{Capacity: 4, Hasher: constHasher(0), Tombstones: true})

	mustInsert(t, v, "a", 1)
	mustInsert(t, v, "b", 2)

	v.Remove([]byte("a"))
	require.Equal(t, 1, slotmap.TombstonesForTesting(v), "a leaves a tombstone")

	requireGet(t, v, "b", 2)

	mustInsert(t, v, "b", 3)
	require.Equal(t, 1, v.Len(), "update must not duplicate b")
	require.Equal(t, 1, slotmap.SlotOfForTesting(v, []byte("b")), "b stays in place")
	requireGet(t, v, "b", 3)

	require.True(t, v.Remove([]byte("b")), "Remove reaches b")
	requireMissing(t, v, "b")
}

func Test_Vector_Reuses_Tombstone_When_New_Key_Inserted(t *testing.T) {
	t.Parallel()

	v := newVector(t, slotmap.Options{Capacity: 4, Hasher: constHasher(0), Tombstones: true})

	mustInsert(t, v, "a", 1)
	mustInsert(t, v, "b", 2)
	mustInsert(t, v, "c", 3)

	v.Remove([]byte("b"))
	require.Equal(t, 1, slotmap.TombstonesForTesting(v), "b leaves a tombstone")

	mustInsert(t, v, "d", 4)

	require.Equal(t, 1, slotmap.SlotOfForTesting(v, []byte("d")), "d takes the tombstone")
	require.Equal(t, 0, slotmap.TombstonesForTesting(v), "tombstone consumed")
	requireGet(t, v, "c", 3)
}

func Test_Vector_Clears_Trailing_Tombstones_When_Chain_End_Removed(t *testing.T) {
	t.Parallel()

	v := newVector(t, slotmap.Options{Capacity: 8, Hasher: constHasher(0), Tombstones: true})

	mustInsert(t, v, "a", 1)
	mustInsert(t, v, "b", 2)
	mustInsert(t, v, "c", 3)

	v.Remove([]byte("b"))
	require.Equal(t, 1, slotmap.TombstonesForTesting(v), "middle of chain")

	v.Remove([]byte("c"))
	require.Equal(t, 0, slotmap.TombstonesForTesting(v), "c and b collapse to empty")

	requireGet(t, v, "a", 1)

	v.Remove([]byte("a"))
	require.Equal(t, 0, slotmap.TombstonesForTesting(v), "a is the chain end")
	require.Equal(t, 0, v.Len(), "Len")
}

func Test_Vector_Fills_Tombstone_When_Every_Other_Slot_Occupied(t *testing.T) {
	t.Parallel()

	v := newVector(t, slotmap.Options{Capacity: 2, Hasher: constHasher(0), Tombstones: true})

	mustInsert(t, v, "a", 1)
	mustInsert(t, v, "b", 2)

	v.Remove([]byte("a"))
	mustInsert(t, v, "c", 3)

	require.Equal(t, 0, slotmap.SlotOfForTesting(v, []byte("c")), "c reuses slot 0")
	requireGet(t, v, "b", 2)
	require.ErrorIs(t, v.Insert([]byte("d"), 4), slotmap.ErrFull, "no free slot left")
}

func Test_Vector_Returns_Not_Found_When_Full_Table_Probed(t *testing.T) {
	t.Parallel()

	v := newVector(t, slotmap.Options{Capacity: 3, Hasher: constHasher(1)})

	mustInsert(t, v, "a", 1)
	mustInsert(t, v, "b", 2)
	mustInsert(t, v, "c", 3)

	requireMissing(t, v, "d")
	require.False(t, v.Remove([]byte("d")), "Remove of absent key in a full table")
}

// Rescan endpoints follow slot index order after an endpoint removal,
// not insertion order.
func Test_Vector_Recomputes_Endpoints_By_Slot_Index_When_Endpoint_Removed(t *testing.T) {
	t.Parallel()

	homes := map[string]uint64{"x": 3, "y": 0, "z": 1}

	v := newVector(t, slotmap.Options{Capacity: 4, Hasher: placedHasher(homes)})

	mustInsert(t, v, "x", 1)
	mustInsert(t, v, "y", 2)
	mustInsert(t, v, "z", 3)

	requireFirst(t, v, "x", 1)
	requireLast(t, v, "z", 3)

	v.Remove([]byte("z"))

	requireFirst(t, v, "y", 2)
	requireLast(t, v, "x", 1)

	v.Remove([]byte("x"))

	requireFirst(t, v, "y", 2)
	requireLast(t, v, "y", 2)

	v.Remove([]byte("y"))
	requireEmptyEndpoints(t, v)
}

func Test_Vector_Keeps_Endpoints_When_Inner_Entry_Removed(t *testing.T) {
	t.Parallel()

	homes := map[string]uint64{"x": 3, "y": 0, "z": 1}

	v := newVector(t, slotmap.Options{Capacity: 4, Hasher: placedHasher(homes)})

	mustInsert(t, v, "x", 1)
	mustInsert(t, v, "y", 2)
	mustInsert(t, v, "z", 3)

	v.Remove([]byte("y"))

	requireFirst(t, v, "x", 1)
	requireLast(t, v, "z", 3)
}

func Test_Vector_Keeps_Insertion_Order_When_TrackOrder_Enabled(t *testing.T) {
	t.Parallel()

	homes := map[string]uint64{"x": 3, "y": 0, "z": 1}

	v := newVector(t, slotmap.Options{Capacity: 4, Hasher: placedHasher(homes), TrackOrder: true})

	mustInsert(t, v, "x", 1)
	mustInsert(t, v, "y", 2)
	mustInsert(t, v, "z", 3)

	v.Remove([]byte("z"))

	requireFirst(t, v, "x", 1)
	requireLast(t, v, "y", 2)

	v.Remove([]byte("x"))

	requireFirst(t, v, "y", 2)
	requireLast(t, v, "y", 2)
}

func Test_Vector_Falls_Back_To_Previous_Touch_When_Updated_Last_Removed(t *testing.T) {
	t.Parallel()

	v := newVector(t, slotmap.Options{Capacity: 8, TrackOrder: true, Tombstones: true})

	mustInsert(t, v, "a", 1)
	mustInsert(t, v, "b", 2)
	mustInsert(t, v, "c", 3)
	mustInsert(t, v, "a", 10)

	requireFirst(t, v, "a", 10)
	requireLast(t, v, "a", 10)

	v.Remove([]byte("a"))

	requireFirst(t, v, "b", 2)
	requireLast(t, v, "c", 3)

	mustInsert(t, v, "b", 20)
	v.Remove([]byte("b"))

	requireFirst(t, v, "c", 3)
	requireLast(t, v, "c", 3)
}

func Test_Array_Compares_Only_Stored_Length_When_Keys_Share_Slot(t *testing.T) {
	t.Parallel()

	a := newArray(t, slotmap.Options{Capacity: 4, MaxKeyLen: 8, Hasher: constHasher(0)})

	mustInsert(t, a, "abc", 1)
	require.True(t, a.Remove([]byte("abc")), "Remove abc")

	mustInsert(t, a, "ab", 2)
	require.Equal(t, 0, slotmap.SlotOfForTesting(a, []byte("ab")), "ab reuses slot 0")

	requireGet(t, a, "ab", 2)
	requireMissing(t, a, "abc")
	requireMissing(t, a, "ab\x00")
	requireMissing(t, a, "a")
}

func Test_Array_Stores_Replacement_Key_Bytes_When_Key_Updated(t *testing.T) {
	t.Parallel()

	a := newArray(t, slotmap.Options{Capacity: 2, MaxKeyLen: 4})

	mustInsert(t, a, "abcd", 1)
	mustInsert(t, a, "abcd", 2)

	requireFirst(t, a, "abcd", 2)
	requireLast(t, a, "abcd", 2)
}
