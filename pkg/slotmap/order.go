package slotmap

// noSlot marks an absent slot index in endpoints and order links.
const noSlot = -1

// orderList is an intrusive doubly-linked list over slot indices.
//
// Links live in flat arrays indexed by slot, so membership costs no
// allocation after construction and every operation is O(1).
type orderList struct {
	prev []int32
	next []int32
	head int32
	tail int32
}

func newOrderList(capacity int) orderList {
	l := orderList{
		prev: make([]int32, capacity),
		next: make([]int32, capacity),
		head: noSlot,
		tail: noSlot,
	}

	for i := range capacity {
		l.prev[i] = noSlot
		l.next[i] = noSlot
	}

	return l
}

func (l *orderList) pushBack(slot int32) {
	l.prev[slot] = l.tail
	l.next[slot] = noSlot

	if l.tail == noSlot {
		l.head = slot
	} else {
		l.next[l.tail] = slot
	}

	l.tail = slot
}

func (l *orderList) unlink(slot int32) {
	prev, next := l.prev[slot], l.next[slot]

	if prev == noSlot {
		l.head = next
	} else {
		l.next[prev] = next
	}

	if next == noSlot {
		l.tail = prev
	} else {
		l.prev[next] = prev
	}

	l.prev[slot] = noSlot
	l.next[slot] = noSlot
}

func (l *orderList) moveToBack(slot int32) {
	if l.tail == slot {
		return
	}

	l.unlink(slot)
	l.pushBack(slot)
}

// endpoints tracks the First and Last slots of a probeTable.
//
// Without lists it implements the rescan behavior: first is set when the
// table gains its first entry, last follows every insert or update, and an
// endpoint removal rescans the table in index order. With lists, First is
// the head of the insertion list and Last the tail of the recency list.
type endpoints struct {
	first int
	last  int

	tracked  bool
	inserted orderList
	recency  orderList
}

func newEndpoints(capacity int, tracked bool) endpoints {
	e := endpoints{first: noSlot, last: noSlot, tracked: tracked}

	if tracked {
		e.inserted = newOrderList(capacity)
		e.recency = newOrderList(capacity)
	}

	return e
}

func (e *endpoints) onInsert(slot int) {
	if e.tracked {
		e.inserted.pushBack(int32(slot))
		e.recency.pushBack(int32(slot))
		e.sync()

		return
	}

	if e.first == noSlot {
		e.first = slot
	}

	e.last = slot
}

func (e *endpoints) onUpdate(slot int) {
	if e.tracked {
		e.recency.moveToBack(int32(slot))
		e.sync()

		return
	}

	e.last = slot
}

// onRemove is called after slot has been vacated. occupied reports whether
// a slot currently holds a live entry and is only used by the rescan.
func (e *endpoints) onRemove(slot int, capacity int, occupied func(int) bool) {
	if e.tracked {
		e.inserted.unlink(int32(slot))
		e.recency.unlink(int32(slot))
		e.sync()

		return
	}

	if slot != e.first && slot != e.last {
		return
	}

	e.first, e.last = noSlot, noSlot

	for i := range capacity {
		if !occupied(i) {
			continue
		}

		if e.first == noSlot {
			e.first = i
		}

		e.last = i
	}
}

func (e *endpoints) sync() {
	e.first = int(e.inserted.head)
	e.last = int(e.recency.tail)
}
