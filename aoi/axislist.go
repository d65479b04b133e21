package aoi

// axisList keeps every active entity in a doubly-linked chain sorted by one
// coordinate axis. Two of these, one per axis, form the position index.
// Links live inside the slots themselves as arena indices.
type axisList struct {
	slots []aoiEntity
	axis  int
	head  int32
	tail  int32
}

func newAxisList(slots []aoiEntity, axis int) *axisList {
	return &axisList{slots: slots, axis: axis, head: nilRef, tail: nilRef}
}

func (sl *axisList) coord(ei int32) int32 { return sl.slots[ei].pos[sl.axis] }
func (sl *axisList) next(ei int32) int32  { return sl.slots[ei].next[sl.axis] }
func (sl *axisList) prev(ei int32) int32  { return sl.slots[ei].prev[sl.axis] }

// insert links the entity at its sorted position, walking from the head.
// The chain stays sorted from the moment an entity enters.
func (sl *axisList) insert(ei int32) {
	insertCoord := sl.coord(ei)
	e := &sl.slots[ei]
	if sl.head != nilRef {
		p := sl.head
		for p != nilRef && sl.coord(p) < insertCoord {
			p = sl.next(p)
		}
		// now, p == nilRef or p.coord >= insertCoord
		if p == nilRef { // insert at the end of the chain
			sl.slots[sl.tail].next[sl.axis] = ei
			e.prev[sl.axis] = sl.tail
			e.next[sl.axis] = nilRef
			sl.tail = ei
		} else { // insert before p
			prev := sl.prev(p)
			e.next[sl.axis] = p
			sl.slots[p].prev[sl.axis] = ei
			e.prev[sl.axis] = prev
			if prev != nilRef {
				sl.slots[prev].next[sl.axis] = ei
			} else { // p was the head
				sl.head = ei
			}
		}
	} else {
		e.prev[sl.axis] = nilRef
		e.next[sl.axis] = nilRef
		sl.head = ei
		sl.tail = ei
	}
}

func (sl *axisList) remove(ei int32) {
	e := &sl.slots[ei]
	prev := e.prev[sl.axis]
	next := e.next[sl.axis]
	if prev != nilRef {
		sl.slots[prev].next[sl.axis] = next
		e.prev[sl.axis] = nilRef
	} else {
		sl.head = next
	}
	if next != nilRef {
		sl.slots[next].prev[sl.axis] = prev
		e.next[sl.axis] = nilRef
	} else {
		sl.tail = prev
	}
}

// shift re-sorts the entity locally after its coordinate changed from
// oldCoord. The walk direction comes from the true coordinate delta, so
// entities moving a few units each tick relink in O(entities passed).
func (sl *axisList) shift(ei int32, oldCoord int32) {
	coord := sl.coord(ei)
	if coord > oldCoord {
		// moving towards next ...
		next := sl.next(ei)
		if next == nilRef || sl.coord(next) >= coord {
			// no need to adjust in chain
			return
		}
		prev := sl.prev(ei)
		if prev != nilRef {
			sl.slots[prev].next[sl.axis] = next // unlink ei
		} else {
			sl.head = next // ei was the head, trim it
		}
		sl.slots[next].prev[sl.axis] = prev

		prev, next = next, sl.next(next)
		for next != nilRef && sl.coord(next) < coord {
			prev, next = next, sl.next(next)
		}
		// now prev.coord < coord && (next == nilRef or next.coord >= coord)
		sl.slots[prev].next[sl.axis] = ei
		sl.slots[ei].prev[sl.axis] = prev
		if next != nilRef {
			sl.slots[next].prev[sl.axis] = ei
		} else {
			sl.tail = ei
		}
		sl.slots[ei].next[sl.axis] = next
	} else if coord < oldCoord {
		// moving towards prev ...
		prev := sl.prev(ei)
		if prev == nilRef || sl.coord(prev) <= coord {
			return
		}
		next := sl.next(ei)
		if next != nilRef {
			sl.slots[next].prev[sl.axis] = prev
		} else {
			sl.tail = prev // ei was the tail, trim it
		}
		sl.slots[prev].next[sl.axis] = next

		next, prev = prev, sl.prev(prev)
		for prev != nilRef && sl.coord(prev) > coord {
			next, prev = prev, sl.prev(prev)
		}
		// now next.coord > coord && (prev == nilRef or prev.coord <= coord)
		sl.slots[next].prev[sl.axis] = ei
		sl.slots[ei].next[sl.axis] = next
		if prev != nilRef {
			sl.slots[prev].next[sl.axis] = ei
		} else {
			sl.head = ei
		}
		sl.slots[ei].prev[sl.axis] = prev
	}
}
