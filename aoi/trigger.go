package aoi

// EventKind tells an enter event from a leave event.
type EventKind uint8

const (
	// EventEnter means some entity came into sight
	EventEnter EventKind = 0x01
	// EventLeave means some entity went out of sight
	EventLeave EventKind = 0x02
)

// Event is one enter/leave transition produced by Trigger.
type Event struct {
	ID   EntityID
	Kind EventKind
}

// Trigger scans for neighbors of the entity and returns the enter/leave
// events since its previous scan. Entities within enterRadius become
// neighbors; entities between enterRadius and leaveRadius stay neighbors
// only if they already were (the hysteresis band). Callers must ensure
// leaveRadius > enterRadius; the engine does not validate it.
//
// The returned slice aliases a buffer owned by the manager and is
// overwritten by the next Trigger call on any entity.
func (mgr *AOIManager) Trigger(id EntityID, enterRadius, leaveRadius int32) []Event {
	mgr.events = mgr.events[:0]
	e := mgr.pool.get(id)
	if e == nil {
		return mgr.events
	}

	// build the new candidate set in the retired buffer's storage
	cur := e.prevNeighbors[:0]
	enterR2 := int64(enterRadius) * int64(enterRadius)
	leaveR2 := int64(leaveRadius) * int64(leaveRadius)

	// walking only the x chain is enough: it is sorted, so the walk in each
	// direction stops once the x distance alone exceeds leaveRadius
	xs := mgr.lists[0]
	ei := slotIndex(id)
	for dir := 0; dir < 2; dir++ {
		var p int32
		if dir == 0 {
			p = xs.prev(ei)
		} else {
			p = xs.next(ei)
		}
		for p != nilRef {
			other := &mgr.pool.slots[p]
			dx := int64(e.pos[0]) - int64(other.pos[0])
			if dx < 0 {
				dx = -dx
			}
			if dx > int64(leaveRadius) {
				break
			}
			dy := int64(e.pos[1]) - int64(other.pos[1])
			if dy < 0 {
				dy = -dy
			}
			// the y delta is unbounded, so prune before squaring: dy*dy of
			// two far-apart int32 coordinates would overflow int64
			if dy <= int64(leaveRadius) {
				d2 := dx*dx + dy*dy
				if d2 <= enterR2 {
					cur.insert(other.id)
				} else if d2 <= leaveR2 && e.neighbors.contains(other.id) {
					cur.insert(other.id)
				}
			}
			if dir == 0 {
				p = xs.prev(p)
			} else {
				p = xs.next(p)
			}
		}
	}

	mgr.diffNeighbors(e.neighbors, cur)

	// swap buffers: cur becomes the entity's snapshot, the old snapshot's
	// storage is recycled on the next scan
	e.prevNeighbors = e.neighbors
	e.neighbors = cur
	return mgr.events
}

// diffNeighbors merges the two sorted snapshots and emits EventEnter for ids
// only in the new one, EventLeave for ids only in the old one. Old ids whose
// entity no longer exists are dropped without a leave event.
func (mgr *AOIManager) diffNeighbors(old, cur neighborList) {
	oi, ni := 0, 0
	for oi < len(old) || ni < len(cur) {
		if oi >= len(old) {
			mgr.events = append(mgr.events, Event{ID: cur[ni], Kind: EventEnter})
			ni++
			continue
		}
		o := old[oi]
		if mgr.pool.get(o) == nil {
			oi++
			continue
		}
		if ni >= len(cur) {
			mgr.events = append(mgr.events, Event{ID: o, Kind: EventLeave})
			oi++
			continue
		}
		n := cur[ni]
		switch {
		case n < o:
			mgr.events = append(mgr.events, Event{ID: n, Kind: EventEnter})
			ni++
		case n == o:
			oi++
			ni++
		default:
			mgr.events = append(mgr.events, Event{ID: o, Kind: EventLeave})
			oi++
		}
	}
}

// Around copies up to len(out) ids from the entity's latest neighbor
// snapshot into out and returns the number copied.
func (mgr *AOIManager) Around(id EntityID, out []EntityID) int {
	e := mgr.pool.get(id)
	if e == nil {
		return 0
	}
	n := len(e.neighbors)
	if n > len(out) {
		n = len(out)
	}
	copy(out, e.neighbors[:n])
	return n
}
