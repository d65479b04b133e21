package aoi

type entityState uint8

const (
	entityFree entityState = iota
	entityActive
)

// nilRef marks the end of an axis chain. Axis links are arena indices into
// the slot table rather than pointers, so slots can be recycled freely.
const nilRef int32 = -1

// aoiEntity is one slot of the arena. A slot is identified by its arena
// index; the stored id tells stale handles from live ones after the id
// counter wraps around the slot table.
type aoiEntity struct {
	id    EntityID
	state entityState

	pos   [2]int32 // current position
	start [2]int32 // position when the current move started
	dest  [2]int32 // move destination

	dir     [2]float64 // unit vector towards dest
	rate    float64    // angular rate of the lateral perturbation
	elapsed int32      // ticks since the move started
	remain  int32      // ticks until the move ends
	speed   int32

	prev [2]int32
	next [2]int32

	neighbors     neighborList // result of the latest Trigger
	prevNeighbors neighborList // result of the Trigger before that; scratch during a scan

	userData interface{}
}

// entityPool is the fixed-capacity slot arena with id recycling. Ids grow
// monotonically; a slot is addressed by id & _SLOT_MASK and becomes
// reusable once released.
type entityPool struct {
	slots  []aoiEntity
	nextID EntityID
}

func newEntityPool() *entityPool {
	p := &entityPool{
		slots: make([]aoiEntity, MAX_ENTITIES),
	}
	for i := range p.slots {
		p.slots[i].prev[0], p.slots[i].prev[1] = nilRef, nilRef
		p.slots[i].next[0], p.slots[i].next[1] = nilRef, nilRef
	}
	return p
}

func slotIndex(id EntityID) int32 {
	return int32(id) & _SLOT_MASK
}

// allocate finds a free slot within one pass over the table and reserves it.
// Returns (nilRef, InvalidEntityID) when every slot is active.
func (p *entityPool) allocate() (int32, EntityID) {
	for i := 0; i < MAX_ENTITIES; i++ {
		id := p.nextID
		p.nextID++
		if p.nextID < 0 { // id counter wrapped
			p.nextID = 0
		}
		ei := slotIndex(id)
		slot := &p.slots[ei]
		if slot.state == entityFree {
			*slot = aoiEntity{id: id, state: entityActive}
			slot.prev[0], slot.prev[1] = nilRef, nilRef
			slot.next[0], slot.next[1] = nilRef, nilRef
			return ei, id
		}
	}
	return nilRef, InvalidEntityID
}

// get resolves an id to its live entity, or nil if the handle is stale.
func (p *entityPool) get(id EntityID) *aoiEntity {
	if id < 0 {
		return nil
	}
	e := &p.slots[slotIndex(id)]
	if e.state != entityActive || e.id != id {
		return nil
	}
	return e
}

// release frees the slot and drops its snapshot storage. The caller must
// have unlinked the entity from both axis lists already.
func (p *entityPool) release(e *aoiEntity) {
	*e = aoiEntity{}
	e.prev[0], e.prev[1] = nilRef, nilRef
	e.next[0], e.next[1] = nilRef, nilRef
}
