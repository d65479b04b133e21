// Package aoi implements a sweep-list Area of Interest engine for
// real-time multi-entity simulations. Entities live in a fixed-capacity
// slot arena and are indexed by two axis-sorted linked chains; Trigger
// diffs successive neighbor snapshots under a hysteresis band to emit
// enter/leave events.
//
// The engine is single-threaded by design: all calls against one
// AOIManager must be serialized by the caller, typically from a single
// per-tick update loop.
package aoi

import (
	"github.com/pkg/errors"

	"github.com/xiaonanln/go-sweepaoi/aoilog"
)

const (
	// MAX_ENTITIES is the fixed capacity of the entity slot table (a power of two)
	MAX_ENTITIES = 1 << 16

	_SLOT_MASK = MAX_ENTITIES - 1

	// _DEFAULT_NEIGHBOR_CAP is the initial capacity of neighbor snapshots
	_DEFAULT_NEIGHBOR_CAP = 32
)

// EntityID is the handle of an entity inside an AOIManager. Handles are
// unique among active entities and become stale after Leave; every
// operation on a stale handle is a safe no-op.
type EntityID int32

// InvalidEntityID is never a valid handle.
const InvalidEntityID EntityID = -1

// ErrPoolExhausted is returned by Enter when all entity slots are active.
var ErrPoolExhausted = errors.New("aoi: entity pool exhausted")

// AOIManager owns the slot arena, both axis chains and the shared event
// buffer. Not safe for concurrent use.
type AOIManager struct {
	pool   *entityPool
	lists  [2]*axisList
	events []Event
}

// NewAOIManager creates an empty manager with capacity MAX_ENTITIES.
func NewAOIManager() *AOIManager {
	pool := newEntityPool()
	return &AOIManager{
		pool: pool,
		lists: [2]*axisList{
			newAxisList(pool.slots, 0),
			newAxisList(pool.slots, 1),
		},
		events: make([]Event, 0, MAX_ENTITIES),
	}
}

// Enter creates an entity at (0, 0) with empty snapshots and links it at
// its sorted position on both axes. ud is returned verbatim by UserData.
func (mgr *AOIManager) Enter(ud interface{}) (EntityID, error) {
	ei, id := mgr.pool.allocate()
	if ei == nilRef {
		aoilog.Warnf("AOIManager.Enter: all %d slots active", MAX_ENTITIES)
		return InvalidEntityID, ErrPoolExhausted
	}
	e := &mgr.pool.slots[ei]
	e.neighbors = make(neighborList, 0, _DEFAULT_NEIGHBOR_CAP)
	e.prevNeighbors = make(neighborList, 0, _DEFAULT_NEIGHBOR_CAP)
	e.userData = ud
	mgr.lists[0].insert(ei)
	mgr.lists[1].insert(ei)
	aoilog.Debugf("entity %d entered", id)
	return id, nil
}

// Leave unlinks the entity from both axes and frees its slot for reuse.
// No-op on a stale id. Neighbors of the departed entity get no leave event
// for it on their next Trigger.
func (mgr *AOIManager) Leave(id EntityID) {
	e := mgr.pool.get(id)
	if e == nil {
		return
	}
	ei := slotIndex(id)
	mgr.lists[0].remove(ei)
	mgr.lists[1].remove(ei)
	mgr.pool.release(e)
	aoilog.Debugf("entity %d left", id)
}

// UserData returns the opaque payload supplied at Enter. ok is false on a
// stale id.
func (mgr *AOIManager) UserData(id EntityID) (ud interface{}, ok bool) {
	e := mgr.pool.get(id)
	if e == nil {
		return nil, false
	}
	return e.userData, true
}
