package aoi

import "math"

// Locate teleports the entity to (x, y) immediately and cancels any
// in-flight move. No-op on a stale id.
func (mgr *AOIManager) Locate(id EntityID, x, y int32) {
	e := mgr.pool.get(id)
	if e == nil {
		return
	}
	e.remain = 0
	e.elapsed = 0
	old := e.pos
	e.pos[0], e.pos[1] = x, y
	mgr.reposition(e, old)
}

// Move starts a tick-interpolated move towards (x, y) at the entity's
// current speed. No-op on a stale id, zero speed or a zero-length move.
func (mgr *AOIManager) Move(id EntityID, x, y int32) {
	e := mgr.pool.get(id)
	if e == nil {
		return
	}
	mgr.startMove(e, x, y)
}

func (mgr *AOIManager) startMove(e *aoiEntity, x, y int32) {
	if e.speed <= 0 || (x == e.pos[0] && y == e.pos[1]) {
		return
	}
	dx := float64(x - e.pos[0])
	dy := float64(y - e.pos[1])
	dist := math.Sqrt(dx*dx + dy*dy)
	e.start = e.pos
	e.dest[0], e.dest[1] = x, y
	e.dir[0] = dx / dist
	e.dir[1] = dy / dist
	e.rate = math.Pi * float64(e.speed) / dist
	e.remain = int32(dist) / e.speed // moves shorter than one tick never progress
	e.elapsed = 0
}

// SetSpeed changes the entity's speed. A move in progress restarts towards
// the same destination from the current position; setting speed to zero
// stops the entity where it is.
func (mgr *AOIManager) SetSpeed(id EntityID, speed int32) {
	e := mgr.pool.get(id)
	if e == nil {
		return
	}
	e.speed = speed
	if e.remain > 0 {
		e.remain = 0
		e.elapsed = 0
		if speed > 0 {
			mgr.startMove(e, e.dest[0], e.dest[1])
		}
	}
}

// Update advances the entity's move by the elapsed ticks, clamped to the
// remaining duration. The interpolated path combines linear progress along
// the direction vector with a sin^2 lateral perturbation, then the position
// index is re-sorted from the true coordinate delta.
func (mgr *AOIManager) Update(id EntityID, ticks int32) {
	e := mgr.pool.get(id)
	if e == nil || e.speed <= 0 || e.remain <= 0 || ticks <= 0 {
		return
	}
	if ticks > e.remain {
		ticks = e.remain
	}
	e.remain -= ticks
	e.elapsed += ticks
	old := e.pos
	if e.remain <= 0 {
		// move ended, snap to the destination exactly
		e.pos = e.dest
	} else {
		s := math.Sin(e.rate * float64(e.elapsed))
		s *= s
		for i := 0; i < 2; i++ {
			lateral := float64(i*2-1) * e.dir[i] * s
			e.pos[i] = int32(float64(e.start[i]) + e.dir[i]*float64(e.speed)*float64(e.elapsed) + lateral)
		}
	}
	mgr.reposition(e, old)
}

// IsMoving reports whether the entity has move ticks remaining. False on a
// stale id.
func (mgr *AOIManager) IsMoving(id EntityID) bool {
	e := mgr.pool.get(id)
	return e != nil && e.remain > 0
}

// Position returns the entity's current position. ok is false on a stale id.
func (mgr *AOIManager) Position(id EntityID) (x, y int32, ok bool) {
	e := mgr.pool.get(id)
	if e == nil {
		return 0, 0, false
	}
	return e.pos[0], e.pos[1], true
}

func (mgr *AOIManager) reposition(e *aoiEntity, old [2]int32) {
	ei := slotIndex(e.id)
	for axis := 0; axis < 2; axis++ {
		if e.pos[axis] != old[axis] {
			mgr.lists[axis].shift(ei, old[axis])
		}
	}
}
