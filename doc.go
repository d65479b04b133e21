/*
SweepAOI is an area-of-interest engine for game servers. It tracks up to 65536
entities on a 2D integer plane and answers the question every game server
asks each tick: who just came near me, and who just left?

Entities live in a fixed-capacity pool and are addressed by EntityID. An id is
only valid while its entity is alive; after Leave, all calls with the old id
become silent no-ops, so callers holding stale ids can never corrupt or read
another entity's state.

Positions are indexed on two sorted chains, one per axis. Teleports (Locate)
and tick-driven movement (Move + Update) keep the chains sorted by re-linking
only the moved entity, so the common small-step case costs almost nothing.

Proximity is scanned on demand with Trigger, which walks the X chain outward
from the entity until candidates are provably out of range. Two radii give
hysteresis: an entity becomes a neighbor when it comes within enterRadius, and
stops being one only when it moves beyond leaveRadius, so entities oscillating
near a single boundary do not generate event storms. Trigger reports only the
transitions (enter and leave events) since the previous scan.

Package sweepaoi

Package sweepaoi re-exports the engine API for developers. Most of the time
developers should use sweepaoi.NewAOIManager and the methods of AOIManager.
A typical game loop looks like below:

	mgr := sweepaoi.NewAOIManager()
	id, err := mgr.Enter(player)
	...
	mgr.SetSpeed(id, 10)
	mgr.Move(id, destX, destY)

	// each tick:
	mgr.Update(id, 1)
	for _, ev := range mgr.Trigger(id, enterRadius, leaveRadius) {
		// ev.Kind is EventEnter or EventLeave, ev.ID is the other entity
	}

See examples/aoi_demo for a complete runnable program.
*/
package sweepaoi
