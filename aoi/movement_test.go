package aoi

import (
	"testing"

	"github.com/bmizerany/assert"
)

func TestMoveReachesDestination(t *testing.T) {
	mgr := NewAOIManager()
	id, _ := mgr.Enter(nil)
	mgr.SetSpeed(id, 7)
	mgr.Move(id, 100, 0)
	assert.T(t, mgr.IsMoving(id), "should be moving")

	steps := 0
	for mgr.IsMoving(id) {
		mgr.Update(id, 1)
		steps++
		if steps > 1000 {
			t.Fatalf("move never completed")
		}
	}
	assert.Equal(t, 100/7, steps)

	// position snaps to the destination exactly
	x, y, _ := mgr.Position(id)
	assert.Equal(t, int32(100), x)
	assert.Equal(t, int32(0), y)
}

func TestMoveNoops(t *testing.T) {
	mgr := NewAOIManager()
	id, _ := mgr.Enter(nil)

	// zero speed: move request ignored
	mgr.Move(id, 100, 100)
	assert.T(t, !mgr.IsMoving(id), "zero speed should not move")

	// zero-length move: ignored
	mgr.SetSpeed(id, 5)
	mgr.Move(id, 0, 0)
	assert.T(t, !mgr.IsMoving(id), "move to current position should be ignored")

	// a move shorter than one tick of travel never progresses
	mgr.SetSpeed(id, 50)
	mgr.Move(id, 10, 0)
	assert.T(t, !mgr.IsMoving(id), "sub-tick move has zero duration")
	mgr.Update(id, 1)
	x, y, _ := mgr.Position(id)
	assert.Equal(t, int32(0), x)
	assert.Equal(t, int32(0), y)
}

func TestMoveInterpolatedStep(t *testing.T) {
	mgr := NewAOIManager()
	id, _ := mgr.Enter(nil)
	mgr.SetSpeed(id, 5)
	mgr.Move(id, 100, 0)
	mgr.Update(id, 1)

	// straight move along x: linear progress 5 with at most one unit of
	// lateral perturbation, no y drift
	x, y, _ := mgr.Position(id)
	assert.T(t, x >= 4 && x <= 6, "x out of range")
	assert.Equal(t, int32(0), y)
	assert.T(t, mgr.IsMoving(id), "should still be moving")
}

func TestUpdateClampsToDuration(t *testing.T) {
	mgr := NewAOIManager()
	id, _ := mgr.Enter(nil)
	mgr.SetSpeed(id, 7)
	mgr.Move(id, 80, 60) // dist 100, duration 14
	mgr.Update(id, 10000)

	assert.T(t, !mgr.IsMoving(id), "move should be over")
	x, y, _ := mgr.Position(id)
	assert.Equal(t, int32(80), x)
	assert.Equal(t, int32(60), y)
}

func TestLocateCancelsMove(t *testing.T) {
	mgr := NewAOIManager()
	id, _ := mgr.Enter(nil)
	mgr.SetSpeed(id, 5)
	mgr.Move(id, 100, 0)
	mgr.Update(id, 2)

	mgr.Locate(id, 7, 7)
	assert.T(t, !mgr.IsMoving(id), "teleport should cancel the move")
	mgr.Update(id, 5) // must be a no-op now
	x, y, _ := mgr.Position(id)
	assert.Equal(t, int32(7), x)
	assert.Equal(t, int32(7), y)
}

func TestSetSpeedMidMove(t *testing.T) {
	mgr := NewAOIManager()
	id, _ := mgr.Enter(nil)
	mgr.SetSpeed(id, 5)
	mgr.Move(id, 100, 0)
	mgr.Update(id, 2)

	// restart towards the same destination at the new speed
	mgr.SetSpeed(id, 20)
	assert.T(t, mgr.IsMoving(id), "should still be moving")
	for i := 0; i < 100 && mgr.IsMoving(id); i++ {
		mgr.Update(id, 1)
	}
	x, y, _ := mgr.Position(id)
	assert.Equal(t, int32(100), x)
	assert.Equal(t, int32(0), y)
}

func TestSetSpeedZeroStops(t *testing.T) {
	mgr := NewAOIManager()
	id, _ := mgr.Enter(nil)
	mgr.SetSpeed(id, 5)
	mgr.Move(id, 100, 0)
	mgr.Update(id, 2)
	x0, y0, _ := mgr.Position(id)

	mgr.SetSpeed(id, 0)
	assert.T(t, !mgr.IsMoving(id), "zero speed should stop the entity")
	mgr.Update(id, 10)
	x, y, _ := mgr.Position(id)
	assert.Equal(t, x0, x)
	assert.Equal(t, y0, y)
}

// exactly one enter and one leave across a full departure, not one per tick
func TestEnterLeaveOnce(t *testing.T) {
	mgr := NewAOIManager()
	a, _ := mgr.Enter(nil)
	b, _ := mgr.Enter(nil)

	events := mgr.Trigger(a, 100, 130)
	assert.Equal(t, 1, len(events)) // b at distance 0
	assert.Equal(t, Event{ID: b, Kind: EventEnter}, events[0])

	mgr.SetSpeed(b, 10)
	mgr.Move(b, 500, 0)

	enters, leaves := 0, 0
	for mgr.IsMoving(b) {
		mgr.Update(b, 1)
		for _, ev := range mgr.Trigger(a, 100, 130) {
			if ev.Kind == EventEnter {
				enters++
			} else {
				leaves++
			}
		}
	}
	assert.Equal(t, 0, enters)
	assert.Equal(t, 1, leaves)
}
