package aoi

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/bmizerany/assert"
)

func TestNeighborListInsert(t *testing.T) {
	nl := neighborList{}
	nl.insert(3)
	nl.insert(1)
	nl.insert(2)
	nl.insert(3) // duplicate
	assert.Equal(t, neighborList{1, 2, 3}, nl)

	assert.T(t, nl.contains(1), "should contain")
	assert.T(t, nl.contains(3), "should contain")
	assert.T(t, !nl.contains(4), "should not contain")
}

func TestNeighborListRandom(t *testing.T) {
	for i := 0; i < 1000; i++ {
		nl := neighborList{}
		seen := map[EntityID]struct{}{}
		N := rand.Intn(200)
		for j := 0; j < N; j++ {
			id := EntityID(rand.Intn(100))
			nl.insert(id)
			seen[id] = struct{}{}
		}
		if len(nl) != len(seen) {
			t.Errorf("list has %d ids, want %d", len(nl), len(seen))
		}
		if !sort.SliceIsSorted(nl, func(a, b int) bool { return nl[a] < nl[b] }) {
			t.Errorf("list is not sorted: %v", nl)
		}
		for id := range seen {
			if !nl.contains(id) {
				t.Errorf("list should contain %d", id)
			}
		}
	}
}
