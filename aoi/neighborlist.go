package aoi

import "sort"

// neighborList is a sorted, duplicate-free list of entity ids.
type neighborList []EntityID

// insert puts id at its sorted position; duplicates are dropped.
func (nl *neighborList) insert(id EntityID) {
	l := *nl
	i := sort.Search(len(l), func(k int) bool { return l[k] >= id })
	if i < len(l) && l[i] == id {
		return
	}
	l = append(l, 0)
	copy(l[i+1:], l[i:])
	l[i] = id
	*nl = l
}

func (nl neighborList) contains(id EntityID) bool {
	i := sort.Search(len(nl), func(k int) bool { return nl[k] >= id })
	return i < len(nl) && nl[i] == id
}
