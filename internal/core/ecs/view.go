package ecs

import (
	"fmt"
	"reflect"
)

//go:generate go run ../../../cmd/viewgen -out view_generated.go -max 5

// Views borrow the World's pools and hold no snapshot: iteration always sees
// the live pool contents. A multi-type view drives its loop from the
// smallest pool and probes the others, so a pass costs O(driver * (N-1)).
//
// Inside a ForEach callback the passed pointers may be written freely. The
// callback must not add or remove components of the view's own types; use
// World.MarkForDestruction and flush after the loop instead. Doing so anyway
// can skip or repeat entities but will not crash.

// smallest returns the index with the fewest owners, first one wins ties.
func smallest(sets ...*sparseIndex) *sparseIndex {
	best := sets[0]
	for _, s := range sets[1:] {
		if len(s.entities) < len(best.entities) {
			best = s
		}
	}
	return best
}

// checkDistinct panics with ErrDuplicateViewType if a type repeats.
func checkDistinct(types ...reflect.Type) {
	for i := 0; i < len(types); i++ {
		for j := i + 1; j < len(types); j++ {
			if types[i] == types[j] {
				panic(fmt.Errorf("%w: %s", ErrDuplicateViewType, types[i]))
			}
		}
	}
}
