// Package subset applies enumerated offsets to a caller's slice. It is the
// bridge between the index enumeration in the combination package and the
// collection being subsetted: the enumerator produces offsets, this package
// turns them into elements.
package subset

import (
	"iter"

	"github.com/misanthropique/combination"
)

// Pick returns the elements of collection at the given offsets, in offset
// order, as a new slice. Offsets must be valid indexes into collection;
// they are used verbatim, exactly as a caller indexing by hand would.
func Pick[T any](collection []T, offsets []int) []T {
	picked := make([]T, len(offsets))
	for i, offset := range offsets {
		picked[i] = collection[offset]
	}
	return picked
}

// All returns an iterator over every size-element subset of collection, in
// lexicographic order of the underlying offsets. Each yielded slice is
// freshly allocated and safe to keep.
//
// The boundary behavior follows the combination package: size = 0, an empty
// collection, or size greater than len(collection) all yield nothing.
func All[T any](collection []T, size int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for offsets := range combination.New(len(collection), size).All() {
			if !yield(Pick(collection, offsets)) {
				return
			}
		}
	}
}
