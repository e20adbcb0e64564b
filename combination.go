// Package combination enumerates the k-element subsets of the index range
// [0, n). Each subset is produced as a strictly increasing sequence of
// offsets; callers use the offsets to select elements out of their own
// collection, so the enumerator never touches caller data.
//
// The enumeration is lazy. An Enumerator holds only the (n, k) pair and
// hands out forward-only Cursors:
//
//	enum := combination.New(5, 2)
//	for cur, end := enum.Start(), enum.End(); !cur.Equal(end); cur.Next() {
//		fmt.Println(cur.Indices())
//	}
//
// or, equivalently, with the range adapter:
//
//	for offsets := range combination.New(5, 2).All() {
//		fmt.Println(offsets)
//	}
//
// Subsets appear in lexicographic order of their index sequences, starting
// at [0, 1, ..., k-1]. Memory is O(k) per cursor and each advance is O(k)
// worst case.
package combination

import "iter"

// Enumerator describes one enumeration: choose subsetSize offsets out of
// [0, totalElements). It is a plain value, cheap to copy, and every (n, k)
// pair is valid; pairs that admit no subsets simply enumerate nothing.
type Enumerator struct {
	totalElements int
	subsetSize    int
}

// New returns an Enumerator over the k-element subsets of [0, n).
// Negative arguments are treated as zero. The zero value of Enumerator
// is equivalent to New(0, 0).
func New(totalElements, subsetSize int) Enumerator {
	return Enumerator{
		totalElements: max(totalElements, 0),
		subsetSize:    max(subsetSize, 0),
	}
}

// TotalElements returns n, the size of the index range being chosen from.
func (e Enumerator) TotalElements() int {
	return e.totalElements
}

// SubsetSize returns k, the number of offsets per subset.
func (e Enumerator) SubsetSize() int {
	return e.subsetSize
}

// empty reports whether the enumeration has no subsets at all. Choosing
// zero elements is deliberately an empty enumeration here, not a single
// empty subset; that matches the documented contract of this package.
func (e Enumerator) empty() bool {
	return e.subsetSize == 0 || e.totalElements == 0 || e.subsetSize > e.totalElements
}

// Start returns a cursor positioned at the first subset, [0, 1, ..., k-1].
// If the enumeration is empty (k > n, n = 0, or k = 0) the returned cursor
// already equals End.
func (e Enumerator) Start() Cursor {
	return newCursor(false, e.totalElements, e.subsetSize)
}

// End returns the sentinel cursor, encoded as [n-k, n-k+1, ..., n-1].
// It marks the stopping point of the enumeration and is only ever used as
// a comparison target.
func (e Enumerator) End() Cursor {
	return newCursor(true, e.totalElements, e.subsetSize)
}

// All returns an iterator over every subset in the enumeration, in the same
// lexicographic order the cursor pair produces. Each yielded slice is a
// fresh copy the caller may keep.
func (e Enumerator) All() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if e.empty() {
			return
		}
		cur, end := e.Start(), e.End()
		for {
			offsets := make([]int, len(cur.indices))
			copy(offsets, cur.indices)
			if !yield(offsets) {
				return
			}
			if cur.Equal(end) {
				return
			}
			cur.Next()
		}
	}
}

// Count returns the number of subsets All yields: zero when the enumeration
// is empty, and the binomial coefficient C(n, k) otherwise. The arithmetic
// is fixed-width uint64, which is exact for every count that fits; the
// result wraps for the astronomically large (n, k) pairs beyond that.
func (e Enumerator) Count() uint64 {
	if e.empty() {
		return 0
	}
	n := uint64(e.totalElements)
	k := uint64(e.subsetSize)
	if k > n-k {
		k = n - k
	}
	var count uint64 = 1
	for i := uint64(1); i <= k; i++ {
		// Multiply before dividing; count*(n-k+i) is always divisible by i
		// because the running product is itself a binomial coefficient.
		count = count * (n - k + i) / i
	}
	return count
}
