package combination

import "slices"

// Cursor is a position within the lexicographic ordering of the subsets.
// It carries its own copies of n and k so that advancing and comparing
// never consult the Enumerator that produced it.
//
// A Cursor is advanced in place with Next and compared with Equal; the
// usual loop runs from Start until the cursor equals End. Assigning a
// Cursor shares the underlying index buffer; use Clone for an independent
// copy.
type Cursor struct {
	totalElements int
	subsetSize    int
	indices       []int
}

// newCursor builds either the first-subset form ([0, 1, ..., k-1]) or the
// end-sentinel form ([n-k, n-k+1, ..., n-1]). When the enumeration is
// empty (k > n, n = 0, or k = 0) both forms carry an empty index sequence
// so they compare equal immediately; in particular the n-k anchor is never
// computed when k > n.
func newCursor(end bool, totalElements, subsetSize int) Cursor {
	c := Cursor{
		totalElements: totalElements,
		subsetSize:    subsetSize,
	}
	if subsetSize == 0 || totalElements == 0 || subsetSize > totalElements {
		return c
	}
	offset := 0
	if end {
		offset = totalElements - subsetSize
	}
	c.indices = make([]int, subsetSize)
	for i := range c.indices {
		c.indices[i] = offset + i
	}
	return c
}

// Next advances the cursor in place to the lexicographically next subset.
//
// The highest value position i may hold is n-(k-i): position k-1 may reach
// n-1, position k-2 may reach n-2, and so on. Scanning from the right,
// the first position still below its ceiling is incremented and every
// position after it is resequenced to consecutive values, which restores
// the strictly increasing invariant with the smallest possible tail.
//
// Once every position sits at its ceiling the cursor has reached the end
// sentinel encoding and Next leaves it unchanged, so advancing past the
// boundary is a harmless no-op.
func (c *Cursor) Next() {
	i := c.subsetSize - 1
	for i >= 0 && c.indices[i] >= c.totalElements-(c.subsetSize-i) {
		i--
	}
	if i < 0 {
		return
	}
	c.indices[i]++
	for j := i + 1; j < c.subsetSize; j++ {
		c.indices[j] = c.indices[j-1] + 1
	}
}

// Equal reports whether both cursors have the same n, the same k, and the
// same index sequence.
func (c Cursor) Equal(other Cursor) bool {
	return c.totalElements == other.totalElements &&
		c.subsetSize == other.subsetSize &&
		slices.Equal(c.indices, other.indices)
}

// Indices returns the current subset as a read-only view. The slice is the
// cursor's own state: callers must not modify it, and must copy it before
// storing it anywhere that outlives the next call to Next.
func (c Cursor) Indices() []int {
	return c.indices
}

// Clone returns a deep copy of the cursor. Advancing the clone does not
// affect the original.
func (c Cursor) Clone() Cursor {
	return Cursor{
		totalElements: c.totalElements,
		subsetSize:    c.subsetSize,
		indices:       slices.Clone(c.indices),
	}
}
