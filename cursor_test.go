package combination

import (
	"slices"
	"testing"
)

func TestNextSingleStep(t *testing.T) {
	tests := []struct {
		name string
		n, k int
		from []int
		want []int
	}{
		{"bump last position", 5, 2, []int{0, 1}, []int{0, 2}},
		{"carry into previous position", 5, 2, []int{0, 4}, []int{1, 2}},
		{"carry across several positions", 7, 4, []int{0, 4, 5, 6}, []int{1, 2, 3, 4}},
		{"resequence tail", 7, 4, []int{0, 1, 5, 6}, []int{0, 2, 3, 4}},
		{"reach final subset", 5, 2, []int{2, 4}, []int{3, 4}},
		{"single element", 3, 1, []int{1}, []int{2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cur := cursorAt(t, tc.n, tc.k, tc.from)
			cur.Next()
			if got := cur.Indices(); !slices.Equal(got, tc.want) {
				t.Errorf("Next() from %v = %v, want %v", tc.from, got, tc.want)
			}
		})
	}
}

// cursorAt walks a cursor from Start to the requested subset so the tests
// never have to reach into unexported state.
func cursorAt(t *testing.T, n, k int, indices []int) Cursor {
	t.Helper()
	enum := New(n, k)
	cur, end := enum.Start(), enum.End()
	for !slices.Equal(cur.Indices(), indices) {
		if cur.Equal(end) {
			t.Fatalf("subset %v not reachable in a %d-choose-%d enumeration", indices, n, k)
		}
		cur.Next()
	}
	return cur
}

func TestNextIdempotentAtEnd(t *testing.T) {
	enum := New(5, 2)
	cur, end := enum.Start(), enum.End()
	for !cur.Equal(end) {
		cur.Next()
	}

	for i := 0; i < 3; i++ {
		cur.Next()
		if !cur.Equal(end) {
			t.Fatalf("advance %d past End() moved the cursor to %v", i+1, cur.Indices())
		}
	}
}

func TestNextOnEmptyEnumeration(t *testing.T) {
	for _, enum := range []Enumerator{New(0, 0), New(3, 7), New(7, 0)} {
		cur := enum.Start()
		cur.Next()
		if !cur.Equal(enum.End()) {
			t.Errorf("New(%d, %d): Next() on empty enumeration should stay at End()",
				enum.TotalElements(), enum.SubsetSize())
		}
	}
}

func TestEqualRequiresMatchingParameters(t *testing.T) {
	// Same first-subset indices, different universes.
	a := New(5, 2).Start()
	b := New(6, 2).Start()
	if a.Equal(b) {
		t.Error("cursors over different universes should not compare equal")
	}

	c := New(5, 2).Start()
	d := New(5, 2).Start()
	if !c.Equal(d) {
		t.Error("identical cursors should compare equal")
	}
}

func TestCloneIndependence(t *testing.T) {
	cur := New(5, 2).Start()
	dup := cur.Clone()

	dup.Next()
	if got := cur.Indices(); !slices.Equal(got, []int{0, 1}) {
		t.Errorf("advancing a clone changed the original to %v", got)
	}
	if got := dup.Indices(); !slices.Equal(got, []int{0, 2}) {
		t.Errorf("clone = %v after Next(), want [0 2]", got)
	}
	if cur.Equal(dup) {
		t.Error("original and advanced clone should differ")
	}
}

func TestCloneOfSentinel(t *testing.T) {
	end := New(5, 2).End()
	dup := end.Clone()

	if !dup.Equal(end) {
		t.Error("clone of End() should equal End()")
	}
	dup.Next()
	if !dup.Equal(end) {
		t.Error("advancing a clone of End() should be a no-op")
	}
}

func TestDegenerateCursorsCarryNoIndices(t *testing.T) {
	for _, enum := range []Enumerator{New(3, 7), New(0, 4), New(4, 0)} {
		if got := enum.Start().Indices(); len(got) != 0 {
			t.Errorf("New(%d, %d).Start().Indices() = %v, want empty",
				enum.TotalElements(), enum.SubsetSize(), got)
		}
		if got := enum.End().Indices(); len(got) != 0 {
			t.Errorf("New(%d, %d).End().Indices() = %v, want empty",
				enum.TotalElements(), enum.SubsetSize(), got)
		}
	}
}

func TestFullUniverseSubset(t *testing.T) {
	// Choosing every element admits exactly one subset, whose encoding is
	// also the sentinel, so the cursor pair compares equal immediately.
	enum := New(4, 4)
	cur, end := enum.Start(), enum.End()

	if !cur.Equal(end) {
		t.Error("New(4, 4): Start() should equal End()")
	}
	if got := cur.Indices(); !slices.Equal(got, []int{0, 1, 2, 3}) {
		t.Errorf("New(4, 4).Start().Indices() = %v, want [0 1 2 3]", got)
	}
	if got := enum.Count(); got != 1 {
		t.Errorf("New(4, 4).Count() = %d, want 1", got)
	}
}
