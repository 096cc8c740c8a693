package arr

// Span is a half-open index range [Start, End) into the first sequence passed
// to [Overlap].
type Span struct {
	Start int
	End   int
}

// Len returns the number of matched elements.
func (s Span) Len() int { return s.End - s.Start }

// Overlap finds where b lines up with a suffix of a, the way two adjacent
// chunks of a split sequence overlap:
//
//	a := []int{0, 1, 2, 3, 5, 6}
//	b := []int{3, 5, 6, 7, 8, 9}
//	arr.Overlap(a, b) // → Span{Start: 3, End: 6}, true
//
// Candidate offsets in a are tried from the last index down to 0. At an
// offset o where a[o] == b[0] the run is extended element by element; it is
// accepted as soon as either a or b runs out, and rejected on the first
// mismatch. The first accepted run wins, so among several valid offsets the
// rightmost one is returned.
//
// Returns false when no offset is accepted, or when either slice is empty.
func Overlap[T comparable](a, b []T) (Span, bool) {
	return OverlapFunc(a, b, func(x, y T) bool { return x == y })
}

// OverlapFunc is [Overlap] with a caller-supplied equality function, for
// element types that are not comparable.
func OverlapFunc[T any](a, b []T, eq func(x, y T) bool) (Span, bool) {
	if len(b) == 0 {
		return Span{}, false
	}
	for o := len(a) - 1; o >= 0; o-- {
		if !eq(a[o], b[0]) {
			continue
		}
		k := 1
		for o+k < len(a) && k < len(b) && eq(a[o+k], b[k]) {
			k++
		}
		if o+k == len(a) || k == len(b) {
			return Span{Start: o, End: o + k}, true
		}
	}
	return Span{}, false
}
