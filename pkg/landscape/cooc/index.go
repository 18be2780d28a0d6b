package cooc

// TriangularLen returns the length of an unordered pair count vector
// over v classes: one entry per unordered pair {a,b} with a <= b.
func TriangularLen(v int) int { return v * (v + 1) / 2 }

// OrderedLen returns the length of an ordered pair count vector over
// v classes: one entry per ordered pair (a,b).
func OrderedLen(v int) int { return v * v }

// TriangularIndex maps an unordered pair of 1-based class identifiers
// to its slot in triangular storage. The layout is row-major over the
// upper triangle: for the smaller identifier r (0-based) the slot is
// r*v - r*(r-1)/2 + (c - r). Swapping a and b yields the same index.
func TriangularIndex(a, b, v int) int {
	if a > b {
		a, b = b, a
	}
	r, c := a-1, b-1
	return r*v - r*(r-1)/2 + (c - r)
}

// OrderedIndex maps an ordered pair of 1-based class identifiers to
// its slot in a dense v×v layout. (a,b) and (b,a) map to distinct
// slots when a != b.
func OrderedIndex(a, b, v int) int {
	return (a-1)*v + (b - 1)
}
