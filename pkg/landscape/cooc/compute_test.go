package cooc

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/kant/landscapemetrics/pkg/landscape/internalerr"
	"github.com/kant/landscapemetrics/pkg/landscape/neighborhood"
	"github.com/kant/landscapemetrics/pkg/landscape/raster"
)

func mustGrid(t *testing.T, cells [][]int) *raster.Grid {
	t.Helper()
	g, err := raster.New(cells)
	if err != nil {
		t.Fatalf("Grid construction failed: %v", err)
	}
	return g
}

func randomGrid(t *testing.T, rows, cols, classes int, seed int64) *raster.Grid {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	cells := make([][]int, rows)
	for r := range cells {
		cells[r] = make([]int, cols)
		for c := range cells[r] {
			// Roughly one cell in five is padding.
			cells[r][c] = rng.Intn(classes + 1)
		}
	}
	return mustGrid(t, cells)
}

func TestComputeUnorderedExample(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 2, 1}})
	dirs := neighborhood.Set{{DR: 0, DC: 1}}

	vec, err := Compute(g, dirs, Options{})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	if len(vec) != TriangularLen(2) {
		t.Fatalf("Expected vector length %d, got %d", TriangularLen(2), len(vec))
	}

	// Anchors at col 0 and col 1 both hit the pair {1,2}; col 2's
	// offset leaves the grid.
	if got := vec[TriangularIndex(1, 2, 2)]; got != 2 {
		t.Errorf("Count for {1,2} should be 2, got %v", got)
	}
	if got := vec[TriangularIndex(1, 1, 2)]; got != 0 {
		t.Errorf("Count for {1,1} should be 0, got %v", got)
	}
	if got := vec[TriangularIndex(2, 2, 2)]; got != 0 {
		t.Errorf("Count for {2,2} should be 0, got %v", got)
	}
}

func TestComputeOrderedExample(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 2, 1}})
	dirs := neighborhood.Set{{DR: 0, DC: 1}}

	vec, err := Compute(g, dirs, Options{Ordered: true})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	if len(vec) != OrderedLen(2) {
		t.Fatalf("Expected vector length %d, got %d", OrderedLen(2), len(vec))
	}

	if got := vec[OrderedIndex(1, 2, 2)]; got != 1 {
		t.Errorf("Count for (1,2) should be 1, got %v", got)
	}
	if got := vec[OrderedIndex(2, 1, 2)]; got != 1 {
		t.Errorf("Count for (2,1) should be 1, got %v", got)
	}
	if got := vec[OrderedIndex(1, 1, 2)] + vec[OrderedIndex(2, 2, 2)]; got != 0 {
		t.Errorf("Diagonal counts should be 0, got %v", got)
	}
}

func TestComputeCrossRowDirections(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 2},
		{2, 1},
	})
	dirs := neighborhood.Set{{DR: 1, DC: 0}}

	vec, err := Compute(g, dirs, Options{})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	// (0,0)->(1,0) gives {1,2}; (0,1)->(1,1) gives {2,1}; row 1 is
	// the last row so its anchors fall out of bounds.
	if got := vec[TriangularIndex(1, 2, 2)]; got != 2 {
		t.Errorf("Count for {1,2} should be 2, got %v", got)
	}
}

func TestComputeParallelDeterminism(t *testing.T) {
	g := randomGrid(t, 37, 23, 7, 42)

	for _, ordered := range []bool{false, true} {
		base, err := Compute(g, neighborhood.Queen(), Options{Ordered: ordered, Workers: 1})
		if err != nil {
			t.Fatalf("Sequential compute failed: %v", err)
		}

		for _, workers := range []int{2, 3, 4, 8, 100} {
			got, err := Compute(g, neighborhood.Queen(), Options{Ordered: ordered, Workers: workers})
			if err != nil {
				t.Fatalf("Parallel compute (workers=%d) failed: %v", workers, err)
			}
			if len(got) != len(base) {
				t.Fatalf("workers=%d ordered=%v: length %d, want %d", workers, ordered, len(got), len(base))
			}
			for i := range base {
				if got[i] != base[i] {
					t.Fatalf("workers=%d ordered=%v: vec[%d] = %v, want %v", workers, ordered, i, got[i], base[i])
				}
			}
		}
	}
}

func TestComputeOrderedUnorderedConsistency(t *testing.T) {
	g := randomGrid(t, 19, 17, 5, 7)
	dirs := neighborhood.Set{{DR: 0, DC: 1}, {DR: 1, DC: -1}, {DR: 2, DC: 0}}
	v := 5

	unordered, err := Compute(g, dirs, Options{Classes: v})
	if err != nil {
		t.Fatalf("Unordered compute failed: %v", err)
	}
	ordered, err := Compute(g, dirs, Options{Ordered: true, Classes: v})
	if err != nil {
		t.Fatalf("Ordered compute failed: %v", err)
	}

	// Every anchor event lands in the same slot either way, so the
	// unordered count of {a,b} is the sum of the two ordered counts
	// for a != b, and exactly the ordered diagonal count for a == b.
	for a := 1; a <= v; a++ {
		for b := a; b <= v; b++ {
			want := ordered[OrderedIndex(a, b, v)]
			if a != b {
				want += ordered[OrderedIndex(b, a, v)]
			}
			if got := unordered[TriangularIndex(a, b, v)]; got != want {
				t.Errorf("Pair {%d,%d}: unordered %v, ordered sum %v", a, b, got, want)
			}
		}
	}
}

func TestComputeMirroredDirectionsMatchOrderedSwap(t *testing.T) {
	g := randomGrid(t, 11, 13, 4, 99)
	dirs := neighborhood.Set{{DR: 0, DC: 1}, {DR: 1, DC: 1}}
	v := 4

	fwd, err := Compute(g, dirs, Options{Ordered: true, Classes: v})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	rev, err := Compute(g, dirs.Mirror(), Options{Ordered: true, Classes: v})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	// Anchoring the far endpoint with the negated offset sees the
	// same cell pair with the roles swapped.
	for a := 1; a <= v; a++ {
		for b := 1; b <= v; b++ {
			if fwd[OrderedIndex(a, b, v)] != rev[OrderedIndex(b, a, v)] {
				t.Errorf("Mirrored count mismatch for (%d,%d)", a, b)
			}
		}
	}
}

func TestComputeDuplicateDirectionsDoubleCount(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 2}})
	dirs := neighborhood.Set{{DR: 0, DC: 1}, {DR: 0, DC: 1}}

	vec, err := Compute(g, dirs, Options{})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	// The direction set is taken verbatim; duplicates count twice.
	if got := vec[TriangularIndex(1, 2, 2)]; got != 2 {
		t.Errorf("Duplicate direction should double count, got %v", got)
	}
}

func TestComputePaddingSkipped(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 0, 2}})
	dirs := neighborhood.Set{{DR: 0, DC: 1}}

	vec, err := Compute(g, dirs, Options{})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	for i, n := range vec {
		if n != 0 {
			t.Errorf("vec[%d] = %v, padding cells must contribute nothing", i, n)
		}
	}
}

func TestComputeAllOutOfBounds(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 2}})
	dirs := neighborhood.Set{{DR: 5, DC: 5}, {DR: -9, DC: 0}}

	vec, err := Compute(g, dirs, Options{})
	if err != nil {
		t.Fatalf("Out-of-bounds directions must not fail: %v", err)
	}
	for i, n := range vec {
		if n != 0 {
			t.Errorf("vec[%d] = %v, want 0", i, n)
		}
	}
}

func TestComputeEmptyDirections(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 2}, {2, 1}})

	vec, err := Compute(g, neighborhood.Set{}, Options{})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	for i, n := range vec {
		if n != 0 {
			t.Errorf("vec[%d] = %v, want 0", i, n)
		}
	}
}

func TestComputeEmptyGrid(t *testing.T) {
	g := mustGrid(t, [][]int{})

	vec, err := Compute(g, neighborhood.Rook(), Options{})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if len(vec) != 0 {
		t.Errorf("Empty grid with discovered classes should give empty vector, got length %d", len(vec))
	}

	vec, err = Compute(g, neighborhood.Rook(), Options{Classes: 3})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if len(vec) != TriangularLen(3) {
		t.Errorf("Declared classes should fix the vector length, got %d", len(vec))
	}
}

func TestComputeClassBoundViolation(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 5}})

	_, err := Compute(g, neighborhood.Rook(), Options{Classes: 3})
	if err == nil {
		t.Fatal("Identifier above the declared bound should fail")
	}
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestComputeWorkersNormalized(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 2, 1}})
	dirs := neighborhood.Set{{DR: 0, DC: 1}}

	base, err := Compute(g, dirs, Options{Workers: 1})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	got, err := Compute(g, dirs, Options{Workers: -4})
	if err != nil {
		t.Fatalf("Non-positive worker count should be normalized, not fail: %v", err)
	}
	for i := range base {
		if got[i] != base[i] {
			t.Fatalf("vec[%d] = %v, want %v", i, got[i], base[i])
		}
	}
}

func TestComputeNilGrid(t *testing.T) {
	_, err := Compute(nil, neighborhood.Rook(), Options{})
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for nil grid, got %v", err)
	}
}
