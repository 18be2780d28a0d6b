// Package neighborhood defines the relative cell offsets used to pair
// an anchor cell with its co-occurring neighbors.
package neighborhood

import (
	"fmt"

	"github.com/kant/landscapemetrics/pkg/landscape/internalerr"
)

// Offset is a relative (Δrow, Δcol) displacement from an anchor cell.
type Offset struct {
	DR int
	DC int
}

// Set is an ordered list of offsets. Order is preserved exactly as
// supplied, and duplicate offsets are kept: each occurrence contributes
// its own counts.
type Set []Offset

// Rook returns 4-neighbour connectivity: N, E, S, W.
func Rook() Set {
	return Set{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
}

// Queen returns 8-neighbour connectivity: the rook offsets plus diagonals.
func Queen() Set {
	return Set{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
}

// Forward returns the one-sided scan offsets E and S, which visit every
// orthogonally adjacent cell pair exactly once.
func Forward() Set {
	return Set{{0, 1}, {1, 0}}
}

// FromPairs builds a Set from a K×2 matrix of (Δrow, Δcol) rows.
// Rows that do not have exactly two entries are an error.
func FromPairs(pairs [][]int) (Set, error) {
	set := make(Set, 0, len(pairs))
	for i, p := range pairs {
		if len(p) != 2 {
			return nil, fmt.Errorf("neighborhood: direction %d has %d entries, want 2: %w",
				i, len(p), internalerr.ErrInvalidInput)
		}
		set = append(set, Offset{DR: p[0], DC: p[1]})
	}
	return set, nil
}

// Target returns the cell displaced from (r, c) by the offset.
func (o Offset) Target(r, c int) (int, int) {
	return r + o.DR, c + o.DC
}

// Within reports whether the displaced cell for anchor (r, c) lies
// inside a rows×cols grid. Offsets that leave the grid are skipped by
// callers rather than treated as errors.
func (o Offset) Within(r, c, rows, cols int) bool {
	rr, cc := r+o.DR, c+o.DC
	return rr >= 0 && rr < rows && cc >= 0 && cc < cols
}

// Mirror returns the set with every offset negated, preserving order.
func (s Set) Mirror() Set {
	out := make(Set, len(s))
	for i, o := range s {
		out[i] = Offset{DR: -o.DR, DC: -o.DC}
	}
	return out
}
