package cooc

import "sort"

// Pair is one entry of a pair count vector, expanded back into its
// class identifiers.
type Pair struct {
	A     int
	B     int
	Count float64
}

// Top returns the k highest-count pairs of a vector over v classes,
// skipping zero entries. Ties are broken by (A, B) ascending so the
// result is deterministic. k <= 0 returns all non-zero pairs.
func Top(vec []float64, v int, ordered bool, k int) []Pair {
	var pairs []Pair

	if ordered {
		for a := 1; a <= v; a++ {
			for b := 1; b <= v; b++ {
				if n := vec[OrderedIndex(a, b, v)]; n > 0 {
					pairs = append(pairs, Pair{A: a, B: b, Count: n})
				}
			}
		}
	} else {
		for a := 1; a <= v; a++ {
			for b := a; b <= v; b++ {
				if n := vec[TriangularIndex(a, b, v)]; n > 0 {
					pairs = append(pairs, Pair{A: a, B: b, Count: n})
				}
			}
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Count != pairs[j].Count {
			return pairs[i].Count > pairs[j].Count
		}
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})

	if k > 0 && len(pairs) > k {
		pairs = pairs[:k]
	}
	return pairs
}
