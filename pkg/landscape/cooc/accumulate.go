package cooc

import (
	"github.com/kant/landscapemetrics/pkg/landscape/neighborhood"
	"github.com/kant/landscapemetrics/pkg/landscape/raster"
)

// accumulateRows counts pair occurrences for anchor rows [lo, hi) into
// dst. Every non-padding cell in the range acts as an anchor; each
// in-bounds offset whose displaced cell is also non-padding contributes
// one increment. Displaced cells may lie outside [lo, hi): the grid is
// read-only, so rows owned by other workers are safe to read.
func accumulateRows(dst []float64, g *raster.Grid, dirs neighborhood.Set, v int, ordered bool, lo, hi int) {
	rows, cols := g.Rows(), g.Cols()

	for r := lo; r < hi; r++ {
		row := g.Row(r)
		for c := 0; c < cols; c++ {
			a := row[c]
			if a == 0 {
				continue
			}
			for _, o := range dirs {
				if !o.Within(r, c, rows, cols) {
					continue
				}
				rr, cc := o.Target(r, c)
				b := g.At(rr, cc)
				if b == 0 {
					continue
				}
				if ordered {
					dst[OrderedIndex(a, b, v)]++
				} else {
					dst[TriangularIndex(a, b, v)]++
				}
			}
		}
	}
}
