// Package landscape computes co-occurrence statistics over categorical
// grids: land-cover rasters, token matrices, or any rectangular layout
// of 1-based class identifiers with 0 as padding.
package landscape

import (
	"github.com/kant/landscapemetrics/pkg/landscape/cooc"
	"github.com/kant/landscapemetrics/pkg/landscape/neighborhood"
	"github.com/kant/landscapemetrics/pkg/landscape/raster"
)

// CooccurrenceVector counts, for every pair of class identifiers, how
// often the pair occurs at a cell and a direction-displaced cell of the
// grid. Directions is a K×2 matrix of (Δrow, Δcol) offsets applied to
// every cell; offsets that leave the grid are skipped. With ordered
// false the result uses triangular storage of length v*(v+1)/2, keyed
// by cooc.TriangularIndex; with ordered true it has length v*v, keyed
// by cooc.OrderedIndex. Workers bounds the goroutines used; values
// below 1 mean a single sequential pass.
func CooccurrenceVector(cells [][]int, directions [][]int, ordered bool, workers int) ([]float64, error) {
	g, err := raster.New(cells)
	if err != nil {
		return nil, err
	}

	set, err := neighborhood.FromPairs(directions)
	if err != nil {
		return nil, err
	}

	return cooc.Compute(g, set, cooc.Options{
		Ordered: ordered,
		Workers: workers,
	})
}
