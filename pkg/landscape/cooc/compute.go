// Package cooc computes dense pairwise co-occurrence counts between the
// class identifiers of a categorical grid. For every non-padding anchor
// cell and every configured neighborhood offset whose displaced cell is
// in bounds and non-padding, the count for that pair of identifiers is
// incremented by one. Counts are stored in a flat vector: triangular
// layout for unordered pairs, v×v layout for ordered pairs.
package cooc

import (
	"fmt"
	"sync"

	"github.com/kant/landscapemetrics/pkg/landscape/internalerr"
	"github.com/kant/landscapemetrics/pkg/landscape/neighborhood"
	"github.com/kant/landscapemetrics/pkg/landscape/raster"
)

// Options configures one co-occurrence computation.
type Options struct {
	// Ordered selects ordered pair counting. When false, {a,b} and
	// {b,a} share a single triangular slot.
	Ordered bool

	// Workers is the number of goroutines accumulating in parallel.
	// Values below 1 run a single sequential pass.
	Workers int

	// Classes fixes the identifier bound v. When 0, v is discovered
	// as the largest identifier present in the grid. Supplying a
	// bound smaller than an identifier in the grid is an error.
	Classes int
}

// Compute returns the pair count vector for the grid under the given
// neighborhood. The result has length v*(v+1)/2 in unordered mode and
// v*v in ordered mode. All validation happens before any worker is
// started; on error no partial result is returned.
func Compute(g *raster.Grid, dirs neighborhood.Set, opts Options) ([]float64, error) {
	if g == nil {
		return nil, fmt.Errorf("cooc: nil grid: %w", internalerr.ErrInvalidInput)
	}

	v := opts.Classes
	maxClass := g.MaxClass()
	if v == 0 {
		v = maxClass
	} else if maxClass > v {
		return nil, fmt.Errorf("cooc: class %d exceeds declared bound %d: %w",
			maxClass, v, internalerr.ErrInvalidInput)
	}

	length := TriangularLen(v)
	if opts.Ordered {
		length = OrderedLen(v)
	}
	result := make([]float64, length)

	rows := g.Rows()
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > rows {
		workers = rows
	}

	if workers <= 1 {
		accumulateRows(result, g, dirs, v, opts.Ordered, 0, rows)
		return result, nil
	}

	// Each worker owns a private vector for a contiguous row block;
	// the blocks are disjoint, so no synchronization is needed until
	// the merge.
	partials := make([][]float64, workers)
	var wg sync.WaitGroup
	base, rem := rows/workers, rows%workers
	lo := 0
	for w := 0; w < workers; w++ {
		hi := lo + base
		if w < rem {
			hi++
		}
		wg.Add(1)
		go func(idx, lo, hi int) {
			defer wg.Done()
			part := make([]float64, length)
			accumulateRows(part, g, dirs, v, opts.Ordered, lo, hi)
			partials[idx] = part
		}(w, lo, hi)
		lo = hi
	}
	wg.Wait()

	for _, part := range partials {
		for i, n := range part {
			result[i] += n
		}
	}

	return result, nil
}
