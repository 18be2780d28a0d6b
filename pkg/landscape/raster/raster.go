package raster

import (
	"fmt"

	"github.com/kant/landscapemetrics/pkg/landscape/internalerr"
)

// Grid is a rectangular matrix of non-negative class identifiers.
// A value of 0 marks a cell with no class (padding); positive values
// are 1-based class identifiers. A Grid is read-only after construction.
type Grid struct {
	rows  int
	cols  int
	cells [][]int
}

// New builds a Grid from row slices. Every row must have the same
// length and every value must be non-negative. The input is copied.
func New(cells [][]int) (*Grid, error) {
	g := &Grid{rows: len(cells)}
	if g.rows == 0 {
		return g, nil
	}

	g.cols = len(cells[0])
	g.cells = make([][]int, g.rows)
	for r, row := range cells {
		if len(row) != g.cols {
			return nil, fmt.Errorf("raster: row %d has %d columns, want %d: %w",
				r, len(row), g.cols, internalerr.ErrInvalidInput)
		}
		dst := make([]int, g.cols)
		for c, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("raster: negative class %d at (%d,%d): %w",
					v, r, c, internalerr.ErrInvalidInput)
			}
			dst[c] = v
		}
		g.cells[r] = dst
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// At returns the class identifier stored at (r, c).
func (g *Grid) At(r, c int) int { return g.cells[r][c] }

// Row returns one row of the grid. Callers must not modify it.
func (g *Grid) Row(r int) []int { return g.cells[r] }

// MaxClass returns the largest class identifier present in the grid,
// or 0 when the grid is empty or holds only padding cells.
func (g *Grid) MaxClass() int {
	max := 0
	for _, row := range g.cells {
		for _, v := range row {
			if v > max {
				max = v
			}
		}
	}
	return max
}
