// Package life implements Conway's Game of Life on a toroidal grid.
package life

import (
	"fmt"

	"github.com/vovakirdan/tui-sims/internal/core"
)

// Grid is an immutable-by-convention rows x cols board. Indices wrap on
// both axes, so the top row neighbours the bottom row and the left column
// neighbours the right one.
type Grid struct {
	rows, cols int
	cells      []bool
}

// NewGrid returns an all-dead grid. It panics on non-positive dimensions.
func NewGrid(rows, cols int) Grid {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("life: invalid grid size %dx%d", rows, cols))
	}
	return Grid{rows: rows, cols: cols, cells: make([]bool, rows*cols)}
}

// Seed returns a grid where each cell is independently alive with
// probability density.
func Seed(rows, cols int, density float64, rng core.Source) Grid {
	g := NewGrid(rows, cols)
	for i := range g.cells {
		g.cells[i] = rng.Float64() < density
	}
	return g
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g Grid) Cols() int { return g.cols }

func (g Grid) index(r, c int) int {
	return core.Wrap(r, g.rows)*g.cols + core.Wrap(c, g.cols)
}

// At reports whether the cell at (r, c) is alive. Coordinates wrap.
func (g Grid) At(r, c int) bool {
	return g.cells[g.index(r, c)]
}

// Set changes a cell in place. Use it only while building a grid.
func (g Grid) Set(r, c int, alive bool) {
	g.cells[g.index(r, c)] = alive
}

// LiveNeighbors counts the live cells among the eight wrapped neighbours
// of (r, c). The cell itself is never counted.
func (g Grid) LiveNeighbors(r, c int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.At(r+dr, c+dc) {
				n++
			}
		}
	}
	return n
}

// Next computes the following generation into a fresh grid.
// Live cells survive with 2 or 3 neighbours; dead cells are born with exactly 3.
func (g Grid) Next() Grid {
	next := NewGrid(g.rows, g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			n := g.LiveNeighbors(r, c)
			alive := g.cells[r*g.cols+c]
			next.cells[r*g.cols+c] = n == 3 || (alive && n == 2)
		}
	}
	return next
}

// LiveCount returns the number of live cells.
func (g Grid) LiveCount() int {
	n := 0
	for _, alive := range g.cells {
		if alive {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same size and cells.
func (g Grid) Equal(o Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	c := Grid{rows: g.rows, cols: g.cols, cells: make([]bool, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}
