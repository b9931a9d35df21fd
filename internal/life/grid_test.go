package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-sims/internal/core"
)

// fixedSource returns the same float on every draw.
type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }
func (f fixedSource) IntN(int) int     { return 0 }

func gridOf(rows, cols int, live ...[2]int) Grid {
	g := NewGrid(rows, cols)
	for _, p := range live {
		g.Set(p[0], p[1], true)
	}
	return g
}

func TestNewGridPanicsOnBadSize(t *testing.T) {
	assert.Panics(t, func() { NewGrid(0, 5) })
	assert.Panics(t, func() { NewGrid(5, -1) })
	assert.NotPanics(t, func() { NewGrid(1, 1) })
}

func TestToroidalNeighbours(t *testing.T) {
	g := gridOf(3, 3, [2]int{0, 0})

	assert.Equal(t, 1, g.LiveNeighbors(2, 2), "corner should wrap to the opposite corner")
	assert.Equal(t, 1, g.LiveNeighbors(0, 2), "right edge should wrap to column 0")
	assert.Equal(t, 1, g.LiveNeighbors(2, 0), "bottom edge should wrap to row 0")
	assert.Equal(t, 0, g.LiveNeighbors(0, 0), "a cell never counts itself")
}

func TestNeighboursOnLargerGrid(t *testing.T) {
	g := gridOf(30, 60, [2]int{29, 59}, [2]int{0, 1}, [2]int{1, 0})
	assert.Equal(t, 3, g.LiveNeighbors(0, 0))
	assert.Equal(t, 1, g.LiveNeighbors(28, 58))
}

func TestBlockIsStillLife(t *testing.T) {
	g := gridOf(6, 6, [2]int{2, 2}, [2]int{2, 3}, [2]int{3, 2}, [2]int{3, 3})

	next := g.Next()
	assert.True(t, next.Equal(g))
	assert.Equal(t, 4, next.LiveCount())
}

func TestBlinkerOscillates(t *testing.T) {
	vertical := gridOf(5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	horizontal := gridOf(5, 5, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})

	gen1 := vertical.Next()
	require.True(t, gen1.Equal(horizontal), "blinker should turn horizontal")

	gen2 := gen1.Next()
	assert.True(t, gen2.Equal(vertical), "blinker should return to vertical")
}

func TestBlinkerAcrossTheEdge(t *testing.T) {
	// Vertical blinker centred on row 0 spans the top and bottom edges.
	g := gridOf(5, 5, [2]int{4, 2}, [2]int{0, 2}, [2]int{1, 2})
	want := gridOf(5, 5, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3})

	assert.True(t, g.Next().Equal(want))
}

func TestNextDoesNotMutateInput(t *testing.T) {
	g := Seed(20, 20, 0.4, core.NewRNG(7))
	before := g.Clone()

	a := g.Next()
	b := g.Next()

	assert.True(t, g.Equal(before), "Next must not modify its receiver")
	assert.True(t, a.Equal(b), "Next must be deterministic")
}

func TestEmptyGridStaysEmpty(t *testing.T) {
	g := NewGrid(10, 12)
	for i := 0; i < 5; i++ {
		g = g.Next()
		require.Zero(t, g.LiveCount())
	}
}

func TestSeedDensity(t *testing.T) {
	tests := []struct {
		name    string
		density float64
		draw    float64
		want    int
	}{
		{"zero density", 0, 0, 0},
		{"full density", 1, 0.999, 12},
		{"draw below density", 0.3, 0.29, 12},
		{"draw equal to density", 0.3, 0.3, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := Seed(3, 4, tc.density, fixedSource(tc.draw))
			assert.Equal(t, tc.want, g.LiveCount())
		})
	}
}

func TestSeedIsReproducible(t *testing.T) {
	a := Seed(30, 60, 0.3, core.NewRNG(42))
	b := Seed(30, 60, 0.3, core.NewRNG(42))
	assert.True(t, a.Equal(b))
	assert.Equal(t, 30, a.Rows())
	assert.Equal(t, 60, a.Cols())
}

func TestCloneIsIndependent(t *testing.T) {
	g := gridOf(3, 3, [2]int{1, 1})
	c := g.Clone()
	c.Set(0, 0, true)

	assert.False(t, g.At(0, 0))
	assert.False(t, g.Equal(c))
	assert.False(t, g.Equal(NewGrid(3, 4)))
}
