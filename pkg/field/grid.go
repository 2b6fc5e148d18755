package field

import (
	"fmt"

	"github.com/ManancialGD/PerlinNoise/pkg/noise"
	"github.com/dgravesa/go-parallel/parallel"
)

// Grid is a row-major raster of sampled field values.
type Grid struct {
	W, H   int
	Values []float64
}

// NewGrid allocates a w by h grid with all values zero.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: grid dimensions must be positive, got %dx%d", noise.ErrInvalidParameter, w, h)
	}
	return &Grid{W: w, H: h, Values: make([]float64, w*h)}, nil
}

// At returns the value at cell (ix, iy).
func (g *Grid) At(ix, iy int) float64 {
	return g.Values[iy*g.W+ix]
}

// Set stores v at cell (ix, iy).
func (g *Grid) Set(ix, iy int, v float64) {
	g.Values[iy*g.W+ix] = v
}

// Fill samples s across the grid, mapping cell (ix, iy) to world coordinates
// (x0 + ix*step, y0 + iy*step). Rows are sampled in parallel; the result is
// identical to a serial sweep because each row is written by one goroutine.
func (g *Grid) Fill(s Source, x0, y0, step float64) {
	parallel.For(g.H, func(iy, _ int) {
		row := g.Values[iy*g.W : (iy+1)*g.W]
		y := y0 + float64(iy)*step
		for ix := range row {
			row[ix] = s.At(x0+float64(ix)*step, y)
		}
	})
}

// Normalize rescales the values to span [0, 1]. A flat grid becomes all
// zeros.
func (g *Grid) Normalize() {
	lo, hi := g.Values[0], g.Values[0]
	for _, v := range g.Values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	if hi == lo {
		for i := range g.Values {
			g.Values[i] = 0
		}
		return
	}

	span := hi - lo
	for i := range g.Values {
		g.Values[i] = (g.Values[i] - lo) / span
	}
}

// Threshold returns a mask marking cells with values at or above level.
func (g *Grid) Threshold(level float64) []bool {
	mask := make([]bool, len(g.Values))
	for i, v := range g.Values {
		mask[i] = v >= level
	}
	return mask
}

// Band reports whether v lies within width of center, half on each side.
// Useful for carving contour features like rivers out of a heightmap.
func Band(v, center, width float64) bool {
	half := width / 2
	return v >= center-half && v <= center+half
}
