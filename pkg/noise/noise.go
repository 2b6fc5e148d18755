package noise

import (
	"fmt"
	"math"
)

// DefaultGridSize is the base lattice spacing used by NewDefault.
const DefaultGridSize = 16

// Field implements 2D fractal lattice noise with a seeded permutation table.
// A Field is immutable after construction and safe for concurrent use.
type Field struct {
	gridSize int
	perm     [512]int
}

// New creates a noise field from a seed and a base grid size. The grid size
// is the lattice spacing of the first octave in coordinate units.
func New(seed int64, gridSize int) (*Field, error) {
	if gridSize <= 0 {
		return nil, fmt.Errorf("%w: grid size must be positive, got %d", ErrInvalidParameter, gridSize)
	}

	f := &Field{gridSize: gridSize}

	// Initialize permutation table 0-255
	var base [256]int
	for i := range base {
		base[i] = i
	}

	// Seeded shuffle using a simple LCG. Each step swaps with an index drawn
	// from the full range [0,256); the table stays a permutation regardless
	// of the draw sequence.
	s := seed
	for i := 0; i < 256; i++ {
		s = s*6364136223846793005 + 1442695040888963407
		j := int(uint64(s>>16) % 256)
		base[i], base[j] = base[j], base[i]
	}

	// Duplicate for wrapping
	for i := 0; i < 256; i++ {
		f.perm[i] = base[i]
		f.perm[i+256] = base[i]
	}
	return f, nil
}

// NewDefault creates a noise field with the default grid size.
func NewDefault(seed int64) *Field {
	f, _ := New(seed, DefaultGridSize)
	return f
}

// GridSize returns the lattice spacing of the first octave.
func (f *Field) GridSize() int {
	return f.gridSize
}

// fade applies the smoothstep 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// lerp linearly interpolates between a and b.
func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// Gradient directions are 16 equally spaced unit vectors around the circle,
// selected by the low 4 bits of a corner hash.
var (
	gradX [16]float64
	gradY [16]float64
)

func init() {
	for i := range gradX {
		a := float64(i) * math.Pi / 8
		gradX[i] = math.Cos(a)
		gradY[i] = math.Sin(a)
	}
}

// grad returns the dot product of the hashed gradient direction and the
// offset vector (x, y).
func grad(hash int, x, y float64) float64 {
	h := hash & 15
	return gradX[h]*x + gradY[h]*y
}

// octave computes one layer of lattice noise at the given grid size and
// remaps it from its natural ~[-1,1] range to [0,1].
func (f *Field) octave(x, y float64, gridSize int) float64 {
	gs := float64(gridSize)

	// Lattice cell containing the point
	gx := math.Floor(x / gs)
	gy := math.Floor(y / gs)

	// Relative position in cell
	lx := x/gs - gx
	ly := y/gs - gy

	// Mask lattice coordinates so arbitrary inputs, negative included, stay
	// inside the table
	xi := int(gx) & 255
	yi := int(gy) & 255
	xi1 := (xi + 1) & 255
	yi1 := (yi + 1) & 255

	// Fade curves
	u := fade(lx)
	v := fade(ly)

	// Hash coordinates of the 4 cell corners
	tl := f.perm[f.perm[xi]+yi]
	tr := f.perm[f.perm[xi1]+yi]
	bl := f.perm[f.perm[xi]+yi1]
	br := f.perm[f.perm[xi1]+yi1]

	// Bilinear interpolation of corner gradient contributions
	top := lerp(u, grad(tl, lx, ly), grad(tr, lx-1, ly))
	bottom := lerp(u, grad(bl, lx, ly-1), grad(br, lx-1, ly-1))
	n := lerp(v, top, bottom)

	return n*0.5 + 0.5
}

// Evaluate computes fractal noise at (x, y) with the given shaping
// parameters and returns a value in [0, 1]. For a fixed seed, grid size, and
// parameter set the output is a pure function of (x, y).
func (f *Field) Evaluate(x, y float64, p Params) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	total := 0.0
	amplitude := 1.0
	maxAmplitude := 0.0
	size := f.gridSize

	for i := 0; i < p.Octaves; i++ {
		r := f.octave(x, y, size)

		// Exponent bases are clamped so floating-point slack below zero
		// never reaches a fractional power.
		if i == 0 {
			// The first octave is shaped into its own, typically darker range
			r = math.Pow(clamp01(r), p.FirstOctaveContrast)
			r = (r*2 - 1) * p.PostBiasFactor
			r -= p.Bias
		} else {
			r = math.Pow(clamp01(r), p.Contrast)
		}

		total += r * amplitude
		maxAmplitude += amplitude
		amplitude *= p.Persistence

		// Each octave doubles frequency by halving the grid size, saturating
		// at the finest lattice.
		size /= 2
		if size < 1 {
			size = 1
		}
	}

	return clamp01(total / maxAmplitude), nil
}

// clamp01 clamps v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
