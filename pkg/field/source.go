package field

import (
	"fmt"

	"github.com/ManancialGD/PerlinNoise/pkg/noise"
	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Source is a 2D scalar field producing values in [0, 1].
type Source interface {
	At(x, y float64) float64
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func(x, y float64) float64

// At calls fn(x, y).
func (fn SourceFunc) At(x, y float64) float64 {
	return fn(x, y)
}

// NewNoiseSource wraps a noise field and a fixed parameter set as a Source.
// The parameters are validated once here so sampling cannot fail.
func NewNoiseSource(f *noise.Field, p noise.Params) (Source, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return SourceFunc(func(x, y float64) float64 {
		v, _ := f.Evaluate(x, y, p)
		return v
	}), nil
}

// NewPerlinSource samples go-perlin noise rescaled from its native ~[-1,1]
// range to [0, 1]. Coordinates are divided by scale before sampling, so a
// larger scale gives smoother output.
func NewPerlinSource(seed int64, alpha, beta float64, octaves int32, scale float64) (Source, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("%w: scale must be positive, got %g", noise.ErrInvalidParameter, scale)
	}
	if octaves <= 0 {
		return nil, fmt.Errorf("%w: octaves must be positive, got %d", noise.ErrInvalidParameter, octaves)
	}
	p := perlin.NewPerlin(alpha, beta, octaves, seed)
	return SourceFunc(func(x, y float64) float64 {
		return clamp01((p.Noise2D(x/scale, y/scale) + 1) * 0.5)
	}), nil
}

// NewSimplexSource samples normalized OpenSimplex noise. Coordinates are
// divided by scale before sampling.
func NewSimplexSource(seed int64, scale float64) (Source, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("%w: scale must be positive, got %g", noise.ErrInvalidParameter, scale)
	}
	n := opensimplex.NewNormalized(seed)
	return SourceFunc(func(x, y float64) float64 {
		return clamp01(n.Eval2(x/scale, y/scale))
	}), nil
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
