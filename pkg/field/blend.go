package field

import (
	"fmt"
	"math"

	"github.com/ManancialGD/PerlinNoise/pkg/noise"
)

// Layer pairs a source with its blend weight.
type Layer struct {
	Source Source
	Weight float64
}

// Blend combines layers into a single source by weighted average. Every
// layer needs a non-nil source and a positive weight.
func Blend(layers ...Layer) (Source, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("%w: at least one layer required", noise.ErrInvalidParameter)
	}

	total := 0.0
	for i, l := range layers {
		if l.Source == nil {
			return nil, fmt.Errorf("%w: layer %d has nil source", noise.ErrInvalidParameter, i)
		}
		if l.Weight <= 0 {
			return nil, fmt.Errorf("%w: layer %d weight must be positive, got %g", noise.ErrInvalidParameter, i, l.Weight)
		}
		total += l.Weight
	}

	// Copy so later mutation of the caller's slice cannot change the blend
	ls := append([]Layer(nil), layers...)

	return SourceFunc(func(x, y float64) float64 {
		sum := 0.0
		for _, l := range ls {
			sum += l.Source.At(x, y) * l.Weight
		}
		return clamp01(sum / total)
	}), nil
}

// Ridge folds a source around its midpoint, turning smooth hills into sharp
// crests. Values at 0.5 map to 1, both extremes map to 0.
func Ridge(s Source) Source {
	return SourceFunc(func(x, y float64) float64 {
		return 1 - math.Abs(2*s.At(x, y)-1)
	})
}
