package noise

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is returned when a construction or evaluation
// parameter is outside its valid range.
var ErrInvalidParameter = errors.New("invalid parameter")

// Params controls fractal evaluation and per-octave shaping.
type Params struct {
	Octaves             int     // number of layers combined, halving grid size each layer
	Persistence         float64 // amplitude multiplier applied after each octave
	Contrast            float64 // exponent applied to octaves after the first
	FirstOctaveContrast float64 // exponent applied to the first octave
	Bias                float64 // subtracted from the first octave after scaling
	PostBiasFactor      float64 // scale applied to the recentered first octave
}

// DefaultParams returns the standard evaluation parameters.
func DefaultParams() Params {
	return Params{
		Octaves:             4,
		Persistence:         0.5,
		Contrast:            1.0,
		FirstOctaveContrast: 0.5,
		Bias:                0.1,
		PostBiasFactor:      1.5,
	}
}

// Validate reports whether the parameters can drive an evaluation.
func (p Params) Validate() error {
	if p.Octaves <= 0 {
		return fmt.Errorf("%w: octaves must be positive, got %d", ErrInvalidParameter, p.Octaves)
	}
	if p.Persistence <= 0 {
		return fmt.Errorf("%w: persistence must be positive, got %g", ErrInvalidParameter, p.Persistence)
	}
	return nil
}
