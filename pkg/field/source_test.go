package field

import (
	"errors"
	"testing"

	"github.com/ManancialGD/PerlinNoise/pkg/noise"
)

func TestNoiseSourceMatchesEvaluate(t *testing.T) {
	f := noise.NewDefault(9)
	p := noise.DefaultParams()

	src, err := NewNoiseSource(f, p)
	if err != nil {
		t.Fatalf("NewNoiseSource error: %v", err)
	}

	for i := 0; i < 100; i++ {
		x := float64(i)*0.41 - 20
		y := float64(i)*0.29 - 15
		want, err := f.Evaluate(x, y, p)
		if err != nil {
			t.Fatalf("Evaluate(%f, %f) error: %v", x, y, err)
		}
		if got := src.At(x, y); got != want {
			t.Errorf("At(%f, %f) = %f, want %f", x, y, got, want)
		}
	}
}

func TestNoiseSourceRejectsBadParams(t *testing.T) {
	f := noise.NewDefault(9)
	p := noise.DefaultParams()
	p.Octaves = 0

	if _, err := NewNoiseSource(f, p); !errors.Is(err, noise.ErrInvalidParameter) {
		t.Errorf("NewNoiseSource error = %v, want ErrInvalidParameter", err)
	}
}

func TestPerlinSourceRange(t *testing.T) {
	src, err := NewPerlinSource(42, 2, 3, 4, 10)
	if err != nil {
		t.Fatalf("NewPerlinSource error: %v", err)
	}

	for i := 0; i < 2000; i++ {
		x := float64(i)*0.9 - 800
		y := float64(i)*0.7 - 600
		v := src.At(x, y)
		if v < 0 || v > 1 {
			t.Errorf("At(%f, %f) = %f, out of [0,1]", x, y, v)
		}
	}
}

func TestSimplexSourceRange(t *testing.T) {
	src, err := NewSimplexSource(42, 25)
	if err != nil {
		t.Fatalf("NewSimplexSource error: %v", err)
	}

	for i := 0; i < 2000; i++ {
		x := float64(i)*0.9 - 800
		y := float64(i)*0.7 - 600
		v := src.At(x, y)
		if v < 0 || v > 1 {
			t.Errorf("At(%f, %f) = %f, out of [0,1]", x, y, v)
		}
	}
}

func TestSourceScaleValidation(t *testing.T) {
	for _, scale := range []float64{0, -5} {
		if _, err := NewPerlinSource(1, 2, 3, 4, scale); !errors.Is(err, noise.ErrInvalidParameter) {
			t.Errorf("NewPerlinSource scale %g: error = %v, want ErrInvalidParameter", scale, err)
		}
		if _, err := NewSimplexSource(1, scale); !errors.Is(err, noise.ErrInvalidParameter) {
			t.Errorf("NewSimplexSource scale %g: error = %v, want ErrInvalidParameter", scale, err)
		}
	}

	if _, err := NewPerlinSource(1, 2, 3, 0, 10); !errors.Is(err, noise.ErrInvalidParameter) {
		t.Errorf("NewPerlinSource zero octaves: error = %v, want ErrInvalidParameter", err)
	}
}

func TestSourcesAreDeterministic(t *testing.T) {
	p1, err := NewPerlinSource(7, 2, 3, 4, 10)
	if err != nil {
		t.Fatalf("NewPerlinSource error: %v", err)
	}
	p2, _ := NewPerlinSource(7, 2, 3, 4, 10)

	s1, err := NewSimplexSource(7, 25)
	if err != nil {
		t.Fatalf("NewSimplexSource error: %v", err)
	}
	s2, _ := NewSimplexSource(7, 25)

	for i := 0; i < 50; i++ {
		x := float64(i) * 1.7
		y := float64(i) * 1.1
		if p1.At(x, y) != p2.At(x, y) {
			t.Errorf("perlin source not deterministic at (%f, %f)", x, y)
		}
		if s1.At(x, y) != s2.At(x, y) {
			t.Errorf("simplex source not deterministic at (%f, %f)", x, y)
		}
	}
}
