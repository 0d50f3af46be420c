// Package colorimetry implements spectral colour computations on top
// of the continuous function abstraction: spectral shapes, spectral
// distributions, colour matching functions and tristimulus
// integration.
package colorimetry

import (
	"fmt"
	"math"
)

// SpectralShape describes a regular wavelength grid in nanometres.
type SpectralShape struct {
	Start, End, Interval float64
}

// DefaultShape is the grid of the built-in datasets, 380 nm to 780 nm
// in 10 nm steps.
var DefaultShape = SpectralShape{Start: 380, End: 780, Interval: 10}

func (s SpectralShape) validate() error {
	if s.Interval <= 0 {
		return fmt.Errorf("colorimetry: shape interval %g must be positive", s.Interval)
	}
	if s.End <= s.Start {
		return fmt.Errorf(
			"colorimetry: shape end %g must exceed start %g", s.End, s.Start,
		)
	}
	return nil
}

// Len returns the number of grid points.
func (s SpectralShape) Len() int {
	return int(math.Floor((s.End-s.Start)/s.Interval+1e-9)) + 1
}

// Wavelengths expands the shape into its wavelength grid.
func (s SpectralShape) Wavelengths() []float64 {
	n := s.Len()
	out := make([]float64, n)
	for i := range out {
		out[i] = s.Start + float64(i)*s.Interval
	}
	return out
}

// Contains reports whether the wavelength falls on the grid.
func (s SpectralShape) Contains(wl float64) bool {
	if wl < s.Start || wl > s.End {
		return false
	}
	_, frac := math.Modf((wl - s.Start) / s.Interval)
	return frac < 1e-9 || frac > 1-1e-9
}

func (s SpectralShape) String() string {
	return fmt.Sprintf("(%g, %g, %g)", s.Start, s.End, s.Interval)
}

// shapeOf derives a shape from a sorted uniform wavelength grid.
func shapeOf(wls []float64) (SpectralShape, error) {
	if len(wls) < 2 {
		return SpectralShape{}, fmt.Errorf(
			"colorimetry: need at least 2 wavelengths, got %d", len(wls),
		)
	}
	interval := wls[1] - wls[0]
	for i := 2; i < len(wls); i++ {
		if math.Abs(wls[i]-wls[i-1]-interval) > 1e-9 {
			return SpectralShape{}, fmt.Errorf(
				"colorimetry: wavelength grid is not uniform at %g nm", wls[i],
			)
		}
	}
	return SpectralShape{Start: wls[0], End: wls[len(wls)-1], Interval: interval}, nil
}
