// Package interpolate implements the 1D interpolation and extrapolation
// methods used throughout colour-go: piecewise linear, natural cubic
// spline, Sprague (1880), monotone PCHIP, windowed kernel methods, and
// the degenerate nearest-neighbour and null interpolators.
//
// All interpolators share the same contract: they reproduce stored
// values exactly at stored domain points and return NaN outside the
// domain envelope. Extrapolation policy is layered on separately by
// Extrapolator.
package interpolate

import (
	"fmt"
	"math"
)

// Interpolator evaluates a fixed (domain, range) table at arbitrary
// points inside its domain.
type Interpolator interface {
	Eval(x float64) float64
	EvalAll(xs []float64, out ...[]float64) []float64
}

var (
	_ Interpolator = &Linear{}
	_ Interpolator = &CubicSpline{}
	_ Interpolator = &Sprague{}
	_ Interpolator = &Pchip{}
	_ Interpolator = &Kernel{}
	_ Interpolator = &NearestNeighbour{}
	_ Interpolator = &Null{}
)

// Method selects an interpolation algorithm.
type Method int

const (
	MethodLinear Method = iota
	MethodCubicSpline
	MethodSprague
	MethodPchip
	MethodKernel
	MethodNearestNeighbour
	MethodNull
)

var methodNames = []string{
	"Linear", "CubicSpline", "Sprague", "Pchip",
	"Kernel", "NearestNeighbour", "Null",
}

func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

// ParseMethod converts a method name to its Method value. Matching is
// case-sensitive on the canonical names.
func ParseMethod(name string) (Method, error) {
	for i, n := range methodNames {
		if n == name {
			return Method(i), nil
		}
	}
	return 0, fmt.Errorf(
		"interpolate: unknown method %q, accepted values are %v",
		name, methodNames,
	)
}

// Options tunes method-specific behaviour for New. The zero value
// selects the defaults: a lanczos kernel with window 3, Catmull-Rom
// cardinal spline shape, and the default null tolerance.
type Options struct {
	Kernel    KernelType
	Window    int     // kernel window radius in samples
	B, C      float64 // cardinal spline shape parameters
	Tolerance float64 // null interpolator matching tolerance
}

// New constructs the interpolator selected by m over the given table.
// opts may be nil.
func New(m Method, domain, rng []float64, opts *Options) (Interpolator, error) {
	if opts == nil {
		opts = &Options{Kernel: KernelLanczos}
	}

	switch m {
	case MethodLinear:
		return NewLinear(domain, rng)
	case MethodCubicSpline:
		return NewCubicSpline(domain, rng)
	case MethodSprague:
		return NewSprague(domain, rng)
	case MethodPchip:
		return NewPchip(domain, rng)
	case MethodKernel:
		kOpts := &KernelOptions{Window: opts.Window, B: opts.B, C: opts.C}
		return NewKernel(domain, rng, opts.Kernel, kOpts)
	case MethodNearestNeighbour:
		return NewNearestNeighbour(domain, rng)
	case MethodNull:
		return NewNull(domain, rng, opts.Tolerance)
	}
	return nil, fmt.Errorf(
		"interpolate: unknown method %d, accepted values are %v",
		int(m), methodNames,
	)
}

// checkTable validates the invariants shared by every constructor: equal
// lengths, at least min points, and a strictly increasing domain.
func checkTable(domain, rng []float64, min int) error {
	if len(domain) != len(rng) {
		return fmt.Errorf(
			"interpolate: len(domain) = %d but len(range) = %d",
			len(domain), len(rng),
		)
	}
	if len(domain) < min {
		return fmt.Errorf(
			"interpolate: table needs at least %d points, got %d",
			min, len(domain),
		)
	}
	for i := 0; i < len(domain)-1; i++ {
		if domain[i+1] <= domain[i] {
			return fmt.Errorf(
				"interpolate: domain not strictly increasing at index %d "+
					"(%g followed by %g)", i, domain[i], domain[i+1],
			)
		}
	}
	return nil
}

func dup(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	return out
}

// uniform reports whether xs is uniformly spaced within tolerance.
func uniform(xs []float64) bool {
	if len(xs) < 3 {
		return true
	}
	dx := xs[1] - xs[0]
	for i := 1; i < len(xs)-1; i++ {
		if math.Abs((xs[i+1]-xs[i])-dx) > uniformEps {
			return false
		}
	}
	return true
}

const uniformEps = 1e-10

// searcher locates the interval containing a query point. It guesses
// under a uniform-spacing assumption before falling back to binary
// search; spectral tables are almost always uniform, so the guess hits.
type searcher struct {
	xs []float64
	dx float64
}

func (s *searcher) init(xs []float64) {
	s.xs = xs
	if len(xs) > 1 {
		s.dx = (xs[len(xs)-1] - xs[0]) / float64(len(xs)-1)
	}
}

// search returns the index of the largest element not exceeding x,
// capped at len(xs)-2. x must lie within [xs[0], xs[len(xs)-1]].
func (s *searcher) search(x float64) int {
	guess := int((x - s.xs[0]) / s.dx)
	if guess >= 0 && guess < len(s.xs)-1 &&
		s.xs[guess] <= x && x <= s.xs[guess+1] {

		return guess
	}

	lo, hi := 0, len(s.xs)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= s.xs[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// offDomain reports whether x falls outside the envelope of xs.
func offDomain(xs []float64, x float64) bool {
	return len(xs) == 0 || x < xs[0] || x > xs[len(xs)-1] || math.IsNaN(x)
}
