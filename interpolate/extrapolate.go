package interpolate

import (
	"fmt"
	"math"
)

// ExtrapMethod selects the policy applied to queries outside the domain
// envelope.
type ExtrapMethod int

const (
	// ExtrapLinear continues the boundary secant slope.
	ExtrapLinear ExtrapMethod = iota
	// ExtrapConstant returns the configured left/right constants,
	// which default to NaN.
	ExtrapConstant
	// ExtrapNaN always returns NaN.
	ExtrapNaN
)

var extrapNames = []string{"Linear", "Constant", "NaN"}

func (m ExtrapMethod) String() string {
	if m < 0 || int(m) >= len(extrapNames) {
		return fmt.Sprintf("ExtrapMethod(%d)", int(m))
	}
	return extrapNames[m]
}

// ParseExtrapMethod converts an extrapolation method name to its
// ExtrapMethod value.
func ParseExtrapMethod(name string) (ExtrapMethod, error) {
	for i, n := range extrapNames {
		if n == name {
			return ExtrapMethod(i), nil
		}
	}
	return 0, fmt.Errorf(
		"interpolate: unknown extrapolation method %q, accepted values are %v",
		name, extrapNames,
	)
}

// Extrapolator wraps an Interpolator and answers queries outside its
// domain envelope according to the selected method. In-range queries
// delegate to the wrapped interpolator.
type Extrapolator struct {
	interp      Interpolator
	domain, rng []float64
	method      ExtrapMethod
	left, right float64
}

// NewExtrapolator wraps interp, whose table is (domain, rng), with the
// given out-of-domain policy. left and right are only consulted by
// ExtrapConstant; pass NaN for the default behaviour.
func NewExtrapolator(
	method ExtrapMethod, interp Interpolator,
	domain, rng []float64, left, right float64,
) (*Extrapolator, error) {
	if err := checkTable(domain, rng, 1); err != nil {
		return nil, err
	}
	if method < 0 || int(method) >= len(extrapNames) {
		return nil, fmt.Errorf(
			"interpolate: unknown extrapolation method %d, accepted values are %v",
			int(method), extrapNames,
		)
	}
	return &Extrapolator{
		interp: interp,
		domain: dup(domain),
		rng:    dup(rng),
		method: method,
		left:   left,
		right:  right,
	}, nil
}

// Eval returns the extrapolated value at x when x falls outside the
// domain envelope and the interpolated value otherwise.
func (ex *Extrapolator) Eval(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	n := len(ex.domain)

	switch {
	case x < ex.domain[0]:
		switch ex.method {
		case ExtrapLinear:
			if n < 2 {
				return ex.rng[0]
			}
			slope := (ex.rng[1] - ex.rng[0]) / (ex.domain[1] - ex.domain[0])
			return ex.rng[0] + (x-ex.domain[0])*slope
		case ExtrapConstant:
			return ex.left
		default:
			return math.NaN()
		}
	case x > ex.domain[n-1]:
		switch ex.method {
		case ExtrapLinear:
			if n < 2 {
				return ex.rng[0]
			}
			slope := (ex.rng[n-1] - ex.rng[n-2]) /
				(ex.domain[n-1] - ex.domain[n-2])
			return ex.rng[n-1] + (x-ex.domain[n-1])*slope
		case ExtrapConstant:
			return ex.right
		default:
			return math.NaN()
		}
	}
	return ex.interp.Eval(x)
}

func (ex *Extrapolator) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = ex.Eval(x)
	}
	return out[0]
}
