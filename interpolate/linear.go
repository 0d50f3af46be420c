package interpolate

import (
	"math"
)

///////////////////////////
// Linear Implementation //
///////////////////////////

// Linear is a piecewise linear interpolator.
type Linear struct {
	xs          searcher
	domain, rng []float64
}

// NewLinear creates a linear interpolator over a strictly increasing
// domain and a range of matching length.
//
// Lookups occur in O(log |domain|), O(1) for uniform tables.
func NewLinear(domain, rng []float64) (*Linear, error) {
	if err := checkTable(domain, rng, 2); err != nil {
		return nil, err
	}
	lin := &Linear{domain: dup(domain), rng: dup(rng)}
	lin.xs.init(lin.domain)
	return lin, nil
}

// Eval returns the interpolated value at x, or NaN if x is outside the
// domain envelope.
func (lin *Linear) Eval(x float64) float64 {
	if offDomain(lin.domain, x) {
		return math.NaN()
	}
	i := lin.xs.search(x)
	x1, x2 := lin.domain[i], lin.domain[i+1]
	v1, v2 := lin.rng[i], lin.rng[i+1]

	return ((v2-v1)/(x2-x1))*(x-x1) + v1
}

// EvalAll evaluates the interpolator at all the given x values. If an
// output array is given, the output is written to that array (the array
// is still returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (lin *Linear) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = lin.Eval(x)
	}
	return out[0]
}

/////////////////////////////////////
// NearestNeighbour Implementation //
/////////////////////////////////////

// NearestNeighbour snaps queries to the closest stored sample. Ties go
// to the lower sample.
type NearestNeighbour struct {
	xs          searcher
	domain, rng []float64
}

func NewNearestNeighbour(domain, rng []float64) (*NearestNeighbour, error) {
	if err := checkTable(domain, rng, 1); err != nil {
		return nil, err
	}
	nn := &NearestNeighbour{domain: dup(domain), rng: dup(rng)}
	nn.xs.init(nn.domain)
	return nn, nil
}

func (nn *NearestNeighbour) Eval(x float64) float64 {
	if offDomain(nn.domain, x) {
		return math.NaN()
	}
	if len(nn.domain) == 1 {
		return nn.rng[0]
	}
	i := nn.xs.search(x)
	if x-nn.domain[i] <= nn.domain[i+1]-x {
		return nn.rng[i]
	}
	return nn.rng[i+1]
}

func (nn *NearestNeighbour) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = nn.Eval(x)
	}
	return out[0]
}

/////////////////////////
// Null Implementation //
/////////////////////////

// DefaultNullTolerance is the matching tolerance used by NewNull when
// none is given.
const DefaultNullTolerance = 1e-7

// Null only returns stored values: queries within tolerance of a stored
// domain point yield that point's range value, everything else yields
// NaN.
type Null struct {
	xs          searcher
	domain, rng []float64
	tol         float64
}

func NewNull(domain, rng []float64, tolerance float64) (*Null, error) {
	if err := checkTable(domain, rng, 1); err != nil {
		return nil, err
	}
	if tolerance <= 0 {
		tolerance = DefaultNullTolerance
	}
	nl := &Null{domain: dup(domain), rng: dup(rng), tol: tolerance}
	nl.xs.init(nl.domain)
	return nl, nil
}

func (nl *Null) Eval(x float64) float64 {
	if math.IsNaN(x) || len(nl.domain) == 0 {
		return math.NaN()
	}
	// The envelope check is widened by the tolerance so boundary points
	// still match.
	if x < nl.domain[0]-nl.tol || x > nl.domain[len(nl.domain)-1]+nl.tol {
		return math.NaN()
	}

	best := 0
	if len(nl.domain) > 1 && x >= nl.domain[0] && x <= nl.domain[len(nl.domain)-1] {
		i := nl.xs.search(x)
		best = i
		if x-nl.domain[i] > nl.domain[i+1]-x {
			best = i + 1
		}
	} else if x > nl.domain[len(nl.domain)-1] {
		best = len(nl.domain) - 1
	}

	if math.Abs(x-nl.domain[best]) <= nl.tol {
		return nl.rng[best]
	}
	return math.NaN()
}

func (nl *Null) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = nl.Eval(x)
	}
	return out[0]
}
