package interpolate

import (
	"fmt"
	"math"
)

// Sprague is the fifth-order Sprague (1880) interpolator recommended by
// CIE 167:2005 for uniformly sampled spectral data. It requires a
// uniformly spaced domain with at least six points.
type Sprague struct {
	domain, rng []float64

	// rng padded with two synthetic boundary points on each side.
	padded []float64
	dx     float64
}

// NewSprague creates a Sprague interpolator over a uniform table of at
// least six points.
func NewSprague(domain, rng []float64) (*Sprague, error) {
	if err := checkTable(domain, rng, 6); err != nil {
		return nil, err
	}
	if !uniform(domain) {
		return nil, fmt.Errorf(
			"interpolate: Sprague requires a uniformly spaced domain",
		)
	}

	sp := &Sprague{
		domain: dup(domain),
		rng:    dup(rng),
		dx:     domain[1] - domain[0],
	}
	sp.pad()
	return sp, nil
}

// pad appends the synthetic boundary points of the Sprague formulation,
// two on each side.
func (sp *Sprague) pad() {
	r := sp.rng
	n := len(r)

	p1 := (884*r[0] - 1960*r[1] + 3033*r[2] -
		2648*r[3] + 1080*r[4] - 180*r[5]) / 209
	p2 := (508*r[0] - 540*r[1] + 488*r[2] -
		367*r[3] + 144*r[4] - 24*r[5]) / 209
	p3 := (-24*r[n-6] + 144*r[n-5] - 367*r[n-4] +
		488*r[n-3] - 540*r[n-2] + 508*r[n-1]) / 209
	p4 := (-180*r[n-6] + 1080*r[n-5] - 2648*r[n-4] +
		3033*r[n-3] - 1960*r[n-2] + 884*r[n-1]) / 209

	sp.padded = make([]float64, 0, n+4)
	sp.padded = append(sp.padded, p1, p2)
	sp.padded = append(sp.padded, r...)
	sp.padded = append(sp.padded, p3, p4)
}

// Eval computes the Sprague interpolated value at x, or NaN if x is
// outside the domain envelope.
func (sp *Sprague) Eval(x float64) float64 {
	if offDomain(sp.domain, x) {
		return math.NaN()
	}

	n := len(sp.domain)
	i := int((x - sp.domain[0]) / sp.dx)
	if i > n-2 {
		i = n - 2
	}
	if i < 0 {
		i = 0
	}
	X := (x - sp.domain[i]) / sp.dx

	// Padded index of sample i is i+2.
	r := sp.padded
	a0 := r[i+2]
	a1 := (2*r[i] - 16*r[i+1] + 16*r[i+3] - 2*r[i+4]) / 24
	a2 := (-r[i] + 16*r[i+1] - 30*r[i+2] + 16*r[i+3] - r[i+4]) / 24
	a3 := (-9*r[i] + 39*r[i+1] - 70*r[i+2] +
		66*r[i+3] - 33*r[i+4] + 7*r[i+5]) / 24
	a4 := (13*r[i] - 64*r[i+1] + 126*r[i+2] -
		124*r[i+3] + 61*r[i+4] - 12*r[i+5]) / 24
	a5 := (-5*r[i] + 25*r[i+1] - 50*r[i+2] +
		50*r[i+3] - 25*r[i+4] + 5*r[i+5]) / 24

	return a0 + a1*X + a2*X*X + a3*X*X*X + a4*X*X*X*X + a5*X*X*X*X*X
}

func (sp *Sprague) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = sp.Eval(x)
	}
	return out[0]
}
