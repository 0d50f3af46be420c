package interpolate

import (
	"fmt"
	"math"
)

type splineCoeff struct {
	a, b, c, d float64
}

// CubicSpline is a natural cubic spline interpolator.
type CubicSpline struct {
	xs          searcher
	domain, rng []float64
	y2s         []float64
	coeffs      []splineCoeff
}

// NewCubicSpline creates a natural cubic spline through the given
// table. The domain must be strictly increasing and hold at least two
// points.
func NewCubicSpline(domain, rng []float64) (*CubicSpline, error) {
	if err := checkTable(domain, rng, 2); err != nil {
		return nil, err
	}

	sp := &CubicSpline{
		domain: dup(domain),
		rng:    dup(rng),
		y2s:    make([]float64, len(domain)),
		coeffs: make([]splineCoeff, len(domain)-1),
	}
	sp.xs.init(sp.domain)

	if err := sp.calcY2s(); err != nil {
		return nil, err
	}
	sp.calcCoeffs()
	return sp, nil
}

// Eval computes the value of the spline at x, or NaN if x is outside
// the domain envelope.
func (sp *CubicSpline) Eval(x float64) float64 {
	if offDomain(sp.domain, x) {
		return math.NaN()
	}
	i := sp.xs.search(x)
	dx := x - sp.domain[i]
	a, b, c, d := sp.coeffs[i].a, sp.coeffs[i].b, sp.coeffs[i].c, sp.coeffs[i].d
	return a*dx*dx*dx + b*dx*dx + c*dx + d
}

func (sp *CubicSpline) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = sp.Eval(x)
	}
	return out[0]
}

// calcY2s computes the second derivative at every table point with
// natural boundary conditions.
func (sp *CubicSpline) calcY2s() error {
	n := len(sp.domain)
	sp.y2s[0], sp.y2s[n-1] = 0, 0
	if n == 2 {
		return nil
	}

	as, bs := make([]float64, n-2), make([]float64, n-2)
	cs, rs := make([]float64, n-2), make([]float64, n-2)

	xs, ys := sp.domain, sp.rng
	for i := range rs {
		// j indexes into xs and ys.
		j := i + 1

		as[i] = (xs[j] - xs[j-1]) / 6
		bs[i] = (xs[j+1] - xs[j-1]) / 3
		cs[i] = (xs[j+1] - xs[j]) / 6
		rs[i] = ((ys[j+1] - ys[j]) / (xs[j+1] - xs[j])) -
			((ys[j] - ys[j-1]) / (xs[j] - xs[j-1]))
	}

	return triDiagAt(as, bs, cs, rs, sp.y2s[1:n-1])
}

func (sp *CubicSpline) calcCoeffs() {
	coeffs, xs, ys, y2s := sp.coeffs, sp.domain, sp.rng, sp.y2s
	for i := range sp.coeffs {
		h := xs[i+1] - xs[i]
		coeffs[i].a = (y2s[i+1] - y2s[i]) / (6 * h)
		coeffs[i].b = y2s[i] / 2
		coeffs[i].c = (ys[i+1]-ys[i])/h - h*(2*y2s[i]+y2s[i+1])/6
		coeffs[i].d = ys[i]
	}
}

// triDiagAt solves the system of equations
//
// | b0 c0 ..    |   | out0 |   | r0 |
// | a1 b1 c1 .. |   | out1 |   | r1 |
// | ..          | * | ..   | = | .. |
// | ..    an bn |   | outn |   | rn |
//
// for out0 .. outn in place in the given slice.
func triDiagAt(as, bs, cs, rs, out []float64) error {
	if len(as) != len(bs) || len(as) != len(cs) ||
		len(as) != len(out) || len(as) != len(rs) {

		return fmt.Errorf("interpolate: unequal lengths in tridiagonal system")
	}

	tmp := make([]float64, len(as))

	beta := bs[0]
	if beta == 0 {
		return fmt.Errorf("interpolate: singular tridiagonal system")
	}
	out[0] = rs[0] / beta

	for i := 1; i < len(out); i++ {
		tmp[i] = cs[i-1] / beta
		beta = bs[i] - as[i]*tmp[i]
		if beta == 0 {
			return fmt.Errorf("interpolate: singular tridiagonal system")
		}
		out[i] = (rs[i] - as[i]*out[i-1]) / beta
	}

	for i := len(out) - 2; i >= 0; i-- {
		out[i] -= tmp[i+1] * out[i+1]
	}
	return nil
}
