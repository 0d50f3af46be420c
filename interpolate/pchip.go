package interpolate

import (
	"math"
)

// Pchip is the Fritsch-Carlson monotone piecewise cubic Hermite
// interpolator. It never overshoots monotone data.
type Pchip struct {
	xs          searcher
	domain, rng []float64
	slopes      []float64
}

// NewPchip creates a PCHIP interpolator over the given table.
func NewPchip(domain, rng []float64) (*Pchip, error) {
	if err := checkTable(domain, rng, 2); err != nil {
		return nil, err
	}
	p := &Pchip{domain: dup(domain), rng: dup(rng)}
	p.xs.init(p.domain)
	p.calcSlopes()
	return p, nil
}

// calcSlopes computes the Fritsch-Carlson tangents: a weighted harmonic
// mean of adjacent secants in the interior, zero across local extrema,
// and a shape-limited one-sided formula at the boundaries.
func (p *Pchip) calcSlopes() {
	n := len(p.domain)
	p.slopes = make([]float64, n)
	if n == 2 {
		d := (p.rng[1] - p.rng[0]) / (p.domain[1] - p.domain[0])
		p.slopes[0], p.slopes[1] = d, d
		return
	}

	hs := make([]float64, n-1)
	ds := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		hs[i] = p.domain[i+1] - p.domain[i]
		ds[i] = (p.rng[i+1] - p.rng[i]) / hs[i]
	}

	for i := 1; i < n-1; i++ {
		if ds[i-1]*ds[i] <= 0 {
			p.slopes[i] = 0
			continue
		}
		w1 := 2*hs[i] + hs[i-1]
		w2 := hs[i] + 2*hs[i-1]
		p.slopes[i] = (w1 + w2) / (w1/ds[i-1] + w2/ds[i])
	}

	p.slopes[0] = edgeSlope(hs[0], hs[1], ds[0], ds[1])
	p.slopes[n-1] = edgeSlope(hs[n-2], hs[n-3], ds[n-2], ds[n-3])
}

// edgeSlope is the non-centered three-point boundary estimate with the
// Fritsch-Carlson shape limiters applied.
func edgeSlope(h0, h1, d0, d1 float64) float64 {
	m := ((2*h0+h1)*d0 - h0*d1) / (h0 + h1)
	if m*d0 <= 0 {
		return 0
	}
	if d0*d1 < 0 && math.Abs(m) > 3*math.Abs(d0) {
		return 3 * d0
	}
	return m
}

// Eval computes the PCHIP interpolated value at x, or NaN if x is
// outside the domain envelope.
func (p *Pchip) Eval(x float64) float64 {
	if offDomain(p.domain, x) {
		return math.NaN()
	}
	i := p.xs.search(x)
	h := p.domain[i+1] - p.domain[i]
	t := (x - p.domain[i]) / h

	h00 := (1 + 2*t) * (1 - t) * (1 - t)
	h10 := t * (1 - t) * (1 - t)
	h01 := t * t * (3 - 2*t)
	h11 := t * t * (t - 1)

	return h00*p.rng[i] + h10*h*p.slopes[i] +
		h01*p.rng[i+1] + h11*h*p.slopes[i+1]
}

func (p *Pchip) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = p.Eval(x)
	}
	return out[0]
}
