// Package continuous implements the continuous-signal data model: an
// ordered mapping of domain sample points to range values that answers
// queries between samples by interpolation and outside them by
// extrapolation. Signal holds a single channel; MultiSignals holds
// several channels sharing one domain.
package continuous

import (
	"fmt"
	"math"
	"sort"

	"github.com/colour-science/colour-go/interpolate"
)

// Op is an elementwise arithmetic operation on a signal's range.
type Op int

const (
	Add Op = iota
	Sub
	Mul
	Div
	Pow
)

var opNames = []string{"Add", "Sub", "Mul", "Div", "Pow"}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return opNames[op]
}

func applyOp(op Op, a, b float64) (float64, error) {
	switch op {
	case Add:
		return a + b, nil
	case Sub:
		return a - b, nil
	case Mul:
		return a * b, nil
	case Div:
		return a / b, nil
	case Pow:
		return math.Pow(a, b), nil
	}
	return 0, fmt.Errorf(
		"continuous: unknown operation %d, accepted values are %v",
		int(op), opNames,
	)
}

// FillMethod selects how FillNaN replaces NaN range values.
type FillMethod int

const (
	// FillInterpolation re-interpolates over the remaining valid
	// points.
	FillInterpolation FillMethod = iota
	// FillConstant replaces NaN values with a constant.
	FillConstant
)

// Signal is a single-channel continuous function backed by an ordered
// (domain, range) table. The domain is kept strictly increasing and
// duplicate-free; the interpolator is rebuilt on every mutation.
type Signal struct {
	domain, rng []float64

	method interpolate.Method
	opts   *interpolate.Options

	exMethod    interpolate.ExtrapMethod
	left, right float64

	interp interpolate.Interpolator
	ex     *interpolate.Extrapolator
}

// NewSignal creates a signal from range values and their domain sample
// points. A nil domain defaults to 0, 1, ..., len(rng)-1. The pairs are
// sorted by domain; duplicate domain values keep the last pair. The
// default configuration interpolates linearly and extrapolates to the
// constant NaN.
func NewSignal(rng, domain []float64) (*Signal, error) {
	if domain == nil {
		domain = make([]float64, len(rng))
		for i := range domain {
			domain[i] = float64(i)
		}
	}
	if len(domain) != len(rng) {
		return nil, fmt.Errorf(
			"continuous: len(domain) = %d but len(range) = %d",
			len(domain), len(rng),
		)
	}

	s := &Signal{
		exMethod: interpolate.ExtrapConstant,
		left:     math.NaN(),
		right:    math.NaN(),
	}
	s.setPairs(domain, rng)
	if err := s.rebuild(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewSignalFromMap creates a signal from a domain-to-value mapping.
func NewSignalFromMap(data map[float64]float64) (*Signal, error) {
	domain := make([]float64, 0, len(data))
	for x := range data {
		domain = append(domain, x)
	}
	sort.Float64s(domain)
	rng := make([]float64, len(domain))
	for i, x := range domain {
		rng[i] = data[x]
	}
	return NewSignal(rng, domain)
}

// setPairs installs the sorted, deduplicated table. Later pairs win on
// duplicate domain values.
func (s *Signal) setPairs(domain, rng []float64) {
	type pair struct {
		x, y float64
	}
	ps := make([]pair, len(domain))
	for i := range domain {
		ps[i] = pair{domain[i], rng[i]}
	}
	sort.SliceStable(ps, func(i, j int) bool { return ps[i].x < ps[j].x })

	s.domain = s.domain[:0]
	s.rng = s.rng[:0]
	for _, p := range ps {
		if n := len(s.domain); n > 0 && s.domain[n-1] == p.x {
			s.rng[n-1] = p.y
			continue
		}
		s.domain = append(s.domain, p.x)
		s.rng = append(s.rng, p.y)
	}
}

// rebuild reconstructs the interpolator and extrapolator from the
// current table.
func (s *Signal) rebuild() error {
	s.interp, s.ex = nil, nil
	if len(s.domain) < 2 {
		return nil
	}

	interp, err := interpolate.New(s.method, s.domain, s.rng, s.opts)
	if err != nil {
		return err
	}
	ex, err := interpolate.NewExtrapolator(
		s.exMethod, interp, s.domain, s.rng, s.left, s.right,
	)
	if err != nil {
		return err
	}
	s.interp, s.ex = interp, ex
	return nil
}

// SetInterpolator selects the interpolation method. opts may be nil.
func (s *Signal) SetInterpolator(m interpolate.Method, opts *interpolate.Options) error {
	prev, prevOpts := s.method, s.opts
	s.method, s.opts = m, opts
	if err := s.rebuild(); err != nil {
		s.method, s.opts = prev, prevOpts
		s.rebuild()
		return err
	}
	return nil
}

// Interpolator returns the selected interpolation method.
func (s *Signal) Interpolator() interpolate.Method { return s.method }

// SetExtrapolator selects the extrapolation method. left and right are
// only consulted by interpolate.ExtrapConstant.
func (s *Signal) SetExtrapolator(m interpolate.ExtrapMethod, left, right float64) error {
	prev, prevL, prevR := s.exMethod, s.left, s.right
	s.exMethod, s.left, s.right = m, left, right
	if err := s.rebuild(); err != nil {
		s.exMethod, s.left, s.right = prev, prevL, prevR
		s.rebuild()
		return err
	}
	return nil
}

// Extrapolator returns the selected extrapolation method.
func (s *Signal) Extrapolator() interpolate.ExtrapMethod { return s.exMethod }

// Len returns the number of stored samples.
func (s *Signal) Len() int { return len(s.domain) }

// Domain returns a copy of the domain sample points.
func (s *Signal) Domain() []float64 {
	out := make([]float64, len(s.domain))
	copy(out, s.domain)
	return out
}

// Range returns a copy of the range values.
func (s *Signal) Range() []float64 {
	out := make([]float64, len(s.rng))
	copy(out, s.rng)
	return out
}

// SetDomain replaces the domain sample points, keeping range values
// paired by position.
func (s *Signal) SetDomain(domain []float64) error {
	if len(domain) != len(s.rng) {
		return fmt.Errorf(
			"continuous: len(domain) = %d but len(range) = %d",
			len(domain), len(s.rng),
		)
	}
	old, oldRng := s.domain, s.rng
	s.domain, s.rng = nil, nil
	s.setPairs(domain, oldRng)
	if err := s.rebuild(); err != nil {
		s.domain, s.rng = old, oldRng
		s.rebuild()
		return err
	}
	return nil
}

// SetRange replaces the range values.
func (s *Signal) SetRange(rng []float64) error {
	if len(rng) != len(s.domain) {
		return fmt.Errorf(
			"continuous: len(domain) = %d but len(range) = %d",
			len(s.domain), len(rng),
		)
	}
	old := s.rng
	s.rng = dup(rng)
	if err := s.rebuild(); err != nil {
		s.rng = old
		s.rebuild()
		return err
	}
	return nil
}

// At returns the sample pair at index i.
func (s *Signal) At(i int) (x, y float64) {
	return s.domain[i], s.rng[i]
}

// SetIndex assigns the range value at index i.
func (s *Signal) SetIndex(i int, y float64) error {
	if i < 0 || i >= len(s.rng) {
		return fmt.Errorf(
			"continuous: index %d out of range for %d samples", i, len(s.rng),
		)
	}
	s.rng[i] = y
	return s.rebuild()
}

// SetSlice assigns range values for indices [lo, hi).
func (s *Signal) SetSlice(lo, hi int, ys []float64) error {
	if lo < 0 || hi > len(s.rng) || lo > hi {
		return fmt.Errorf(
			"continuous: slice [%d, %d) out of range for %d samples",
			lo, hi, len(s.rng),
		)
	}
	if hi-lo != len(ys) {
		return fmt.Errorf(
			"continuous: slice [%d, %d) assigned %d values", lo, hi, len(ys),
		)
	}
	copy(s.rng[lo:hi], ys)
	return s.rebuild()
}

// Set assigns the range value at domain point x, inserting a new sample
// if x is not already stored. Insertion keeps the domain sorted. A
// sample the current interpolator rejects (e.g. one breaking uniformity
// under Sprague) leaves the signal unchanged.
func (s *Signal) Set(x, y float64) error {
	i := sort.SearchFloat64s(s.domain, x)
	if i < len(s.domain) && s.domain[i] == x {
		old := s.rng[i]
		s.rng[i] = y
		if err := s.rebuild(); err != nil {
			s.rng[i] = old
			s.rebuild()
			return err
		}
		return nil
	}

	oldDomain, oldRng := s.domain, s.rng
	domain := make([]float64, 0, len(oldDomain)+1)
	domain = append(domain, oldDomain[:i]...)
	domain = append(domain, x)
	domain = append(domain, oldDomain[i:]...)
	rng := make([]float64, 0, len(oldRng)+1)
	rng = append(rng, oldRng[:i]...)
	rng = append(rng, y)
	rng = append(rng, oldRng[i:]...)

	s.domain, s.rng = domain, rng
	if err := s.rebuild(); err != nil {
		s.domain, s.rng = oldDomain, oldRng
		s.rebuild()
		return err
	}
	return nil
}

// Eval evaluates the signal at x, interpolating inside the domain
// envelope and extrapolating outside it. An empty signal evaluates to
// NaN.
func (s *Signal) Eval(x float64) float64 {
	switch len(s.domain) {
	case 0:
		return math.NaN()
	case 1:
		if x == s.domain[0] {
			return s.rng[0]
		}
		if s.exMethod == interpolate.ExtrapConstant {
			if x < s.domain[0] {
				return s.left
			}
			return s.right
		}
		if s.exMethod == interpolate.ExtrapLinear {
			return s.rng[0]
		}
		return math.NaN()
	}
	return s.ex.Eval(x)
}

// EvalAll evaluates the signal at all the given x values. If an output
// array is given, the output is written to that array (the array is
// still returned as a convenience).
func (s *Signal) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = s.Eval(x)
	}
	return out[0]
}

// DomainDistance returns the fractional position of x between its two
// bracketing domain samples: 0 at the lower sample, 1 at the next.
// Queries outside the domain envelope return NaN.
func (s *Signal) DomainDistance(x float64) float64 {
	n := len(s.domain)
	if n < 2 || x < s.domain[0] || x > s.domain[n-1] || math.IsNaN(x) {
		return math.NaN()
	}
	i := sort.SearchFloat64s(s.domain, x)
	if i < n && s.domain[i] == x {
		if i == n-1 {
			return 1
		}
		return 0
	}
	i--
	return (x - s.domain[i]) / (s.domain[i+1] - s.domain[i])
}

// IsUniform reports whether the domain samples are equally spaced
// within floating tolerance.
func (s *Signal) IsUniform() bool {
	if len(s.domain) < 3 {
		return true
	}
	dx := s.domain[1] - s.domain[0]
	for i := 1; i < len(s.domain)-1; i++ {
		if math.Abs((s.domain[i+1]-s.domain[i])-dx) > 1e-10 {
			return false
		}
	}
	return true
}

// FillNaN replaces NaN range values. FillInterpolation re-interpolates
// them from the remaining valid samples, falling back to def when too
// few valid samples remain; FillConstant writes def directly.
func (s *Signal) FillNaN(method FillMethod, def float64) error {
	switch method {
	case FillConstant:
		for i, y := range s.rng {
			if math.IsNaN(y) {
				s.rng[i] = def
			}
		}
		return s.rebuild()
	case FillInterpolation:
		var vd, vr []float64
		for i, y := range s.rng {
			if !math.IsNaN(y) {
				vd = append(vd, s.domain[i])
				vr = append(vr, y)
			}
		}
		if len(vd) == len(s.rng) {
			return nil
		}
		if len(vd) < 2 {
			return s.FillNaN(FillConstant, def)
		}

		interp, err := interpolate.New(s.method, vd, vr, s.opts)
		if err != nil {
			// The configured method may be unsatisfiable over the
			// reduced table, e.g. Sprague below six points.
			interp, err = interpolate.NewLinear(vd, vr)
			if err != nil {
				return err
			}
		}
		ex, err := interpolate.NewExtrapolator(
			interpolate.ExtrapLinear, interp, vd, vr, math.NaN(), math.NaN(),
		)
		if err != nil {
			return err
		}
		for i, y := range s.rng {
			if math.IsNaN(y) {
				s.rng[i] = ex.Eval(s.domain[i])
			}
		}
		return s.rebuild()
	}
	return fmt.Errorf(
		"continuous: unknown fill method %d, accepted values are "+
			"[Interpolation Constant]", int(method),
	)
}

// ApplyScalar applies op between every range value and k. With inPlace
// the receiver is mutated and returned, otherwise a copy is built.
func (s *Signal) ApplyScalar(op Op, k float64, inPlace bool) (*Signal, error) {
	target := s
	if !inPlace {
		target = s.Clone()
	}
	for i, y := range target.rng {
		v, err := applyOp(op, y, k)
		if err != nil {
			return nil, err
		}
		target.rng[i] = v
	}
	if err := target.rebuild(); err != nil {
		return nil, err
	}
	return target, nil
}

// ApplySlice applies op elementwise between the range and ys, which
// must match the range length.
func (s *Signal) ApplySlice(op Op, ys []float64, inPlace bool) (*Signal, error) {
	if len(ys) != len(s.rng) {
		return nil, fmt.Errorf(
			"continuous: operand length %d does not match %d samples",
			len(ys), len(s.rng),
		)
	}
	target := s
	if !inPlace {
		target = s.Clone()
	}
	for i, y := range target.rng {
		v, err := applyOp(op, y, ys[i])
		if err != nil {
			return nil, err
		}
		target.rng[i] = v
	}
	if err := target.rebuild(); err != nil {
		return nil, err
	}
	return target, nil
}

// ApplySignal applies op elementwise between two signals. The operand's
// domain must match the receiver's exactly.
func (s *Signal) ApplySignal(op Op, other *Signal, inPlace bool) (*Signal, error) {
	if !float64sEqual(s.domain, other.domain) {
		return nil, fmt.Errorf(
			"continuous: signal domains do not match (%d and %d samples)",
			len(s.domain), len(other.domain),
		)
	}
	return s.ApplySlice(op, other.rng, inPlace)
}

// Equal reports whether two signals store the same table and use the
// same interpolation and extrapolation configuration. NaN values
// compare equal to each other.
func (s *Signal) Equal(other *Signal) bool {
	return float64sEqual(s.domain, other.domain) &&
		float64sEqual(s.rng, other.rng) &&
		s.method == other.method &&
		s.exMethod == other.exMethod
}

// Clone returns a deep copy of the signal.
func (s *Signal) Clone() *Signal {
	out := &Signal{
		domain:   dup(s.domain),
		rng:      dup(s.rng),
		method:   s.method,
		opts:     s.opts,
		exMethod: s.exMethod,
		left:     s.left,
		right:    s.right,
	}
	out.rebuild()
	return out
}

func (s *Signal) String() string {
	return fmt.Sprintf(
		"Signal(%d samples, [%g, %g], %s)",
		len(s.domain), s.start(), s.end(), s.method,
	)
}

func (s *Signal) start() float64 {
	if len(s.domain) == 0 {
		return math.NaN()
	}
	return s.domain[0]
}

func (s *Signal) end() float64 {
	if len(s.domain) == 0 {
		return math.NaN()
	}
	return s.domain[len(s.domain)-1]
}

func dup(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	return out
}

// float64sEqual compares slices treating NaN as equal to NaN.
func float64sEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] && !(math.IsNaN(a[i]) && math.IsNaN(b[i])) {
			return false
		}
	}
	return true
}
