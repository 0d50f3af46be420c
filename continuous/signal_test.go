package continuous

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colour-science/colour-go/interpolate"
)

func rampSignal(t *testing.T) *Signal {
	domain := make([]float64, 10)
	rng := make([]float64, 10)
	for i := range domain {
		domain[i] = float64(i)
		rng[i] = 10 * (domain[i] + 1)
	}
	s, err := NewSignal(rng, domain)
	assert.NoError(t, err)
	return s
}

func TestNewSignalValidation(t *testing.T) {
	_, err := NewSignal([]float64{1, 2}, []float64{0, 1, 2})
	assert.Error(t, err)

	s, err := NewSignal([]float64{5, 6, 7}, nil)
	assert.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, s.Domain(), "implicit domain")
}

func TestNewSignalSortsAndDeduplicates(t *testing.T) {
	s, err := NewSignal([]float64{30, 10, 20, 11}, []float64{3, 1, 2, 1})
	assert.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, s.Domain())
	assert.Equal(t, []float64{11, 20, 30}, s.Range(), "last write wins")
}

func TestSignalExactAtStoredPoints(t *testing.T) {
	s := rampSignal(t)
	for _, m := range []interpolate.Method{
		interpolate.MethodLinear,
		interpolate.MethodCubicSpline,
		interpolate.MethodSprague,
		interpolate.MethodPchip,
	} {
		assert.NoError(t, s.SetInterpolator(m, nil))
		for i := 0; i < s.Len(); i++ {
			x, y := s.At(i)
			assert.InDelta(t, y, s.Eval(x), 1e-10, "%s at x = %g", m, x)
		}
	}
}

func TestSignalEvalBetweenAndOutside(t *testing.T) {
	s := rampSignal(t)
	assert.InDelta(t, 15.0, s.Eval(0.5), 1e-12)

	// Default extrapolation is the constant NaN.
	assert.True(t, math.IsNaN(s.Eval(-1)))
	assert.True(t, math.IsNaN(s.Eval(10)))

	assert.NoError(t, s.SetExtrapolator(interpolate.ExtrapLinear, 0, 0))
	assert.InDelta(t, -9990.0, s.Eval(-1000), 1e-8)

	assert.NoError(t, s.SetExtrapolator(interpolate.ExtrapConstant, 0, 1))
	assert.Equal(t, 0.0, s.Eval(-1000))
	assert.Equal(t, 1.0, s.Eval(1000))
}

func TestEmptySignal(t *testing.T) {
	s, err := NewSignal(nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, s.Len())
	assert.True(t, math.IsNaN(s.Eval(0)))
	assert.True(t, math.IsNaN(s.DomainDistance(0)))
}

func TestSetInsertKeepsDomainSorted(t *testing.T) {
	s := rampSignal(t)
	assert.NoError(t, s.Set(0.5, 123))
	assert.NoError(t, s.Set(-3, 7))
	assert.NoError(t, s.Set(4.25, 99))
	assert.NoError(t, s.Set(0.5, 124), "overwrite, not duplicate")

	domain := s.Domain()
	assert.Equal(t, 13, len(domain))
	for i := 0; i < len(domain)-1; i++ {
		assert.Less(t, domain[i], domain[i+1], "sorted, duplicate-free")
	}
	assert.Equal(t, 124.0, s.Eval(0.5))
	assert.Equal(t, 7.0, s.Eval(-3))
}

func TestSetFailedInsertLeavesSignalIntact(t *testing.T) {
	s := rampSignal(t)
	assert.NoError(t, s.SetInterpolator(interpolate.MethodSprague, nil))

	// 0.5 breaks the uniform spacing Sprague requires; the insert must
	// be rolled back entirely.
	err := s.Set(0.5, 123)
	assert.Error(t, err)
	assert.Equal(t, 10, s.Len())
	assert.True(t, s.IsUniform())
	assert.InDelta(t, 40.0, s.Eval(3), 1e-10, "signal still evaluates")
	assert.True(t, math.IsNaN(s.Eval(-1)), "extrapolator still installed")

	// Uniform inserts are still accepted afterwards.
	assert.NoError(t, s.Set(10, 120))
	assert.Equal(t, 11, s.Len())
}

func TestSetIndexAndSlice(t *testing.T) {
	s := rampSignal(t)
	assert.NoError(t, s.SetIndex(0, -5))
	assert.Equal(t, -5.0, s.Range()[0])
	assert.Error(t, s.SetIndex(10, 0))

	assert.NoError(t, s.SetSlice(2, 5, []float64{1, 2, 3}))
	assert.Equal(t, []float64{1, 2, 3}, s.Range()[2:5])
	assert.Error(t, s.SetSlice(2, 5, []float64{1, 2}))
	assert.Error(t, s.SetSlice(8, 11, []float64{1, 2, 3}))
}

func TestDomainDistance(t *testing.T) {
	s := rampSignal(t)
	assert.InDelta(t, 0.25, s.DomainDistance(4.25), 1e-12)
	assert.InDelta(t, 0.0, s.DomainDistance(4), 1e-12)
	assert.InDelta(t, 1.0, s.DomainDistance(9), 1e-12)
	assert.True(t, math.IsNaN(s.DomainDistance(9.5)))
	assert.True(t, math.IsNaN(s.DomainDistance(-0.5)))
}

func TestIsUniform(t *testing.T) {
	s := rampSignal(t)
	assert.True(t, s.IsUniform())
	assert.NoError(t, s.Set(0.5, 15))
	assert.False(t, s.IsUniform())
}

func TestFillNaN(t *testing.T) {
	s, _ := NewSignal([]float64{10, math.NaN(), 30, math.NaN(), 50}, nil)

	c := s.Clone()
	assert.NoError(t, c.FillNaN(FillConstant, -1))
	assert.Equal(t, []float64{10, -1, 30, -1, 50}, c.Range())

	assert.NoError(t, s.FillNaN(FillInterpolation, 0))
	assert.InDelta(t, 20.0, s.Range()[1], 1e-12)
	assert.InDelta(t, 40.0, s.Range()[3], 1e-12)
}

func TestFillNaNDegenerate(t *testing.T) {
	s, _ := NewSignal([]float64{math.NaN(), 3, math.NaN()}, nil)
	assert.NoError(t, s.FillNaN(FillInterpolation, 9))
	assert.Equal(t, []float64{9, 3, 9}, s.Range(),
		"too few valid points falls back to the constant")

	assert.Error(t, s.FillNaN(FillMethod(9), 0))
}

func TestArithmeticIdentities(t *testing.T) {
	s := rampSignal(t)

	plus, err := s.ApplyScalar(Add, 17.5, false)
	assert.NoError(t, err)
	back, err := plus.ApplyScalar(Sub, 17.5, false)
	assert.NoError(t, err)
	assert.True(t, s.Equal(back), "(s + k) - k == s")

	times, _ := s.ApplyScalar(Mul, 1, false)
	assert.True(t, s.Equal(times), "s * 1 == s")

	pow, _ := s.ApplyScalar(Pow, 1, false)
	assert.True(t, s.Equal(pow), "s ** 1 == s")

	// Out-of-place never mutates the receiver.
	assert.Equal(t, 10.0, s.Range()[0])
}

func TestArithmeticInPlace(t *testing.T) {
	s := rampSignal(t)
	out, err := s.ApplyScalar(Mul, 2, true)
	assert.NoError(t, err)
	assert.Same(t, s, out)
	assert.Equal(t, 20.0, s.Range()[0])

	// The interpolator tracks the mutation.
	assert.InDelta(t, 30.0, s.Eval(0.5), 1e-12)
}

func TestArithmeticWithSignalOperand(t *testing.T) {
	s := rampSignal(t)
	other := rampSignal(t)

	sum, err := s.ApplySignal(Add, other, false)
	assert.NoError(t, err)
	assert.Equal(t, 20.0, sum.Range()[0])
	assert.Equal(t, 200.0, sum.Range()[9])

	mismatched, _ := NewSignal([]float64{1, 2, 3}, []float64{0, 1, 2})
	_, err = s.ApplySignal(Add, mismatched, false)
	assert.Error(t, err, "mismatched domains")
}

func TestArithmeticSliceOperand(t *testing.T) {
	s, _ := NewSignal([]float64{2, 4, 8}, nil)
	out, err := s.ApplySlice(Div, []float64{2, 2, 2}, false)
	assert.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 4}, out.Range())

	_, err = s.ApplySlice(Div, []float64{2}, false)
	assert.Error(t, err)

	_, err = s.ApplyScalar(Op(42), 1, false)
	assert.Error(t, err)
}

func TestDivisionByZeroPropagatesInf(t *testing.T) {
	s, _ := NewSignal([]float64{1, -1, 0}, nil)
	out, err := s.ApplyScalar(Div, 0, false)
	assert.NoError(t, err)
	assert.True(t, math.IsInf(out.Range()[0], 1))
	assert.True(t, math.IsInf(out.Range()[1], -1))
	assert.True(t, math.IsNaN(out.Range()[2]))
}

func TestSignalFromMap(t *testing.T) {
	s, err := NewSignalFromMap(map[float64]float64{2: 20, 0: 0, 1: 10})
	assert.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, s.Domain())
	assert.Equal(t, []float64{0, 10, 20}, s.Range())
}

func TestSpragueRequiresSixPointsOnMutation(t *testing.T) {
	s, _ := NewSignal([]float64{1, 2, 3, 4, 5}, nil)
	assert.Error(t, s.SetInterpolator(interpolate.MethodSprague, nil))
	// The failed selection must not corrupt the signal.
	assert.InDelta(t, 1.5, s.Eval(0.5), 1e-12)
}

func TestSingleSampleSignal(t *testing.T) {
	s, _ := NewSignal([]float64{7}, []float64{3})
	assert.Equal(t, 7.0, s.Eval(3))
	assert.True(t, math.IsNaN(s.Eval(2)), "constant NaN default")

	assert.NoError(t, s.SetExtrapolator(interpolate.ExtrapConstant, -1, 1))
	assert.Equal(t, -1.0, s.Eval(2))
	assert.Equal(t, 1.0, s.Eval(4))
}
