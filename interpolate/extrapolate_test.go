package interpolate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearExtrapolation(t *testing.T) {
	domain, rng := fixture()
	lin, _ := NewLinear(domain, rng)
	ex, err := NewExtrapolator(
		ExtrapLinear, lin, domain, rng, math.NaN(), math.NaN(),
	)
	assert.NoError(t, err)

	// Boundary slope is 10 on both sides of the fixture ramp.
	assert.InDelta(t, -9990.0, ex.Eval(-1000), 1e-8)
	assert.InDelta(t, 10010.0, ex.Eval(1000), 1e-8)

	// In-range queries delegate to the interpolator.
	assert.InDelta(t, 55.0, ex.Eval(4.5), 1e-12)
	assert.InDelta(t, 10.0, ex.Eval(0), 1e-12)
}

func TestConstantExtrapolation(t *testing.T) {
	domain, rng := fixture()
	lin, _ := NewLinear(domain, rng)
	ex, _ := NewExtrapolator(ExtrapConstant, lin, domain, rng, 0, 1)

	assert.Equal(t, 0.0, ex.Eval(-1000))
	assert.Equal(t, 1.0, ex.Eval(1000))
	assert.InDelta(t, 55.0, ex.Eval(4.5), 1e-12)
}

func TestConstantExtrapolationDefaultsToNaN(t *testing.T) {
	domain, rng := fixture()
	lin, _ := NewLinear(domain, rng)
	ex, _ := NewExtrapolator(
		ExtrapConstant, lin, domain, rng, math.NaN(), math.NaN(),
	)

	assert.True(t, math.IsNaN(ex.Eval(-1)))
	assert.True(t, math.IsNaN(ex.Eval(10)))
}

func TestNaNExtrapolation(t *testing.T) {
	domain, rng := fixture()
	lin, _ := NewLinear(domain, rng)
	ex, _ := NewExtrapolator(ExtrapNaN, lin, domain, rng, 0, 1)

	assert.True(t, math.IsNaN(ex.Eval(-0.1)))
	assert.True(t, math.IsNaN(ex.Eval(9.1)))
	assert.InDelta(t, 40.0, ex.Eval(3), 1e-12)
}

func TestExtrapolatorEvalAll(t *testing.T) {
	domain, rng := fixture()
	lin, _ := NewLinear(domain, rng)
	ex, _ := NewExtrapolator(ExtrapConstant, lin, domain, rng, 0, 1)

	out := ex.EvalAll([]float64{-1000, 4.5, 1000})
	assert.Equal(t, 0.0, out[0])
	assert.InDelta(t, 55.0, out[1], 1e-12)
	assert.Equal(t, 1.0, out[2])
}

func TestParseExtrapMethod(t *testing.T) {
	m, err := ParseExtrapMethod("Constant")
	assert.NoError(t, err)
	assert.Equal(t, ExtrapConstant, m)

	_, err = ParseExtrapMethod("Cubic")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Cubic")
}
