package lut

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func cubicCurve(n int) *Table1D {
	data := make([][3]float64, n)
	for i := range data {
		v := float64(i) / float64(n-1)
		data[i] = [3]float64{v * v * v, v * v, v}
	}
	t, _ := New1D(data)
	return t
}

func TestNew1DValidation(t *testing.T) {
	_, err := New1D(nil)
	assert.Error(t, err)
	_, err = New1D([][3]float64{{0, 0, 0}})
	assert.Error(t, err)
}

func TestIdentity1DCurve(t *testing.T) {
	curve := Identity1D(16)
	for _, v := range []float64{0, 0.1, 0.25, 0.6180339887, 0.9, 1} {
		out := curve.Eval([3]float64{v, v, v})
		for c := 0; c < 3; c++ {
			assert.InDelta(t, v, out[c], 1e-12, "v = %g channel %d", v, c)
		}
	}
}

func TestCurveNodesExact(t *testing.T) {
	curve := cubicCurve(9)
	for i := 0; i < curve.Size(); i++ {
		v := float64(i) / 8
		want := curve.Data()[i]
		got := curve.Eval([3]float64{v, v, v})
		for c := 0; c < 3; c++ {
			assert.InDelta(t, want[c], got[c], 1e-12, "node %d channel %d", i, c)
		}
	}
}

// The four-node Lagrange window reproduces polynomials up to degree 3
// exactly, so a cubic curve evaluates without sampling error anywhere.
func TestCurveReproducesCubic(t *testing.T) {
	curve := cubicCurve(9)
	for _, v := range []float64{0.05, 0.3, 0.44, 0.71, 0.97} {
		out := curve.Eval([3]float64{v, v, v})
		assert.InDelta(t, v*v*v, out[0], 1e-12, "v = %g", v)
		assert.InDelta(t, v*v, out[1], 1e-12, "v = %g", v)
		assert.InDelta(t, v, out[2], 1e-12, "v = %g", v)
	}
}

func TestCurveSmallTables(t *testing.T) {
	// Two nodes degrade to linear interpolation.
	lin, err := New1D([][3]float64{{0, 0, 0}, {1, 2, 3}})
	assert.NoError(t, err)
	out := lin.Eval([3]float64{0.5, 0.5, 0.5})
	assert.Equal(t, [3]float64{0.5, 1, 1.5}, out)

	// Three nodes use the full quadratic window.
	quad, err := New1D([][3]float64{{0, 0, 0}, {0.25, 0.25, 0.25}, {1, 1, 1}})
	assert.NoError(t, err)
	out = quad.Eval([3]float64{0.25, 0.25, 0.25})
	for c := 0; c < 3; c++ {
		assert.InDelta(t, 0.0625, out[c], 1e-12, "x^2 through 3 nodes")
	}
}

func TestCurveClamping(t *testing.T) {
	curve := cubicCurve(9)
	lo := curve.Eval([3]float64{-2, math.NaN(), 0})
	assert.Equal(t, 0.0, lo[0])
	assert.Equal(t, 0.0, lo[1], "NaN clamps to 0")

	hi := curve.Eval([3]float64{5, 5, 5})
	assert.InDelta(t, 1.0, hi[0], 1e-12)
}

func TestCurveApply(t *testing.T) {
	curve := Identity1D(4)
	pts := [][3]float64{{0, 0.5, 1}, {0.25, 0.25, 0.25}}
	out := curve.Apply(pts)
	assert.Equal(t, len(pts), len(out))
	for i := range pts {
		for c := 0; c < 3; c++ {
			assert.InDelta(t, pts[i][c], out[i][c], 1e-12)
		}
	}
}
