package continuous

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/colour-science/colour-go/interpolate"
)

// rampMulti is the three-channel fixture: channel k holds
// 10*(domain+1) + 10k over domain 0..9.
func rampMulti(t *testing.T) *MultiSignals {
	matrix := make([][]float64, 10)
	domain := make([]float64, 10)
	for i := range matrix {
		domain[i] = float64(i)
		base := 10 * (domain[i] + 1)
		matrix[i] = []float64{base, base + 10, base + 20}
	}
	ms, err := NewMultiSignals(matrix, domain, []string{"x", "y", "z"})
	assert.NoError(t, err)
	return ms
}

func TestMultiSignalsConstruction(t *testing.T) {
	ms := rampMulti(t)
	assert.Equal(t, 3, ms.NumSignals())
	assert.Equal(t, 10, ms.Len())
	assert.Equal(t, []string{"x", "y", "z"}, ms.Labels())

	_, err := NewMultiSignals([][]float64{{1, 2}, {3}}, nil, nil)
	assert.Error(t, err, "ragged matrix")

	_, err = NewMultiSignals([][]float64{{1}, {2}}, []float64{0}, nil)
	assert.Error(t, err, "domain length mismatch")
}

func TestMultiSignalsDefaultLabels(t *testing.T) {
	ms, err := NewMultiSignals([][]float64{{1, 2}, {3, 4}}, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{"0", "1"}, ms.Labels())
}

func TestLabelCollisionSuffix(t *testing.T) {
	ms, err := NewMultiSignals(
		[][]float64{{1, 2, 3}, {4, 5, 6}}, nil, []string{"a", "a", "a"},
	)
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "a - 1", "a - 2"}, ms.Labels())
}

// Reconstructing MultiSignals from a signal's own domain and range
// preserves both arrays exactly.
func TestRoundTripConstruction(t *testing.T) {
	s := rampSignal(t)
	matrix := make([][]float64, s.Len())
	for i := range matrix {
		_, y := s.At(i)
		matrix[i] = []float64{y}
	}
	ms, err := NewMultiSignals(matrix, s.Domain(), nil)
	assert.NoError(t, err)

	child, ok := ms.SignalOf("0")
	assert.True(t, ok)
	assert.Equal(t, s.Domain(), child.Domain())
	assert.Equal(t, s.Range(), child.Range())
	assert.True(t, s.Equal(child))
}

func TestMultiSignalsLinearExtrapolation(t *testing.T) {
	ms := rampMulti(t)
	assert.NoError(t, ms.SetExtrapolator(interpolate.ExtrapLinear, 0, 0))

	got := ms.Eval(-1000)
	want := []float64{-9990, -9980, -9970}
	for j := range want {
		assert.InDelta(t, want[j], got[j], 1e-8, "channel %d", j)
	}
}

func TestMultiSignalsConstantExtrapolation(t *testing.T) {
	ms := rampMulti(t)
	assert.NoError(t, ms.SetExtrapolator(interpolate.ExtrapConstant, 0, 1))

	rows := ms.EvalAll([]float64{-1000, 1000})
	assert.Equal(t, []float64{0, 0, 0}, rows[0])
	assert.Equal(t, []float64{1, 1, 1}, rows[1])
}

func TestMultiSignalsEval(t *testing.T) {
	ms := rampMulti(t)
	got := ms.Eval(0.5)
	if diff := cmp.Diff([]float64{15, 25, 35}, got); diff != "" {
		t.Errorf("Eval(0.5) mismatch (-want +got):\n%s", diff)
	}
}

func TestMultiSignalsFromMap(t *testing.T) {
	ms, err := NewMultiSignalsFromMap(map[float64][]float64{
		10: {1, 4},
		0:  {0, 2},
		20: {2, 6},
	}, []string{"a", "b"})
	assert.NoError(t, err)
	assert.Equal(t, []float64{0, 10, 20}, ms.Domain())

	b, _ := ms.SignalOf("b")
	assert.Equal(t, []float64{2, 4, 6}, b.Range())
}

func TestMultiSignalsFromSignalsUnion(t *testing.T) {
	a, _ := NewSignal([]float64{0, 10, 20}, []float64{0, 1, 2})
	b, _ := NewSignal([]float64{5, 15}, []float64{0.5, 1.5})

	ms, err := NewMultiSignalsFromSignals([]*Signal{a, b}, []string{"a", "b"})
	assert.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1, 1.5, 2}, ms.Domain())

	ua, _ := ms.SignalOf("a")
	assert.InDelta(t, 5.0, ua.Range()[1], 1e-12, "re-interpolated sample")

	ub, _ := ms.SignalOf("b")
	// Union points outside b's envelope follow b's extrapolation, the
	// constant NaN by default.
	assert.True(t, math.IsNaN(ub.Range()[0]))
	assert.InDelta(t, 10.0, ub.Range()[2], 1e-12)
	assert.True(t, math.IsNaN(ub.Range()[4]))
}

func TestMultiSignalsSetAndSetIndex(t *testing.T) {
	ms := rampMulti(t)
	assert.NoError(t, ms.Set(0.5, []float64{1, 2, 3}))
	assert.Equal(t, 11, ms.Len())
	assert.False(t, ms.IsUniform())
	assert.Equal(t, []float64{1, 2, 3}, ms.Eval(0.5))

	assert.Error(t, ms.Set(7, []float64{1, 2}))

	assert.NoError(t, ms.SetIndex(0, []float64{9, 9, 9}))
	assert.Equal(t, []float64{9, 9, 9}, ms.Eval(0))
}

func TestMultiSignalsSetFailedInsertKeepsChannelsAligned(t *testing.T) {
	ms := rampMulti(t)

	// Only channel "y" is Sprague, so a non-uniform insert succeeds on
	// "x" and fails on "y"; "x" must be restored.
	y, ok := ms.SignalOf("y")
	assert.True(t, ok)
	assert.NoError(t, y.SetInterpolator(interpolate.MethodSprague, nil))

	err := ms.Set(0.5, []float64{1, 2, 3})
	assert.Error(t, err)
	assert.Equal(t, 10, ms.Len())
	for _, label := range ms.Labels() {
		child, _ := ms.SignalOf(label)
		assert.Equal(t, 10, child.Len(), "channel %q rolled back", label)
	}
	v := ms.Eval(0.5)
	assert.InDelta(t, 15.0, v[0], 1e-9, "still evaluates")
	assert.InDelta(t, 25.0, v[1], 1e-9)
	assert.InDelta(t, 35.0, v[2], 1e-9)

	// A uniform insert is still accepted afterwards.
	assert.NoError(t, ms.Set(10, []float64{120, 130, 140}))
	assert.Equal(t, 11, ms.Len())
}

func TestMultiSignalsSetDomainResync(t *testing.T) {
	ms := rampMulti(t)
	domain := make([]float64, 10)
	for i := range domain {
		domain[i] = 100 + float64(i)
	}
	assert.NoError(t, ms.SetDomain(domain))

	for _, label := range ms.Labels() {
		child, _ := ms.SignalOf(label)
		assert.Equal(t, domain, child.Domain(), "child %q resynced", label)
	}
	assert.Equal(t, []float64{10, 20, 30}, ms.Eval(100))
}

func TestMultiSignalsArithmetic(t *testing.T) {
	ms := rampMulti(t)

	plus, err := ms.ApplyScalar(Add, 5, false)
	assert.NoError(t, err)
	back, err := plus.ApplyScalar(Sub, 5, false)
	assert.NoError(t, err)
	assert.True(t, ms.Equal(back))

	sum, err := ms.ApplyMulti(Add, ms, false)
	assert.NoError(t, err)
	assert.Equal(t, []float64{20, 40, 60}, sum.Eval(0))

	other, _ := NewMultiSignals([][]float64{{1}, {2}}, nil, nil)
	_, err = ms.ApplyMulti(Add, other, false)
	assert.Error(t, err, "channel count mismatch")
}

func TestMultiSignalsFillNaN(t *testing.T) {
	ms, _ := NewMultiSignals([][]float64{
		{1, 10}, {math.NaN(), 20}, {3, math.NaN()},
	}, nil, nil)
	assert.NoError(t, ms.FillNaN(FillInterpolation, 0))

	first, _ := ms.SignalOf("0")
	second, _ := ms.SignalOf("1")
	assert.InDelta(t, 2.0, first.Range()[1], 1e-12)
	assert.InDelta(t, 30.0, second.Range()[2], 1e-12,
		"trailing NaN filled by linear extrapolation of valid samples")
}

func TestMultiSignalsCloneIsDeep(t *testing.T) {
	ms := rampMulti(t)
	cl := ms.Clone()
	assert.True(t, ms.Equal(cl))

	assert.NoError(t, cl.SetIndex(0, []float64{0, 0, 0}))
	assert.False(t, ms.Equal(cl))
	assert.Equal(t, []float64{10, 20, 30}, ms.Eval(0), "original untouched")
}
