package lut

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// cube2 is a single-cell cube with distinct, non-planar corner values.
func cube2() *Table3D {
	data := make([][3]float64, 8)
	idx := 0
	for b := 0; b < 2; b++ {
		for g := 0; g < 2; g++ {
			for r := 0; r < 2; r++ {
				v := float64(r) + 2*float64(g) + 4*float64(b)
				data[idx] = [3]float64{v, v * v, math.Sqrt(v + 1)}
				idx++
			}
		}
	}
	t, _ := New(2, data)
	return t
}

func TestNewValidation(t *testing.T) {
	_, err := New(1, make([][3]float64, 1))
	assert.Error(t, err, "size below 2")

	_, err = New(3, make([][3]float64, 26))
	assert.Error(t, err, "truncated data")

	_, err = New(3, make([][3]float64, 27))
	assert.NoError(t, err)
}

func TestCornersExact(t *testing.T) {
	cube := cube2()
	for b := 0; b < 2; b++ {
		for g := 0; g < 2; g++ {
			for r := 0; r < 2; r++ {
				p := [3]float64{float64(r), float64(g), float64(b)}
				want := cube.At(r, g, b)

				tri := cube.Trilinear(p)
				tet := cube.Tetrahedral(p)
				for ch := 0; ch < 3; ch++ {
					assert.Equal(t, want[ch], tri[ch], "trilinear corner %v", p)
					assert.Equal(t, want[ch], tet[ch], "tetrahedral corner %v", p)
				}
			}
		}
	}
}

func TestMethodsDifferInsideCell(t *testing.T) {
	cube := cube2()
	p := [3]float64{0.25, 0.5, 0.75}
	tri := cube.Trilinear(p)
	tet := cube.Tetrahedral(p)
	assert.NotEqual(t, tri[1], tet[1],
		"nonlinear corner data must split the methods off-diagonal")

	// On the main diagonal both methods blend the same two corners.
	d := [3]float64{0.3, 0.3, 0.3}
	tri = cube.Trilinear(d)
	tet = cube.Tetrahedral(d)
	for ch := 0; ch < 3; ch++ {
		assert.InDelta(t, tri[ch], tet[ch], 1e-12, "diagonal channel %d", ch)
	}
}

func TestIdentityCube(t *testing.T) {
	cube := Identity(5)
	pts := [][3]float64{
		{0, 0, 0}, {1, 1, 1}, {0.5, 0.25, 0.75}, {0.123, 0.456, 0.789},
	}
	for _, m := range []Method{Trilinear, Tetrahedral} {
		out, err := cube.Apply(m, pts)
		assert.NoError(t, err)
		for i, p := range pts {
			for ch := 0; ch < 3; ch++ {
				assert.InDelta(t, p[ch], out[i][ch], 1e-12,
					"%s at %v", m.String(), p)
			}
		}
	}
}

func TestInputClamping(t *testing.T) {
	cube := Identity(3)
	out := cube.Trilinear([3]float64{-0.5, 1.5, math.NaN()})
	assert.Equal(t, [3]float64{0, 1, 0}, out)
}

func TestGridNodesExact(t *testing.T) {
	// A larger cube: every node of every cell must be reproduced.
	size := 4
	data := make([][3]float64, size*size*size)
	idx := 0
	for b := 0; b < size; b++ {
		for g := 0; g < size; g++ {
			for r := 0; r < size; r++ {
				data[idx] = [3]float64{
					float64(idx), float64(idx * idx), 1 / float64(idx+1),
				}
				idx++
			}
		}
	}
	cube, _ := New(size, data)

	s := float64(size - 1)
	for b := 0; b < size; b++ {
		for g := 0; g < size; g++ {
			for r := 0; r < size; r++ {
				p := [3]float64{float64(r) / s, float64(g) / s, float64(b) / s}
				want := cube.At(r, g, b)
				tri := cube.Trilinear(p)
				tet := cube.Tetrahedral(p)
				for ch := 0; ch < 3; ch++ {
					assert.InDelta(t, want[ch], tri[ch], 1e-12)
					assert.InDelta(t, want[ch], tet[ch], 1e-12)
				}
			}
		}
	}
}

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("Tetrahedral")
	assert.NoError(t, err)
	assert.Equal(t, Tetrahedral, m)

	_, err = ParseMethod("Quadrilinear")
	assert.Error(t, err)

	_, err = cube2().Eval(Method(7), [3]float64{0, 0, 0})
	assert.Error(t, err)
}
