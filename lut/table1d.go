package lut

import (
	"fmt"
	"math"

	"github.com/colour-science/colour-go/interpolate"
)

//////////////////////////
// 1D Curve Tables      //
//////////////////////////

// Table1D is a per-channel tone curve sampled uniformly on [0, 1],
// one RGB triplet per node. Lookups interpolate a four-node window
// with Lagrange basis coefficients, falling back to the full table
// when fewer than four nodes exist.
type Table1D struct {
	data [][3]float64
}

// New1D creates a curve table. data must hold at least 2 nodes.
func New1D(data [][3]float64) (*Table1D, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf(
			"lut: curve needs at least 2 nodes, got %d", len(data),
		)
	}
	return &Table1D{data: data}, nil
}

// Identity1D creates a curve table that maps every component to
// itself.
func Identity1D(size int) *Table1D {
	data := make([][3]float64, size)
	for i := range data {
		v := float64(i) / float64(size-1)
		data[i] = [3]float64{v, v, v}
	}
	t, _ := New1D(data)
	return t
}

func (t *Table1D) Size() int { return len(t.data) }

// Data returns a copy of the stored nodes.
func (t *Table1D) Data() [][3]float64 {
	out := make([][3]float64, len(t.data))
	copy(out, t.data)
	return out
}

// Eval maps each component of p through its channel's curve. Inputs
// are clamped to [0, 1].
func (t *Table1D) Eval(p [3]float64) [3]float64 {
	n := len(t.data)

	degree := 3
	if n-1 < degree {
		degree = n - 1
	}

	var out [3]float64
	for c := 0; c < 3; c++ {
		x := clamp01(p[c]) * float64(n-1)

		// Window start: the node before the bracketing pair, clamped
		// so degree+1 nodes fit.
		i0 := int(math.Floor(x)) - (degree-1)/2
		if i0 < 0 {
			i0 = 0
		}
		if i0 > n-1-degree {
			i0 = n - 1 - degree
		}

		cs := interpolate.LagrangeCoefficients(x-float64(i0), degree)
		sum := 0.0
		for j, coeff := range cs {
			sum += coeff * t.data[i0+j][c]
		}
		out[c] = sum
	}
	return out
}

// Apply maps every point through the curve.
func (t *Table1D) Apply(pts [][3]float64) [][3]float64 {
	out := make([][3]float64, len(pts))
	for i, p := range pts {
		out[i] = t.Eval(p)
	}
	return out
}
