// Package lut implements interpolated lookups into regular 3D colour
// cube tables: trilinear blending of the eight surrounding corners and
// the tetrahedral variant that splits each cell into six tetrahedra to
// avoid blending artifacts along the cube diagonals.
package lut

import (
	"fmt"
	"math"
)

// Method selects the cube interpolation algorithm.
type Method int

const (
	Trilinear Method = iota
	Tetrahedral
)

var methodNames = []string{"Trilinear", "Tetrahedral"}

func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

// ParseMethod converts a method name to its Method value.
func ParseMethod(name string) (Method, error) {
	for i, n := range methodNames {
		if n == name {
			return Method(i), nil
		}
	}
	return 0, fmt.Errorf(
		"lut: unknown method %q, accepted values are %v", name, methodNames,
	)
}

// Table3D is a size^3 cube of RGB triplets indexed by coordinates in
// [0, 1]^3, red index varying fastest.
type Table3D struct {
	size int
	data [][3]float64
}

// New creates a cube table of the given edge size. data must hold
// size^3 triplets.
func New(size int, data [][3]float64) (*Table3D, error) {
	if size < 2 {
		return nil, fmt.Errorf("lut: cube size must be at least 2, got %d", size)
	}
	if len(data) != size*size*size {
		return nil, fmt.Errorf(
			"lut: cube of size %d needs %d entries, got %d",
			size, size*size*size, len(data),
		)
	}
	return &Table3D{size: size, data: data}, nil
}

// Identity creates a cube table that maps every coordinate to itself.
func Identity(size int) *Table3D {
	data := make([][3]float64, size*size*size)
	idx := 0
	for b := 0; b < size; b++ {
		for g := 0; g < size; g++ {
			for r := 0; r < size; r++ {
				s := float64(size - 1)
				data[idx] = [3]float64{
					float64(r) / s, float64(g) / s, float64(b) / s,
				}
				idx++
			}
		}
	}
	t, _ := New(size, data)
	return t
}

func (t *Table3D) Size() int { return t.size }

// Data returns a copy of the stored triplets, red index varying
// fastest.
func (t *Table3D) Data() [][3]float64 {
	out := make([][3]float64, len(t.data))
	copy(out, t.data)
	return out
}

// At returns the stored triplet at integer grid coordinates.
func (t *Table3D) At(r, g, b int) [3]float64 {
	return t.data[r+t.size*(g+t.size*b)]
}

func clamp01(x float64) float64 {
	if math.IsNaN(x) || x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	return x
}

// cell locates the cube cell containing p and the fractional offsets
// within it. Inputs are clamped to [0, 1].
func (t *Table3D) cell(p [3]float64) (x0, y0, z0, x1, y1, z1 int, fx, fy, fz float64) {
	s := float64(t.size - 1)

	px := clamp01(p[0]) * s
	py := clamp01(p[1]) * s
	pz := clamp01(p[2]) * s

	x0, y0, z0 = int(px), int(py), int(pz)
	fx, fy, fz = px-float64(x0), py-float64(y0), pz-float64(z0)

	x1, y1, z1 = x0, y0, z0
	if x0 < t.size-1 {
		x1 = x0 + 1
	}
	if y0 < t.size-1 {
		y1 = y0 + 1
	}
	if z0 < t.size-1 {
		z1 = z0 + 1
	}
	return x0, y0, z0, x1, y1, z1, fx, fy, fz
}

// Eval interpolates the cube at p with the given method.
func (t *Table3D) Eval(m Method, p [3]float64) ([3]float64, error) {
	switch m {
	case Trilinear:
		return t.Trilinear(p), nil
	case Tetrahedral:
		return t.Tetrahedral(p), nil
	}
	return [3]float64{}, fmt.Errorf(
		"lut: unknown method %d, accepted values are %v", int(m), methodNames,
	)
}

// Apply interpolates the cube at every point with the given method.
func (t *Table3D) Apply(m Method, pts [][3]float64) ([][3]float64, error) {
	if m != Trilinear && m != Tetrahedral {
		return nil, fmt.Errorf(
			"lut: unknown method %d, accepted values are %v", int(m), methodNames,
		)
	}
	out := make([][3]float64, len(pts))
	for i, p := range pts {
		out[i], _ = t.Eval(m, p)
	}
	return out, nil
}

// Trilinear blends the eight corners of the cell containing p.
func (t *Table3D) Trilinear(p [3]float64) [3]float64 {
	x0, y0, z0, x1, y1, z1, fx, fy, fz := t.cell(p)

	var out [3]float64
	for ch := 0; ch < 3; ch++ {
		c000 := t.At(x0, y0, z0)[ch]
		c100 := t.At(x1, y0, z0)[ch]
		c010 := t.At(x0, y1, z0)[ch]
		c110 := t.At(x1, y1, z0)[ch]
		c001 := t.At(x0, y0, z1)[ch]
		c101 := t.At(x1, y0, z1)[ch]
		c011 := t.At(x0, y1, z1)[ch]
		c111 := t.At(x1, y1, z1)[ch]

		c00 := c000 + (c100-c000)*fx
		c10 := c010 + (c110-c010)*fx
		c01 := c001 + (c101-c001)*fx
		c11 := c011 + (c111-c011)*fx

		c0 := c00 + (c10-c00)*fy
		c1 := c01 + (c11-c01)*fy

		out[ch] = c0 + (c1-c0)*fz
	}
	return out
}

// Tetrahedral orders the fractional offsets to pick one of the six
// tetrahedra partitioning the cell, then blends its four corners. The
// case table follows the Sakamoto construction used by ICC CMMs.
func (t *Table3D) Tetrahedral(p [3]float64) [3]float64 {
	x0, y0, z0, x1, y1, z1, fx, fy, fz := t.cell(p)

	var out [3]float64
	for ch := 0; ch < 3; ch++ {
		c000 := t.At(x0, y0, z0)[ch]
		c100 := t.At(x1, y0, z0)[ch]
		c010 := t.At(x0, y1, z0)[ch]
		c110 := t.At(x1, y1, z0)[ch]
		c001 := t.At(x0, y0, z1)[ch]
		c101 := t.At(x1, y0, z1)[ch]
		c011 := t.At(x0, y1, z1)[ch]
		c111 := t.At(x1, y1, z1)[ch]

		var c1, c2, c3 float64
		switch {
		case fx >= fy && fy >= fz:
			c1 = c100 - c000
			c2 = c110 - c100
			c3 = c111 - c110
		case fx >= fz && fz >= fy:
			c1 = c100 - c000
			c2 = c111 - c101
			c3 = c101 - c100
		case fz >= fx && fx >= fy:
			c1 = c101 - c001
			c2 = c111 - c101
			c3 = c001 - c000
		case fy >= fx && fx >= fz:
			c1 = c110 - c010
			c2 = c010 - c000
			c3 = c111 - c110
		case fy >= fz && fz >= fx:
			c1 = c111 - c011
			c2 = c010 - c000
			c3 = c011 - c010
		default: // fz >= fy && fy >= fx
			c1 = c111 - c011
			c2 = c011 - c001
			c3 = c001 - c000
		}

		out[ch] = c000 + c1*fx + c2*fy + c3*fz
	}
	return out
}
