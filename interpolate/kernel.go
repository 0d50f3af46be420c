package interpolate

import (
	"fmt"
	"math"
)

// KernelType selects the weighting kernel used by the Kernel
// interpolator.
type KernelType int

const (
	KernelNearestNeighbour KernelType = iota
	KernelLinear
	KernelSinc
	KernelLanczos
	KernelCardinalSpline
)

var kernelNames = []string{
	"NearestNeighbour", "Linear", "Sinc", "Lanczos", "CardinalSpline",
}

func (k KernelType) String() string {
	if k < 0 || int(k) >= len(kernelNames) {
		return fmt.Sprintf("KernelType(%d)", int(k))
	}
	return kernelNames[k]
}

// ParseKernel converts a kernel name to its KernelType value.
func ParseKernel(name string) (KernelType, error) {
	for i, n := range kernelNames {
		if n == name {
			return KernelType(i), nil
		}
	}
	return 0, fmt.Errorf(
		"interpolate: unknown kernel %q, accepted values are %v",
		name, kernelNames,
	)
}

// KernelOptions tunes the Kernel interpolator. The zero value selects a
// window radius of 3 and Catmull-Rom cardinal spline shape (b=0,
// c=0.5).
type KernelOptions struct {
	Window int     // window radius in samples
	B, C   float64 // cardinal spline shape parameters
}

// DefaultKernelWindow is the window radius used when none is given.
const DefaultKernelWindow = 3

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}

// kernelFunc returns the weighting function for typ. Sinc and lanczos
// use the window radius as the lobe count so kernel support and window
// agree.
func kernelFunc(typ KernelType, window int, b, c float64) (func(float64) float64, error) {
	a := float64(window)
	switch typ {
	case KernelNearestNeighbour:
		return func(x float64) float64 {
			if math.Abs(x) < 0.5 {
				return 1
			}
			return 0
		}, nil
	case KernelLinear:
		return func(x float64) float64 {
			if v := 1 - math.Abs(x); v > 0 {
				return v
			}
			return 0
		}, nil
	case KernelSinc:
		return func(x float64) float64 {
			if math.Abs(x) >= a {
				return 0
			}
			return sinc(x)
		}, nil
	case KernelLanczos:
		return func(x float64) float64 {
			if math.Abs(x) >= a {
				return 0
			}
			return sinc(x) * sinc(x/a)
		}, nil
	case KernelCardinalSpline:
		return func(x float64) float64 {
			x = math.Abs(x)
			switch {
			case x < 1:
				return ((12-9*b-6*c)*x*x*x +
					(-18+12*b+6*c)*x*x + (6 - 2*b)) / 6
			case x < 2:
				return ((-b-6*c)*x*x*x + (6*b+30*c)*x*x +
					(-12*b-48*c)*x + (8*b + 24*c)) / 6
			}
			return 0
		}, nil
	}
	return nil, fmt.Errorf(
		"interpolate: unknown kernel %d, accepted values are %v",
		int(typ), kernelNames,
	)
}

// Kernel interpolates by a windowed weighted sum over a reflect-padded
// uniform table. Smoothness against fidelity is traded by the kernel
// choice and window radius.
type Kernel struct {
	domain []float64
	padded []float64
	window int
	fn     func(float64) float64
	dx     float64
}

// NewKernel creates a kernel interpolator over a uniform table. opts
// may be nil.
func NewKernel(domain, rng []float64, typ KernelType, opts *KernelOptions) (*Kernel, error) {
	if err := checkTable(domain, rng, 2); err != nil {
		return nil, err
	}
	if !uniform(domain) {
		return nil, fmt.Errorf(
			"interpolate: kernel interpolation requires a uniformly spaced domain",
		)
	}

	window := DefaultKernelWindow
	b, c := 0.0, 0.5
	if opts != nil {
		if opts.Window > 0 {
			window = opts.Window
		}
		if opts.B != 0 || opts.C != 0 {
			b, c = opts.B, opts.C
		}
	}

	fn, err := kernelFunc(typ, window, b, c)
	if err != nil {
		return nil, err
	}

	k := &Kernel{
		domain: dup(domain),
		window: window,
		fn:     fn,
		dx:     domain[1] - domain[0],
	}
	k.padded = reflectPad(rng, window)
	return k, nil
}

// reflectPad extends rng by w samples on each side, mirroring about the
// boundary samples without repeating them.
func reflectPad(rng []float64, w int) []float64 {
	n := len(rng)
	out := make([]float64, n+2*w)
	for i := range out {
		o := i - w
		for o < 0 || o >= n {
			if o < 0 {
				o = -o
			}
			if o >= n {
				o = 2*n - 2 - o
			}
		}
		out[i] = rng[o]
	}
	return out
}

// Eval computes the kernel weighted value at x, or NaN if x is outside
// the domain envelope.
func (k *Kernel) Eval(x float64) float64 {
	if offDomain(k.domain, x) {
		return math.NaN()
	}

	u := (x - k.domain[0]) / k.dx
	i := int(math.Floor(u))

	sum := 0.0
	for j := i - k.window + 1; j <= i+k.window; j++ {
		sum += k.padded[j+k.window] * k.fn(u-float64(j))
	}
	return sum
}

func (k *Kernel) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = k.Eval(x)
	}
	return out[0]
}
