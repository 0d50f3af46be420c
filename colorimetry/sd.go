package colorimetry

import (
	"fmt"

	"github.com/colour-science/colour-go/continuous"
	"github.com/colour-science/colour-go/interpolate"
)

// SpectralDistribution is a continuous spectral quantity sampled on a
// wavelength grid. Uniform grids with at least six samples interpolate
// with the Sprague (1880) method, everything else with a cubic spline;
// values outside the grid extrapolate to the boundary samples.
type SpectralDistribution struct {
	Name string
	sig  *continuous.Signal
}

// NewSD creates a spectral distribution from values and their
// wavelengths in nanometres.
func NewSD(name string, values, wavelengths []float64) (*SpectralDistribution, error) {
	sig, err := continuous.NewSignal(values, wavelengths)
	if err != nil {
		return nil, fmt.Errorf("colorimetry: %q: %w", name, err)
	}
	sd := &SpectralDistribution{Name: name, sig: sig}
	if err := sd.configure(); err != nil {
		return nil, fmt.Errorf("colorimetry: %q: %w", name, err)
	}
	return sd, nil
}

// NewSDFromShape creates a spectral distribution with wavelengths
// taken from the shape's grid.
func NewSDFromShape(name string, values []float64, shape SpectralShape) (*SpectralDistribution, error) {
	if err := shape.validate(); err != nil {
		return nil, err
	}
	if got, want := len(values), shape.Len(); got != want {
		return nil, fmt.Errorf(
			"colorimetry: %q: shape %v has %d points but %d values given",
			name, shape, want, got,
		)
	}
	return NewSD(name, values, shape.Wavelengths())
}

// configure installs the interpolator and boundary extrapolation
// matching the current grid.
func (sd *SpectralDistribution) configure() error {
	method := interpolate.MethodCubicSpline
	if sd.sig.IsUniform() && sd.sig.Len() >= 6 {
		method = interpolate.MethodSprague
	}
	if sd.sig.Len() < 3 {
		method = interpolate.MethodLinear
	}
	if err := sd.sig.SetInterpolator(method, nil); err != nil {
		return err
	}

	rng := sd.sig.Range()
	if len(rng) == 0 {
		return nil
	}
	return sd.sig.SetExtrapolator(
		interpolate.ExtrapConstant, rng[0], rng[len(rng)-1],
	)
}

// Signal exposes the underlying continuous signal.
func (sd *SpectralDistribution) Signal() *continuous.Signal { return sd.sig }

// Shape derives the spectral shape of the wavelength grid; non-uniform
// grids are rejected.
func (sd *SpectralDistribution) Shape() (SpectralShape, error) {
	return shapeOf(sd.sig.Domain())
}

// Wavelengths returns a copy of the wavelength grid.
func (sd *SpectralDistribution) Wavelengths() []float64 { return sd.sig.Domain() }

// Values returns a copy of the sampled values.
func (sd *SpectralDistribution) Values() []float64 { return sd.sig.Range() }

// Len returns the number of samples.
func (sd *SpectralDistribution) Len() int { return sd.sig.Len() }

// Eval interpolates the distribution at a wavelength.
func (sd *SpectralDistribution) Eval(wl float64) float64 { return sd.sig.Eval(wl) }

// EvalAll interpolates the distribution on a wavelength slice.
func (sd *SpectralDistribution) EvalAll(wls []float64) []float64 {
	return sd.sig.EvalAll(wls)
}

// Align resamples the distribution onto the given shape, interpolating
// inside the current grid and extending with the boundary values
// outside it.
func (sd *SpectralDistribution) Align(shape SpectralShape) error {
	if err := shape.validate(); err != nil {
		return err
	}
	wls := shape.Wavelengths()
	vals := sd.sig.EvalAll(wls)

	sig, err := continuous.NewSignal(vals, wls)
	if err != nil {
		return err
	}
	sd.sig = sig
	return sd.configure()
}

// Normalize scales the distribution so its maximum equals target.
func (sd *SpectralDistribution) Normalize(target float64) error {
	max := 0.0
	for _, v := range sd.sig.Range() {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		return fmt.Errorf("colorimetry: %q: cannot normalize all-zero distribution", sd.Name)
	}
	_, err := sd.sig.ApplyScalar(continuous.Mul, target/max, true)
	return err
}

// Clone returns a deep copy.
func (sd *SpectralDistribution) Clone() *SpectralDistribution {
	return &SpectralDistribution{Name: sd.Name, sig: sd.sig.Clone()}
}

func (sd *SpectralDistribution) String() string {
	shape, err := sd.Shape()
	if err != nil {
		return fmt.Sprintf("SpectralDistribution(%q, %d samples)", sd.Name, sd.Len())
	}
	return fmt.Sprintf("SpectralDistribution(%q, %v)", sd.Name, shape)
}
