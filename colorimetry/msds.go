package colorimetry

import (
	"fmt"

	"github.com/colour-science/colour-go/continuous"
	"github.com/colour-science/colour-go/interpolate"
)

// MultiSpectralDistributions is a set of spectral channels sharing one
// wavelength grid, such as the three channels of a colour matching
// function set. Interpolation and extrapolation follow the same rules
// as SpectralDistribution, per channel.
type MultiSpectralDistributions struct {
	Name string
	ms   *continuous.MultiSignals
}

// NewMSDS creates multi-spectral distributions from a matrix whose
// rows are wavelength samples and columns are channels.
func NewMSDS(name string, matrix [][]float64, wavelengths []float64, labels []string) (*MultiSpectralDistributions, error) {
	ms, err := continuous.NewMultiSignals(matrix, wavelengths, labels)
	if err != nil {
		return nil, fmt.Errorf("colorimetry: %q: %w", name, err)
	}
	msds := &MultiSpectralDistributions{Name: name, ms: ms}
	if err := msds.configure(); err != nil {
		return nil, fmt.Errorf("colorimetry: %q: %w", name, err)
	}
	return msds, nil
}

func (m *MultiSpectralDistributions) configure() error {
	method := interpolate.MethodCubicSpline
	if m.ms.IsUniform() && m.ms.Len() >= 6 {
		method = interpolate.MethodSprague
	}
	if m.ms.Len() < 3 {
		method = interpolate.MethodLinear
	}
	if err := m.ms.SetInterpolator(method, nil); err != nil {
		return err
	}

	// Each channel extrapolates to its own boundary samples.
	for _, label := range m.ms.Labels() {
		sig, _ := m.ms.SignalOf(label)
		rng := sig.Range()
		if len(rng) == 0 {
			continue
		}
		err := sig.SetExtrapolator(
			interpolate.ExtrapConstant, rng[0], rng[len(rng)-1],
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// MultiSignals exposes the underlying channel container.
func (m *MultiSpectralDistributions) MultiSignals() *continuous.MultiSignals { return m.ms }

// Labels returns the channel labels.
func (m *MultiSpectralDistributions) Labels() []string { return m.ms.Labels() }

// Shape derives the spectral shape of the wavelength grid.
func (m *MultiSpectralDistributions) Shape() (SpectralShape, error) {
	return shapeOf(m.ms.Domain())
}

// Wavelengths returns a copy of the wavelength grid.
func (m *MultiSpectralDistributions) Wavelengths() []float64 { return m.ms.Domain() }

// Values returns the sample matrix, rows indexed by wavelength.
func (m *MultiSpectralDistributions) Values() [][]float64 { return m.ms.Matrix() }

// Len returns the number of wavelength samples.
func (m *MultiSpectralDistributions) Len() int { return m.ms.Len() }

// NumChannels returns the channel count.
func (m *MultiSpectralDistributions) NumChannels() int { return m.ms.NumSignals() }

// Eval interpolates every channel at a wavelength.
func (m *MultiSpectralDistributions) Eval(wl float64) []float64 { return m.ms.Eval(wl) }

// Channel returns a single channel as a spectral distribution sharing
// no state with the container.
func (m *MultiSpectralDistributions) Channel(label string) (*SpectralDistribution, error) {
	sig, ok := m.ms.SignalOf(label)
	if !ok {
		return nil, fmt.Errorf(
			"colorimetry: %q has no channel %q, labels are %v",
			m.Name, label, m.ms.Labels(),
		)
	}
	return NewSD(m.Name+" - "+label, sig.Range(), sig.Domain())
}

// Align resamples every channel onto the given shape.
func (m *MultiSpectralDistributions) Align(shape SpectralShape) error {
	if err := shape.validate(); err != nil {
		return err
	}
	wls := shape.Wavelengths()
	rows := m.ms.EvalAll(wls)

	ms, err := continuous.NewMultiSignals(rows, wls, m.ms.Labels())
	if err != nil {
		return err
	}
	m.ms = ms
	return m.configure()
}

// Clone returns a deep copy.
func (m *MultiSpectralDistributions) Clone() *MultiSpectralDistributions {
	return &MultiSpectralDistributions{Name: m.Name, ms: m.ms.Clone()}
}

func (m *MultiSpectralDistributions) String() string {
	shape, err := m.Shape()
	if err != nil {
		return fmt.Sprintf(
			"MultiSpectralDistributions(%q, %d channels, %d samples)",
			m.Name, m.NumChannels(), m.Len(),
		)
	}
	return fmt.Sprintf(
		"MultiSpectralDistributions(%q, %d channels, %v)",
		m.Name, m.NumChannels(), shape,
	)
}
