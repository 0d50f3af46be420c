package colorimetry

import (
	"fmt"
)

// SDToXYZ integrates a reflectance or transmittance spectral
// distribution against colour matching functions under an illuminant,
// returning tristimulus values normalized so that a perfect reflector
// has Y = 100. All three inputs are resampled onto the observer's
// shape before summation.
func SDToXYZ(sd *SpectralDistribution, cmfs *MultiSpectralDistributions, ill *SpectralDistribution) ([3]float64, error) {
	shape, err := cmfs.Shape()
	if err != nil {
		return [3]float64{}, fmt.Errorf(
			"colorimetry: observer %q: %w", cmfs.Name, err,
		)
	}
	if cmfs.NumChannels() != 3 {
		return [3]float64{}, fmt.Errorf(
			"colorimetry: observer %q has %d channels, want 3",
			cmfs.Name, cmfs.NumChannels(),
		)
	}

	wls := shape.Wavelengths()
	bars := cmfs.MultiSignals().EvalAll(wls)
	r := sd.EvalAll(wls)
	s := ill.EvalAll(wls)

	var num [3]float64
	den := 0.0
	for i := range wls {
		w := s[i]
		den += w * bars[i][1]
		for c := 0; c < 3; c++ {
			num[c] += w * r[i] * bars[i][c]
		}
	}
	if den == 0 {
		return [3]float64{}, fmt.Errorf(
			"colorimetry: illuminant %q has no power over %v", ill.Name, shape,
		)
	}

	k := 100 / den
	return [3]float64{k * num[0], k * num[1], k * num[2]}, nil
}

// IlluminantXYZ returns the tristimulus values of an illuminant, the
// whitepoint of SDToXYZ under the same observer.
func IlluminantXYZ(cmfs *MultiSpectralDistributions, ill *SpectralDistribution) ([3]float64, error) {
	shape, err := cmfs.Shape()
	if err != nil {
		return [3]float64{}, err
	}
	ones := make([]float64, shape.Len())
	for i := range ones {
		ones[i] = 1
	}
	unit, err := NewSDFromShape("unit reflector", ones, shape)
	if err != nil {
		return [3]float64{}, err
	}
	return SDToXYZ(unit, cmfs, ill)
}

// WavelengthToXYZ evaluates the colour matching functions at a single
// wavelength.
func WavelengthToXYZ(wl float64, cmfs *MultiSpectralDistributions) ([3]float64, error) {
	if cmfs.NumChannels() != 3 {
		return [3]float64{}, fmt.Errorf(
			"colorimetry: observer %q has %d channels, want 3",
			cmfs.Name, cmfs.NumChannels(),
		)
	}
	v := cmfs.Eval(wl)
	return [3]float64{v[0], v[1], v[2]}, nil
}
