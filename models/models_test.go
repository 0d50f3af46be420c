package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertTriplet(t *testing.T, want, got [3]float64, tol float64, msg string) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol, "%s component %d", msg, i)
	}
}

var probes = [][3]float64{
	{0.20654008, 0.12197225, 0.05136952},
	{0.14222010, 0.23042768, 0.10495772},
	{0.07818780, 0.06157201, 0.28099326},
	{0.95047, 1.0, 1.08883},
}

func TestXYZxyYRoundTrip(t *testing.T) {
	for _, xyz := range probes {
		xyY := XYZToxyY(xyz, D65)
		assertTriplet(t, xyz, XyYToXYZ(xyY), 1e-10, "xyY round trip")
	}

	// Black maps onto the whitepoint chromaticity.
	xyY := XYZToxyY([3]float64{0, 0, 0}, D65)
	assert.Equal(t, [3]float64{D65[0], D65[1], 0}, xyY)
	assert.Equal(t, [3]float64{0, 0, 0}, XyYToXYZ(xyY))
}

func TestXyProjection(t *testing.T) {
	xy := XyYToxy([3]float64{0.54369557, 0.32107944, 0.12197225})
	assert.Equal(t, [2]float64{0.54369557, 0.32107944}, xy)

	xyY := XyToxyY(xy, 0.5)
	assert.Equal(t, [3]float64{0.54369557, 0.32107944, 0.5}, xyY)
}

func TestLabRoundTrip(t *testing.T) {
	for _, xyz := range probes {
		lab := XYZToLab(xyz, D65)
		assertTriplet(t, xyz, LabToXYZ(lab, D65), 1e-10, "Lab round trip")
	}

	// The whitepoint itself has L* = 100, a* = b* = 0.
	wp := WhitepointXYZ(D65)
	lab := XYZToLab(wp, D65)
	assertTriplet(t, [3]float64{100, 0, 0}, lab, 1e-8, "whitepoint Lab")
}

func TestLCHabRoundTrip(t *testing.T) {
	lab := [3]float64{41.52787529, 52.63858304, 26.92317922}
	lch := LabToLCHab(lab)
	assert.InDelta(t, 41.52787529, lch[0], 1e-10)
	assert.True(t, lch[2] >= 0 && lch[2] < 360, "hue in degrees")
	assertTriplet(t, lab, LCHabToLab(lch), 1e-10, "LCHab round trip")

	// Negative hue angles wrap into [0, 360).
	lch = LabToLCHab([3]float64{50, 10, -10})
	assert.InDelta(t, 315.0, lch[2], 1e-10)
}

func TestLuvRoundTrip(t *testing.T) {
	for _, xyz := range probes {
		luv := XYZToLuv(xyz, D65)
		assertTriplet(t, xyz, LuvToXYZ(luv, D65), 1e-9, "Luv round trip")

		lch := LuvToLCHuv(luv)
		assertTriplet(t, luv, LCHuvToLuv(lch), 1e-9, "LCHuv round trip")
	}
}

func TestUCSRoundTrip(t *testing.T) {
	for _, xyz := range probes {
		ucs := XYZToUCS(xyz)
		assertTriplet(t, xyz, UCSToXYZ(ucs), 1e-10, "UCS round trip")
	}

	// Equal energy sits at u = 4/19, v = 6/19 in CIE 1960.
	uv := UCSTouv(XYZToUCS(WhitepointXYZ(E)))
	assert.InDelta(t, 4.0/19, uv[0], 1e-10)
	assert.InDelta(t, 6.0/19, uv[1], 1e-10)
}

func TestRGBXYZRoundTrip(t *testing.T) {
	for _, xyz := range probes {
		rgb := XYZToRGB(xyz)
		assertTriplet(t, xyz, RGBToXYZ(rgb), 1e-9, "RGB round trip")
	}

	// sRGB white is the D65 whitepoint.
	xyz := RGBToXYZ([3]float64{1, 1, 1})
	assertTriplet(t, WhitepointXYZ(D65), xyz, 5e-4, "sRGB white")
}

func TestHSVRoundTrip(t *testing.T) {
	for _, rgb := range [][3]float64{
		{1, 0, 0}, {0, 1, 0}, {0, 0, 1},
		{0.2, 0.6, 0.4}, {0.9, 0.1, 0.5}, {0.5, 0.5, 0.5},
	} {
		hsv := RGBToHSV(rgb)
		assertTriplet(t, rgb, HSVToRGB(hsv), 1e-10, "HSV round trip")

		hsl := RGBToHSL(rgb)
		assertTriplet(t, rgb, HSLToRGB(hsl), 1e-10, "HSL round trip")
	}

	assert.Equal(t, [3]float64{0, 1, 1}, RGBToHSV([3]float64{1, 0, 0}))
	assert.Equal(t, [3]float64{0, 0, 0.5}, RGBToHSV([3]float64{0.5, 0.5, 0.5}))
}

func TestCMYK(t *testing.T) {
	rgb := [3]float64{0.2, 0.6, 0.4}
	cmy := RGBToCMY(rgb)
	assert.Equal(t, [3]float64{0.8, 0.4, 0.6}, cmy)
	assert.Equal(t, rgb, CMYToRGB(cmy))

	cmyk := CMYToCMYK(cmy)
	assert.InDelta(t, 0.4, cmyk[3], 1e-12, "black extraction")
	back := CMYKToCMY(cmyk)
	assertTriplet(t, cmy, back, 1e-12, "CMYK round trip")

	assert.Equal(t, [4]float64{0, 0, 0, 1}, CMYToCMYK([3]float64{1, 1, 1}))
}

func TestSRGBTransfer(t *testing.T) {
	for _, l := range []float64{0, 0.0005, 0.0031308, 0.18, 0.5, 1} {
		assert.InDelta(t, l, SRGBDecode(SRGBEncode(l)), 1e-12, "l = %g", l)
	}
	assert.InDelta(t, 0.46135613, SRGBEncode(0.18), 1e-4)

	rgb := [3]float64{0.001, 0.18, 0.9}
	dec := DecodeRGB(EncodeRGB(rgb))
	assertTriplet(t, rgb, dec, 1e-12, "per component transfer")
}

func TestIntegerEncode(t *testing.T) {
	for _, bits := range []int{8, 10, 12} {
		span := 1<<bits - 1
		code, err := EncodeInt(1, bits)
		assert.NoError(t, err)
		assert.Equal(t, span, code, "%d-bit full scale", bits)

		code, _ = EncodeInt(0, bits)
		assert.Equal(t, 0, code)

		v, err := DecodeInt(span, bits)
		assert.NoError(t, err)
		assert.Equal(t, 1.0, v)

		// Round trip of arbitrary code values is exact.
		v, _ = DecodeInt(span/3, bits)
		code, _ = EncodeInt(v, bits)
		assert.Equal(t, span/3, code)
	}

	code, _ := EncodeInt(1.7, 10)
	assert.Equal(t, 1023, code, "clamped above")
	code, _ = EncodeInt(-0.3, 10)
	assert.Equal(t, 0, code, "clamped below")

	_, err := EncodeInt(0.5, 0)
	assert.Error(t, err)
	_, err = DecodeInt(1, 17)
	assert.Error(t, err)
}

func TestScale(t *testing.T) {
	s, err := ParseScale("100")
	assert.NoError(t, err)
	assert.Equal(t, ScaleHundred, s)
	_, err = ParseScale("percent")
	assert.Error(t, err)

	lab := []float64{50, 10, -10}
	unit := ScaleFromReference(lab, ScaleUnit, true)
	assert.Equal(t, []float64{0.5, 0.1, -0.1}, unit)
	assert.Equal(t, lab, ScaleToReference(unit, ScaleUnit, true))

	xyz := []float64{0.5, 0.25, 0.125}
	hundred := ScaleFromReference(xyz, ScaleHundred, false)
	assert.Equal(t, []float64{50, 25, 12.5}, hundred)
	assert.Equal(t, xyz, ScaleToReference(hundred, ScaleHundred, false))

	// Reference scale is the identity.
	assert.Equal(t, lab, ScaleFromReference(lab, ScaleReference, true))
}

func TestLightness(t *testing.T) {
	assert.InDelta(t, 100.0, LuminanceToLightness(1), 1e-10)
	assert.InDelta(t, 0.0, LuminanceToLightness(0), 1e-10)

	for _, y := range []float64{0, 0.004, 0.008856, 0.18, 0.5, 1} {
		L := LuminanceToLightness(y)
		assert.InDelta(t, y, LightnessToLuminance(L), 1e-12, "Y = %g", y)
	}
	assert.InDelta(t, 41.5278758, LuminanceToLightness(0.12197225), 1e-4)
}
