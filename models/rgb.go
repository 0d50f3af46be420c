package models

import (
	"math"
)

// sRGB primaries with a D65 whitepoint, IEC 61966-2-1.
var (
	srgbToXYZ = [3][3]float64{
		{0.4124564, 0.3575761, 0.1804375},
		{0.2126729, 0.7151522, 0.0721750},
		{0.0193339, 0.1191920, 0.9503041},
	}
	xyzToSRGB = [3][3]float64{
		{3.2404542, -1.5371385, -0.4985314},
		{-0.9692660, 1.8760108, 0.0415560},
		{0.0556434, -0.2040259, 1.0572252},
	}
)

func mulMat(m [3][3]float64, v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// XYZToRGB converts tristimulus values to linear sRGB components.
func XYZToRGB(xyz [3]float64) [3]float64 {
	return mulMat(xyzToSRGB, xyz)
}

// RGBToXYZ converts linear sRGB components to tristimulus values.
func RGBToXYZ(rgb [3]float64) [3]float64 {
	return mulMat(srgbToXYZ, rgb)
}

/////////////////////
// HSV, HSL, CMY   //
/////////////////////

func maxMin3(a, b, c float64) (max, min float64) {
	max, min = a, a
	if b > max {
		max = b
	}
	if c > max {
		max = c
	}
	if b < min {
		min = b
	}
	if c < min {
		min = c
	}
	return max, min
}

// hue returns the hexagonal hue in [0, 1) shared by HSV and HSL.
func hue(rgb [3]float64, max, delta float64) float64 {
	if delta == 0 {
		return 0
	}
	var h float64
	switch max {
	case rgb[0]:
		h = math.Mod((rgb[1]-rgb[2])/delta, 6)
	case rgb[1]:
		h = (rgb[2]-rgb[0])/delta + 2
	default:
		h = (rgb[0]-rgb[1])/delta + 4
	}
	h /= 6
	if h < 0 {
		h++
	}
	return h
}

// RGBToHSV converts unit-interval RGB to hue, saturation, value, all
// in [0, 1].
func RGBToHSV(rgb [3]float64) [3]float64 {
	max, min := maxMin3(rgb[0], rgb[1], rgb[2])
	delta := max - min

	s := 0.0
	if max != 0 {
		s = delta / max
	}
	return [3]float64{hue(rgb, max, delta), s, max}
}

// HSVToRGB converts hue, saturation, value back to unit-interval RGB.
func HSVToRGB(hsv [3]float64) [3]float64 {
	h, s, v := hsv[0]*6, hsv[1], hsv[2]
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h, 2)-1))
	m := v - c
	return sector(h, c, x, m)
}

// RGBToHSL converts unit-interval RGB to hue, saturation, lightness,
// all in [0, 1].
func RGBToHSL(rgb [3]float64) [3]float64 {
	max, min := maxMin3(rgb[0], rgb[1], rgb[2])
	delta := max - min
	l := (max + min) / 2

	s := 0.0
	if delta != 0 {
		s = delta / (1 - math.Abs(2*l-1))
	}
	return [3]float64{hue(rgb, max, delta), s, l}
}

// HSLToRGB converts hue, saturation, lightness back to unit-interval
// RGB.
func HSLToRGB(hsl [3]float64) [3]float64 {
	h, s, l := hsl[0]*6, hsl[1], hsl[2]
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h, 2)-1))
	m := l - c/2
	return sector(h, c, x, m)
}

func sector(h, c, x, m float64) [3]float64 {
	var r, g, b float64
	switch {
	case h < 1:
		r, g, b = c, x, 0
	case h < 2:
		r, g, b = x, c, 0
	case h < 3:
		r, g, b = 0, c, x
	case h < 4:
		r, g, b = 0, x, c
	case h < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return [3]float64{r + m, g + m, b + m}
}

// RGBToCMY converts unit-interval RGB to its CMY complement.
func RGBToCMY(rgb [3]float64) [3]float64 {
	return [3]float64{1 - rgb[0], 1 - rgb[1], 1 - rgb[2]}
}

// CMYToRGB converts CMY back to unit-interval RGB.
func CMYToRGB(cmy [3]float64) [3]float64 {
	return [3]float64{1 - cmy[0], 1 - cmy[1], 1 - cmy[2]}
}

// CMYToCMYK converts CMY to CMYK with full black extraction.
func CMYToCMYK(cmy [3]float64) [4]float64 {
	k := math.Min(cmy[0], math.Min(cmy[1], cmy[2]))
	if k == 1 {
		return [4]float64{0, 0, 0, 1}
	}
	return [4]float64{
		(cmy[0] - k) / (1 - k),
		(cmy[1] - k) / (1 - k),
		(cmy[2] - k) / (1 - k),
		k,
	}
}

// CMYKToCMY reapplies the black component.
func CMYKToCMY(cmyk [4]float64) [3]float64 {
	k := cmyk[3]
	return [3]float64{
		cmyk[0]*(1-k) + k,
		cmyk[1]*(1-k) + k,
		cmyk[2]*(1-k) + k,
	}
}
