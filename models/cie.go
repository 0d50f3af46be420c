package models

import (
	"math"
)

// D65 is the CIE standard illuminant D65 chromaticity, the default
// whitepoint throughout the package.
var D65 = [2]float64{0.3127, 0.3290}

// E is the equal-energy illuminant chromaticity.
var E = [2]float64{1.0 / 3, 1.0 / 3}

// WhitepointXYZ converts a whitepoint chromaticity to tristimulus
// values normalized to Y = 1.
func WhitepointXYZ(xy [2]float64) [3]float64 {
	return [3]float64{
		xy[0] / xy[1],
		1,
		(1 - xy[0] - xy[1]) / xy[1],
	}
}

///////////////
// CIE xyY   //
///////////////

// XYZToxyY converts tristimulus values to xyY chromaticity
// coordinates. A black stimulus maps onto the given whitepoint
// chromaticity with Y = 0.
func XYZToxyY(xyz [3]float64, wp [2]float64) [3]float64 {
	sum := xyz[0] + xyz[1] + xyz[2]
	if sum == 0 {
		return [3]float64{wp[0], wp[1], 0}
	}
	return [3]float64{xyz[0] / sum, xyz[1] / sum, xyz[1]}
}

// XyYToXYZ converts xyY chromaticity coordinates to tristimulus
// values.
func XyYToXYZ(xyY [3]float64) [3]float64 {
	x, y, Y := xyY[0], xyY[1], xyY[2]
	if y == 0 {
		return [3]float64{0, 0, 0}
	}
	return [3]float64{x * Y / y, Y, (1 - x - y) * Y / y}
}

// XyYToxy drops the luminance component.
func XyYToxy(xyY [3]float64) [2]float64 {
	return [2]float64{xyY[0], xyY[1]}
}

// XyToxyY lifts a chromaticity to xyY with the given luminance.
func XyToxyY(xy [2]float64, Y float64) [3]float64 {
	return [3]float64{xy[0], xy[1], Y}
}

/////////////
// CIE Lab //
/////////////

const (
	labDelta  = 6.0 / 29
	labDelta2 = labDelta * labDelta
	labDelta3 = labDelta * labDelta * labDelta
)

func labF(t float64) float64 {
	if t > labDelta3 {
		return math.Cbrt(t)
	}
	return t/(3*labDelta2) + 4.0/29
}

func labFInv(t float64) float64 {
	if t > labDelta {
		return t * t * t
	}
	return 3 * labDelta2 * (t - 4.0/29)
}

// XYZToLab converts tristimulus values to CIE L*a*b* relative to the
// given whitepoint. Lightness is on the native 0-100 scale.
func XYZToLab(xyz [3]float64, wp [2]float64) [3]float64 {
	n := WhitepointXYZ(wp)
	fx := labF(xyz[0] / n[0])
	fy := labF(xyz[1] / n[1])
	fz := labF(xyz[2] / n[2])
	return [3]float64{
		116*fy - 16,
		500 * (fx - fy),
		200 * (fy - fz),
	}
}

// LabToXYZ converts CIE L*a*b* back to tristimulus values.
func LabToXYZ(lab [3]float64, wp [2]float64) [3]float64 {
	n := WhitepointXYZ(wp)
	fy := (lab[0] + 16) / 116
	fx := fy + lab[1]/500
	fz := fy - lab[2]/200
	return [3]float64{
		n[0] * labFInv(fx),
		n[1] * labFInv(fy),
		n[2] * labFInv(fz),
	}
}

// LabToLCHab converts to the cylindrical L*C*H(ab) form, hue in
// degrees.
func LabToLCHab(lab [3]float64) [3]float64 {
	h := math.Atan2(lab[2], lab[1]) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return [3]float64{lab[0], math.Hypot(lab[1], lab[2]), h}
}

// LCHabToLab converts cylindrical L*C*H(ab) back to L*a*b*.
func LCHabToLab(lch [3]float64) [3]float64 {
	h := lch[2] * math.Pi / 180
	return [3]float64{lch[0], lch[1] * math.Cos(h), lch[1] * math.Sin(h)}
}

/////////////
// CIE Luv //
/////////////

func uvPrime(xyz [3]float64) (u, v float64) {
	d := xyz[0] + 15*xyz[1] + 3*xyz[2]
	if d == 0 {
		return 0, 0
	}
	return 4 * xyz[0] / d, 9 * xyz[1] / d
}

// XYZToLuv converts tristimulus values to CIE L*u*v* relative to the
// given whitepoint.
func XYZToLuv(xyz [3]float64, wp [2]float64) [3]float64 {
	n := WhitepointXYZ(wp)
	yr := xyz[1] / n[1]

	var L float64
	if yr > labDelta3 {
		L = 116*math.Cbrt(yr) - 16
	} else {
		L = yr / labDelta3 * 8 // (29/3)^3 * yr
	}

	u, v := uvPrime(xyz)
	un, vn := uvPrime(n)
	return [3]float64{L, 13 * L * (u - un), 13 * L * (v - vn)}
}

// LuvToXYZ converts CIE L*u*v* back to tristimulus values.
func LuvToXYZ(luv [3]float64, wp [2]float64) [3]float64 {
	n := WhitepointXYZ(wp)
	L := luv[0]
	if L == 0 {
		return [3]float64{0, 0, 0}
	}

	un, vn := uvPrime(n)
	u := luv[1]/(13*L) + un
	v := luv[2]/(13*L) + vn

	var Y float64
	if L > 8 {
		t := (L + 16) / 116
		Y = n[1] * t * t * t
	} else {
		Y = n[1] * L * labDelta3 / 8
	}

	X := Y * 9 * u / (4 * v)
	Z := Y * (12 - 3*u - 20*v) / (4 * v)
	return [3]float64{X, Y, Z}
}

// LuvToLCHuv converts to the cylindrical L*C*H(uv) form, hue in
// degrees.
func LuvToLCHuv(luv [3]float64) [3]float64 {
	h := math.Atan2(luv[2], luv[1]) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return [3]float64{luv[0], math.Hypot(luv[1], luv[2]), h}
}

// LCHuvToLuv converts cylindrical L*C*H(uv) back to L*u*v*.
func LCHuvToLuv(lch [3]float64) [3]float64 {
	h := lch[2] * math.Pi / 180
	return [3]float64{lch[0], lch[1] * math.Cos(h), lch[1] * math.Sin(h)}
}

/////////////
// CIE UCS //
/////////////

// XYZToUCS converts tristimulus values to the CIE 1960 UCS colour
// space.
func XYZToUCS(xyz [3]float64) [3]float64 {
	return [3]float64{
		2.0 / 3 * xyz[0],
		xyz[1],
		(-xyz[0] + 3*xyz[1] + xyz[2]) / 2,
	}
}

// UCSToXYZ converts CIE 1960 UCS values back to tristimulus values.
func UCSToXYZ(uvw [3]float64) [3]float64 {
	return [3]float64{
		3.0 / 2 * uvw[0],
		uvw[1],
		3.0/2*uvw[0] - 3*uvw[1] + 2*uvw[2],
	}
}

// UCSTouv converts CIE 1960 UCS values to uv chromaticity coordinates.
func UCSTouv(uvw [3]float64) [2]float64 {
	sum := uvw[0] + uvw[1] + uvw[2]
	if sum == 0 {
		return [2]float64{0, 0}
	}
	return [2]float64{uvw[0] / sum, uvw[1] / sum}
}

//////////////////////////////
// Luminance and Lightness  //
//////////////////////////////

// LuminanceToLightness converts relative luminance Y in [0, 1] to CIE
// lightness L* on the 0-100 scale.
func LuminanceToLightness(Y float64) float64 {
	if Y > labDelta3 {
		return 116*math.Cbrt(Y) - 16
	}
	return Y / labDelta3 * 8
}

// LightnessToLuminance converts CIE lightness L* back to relative
// luminance.
func LightnessToLuminance(L float64) float64 {
	if L > 8 {
		t := (L + 16) / 116
		return t * t * t
	}
	return L * labDelta3 / 8
}
