// Package models implements the closed-form colour representation
// transforms that populate the default conversion graph: CIE
// XYZ/xyY/xy, Lab/LCHab, Luv/LCHuv, UCS, sRGB with its transfer
// functions, HSV, HSL, CMY/CMYK and the Luminance/Lightness
// correlates. All functions are pure and operate on float64 triplets
// in the reference scale unless stated otherwise.
package models

import (
	"fmt"
)

// Scale selects how un-normalized values are interpreted at function
// boundaries. Reference keeps each representation's native units (Lab
// lightness 0-100, XYZ 0-1); Unit maps everything onto [0, 1]; Hundred
// maps everything onto [0, 100].
type Scale int

const (
	ScaleReference Scale = iota
	ScaleUnit
	ScaleHundred
)

var scaleNames = []string{"reference", "1", "100"}

func (s Scale) String() string {
	if s < 0 || int(s) >= len(scaleNames) {
		return fmt.Sprintf("Scale(%d)", int(s))
	}
	return scaleNames[s]
}

// ParseScale converts a scale name ("reference", "1" or "100") to its
// Scale value.
func ParseScale(name string) (Scale, error) {
	for i, n := range scaleNames {
		if n == name {
			return Scale(i), nil
		}
	}
	return 0, fmt.Errorf(
		"models: unknown scale %q, accepted values are %v", name, scaleNames,
	)
}

// ScaleFromReference converts reference-scale values to the given
// scale. hundredNative marks representations whose reference scale is
// already 0-100 (Lab, LCH, Lightness); the rest are treated as 0-1
// native (XYZ, xyY, RGB).
func ScaleFromReference(v []float64, s Scale, hundredNative bool) []float64 {
	factor := 1.0
	switch {
	case s == ScaleUnit && hundredNative:
		factor = 1.0 / 100
	case s == ScaleHundred && !hundredNative:
		factor = 100
	}
	if factor == 1 {
		return v
	}
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x * factor
	}
	return out
}

// ScaleToReference converts values in the given scale back to the
// reference scale. It is the inverse of ScaleFromReference.
func ScaleToReference(v []float64, s Scale, hundredNative bool) []float64 {
	factor := 1.0
	switch {
	case s == ScaleUnit && hundredNative:
		factor = 100
	case s == ScaleHundred && !hundredNative:
		factor = 1.0 / 100
	}
	if factor == 1 {
		return v
	}
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x * factor
	}
	return out
}
