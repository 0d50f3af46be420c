package models

import (
	"fmt"
	"math"
)

// SRGBEncode applies the IEC 61966-2-1 opto-electronic transfer
// function to a linear component.
func SRGBEncode(l float64) float64 {
	if l <= 0.0031308 {
		return 12.92 * l
	}
	return 1.055*math.Pow(l, 1/2.4) - 0.055
}

// SRGBDecode inverts SRGBEncode.
func SRGBDecode(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// EncodeRGB applies the sRGB transfer function per component.
func EncodeRGB(rgb [3]float64) [3]float64 {
	return [3]float64{
		SRGBEncode(rgb[0]), SRGBEncode(rgb[1]), SRGBEncode(rgb[2]),
	}
}

// DecodeRGB inverts EncodeRGB.
func DecodeRGB(rgb [3]float64) [3]float64 {
	return [3]float64{
		SRGBDecode(rgb[0]), SRGBDecode(rgb[1]), SRGBDecode(rgb[2]),
	}
}

// EncodeInt quantizes a unit-interval component to a bit-depth-aware
// integer code value, e.g. 10-bit or 12-bit. Values are clamped to the
// representable span.
func EncodeInt(v float64, bits int) (int, error) {
	if bits < 1 || bits > 16 {
		return 0, fmt.Errorf("models: bit depth %d outside [1, 16]", bits)
	}
	span := float64(int(1)<<bits - 1)
	code := math.Round(v * span)
	if code < 0 || math.IsNaN(code) {
		code = 0
	}
	if code > span {
		code = span
	}
	return int(code), nil
}

// DecodeInt maps a bit-depth-aware integer code value back to the unit
// interval.
func DecodeInt(code, bits int) (float64, error) {
	if bits < 1 || bits > 16 {
		return 0, fmt.Errorf("models: bit depth %d outside [1, 16]", bits)
	}
	span := float64(int(1)<<bits - 1)
	return float64(code) / span, nil
}
