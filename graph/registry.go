package graph

import (
	"fmt"
	"sync"

	"github.com/colour-science/colour-go/models"
)

// Canonical node names of the default conversion graph.
const (
	NodeXYZ       = "CIE XYZ"
	NodeXyY       = "CIE xyY"
	NodeXy        = "CIE xy"
	NodeLab       = "CIE Lab"
	NodeLCHab     = "CIE LCHab"
	NodeLuv       = "CIE Luv"
	NodeLCHuv     = "CIE LCHuv"
	NodeUCS       = "CIE UCS"
	NodeUV        = "CIE uv"
	NodeRGB       = "RGB"
	NodeOutputRGB = "Output-Referred RGB"
	NodeHSV       = "HSV"
	NodeHSL       = "HSL"
	NodeCMY       = "CMY"
	NodeCMYK      = "CMYK"
	NodeLuminance = "Luminance"
	NodeLightness = "Lightness"
)

var (
	defaultOnce  sync.Once
	defaultGraph *Graph
)

// DefaultGraph returns the shared conversion graph over the built-in
// representation transforms. It is constructed on first use and must
// not be mutated.
func DefaultGraph() *Graph {
	defaultOnce.Do(func() {
		g, err := New(DefaultEdges())
		if err != nil {
			panic("graph: invalid built-in edge list: " + err.Error())
		}
		defaultGraph = g
	})
	return defaultGraph
}

// illuminantKwarg extracts the "illuminant" kwarg as an xy
// chromaticity, defaulting to D65.
func illuminantKwarg(kw Kwargs) ([2]float64, error) {
	raw, ok := kw["illuminant"]
	if !ok {
		return models.D65, nil
	}
	switch v := raw.(type) {
	case [2]float64:
		return v, nil
	case []float64:
		if len(v) != 2 {
			return [2]float64{}, fmt.Errorf(
				"graph: illuminant needs 2 components, got %d", len(v),
			)
		}
		return [2]float64{v[0], v[1]}, nil
	default:
		return [2]float64{}, fmt.Errorf(
			"graph: illuminant kwarg has unsupported type %T", raw,
		)
	}
}

// scaleKwarg extracts the "scale" kwarg, defaulting to the reference
// scale.
func scaleKwarg(kw Kwargs) (models.Scale, error) {
	raw, ok := kw["scale"]
	if !ok {
		return models.ScaleReference, nil
	}
	switch v := raw.(type) {
	case models.Scale:
		return v, nil
	case string:
		return models.ParseScale(v)
	default:
		return 0, fmt.Errorf("graph: scale kwarg has unsupported type %T", raw)
	}
}

func yKwarg(kw Kwargs) float64 {
	if v, ok := kw["Y"].(float64); ok {
		return v
	}
	return 1
}

func triplet(v []float64) ([3]float64, error) {
	if len(v) != 3 {
		return [3]float64{}, fmt.Errorf(
			"graph: value needs 3 components, got %d", len(v),
		)
	}
	return [3]float64{v[0], v[1], v[2]}, nil
}

func quad(v []float64) ([4]float64, error) {
	if len(v) != 4 {
		return [4]float64{}, fmt.Errorf(
			"graph: value needs 4 components, got %d", len(v),
		)
	}
	return [4]float64{v[0], v[1], v[2], v[3]}, nil
}

func pair(v []float64) ([2]float64, error) {
	if len(v) != 2 {
		return [2]float64{}, fmt.Errorf(
			"graph: value needs 2 components, got %d", len(v),
		)
	}
	return [2]float64{v[0], v[1]}, nil
}

// lift3 adapts a pure triplet transform to a TransformFunc.
func lift3(fn func([3]float64) [3]float64) TransformFunc {
	return func(v []float64, _ Kwargs) ([]float64, error) {
		in, err := triplet(v)
		if err != nil {
			return nil, err
		}
		out := fn(in)
		return out[:], nil
	}
}

// lift3wp adapts a whitepoint-relative triplet transform; the
// whitepoint comes from the "illuminant" kwarg.
func lift3wp(fn func([3]float64, [2]float64) [3]float64) TransformFunc {
	return func(v []float64, kw Kwargs) ([]float64, error) {
		in, err := triplet(v)
		if err != nil {
			return nil, err
		}
		wp, err := illuminantKwarg(kw)
		if err != nil {
			return nil, err
		}
		out := fn(in, wp)
		return out[:], nil
	}
}

// DefaultEdges returns the static edge catalogue of the built-in
// conversion graph. The returned slice is freshly allocated and safe
// to extend before passing to New.
func DefaultEdges() []Edge {
	return []Edge{
		// CIE chromaticity family.
		{
			Source: NodeXYZ, Target: NodeXyY, Name: "XYZ_to_xyY",
			Params: []string{"illuminant"},
			Fn:     lift3wp(models.XYZToxyY),
		},
		{
			Source: NodeXyY, Target: NodeXYZ, Name: "xyY_to_XYZ",
			Fn: lift3(models.XyYToXYZ),
		},
		{
			Source: NodeXyY, Target: NodeXy, Name: "xyY_to_xy",
			Fn: func(v []float64, _ Kwargs) ([]float64, error) {
				in, err := triplet(v)
				if err != nil {
					return nil, err
				}
				xy := models.XyYToxy(in)
				return xy[:], nil
			},
		},
		{
			Source: NodeXy, Target: NodeXyY, Name: "xy_to_xyY",
			Params: []string{"Y"},
			Fn: func(v []float64, kw Kwargs) ([]float64, error) {
				xy, err := pair(v)
				if err != nil {
					return nil, err
				}
				out := models.XyToxyY(xy, yKwarg(kw))
				return out[:], nil
			},
		},

		// Lab and its cylindrical form.
		{
			Source: NodeXYZ, Target: NodeLab, Name: "XYZ_to_Lab",
			Params: []string{"illuminant", "scale"},
			Fn: func(v []float64, kw Kwargs) ([]float64, error) {
				in, err := triplet(v)
				if err != nil {
					return nil, err
				}
				wp, err := illuminantKwarg(kw)
				if err != nil {
					return nil, err
				}
				s, err := scaleKwarg(kw)
				if err != nil {
					return nil, err
				}
				lab := models.XYZToLab(in, wp)
				return models.ScaleFromReference(lab[:], s, true), nil
			},
		},
		{
			Source: NodeLab, Target: NodeXYZ, Name: "Lab_to_XYZ",
			Params: []string{"illuminant", "scale"},
			Fn: func(v []float64, kw Kwargs) ([]float64, error) {
				wp, err := illuminantKwarg(kw)
				if err != nil {
					return nil, err
				}
				s, err := scaleKwarg(kw)
				if err != nil {
					return nil, err
				}
				ref, err := triplet(models.ScaleToReference(v, s, true))
				if err != nil {
					return nil, err
				}
				out := models.LabToXYZ(ref, wp)
				return out[:], nil
			},
		},
		{
			Source: NodeLab, Target: NodeLCHab, Name: "Lab_to_LCHab",
			Fn: lift3(models.LabToLCHab),
		},
		{
			Source: NodeLCHab, Target: NodeLab, Name: "LCHab_to_Lab",
			Fn: lift3(models.LCHabToLab),
		},

		// Luv and its cylindrical form.
		{
			Source: NodeXYZ, Target: NodeLuv, Name: "XYZ_to_Luv",
			Params: []string{"illuminant"},
			Fn:     lift3wp(models.XYZToLuv),
		},
		{
			Source: NodeLuv, Target: NodeXYZ, Name: "Luv_to_XYZ",
			Params: []string{"illuminant"},
			Fn:     lift3wp(models.LuvToXYZ),
		},
		{
			Source: NodeLuv, Target: NodeLCHuv, Name: "Luv_to_LCHuv",
			Fn: lift3(models.LuvToLCHuv),
		},
		{
			Source: NodeLCHuv, Target: NodeLuv, Name: "LCHuv_to_Luv",
			Fn: lift3(models.LCHuvToLuv),
		},

		// CIE 1960 UCS; uv chromaticity is a projection, so one-way.
		{
			Source: NodeXYZ, Target: NodeUCS, Name: "XYZ_to_UCS",
			Fn: lift3(models.XYZToUCS),
		},
		{
			Source: NodeUCS, Target: NodeXYZ, Name: "UCS_to_XYZ",
			Fn: lift3(models.UCSToXYZ),
		},
		{
			Source: NodeUCS, Target: NodeUV, Name: "UCS_to_uv",
			Fn: func(v []float64, _ Kwargs) ([]float64, error) {
				in, err := triplet(v)
				if err != nil {
					return nil, err
				}
				uv := models.UCSTouv(in)
				return uv[:], nil
			},
		},

		// sRGB, display-referred encoding and the derived notations.
		{
			Source: NodeXYZ, Target: NodeRGB, Name: "XYZ_to_RGB",
			Fn: lift3(models.XYZToRGB),
		},
		{
			Source: NodeRGB, Target: NodeXYZ, Name: "RGB_to_XYZ",
			Fn: lift3(models.RGBToXYZ),
		},
		{
			Source: NodeRGB, Target: NodeOutputRGB, Name: "RGB_to_output_referred_RGB",
			Fn: lift3(models.EncodeRGB),
		},
		{
			Source: NodeOutputRGB, Target: NodeRGB, Name: "output_referred_RGB_to_RGB",
			Fn: lift3(models.DecodeRGB),
		},
		{
			Source: NodeOutputRGB, Target: NodeHSV, Name: "RGB_to_HSV",
			Fn: lift3(models.RGBToHSV),
		},
		{
			Source: NodeHSV, Target: NodeOutputRGB, Name: "HSV_to_RGB",
			Fn: lift3(models.HSVToRGB),
		},
		{
			Source: NodeOutputRGB, Target: NodeHSL, Name: "RGB_to_HSL",
			Fn: lift3(models.RGBToHSL),
		},
		{
			Source: NodeHSL, Target: NodeOutputRGB, Name: "HSL_to_RGB",
			Fn: lift3(models.HSLToRGB),
		},
		{
			Source: NodeOutputRGB, Target: NodeCMY, Name: "RGB_to_CMY",
			Fn: lift3(models.RGBToCMY),
		},
		{
			Source: NodeCMY, Target: NodeOutputRGB, Name: "CMY_to_RGB",
			Fn: lift3(models.CMYToRGB),
		},
		{
			Source: NodeCMY, Target: NodeCMYK, Name: "CMY_to_CMYK",
			Fn: func(v []float64, _ Kwargs) ([]float64, error) {
				in, err := triplet(v)
				if err != nil {
					return nil, err
				}
				out := models.CMYToCMYK(in)
				return out[:], nil
			},
		},
		{
			Source: NodeCMYK, Target: NodeCMY, Name: "CMYK_to_CMY",
			Fn: func(v []float64, _ Kwargs) ([]float64, error) {
				in, err := quad(v)
				if err != nil {
					return nil, err
				}
				out := models.CMYKToCMY(in)
				return out[:], nil
			},
		},

		// Luminance correlates. XYZ to Luminance discards chromaticity,
		// so it is one-way.
		{
			Source: NodeXYZ, Target: NodeLuminance, Name: "XYZ_to_luminance",
			Fn: func(v []float64, _ Kwargs) ([]float64, error) {
				in, err := triplet(v)
				if err != nil {
					return nil, err
				}
				return []float64{in[1]}, nil
			},
		},
		{
			Source: NodeLuminance, Target: NodeLightness, Name: "luminance_to_lightness",
			Params: []string{"scale"},
			Fn: func(v []float64, kw Kwargs) ([]float64, error) {
				if len(v) != 1 {
					return nil, fmt.Errorf(
						"graph: luminance needs 1 component, got %d", len(v),
					)
				}
				s, err := scaleKwarg(kw)
				if err != nil {
					return nil, err
				}
				L := models.LuminanceToLightness(v[0])
				return models.ScaleFromReference([]float64{L}, s, true), nil
			},
		},
		{
			Source: NodeLightness, Target: NodeLuminance, Name: "lightness_to_luminance",
			Params: []string{"scale"},
			Fn: func(v []float64, kw Kwargs) ([]float64, error) {
				if len(v) != 1 {
					return nil, fmt.Errorf(
						"graph: lightness needs 1 component, got %d", len(v),
					)
				}
				s, err := scaleKwarg(kw)
				if err != nil {
					return nil, err
				}
				ref := models.ScaleToReference(v, s, true)
				return []float64{models.LightnessToLuminance(ref[0])}, nil
			},
		},
	}
}

// Convert converts value between two representations of the default
// graph.
func Convert(value []float64, source, target string, kw Kwargs) ([]float64, error) {
	return DefaultGraph().Convert(value, source, target, kw)
}

// DescribePath describes the conversion chain the default graph would
// use between two representations.
func DescribePath(source, target string) (string, error) {
	return DefaultGraph().DescribePath(source, target)
}
