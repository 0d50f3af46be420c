// Package io reads the external inputs of the library: configuration
// files, spectral data tables and 3D LUT files.
package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"

	"github.com/colour-science/colour-go/interpolate"
	"github.com/colour-science/colour-go/lut"
	"github.com/colour-science/colour-go/models"
)

// CoreConfig is the [core] section of a configuration file. The
// string fields come straight from the file; CheckInit resolves them
// into the typed fields and applies defaults.
type CoreConfig struct {
	// Optional
	Scale        string
	Interpolator string
	Extrapolator string
	LutMethod    string

	// Resolved by CheckInit.
	ScaleValue        models.Scale
	InterpolatorValue interpolate.Method
	ExtrapolatorValue interpolate.ExtrapMethod
	LutMethodValue    lut.Method
}

func (core *CoreConfig) CheckInit() error {
	if core.Scale == "" {
		core.Scale = "reference"
	}
	scale, err := models.ParseScale(core.Scale)
	if err != nil {
		return err
	}
	core.ScaleValue = scale

	if core.Interpolator == "" {
		core.Interpolator = "Linear"
	}
	interp, err := interpolate.ParseMethod(core.Interpolator)
	if err != nil {
		return err
	}
	core.InterpolatorValue = interp

	if core.Extrapolator == "" {
		core.Extrapolator = "Constant"
	}
	extrap, err := interpolate.ParseExtrapMethod(core.Extrapolator)
	if err != nil {
		return err
	}
	core.ExtrapolatorValue = extrap

	if core.LutMethod == "" {
		core.LutMethod = "Trilinear"
	}
	lutMethod, err := lut.ParseMethod(core.LutMethod)
	if err != nil {
		return err
	}
	core.LutMethodValue = lutMethod

	return nil
}

// IlluminantConfig is an [illuminant "name"] subsection giving a
// whitepoint chromaticity.
type IlluminantConfig struct {
	// Required
	X, Y float64

	// Set by CheckInit.
	Name string
}

func (ill *IlluminantConfig) CheckInit(name string) error {
	if ill.Y <= 0 {
		return fmt.Errorf(
			"need a positive Y chromaticity for illuminant '%s', got %g",
			name, ill.Y,
		)
	}
	if ill.X < 0 || ill.X >= 1 || ill.Y >= 1 {
		return fmt.Errorf(
			"chromaticity of illuminant '%s' must be in [0, 1), but is (%g, %g)",
			name, ill.X, ill.Y,
		)
	}
	ill.Name = name
	return nil
}

func (ill *IlluminantConfig) Chromaticity() [2]float64 {
	return [2]float64{ill.X, ill.Y}
}

// Config is the full configuration file layout.
type Config struct {
	Core       CoreConfig
	Illuminant map[string]*IlluminantConfig
}

// ReadConfig reads and validates a gcfg configuration file.
func ReadConfig(fname string) (*Config, error) {
	cfg := &Config{}
	if err := gcfg.ReadFileInto(cfg, fname); err != nil {
		return nil, err
	}

	if err := cfg.Core.CheckInit(); err != nil {
		return nil, err
	}
	for name, ill := range cfg.Illuminant {
		if err := ill.CheckInit(name); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
