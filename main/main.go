package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/colour-science/colour-go/colorimetry"
	"github.com/colour-science/colour-go/graph"
	"github.com/colour-science/colour-go/io"
	"github.com/colour-science/colour-go/lut"
	"github.com/colour-science/colour-go/models"
)

const exampleConfigFile = `[core]
# Accepted values are 'reference', '1' and '100'.
scale = reference
# Accepted values are 'Linear', 'CubicSpline', 'Sprague', 'Pchip',
# 'Kernel', 'NearestNeighbour' and 'Null'.
interpolator = Linear
# Accepted values are 'Linear', 'Constant' and 'NaN'.
extrapolator = Constant
# Accepted values are 'Trilinear' and 'Tetrahedral'.
lutmethod = Trilinear

[illuminant "d50"]
x = 0.3457
y = 0.3585
`

func main() {
	var (
		convert, path, lutFile, sdFile string
		config, illuminant             string
		exampleConfig                  bool
	)
	vars := map[string]*string{
		"Convert": &convert,
		"Path":    &path,
		"Lut":     &lutFile,
		"SD":      &sdFile,
	}

	flag.StringVar(
		&convert, "Convert", "",
		"Conversion specification of the form 'Source:Target', e.g. "+
			"'CIE XYZ:CIE Lab'. The colour components are given as "+
			"trailing arguments.",
	)
	flag.StringVar(
		&path, "Path", "",
		"Prints the conversion chain for a 'Source:Target' pair without "+
			"executing it.",
	)
	flag.StringVar(
		&lutFile, "Lut", "",
		"Applies the 3D LUT in the given .cube file to the trailing RGB "+
			"arguments.",
	)
	flag.StringVar(
		&sdFile, "SD", "",
		"Integrates the spectral distribution in the given two-column "+
			"table to CIE XYZ under illuminant D65.",
	)
	flag.StringVar(
		&config, "Config", "",
		"Optional configuration file.",
	)
	flag.StringVar(
		&illuminant, "Illuminant", "",
		"Name of an [illuminant] section in the configuration file to "+
			"use as the conversion whitepoint.",
	)
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Prints an example configuration file to stdout.",
	)

	flag.Parse()

	if exampleConfig {
		fmt.Print(exampleConfigFile)
		return
	}

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	var cfg *io.Config
	if config != "" {
		cfg, err = io.ReadConfig(config)
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	switch modeName {
	case "Convert":
		source, target, err := splitPair(convert)
		if err != nil {
			log.Fatal(err.Error())
		}
		value := parseComponents(flag.Args())

		kw := graph.Kwargs{}
		if cfg != nil {
			kw["scale"] = cfg.Core.ScaleValue
		}
		if illuminant != "" {
			if cfg == nil {
				log.Fatal("'Illuminant' requires a 'Config' file.")
			}
			ill, ok := cfg.Illuminant[illuminant]
			if !ok {
				log.Fatalf(
					"No [illuminant \"%s\"] section in %s.", illuminant, config,
				)
			}
			kw["illuminant"] = ill.Chromaticity()
		}

		out, err := graph.Convert(value, source, target, kw)
		if err != nil {
			log.Fatal(err.Error())
		}
		chain, _ := graph.DescribePath(source, target)
		log.Printf("Converting along %s", chain)
		printComponents(out)

	case "Path":
		source, target, err := splitPair(path)
		if err != nil {
			log.Fatal(err.Error())
		}
		chain, err := graph.DescribePath(source, target)
		if err != nil {
			log.Fatal(err.Error())
		}
		fmt.Println(chain)

	case "Lut":
		table, err := io.ReadCube(lutFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		method := lutMethod(cfg)
		rgb := parseComponents(flag.Args())
		if len(rgb) != 3 {
			log.Fatalf("A LUT needs exactly 3 components, got %d.", len(rgb))
		}

		out, err := table.Eval(method, [3]float64{rgb[0], rgb[1], rgb[2]})
		if err != nil {
			log.Fatal(err.Error())
		}
		printComponents(out[:])

	case "SD":
		sd, err := io.ReadSD(sdFile, sdFile, 0, 1)
		if err != nil {
			log.Fatal(err.Error())
		}
		xyz, err := colorimetry.SDToXYZ(
			sd, colorimetry.CMFsCIE1931(), colorimetry.IlluminantD65(),
		)
		if err != nil {
			log.Fatal(err.Error())
		}
		xyY := models.XYZToxyY(xyz, models.D65)
		fmt.Printf("XYZ %.6f %.6f %.6f\n", xyz[0], xyz[1], xyz[2])
		fmt.Printf("xy  %.6f %.6f\n", xyY[0], xyY[1])

	default:
		panic("Impossible")
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}
	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}
	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but colour_cmd only accepts "+
				"one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}
	return setNames[0], nil
}

func splitPair(spec string) (source, target string, err error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf(
			"Invalid specification '%s', expected 'Source:Target'.", spec,
		)
	}
	return parts[0], parts[1], nil
}

func parseComponents(args []string) []float64 {
	if len(args) == 0 {
		log.Fatal("Must supply at least one colour component.")
	}
	out := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			log.Fatalf("Component '%s' is not a number.", arg)
		}
		out[i] = v
	}
	return out
}

func printComponents(v []float64) {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'f', 8, 64)
	}
	fmt.Println(strings.Join(parts, " "))
}

func lutMethod(cfg *io.Config) lut.Method {
	if cfg == nil {
		return lut.Trilinear
	}
	return cfg.Core.LutMethodValue
}
