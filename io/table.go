package io

import (
	"fmt"

	"github.com/phil-mansfield/table"

	"github.com/colour-science/colour-go/colorimetry"
)

// readColumns reads the given zero-based columns from a
// whitespace-separated text table. The table package panics on I/O and
// parse failures, so those are recovered into ordinary errors here.
func readColumns(fname string, colIdxs []int) (cols [][]float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("io: reading %s: %v", fname, r)
		}
	}()
	return table.TextFile(fname).ReadFloat64s(colIdxs), nil
}

// ReadSD reads a spectral distribution from a whitespace-separated
// text table. wlCol and valCol are zero-based column indices.
func ReadSD(fname, name string, wlCol, valCol int) (*colorimetry.SpectralDistribution, error) {
	cols, err := readColumns(fname, []int{wlCol, valCol})
	if err != nil {
		return nil, err
	}
	return colorimetry.NewSD(name, cols[1], cols[0])
}

// ReadMSDS reads multi-spectral distributions from a
// whitespace-separated text table, one column per channel.
func ReadMSDS(fname, name string, wlCol int, valCols []int, labels []string) (*colorimetry.MultiSpectralDistributions, error) {
	if len(valCols) == 0 {
		return nil, fmt.Errorf("io: need at least one value column")
	}
	if labels != nil && len(labels) != len(valCols) {
		return nil, fmt.Errorf(
			"io: %d labels given for %d value columns",
			len(labels), len(valCols),
		)
	}

	colIdxs := append([]int{wlCol}, valCols...)
	cols, err := readColumns(fname, colIdxs)
	if err != nil {
		return nil, err
	}

	wls := cols[0]
	matrix := make([][]float64, len(wls))
	for i := range matrix {
		row := make([]float64, len(valCols))
		for c := range valCols {
			row[c] = cols[c+1][i]
		}
		matrix[i] = row
	}
	return colorimetry.NewMSDS(name, matrix, wls, labels)
}
