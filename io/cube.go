package io

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/colour-science/colour-go/lut"
)

// ReadCube reads an Adobe/IRIDAS .cube file into a 3D LUT table. Only
// 3D LUTs on the [0, 1] domain are supported; red varies fastest in
// the data block, matching the table's memory layout.
func ReadCube(fname string) (*lut.Table3D, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		size int
		data [][3]float64
	)

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)

		switch fields[0] {
		case "TITLE":
			continue
		case "LUT_1D_SIZE":
			return nil, fmt.Errorf(
				"%s:%d: file holds a 1D LUT, use ReadCube1D", fname, line,
			)
		case "LUT_3D_SIZE":
			if len(fields) != 2 {
				return nil, fmt.Errorf("%s:%d: malformed LUT_3D_SIZE", fname, line)
			}
			size, err = strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: malformed LUT_3D_SIZE: %v", fname, line, err)
			}
			data = make([][3]float64, 0, size*size*size)
			continue
		case "DOMAIN_MIN", "DOMAIN_MAX":
			want := 0.0
			if fields[0] == "DOMAIN_MAX" {
				want = 1
			}
			for _, s := range fields[1:] {
				v, err := strconv.ParseFloat(s, 64)
				if err != nil || v != want {
					return nil, fmt.Errorf(
						"%s:%d: only the [0, 1] domain is supported", fname, line,
					)
				}
			}
			continue
		}

		if size == 0 {
			return nil, fmt.Errorf(
				"%s:%d: data before LUT_3D_SIZE", fname, line,
			)
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf(
				"%s:%d: expected 3 components, got %d", fname, line, len(fields),
			)
		}
		var entry [3]float64
		for i, s := range fields {
			entry[i], err = strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %v", fname, line, err)
			}
		}
		data = append(data, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if size == 0 {
		return nil, fmt.Errorf("%s: missing LUT_3D_SIZE", fname)
	}
	if len(data) != size*size*size {
		return nil, fmt.Errorf(
			"%s: LUT_3D_SIZE %d needs %d entries, got %d",
			fname, size, size*size*size, len(data),
		)
	}
	return lut.New(size, data)
}

// ReadCube1D reads an Adobe/IRIDAS .cube file holding a 1D LUT into a
// curve table. Only the [0, 1] domain is supported.
func ReadCube1D(fname string) (*lut.Table1D, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		size int
		data [][3]float64
	)

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)

		switch fields[0] {
		case "TITLE":
			continue
		case "LUT_3D_SIZE":
			return nil, fmt.Errorf(
				"%s:%d: file holds a 3D LUT, use ReadCube", fname, line,
			)
		case "LUT_1D_SIZE":
			if len(fields) != 2 {
				return nil, fmt.Errorf("%s:%d: malformed LUT_1D_SIZE", fname, line)
			}
			size, err = strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: malformed LUT_1D_SIZE: %v", fname, line, err)
			}
			data = make([][3]float64, 0, size)
			continue
		case "DOMAIN_MIN", "DOMAIN_MAX":
			want := 0.0
			if fields[0] == "DOMAIN_MAX" {
				want = 1
			}
			for _, s := range fields[1:] {
				v, err := strconv.ParseFloat(s, 64)
				if err != nil || v != want {
					return nil, fmt.Errorf(
						"%s:%d: only the [0, 1] domain is supported", fname, line,
					)
				}
			}
			continue
		}

		if size == 0 {
			return nil, fmt.Errorf(
				"%s:%d: data before LUT_1D_SIZE", fname, line,
			)
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf(
				"%s:%d: expected 3 components, got %d", fname, line, len(fields),
			)
		}
		var entry [3]float64
		for i, s := range fields {
			entry[i], err = strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %v", fname, line, err)
			}
		}
		data = append(data, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if size == 0 {
		return nil, fmt.Errorf("%s: missing LUT_1D_SIZE", fname)
	}
	if len(data) != size {
		return nil, fmt.Errorf(
			"%s: LUT_1D_SIZE %d needs %d entries, got %d",
			fname, size, size, len(data),
		)
	}
	return lut.New1D(data)
}

// WriteCube writes a 3D LUT table as an Adobe/IRIDAS .cube file.
func WriteCube(fname, title string, t *lut.Table3D) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if title != "" {
		fmt.Fprintf(w, "TITLE %q\n", title)
	}
	fmt.Fprintf(w, "LUT_3D_SIZE %d\n", t.Size())
	for _, entry := range t.Data() {
		fmt.Fprintf(w, "%.6f %.6f %.6f\n", entry[0], entry[1], entry[2])
	}
	return w.Flush()
}
