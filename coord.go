package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	v3 "github.com/rmera/gochem/v3"
)

// Tokens delimiting a coord file. Coordinates inside are in Bohr,
// one "x y z element" line per atom.
const (
	coordStart = "$coord"
	coordEnd   = "$end"
)

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// ReadCoord reads the coord file at path, which may name either the
// file itself or its directory, and returns the element symbols
// (lower case) and coordinates in Angstrom. A coordinate line that
// cannot be split into at least four fields with three leading floats
// is an error.
func ReadCoord(path string) (atoms []string, coords *v3.Matrix, err error) {
	if filepath.Base(path) != "coord" {
		path = filepath.Join(path, "coord")
	}
	lines, err := ReadLines(path)
	if err != nil {
		return nil, nil, err
	}
	var data []float64
	for i, line := range lines {
		if i == 0 {
			continue
		}
		if strings.Contains(line, "$") {
			break
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, nil, fmt.Errorf("malformed coord line %d in %s",
				i+1, LastFolders(path, 2))
		}
		for j := 0; j < 3; j++ {
			f, err := strconv.ParseFloat(fields[j], 64)
			if err != nil {
				return nil, nil, fmt.Errorf(
					"malformed coordinate %q on line %d in %s",
					fields[j], i+1, LastFolders(path, 2))
			}
			data = append(data, f*Bohr2Ang)
		}
		atoms = append(atoms, strings.ToLower(fields[3]))
	}
	if len(atoms) == 0 {
		return nil, nil, fmt.Errorf("no coordinates in %s", LastFolders(path, 2))
	}
	coords, err = v3.NewMatrix(data)
	if err != nil {
		return nil, nil, err
	}
	return atoms, coords, nil
}

// XyzLines formats atoms and Angstrom coordinates as the xyz body
// lines used in ensemble and trajectory files
func XyzLines(atoms []string, coords *v3.Matrix) (lines []string) {
	for i, a := range atoms {
		lines = append(lines, fmt.Sprintf("%-3s % .10f  % .10f  % .10f",
			title(a), coords.At(i, 0), coords.At(i, 1), coords.At(i, 2)))
	}
	return
}

// WriteCoord writes atoms and Angstrom coordinates as a coord file in
// dir, converting back to Bohr and lower-casing the element symbols
func WriteCoord(dir string, atoms []string, coords *v3.Matrix) error {
	f, err := os.Create(filepath.Join(dir, "coord"))
	if err != nil {
		return err
	}
	defer f.Close()
	fmt.Fprintln(f, coordStart)
	for i, a := range atoms {
		fmt.Fprintf(f, "% .14f % .14f  % .14f  %s\n",
			coords.At(i, 0)/Bohr2Ang, coords.At(i, 1)/Bohr2Ang,
			coords.At(i, 2)/Bohr2Ang, strings.ToLower(a))
	}
	fmt.Fprintln(f, coordEnd)
	return nil
}

// WriteTrj appends the geometries of confs to the trajectory file at
// outpath, each tagged with its total and xtb energies and CONF id.
// Geometries are re-read from each conformer's stage folder so the
// trajectory reflects what is actually on disk.
func WriteTrj(outpath, cwd, stage string, confs []*Conformer, overwrite bool) error {
	if overwrite {
		if _, err := os.Stat(outpath); err == nil {
			os.Remove(outpath)
		}
	}
	out, err := os.OpenFile(outpath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		Warn("Could not write trajectory: %s.", LastFolders(outpath, 1))
		return err
	}
	defer out.Close()
	for _, conf := range confs {
		atoms, coords, err := ReadCoord(filepath.Join(cwd, conf.Name(), stage))
		if err != nil {
			Warn("Could not write trajectory block for %s: %v", conf.Name(), err)
			continue
		}
		fmt.Fprintf(out, "  %d\n", len(atoms))
		fmt.Fprintf(out, "G(tot)= %20.8f  G(xTB)= %20.8f        !%s\n",
			conf.Free, conf.Xtb, conf.Name())
		for _, line := range XyzLines(atoms, coords) {
			fmt.Fprintln(out, line)
		}
	}
	return nil
}
