package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	v3 "github.com/rmera/gochem/v3"
	"gonum.org/v1/gonum/floats"
)

// Errors used throughout
var (
	ErrEnergyNotFound = errors.New("energy not found in output")
	ErrNoResults      = errors.New("too many calculations failed")
)

// CheckForFloat scans the whitespace-separated tokens of line from
// the left and returns the first one that parses as a float, skipping
// labels and other non-numeric tokens
func CheckForFloat(line string) (float64, bool) {
	for _, field := range strings.Fields(line) {
		if v, err := strconv.ParseFloat(field, 64); err == nil {
			return v, true
		}
	}
	return 0, false
}

// checkEnsembleLen reports whether the ensemble file can hold nconf
// blocks of nat atoms, warning when it cannot. nconf is the full
// configured count, not the currently active one, so the check stays
// strict after conformers are parked or evicted. Indexing continues
// best-effort either way.
func checkEnsembleLen(lines []string, nconf, nat int) bool {
	if nconf*(nat+2) > len(lines) {
		fmt.Printf("ERROR: Either the number of conformers (%d) "+
			"or the number of atoms (%d) is wrong!\n", nconf, nat)
		return false
	}
	return true
}

// ExtractEnergies reads the ensemble file and assigns each active
// conformer the energy found on its block's comment line. A missing
// or unparseable energy leaves that conformer's energy unset.
func ExtractEnergies(path string, nat int, e *Ensemble) error {
	lines, err := ReadLines(path)
	if err != nil {
		fmt.Printf("ERROR: File %s does not exist!\n", filepath.Base(path))
		return err
	}
	confs := e.ActiveConfs()
	checkEnsembleLen(lines, Conf.Int(Nconf), nat)
	for _, conf := range confs {
		idx := (conf.ID-1)*(nat+2) + 1
		if idx >= len(lines) {
			continue
		}
		if v, ok := CheckForFloat(lines[idx]); ok {
			conf.Xtb = v
		}
	}
	return nil
}

// RelativeEnergies assigns each conformer its xtb energy relative to
// the lowest one in the set, in kcal/mol. With no valid energy at all
// it warns and assigns nothing.
func RelativeEnergies(confs []*Conformer) {
	var valid []float64
	for _, conf := range confs {
		if conf.HasProp(XtbEnergy) {
			valid = append(valid, conf.Xtb)
		}
	}
	if len(valid) == 0 {
		Warn("Can't calculate rel_xtb_energy!")
		return
	}
	lowest := floats.Min(valid)
	for _, conf := range confs {
		if conf.HasProp(XtbEnergy) {
			conf.RelXtb = (conf.Xtb - lowest) * Au2Kcal
		}
	}
}

// RelativeFreeEnergies does the same for the free energies assigned
// after the optimization stage
func RelativeFreeEnergies(confs []*Conformer) {
	var valid []float64
	for _, conf := range confs {
		if conf.HasProp(FreeEnergy) {
			valid = append(valid, conf.Free)
		}
	}
	if len(valid) == 0 {
		Warn("Can't calculate relative free energies!")
		return
	}
	lowest := floats.Min(valid)
	for _, conf := range confs {
		if conf.HasProp(FreeEnergy) {
			conf.RelFree = (conf.Free - lowest) * Au2Kcal
		}
	}
}

// EnsembleToCoord splits the ensemble file into one geometry per
// active conformer, stores each on its Conformer, and writes a coord
// file into the conformer's stage folder unless one is already there.
// A conformer whose block cannot be parsed is skipped with a warning.
func EnsembleToCoord(path string, nat int, cwd, stage string, e *Ensemble) error {
	lines, err := ReadLines(path)
	if err != nil {
		fmt.Printf("ERROR: File %s does not exist!\n", filepath.Base(path))
		return err
	}
	confs := e.ActiveConfs()
	checkEnsembleLen(lines, Conf.Int(Nconf), nat)
	for _, conf := range confs {
		start := (conf.ID-1)*(nat+2) + 2
		end := conf.ID * (nat + 2)
		if end > len(lines) {
			Warn("ensemble block of %s is truncated", conf.Name())
			continue
		}
		var (
			atoms []string
			data  []float64
			bad   bool
		)
		for _, line := range lines[start:end] {
			fields := strings.Fields(line)
			if len(fields) < 4 {
				bad = true
				break
			}
			for j := 1; j < 4; j++ {
				f, err := strconv.ParseFloat(fields[j], 64)
				if err != nil {
					bad = true
					break
				}
				data = append(data, f)
			}
			if bad {
				break
			}
			atoms = append(atoms, strings.ToLower(fields[0]))
		}
		if bad {
			Warn("could not parse ensemble block of %s", conf.Name())
			continue
		}
		coords, err := v3.NewMatrix(data)
		if err != nil {
			Warn("could not parse ensemble block of %s: %v", conf.Name(), err)
			continue
		}
		conf.Atoms = atoms
		conf.Coords = coords
		outdir := filepath.Join(cwd, conf.Name(), stage)
		if _, err := os.Stat(filepath.Join(outdir, "coord")); err == nil {
			continue
		}
		if err := WriteCoord(outdir, atoms, coords); err != nil {
			Warn("could not write coord file for %s: %v", conf.Name(), err)
		}
	}
	return nil
}

// ReadOptEnergy reads the final energy out of the energy file the
// optimizer leaves in dir. The file holds one "cycle energy ..." line
// per step between $ delimiter lines; the last cycle wins.
func ReadOptEnergy(dir string) (float64, error) {
	lines, err := ReadFile(filepath.Join(dir, "energy"))
	if err != nil {
		return brokenFloat, err
	}
	result := brokenFloat
	found := false
	for _, line := range lines {
		if strings.Contains(line, "$") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		if _, err := strconv.Atoi(fields[0]); err != nil {
			continue
		}
		if v, err := strconv.ParseFloat(fields[1], 64); err == nil {
			result = v
			found = true
		}
	}
	if !found {
		return brokenFloat, ErrEnergyNotFound
	}
	return result, nil
}
