package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// Names used by the rotamer check scratch directory
const (
	rotCheckDir  = "conformer_rotamer_check"
	rotCheckName = "conformers.xyz"
	crestLog     = "crest.out"
	ensoTags     = "enso.tags"
)

// candidates merges the active and previously-processed conformers
// and sorts them ascending by optimization energy
func candidates(e *Ensemble) []*Conformer {
	cands := append(e.ActiveConfs(), e.PrevConfs()...)
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].Opt.Energy < cands[j].Opt.Energy
	})
	return cands
}

// prepareRotCheck sets up the scratch directory for a CREGEN pass:
// the lowest-energy candidate's coord file as the seed and a combined
// trajectory holding every candidate's stage geometry. Each candidate
// block is written twice, matching the trajectory the tool has always
// been fed.
func prepareRotCheck(e *Ensemble, cwd, stage string) ([]*Conformer, error) {
	dir := filepath.Join(cwd, rotCheckDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	os.Remove(filepath.Join(dir, rotCheckName))
	os.Remove(filepath.Join(dir, "coord"))
	cands := candidates(e)
	if len(cands) == 0 {
		return nil, fmt.Errorf("no candidates for the rotamer check")
	}
	seed := filepath.Join(cwd, cands[0].Name(), stage, "coord")
	if err := CopyFile(seed, filepath.Join(dir, "coord")); err != nil {
		fmt.Printf("ERROR: %v\n", err)
	}
	out, err := os.Create(filepath.Join(dir, rotCheckName))
	if err != nil {
		return nil, err
	}
	defer out.Close()
	for pass := 0; pass < 2; pass++ {
		for _, conf := range cands {
			atoms, coords, err := ReadCoord(filepath.Join(cwd, conf.Name(), stage))
			if err != nil {
				return nil, err
			}
			fmt.Fprintf(out, "  %d\n", len(atoms))
			fmt.Fprintf(out, "%20.8f        !%s\n", conf.Opt.Energy, conf.Name())
			for _, line := range XyzLines(atoms, coords) {
				fmt.Fprintln(out, line)
			}
		}
	}
	return cands, nil
}

// RunCrest invokes the external duplicate-detection tool against the
// seed coord file and the combined trajectory in dir, with its output
// captured in crest.out. The call blocks until the tool exits.
func RunCrest(dir string) error {
	cmd := exec.Command(Conf.Str(CrestCmd), "coord",
		"-cregen", rotCheckName,
		"-ethr", fmt.Sprint(Conf.Float(Ethr)),
		"-rthr", fmt.Sprint(Conf.Float(Rthr)),
		"-bthr", fmt.Sprint(Conf.Float(Bthr)),
		"-enso")
	cmd.Dir = dir
	out, err := os.Create(filepath.Join(dir, crestLog))
	if err != nil {
		return err
	}
	defer out.Close()
	cmd.Stdout = out
	cmd.Stderr = out
	return cmd.Run()
}

// ParseEnsoTags reads the tool's tags file and returns the CONF tags
// of the surviving, structurally distinct conformers. Each nonempty
// line's second field carries a survivor tag behind one marker byte.
func ParseEnsoTags(path string) (map[string]bool, error) {
	lines, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	keep := make(map[string]bool)
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 2 || len(fields[1]) < 2 {
			continue
		}
		keep[fields[1][1:]] = true
	}
	return keep, nil
}

// ApplyCregen moves every candidate whose tag is absent from keep out
// of its source list and into the stored set, recording the removal
// on its OptInfo first. It returns the removed ids.
func ApplyCregen(e *Ensemble, keep map[string]bool) (removed []int) {
	for _, conf := range candidates(e) {
		if keep[conf.Name()] {
			continue
		}
		conf.Opt.Info = "calculated"
		conf.Opt.CregenSort = "removed"
		fmt.Printf("!!!! Removing %s because it is sorted out by CREGEN.\n",
			conf.Name())
		e.Remove(conf.ID, "calculated")
		removed = append(removed, conf.ID)
	}
	return removed
}

// CrestRoutine checks the combined candidate set for rotamers and
// duplicates of each other. The check always runs; removing the
// duplicates it finds depends on the crestcheck keyword. A missing
// tags file skips the removal step entirely rather than guessing.
func CrestRoutine(e *Ensemble, cwd, stage string) error {
	fmt.Print("\nChecking for identical structures in ensemble with CREGEN!\n\n")
	dir := filepath.Join(cwd, rotCheckDir)
	if _, err := prepareRotCheck(e, cwd, stage); err != nil {
		fmt.Printf("ERROR: %v\n", err)
		return err
	}
	if err := RunCrest(dir); err != nil {
		fmt.Printf("ERROR: %v\n", err)
	}
	keep, err := ParseEnsoTags(filepath.Join(dir, ensoTags))
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
		fmt.Printf("ERROR: output file (%s) of CREST routine does not exist!\n",
			ensoTags)
		return err
	}
	if Conf.Bool(Crestcheck) {
		ApplyCregen(e, keep)
	}
	return nil
}
