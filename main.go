/*
censort
-------
The goal of this program is to manage the life cycle of a molecular
conformer ensemble: split the generator's ensemble file into one
working directory per conformer, collect the energies of the external
geometry optimizations, weight the survivors, cross-check them for
duplicates, and write the ranked ensemble back out.
*/

package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"runtime/pprof"
	"sort"
)

func main() {
	Args := ParseFlags()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}
	infile := "censort.in"
	if len(Args) >= 1 {
		infile = Args[0]
	}
	if err := ParseInfile(infile); err != nil {
		errExit(err, "going to exit!")
	}
	nconf := Conf.Int(Nconf)
	nat := Conf.Int(Natoms)
	if nconf < 1 || nat < 1 {
		errExit(fmt.Errorf("nconf=%d, natoms=%d", nconf, nat),
			"- both must be set in the input file")
	}
	cwd, err := os.Getwd()
	if err != nil {
		errExit(err, "going to exit!")
	}
	stage := Conf.Str(Func)
	ensemble := filepath.Join(cwd, Conf.Str(EnsembleFile))
	// a stored hash identifies a restart on a different ensemble file
	if want := Conf.Str(MD5); want != "" {
		got, err := MD5Sum(ensemble)
		if err != nil {
			Warn("Could not hash %s: %v", Conf.Str(EnsembleFile), err)
		} else if got != want {
			Warn("The ensemble file %s has changed since the previous run!",
				Conf.Str(EnsembleFile))
		}
	}
	e := NewEnsemble()
	for id := 1; id <= nconf; id++ {
		if err := e.Add(NewConformer(id)); err != nil {
			errExit(err, "going to exit!")
		}
	}
	if err := ExtractEnergies(ensemble, nat, e); err != nil {
		errExit(err, "going to exit!")
	}
	RelativeEnergies(e.ActiveConfs())
	// conformers optimized in a previous run keep their result and
	// skip the queue
	for _, conf := range e.ActiveConfs() {
		dir := filepath.Join(cwd, conf.Name(), stage)
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		v, err := ReadOptEnergy(dir)
		if err != nil {
			continue
		}
		conf.Opt.Energy = v
		conf.Opt.Info = "calculated"
		conf.Free = v
		e.Park(conf.ID)
	}
	if prev := e.PrevConfs(); len(prev) > 0 {
		fmt.Printf("Taking %d structure(s) from a previous run.\n", len(prev))
		CheckForFolders(cwd, prev, stage)
	}
	EnsureFolders(e, cwd, stage, *silent)
	if err := EnsembleToCoord(ensemble, nat, cwd, stage, e); err != nil {
		errExit(err, "going to exit!")
	}
	// the optimizations themselves run externally; collect whatever
	// they left behind. A resume with nothing left to calculate has
	// no failure rate to judge.
	results := CollectResults(e, cwd, stage)
	if len(results) > 0 {
		CheckTasks(results, Conf.Bool(HardStop), Conf.Float(FailThresh))
	}
	cands := append(e.ActiveConfs(), e.PrevConfs()...)
	RelativeFreeEnergies(cands)
	Boltzmann(cands, FreeEnergy, Conf.Float(Temperature))
	var relx, relf []float64
	for _, conf := range cands {
		if conf.HasProp(RelXtbEnergy) && conf.HasProp(RelFreeEnergy) {
			relx = append(relx, conf.RelXtb)
			relf = append(relf, conf.RelFree)
		}
	}
	fmt.Printf("Spearman rank correlation coefficient between "+
		"GFN-xTB and DFT energies: %.3f\n", Spearman(relx, relf))
	CrestRoutine(e, cwd, stage)
	cands = append(e.ActiveConfs(), e.PrevConfs()...)
	minfree := brokenFloat
	for _, conf := range cands {
		if conf.HasProp(FreeEnergy) &&
			(math.IsNaN(minfree) || conf.Free < minfree) {
			minfree = conf.Free
		}
	}
	RotateBackups(cwd, "ranking.dat")
	if !*overwrite {
		RotateBackups(cwd, Conf.Str(TrajFile))
	}
	cols := []Column{
		{Header: "CONF#", Desc: "#", String: (*Conformer).Name},
		{Header: "E(GFN-xTB)", Desc: "[a.u.]", Prec: 7,
			Float: func(c *Conformer) float64 { return c.Xtb }},
		{Header: "dE(GFN-xTB)", Desc: "[kcal/mol]", Prec: 2,
			Float: func(c *Conformer) float64 { return c.RelXtb }},
		{Header: "E(DFT)", Desc: "[Eh]", Prec: 7,
			Float: func(c *Conformer) float64 { return c.Free }},
		{Header: "dE(DFT)", Desc: "[kcal/mol]", Prec: 2,
			Float: func(c *Conformer) float64 { return c.RelFree }},
		{Header: "weight", Desc: "[%]", Prec: 2,
			Float: func(c *Conformer) float64 { return c.Weight * 100 }},
	}
	if err := Printout(filepath.Join(cwd, "ranking.dat"),
		cols, cands, minfree); err != nil {
		Warn("Could not write ranking.dat: %v", err)
	}
	// trajectory in rank order, best first
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].Free < cands[j].Free
	})
	traj := Conf.Str(TrajFile)
	if err := WriteTrj(filepath.Join(cwd, traj),
		cwd, stage, cands, *overwrite); err == nil {
		fmt.Printf("Wrote %s for the %d remaining conformer(s).\n",
			traj, len(cands))
	}
	if _, err := WriteAnmrrc(cwd); err != nil {
		Warn("Could not write .anmrrc: %v", err)
	}
	if !e.Consistent() {
		Warn("conformer bookkeeping is inconsistent!")
	}
	fmt.Printf("\ncensort finished with %d warning(s).\n", Global.Warnings)
}
