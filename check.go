package main

import (
	"fmt"
	"path/filepath"
)

// JobResult reports whether the external calculation for one
// conformer succeeded
type JobResult struct {
	ID      int
	Success bool
}

// CollectResults reads the optimization outcome of every active
// conformer from its stage folder. A success records the energy on
// the conformer; a failure evicts it from the active set. An empty
// active set yields no results, as on a resumed run where every
// conformer already finished.
func CollectResults(e *Ensemble, cwd, stage string) []JobResult {
	var results []JobResult
	for _, conf := range e.ActiveConfs() {
		dir := filepath.Join(cwd, conf.Name(), stage)
		v, err := ReadOptEnergy(dir)
		if err != nil {
			Warn("optimization of %s failed: %v", conf.Name(), err)
			e.Remove(conf.ID, "failed")
			results = append(results, JobResult{conf.ID, false})
			continue
		}
		conf.Opt.Energy = v
		conf.Opt.Info = "calculated"
		conf.Free = v
		results = append(results, JobResult{conf.ID, true})
	}
	return results
}

// FailRate computes the fraction of failed results. Zero results is
// an error: there is nothing left to report on.
func FailRate(results []JobResult) (float64, error) {
	if len(results) == 0 {
		return 0, ErrNoResults
	}
	var failed int
	for _, r := range results {
		if !r.Success {
			failed++
		}
	}
	return float64(failed) / float64(len(results)), nil
}

// CheckTasks halts the pipeline when too many calculations failed.
// With no results at all it always exits; at or above thresh it exits
// only when hard is set and warns otherwise.
func CheckTasks(results []JobResult, hard bool, thresh float64) {
	rate, err := FailRate(results)
	if err != nil {
		errExit(err, "going to exit!")
	}
	switch {
	case rate >= thresh && hard:
		errExit(fmt.Errorf("%.0f %% of the calculations failed", rate*100),
			"going to exit!")
	case rate >= thresh:
		Warn("%.0f %% of the calculations failed!", rate*100)
	}
}
