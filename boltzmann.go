package main

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Boltzmann assigns each conformer its normalized population weight
// at temperature T, computed from property p. Weights sum to 1; a
// singleton set gets weight 1.0 by definition. Conformers missing the
// property are excluded from the minimum search and skipped in the
// sums with a warning; callers should filter them out beforehand.
func Boltzmann(confs []*Conformer, p Property, T float64) {
	if len(confs) == 1 {
		confs[0].Weight = 1.0
		return
	}
	if T == 0 {
		T += 0.00001 // avoid division by zero
	}
	var valid []float64
	for _, conf := range confs {
		if conf.HasProp(p) {
			valid = append(valid, conf.Prop(p))
		}
	}
	if len(valid) == 0 {
		Warn("Boltzmann weight can not be calculated!")
		return
	}
	min := floats.Min(valid)
	var bsum float64
	for _, conf := range confs {
		if !conf.HasProp(p) {
			Warn("%s has no %s and is skipped in the Boltzmann sum",
				conf.Name(), p)
			continue
		}
		bsum += conf.Gi * math.Exp(-(conf.Prop(p)-min)*Au2J/(Kb*T))
	}
	for _, conf := range confs {
		if !conf.HasProp(p) {
			continue
		}
		conf.Weight = conf.Gi * math.Exp(-(conf.Prop(p)-min)*Au2J/(Kb*T)) / bsum
	}
}
