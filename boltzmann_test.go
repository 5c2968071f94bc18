package main

import (
	"math"
	"testing"
)

func TestBoltzmannSingleton(t *testing.T) {
	c := NewConformer(1)
	Boltzmann([]*Conformer{c}, FreeEnergy, 298.15)
	if got, want := c.Weight, 1.0; got != want {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}

func TestBoltzmannDegenerate(t *testing.T) {
	var confs []*Conformer
	for id := 1; id <= 2; id++ {
		c := NewConformer(id)
		c.Free = -10.5
		confs = append(confs, c)
	}
	Boltzmann(confs, FreeEnergy, 298.15)
	for _, c := range confs {
		if got, want := c.Weight, 0.5; !approx(got, want) {
			t.Errorf("got %v, wanted %v for %s\n", got, want, c.Name())
		}
	}
}

func TestBoltzmannDegeneracyNumber(t *testing.T) {
	a, b := NewConformer(1), NewConformer(2)
	a.Free, b.Free = -10.5, -10.5
	a.Gi = 2.0
	Boltzmann([]*Conformer{a, b}, FreeEnergy, 298.15)
	if got, want := a.Weight, 2.0/3.0; !approx(got, want) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
	if got, want := b.Weight, 1.0/3.0; !approx(got, want) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}

func TestBoltzmannOrdering(t *testing.T) {
	a, b := NewConformer(1), NewConformer(2)
	a.Free, b.Free = -10.5, -10.4
	Boltzmann([]*Conformer{a, b}, FreeEnergy, 298.15)
	if a.Weight <= b.Weight {
		t.Errorf("lower energy got the smaller weight: %v vs %v\n",
			a.Weight, b.Weight)
	}
	if got, want := a.Weight+b.Weight, 1.0; !approx(got, want) {
		t.Errorf("weights sum to %v, wanted %v\n", got, want)
	}
}

func TestBoltzmannZeroTemperature(t *testing.T) {
	a, b := NewConformer(1), NewConformer(2)
	a.Free, b.Free = -10.5, -10.4
	Boltzmann([]*Conformer{a, b}, FreeEnergy, 0.0)
	if got, want := a.Weight, 1.0; !approx(got, want) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}

func TestBoltzmannSkipsUnset(t *testing.T) {
	a, b, c := NewConformer(1), NewConformer(2), NewConformer(3)
	a.Free, b.Free = -10.5, -10.5
	Boltzmann([]*Conformer{a, b, c}, FreeEnergy, 298.15)
	if got, want := a.Weight, 0.5; !approx(got, want) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
	if !math.IsNaN(c.Weight) {
		t.Errorf("conformer without the property was weighted: %v\n", c.Weight)
	}
}
