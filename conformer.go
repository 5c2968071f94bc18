package main

import (
	"fmt"
	"math"
	"sort"

	v3 "github.com/rmera/gochem/v3"
)

// OptInfo tracks the outcome of a conformer's geometry optimization
// and, once it leaves the active set, the reason it was removed.
type OptInfo struct {
	Energy     float64
	Info       string
	CregenSort string
}

// Conformer is one 3-D arrangement of the molecule, tracked by its
// 1-based id for the whole run. Unset energies are NaN.
type Conformer struct {
	ID      int
	Atoms   []string
	Coords  *v3.Matrix // Angstrom
	Xtb     float64
	RelXtb  float64
	Free    float64
	RelFree float64
	Gi      float64
	Weight  float64
	Opt     OptInfo
}

// NewConformer returns a Conformer with every energy unset and the
// default degeneracy of 1
func NewConformer(id int) *Conformer {
	return &Conformer{
		ID:      id,
		Xtb:     brokenFloat,
		RelXtb:  brokenFloat,
		Free:    brokenFloat,
		RelFree: brokenFloat,
		Gi:      1.0,
		Weight:  brokenFloat,
		Opt:     OptInfo{Energy: brokenFloat},
	}
}

// Name returns the CONF<id> tag used for c's directory tree and in
// the rotamer-check trajectory
func (c *Conformer) Name() string { return fmt.Sprintf("CONF%d", c.ID) }

// Property selects one of the energy-like fields of a Conformer for
// weighting and printing
type Property int

const (
	FreeEnergy Property = iota
	XtbEnergy
	OptEnergy
	RelXtbEnergy
	RelFreeEnergy
	BmWeight
)

func (p Property) String() string {
	return []string{
		"free energy",
		"xtb energy",
		"optimization energy",
		"relative xtb energy",
		"relative free energy",
		"boltzmann weight",
	}[p]
}

// Prop returns the value of property p on c, NaN if it has not been
// set
func (c *Conformer) Prop(p Property) float64 {
	switch p {
	case FreeEnergy:
		return c.Free
	case XtbEnergy:
		return c.Xtb
	case OptEnergy:
		return c.Opt.Energy
	case RelXtbEnergy:
		return c.RelXtb
	case RelFreeEnergy:
		return c.RelFree
	case BmWeight:
		return c.Weight
	}
	panic("unknown property")
}

// HasProp reports whether property p has been set on c
func (c *Conformer) HasProp(p Property) bool { return !math.IsNaN(c.Prop(p)) }

// Ensemble owns every conformer the run has ever seen. An id lives in
// exactly one of the Active, Prev, or Stored sets at any time; Remove
// is the only way into Stored.
type Ensemble struct {
	confs  map[int]*Conformer
	Active []int
	Prev   []int
	Stored []int
}

// NewEnsemble returns an empty Ensemble
func NewEnsemble() *Ensemble {
	return &Ensemble{confs: make(map[int]*Conformer)}
}

// Add inserts c into the active set. A duplicate id is an error and
// leaves the ensemble unchanged.
func (e *Ensemble) Add(c *Conformer) error {
	if _, ok := e.confs[c.ID]; ok {
		return fmt.Errorf("conformer %d already present", c.ID)
	}
	e.confs[c.ID] = c
	e.Active = append(e.Active, c.ID)
	return nil
}

// Get returns the conformer with the given id, nil if unknown
func (e *Ensemble) Get(id int) *Conformer { return e.confs[id] }

// Len returns the number of conformers ever added
func (e *Ensemble) Len() int { return len(e.confs) }

func remove(ids []int, id int) ([]int, bool) {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...), true
		}
	}
	return ids, false
}

// Park moves an active conformer to the previously-processed set,
// where it stays a candidate for the rotamer check but is no longer
// iterated for new calculations
func (e *Ensemble) Park(id int) bool {
	ids, ok := remove(e.Active, id)
	if !ok {
		return false
	}
	e.Active = ids
	e.Prev = append(e.Prev, id)
	return true
}

// Remove moves a conformer out of whichever candidate set holds it
// and into Stored, recording the reason on its OptInfo. It reports
// whether the id was a candidate.
func (e *Ensemble) Remove(id int, reason string) bool {
	ids, ok := remove(e.Active, id)
	if ok {
		e.Active = ids
	} else {
		if ids, ok = remove(e.Prev, id); !ok {
			return false
		}
		e.Prev = ids
	}
	if c := e.confs[id]; c != nil && reason != "" {
		c.Opt.Info = reason
	}
	e.Stored = append(e.Stored, id)
	return true
}

func (e *Ensemble) gather(ids []int) []*Conformer {
	confs := make([]*Conformer, 0, len(ids))
	for _, id := range ids {
		confs = append(confs, e.confs[id])
	}
	sort.Slice(confs, func(i, j int) bool { return confs[i].ID < confs[j].ID })
	return confs
}

// ActiveConfs returns the active conformers sorted by id
func (e *Ensemble) ActiveConfs() []*Conformer { return e.gather(e.Active) }

// PrevConfs returns the previously-processed conformers sorted by id
func (e *Ensemble) PrevConfs() []*Conformer { return e.gather(e.Prev) }

// StoredConfs returns the removed conformers sorted by id
func (e *Ensemble) StoredConfs() []*Conformer { return e.gather(e.Stored) }

// Consistent reports whether the three id sets are pairwise disjoint
// and together cover exactly the ids ever added
func (e *Ensemble) Consistent() bool {
	seen := make(map[int]int)
	for _, ids := range [][]int{e.Active, e.Prev, e.Stored} {
		for _, id := range ids {
			seen[id]++
		}
	}
	if len(seen) != len(e.confs) {
		return false
	}
	for id, n := range seen {
		if n != 1 {
			return false
		}
		if _, ok := e.confs[id]; !ok {
			return false
		}
	}
	return true
}
