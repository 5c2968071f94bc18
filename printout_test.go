package main

import (
	"os"
	"path/filepath"
	"testing"
)

func testColumns() []Column {
	return []Column{
		{Header: "CONF#", Desc: "#", String: (*Conformer).Name},
		{Header: "E", Desc: "[Eh]", Prec: 7,
			Float: func(c *Conformer) float64 { return c.Free }},
		{Header: "dE", Desc: "[kcal/mol]", Prec: 2,
			Float: func(c *Conformer) float64 { return c.RelFree }},
	}
}

func TestPrintout(t *testing.T) {
	a, b := NewConformer(1), NewConformer(2)
	a.Free, a.RelFree = -10.5, 0.0
	b.Free, b.RelFree = -10.4, 2.51
	out := filepath.Join(t.TempDir(), "ranking.dat")
	err := Printout(out, testColumns(), []*Conformer{b, a}, -10.5)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	want := `CONF#           E         dE
    #        [Eh] [kcal/mol]
CONF1 -10.5000000       0.00     <------
CONF2 -10.4000000       2.51
`
	if got != want {
		t.Errorf("got\n%q, wanted\n%q\n", got, want)
	}
}

func TestPrintoutSplitUnit(t *testing.T) {
	// a unit outside the plain set moves to its own header line
	cols := []Column{
		{Header: "CONF#", Desc: "#", String: (*Conformer).Name},
		{Header: "shift", Desc: "sigma [ppm]", Prec: 2,
			Float: func(c *Conformer) float64 { return c.Free }},
	}
	a := NewConformer(1)
	a.Free = 31.88
	out := filepath.Join(t.TempDir(), "shifts.dat")
	if err := Printout(out, cols, []*Conformer{a}, brokenFloat); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	want := `CONF# shift
    # sigma
      [ppm]
CONF1 31.88
`
	if got != want {
		t.Errorf("got\n%q, wanted\n%q\n", got, want)
	}
}

func TestPrintoutNoAccessor(t *testing.T) {
	cols := []Column{{Header: "empty", Desc: "#"}}
	a := NewConformer(1)
	out := filepath.Join(t.TempDir(), "broken.dat")
	if err := Printout(out, cols, []*Conformer{a}, brokenFloat); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("report file missing after accessor failure\n")
	}
}
