package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteAnmrrc(t *testing.T) {
	old := Conf
	defer func() { Conf = old }()
	dir := t.TempDir()
	refs, err := WriteAnmrrc(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := refs["h"], 32.099; !approx(got, want) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
	data, err := os.ReadFile(filepath.Join(dir, ".anmrrc"))
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	want := `7 8 XH acid atoms
ENSO qm= TM lw= 1.2
TMS[gas] tpss[DCOSMO-RS]/def2-TZVP//b97-3c[DCOSMO-RS]/def2-TZVP
1  32.099     0.0    1
6  186.974    0.0    1
9  150.451    0.0    0
14 334.570    0.0    0
15 276.865    0.0    0
`
	if got != want {
		t.Errorf("got\n%q, wanted\n%q\n", got, want)
	}
}

func TestWriteAnmrrcResonanceFreq(t *testing.T) {
	old := Conf
	defer func() { Conf = old }()
	Conf.Set(ResonanceFreq, 300.0)
	dir := t.TempDir()
	if _, err := WriteAnmrrc(dir); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, ".anmrrc"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(string(data), "\n")
	want := "ENSO qm= TM mf= 300 lw= 1.0  J= on S= on T= 298.15 "
	if got := lines[1]; got != want {
		t.Errorf("got %q, wanted %q\n", got, want)
	}
}

func TestWriteAnmrrcSolventShift(t *testing.T) {
	old := Conf
	defer func() { Conf = old }()
	Conf.Set(Solvent, "chcl3")
	refs, err := WriteAnmrrc(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if got, want := refs["h"], 32.078; !approx(got, want) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}

func TestWriteAnmrrcDefaultRefsFound(t *testing.T) {
	// the shipped tables must resolve every default reference compound
	old := Conf
	defer func() { Conf = old }()
	refs, err := WriteAnmrrc(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for el, want := range map[string]float64{
		"h":  32.099,
		"c":  186.974,
		"f":  150.451,
		"p":  276.865,
		"si": 334.570,
	} {
		if got := refs[el]; !approx(got, want) {
			t.Errorf("got %v, wanted %v for %s\n", got, want, el)
		}
	}
}

func TestWriteAnmrrcOrca(t *testing.T) {
	old := Conf
	defer func() { Conf = old }()
	Conf.Set(Prog4S, "orca")
	Conf.Set(Func, "pbeh-3c")
	refs, err := WriteAnmrrc(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for el, want := range map[string]float64{
		"f":  166.028,
		"p":  291.33,
		"si": 344.281,
	} {
		if got := refs[el]; !approx(got, want) {
			t.Errorf("got %v, wanted %v for %s\n", got, want, el)
		}
	}
}

func TestShieldTableLookupMiss(t *testing.T) {
	if got, ok := hTmShieldings.lookup("TMS", "b3lyp", "tpss", "gas"); ok {
		t.Errorf("got %v for a functional without reference data\n", got)
	} else if got != "0" {
		t.Errorf("got %v, wanted 0\n", got)
	}
	if _, ok := shieldTable(nil).lookup("TMP", "b97-3c", "tpss", "gas"); ok {
		t.Errorf("nil table reported a hit\n")
	}
}
