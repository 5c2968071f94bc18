package main

import (
	"math"
	"testing"
)

func TestProcessInput(t *testing.T) {
	old := Conf
	defer func() { Conf = old }()
	tests := []struct {
		line string
		key  Key
		want interface{}
	}{
		{"nconf=42", Nconf, 42},
		{"temperature=310.0", Temperature, 310.0},
		{"crestcheck=on", Crestcheck, true},
		{"hardstop=off", HardStop, false},
		{"solvent= chcl3", Solvent, "chcl3"},
		{"ethr=0.2", Ethr, 0.2},
	}
	for _, test := range tests {
		ProcessInput(test.line)
		if got := Conf.At(test.key); got != test.want {
			t.Errorf("got %v, wanted %v\n", got, test.want)
		}
	}
}

func TestTemperatureFallback(t *testing.T) {
	old := Conf
	defer func() { Conf = old }()
	ProcessInput("temperature=hot")
	if got, want := Conf.Float(Temperature), 298.15; got != want {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}

func TestParseInfile(t *testing.T) {
	old := Conf
	defer func() { Conf = old }()
	if err := ParseInfile("testfiles/test.in"); err != nil {
		t.Fatal(err)
	}
	if got, want := Conf.Int(Nconf), 3; got != want {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
	if got, want := Conf.Int(Natoms), 2; got != want {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
	if got, want := Conf.Bool(Crestcheck), true; got != want {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
	if got, want := Conf.Str(Solvent), "chcl3"; got != want {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
	if got, want := Conf.Float(ResonanceFreq), 300.0; got != want {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
	// defaults survive keywords the file does not mention
	if got, want := Conf.Str(CrestCmd), "crest"; got != want {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
	if got, want := Conf.Float(Rthr), 0.175; got != want {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}

func TestResonanceFreqDefault(t *testing.T) {
	if !math.IsNaN(Conf.Float(ResonanceFreq)) {
		t.Errorf("resonance frequency default is not unset\n")
	}
}
