package main

import (
	"reflect"
	"testing"
)

func TestLastFolders(t *testing.T) {
	tests := []struct {
		path string
		n    int
		want string
	}{
		{"/home/test/CONF1/b97-3c", 1, "b97-3c"},
		{"/home/test/CONF1/b97-3c", 2, "CONF1/b97-3c"},
		{"/home/test/CONF1/b97-3c", 3, "test/CONF1/b97-3c"},
		{"/home/test/CONF1/b97-3c", 7, "b97-3c"},
	}
	for _, test := range tests {
		got := LastFolders(test.path, test.n)
		if got != test.want {
			t.Errorf("got %v, wanted %v\n", got, test.want)
		}
	}
}

func TestMD5Sum(t *testing.T) {
	got, err := MD5Sum("testfiles/coord")
	if err != nil {
		t.Fatal(err)
	}
	want := "08b91713eb99b07b9ced827c158cf46c"
	if got != want {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}

func TestFrange(t *testing.T) {
	tests := []struct {
		start, end, step float64
		want             []float64
	}{
		{0, 1, 0.25, []float64{0, 0.25, 0.5, 0.75}},
		{1, 0, 0.25, []float64{0, 0.25, 0.5, 0.75}},
		{0, 1, 0, nil},
	}
	for _, test := range tests {
		got := Frange(test.start, test.end, test.step)
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("got %v, wanted %v\n", got, test.want)
		}
	}
}

func TestFormatLine(t *testing.T) {
	got := FormatLine("solvent", "gas", []string{"gas", "chcl3"})
	want := "solvent: gas                     # [gas chcl3]\n"
	if got != want {
		t.Errorf("got %q, wanted %q\n", got, want)
	}
}

func TestReadLines(t *testing.T) {
	lines, err := ReadLines("testfiles/crest_conformers.xyz")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(lines), 12; got != want {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}
