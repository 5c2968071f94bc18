package main

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	v3 "github.com/rmera/gochem/v3"
)

const eps = 1e-8

func approx(a, b float64) bool { return math.Abs(a-b) < eps }

func writeFile(t *testing.T, path, contents string) error {
	t.Helper()
	return os.WriteFile(path, []byte(contents), 0644)
}

func TestReadCoord(t *testing.T) {
	atoms, coords, err := ReadCoord("testfiles/coord")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"h", "h"}; !reflect.DeepEqual(atoms, want) {
		t.Errorf("got %v, wanted %v\n", atoms, want)
	}
	if got, want := coords.At(1, 2), 0.75; !approx(got, want) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
	// the directory form resolves to the same file
	datoms, _, err := ReadCoord("testfiles")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(datoms, atoms) {
		t.Errorf("got %v, wanted %v\n", datoms, atoms)
	}
}

func TestWriteCoordRoundTrip(t *testing.T) {
	dir := t.TempDir()
	atoms := []string{"o", "h"}
	coords, err := v3.NewMatrix([]float64{
		0.0, 0.0, 0.0,
		0.0, 0.0, 0.96,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteCoord(dir, atoms, coords); err != nil {
		t.Fatal(err)
	}
	gotAtoms, gotCoords, err := ReadCoord(filepath.Join(dir, "coord"))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(gotAtoms, atoms) {
		t.Errorf("got %v, wanted %v\n", gotAtoms, atoms)
	}
	for i := range atoms {
		for j := 0; j < 3; j++ {
			if !approx(gotCoords.At(i, j), coords.At(i, j)) {
				t.Errorf("got %v, wanted %v at (%d,%d)\n",
					gotCoords.At(i, j), coords.At(i, j), i, j)
			}
		}
	}
}

func TestReadCoordMalformed(t *testing.T) {
	dir := t.TempDir()
	if err := writeFile(t, filepath.Join(dir, "coord"),
		"$coord\n broken line\n$end\n"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := ReadCoord(dir); err == nil {
		t.Errorf("expected error on malformed coord file\n")
	}
}

func TestXyzLines(t *testing.T) {
	coords, err := v3.NewMatrix([]float64{0.1, -0.2, 0.75})
	if err != nil {
		t.Fatal(err)
	}
	got := XyzLines([]string{"cl"}, coords)
	want := []string{
		"Cl  0.1000000000  -0.2000000000   0.7500000000",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, wanted %q\n", got, want)
	}
}
