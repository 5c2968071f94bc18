package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEnsureFolders(t *testing.T) {
	dir := t.TempDir()
	e := newTestEnsemble(t, 3)
	errs := EnsureFolders(e, dir, "b97-3c", true)
	if len(errs) != 0 {
		t.Fatalf("got %v, wanted no errors\n", errs)
	}
	for _, conf := range e.ActiveConfs() {
		sub := filepath.Join(dir, conf.Name(), "b97-3c")
		if _, err := os.Stat(sub); err != nil {
			t.Errorf("missing folder %s\n", sub)
		}
	}
	// second call is a no-op
	if errs := EnsureFolders(e, dir, "b97-3c", true); len(errs) != 0 {
		t.Errorf("got %v, wanted no errors\n", errs)
	}
}

func TestCheckForFolders(t *testing.T) {
	dir := t.TempDir()
	e := newTestEnsemble(t, 2)
	EnsureFolders(e, dir, "b97-3c", true)
	confs := e.ActiveConfs()
	if errs, bad := CheckForFolders(dir, confs, "b97-3c"); bad {
		t.Errorf("got %v, wanted no errors\n", errs)
	}
	if err := os.RemoveAll(filepath.Join(dir, "CONF2")); err != nil {
		t.Fatal(err)
	}
	errs, bad := CheckForFolders(dir, confs, "b97-3c")
	if !bad || len(errs) != 1 {
		t.Errorf("got %v, wanted one missing directory\n", errs)
	}
}

func TestBackupSuffix(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"ranking.dat.3", 3},
		{"ranking.dat.save", 0},
		{"ranking", 0},
	}
	for _, test := range tests {
		if got := backupSuffix(test.name); got != test.want {
			t.Errorf("got %v, wanted %v\n", got, test.want)
		}
	}
}

func TestRotateBackupsGap(t *testing.T) {
	dir := t.TempDir()
	name := "ranking.dat"
	for _, file := range []string{name, name + ".1", name + ".3"} {
		if err := writeFile(t, filepath.Join(dir, file), file); err != nil {
			t.Fatal(err)
		}
	}
	if err := RotateBackups(dir, name); err != nil {
		t.Fatal(err)
	}
	want := []string{name + ".1", name + ".2", name + ".4"}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, entry := range entries {
		got = append(got, entry.Name())
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}

func TestRotateBackups(t *testing.T) {
	dir := t.TempDir()
	name := "ranking.dat"
	for i, contents := range []string{"first", "second", "third"} {
		if i > 0 {
			if err := RotateBackups(dir, name); err != nil {
				t.Fatal(err)
			}
		}
		if err := writeFile(t, filepath.Join(dir, name), contents); err != nil {
			t.Fatal(err)
		}
	}
	tests := []struct {
		file string
		want string
	}{
		{name, "third"},
		{name + ".1", "second"},
		{name + ".2", "first"},
	}
	for _, test := range tests {
		data, err := os.ReadFile(filepath.Join(dir, test.file))
		if err != nil {
			t.Fatal(err)
		}
		if got := string(data); got != test.want {
			t.Errorf("got %v, wanted %v in %s\n", got, test.want, test.file)
		}
	}
}
