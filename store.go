package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// EnsureFolders creates CONF<id>/<stage> for every active conformer.
// Creation is idempotent. A conformer whose folder cannot be created
// is evicted from the active set with the failure recorded; the batch
// continues.
func EnsureFolders(e *Ensemble, cwd, stage string, silent bool) (errs []string) {
	for _, conf := range e.ActiveConfs() {
		dir := filepath.Join(cwd, conf.Name(), stage)
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Println(err)
			if _, serr := os.Stat(dir); serr != nil {
				fmt.Printf("ERROR: Could not create folder for %s!\n", conf.Name())
				fmt.Printf("%s is removed, because IO failed!\n", conf.Name())
				errs = append(errs,
					fmt.Sprintf("%s was removed, because IO failed!", conf.Name()))
				e.Remove(conf.ID, "failed")
			}
		}
	}
	if !silent {
		fmt.Println("Constructed folders!")
	}
	return errs
}

// CheckForFolders verifies that the stage folder of every conformer
// in confs exists, as it must if that stage was calculated in a
// previous run. Missing folders are reported; the caller decides
// whether the run can continue.
func CheckForFolders(cwd string, confs []*Conformer, stage string) (errs []string, bad bool) {
	for _, conf := range confs {
		dir := filepath.Join(cwd, conf.Name(), stage)
		if _, err := os.Stat(dir); err != nil {
			line := fmt.Sprintf(
				"ERROR: directory of %s does not exist, although it was calculated before!",
				LastFolders(dir, 2))
			fmt.Println(line)
			errs = append(errs, line)
			bad = true
		}
	}
	if bad {
		fmt.Print("One or multiple directories are missing.\n\n")
	}
	return errs, bad
}

// backupSuffix returns the integer backup suffix of name, 0 if the
// suffix is not numeric (e.g. file.save)
func backupSuffix(name string) int {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return 0
	}
	n, err := strconv.Atoi(name[idx+1:])
	if err != nil {
		return 0
	}
	return n
}

// RotateBackups renames every dir entry filename.<n> to filename.<n+1>
// in descending order of n so no rename collides, then moves a bare
// filename to filename.1. Entries with non-numeric suffixes are left
// alone.
func RotateBackups(dir, filename string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	var backups []string
	bare := false
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		switch {
		case name == filename:
			bare = true
		case strings.HasPrefix(name, filename+"."):
			if backupSuffix(name) > 0 {
				backups = append(backups, name)
			}
		}
	}
	sort.Slice(backups, func(i, j int) bool {
		return backupSuffix(backups[i]) > backupSuffix(backups[j])
	})
	for _, name := range backups {
		next := fmt.Sprintf("%s.%d", filename, backupSuffix(name)+1)
		err := os.Rename(filepath.Join(dir, name), filepath.Join(dir, next))
		if err != nil {
			return err
		}
	}
	if bare {
		fmt.Printf("Backing up %s to %s.\n", filename, filename+".1")
		return os.Rename(filepath.Join(dir, filename),
			filepath.Join(dir, filename+".1"))
	}
	return nil
}
