package main

import (
	"bufio"
	"crypto/md5"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// Physical constants shared by the energy and weighting code
const (
	Au2J     = 4.3597482e-18    // Hartree to J
	Kb       = 1.3806485279e-23 // J/K
	Au2Kcal  = 627.50947428     // Hartree to kcal/mol
	Bohr2Ang = 0.52917721067
)

var brokenFloat = math.NaN()

// Global collects counters for the final summary
var Global struct {
	Warnings int
}

// Warn prints a warning message to stdout and increments the global
// warning counter
func Warn(format string, a ...interface{}) {
	fmt.Printf("WARNING: "+format+"\n", a...)
	Global.Warnings++
}

func errExit(err error, msg string) {
	fmt.Fprintf(os.Stderr, "censort: %v %s\n", err, msg)
	os.Exit(1)
}

// ReadFile reads a file and returns a slice of strings of the
// nonblank lines
func ReadFile(filename string) (lines []string, err error) {
	f, err := os.Open(filename)
	defer f.Close()
	if err != nil {
		return nil, err
	}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// ReadLines reads a file and returns every line, blanks included.
// The ensemble file is indexed by fixed offsets, so blank lines count.
func ReadLines(filename string) (lines []string, err error) {
	f, err := os.Open(filename)
	defer f.Close()
	if err != nil {
		return nil, err
	}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, nil
}

// LastFolders returns the last n (1-3) components of path for error
// messages that name a conformer directory
func LastFolders(path string, n int) string {
	if n < 1 || n > 3 {
		n = 1
	}
	var parts []string
	for i := 0; i < n; i++ {
		parts = append([]string{filepath.Base(path)}, parts...)
		path = filepath.Dir(path)
	}
	return filepath.Join(parts...)
}

// MD5Sum computes the md5 hash of the file at path, buffered to ease
// memory use on large ensembles. It is used to identify a restart on
// a different input file.
func MD5Sum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// CopyFile copies the file at src to dst, truncating dst if it exists
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, in)
	return err
}

// Frange generates the floats in [start, end) with the given step.
// Reversed bounds are swapped rather than rejected.
func Frange(start, end, step float64) (ret []float64) {
	if start > end {
		start, end = end, start
	}
	if step <= 0 {
		return nil
	}
	for count := 0; ; count++ {
		v := start + float64(count)*step
		if v >= end {
			break
		}
		ret = append(ret, v)
	}
	return
}

// FormatLine formats one "key: value # options" line of the parameter
// printout, truncating an option list that would run past optlen
func FormatLine(key string, value interface{}, options []string) string {
	const (
		optlen = 70
		dist   = 30
	)
	if len(fmt.Sprintf("%v", options)) > optlen {
		length := 0
		var reduced []string
		for _, o := range options {
			length += len(o) + 2
			if length < optlen {
				reduced = append(reduced, o)
			}
		}
		options = append(reduced, "...")
	}
	return fmt.Sprintf("%s: %-*v # %v\n", key, dist-len(key), value, options)
}
