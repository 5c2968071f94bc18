package main

import (
	"flag"
	"fmt"
	"os"
)

const (
	VERSION = "1.0.0"
	help    = `Requirements:
- a censort input file minimally specifying nconf and natoms
- the ensemble file written by the conformer generator
  (default crest_conformers.xyz), nconf blocks of natoms
- a crest executable on the path for the rotamer check
- one geometry optimization per CONF<n>/<func> folder, run
  externally, leaving its energy file behind
Flags:
`
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	overwrite  = flag.Bool("o", false, "overwrite an existing final trajectory")
	silent     = flag.Bool("silent", false, "suppress per-conformer folder messages")
	version    = flag.Bool("version", false, "print the version and exit")
)

// ParseFlags parses command line flags and returns a slice of the
// remaining arguments
func ParseFlags() []string {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), help)
		flag.PrintDefaults()
	}
	flag.Parse()
	if *version {
		fmt.Printf("censort version: %s\n", VERSION)
		os.Exit(0)
	}
	return flag.Args()
}
