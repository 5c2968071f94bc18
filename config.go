package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Key is a type for input keyword indices
type Key int

// Keys in the configuration array. To add a new keyword, add a Key
// here and to the String method below, then add its entry to Conf
// below. If it requires other keywords to fully process, add a method
// on Config and call it at the end of ParseInfile in input.go.
const (
	Temperature Key = iota
	Crestcheck
	Nconf
	Natoms
	EnsembleFile
	TrajFile
	CrestCmd
	Ethr
	Rthr
	Bthr
	FailThresh
	HardStop
	Solvent
	Prog
	Prog4S
	Func
	FuncS
	Basis
	BasisS
	Sm2
	Sm4S
	HRef
	CRef
	FRef
	PRef
	SiRef
	HActive
	CActive
	FActive
	PActive
	SiActive
	Couplings
	Shieldings
	ResonanceFreq
	MD5
	NumKeys
)

func (k Key) String() string {
	return []string{
		"Temperature",
		"Crestcheck",
		"Nconf",
		"Natoms",
		"EnsembleFile",
		"TrajFile",
		"CrestCmd",
		"Ethr",
		"Rthr",
		"Bthr",
		"FailThresh",
		"HardStop",
		"Solvent",
		"Prog",
		"Prog4S",
		"Func",
		"FuncS",
		"Basis",
		"BasisS",
		"Sm2",
		"Sm4S",
		"HRef",
		"CRef",
		"FRef",
		"PRef",
		"SiRef",
		"HActive",
		"CActive",
		"FActive",
		"PActive",
		"SiActive",
		"Couplings",
		"Shieldings",
		"ResonanceFreq",
		"MD5",
	}[k]
}

// Keyword pairs the regexp recognizing a keyword in the input file
// with the function extracting its value
type Keyword struct {
	Re      *regexp.Regexp
	Extract func(string) interface{}
	Value   interface{}
}

type Config [NumKeys]Keyword

// At returns the Value of c at k
func (c *Config) At(k Key) interface{} {
	return (*c)[k].Value
}

// Set sets the Value of c at k
func (c *Config) Set(k Key, val interface{}) {
	(*c)[k].Value = val
}

func (c *Config) Str(k Key) string {
	return (*c)[k].Value.(string)
}

func (c *Config) Float(k Key) float64 {
	return (*c)[k].Value.(float64)
}

func (c *Config) Int(k Key) int {
	return (*c)[k].Value.(int)
}

func (c *Config) Bool(k Key) bool {
	return (*c)[k].Value.(bool)
}

func (c Config) String() string {
	var buf strings.Builder
	for i, kw := range c {
		fmt.Fprintf(&buf, "%s: %v\n", Key(i), kw.Value)
	}
	return buf.String()
}

func kwpanic(str string, err error) {
	panic(fmt.Sprintf("%v parsing input line %q\n", err, str))
}

func StringKeyword(str string) interface{} {
	return str
}

func FloatKeyword(str string) interface{} {
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		kwpanic(str, err)
	}
	return f
}

func IntKeyword(str string) interface{} {
	v, err := strconv.Atoi(str)
	if err != nil {
		kwpanic(str, err)
	}
	return v
}

func BoolKeyword(str string) interface{} {
	switch strings.ToLower(str) {
	case "on", "true", "yes":
		return true
	case "off", "false", "no":
		return false
	}
	kwpanic(str, fmt.Errorf("not a boolean"))
	return nil
}

// TemperatureKeyword parses a temperature, falling back to 298.15 K
// on anything unparseable instead of aborting the run
func TemperatureKeyword(str string) interface{} {
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		f = 298.15
		fmt.Printf("Temperature can not be converted and is therefore "+
			"set to T = %.2f K.\n", f)
	}
	return f
}

var Conf = Config{
	Temperature: {
		Re:      regexp.MustCompile(`(?i)temperature=`),
		Extract: TemperatureKeyword,
		Value:   298.15,
	},
	Crestcheck: {
		Re:      regexp.MustCompile(`(?i)crestcheck=`),
		Extract: BoolKeyword,
		Value:   false,
	},
	Nconf: {
		Re:      regexp.MustCompile(`(?i)nconf=`),
		Extract: IntKeyword,
		Value:   0,
	},
	Natoms: {
		Re:      regexp.MustCompile(`(?i)natoms=`),
		Extract: IntKeyword,
		Value:   0,
	},
	EnsembleFile: {
		Re:      regexp.MustCompile(`(?i)ensemble=`),
		Extract: StringKeyword,
		Value:   "crest_conformers.xyz",
	},
	TrajFile: {
		Re:      regexp.MustCompile(`(?i)trajectory=`),
		Extract: StringKeyword,
		Value:   "ranked_ensemble.xyz",
	},
	CrestCmd: {
		Re:      regexp.MustCompile(`(?i)crest=`),
		Extract: StringKeyword,
		Value:   "crest",
	},
	Ethr: {
		Re:      regexp.MustCompile(`(?i)ethr=`),
		Extract: FloatKeyword,
		Value:   0.15,
	},
	Rthr: {
		Re:      regexp.MustCompile(`(?i)rthr=`),
		Extract: FloatKeyword,
		Value:   0.175,
	},
	Bthr: {
		Re:      regexp.MustCompile(`(?i)bthr=`),
		Extract: FloatKeyword,
		Value:   0.03,
	},
	FailThresh: {
		Re:      regexp.MustCompile(`(?i)failthresh=`),
		Extract: FloatKeyword,
		Value:   0.25,
	},
	HardStop: {
		Re:      regexp.MustCompile(`(?i)hardstop=`),
		Extract: BoolKeyword,
		Value:   false,
	},
	Solvent: {
		Re:      regexp.MustCompile(`(?i)solvent=`),
		Extract: StringKeyword,
		Value:   "gas",
	},
	Prog: {
		Re:      regexp.MustCompile(`(?i)prog=`),
		Extract: StringKeyword,
		Value:   "tm",
	},
	Prog4S: {
		Re:      regexp.MustCompile(`(?i)prog4s=`),
		Extract: StringKeyword,
		Value:   "tm",
	},
	Func: {
		Re:      regexp.MustCompile(`(?i)func=`),
		Extract: StringKeyword,
		Value:   "b97-3c",
	},
	FuncS: {
		Re:      regexp.MustCompile(`(?i)funcs=`),
		Extract: StringKeyword,
		Value:   "tpss",
	},
	Basis: {
		Re:      regexp.MustCompile(`(?i)basis=`),
		Extract: StringKeyword,
		Value:   "def2-TZVP",
	},
	BasisS: {
		Re:      regexp.MustCompile(`(?i)basiss=`),
		Extract: StringKeyword,
		Value:   "def2-TZVP",
	},
	Sm2: {
		Re:      regexp.MustCompile(`(?i)sm2=`),
		Extract: StringKeyword,
		Value:   "dcosmors",
	},
	Sm4S: {
		Re:      regexp.MustCompile(`(?i)sm4s=`),
		Extract: StringKeyword,
		Value:   "dcosmors",
	},
	HRef: {
		Re:      regexp.MustCompile(`(?i)href=`),
		Extract: StringKeyword,
		Value:   "TMS",
	},
	CRef: {
		Re:      regexp.MustCompile(`(?i)cref=`),
		Extract: StringKeyword,
		Value:   "TMS",
	},
	FRef: {
		Re:      regexp.MustCompile(`(?i)fref=`),
		Extract: StringKeyword,
		Value:   "CFCl3",
	},
	PRef: {
		Re:      regexp.MustCompile(`(?i)pref=`),
		Extract: StringKeyword,
		Value:   "TMP",
	},
	SiRef: {
		Re:      regexp.MustCompile(`(?i)siref=`),
		Extract: StringKeyword,
		Value:   "TMS",
	},
	HActive: {
		Re:      regexp.MustCompile(`(?i)hactive=`),
		Extract: BoolKeyword,
		Value:   true,
	},
	CActive: {
		Re:      regexp.MustCompile(`(?i)cactive=`),
		Extract: BoolKeyword,
		Value:   true,
	},
	FActive: {
		Re:      regexp.MustCompile(`(?i)factive=`),
		Extract: BoolKeyword,
		Value:   false,
	},
	PActive: {
		Re:      regexp.MustCompile(`(?i)pactive=`),
		Extract: BoolKeyword,
		Value:   false,
	},
	SiActive: {
		Re:      regexp.MustCompile(`(?i)siactive=`),
		Extract: BoolKeyword,
		Value:   false,
	},
	Couplings: {
		Re:      regexp.MustCompile(`(?i)couplings=`),
		Extract: BoolKeyword,
		Value:   true,
	},
	Shieldings: {
		Re:      regexp.MustCompile(`(?i)shieldings=`),
		Extract: BoolKeyword,
		Value:   true,
	},
	ResonanceFreq: {
		Re:      regexp.MustCompile(`(?i)mf=`),
		Extract: FloatKeyword,
		Value:   brokenFloat,
	},
	MD5: {
		Re:      regexp.MustCompile(`(?i)md5=`),
		Extract: StringKeyword,
		Value:   "",
	},
}
