package main

import (
	"bufio"
	"os"
	"strings"
)

// ProcessInput extracts a keyword value from one line of input
func ProcessInput(line string) {
	for k := range Conf {
		kw := &Conf[k]
		if kw.Re == nil || !kw.Re.MatchString(line) {
			continue
		}
		split := strings.SplitN(line, "=", 2)
		kw.Value = kw.Extract(strings.TrimSpace(split[len(split)-1]))
		break
	}
}

// ParseInfile parses the input file specified by filename and stores
// the results in Conf
func ParseInfile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		ProcessInput(line)
	}
	return nil
}
