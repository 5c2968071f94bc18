package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Column describes one column of the summary table: a header, a
// description (possibly carrying a bracketed unit that is split onto
// a third line), and either a float accessor with a precision or a
// plain string accessor.
type Column struct {
	Header string
	Desc   string
	Desc2  string
	Prec   int
	Float  func(*Conformer) float64
	String func(*Conformer) string
}

func (col *Column) format(conf *Conformer) (string, bool) {
	switch {
	case col.Float != nil:
		return fmt.Sprintf("%.*f", col.Prec, col.Float(conf)), true
	case col.String != nil:
		return col.String(conf), true
	}
	return "", false
}

// Bracketed units that stay on the description line instead of being
// split onto their own
var plainUnits = map[string]bool{
	"[Eh]":       true,
	"[kcal/mol]": true,
	"[a.u.]":     true,
}

// Printout renders the summary table to stdout and to outpath, one
// write per line so partial output survives a crash. Rows are sorted
// by conformer id and right-aligned per column; the row whose free
// energy equals minfree is marked. A column that cannot be formatted
// drops every width to 12 rather than aborting the report.
func Printout(outpath string, cols []Column, confs []*Conformer, minfree float64) error {
	confs = append([]*Conformer{}, confs...)
	sort.Slice(confs, func(i, j int) bool { return confs[i].ID < confs[j].ID })
	for i := range cols {
		col := &cols[i]
		if idx := strings.Index(col.Desc, "["); idx >= 0 && !plainUnits[col.Desc] {
			col.Desc2 = col.Desc[idx:]
			col.Desc = strings.TrimRight(col.Desc[:idx], " ")
		}
	}
	widths := make([]int, len(cols))
	for i := range cols {
		col := &cols[i]
		for _, s := range []string{col.Header, col.Desc, col.Desc2} {
			if len(s) > widths[i] {
				widths[i] = len(s)
			}
		}
		for _, conf := range confs {
			s, ok := col.format(conf)
			if !ok {
				fmt.Printf("\n\nERROR: column %q has no accessor\n", col.Header)
				for j := range widths {
					widths[j] = 12
				}
				goto write
			}
			if len(s) > widths[i] {
				widths[i] = len(s)
			}
		}
	}
write:
	out, err := os.Create(outpath)
	if err != nil {
		return err
	}
	defer out.Close()
	emit := func(fields []string) {
		line := strings.Join(fields, " ")
		fmt.Println(line)
		out.WriteString(line + "\n")
	}
	var header, desc, desc2 []string
	anyDesc2 := false
	for i := range cols {
		header = append(header, fmt.Sprintf("%*s", widths[i], cols[i].Header))
		desc = append(desc, fmt.Sprintf("%*s", widths[i], cols[i].Desc))
		desc2 = append(desc2, fmt.Sprintf("%*s", widths[i], cols[i].Desc2))
		if cols[i].Desc2 != "" {
			anyDesc2 = true
		}
	}
	emit(header)
	emit(desc)
	if anyDesc2 {
		emit(desc2)
	}
	for _, conf := range confs {
		var fields []string
		for i := range cols {
			s, _ := cols[i].format(conf)
			fields = append(fields, fmt.Sprintf("%*s", widths[i], s))
		}
		if conf.Free == minfree {
			fields = append(fields, "    <------")
		}
		emit(fields)
	}
	return nil
}
