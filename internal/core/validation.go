package core

import "strings"

// HeaderReport describes how a parsed header lines up with a dataset.
// Missing columns are not fatal: their cells read as "". The report exists
// so whoever maintains the spreadsheet hears about a renamed column.
type HeaderReport struct {
	Missing []string `json:"missing,omitempty"` // dataset columns absent from the header
	Extra   []string `json:"extra,omitempty"`   // header columns nothing reads
}

// OK reports whether every dataset column is present.
func (r HeaderReport) OK() bool {
	return len(r.Missing) == 0
}

// CheckHeader compares a header against def's columns using the same
// matching rule the dataset reads with: exact names, or first-match
// case-insensitive names when def.CaseInsensitive is set.
func CheckHeader(def DatasetDefinition, header []string) HeaderReport {
	key := func(s string) string {
		s = strings.TrimSpace(s)
		if def.CaseInsensitive {
			s = strings.ToLower(s)
		}
		return s
	}

	present := make(map[string]bool, len(header))
	for _, h := range header {
		if k := key(h); k != "" {
			present[k] = true
		}
	}
	wanted := make(map[string]bool, len(def.Info.Columns))
	for _, c := range def.Info.Columns {
		wanted[key(c)] = true
	}

	var r HeaderReport
	for _, c := range def.Info.Columns {
		if !present[key(c)] {
			r.Missing = append(r.Missing, c)
		}
	}
	for _, h := range header {
		if k := key(h); k != "" && !wanted[k] {
			r.Extra = append(r.Extra, strings.TrimSpace(h))
		}
	}
	return r
}
