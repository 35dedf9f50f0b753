package core

// tabular.go is the delimited-text reader shared by all three datasets.
//
// The reader is permissive:
//   - A doubled quote inside a quoted field is one literal quote
//   - An unterminated quote runs to end of line without error
//   - Rows shorter than the header yield "" for the missing cells
//   - Rows longer than the header keep their extra cells but nothing reads them

import "strings"

// Delimiter separates fields on a line.
const Delimiter = ','

const byteOrderMark = "\uFEFF"

// HeaderIndex maps column names (lowercase) to their first position in the header.
type HeaderIndex map[string]int

// MakeHeaderIndex builds a case-insensitive, first-match index of header names.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, seen := idx[key]; !seen {
			idx[key] = i
		}
	}
	return idx
}

// Position returns the column position for name, or -1 if absent.
func (h HeaderIndex) Position(name string) int {
	if i, ok := h[strings.ToLower(strings.TrimSpace(name))]; ok {
		return i
	}
	return -1
}

// Table is a parsed document: one header and the data lines that follow it.
type Table struct {
	Header []string
	Rows   []RawRow

	index HeaderIndex
	exact map[string]int
}

// RawRow is one data line keyed by the table header.
type RawRow struct {
	table *Table
	Cells []string
}

// SplitLine splits one line of delimited text into its fields.
func SplitLine(line string) []string {
	out := make([]string, 0, 8)
	var cur strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				cur.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == Delimiter && !inQuotes:
			out = append(out, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}

	out = append(out, cur.String())
	return out
}

// ParseTable parses a whole document. The first non-blank line is the header;
// every other non-blank line becomes a RawRow. Empty input gives a table with
// no header and no rows.
func ParseTable(text string) *Table {
	t := &Table{Rows: []RawRow{}}
	t.index = HeaderIndex{}
	t.exact = map[string]int{}

	text = strings.TrimPrefix(text, byteOrderMark)
	if strings.TrimSpace(text) == "" {
		return t
	}

	lines := strings.Split(text, "\n")
	headerSeen := false
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if !headerSeen {
			headerSeen = true
			t.setHeader(SplitLine(line))
			continue
		}

		cells := SplitLine(line)
		for i, c := range cells {
			cells[i] = cleanCell(c)
		}
		t.Rows = append(t.Rows, RawRow{table: t, Cells: cells})
	}

	return t
}

func (t *Table) setHeader(cells []string) {
	t.Header = make([]string, len(cells))
	for i, h := range cells {
		h = strings.TrimSpace(h)
		t.Header[i] = h
		t.exact[h] = i
	}
	t.index = MakeHeaderIndex(t.Header)
}

// cleanCell strips one surrounding quote on each side and trims whitespace.
func cleanCell(s string) string {
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return strings.TrimSpace(s)
}

// Get returns the cell under the exact header name. When a header name is
// repeated the last occurrence wins. Absent columns yield "".
func (r RawRow) Get(column string) string {
	if r.table == nil {
		return ""
	}
	i, ok := r.table.exact[column]
	if !ok {
		return ""
	}
	return r.cell(i)
}

// Lookup returns the cell under the first header matching column
// case-insensitively. Absent columns yield "".
func (r RawRow) Lookup(column string) string {
	if r.table == nil {
		return ""
	}
	return r.cell(r.table.index.Position(column))
}

func (r RawRow) cell(i int) string {
	if i < 0 || i >= len(r.Cells) {
		return ""
	}
	return r.Cells[i]
}
