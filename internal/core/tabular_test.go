package core

import (
	"reflect"
	"sort"
	"strings"
	"testing"
)

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"plain fields", "a,b,c", []string{"a", "b", "c"}},
		{"escaped quote", `"a""b"`, []string{`a"b`}},
		{"delimiter inside quotes", `"Mon, 1",2025-08-31`, []string{"Mon, 1", "2025-08-31"}},
		{"trailing empty field", "a,b,", []string{"a", "b", ""}},
		{"empty line", "", []string{""}},
		{"unterminated quote runs to end", `"a,b,c`, []string{"a,b,c"}},
		{"quote in the middle toggles", `ab"c,d"e,f`, []string{"abc,de", "f"}},
		{"only delimiters", ",,", []string{"", "", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLine(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLine(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseTable_Empty(t *testing.T) {
	for _, input := range []string{"", "\n\n", "\uFEFF", "   \r\n"} {
		tbl := ParseTable(input)
		if tbl.Rows == nil {
			t.Fatalf("ParseTable(%q).Rows is nil, want empty slice", input)
		}
		if len(tbl.Rows) != 0 {
			t.Errorf("ParseTable(%q) returned %d rows, want 0", input, len(tbl.Rows))
		}
	}
}

func TestParseTable_BOMAndLineEndings(t *testing.T) {
	text := "\uFEFFName, Category \r\nCafe Nova,Food\r\n\r\nBeach,Outdoors\n\n\n"
	tbl := ParseTable(text)

	wantHeader := []string{"Name", "Category"}
	if !reflect.DeepEqual(tbl.Header, wantHeader) {
		t.Fatalf("Header = %q, want %q", tbl.Header, wantHeader)
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(tbl.Rows))
	}
	if got := tbl.Rows[1].Get("Category"); got != "Outdoors" {
		t.Errorf("Rows[1].Get(Category) = %q, want %q", got, "Outdoors")
	}
}

func TestParseTable_CellCleanup(t *testing.T) {
	tbl := ParseTable("A,B\n  spaced  ,\"\"\"quoted\"\"\"\n")
	row := tbl.Rows[0]

	if got := row.Get("A"); got != "spaced" {
		t.Errorf("A = %q, want %q", got, "spaced")
	}
	// `"""quoted"""` splits to `"quoted"`, then the outer quotes are stripped.
	if got := row.Get("B"); got != "quoted" {
		t.Errorf("B = %q, want %q", got, "quoted")
	}
}

func TestRawRow_MissingColumns(t *testing.T) {
	tbl := ParseTable("Name,Category,Address\nOnly Name\n")
	row := tbl.Rows[0]

	if got := row.Get("Address"); got != "" {
		t.Errorf("Get(Address) = %q, want empty", got)
	}
	if got := row.Lookup("Subcategory"); got != "" {
		t.Errorf("Lookup(Subcategory) = %q, want empty", got)
	}
}

func TestRawRow_LookupRules(t *testing.T) {
	tbl := ParseTable("name,NAME,Phone\nfirst,second,123\n")
	row := tbl.Rows[0]

	if got := row.Lookup("Name"); got != "first" {
		t.Errorf("Lookup(Name) = %q, want first match %q", got, "first")
	}
	if got := row.Get("NAME"); got != "second" {
		t.Errorf("Get(NAME) = %q, want %q", got, "second")
	}
	if got := row.Get("Name"); got != "" {
		t.Errorf("Get(Name) = %q, exact lookup should miss", got)
	}
}

func TestRawRow_DuplicateHeaderLastWins(t *testing.T) {
	tbl := ParseTable("Day,Day\nMon,Tue\n")
	if got := tbl.Rows[0].Get("Day"); got != "Tue" {
		t.Errorf("Get(Day) = %q, want %q", got, "Tue")
	}
}

func TestMakeHeaderIndex(t *testing.T) {
	idx := MakeHeaderIndex([]string{" Name ", "Map Link", "name"})

	if idx.Position("NAME") != 0 {
		t.Errorf("Position(NAME) = %d, want 0", idx.Position("NAME"))
	}
	if idx.Position("map link") != 1 {
		t.Errorf("Position(map link) = %d, want 1", idx.Position("map link"))
	}
	if idx.Position("Address") != -1 {
		t.Errorf("Position(Address) = %d, want -1", idx.Position("Address"))
	}
}

func TestRowOf(t *testing.T) {
	row := rowOf(map[string]string{"Day": " Mon ", "Date": "2025-08-31"})
	if row.Get("Day") != "Mon" {
		t.Errorf("Get(Day) = %q, want %q", row.Get("Day"), "Mon")
	}
	if row.Lookup("date") != "2025-08-31" {
		t.Errorf("Lookup(date) = %q", row.Lookup("date"))
	}
}

// rowOf builds a standalone row from a header-keyed mapping. Columns are
// ordered by name so lookups stay deterministic.
func rowOf(values map[string]string) RawRow {
	t := &Table{exact: map[string]int{}}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	cells := make([]string, len(keys))
	for i, k := range keys {
		cells[i] = strings.TrimSpace(values[k])
	}
	t.setHeader(keys)
	row := RawRow{table: t, Cells: cells}
	t.Rows = []RawRow{row}
	return row
}
