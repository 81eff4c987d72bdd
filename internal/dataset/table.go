package dataset

import (
	"strconv"
	"strings"
)

// Canonical dimension columns every dataset must carry after normalization
// and backfill.
const (
	ColState    = "STATE/UT"
	ColDistrict = "DISTRICT"
	ColYear     = "YEAR"

	// ColTotalIPC is optional; the ranking and trend views depend on it.
	ColTotalIPC = "TOTAL IPC CRIMES"
)

// Backfill constants for datasets that lack a district or year dimension.
const (
	DefaultDistrict = "ALL"
	DefaultYear     = "2012"
)

// Table is an in-memory tabular dataset: an ordered header plus rows of
// string cells. Values stay strings; numeric interpretation happens at the
// point of use via ParseNumber.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ColumnIndex returns the index of the first column with the given name,
// or -1. When a synonym collision leaves two columns with the same
// canonical name, the earliest occurrence wins for all lookups.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool { return t.ColumnIndex(name) >= 0 }

// Cell returns the value of the named column in row, or "" if the column
// is absent or the row is short.
func (t *Table) Cell(row []string, name string) string {
	i := t.ColumnIndex(name)
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// AddConstantColumn appends a column with the same value in every row.
func (t *Table) AddConstantColumn(name, value string) {
	t.Columns = append(t.Columns, name)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], value)
	}
}

// CrimeColumns returns every column that is not one of the three dimension
// columns, in header order. These are the candidate crime-category columns.
func (t *Table) CrimeColumns() []string {
	var out []string
	for _, c := range t.Columns {
		if c == ColState || c == ColDistrict || c == ColYear {
			continue
		}
		out = append(out, c)
	}
	return out
}

// ParseNumber coerces a cell to a float. Thousands commas are tolerated
// ("1,234" parses as 1234). Blank or non-numeric cells report ok=false.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// FormatNumber renders a float back to its shortest exact form, so "2012",
// "2012.0" and " 2012 " all canonicalize to the same cell value.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
