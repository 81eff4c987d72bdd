package dataset

import (
	"fmt"
	"strings"
)

// renameRules maps known header synonyms to canonical names. The rules are
// applied in declared order after whitespace/case normalization, so when a
// file carries more than one synonym for the same canonical name the later
// rule is the one that fires last (last-write-wins); lookups then resolve
// to the first matching column in header order.
var renameRules = []struct{ from, to string }{
	{"STATES/UTS", "STATE/UT"},
	{"STATE", "STATE/UT"},
	{"DISTRICT", "DISTRICT"},
	{"YEAR", "YEAR"},
	{"TOTAL COGNIZABLE IPC CRIMES", "TOTAL IPC CRIMES"},
}

// Normalize rewrites every column label: trims surrounding whitespace,
// strips embedded newlines and carriage returns, uppercases, then folds
// known synonyms into the canonical schema.
func Normalize(t *Table) {
	for i, c := range t.Columns {
		c = strings.TrimSpace(c)
		c = strings.ReplaceAll(c, "\n", "")
		c = strings.ReplaceAll(c, "\r", "")
		t.Columns[i] = strings.ToUpper(c)
	}
	for _, r := range renameRules {
		for i, c := range t.Columns {
			if c == r.from {
				t.Columns[i] = r.to
			}
		}
	}
}

// Backfill adds the DISTRICT and YEAR dimensions when a dataset lacks them,
// so single-year state-level files share the same filter surface as
// per-district multi-year files. The backfilled year is a fixed constant,
// not inferred from the filename.
func Backfill(t *Table) {
	if !t.HasColumn(ColDistrict) {
		t.AddConstantColumn(ColDistrict, DefaultDistrict)
	}
	if !t.HasColumn(ColYear) {
		t.AddConstantColumn(ColYear, DefaultYear)
	}
}

// Validate confirms the three canonical dimension columns are present after
// normalization and backfill. A failure here halts the whole session.
func Validate(t *Table) error {
	for _, c := range []string{ColState, ColDistrict, ColYear} {
		if !t.HasColumn(c) {
			return fmt.Errorf("this dataset is missing required columns: 'STATE/UT', 'DISTRICT', or 'YEAR'")
		}
	}
	return nil
}

// Clean coerces YEAR to numeric and drops rows that cannot participate in
// filtering: a non-numeric year, or a blank state or district. Surviving
// YEAR cells are rewritten in canonical numeric form so exact-match
// comparisons treat "2012" and "2012.0" alike. Runs before any filter
// option set is computed.
func Clean(t *Table) {
	si := t.ColumnIndex(ColState)
	di := t.ColumnIndex(ColDistrict)
	yi := t.ColumnIndex(ColYear)
	kept := t.Rows[:0]
	for _, row := range t.Rows {
		if si >= len(row) || di >= len(row) || yi >= len(row) {
			continue
		}
		if strings.TrimSpace(row[si]) == "" || strings.TrimSpace(row[di]) == "" {
			continue
		}
		y, ok := ParseNumber(row[yi])
		if !ok {
			continue
		}
		row[yi] = FormatNumber(y)
		kept = append(kept, row)
	}
	t.Rows = kept
}
