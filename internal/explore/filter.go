package explore

import "github.com/crimescope/crimescope/internal/dataset"

// Filter returns the rows where STATE/UT, DISTRICT and YEAR all equal the
// selection exactly. Comparison is case-sensitive and whole-value; the
// three dimensions should uniquely key a record, but duplicates are all
// returned and never deduplicated.
func Filter(t *dataset.Table, sel Selection) [][]string {
	si := t.ColumnIndex(dataset.ColState)
	di := t.ColumnIndex(dataset.ColDistrict)
	yi := t.ColumnIndex(dataset.ColYear)
	var out [][]string
	for _, row := range t.Rows {
		if si >= len(row) || di >= len(row) || yi >= len(row) {
			continue
		}
		if row[si] == sel.State && row[di] == sel.District && row[yi] == sel.Year {
			out = append(out, row)
		}
	}
	return out
}
