package dataset

import (
	"strings"
	"testing"
)

func TestNormalizeHeaders(t *testing.T) {
	tbl := &Table{
		Columns: []string{"  States/UTs ", "Dis\ntrict", "year\r", "Total Cognizable IPC Crimes", "murder"},
	}
	Normalize(tbl)

	want := []string{"STATE/UT", "DISTRICT", "YEAR", "TOTAL IPC CRIMES", "MURDER"}
	for i, w := range want {
		if tbl.Columns[i] != w {
			t.Fatalf("column %d: got %q, want %q", i, tbl.Columns[i], w)
		}
	}
	for _, c := range tbl.Columns {
		if c != strings.ToUpper(c) {
			t.Errorf("column %q not upper-case", c)
		}
		if strings.ContainsAny(c, "\n\r") {
			t.Errorf("column %q contains newline or carriage return", c)
		}
	}
}

func TestNormalizeStateSynonym(t *testing.T) {
	tbl := &Table{Columns: []string{"State", "Murder"}}
	Normalize(tbl)
	if tbl.Columns[0] != "STATE/UT" {
		t.Fatalf("got %q, want STATE/UT", tbl.Columns[0])
	}
}

func TestBackfillAddsMissingDimensions(t *testing.T) {
	tbl := &Table{
		Columns: []string{"STATE/UT", "MURDER"},
		Rows: [][]string{
			{"Goa", "5"},
			{"Kerala", "7"},
		},
	}
	Backfill(tbl)

	di := tbl.ColumnIndex(ColDistrict)
	yi := tbl.ColumnIndex(ColYear)
	if di < 0 || yi < 0 {
		t.Fatalf("backfill did not add DISTRICT/YEAR: %v", tbl.Columns)
	}
	for i, row := range tbl.Rows {
		if row[di] != DefaultDistrict {
			t.Errorf("row %d: district %q, want %q", i, row[di], DefaultDistrict)
		}
		if row[yi] != DefaultYear {
			t.Errorf("row %d: year %q, want %q", i, row[yi], DefaultYear)
		}
	}
}

func TestBackfillKeepsExistingColumns(t *testing.T) {
	tbl := &Table{
		Columns: []string{"STATE/UT", "DISTRICT", "YEAR"},
		Rows:    [][]string{{"Goa", "North Goa", "2010"}},
	}
	Backfill(tbl)
	if len(tbl.Columns) != 3 {
		t.Fatalf("backfill modified a complete schema: %v", tbl.Columns)
	}
}

func TestValidateMissingColumns(t *testing.T) {
	tbl := &Table{Columns: []string{"DISTRICT", "YEAR", "MURDER"}}
	err := Validate(tbl)
	if err == nil {
		t.Fatal("expected error for missing STATE/UT")
	}
	for _, name := range []string{"STATE/UT", "DISTRICT", "YEAR"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not name %s", err, name)
		}
	}
}

func TestCleanDropsAndCanonicalizes(t *testing.T) {
	tbl := &Table{
		Columns: []string{"STATE/UT", "DISTRICT", "YEAR", "MURDER"},
		Rows: [][]string{
			{"Goa", "North Goa", "2012", "5"},
			{"Goa", "South Goa", "2012.0", "3"},
			{"Goa", "North Goa", "n/a", "4"},
			{"", "North Goa", "2012", "4"},
			{"Goa", "  ", "2012", "4"},
		},
	}
	Clean(tbl)

	if len(tbl.Rows) != 2 {
		t.Fatalf("got %d rows, want 2: %v", len(tbl.Rows), tbl.Rows)
	}
	yi := tbl.ColumnIndex(ColYear)
	for _, row := range tbl.Rows {
		if row[yi] != "2012" {
			t.Errorf("year not canonicalized: %q", row[yi])
		}
	}
}

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"5", 5, true},
		{" 2012 ", 2012, true},
		{"1,234", 1234, true},
		{"2012.0", 2012, true},
		{"", 0, false},
		{"abc", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseNumber(c.in)
		if ok != c.ok || got != c.want {
			t.Errorf("ParseNumber(%q) = %v, %v; want %v, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestCrimeColumnsExcludeDimensions(t *testing.T) {
	tbl := &Table{Columns: []string{"STATE/UT", "DISTRICT", "YEAR", "MURDER", "RAPE", "TOTAL IPC CRIMES"}}
	got := tbl.CrimeColumns()
	want := []string{"MURDER", "RAPE", "TOTAL IPC CRIMES"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
