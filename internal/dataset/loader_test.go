package dataset_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/crimescope/crimescope/internal/dataset"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.csv", "x\n")
	writeFile(t, dir, "a.tsv", "x\n")
	writeFile(t, dir, "notes.txt", "x\n")
	if err := os.Mkdir(filepath.Join(dir, "sub.csv"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := dataset.ListFiles(dir)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"a.tsv", "b.csv"}
	if len(files) != len(want) {
		t.Fatalf("got %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Fatalf("got %v, want %v", files, want)
		}
	}
}

func TestListFilesEmpty(t *testing.T) {
	_, err := dataset.ListFiles(t.TempDir())
	if !errors.Is(err, dataset.ErrNoDatasets) {
		t.Fatalf("got %v, want ErrNoDatasets", err)
	}
}

func TestLoadPadsShortRows(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "crime.csv", "State,Murder,Rape\nGoa,5\n")

	tbl, err := dataset.Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(tbl.Rows) != 1 || len(tbl.Rows[0]) != 3 {
		t.Fatalf("unexpected rows: %v", tbl.Rows)
	}
	if tbl.Rows[0][2] != "" {
		t.Fatalf("missing cell not padded: %v", tbl.Rows[0])
	}
}

func TestLoadTSV(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "crime.tsv", "State\tMurder\nGoa\t5\n")

	tbl, err := dataset.Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(tbl.Columns) != 2 || tbl.Columns[1] != "Murder" {
		t.Fatalf("unexpected columns: %v", tbl.Columns)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "crime.csv", "")
	if _, err := dataset.Load(p); err == nil {
		t.Fatal("expected error for empty file")
	}
}

func TestOpenFullPipeline(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "crime.csv",
		"States/UTs,District,Year,Murder,Rape\nGoa,North Goa,2012,5,2\n")

	tbl, err := dataset.Open(p)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	want := []string{"STATE/UT", "DISTRICT", "YEAR", "MURDER", "RAPE"}
	for i, w := range want {
		if tbl.Columns[i] != w {
			t.Fatalf("column %d: got %q, want %q", i, tbl.Columns[i], w)
		}
	}
	if len(tbl.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(tbl.Rows))
	}
}

func TestOpenBackfillsStateOnlyDataset(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "crime.csv", "State,Murder\nGoa,5\nKerala,7\n")

	tbl, err := dataset.Open(p)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	for _, row := range tbl.Rows {
		if tbl.Cell(row, dataset.ColDistrict) != dataset.DefaultDistrict {
			t.Errorf("district not backfilled: %v", row)
		}
		if tbl.Cell(row, dataset.ColYear) != dataset.DefaultYear {
			t.Errorf("year not backfilled: %v", row)
		}
	}
}

func TestOpenRejectsMissingState(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "crime.csv", "Region,Murder\nGoa,5\n")
	if _, err := dataset.Open(p); err == nil {
		t.Fatal("expected schema validation error")
	}
}
