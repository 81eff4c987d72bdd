package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoDatasets is returned by ListFiles when the data directory holds no
// tabular files at all.
var ErrNoDatasets = errors.New("no CSV files found in the data folder")

// ListFiles enumerates the tabular datasets (.csv / .tsv) in dir, sorted by
// name. The file list is the only dataset menu the tool offers.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read data folder: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := strings.ToLower(e.Name())
		if strings.HasSuffix(name, ".csv") || strings.HasSuffix(name, ".tsv") {
			files = append(files, e.Name())
		}
	}
	if len(files) == 0 {
		return nil, ErrNoDatasets
	}
	sort.Strings(files)
	return files, nil
}

// Load parses one tabular file into a Table. Short records are padded to
// header width; there is no partial or fallback dataset on error.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read the file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		r.Comma = '\t'
	}

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read the file: %s is empty", filepath.Base(path))
		}
		return nil, fmt.Errorf("failed to read the file: %w", err)
	}

	t := &Table{Columns: header}
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read the file: row %d: %w", len(t.Rows)+2, err)
		}
		if len(rec) < len(header) {
			tmp := make([]string, len(header))
			copy(tmp, rec)
			rec = tmp
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, nil
}

// Open runs the full load pipeline: parse, normalize headers, backfill the
// optional dimensions, validate the canonical schema, and clean rows.
// Every interaction reloads from disk; nothing is cached.
func Open(path string) (*Table, error) {
	t, err := Load(path)
	if err != nil {
		return nil, err
	}
	Normalize(t)
	Backfill(t)
	if err := Validate(t); err != nil {
		return nil, err
	}
	Clean(t)
	return t, nil
}
