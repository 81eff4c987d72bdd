// Package report computes the aggregate views over a dataset (totals,
// ranking, trend) and renders them as console tables and PNG charts. Each
// view degrades to an informational message on empty input instead of
// failing the session.
package report

import (
	"sort"

	"github.com/crimescope/crimescope/internal/dataset"
)

// DefaultTopN is the ranking size when the config does not override it.
const DefaultTopN = 5

// CrimeTotal is one per-category sum over the filtered row subset.
type CrimeTotal struct {
	Crime string
	Sum   float64
}

// RankEntry is one state's summed total in the ranking view.
type RankEntry struct {
	State string
	Total float64
}

// TrendPoint is one year's summed total in the trend view.
type TrendPoint struct {
	Year  float64
	Total float64
}

// CrimeTotals sums the selected crime columns over the given rows,
// preserving selection order. Non-numeric cells are skipped; a column with
// no numeric cell at all is excluded from the result entirely.
func CrimeTotals(t *dataset.Table, rows [][]string, crimes []string) []CrimeTotal {
	var out []CrimeTotal
	for _, crime := range crimes {
		ci := t.ColumnIndex(crime)
		if ci < 0 {
			continue
		}
		sum := 0.0
		numeric := false
		for _, row := range rows {
			if ci >= len(row) {
				continue
			}
			if v, ok := dataset.ParseNumber(row[ci]); ok {
				sum += v
				numeric = true
			}
		}
		if numeric {
			out = append(out, CrimeTotal{Crime: crime, Sum: sum})
		}
	}
	return out
}

// PieSlices keeps only the strictly positive totals; zero and negative
// values cannot be drawn as proportional slices.
func PieSlices(totals []CrimeTotal) []CrimeTotal {
	var out []CrimeTotal
	for _, tt := range totals {
		if tt.Sum > 0 {
			out = append(out, tt)
		}
	}
	return out
}

// TopStates groups the full table by STATE/UT summing the coerced
// TOTAL IPC CRIMES column, sorts descending (ties by state name) and keeps
// the top n. Callers must check HasTotalColumn first; without the column
// the view shows its warning instead.
func TopStates(t *dataset.Table, n int) []RankEntry {
	if n <= 0 {
		n = DefaultTopN
	}
	ci := t.ColumnIndex(dataset.ColTotalIPC)
	si := t.ColumnIndex(dataset.ColState)
	if ci < 0 || si < 0 {
		return nil
	}
	sums := make(map[string]float64)
	var order []string
	for _, row := range t.Rows {
		if si >= len(row) {
			continue
		}
		state := row[si]
		if _, ok := sums[state]; !ok {
			order = append(order, state)
			sums[state] = 0
		}
		if ci < len(row) {
			if v, ok := dataset.ParseNumber(row[ci]); ok {
				sums[state] += v
			}
		}
	}
	out := make([]RankEntry, 0, len(order))
	for _, state := range order {
		out = append(out, RankEntry{State: state, Total: sums[state]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Total == out[j].Total {
			return out[i].State < out[j].State
		}
		return out[i].Total > out[j].Total
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Trend restricts the full table to one state, groups by YEAR summing the
// coerced TOTAL IPC CRIMES column, and sorts ascending by year. Same
// column precondition as TopStates.
func Trend(t *dataset.Table, state string) []TrendPoint {
	ci := t.ColumnIndex(dataset.ColTotalIPC)
	si := t.ColumnIndex(dataset.ColState)
	yi := t.ColumnIndex(dataset.ColYear)
	if ci < 0 || si < 0 || yi < 0 {
		return nil
	}
	sums := make(map[float64]float64)
	for _, row := range t.Rows {
		if si >= len(row) || yi >= len(row) || row[si] != state {
			continue
		}
		year, ok := dataset.ParseNumber(row[yi])
		if !ok {
			continue
		}
		if _, seen := sums[year]; !seen {
			sums[year] = 0
		}
		if ci < len(row) {
			if v, ok := dataset.ParseNumber(row[ci]); ok {
				sums[year] += v
			}
		}
	}
	out := make([]TrendPoint, 0, len(sums))
	for year, total := range sums {
		out = append(out, TrendPoint{Year: year, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// HasTotalColumn reports whether the optional ranking/trend source column
// is present in the full table.
func HasTotalColumn(t *dataset.Table) bool { return t.HasColumn(dataset.ColTotalIPC) }
