// Package explore holds the per-interaction selection state and derives the
// filter option sets from a loaded dataset. A Selection is recreated on
// every interaction and never persisted; sessions share nothing.
package explore

import (
	"sort"

	"github.com/google/uuid"

	"github.com/crimescope/crimescope/internal/dataset"
)

// crimeDefaults is the built-in preference order for preselected crime
// columns; entries absent from the dataset are simply omitted. The config
// can override the list.
var crimeDefaults = []string{"MURDER", "RAPE"}

// Selection is one user-held filter tuple. ID tags artifacts (chart files,
// request logs) produced for this interaction.
type Selection struct {
	ID       string
	File     string
	State    string
	District string
	Year     string
	Crimes   []string
}

// NewSelection starts a selection for the given dataset file.
func NewSelection(file string) Selection {
	return Selection{ID: uuid.NewString(), File: file}
}

// Options are the candidate values for each filter dimension. Districts and
// Years are restricted to the rows of the state they were computed for.
type Options struct {
	States        []string
	Districts     []string
	Years         []string
	Crimes        []string
	DefaultCrimes []string
}

// OptionsFor computes the sorted distinct option sets with the built-in
// crime preferences. state may be empty, in which case Districts and Years
// are empty too; callers pick a state first (default: first in sorted
// order) and recompute.
func OptionsFor(t *dataset.Table, state string) Options {
	return OptionsWithPreferences(t, state, nil)
}

// OptionsWithPreferences is OptionsFor with a caller-supplied preference
// order for the preselected crime columns; nil falls back to the built-in
// MURDER, RAPE order.
func OptionsWithPreferences(t *dataset.Table, state string, prefs []string) Options {
	if len(prefs) == 0 {
		prefs = crimeDefaults
	}
	opts := Options{
		States: distinct(t, dataset.ColState, "", ""),
		Crimes: t.CrimeColumns(),
	}
	if state != "" {
		opts.Districts = distinct(t, dataset.ColDistrict, dataset.ColState, state)
		opts.Years = distinct(t, dataset.ColYear, dataset.ColState, state)
		sortNumeric(opts.Years)
	}
	for _, c := range prefs {
		for _, have := range opts.Crimes {
			if c == have {
				opts.DefaultCrimes = append(opts.DefaultCrimes, c)
				break
			}
		}
	}
	return opts
}

// ApplyDefaults fills the empty fields of sel the way the dashboard
// preselects its dropdowns: first state in sorted order, first district and
// first year of that state, and the preferred crime defaults (prefs, or
// the built-in order when nil). Crime names outside the candidate list are
// dropped; an empty remainder leaves the table and pie views to their
// "no data" notice.
func ApplyDefaults(t *dataset.Table, sel *Selection, prefs []string) {
	opts := OptionsWithPreferences(t, sel.State, prefs)
	if sel.State == "" && len(opts.States) > 0 {
		sel.State = opts.States[0]
		opts = OptionsWithPreferences(t, sel.State, prefs)
	}
	if sel.District == "" && len(opts.Districts) > 0 {
		sel.District = opts.Districts[0]
	}
	if sel.Year == "" && len(opts.Years) > 0 {
		sel.Year = opts.Years[0]
	}
	if y, ok := dataset.ParseNumber(sel.Year); ok {
		sel.Year = dataset.FormatNumber(y)
	}
	if len(sel.Crimes) == 0 {
		sel.Crimes = append([]string(nil), opts.DefaultCrimes...)
		return
	}
	var kept []string
	for _, c := range sel.Crimes {
		for _, have := range opts.Crimes {
			if c == have {
				kept = append(kept, c)
				break
			}
		}
	}
	sel.Crimes = kept
}

// distinct collects the sorted unique values of col, optionally restricted
// to rows where filterCol equals filterVal.
func distinct(t *dataset.Table, col, filterCol, filterVal string) []string {
	ci := t.ColumnIndex(col)
	if ci < 0 {
		return nil
	}
	fi := -1
	if filterCol != "" {
		fi = t.ColumnIndex(filterCol)
	}
	seen := make(map[string]struct{})
	var out []string
	for _, row := range t.Rows {
		if fi >= 0 && (fi >= len(row) || row[fi] != filterVal) {
			continue
		}
		if ci >= len(row) {
			continue
		}
		v := row[ci]
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// sortNumeric reorders canonical numeric strings by value. Years are always
// numeric after cleaning, so the parse cannot fail for them.
func sortNumeric(vals []string) {
	sort.Slice(vals, func(i, j int) bool {
		a, _ := dataset.ParseNumber(vals[i])
		b, _ := dataset.ParseNumber(vals[j])
		return a < b
	})
}
