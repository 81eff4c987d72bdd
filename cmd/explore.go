package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crimescope/crimescope/internal/dataset"
	"github.com/crimescope/crimescope/internal/explore"
	"github.com/crimescope/crimescope/internal/report"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Interactively explore a crime dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := bufio.NewScanner(os.Stdin)
		for {
			if err := exploreOnce(in); err != nil {
				return err
			}
			fmt.Print("\nExplore again? (y/N): ")
			if !in.Scan() || !strings.EqualFold(strings.TrimSpace(in.Text()), "y") {
				return nil
			}
		}
	},
}

// exploreOnce runs one full interaction: dataset pick, filters, views. The
// pipeline reloads from disk each time so edits to the files show up on the
// next pass.
func exploreOnce(in *bufio.Scanner) error {
	s := settings()
	files, err := dataset.ListFiles(s.DataDir)
	if err != nil {
		return err
	}
	file := promptChoice(in, "Select a Crime Dataset", files)

	t, err := dataset.Open(filepath.Join(s.DataDir, file))
	if err != nil {
		return err
	}

	sel := explore.NewSelection(file)
	opts := explore.OptionsWithPreferences(t, "", s.DefaultCrimes)
	sel.State = promptChoice(in, "Select State/UT", opts.States)
	opts = explore.OptionsWithPreferences(t, sel.State, s.DefaultCrimes)
	sel.District = promptChoice(in, "Select District", opts.Districts)
	sel.Year = promptChoice(in, "Select Year", opts.Years)
	sel.Crimes = promptCrimes(in, opts.Crimes, opts.DefaultCrimes)

	fmt.Println()
	return renderReport(t, sel, s.ChartsDir)
}

// promptChoice shows a numbered menu and returns the chosen option; an
// empty or invalid answer picks the first, the dashboard's dropdown
// default. Returns "" when there is nothing to choose.
func promptChoice(in *bufio.Scanner, label string, options []string) string {
	if len(options) == 0 {
		return ""
	}
	fmt.Printf("\n%s:\n", label)
	for i, o := range options {
		fmt.Printf("  %d. %s\n", i+1, o)
	}
	fmt.Printf("Enter choice (1-%d) [1]: ", len(options))
	if !in.Scan() {
		return options[0]
	}
	n, err := strconv.Atoi(strings.TrimSpace(in.Text()))
	if err != nil || n < 1 || n > len(options) {
		return options[0]
	}
	return options[n-1]
}

// promptCrimes asks for a comma-separated subset of the candidate crime
// columns; an empty answer keeps the defaults.
func promptCrimes(in *bufio.Scanner, candidates, defaults []string) []string {
	if len(candidates) == 0 {
		return nil
	}
	fmt.Printf("\nSelect Crime Types (comma-separated) [%s]:\n", strings.Join(defaults, ","))
	for _, c := range candidates {
		fmt.Printf("  - %s\n", c)
	}
	fmt.Print("> ")
	if !in.Scan() {
		return defaults
	}
	raw := strings.TrimSpace(in.Text())
	if raw == "" {
		return defaults
	}
	var picked []string
	for _, part := range strings.Split(raw, ",") {
		name := strings.ToUpper(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		ok := false
		for _, c := range candidates {
			if c == name {
				ok = true
				break
			}
		}
		if ok {
			picked = append(picked, name)
		} else {
			report.Warn("ignoring unknown crime type: %s", name)
		}
	}
	return picked
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}
