package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/crimescope/crimescope/internal/dataset"
	"github.com/crimescope/crimescope/internal/explore"
)

var (
	repFile      string
	repState     string
	repDistrict  string
	repYear      string
	repCrimes    []string
	repChartsDir string
	repNoCharts  bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render all views for one filter selection",
	Long: `Report loads a dataset, applies the state/district/year filter and renders
the filtered table, per-category totals, the crime-distribution pie chart,
the top-states ranking, and the per-state yearly trend. Omitted filters fall
back to the same defaults the interactive mode preselects.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, name, err := resolveDataset(repFile)
		if err != nil {
			return err
		}
		t, err := dataset.Open(path)
		if err != nil {
			return err
		}
		sel := explore.NewSelection(name)
		sel.State = repState
		sel.District = repDistrict
		sel.Year = repYear
		for _, c := range repCrimes {
			sel.Crimes = append(sel.Crimes, strings.ToUpper(strings.TrimSpace(c)))
		}
		explore.ApplyDefaults(t, &sel, settings().DefaultCrimes)

		chartsDir := repChartsDir
		if chartsDir == "" {
			chartsDir = settings().ChartsDir
		}
		if repNoCharts {
			chartsDir = ""
		}
		return renderReport(t, sel, chartsDir)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&repFile, "file", "f", "", "dataset file name (default: first in the data directory)")
	reportCmd.Flags().StringVar(&repState, "state", "", "state/UT to filter on (default: first in sorted order)")
	reportCmd.Flags().StringVar(&repDistrict, "district", "", "district to filter on")
	reportCmd.Flags().StringVar(&repYear, "year", "", "year to filter on")
	reportCmd.Flags().StringSliceVar(&repCrimes, "crimes", nil, "crime columns to include (default: MURDER,RAPE where present)")
	reportCmd.Flags().StringVar(&repChartsDir, "charts-dir", "", "directory for chart PNGs (default from config)")
	reportCmd.Flags().BoolVar(&repNoCharts, "no-charts", false, "skip chart rendering")
}
