package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/crimescope/crimescope/internal/dataset"
	"github.com/crimescope/crimescope/internal/explore"
	"github.com/crimescope/crimescope/internal/report"
)

var (
	trendFile  string
	trendState string
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show the yearly IPC crime trend for one state",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, name, err := resolveDataset(trendFile)
		if err != nil {
			return err
		}
		t, err := dataset.Open(path)
		if err != nil {
			return err
		}
		if !report.HasTotalColumn(t) {
			return errors.New(report.NoticeNoTotalIPC)
		}
		sel := explore.NewSelection(name)
		sel.State = trendState
		explore.ApplyDefaults(t, &sel, settings().DefaultCrimes)

		points := report.Trend(t, sel.State)
		if len(points) == 0 {
			report.Warn(report.NoticeNoTrend)
			return nil
		}
		report.Heading("Crime Trend Over Years in %s", sel.State)
		report.WriteTrend(os.Stdout, points)

		return writeChart(settings().ChartsDir, sel.ID, "trend.png", func(w io.Writer) error {
			return report.RenderTrend(w, sel.State, points, chartOptions())
		})
	},
}

func init() {
	rootCmd.AddCommand(trendCmd)
	trendCmd.Flags().StringVarP(&trendFile, "file", "f", "", "dataset file name (default: first in the data directory)")
	trendCmd.Flags().StringVar(&trendState, "state", "", "state/UT (default: first in sorted order)")
}
