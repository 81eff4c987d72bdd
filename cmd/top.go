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
	topFile  string
	topLimit int
)

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Rank states by total IPC crimes over the full dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, name, err := resolveDataset(topFile)
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
		n := topLimit
		if n <= 0 {
			n = settings().TopN
		}
		ranks := report.TopStates(t, n)
		if len(ranks) == 0 {
			report.Warn(report.NoticeNoRanking)
			return nil
		}
		report.Heading("Top %d States with Highest IPC Crimes", n)
		report.WriteRanking(os.Stdout, ranks)

		sel := explore.NewSelection(name)
		return writeChart(settings().ChartsDir, sel.ID, "top_states.png", func(w io.Writer) error {
			return report.RenderTopStates(w, ranks, chartOptions())
		})
	},
}

func init() {
	rootCmd.AddCommand(topCmd)
	topCmd.Flags().StringVarP(&topFile, "file", "f", "", "dataset file name (default: first in the data directory)")
	topCmd.Flags().IntVarP(&topLimit, "limit", "n", 0, "ranking size (default from config)")
}
