package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/crimescope/crimescope/internal/dataset"
	"github.com/crimescope/crimescope/internal/explore"
	"github.com/crimescope/crimescope/internal/report"
)

// resolveDataset picks the dataset file for one-shot commands: the named
// file when given, otherwise the first file in sorted order, mirroring the
// dashboard's dropdown default.
func resolveDataset(file string) (path, name string, err error) {
	s := settings()
	files, err := dataset.ListFiles(s.DataDir)
	if err != nil {
		return "", "", err
	}
	if file == "" {
		file = files[0]
	}
	found := false
	for _, f := range files {
		if f == file {
			found = true
			break
		}
	}
	if !found {
		return "", "", fmt.Errorf("dataset %q not found in %s", file, s.DataDir)
	}
	return filepath.Join(s.DataDir, file), file, nil
}

func chartOptions() report.ChartOptions {
	s := settings()
	return report.ChartOptions{Width: s.ChartWidth, Height: s.ChartHeight}
}

// writeChart renders one chart into chartsDir/<selection-id>/<name>.
func writeChart(chartsDir, selID, name string, render func(io.Writer) error) error {
	dir := filepath.Join(chartsDir, selID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir charts dir: %w", err)
	}
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	fmt.Printf("chart written: %s\n", path)
	return nil
}

// renderReport runs the four presentation views for one selection. Each
// view degrades to its own notice; chart files are skipped when chartsDir
// is empty.
func renderReport(t *dataset.Table, sel explore.Selection, chartsDir string) error {
	s := settings()
	opt := chartOptions()

	report.Heading("Crime Data for %s, %s - %s", sel.District, sel.State, sel.Year)
	rows := explore.Filter(t, sel)
	if len(rows) > 0 && len(sel.Crimes) > 0 {
		report.WriteFilteredTable(os.Stdout, t, rows, sel.Crimes)

		report.Heading("Total Selected Crimes:")
		totals := report.CrimeTotals(t, rows, sel.Crimes)
		report.WriteTotals(os.Stdout, totals)

		slices := report.PieSlices(totals)
		if len(slices) == 0 {
			report.Info(report.NoticeNoPieData)
		} else if chartsDir != "" {
			err := writeChart(chartsDir, sel.ID, "pie.png", func(w io.Writer) error {
				return report.RenderPie(w, slices, opt)
			})
			if err != nil {
				return err
			}
		}
	} else {
		report.Warn(report.NoticeNoData)
	}

	if !report.HasTotalColumn(t) {
		report.Warn(report.NoticeNoTotalIPC)
		return nil
	}

	report.Heading("Top %d States with Highest IPC Crimes", s.TopN)
	ranks := report.TopStates(t, s.TopN)
	if len(ranks) == 0 {
		report.Warn(report.NoticeNoRanking)
	} else {
		report.WriteRanking(os.Stdout, ranks)
		if chartsDir != "" {
			err := writeChart(chartsDir, sel.ID, "top_states.png", func(w io.Writer) error {
				return report.RenderTopStates(w, ranks, opt)
			})
			if err != nil {
				return err
			}
		}
	}

	report.Heading("Crime Trend Over Years in %s", sel.State)
	points := report.Trend(t, sel.State)
	if len(points) == 0 {
		report.Warn(report.NoticeNoTrend)
	} else {
		report.WriteTrend(os.Stdout, points)
		if chartsDir != "" {
			err := writeChart(chartsDir, sel.ID, "trend.png", func(w io.Writer) error {
				return report.RenderTrend(w, sel.State, points, opt)
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}
