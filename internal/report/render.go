package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/crimescope/crimescope/internal/dataset"
)

// View notice texts, shared by the console and HTTP surfaces.
const (
	NoticeNoData     = "No data available for the selected filters or no crime types selected."
	NoticeNoPieData  = "No valid data for pie chart."
	NoticeNoRanking  = "No data available for 'TOTAL IPC CRIMES' to generate bar chart."
	NoticeNoTrend    = "No data available for the crime trend chart."
	NoticeNoTotalIPC = "No 'TOTAL IPC CRIMES' column found in the dataset to generate charts."
	NoticeNoDatasets = "No CSV files found in the data folder."
)

// Heading prints a section header, the way the dashboard labels each view.
func Heading(format string, a ...any) {
	color.New(color.FgCyan, color.Bold).Printf(format+"\n", a...)
}

// Info reports a view-local informational message.
func Info(format string, a ...any) { color.Cyan(format, a...) }

// Warn reports a view-local degradation; the rest of the views proceed.
func Warn(format string, a ...any) { color.Yellow(format, a...) }

// WriteFilteredTable renders the filtered row subset restricted to the
// selected crime columns.
func WriteFilteredTable(w io.Writer, t *dataset.Table, rows [][]string, crimes []string) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(crimes)
	for _, row := range rows {
		cells := make([]string, 0, len(crimes))
		for _, c := range crimes {
			cells = append(cells, t.Cell(row, c))
		}
		tw.Append(cells)
	}
	tw.Render()
}

// WriteTotals renders the per-category totals readout.
func WriteTotals(w io.Writer, totals []CrimeTotal) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"Crime Type", "Total"})
	for _, tt := range totals {
		tw.Append([]string{tt.Crime, dataset.FormatNumber(tt.Sum)})
	}
	tw.Render()
}

// WriteRanking renders the top-states ranking as a console table.
func WriteRanking(w io.Writer, ranks []RankEntry) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"Rank", "State/UT", "Total IPC Crimes"})
	for i, r := range ranks {
		tw.Append([]string{fmt.Sprintf("%d", i+1), r.State, dataset.FormatNumber(r.Total)})
	}
	tw.Render()
}

// WriteTrend renders the yearly trend as a console table.
func WriteTrend(w io.Writer, points []TrendPoint) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"Year", "Total IPC Crimes"})
	for _, p := range points {
		tw.Append([]string{dataset.FormatNumber(p.Year), dataset.FormatNumber(p.Total)})
	}
	tw.Render()
}
