package report

import (
	"errors"
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
)

// ChartOptions sizes the rendered PNGs.
type ChartOptions struct {
	Width  int
	Height int
}

// DefaultChartOptions matches the config defaults.
func DefaultChartOptions() ChartOptions { return ChartOptions{Width: 800, Height: 500} }

func (o ChartOptions) normalized() ChartOptions {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 500
	}
	return o
}

// RenderPie draws the proportional crime-distribution chart with percentage
// labels. Input slices must be strictly positive (see PieSlices); an empty
// input is an error the caller should have turned into a notice.
func RenderPie(w io.Writer, slices []CrimeTotal, opt ChartOptions) error {
	if len(slices) == 0 {
		return errors.New("no valid data for pie chart")
	}
	opt = opt.normalized()
	total := 0.0
	for _, s := range slices {
		total += s.Sum
	}
	values := make([]chart.Value, 0, len(slices))
	for _, s := range slices {
		values = append(values, chart.Value{
			Value: s.Sum,
			Label: fmt.Sprintf("%s (%.1f%%)", s.Crime, s.Sum*100/total),
		})
	}
	pie := chart.PieChart{Width: opt.Width, Height: opt.Height, Values: values}
	if err := pie.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render pie chart: %w", err)
	}
	return nil
}

// RenderTopStates draws the ranking bar chart keyed by state name.
func RenderTopStates(w io.Writer, ranks []RankEntry, opt ChartOptions) error {
	if len(ranks) == 0 {
		return errors.New("no data available for 'TOTAL IPC CRIMES' to generate bar chart")
	}
	opt = opt.normalized()
	bars := make([]chart.Value, 0, len(ranks))
	maxY := 0.0
	for _, r := range ranks {
		bars = append(bars, chart.Value{Value: r.Total, Label: r.State})
		if r.Total > maxY {
			maxY = r.Total
		}
	}
	if maxY <= 0 {
		maxY = 1
	}
	bar := chart.BarChart{
		Title:    "Top States by IPC Crimes",
		Width:    opt.Width,
		Height:   opt.Height,
		BarWidth: 60,
		Bars:     bars,
		// Explicit range; a single bar would otherwise produce a
		// zero-delta Y range that go-chart rejects.
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxY * 1.1},
		},
	}
	if err := bar.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render bar chart: %w", err)
	}
	return nil
}

// RenderTrend draws the per-state yearly trend line chart.
func RenderTrend(w io.Writer, state string, points []TrendPoint, opt ChartOptions) error {
	if len(points) == 0 {
		return errors.New("no data available for the crime trend chart")
	}
	opt = opt.normalized()
	xs := make([]float64, 0, len(points))
	ys := make([]float64, 0, len(points))
	for _, p := range points {
		xs = append(xs, p.Year)
		ys = append(ys, p.Total)
	}
	// go-chart needs at least two X values to draw a line.
	if len(xs) == 1 {
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
	}
	maxY := 0.0
	for _, y := range ys {
		if y > maxY {
			maxY = y
		}
	}
	if maxY <= 0 {
		maxY = 1
	}
	line := chart.Chart{
		Title:  fmt.Sprintf("Crime Trend Over Years in %s", state),
		Width:  opt.Width,
		Height: opt.Height,
		XAxis:  chart.XAxis{Name: "Year"},
		// Explicit range; a flat series would otherwise produce a
		// zero-delta Y range that go-chart rejects.
		YAxis: chart.YAxis{
			Name:  "Total IPC Crimes",
			Range: &chart.ContinuousRange{Min: 0, Max: maxY * 1.1},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: state, XValues: xs, YValues: ys},
		},
	}
	if err := line.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render line chart: %w", err)
	}
	return nil
}
