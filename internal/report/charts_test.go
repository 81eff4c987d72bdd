package report

import (
	"bytes"
	"testing"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func assertPNG(t *testing.T, buf *bytes.Buffer) {
	t.Helper()
	if buf.Len() < len(pngMagic) || !bytes.Equal(buf.Bytes()[:len(pngMagic)], pngMagic) {
		t.Fatalf("output is not a PNG (%d bytes)", buf.Len())
	}
}

func TestRenderPie(t *testing.T) {
	var buf bytes.Buffer
	slices := []CrimeTotal{{Crime: "MURDER", Sum: 5}, {Crime: "RAPE", Sum: 2}}
	if err := RenderPie(&buf, slices, ChartOptions{}); err != nil {
		t.Fatalf("render: %v", err)
	}
	assertPNG(t, &buf)
}

func TestRenderPieEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPie(&buf, nil, ChartOptions{}); err == nil {
		t.Fatal("expected error for empty slices")
	}
}

func TestRenderTopStates(t *testing.T) {
	var buf bytes.Buffer
	ranks := []RankEntry{{State: "Kerala", Total: 300}, {State: "Goa", Total: 270}}
	if err := RenderTopStates(&buf, ranks, ChartOptions{Width: 640, Height: 400}); err != nil {
		t.Fatalf("render: %v", err)
	}
	assertPNG(t, &buf)
}

func TestRenderTrendSinglePoint(t *testing.T) {
	var buf bytes.Buffer
	points := []TrendPoint{{Year: 2012, Total: 180}}
	if err := RenderTrend(&buf, "Goa", points, ChartOptions{}); err != nil {
		t.Fatalf("render single point: %v", err)
	}
	assertPNG(t, &buf)
}

func TestRenderTrendEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderTrend(&buf, "Goa", nil, ChartOptions{}); err == nil {
		t.Fatal("expected error for empty trend")
	}
}
