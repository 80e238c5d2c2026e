package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestNiceStep(t *testing.T) {
	cases := []struct {
		maxVal float64
		want   float64
	}{
		{0, 1},
		{1, 0.2},
		{7, 1},
		{100, 20},
		{250000, 50000},
		{1200000, 200000},
	}

	for _, c := range cases {
		if got := niceStep(c.maxVal); got != c.want {
			t.Errorf("niceStep(%v) = %v, want %v", c.maxVal, got, c.want)
		}
	}
}

func TestAxisLabel(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{0.5, "0.50"},
		{500, "500"},
		{1500, "1.5k"},
		{250000, "250k"},
		{1e6, "1M"},
		{1200000, "1.2M"},
	}

	for _, c := range cases {
		if got := axisLabel(c.v); got != c.want {
			t.Errorf("axisLabel(%v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestXAxisLabelsPlacement(t *testing.T) {
	got := xAxisLabels([]string{"2024", "2025", "2026"}, 3, 5, 1, 17)
	want := "2024  2025  2026"
	if got != want {
		t.Errorf("xAxisLabels = %q, want %q", got, want)
	}
}

func TestXAxisLabelsSkipsCollisions(t *testing.T) {
	// Columns are 2 wide with no gap, so adjacent labels overlap and
	// every other one must be dropped.
	got := xAxisLabels([]string{"24", "25", "26"}, 3, 2, 0, 6)
	want := "24  26"
	if got != want {
		t.Errorf("xAxisLabels = %q, want %q", got, want)
	}
}

func TestXAxisLabelsTooNarrow(t *testing.T) {
	if got := xAxisLabels([]string{"2024", "2025", "2026"}, 3, 1, 0, 3); got != "" {
		t.Errorf("expected no labels on a 3-cell axis, got %q", got)
	}
}

func TestSparklineWidthMatchesInput(t *testing.T) {
	values := []float64{1, 5, 3, 8, 2}
	got := Sparkline(values, lipgloss.Color("#879A39"))
	if w := lipgloss.Width(got); w != len(values) {
		t.Errorf("sparkline width = %d, want %d", w, len(values))
	}
}

func TestSparklineEmpty(t *testing.T) {
	if got := Sparkline(nil, lipgloss.Color("#879A39")); got != "" {
		t.Errorf("expected empty sparkline, got %q", got)
	}
}

func TestBarChartLineCount(t *testing.T) {
	values := []float64{100, 200, 300}

	// Without labels: height chart rows plus the axis line.
	chart := BarChart(values, nil, lipgloss.Color("#4385BE"), 40, 8, -1)
	if got := len(strings.Split(chart, "\n")); got != 9 {
		t.Errorf("chart without labels has %d lines, want 9", got)
	}

	// With labels: one more row under the axis.
	chart = BarChart(values, []string{"2024", "2025", "2026"}, lipgloss.Color("#4385BE"), 40, 8, -1)
	if got := len(strings.Split(chart, "\n")); got != 10 {
		t.Errorf("chart with labels has %d lines, want 10", got)
	}
}

func TestBarChartDownsamplesWideSeries(t *testing.T) {
	// 50 columns into a narrow chart must not panic and must still
	// produce the full line structure.
	values := make([]float64, 50)
	labels := make([]string, 50)
	for i := range values {
		values[i] = float64(i + 1)
		labels[i] = "y"
	}

	chart := BarChart(values, labels, lipgloss.Color("#4385BE"), 20, 6, 40)
	if chart == "" {
		t.Fatal("expected non-empty chart")
	}
	if got := len(strings.Split(chart, "\n")); got != 8 {
		t.Errorf("downsampled chart has %d lines, want 8", got)
	}
}

func TestStackedBarChartTopsOutAtCeiling(t *testing.T) {
	bottom := []float64{100, 200}
	top := []float64{50, 100}

	chart := StackedBarChart(bottom, top, nil, 30, 6)
	if chart == "" {
		t.Fatal("expected non-empty chart")
	}
	// The tallest stacked column (300) must render at least one full block.
	if !strings.Contains(chart, "█") {
		t.Error("expected at least one full block in the tallest column")
	}
}
