package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/Oseltamivir/Amortization-schedule/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var barBlocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color)

	var buf strings.Builder
	buf.Grow(len(values) * 3)
	for _, v := range values {
		idx := 1 + int(v/peak*float64(len(barBlocks)-2))
		if idx > len(barBlocks)-1 {
			idx = len(barBlocks) - 1
		}
		if idx < 1 {
			idx = 1
		}
		buf.WriteRune(barBlocks[idx])
	}

	return style.Render(buf.String())
}

// BarChart renders a column chart with a y-axis. A non-negative
// highlight index renders that column in the accent color; use it to
// mark a milestone year.
func BarChart(values []float64, labels []string, color lipgloss.Color, width, height, highlight int) string {
	return renderColumns(values, nil, labels, color, lipgloss.Color(""), width, height, highlight)
}

// StackedBarChart renders two stacked series per column: bottom (the
// principal flow) below top (the interest flow).
func StackedBarChart(bottom, top []float64, labels []string, width, height int) string {
	t := theme.Active
	return renderColumns(bottom, top, labels, t.Principal, t.Interest, width, height, -1)
}

// renderColumns is the shared column-chart engine. When top is nil it
// draws a single series in bottomColor; otherwise each column stacks
// bottom then top.
func renderColumns(bottom, top []float64, labels []string, bottomColor, topColor lipgloss.Color, width, height, highlight int) string {
	n := len(bottom)
	if n == 0 {
		return ""
	}
	if height < 3 {
		height = 3
	}

	t := theme.Active

	totals := make([]float64, n)
	maxVal := 0.0
	for i := range bottom {
		totals[i] = bottom[i]
		if top != nil {
			totals[i] += top[i]
		}
		if totals[i] > maxVal {
			maxVal = totals[i]
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	step := niceStep(maxVal)
	ceiling := math.Ceil(maxVal/step) * step

	yLabelW := len(axisLabel(ceiling))
	if yLabelW < 4 {
		yLabelW = 4
	}

	chartW := width - yLabelW - 1
	if chartW < 5 {
		chartW = 5
	}

	// Downsample when even 1-wide bars with no gaps would overflow.
	if n > chartW {
		stride := (n + chartW - 1) / chartW
		bottom = sampleEvery(bottom, stride)
		if top != nil {
			top = sampleEvery(top, stride)
		}
		totals = sampleEvery(totals, stride)
		if labels != nil {
			labels = sampleLabels(labels, stride)
		}
		if highlight >= 0 {
			highlight /= stride
		}
		n = len(bottom)
	}

	gap := 1
	barW := (chartW - (n-1)*gap) / n
	if barW < 1 {
		barW = 1
		gap = 0
	}
	if barW > 5 {
		barW = 5
	}
	axisLen := n*barW + (n-1)*gap

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for row := height; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(height)
		rowBottom := ceiling * float64(row-1) / float64(height)
		rowMid := (rowTop + rowBottom) / 2

		// Y-axis: ceiling at the top, midpoint halfway, blank elsewhere.
		label := ""
		switch row {
		case height:
			label = axisLabel(ceiling)
		case (height + 1) / 2:
			label = axisLabel(ceiling / 2)
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))

		for i := 0; i < n; i++ {
			if i > 0 && gap > 0 {
				b.WriteString(strings.Repeat(" ", gap))
			}

			color := bottomColor
			if top != nil && bottom[i] < rowMid {
				color = topColor
			}
			if highlight == i {
				color = t.AccentBright
			}
			style := lipgloss.NewStyle().Foreground(color)

			switch {
			case totals[i] >= rowTop:
				b.WriteString(style.Render(strings.Repeat("█", barW)))
			case totals[i] > rowBottom:
				frac := (totals[i] - rowBottom) / (rowTop - rowBottom)
				idx := int(frac * 8)
				if idx < 1 {
					idx = 1
				}
				if idx > 8 {
					idx = 8
				}
				b.WriteString(style.Render(strings.Repeat(string(barBlocks[idx]), barW)))
			default:
				b.WriteString(strings.Repeat(" ", barW))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└" + strings.Repeat("─", axisLen)))

	if len(labels) == n {
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", yLabelW+1))
		b.WriteString(axisStyle.Render(xAxisLabels(labels, n, barW, gap, axisLen)))
	}

	return b.String()
}

// xAxisLabels lays labels under their columns, skipping any that would
// collide with an already placed one.
func xAxisLabels(labels []string, n, barW, gap, axisLen int) string {
	buf := make([]byte, axisLen)
	for i := range buf {
		buf[i] = ' '
	}

	lastEnd := -2
	for i := 0; i < n; i++ {
		lbl := labels[i]
		if lbl == "" {
			continue
		}
		pos := i * (barW + gap)
		end := pos + len(lbl)
		if pos <= lastEnd+1 || end > axisLen {
			continue
		}
		copy(buf[pos:end], lbl)
		lastEnd = end
	}

	return strings.TrimRight(string(buf), " ")
}

// Legend renders a one-line color legend.
func Legend(entries []struct {
	Label string
	Color lipgloss.Color
}) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = lipgloss.NewStyle().Foreground(e.Color).Render("■ ") + labelStyle.Render(e.Label)
	}
	return strings.Join(parts, "  ")
}

// niceStep computes a 1/2/5-scaled tick interval targeting ~5 ticks.
func niceStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	base := math.Pow(10, math.Floor(math.Log10(rough)))
	switch frac := rough / base; {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

// axisLabel formats a y-axis value compactly ("250k", "1.2M").
func axisLabel(v float64) string {
	switch {
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("%.0fM", v/1e6)
		}
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%.0fk", v/1e3)
		}
		return fmt.Sprintf("%.1fk", v/1e3)
	case v >= 1:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

func sampleEvery(values []float64, stride int) []float64 {
	out := make([]float64, 0, (len(values)+stride-1)/stride)
	for i := 0; i < len(values); i += stride {
		out = append(out, values[i])
	}
	return out
}

func sampleLabels(labels []string, stride int) []string {
	out := make([]string, 0, (len(labels)+stride-1)/stride)
	for i := 0; i < len(labels); i += stride {
		out = append(out, labels[i])
	}
	return out
}
