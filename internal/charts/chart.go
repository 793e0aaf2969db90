// Package charts renders dashboard aggregates as PNG images.
package charts

import (
	"bytes"
	"errors"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/KaramelBytes/tpdash-cli/internal/dashboard"
)

// ErrNoData is returned when an aggregate has nothing to draw. Callers
// show a "no data" placeholder instead of an image.
var ErrNoData = errors.New("no data to chart")

const (
	chartWidth  = 800
	chartHeight = 400
)

// RenderBarPNG draws a value-count distribution as a bar chart and
// returns the encoded PNG.
func RenderBarPNG(vc dashboard.ValueCounts, title string) ([]byte, error) {
	if vc.Empty() {
		return nil, ErrNoData
	}
	if title == "" {
		title = vc.Column
	}

	bars := make([]chart.Value, 0, len(vc.Counts))
	for _, c := range vc.Counts {
		bars = append(bars, chart.Value{
			Label: truncateLabel(c.Value),
			Value: float64(c.Count),
		})
	}
	// go-chart cannot render a single-bar chart with an auto range; pin
	// the range so one distinct value still draws.
	graph := chart.BarChart{
		Title:    title,
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: 48,
		XAxis:    chart.Style{TextRotationDegrees: 30},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxCount(vc) + 1},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart %s: %w", vc.Column, err)
	}
	return buf.Bytes(), nil
}

func maxCount(vc dashboard.ValueCounts) float64 {
	m := 0
	for _, c := range vc.Counts {
		if c.Count > m {
			m = c.Count
		}
	}
	return float64(m)
}

func truncateLabel(s string) string {
	const limit = 24
	if len(s) <= limit {
		return s
	}
	return s[:limit-1] + "…"
}
