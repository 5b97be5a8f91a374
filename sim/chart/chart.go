// Package chart renders crossing simulations as HTML charts: the path of an
// example walk over the street, and survival/success rates across policies.
package chart

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/crossing-sim/crossing-sim/sim"
	"github.com/crossing-sim/crossing-sim/sim/trace"
)

const theme = "shine"

// minLateralSpan keeps narrow walks from being drawn as a vertical sliver.
const minLateralSpan = 10.0

// Walk draws one walk as a line over the street. Dangerous bands are shaded
// across the lateral extent of the walk.
func Walk(walk trace.Walk, street *sim.Street) *charts.Line {
	minX, maxX := lateralExtent(walk)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: theme}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Policy %s: attempt %d", walk.Policy, walk.Attempt),
			Subtitle: fmt.Sprintf("%s after %d steps", walk.Outcome, walk.StepCount),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x", Type: "value", Min: minX, Max: maxX}),
		charts.WithYAxisOpts(opts.YAxis{Name: "y", Type: "value"}),
	)

	items := make([]opts.LineData, 0, len(walk.Points))
	for _, p := range walk.Points {
		items = append(items, opts.LineData{Value: []interface{}{p.X, p.Y}})
	}

	bands := street.DangerBands()
	areas := make([]opts.MarkAreaNameCoordItem, 0, len(bands))
	for _, b := range bands {
		areas = append(areas, opts.MarkAreaNameCoordItem{
			Name:        "dangerous",
			Coordinate0: []interface{}{minX, b.Start},
			Coordinate1: []interface{}{maxX, b.End},
		})
	}

	line.AddSeries("walk", items, charts.WithMarkAreaNameCoordItemOpts(areas...))
	return line
}

// lateralExtent returns a symmetric X range covering the walk.
func lateralExtent(walk trace.Walk) (float64, float64) {
	span := minLateralSpan
	for _, p := range walk.Points {
		span = math.Max(span, math.Ceil(math.Abs(p.X)))
	}
	return -span, span
}

// Rates draws survival and success rates per policy as grouped bars.
func Rates(metrics []*sim.OutcomeMetrics) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: theme}),
		charts.WithTitleOpts(opts.Title{Title: "Probability for each policy"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "policy"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "%", Min: 0, Max: 100}),
	)

	policies := make([]string, 0, len(metrics))
	survival := make([]opts.BarData, 0, len(metrics))
	success := make([]opts.BarData, 0, len(metrics))
	for _, m := range metrics {
		policies = append(policies, m.Policy)
		survival = append(survival, opts.BarData{Value: m.Survival})
		success = append(success, opts.BarData{Value: m.SuccessP})
	}

	bar.SetXAxis(policies).
		AddSeries("Survival probability", survival).
		AddSeries("Success probability", success)
	return bar
}

// Render writes all charts to w as a single HTML page.
func Render(w io.Writer, items ...components.Charter) error {
	page := components.NewPage()
	page.PageTitle = "crossing-sim"
	page.AddCharts(items...)
	return page.Render(w)
}

// RenderFile writes the page to path, creating parent directories.
func RenderFile(path string, items ...components.Charter) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating chart directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	if err := Render(f, items...); err != nil {
		_ = f.Close()
		return fmt.Errorf("rendering charts: %w", err)
	}
	return f.Close()
}
