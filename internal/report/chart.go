package report

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/jonathan/titanic-survival/internal/types"
)

// ChartFormats are the file extensions SaveChart can write.
var ChartFormats = []string{".png", ".svg", ".pdf"}

var (
	barColor      = color.RGBA{R: 70, G: 110, B: 170, A: 255}
	baselineColor = color.RGBA{R: 200, G: 60, B: 50, A: 255}
)

// SupportedChartPath reports whether the extension of path is one of ChartFormats.
func SupportedChartPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range ChartFormats {
		if ext == f {
			return true
		}
	}
	return false
}

// SaveChart plots the survival rate of every partition with the baseline rate as a line.
func SaveChart(path string, a *types.SurvivalAnalysis) error {
	if a == nil {
		return &RenderError{Message: "no analysis to chart"}
	}
	if !SupportedChartPath(path) {
		return &RenderError{Message: fmt.Sprintf("unsupported chart format %q (want one of %s)",
			filepath.Ext(path), strings.Join(ChartFormats, ", "))}
	}

	var labels []string
	var values plotter.Values
	for _, b := range []types.Breakdown{a.Sex, a.Class} {
		for _, row := range b.Rows {
			labels = append(labels, fmt.Sprintf("%s: %s", dimensionTitle(b.Dimension), row.Label))
			values = append(values, row.Rate)
		}
	}

	p := plot.New()
	p.Title.Text = "Titanic survival rate by partition"
	p.Y.Label.Text = "P(survival)"
	p.Y.Min = 0
	p.Y.Max = 1

	bars, err := plotter.NewBarChart(values, vg.Points(28))
	if err != nil {
		return &RenderError{Message: "failed to build bar chart", Cause: err}
	}
	bars.Color = barColor
	bars.LineStyle.Width = vg.Length(0)

	baseline, err := plotter.NewLine(plotter.XYs{
		{X: -0.5, Y: a.Overall.Rate},
		{X: float64(len(values)) - 0.5, Y: a.Overall.Rate},
	})
	if err != nil {
		return &RenderError{Message: "failed to build baseline", Cause: err}
	}
	baseline.LineStyle.Color = baselineColor
	baseline.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(plotter.NewGrid(), bars, baseline)
	p.Legend.Add(fmt.Sprintf("P(survival) = %s", percent(a.Overall.Rate)), baseline)
	p.Legend.Top = true
	p.NominalX(labels...)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &RenderError{Message: "failed to create output directory", Cause: err}
	}
	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return &RenderError{Message: "failed to save chart", Cause: err}
	}
	return nil
}
