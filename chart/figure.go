// Package chart turns shaped trace data into go-echarts figures.
//
// Builders never fail: empty input yields a placeholder figure whose title says
// the data is unavailable.
package chart

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	chartWidth  = "100%"
	chartHeight = "600px"
)

// renderer is the part of a go-echarts chart a Figure needs.
type renderer interface {
	Validate()
	JSON() map[string]interface{}
	Render(w io.Writer) error
}

// Figure is a built chart ready for the browser.
type Figure struct {
	Title       string
	Placeholder bool
	chart       renderer
}

// Option returns the ECharts option object of the figure as JSON.
func (f *Figure) Option() ([]byte, error) {
	f.chart.Validate()
	b, err := json.Marshal(f.chart.JSON())
	if err != nil {
		return nil, fmt.Errorf("encoding %q chart option: %w", f.Title, err)
	}
	return b, nil
}

// Render writes the figure as a standalone HTML page.
func (f *Figure) Render(w io.Writer) error {
	return f.chart.Render(w)
}

func newFigure(title string, c renderer) *Figure {
	return &Figure{Title: title, chart: c}
}

// placeholder is an empty figure carrying only a title.
func placeholder(title string) *Figure {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     chartWidth,
			Height:    chartHeight,
		}),
	)
	return &Figure{Title: title, Placeholder: true, chart: line}
}

func initOpts(title string) charts.GlobalOpts {
	return charts.WithInitializationOpts(opts.Initialization{
		PageTitle: title,
		Width:     chartWidth,
		Height:    chartHeight,
	})
}

func indexLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprint(i)
	}
	return labels
}
