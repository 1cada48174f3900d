// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	goio "io"

	"github.com/cpmech/gobeam/fem"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// RenderHtml writes an HTML page with one interactive line chart per diagram
func RenderHtml(w goio.Writer, fnkey string, res *fem.Results) error {
	page := components.NewPage()
	for _, d := range Diagrams(res) {
		page.AddCharts(newLineChart(fnkey, d))
	}
	return page.Render(w)
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////////

func newLineChart(fnkey string, d *Diagram) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    d.Title,
			Subtitle: fnkey,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "x",
			Type: "value",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  d.Key,
			Scale: opts.Bool(true),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			XAxisIndex: []int{0},
		}),
	)
	data := make([]opts.LineData, len(d.X))
	for i := range d.X {
		data[i] = opts.LineData{Value: []interface{}{d.X[i], d.Y[i]}}
	}
	line.AddSeries(d.Key, data, charts.WithLineChartOpts(opts.LineChart{
		ShowSymbol: opts.Bool(false),
	}))
	return line
}
