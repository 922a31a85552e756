// Package chart renders the study charts as SVG: bar charts, grouped bar
// charts, multi-series line charts, and strike-zone scatter plots. Every
// renderer is a stateless write to an io.Writer.
package chart

import (
	"errors"
	"fmt"
)

// ErrNoData is returned when a chart is asked to render nothing.
var ErrNoData = errors.New("chart has no data")

// Canvas dimensions. Wide enough for five labeled bars or four seasons of
// line data without crowding.
const (
	width  = 800
	height = 600

	marginLeft   = 90
	marginRight  = 150 // room for a legend outside the plot area
	marginTop    = 70
	marginBottom = 80
)

// Palette applied to bar series and line series in order.
var palette = []string{"#4c72b0", "#dd8452", "#55a868", "#c44e52", "#8172b3"}

// Text styles shared by the renderers.
const (
	titleStyle  = "text-anchor:middle;font-size:20px;font-weight:bold;fill:black"
	axisStyle   = "text-anchor:middle;font-size:16px;font-weight:bold;fill:black"
	tickStyle   = "text-anchor:middle;font-size:13px;fill:black"
	yTickStyle  = "text-anchor:end;font-size:12px;fill:black"
	barLabel    = "text-anchor:middle;font-size:15px;font-weight:bold;fill:white"
	pointLabel  = "font-size:11px;fill:black"
	legendStyle = "font-size:12px;fill:black"
	frameStyle  = "fill:white;stroke:black;stroke-width:1"
)

// vmap maps one range into another.
func vmap(value, low1, high1, low2, high2 float64) float64 {
	return low2 + (high2-low2)*(value-low1)/(high1-low1)
}

func seriesColor(i int) string {
	return palette[i%len(palette)]
}

// niceMax pads a data maximum so bars and lines do not touch the frame.
func niceMax(max float64) float64 {
	if max <= 0 {
		return 1
	}
	return max * 1.15
}

func formatValue(v float64, precision int, suffix string) string {
	return fmt.Sprintf("%.*f%s", precision, v, suffix)
}
