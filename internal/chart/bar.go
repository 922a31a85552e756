package chart

import (
	"io"

	svg "github.com/ajstarks/svgo"
)

// BarValue is one labeled bar.
type BarValue struct {
	Label string
	Value float64
}

// BarChart is a single-series bar chart. Each bar carries its value as a
// centered in-bar label, formatted with Precision decimals plus Suffix.
type BarChart struct {
	Title     string
	XLabel    string
	YLabel    string
	Bars      []BarValue
	Precision int
	Suffix    string
}

// Render writes the chart as SVG.
func (c BarChart) Render(w io.Writer) error {
	if len(c.Bars) == 0 {
		return ErrNoData
	}

	var max float64
	for _, b := range c.Bars {
		if b.Value > max {
			max = b.Value
		}
	}
	max = niceMax(max)

	plotW := width - marginLeft - marginRight
	plotH := height - marginTop - marginBottom
	baseline := marginTop + plotH

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, frameStyle)
	drawFrame(canvas, c.Title, c.XLabel, c.YLabel)
	drawYTicks(canvas, max, c.Precision)

	// Bars fill 70% of each slot, centered.
	slot := float64(plotW) / float64(len(c.Bars))
	barW := int(slot * 0.7)

	for i, b := range c.Bars {
		cx := marginLeft + int(slot*(float64(i)+0.5))
		barH := int(vmap(b.Value, 0, max, 0, float64(plotH)))
		canvas.Rect(cx-barW/2, baseline-barH, barW, barH, "fill:"+seriesColor(0))
		canvas.Text(cx, baseline-barH/2+5, formatValue(b.Value, c.Precision, c.Suffix), barLabel)
		canvas.Text(cx, baseline+22, b.Label, tickStyle)
	}

	canvas.End()
	return nil
}

// drawFrame draws the title, axis labels and the two axis lines.
func drawFrame(canvas *svg.SVG, title, xLabel, yLabel string) {
	plotH := height - marginTop - marginBottom
	baseline := marginTop + plotH

	canvas.Text(width/2, marginTop-30, title, titleStyle)
	canvas.Text(marginLeft+(width-marginLeft-marginRight)/2, height-25, xLabel, axisStyle)
	canvas.TranslateRotate(25, marginTop+plotH/2, -90)
	canvas.Text(0, 0, yLabel, axisStyle)
	canvas.Gend()

	canvas.Line(marginLeft, marginTop, marginLeft, baseline, "stroke:black;stroke-width:1")
	canvas.Line(marginLeft, baseline, width-marginRight, baseline, "stroke:black;stroke-width:1")
}

// drawYTicks draws five evenly spaced ticks from 0 to max.
func drawYTicks(canvas *svg.SVG, max float64, precision int) {
	plotH := height - marginTop - marginBottom
	baseline := marginTop + plotH

	const ticks = 5
	for i := 0; i <= ticks; i++ {
		v := max * float64(i) / ticks
		y := baseline - int(vmap(v, 0, max, 0, float64(plotH)))
		canvas.Line(marginLeft-5, y, marginLeft, y, "stroke:black;stroke-width:1")
		canvas.Text(marginLeft-9, y+4, formatValue(v, precision, ""), yTickStyle)
	}
}
