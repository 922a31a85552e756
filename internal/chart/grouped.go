package chart

import (
	"io"

	svg "github.com/ajstarks/svgo"
)

// GroupedSeries is one named series of a grouped bar chart. Values align
// positionally with the chart's group labels.
type GroupedSeries struct {
	Name   string
	Values []float64
}

// GroupedBarChart draws side-by-side bars per group, one per series, with a
// legend. Used for the stint-vs-stint comparisons.
type GroupedBarChart struct {
	Title     string
	XLabel    string
	YLabel    string
	Groups    []string
	Series    []GroupedSeries
	Precision int
	Suffix    string
}

// Render writes the chart as SVG.
func (c GroupedBarChart) Render(w io.Writer) error {
	if len(c.Groups) == 0 || len(c.Series) == 0 {
		return ErrNoData
	}
	for _, s := range c.Series {
		if len(s.Values) != len(c.Groups) {
			return ErrNoData
		}
	}

	var max float64
	for _, s := range c.Series {
		for _, v := range s.Values {
			if v > max {
				max = v
			}
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

	slot := float64(plotW) / float64(len(c.Groups))
	cluster := slot * 0.8
	barW := int(cluster / float64(len(c.Series)))

	for gi, label := range c.Groups {
		clusterLeft := marginLeft + int(slot*float64(gi)+(slot-cluster)/2)
		for si, s := range c.Series {
			v := s.Values[gi]
			barH := int(vmap(v, 0, max, 0, float64(plotH)))
			x := clusterLeft + si*barW
			canvas.Rect(x, baseline-barH, barW-2, barH, "fill:"+seriesColor(si))
			canvas.Text(x+barW/2, baseline-barH/2+4,
				formatValue(v, c.Precision, c.Suffix),
				"text-anchor:middle;font-size:11px;font-weight:bold;fill:white")
		}
		canvas.Text(marginLeft+int(slot*(float64(gi)+0.5)), baseline+22, label, tickStyle)
	}

	drawLegend(canvas, seriesNames(c.Series))
	canvas.End()
	return nil
}

func seriesNames(series []GroupedSeries) []string {
	names := make([]string, len(series))
	for i, s := range series {
		names[i] = s.Name
	}
	return names
}

// drawLegend draws a swatch-and-name legend in the right margin.
func drawLegend(canvas *svg.SVG, names []string) {
	x := width - marginRight + 15
	y := marginTop + 10
	for i, name := range names {
		canvas.Rect(x, y+i*22, 14, 14, "fill:"+seriesColor(i))
		canvas.Text(x+20, y+i*22+12, name, legendStyle)
	}
}
