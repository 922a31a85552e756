package chart

import (
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// Point is one (x, y) value of a line series.
type Point struct {
	X float64
	Y float64
}

// LineSeries is a named polyline with circle markers. Gaps in a series
// (seasons with no data) are simply absent points.
type LineSeries struct {
	Name   string
	Points []Point
}

// LineChart draws one or more series over a shared x axis, annotating each
// point with its value. XTicks pins the tick positions (seasons); when
// empty, ticks land on the distinct x values present.
type LineChart struct {
	Title     string
	XLabel    string
	YLabel    string
	Series    []LineSeries
	XTicks    []float64
	Precision int
}

// Render writes the chart as SVG.
func (c LineChart) Render(w io.Writer) error {
	points := 0
	for _, s := range c.Series {
		points += len(s.Points)
	}
	if points == 0 {
		return ErrNoData
	}

	xmin, xmax, ymax := math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, s := range c.Series {
		for _, p := range s.Points {
			xmin = math.Min(xmin, p.X)
			xmax = math.Max(xmax, p.X)
			ymax = math.Max(ymax, p.Y)
		}
	}
	for _, t := range c.XTicks {
		xmin = math.Min(xmin, t)
		xmax = math.Max(xmax, t)
	}
	if xmax == xmin {
		xmax = xmin + 1
	}
	// Half-step padding so edge markers sit inside the frame.
	pad := (xmax - xmin) * 0.08
	xmin, xmax = xmin-pad, xmax+pad
	ymax = niceMax(ymax)

	plotW := width - marginLeft - marginRight
	plotH := height - marginTop - marginBottom
	baseline := marginTop + plotH

	xpix := func(x float64) int { return marginLeft + int(vmap(x, xmin, xmax, 0, float64(plotW))) }
	ypix := func(y float64) int { return baseline - int(vmap(y, 0, ymax, 0, float64(plotH))) }

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, frameStyle)
	drawFrame(canvas, c.Title, c.XLabel, c.YLabel)
	drawYTicks(canvas, ymax, c.Precision)

	for _, t := range c.xticks() {
		x := xpix(t)
		canvas.Line(x, baseline, x, baseline+5, "stroke:black;stroke-width:1")
		canvas.Text(x, baseline+22, formatValue(t, 0, ""), tickStyle)
	}

	for si, s := range c.Series {
		color := seriesColor(si)
		xs := make([]int, len(s.Points))
		ys := make([]int, len(s.Points))
		for i, p := range s.Points {
			xs[i] = xpix(p.X)
			ys[i] = ypix(p.Y)
		}
		if len(xs) > 1 {
			canvas.Polyline(xs, ys, "fill:none;stroke:"+color+";stroke-width:2")
		}
		for i, p := range s.Points {
			canvas.Circle(xs[i], ys[i], 4, "fill:"+color)
			canvas.Text(xs[i]+8, ys[i]-8, formatValue(p.Y, c.Precision, ""), pointLabel)
		}
	}

	names := make([]string, len(c.Series))
	for i, s := range c.Series {
		names[i] = s.Name
	}
	drawLineLegend(canvas, names)
	canvas.End()
	return nil
}

func (c LineChart) xticks() []float64 {
	if len(c.XTicks) > 0 {
		return c.XTicks
	}
	seen := map[float64]bool{}
	var ticks []float64
	for _, s := range c.Series {
		for _, p := range s.Points {
			if !seen[p.X] {
				seen[p.X] = true
				ticks = append(ticks, p.X)
			}
		}
	}
	return ticks
}

// drawLineLegend mirrors drawLegend with line-and-marker swatches.
func drawLineLegend(canvas *svg.SVG, names []string) {
	x := width - marginRight + 15
	y := marginTop + 10
	for i, name := range names {
		color := seriesColor(i)
		canvas.Line(x, y+i*22+7, x+16, y+i*22+7, "stroke:"+color+";stroke-width:2")
		canvas.Circle(x+8, y+i*22+7, 3, "fill:"+color)
		canvas.Text(x+24, y+i*22+11, name, legendStyle)
	}
}
