package chart

import (
	"io"

	svg "github.com/ajstarks/svgo"
)

// Strike-zone plot geometry, in feet. The view covers 2 feet either side of
// the plate center and -1 to 5 feet of height, drawn with equal aspect at
// pixelsPerFoot.
const (
	zoneXMin = -2.0
	zoneXMax = 2.0
	zoneYMin = -1.0
	zoneYMax = 5.0

	pixelsPerFoot = 110

	zoneMarginLeft   = 90
	zoneMarginRight  = 40
	zoneMarginTop    = 70
	zoneMarginBottom = 80

	// Plate half-width; the rule-book plate is 17 inches across.
	plateHalf = 0.708
)

// ZonePitch is one plotted pitch: plate-crossing coordinates plus the
// outcome code that picks its color.
type ZonePitch struct {
	X           float64
	Z           float64
	Description string
}

// ZoneChart draws a player's strike zone (home-plate pentagon plus a
// rectangle spanning the player's recorded zone bounds) and scatters pitch
// locations over it, colored by outcome.
type ZoneChart struct {
	Title   string
	ZoneTop float64 // mean sz_top, feet
	ZoneBot float64 // mean sz_bot, feet
	Pitches []ZonePitch
	Colors  map[string]string // description code -> fill color
}

// Render writes the chart as SVG.
func (c ZoneChart) Render(w io.Writer) error {
	if len(c.Pitches) == 0 {
		return ErrNoData
	}

	plotW := int((zoneXMax - zoneXMin) * pixelsPerFoot)
	plotH := int((zoneYMax - zoneYMin) * pixelsPerFoot)
	totalW := zoneMarginLeft + plotW + zoneMarginRight
	totalH := zoneMarginTop + plotH + zoneMarginBottom

	xpix := func(x float64) int {
		return zoneMarginLeft + int(vmap(x, zoneXMin, zoneXMax, 0, float64(plotW)))
	}
	ypix := func(y float64) int {
		return zoneMarginTop + plotH - int(vmap(y, zoneYMin, zoneYMax, 0, float64(plotH)))
	}

	canvas := svg.New(w)
	canvas.Start(totalW, totalH)
	canvas.Rect(0, 0, totalW, totalH, frameStyle)

	canvas.Text(totalW/2, zoneMarginTop-30, c.Title, titleStyle)
	canvas.Text(zoneMarginLeft+plotW/2, totalH-25, "Distance from center of plate (feet)", axisStyle)
	canvas.TranslateRotate(25, zoneMarginTop+plotH/2, -90)
	canvas.Text(0, 0, "Height (feet)", axisStyle)
	canvas.Gend()

	canvas.Rect(zoneMarginLeft, zoneMarginTop, plotW, plotH, "fill:none;stroke:black;stroke-width:1")
	for x := int(zoneXMin); x <= int(zoneXMax); x++ {
		canvas.Text(xpix(float64(x)), zoneMarginTop+plotH+22, formatValue(float64(x), 0, ""), tickStyle)
	}
	for y := int(zoneYMin); y <= int(zoneYMax); y++ {
		canvas.Text(zoneMarginLeft-9, ypix(float64(y))+4, formatValue(float64(y), 0, ""), yTickStyle)
	}

	// Home plate, viewed from behind the catcher: the point faces down.
	plateX := []float64{0, -plateHalf, -plateHalf, plateHalf, plateHalf}
	plateY := []float64{-0.25, 0.292, 0.8, 0.8, 0.292}
	xs := make([]int, len(plateX))
	ys := make([]int, len(plateY))
	for i := range plateX {
		xs[i] = xpix(plateX[i])
		ys[i] = ypix(plateY[i])
	}
	canvas.Polygon(xs, ys, "fill:none;stroke:black;stroke-width:2")

	// The zone rectangle uses this player's own recorded bounds.
	canvas.Rect(xpix(-plateHalf), ypix(c.ZoneTop),
		xpix(plateHalf)-xpix(-plateHalf), ypix(c.ZoneBot)-ypix(c.ZoneTop),
		"fill:none;stroke:black;stroke-width:2")

	for _, p := range c.Pitches {
		fill := c.Colors[p.Description]
		if fill == "" {
			fill = "gray"
		}
		canvas.Circle(xpix(p.X), ypix(p.Z), 5, "fill-opacity:0.6;fill:"+fill)
	}

	canvas.End()
	return nil
}
