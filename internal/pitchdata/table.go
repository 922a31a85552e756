// Package pitchdata holds the per-pitch event model plus the filtering and
// aggregation logic the chart commands are built on. Tables are immutable:
// every filter returns a fresh table and never touches its source.
package pitchdata

import (
	"math"
	"time"
)

// Pitch is one pitch-level event record as Statcast reports it. Numeric
// stat columns that Statcast leaves blank (no batted ball, no tracked
// location) are pointers so that "missing" stays distinguishable from zero.
type Pitch struct {
	GameDate     time.Time
	PitchType    string // raw code: FF, SL, CH, ...
	Description  string // raw code: swinging_strike, ball, hit_into_play, ...
	Events       string
	ReleaseSpeed *float64
	PitcherHand  string // L or R
	Batter       int
	Pitcher      int
	HomeTeam     string
	AwayTeam     string
	Balls        int
	Strikes      int
	BBType       string
	PlateX       *float64
	PlateZ       *float64
	SZTop        *float64
	SZBot        *float64
	HitDistance  *float64
	LaunchSpeed  *float64
	LaunchAngle  *float64
	XWOBA        *float64 // estimated_woba_using_speedangle
	WOBAValue    *float64
}

// Table is an ordered set of pitch events. The zero value is an empty table.
type Table []Pitch

// Len returns the number of rows.
func (t Table) Len() int { return len(t) }

// Column names a numeric Pitch field and knows how to read it. The Get
// function reports false when the value is missing in that row.
type Column struct {
	Name string
	Get  func(Pitch) (float64, bool)
}

func optional(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}

// Columns usable with Table.MeanOf.
var (
	ColReleaseSpeed = Column{"release_speed", func(p Pitch) (float64, bool) { return optional(p.ReleaseSpeed) }}
	ColHitDistance  = Column{"hit_distance_sc", func(p Pitch) (float64, bool) { return optional(p.HitDistance) }}
	ColLaunchSpeed  = Column{"launch_speed", func(p Pitch) (float64, bool) { return optional(p.LaunchSpeed) }}
	ColLaunchAngle  = Column{"launch_angle", func(p Pitch) (float64, bool) { return optional(p.LaunchAngle) }}
	ColXWOBA        = Column{"estimated_woba_using_speedangle", func(p Pitch) (float64, bool) { return optional(p.XWOBA) }}
	ColWOBAValue    = Column{"woba_value", func(p Pitch) (float64, bool) { return optional(p.WOBAValue) }}
	ColSZTop        = Column{"sz_top", func(p Pitch) (float64, bool) { return optional(p.SZTop) }}
	ColSZBot        = Column{"sz_bot", func(p Pitch) (float64, bool) { return optional(p.SZBot) }}
)

// Round2 rounds to two decimal places, the precision the rate charts use.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
