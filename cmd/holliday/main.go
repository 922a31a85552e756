// Jackson Holliday batter study: xwOBA and whiff rates by pitch-type group
// for his first and second 2024 call-ups, plus strike-zone plots of his
// swings and whiffs against fastballs. Writes SVG charts to the configured
// output directory.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"statcast-charts/internal/chart"
	"statcast-charts/internal/config"
	"statcast-charts/internal/pitchdata"
	"statcast-charts/internal/statcast"
)

const (
	lastName  = "Holliday"
	firstName = "Jackson"

	firstStintStart  = "2024-04-10"
	firstStintEnd    = "2024-04-23"
	secondStintStart = "2024-07-31"
	secondStintEnd   = "2024-09-04"

	// League-wide reference values for the charts' MLB AVG bars.
	mlbAvgXWOBA     = 0.315
	mlbAvgWhiffRate = 24.9
)

// Chart group labels; the reference bar first, then overall, then the three
// pitch-type groups.
var groupLabels = []string{"MLB AVG", "Overall", "Fastball", "Breaking", "Offspeed"}
var groupSelectors = []string{"", pitchdata.GroupAll, "fastball", "breaking", "offspeed"}

type stint struct {
	name       string
	slug       string
	start, end string
	data       pitchdata.Table
	xwoba      []float64 // aligned with groupLabels
	whiffRate  []float64 // aligned with groupLabels
}

func main() {
	cfg := config.Load()
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		log.Fatalf("Creating output dir: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.CachePath), 0o755); err != nil {
		log.Fatalf("Creating cache dir: %v", err)
	}

	cache, err := statcast.NewCache(cfg.CachePath)
	if err != nil {
		log.Fatalf("Opening cache: %v", err)
	}
	defer cache.Close()

	httpClient := statcast.NewRateLimitedClient(cfg.RequestsPerMinute, cfg.HTTPTimeout, cfg.MaxRetries)
	client := statcast.NewClient(httpClient, cache)
	filterer := pitchdata.NewFilterer()
	ctx := context.Background()

	id, err := client.ResolvePlayer(ctx, lastName, firstName)
	if err != nil {
		log.Fatalf("Resolving player: %v", err)
	}
	log.Printf("%s %s resolved to MLBAM id %d", firstName, lastName, id)

	first := &stint{name: "First Stint", slug: "first_stint", start: firstStintStart, end: firstStintEnd}
	second := &stint{name: "Second Stint", slug: "second_stint", start: secondStintStart, end: secondStintEnd}
	for _, s := range []*stint{first, second} {
		s.data, err = client.FetchBatter(ctx, id, s.start, s.end)
		if err != nil {
			log.Fatalf("Fetching %s: %v", s.name, err)
		}
		log.Printf("%s: %d pitches", s.name, s.data.Len())

		if s.xwoba, err = xwobaByGroup(filterer, s.data); err != nil {
			log.Fatalf("%s xwOBA: %v", s.name, err)
		}
		if s.whiffRate, err = whiffRateByGroup(filterer, s.data); err != nil {
			log.Fatalf("%s whiff rate: %v", s.name, err)
		}
	}

	charts := []struct {
		file   string
		render func(io.Writer) error
	}{
		{"holliday_first_stint_xwoba.svg", chart.BarChart{
			Title:     "xwOBA by Pitch Type -- First Stint (4/10/24 -- 4/23/24)",
			XLabel:    "Pitch Type",
			YLabel:    "xwOBA",
			Bars:      bars(first.xwoba),
			Precision: 3,
		}.Render},
		{"holliday_first_stint_whiff_rate.svg", chart.BarChart{
			Title:     "Whiff Rate by Pitch Type -- First Stint (4/10/24 -- 4/23/24)",
			XLabel:    "Pitch Type",
			YLabel:    "Whiff Rate %",
			Bars:      bars(first.whiffRate),
			Precision: 2,
			Suffix:    " %",
		}.Render},
		{"holliday_both_stints_xwoba.svg", chart.GroupedBarChart{
			Title:  "xwOBA by Pitch Type -- Both Stints",
			XLabel: "Pitch Type",
			YLabel: "xwOBA",
			Groups: groupLabels,
			Series: []chart.GroupedSeries{
				{Name: first.name, Values: first.xwoba},
				{Name: second.name, Values: second.xwoba},
			},
			Precision: 3,
		}.Render},
		{"holliday_both_stints_whiff_rate.svg", chart.GroupedBarChart{
			Title:  "Whiff Rate by Pitch Type -- Both Stints",
			XLabel: "Pitch Type",
			YLabel: "Whiff Rate %",
			Groups: groupLabels,
			Series: []chart.GroupedSeries{
				{Name: first.name, Values: first.whiffRate},
				{Name: second.name, Values: second.whiffRate},
			},
			Precision: 2,
			Suffix:    "%",
		}.Render},
	}

	for _, s := range []*stint{first, second} {
		for _, spec := range []struct {
			suffix      string
			description string
			title       string
		}{
			{"swings", "swing", "Swings on Fastballs"},
			{"whiffs", "swinging strike", "Fastball Whiffs"},
		} {
			zc, err := zoneChart(filterer, s.data, spec.description,
				fmt.Sprintf("%s %s %s -- %s", firstName, lastName, spec.title, s.name))
			if err != nil {
				log.Fatalf("%s fastball %s zone: %v", s.name, spec.suffix, err)
			}
			file := fmt.Sprintf("holliday_%s_fastball_%s_zone.svg", s.slug, spec.suffix)
			charts = append(charts, struct {
				file   string
				render func(io.Writer) error
			}{file, zc.Render})
		}
	}

	for _, c := range charts {
		if err := writeChart(filepath.Join(cfg.OutputDir, c.file), c.render); err != nil {
			log.Fatalf("Writing %s: %v", c.file, err)
		}
		log.Printf("Wrote %s", filepath.Join(cfg.OutputDir, c.file))
	}
}

// xwobaByGroup computes mean xwOBA per chart group, with the MLB average in
// slot zero.
func xwobaByGroup(f *pitchdata.Filterer, data pitchdata.Table) ([]float64, error) {
	out := make([]float64, len(groupLabels))
	out[0] = mlbAvgXWOBA
	for i, sel := range groupSelectors[1:] {
		sub, err := f.Filter(data, pitchdata.Selection{PitchType: sel})
		if err != nil {
			return nil, err
		}
		mean, err := sub.MeanOf(pitchdata.ColXWOBA)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", groupLabels[i+1], err)
		}
		out[i+1] = mean
	}
	return out, nil
}

// whiffRateByGroup computes swinging strikes as a percentage of swings per
// chart group, with the MLB average in slot zero.
func whiffRateByGroup(f *pitchdata.Filterer, data pitchdata.Table) ([]float64, error) {
	out := make([]float64, len(groupLabels))
	out[0] = mlbAvgWhiffRate
	for i, sel := range groupSelectors[1:] {
		whiffs, err := f.Filter(data, pitchdata.Selection{PitchType: sel, Description: "swinging strike"})
		if err != nil {
			return nil, err
		}
		swings, err := f.Filter(data, pitchdata.Selection{PitchType: sel, Description: "swing"})
		if err != nil {
			return nil, err
		}
		rate, err := pitchdata.RatioPercent(whiffs, swings)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", groupLabels[i+1], err)
		}
		out[i+1] = rate
	}
	return out, nil
}

// zoneChart builds a strike-zone scatter of the player's fastballs matching
// the outcome group. Zone bounds come from the full stint table so both
// plots share the same rectangle.
func zoneChart(f *pitchdata.Filterer, data pitchdata.Table, description, title string) (chart.ZoneChart, error) {
	top, bot, err := data.ZoneBounds()
	if err != nil {
		return chart.ZoneChart{}, err
	}
	sub, err := f.Filter(data, pitchdata.Selection{PitchType: "fastball", Description: description})
	if err != nil {
		return chart.ZoneChart{}, err
	}

	var pitches []chart.ZonePitch
	for _, p := range sub {
		if p.PlateX == nil || p.PlateZ == nil {
			continue // untracked location
		}
		pitches = append(pitches, chart.ZonePitch{X: *p.PlateX, Z: *p.PlateZ, Description: p.Description})
	}
	return chart.ZoneChart{
		Title:   title,
		ZoneTop: top,
		ZoneBot: bot,
		Pitches: pitches,
		Colors:  pitchdata.DescriptionColors(),
	}, nil
}

func bars(values []float64) []chart.BarValue {
	out := make([]chart.BarValue, len(values))
	for i, v := range values {
		out[i] = chart.BarValue{Label: groupLabels[i], Value: v}
	}
	return out
}

func writeChart(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
