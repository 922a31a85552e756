// Carlos Rodon pitcher study: pitch-usage mix by season from FanGraphs and
// xwOBA allowed by pitch type by season scraped from his Baseball Savant
// page, both rendered as line charts.
package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"statcast-charts/internal/chart"
	"statcast-charts/internal/config"
	"statcast-charts/internal/fangraphs"
	"statcast-charts/internal/savant"
	"statcast-charts/internal/statcast"
)

const (
	playerName = "Carlos Rodon"
	savantSlug = "carlos-rodon"
	savantID   = 607074

	startSeason = 2021
	endSeason   = 2024
)

// The study tracks Rodon's three primary pitches.
var pitchNames = []string{"4-Seam Fastball", "Slider", "Changeup"}

var seasonTicks = []float64{2021, 2022, 2023, 2024}

func main() {
	cfg := config.Load()
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		log.Fatalf("Creating output dir: %v", err)
	}

	httpClient := statcast.NewRateLimitedClient(cfg.RequestsPerMinute, cfg.HTTPTimeout, cfg.MaxRetries)
	ctx := context.Background()

	if err := usageChart(ctx, cfg, httpClient); err != nil {
		log.Fatalf("Pitch usage chart: %v", err)
	}
	if err := xwobaChart(ctx, cfg, httpClient); err != nil {
		log.Fatalf("xwOBA chart: %v", err)
	}
}

// usageChart pulls the per-season pitch mix from FanGraphs and renders one
// line per pitch.
func usageChart(ctx context.Context, cfg config.Config, httpClient *statcast.RateLimitedClient) error {
	fg := fangraphs.NewClient(httpClient)
	seasons, err := fg.PitchUsage(ctx, playerName, startSeason, endSeason)
	if err != nil {
		return err
	}
	log.Printf("FanGraphs: %d seasons of pitch usage", len(seasons))

	series := []chart.LineSeries{{Name: "Fastball"}, {Name: "Slider"}, {Name: "Changeup"}}
	for _, s := range seasons {
		for i, usage := range []*float64{s.Fastball, s.Slider, s.Changeup} {
			if usage == nil {
				continue
			}
			series[i].Points = append(series[i].Points, chart.Point{X: float64(s.Season), Y: *usage})
		}
	}

	c := chart.LineChart{
		Title:     "Pitch Usage by Year",
		XLabel:    "Season",
		YLabel:    "Pitch Usage",
		Series:    series,
		XTicks:    seasonTicks,
		Precision: 2,
	}
	return writeChart(filepath.Join(cfg.OutputDir, "rodon_pitch_usage.svg"), c)
}

// xwobaChart scrapes the Savant page's pitch-type table and renders xwOBA
// allowed per pitch per season.
func xwobaChart(ctx context.Context, cfg config.Config, httpClient *statcast.RateLimitedClient) error {
	scraper := savant.NewScraper(httpClient, cfg.SavantTableIndex)
	rows, err := scraper.FetchPitchTypeXWOBA(ctx, savantSlug, savantID)
	if err != nil {
		return err
	}
	rows = savant.FilterRows(rows, startSeason-1, pitchNames)
	log.Printf("Savant: %d pitch-type seasons", len(rows))

	byPitch := make(map[string][]chart.Point)
	for _, r := range rows {
		byPitch[r.PitchType] = append(byPitch[r.PitchType], chart.Point{X: float64(r.Season), Y: r.XWOBA})
	}

	var series []chart.LineSeries
	for _, name := range pitchNames {
		if pts := byPitch[name]; len(pts) > 0 {
			series = append(series, chart.LineSeries{Name: name, Points: pts})
		}
	}

	c := chart.LineChart{
		Title:     "xwOBA by Pitch Type by Year",
		XLabel:    "Season",
		YLabel:    "xwOBA",
		Series:    series,
		XTicks:    seasonTicks,
		Precision: 3,
	}
	return writeChart(filepath.Join(cfg.OutputDir, "rodon_xwoba_by_pitch_type.svg"), c)
}

func writeChart(path string, c chart.LineChart) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.Render(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("Wrote %s", path)
	return nil
}
