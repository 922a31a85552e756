// Package fangraphs pulls season-level pitching stats from the FanGraphs
// leaders API. Only the statcast pitch-usage columns are extracted; the
// payload keys carry spaces and symbols ("FA% (sc)"), so rows are decoded
// as maps rather than structs.
package fangraphs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
)

const leadersURL = "https://www.fangraphs.com/api/leaders/major-league/data"

// ErrPlayerNotFound is returned when no leaderboard row matches the player.
var ErrPlayerNotFound = errors.New("player not in leaderboard")

// Payload keys for statcast pitch-usage shares.
const (
	keyFastballUsage = "FA% (sc)"
	keySliderUsage   = "SL% (sc)"
	keyChangeupUsage = "CH% (sc)"
)

// SeasonUsage is one season's pitch-usage mix for a pitcher. Usage shares
// are fractions of pitches thrown; a pitch the player does not throw in a
// season comes back missing, not zero.
type SeasonUsage struct {
	Season   int
	Fastball *float64
	Slider   *float64
	Changeup *float64
}

// Getter performs an HTTP GET and returns the body.
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Client queries the FanGraphs leaders API.
type Client struct {
	http Getter
}

// NewClient creates a FanGraphs client over the given transport.
func NewClient(http Getter) *Client {
	return &Client{http: http}
}

type leadersResponse struct {
	Data []map[string]any `json:"data"`
}

// PitchUsage returns the named pitcher's per-season pitch-usage mix for
// seasons in [startSeason, endSeason], sorted by season. The query uses
// qual=0 and per-season splits, so partial seasons are included.
func (c *Client) PitchUsage(ctx context.Context, playerName string, startSeason, endSeason int) ([]SeasonUsage, error) {
	q := url.Values{}
	q.Set("pos", "all")
	q.Set("stats", "pit")
	q.Set("lg", "all")
	q.Set("qual", "0")
	q.Set("season1", strconv.Itoa(startSeason))
	q.Set("season", strconv.Itoa(endSeason))
	q.Set("ind", "1") // split by season
	q.Set("month", "0")
	q.Set("team", "0")
	q.Set("pagenum", "1")
	q.Set("pageitems", "2000000")

	body, err := c.http.Get(ctx, leadersURL+"?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("fetching leaders: %w", err)
	}

	var resp leadersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parsing leaders response: %w", err)
	}

	var out []SeasonUsage
	for _, row := range resp.Data {
		if name, _ := row["PlayerName"].(string); name != playerName {
			continue
		}
		season, ok := intField(row, "Season")
		if !ok {
			continue
		}
		out = append(out, SeasonUsage{
			Season:   season,
			Fastball: floatField(row, keyFastballUsage),
			Slider:   floatField(row, keySliderUsage),
			Changeup: floatField(row, keyChangeupUsage),
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%q seasons %d-%d: %w", playerName, startSeason, endSeason, ErrPlayerNotFound)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Season < out[j].Season })
	return out, nil
}

// intField reads a numeric field that may arrive as a JSON number or a
// stringified number.
func intField(row map[string]any, key string) (int, bool) {
	switch v := row[key].(type) {
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(v)
		return n, err == nil
	default:
		return 0, false
	}
}

func floatField(row map[string]any, key string) *float64 {
	switch v := row[key].(type) {
	case float64:
		return &v
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return &f
		}
	}
	return nil
}
