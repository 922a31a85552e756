// Package statcast resolves players and pulls their per-pitch event data
// from Baseball Savant's statcast search endpoint, with a sqlite cache in
// front of the network.
package statcast

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"net/url"
	"strconv"
	"strings"
	"time"

	"statcast-charts/internal/pitchdata"
)

const searchCSVURL = "https://baseballsavant.mlb.com/statcast_search/csv"

// Perspective selects whose pitches a fetch returns: every pitch seen by a
// batter, or every pitch thrown by a pitcher.
type Perspective string

const (
	Batter  Perspective = "batter"
	Pitcher Perspective = "pitcher"
)

// Getter performs an HTTP GET and returns the body. *RateLimitedClient
// satisfies it.
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Client fetches Statcast data. Construct with NewClient; a nil cache
// disables caching.
type Client struct {
	http  Getter
	cache *Cache
}

// NewClient creates a Statcast client over the given transport and cache.
func NewClient(http Getter, cache *Cache) *Client {
	return &Client{http: http, cache: cache}
}

// FetchBatter returns every pitch thrown to the batter in [start, end],
// dates inclusive.
func (c *Client) FetchBatter(ctx context.Context, id PlayerID, start, end string) (pitchdata.Table, error) {
	return c.fetch(ctx, Batter, id, start, end)
}

// FetchPitcher returns every pitch thrown by the pitcher in [start, end],
// dates inclusive.
func (c *Client) FetchPitcher(ctx context.Context, id PlayerID, start, end string) (pitchdata.Table, error) {
	return c.fetch(ctx, Pitcher, id, start, end)
}

func (c *Client) fetch(ctx context.Context, persp Perspective, id PlayerID, start, end string) (pitchdata.Table, error) {
	for _, d := range []string{start, end} {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return nil, fmt.Errorf("date %q: %w", d, err)
		}
	}

	key := CacheKey{Perspective: string(persp), PlayerID: int(id), Start: start, End: end}

	raw, ok, err := c.cache.Get(key)
	if err != nil {
		log.Printf("Warning: cache read failed, fetching from network: %v", err)
		ok = false
	}
	if !ok {
		raw, err = c.http.Get(ctx, searchURL(persp, id, start, end))
		if err != nil {
			return nil, fmt.Errorf("fetching statcast csv: %w", err)
		}
		if err := c.cache.Put(key, raw); err != nil {
			log.Printf("Warning: cache write failed: %v", err)
		}
	}

	table, err := ParseCSV(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing statcast csv: %w", err)
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("%s %d %s..%s: %w", persp, id, start, end, ErrNoData)
	}
	return table, nil
}

func searchURL(persp Perspective, id PlayerID, start, end string) string {
	q := url.Values{}
	q.Set("all", "true")
	q.Set("type", "details")
	q.Set("player_type", string(persp))
	q.Set("game_date_gt", start)
	q.Set("game_date_lt", end)
	q.Set(string(persp)+"s_lookup[]", strconv.Itoa(int(id)))
	return searchCSVURL + "?" + q.Encode()
}

// ParseCSV reads a statcast search CSV into a table. Columns are located by
// header name so upstream column reordering is harmless; a header missing
// entirely surfaces as an error.
func ParseCSV(r io.Reader) (pitchdata.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return pitchdata.Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"game_date", "pitch_type", "description", "p_throws"} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("csv is missing column %q", required)
		}
	}

	field := func(rec []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var table pitchdata.Table
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(table)+1, err)
		}

		p := pitchdata.Pitch{
			PitchType:    field(rec, "pitch_type"),
			Description:  field(rec, "description"),
			Events:       field(rec, "events"),
			PitcherHand:  field(rec, "p_throws"),
			HomeTeam:     field(rec, "home_team"),
			AwayTeam:     field(rec, "away_team"),
			BBType:       field(rec, "bb_type"),
			Batter:       parseInt(field(rec, "batter")),
			Pitcher:      parseInt(field(rec, "pitcher")),
			Balls:        parseInt(field(rec, "balls")),
			Strikes:      parseInt(field(rec, "strikes")),
			ReleaseSpeed: parseFloat(field(rec, "release_speed")),
			PlateX:       parseFloat(field(rec, "plate_x")),
			PlateZ:       parseFloat(field(rec, "plate_z")),
			SZTop:        parseFloat(field(rec, "sz_top")),
			SZBot:        parseFloat(field(rec, "sz_bot")),
			HitDistance:  parseFloat(field(rec, "hit_distance_sc")),
			LaunchSpeed:  parseFloat(field(rec, "launch_speed")),
			LaunchAngle:  parseFloat(field(rec, "launch_angle")),
			XWOBA:        parseFloat(field(rec, "estimated_woba_using_speedangle")),
			WOBAValue:    parseFloat(field(rec, "woba_value")),
		}
		if d, err := time.Parse("2006-01-02", field(rec, "game_date")); err == nil {
			p.GameDate = d
		}
		table = append(table, p)
	}
	return table, nil
}

func parseInt(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func parseFloat(s string) *float64 {
	if s == "" || s == "null" || s == "NA" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
