// Package savant scrapes a player's Baseball Savant page for the
// statcast-by-pitch-type table. The page carries no stable table ids, so
// the table is selected by ordinal position and its headers are verified
// before any row is trusted. Upstream layout drift therefore surfaces as
// ErrLayoutMismatch instead of garbage data.
package savant

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const playerPageURL = "https://baseballsavant.mlb.com/savant-player/%s-%d?stats=statcast-r-pitching-mlb"

// ErrLayoutMismatch is returned when the page does not contain the expected
// table at the expected position.
var ErrLayoutMismatch = errors.New("savant page layout mismatch")

// Headers the pitch-type table must carry.
var requiredHeaders = []string{"Year", "Pitch Type", "xwOBA"}

// SeasonPitchXWOBA is one row of the scraped table: the xwOBA allowed on
// one pitch type in one season.
type SeasonPitchXWOBA struct {
	Season    int
	PitchType string
	XWOBA     float64
}

// Getter performs an HTTP GET and returns the body.
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Scraper pulls pitch-type xwOBA tables off Savant player pages.
type Scraper struct {
	http       Getter
	tableIndex int
}

// NewScraper creates a Scraper that reads the table at the given ordinal
// position on the page.
func NewScraper(http Getter, tableIndex int) *Scraper {
	return &Scraper{http: http, tableIndex: tableIndex}
}

// FetchPitchTypeXWOBA downloads the player page for (slug, id) and returns
// the pitch-type xwOBA rows. Rows whose Year or xwOBA cell is not numeric
// (section subheaders, career totals) are dropped.
func (s *Scraper) FetchPitchTypeXWOBA(ctx context.Context, slug string, id int) ([]SeasonPitchXWOBA, error) {
	body, err := s.http.Get(ctx, fmt.Sprintf(playerPageURL, slug, id))
	if err != nil {
		return nil, fmt.Errorf("fetching savant page: %w", err)
	}
	return s.Parse(body)
}

// Parse extracts the pitch-type xwOBA rows from raw page HTML.
func (s *Scraper) Parse(html []byte) ([]SeasonPitchXWOBA, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing savant page: %w", err)
	}

	tables := doc.Find("table")
	if tables.Length() <= s.tableIndex {
		return nil, fmt.Errorf("page has %d tables, need index %d: %w",
			tables.Length(), s.tableIndex, ErrLayoutMismatch)
	}
	table := tables.Eq(s.tableIndex)

	headers := make(map[string]int)
	table.Find("th").Each(func(i int, h *goquery.Selection) {
		name := strings.TrimSpace(h.Text())
		if _, seen := headers[name]; name != "" && !seen {
			headers[name] = i
		}
	})
	for _, want := range requiredHeaders {
		if _, ok := headers[want]; !ok {
			return nil, fmt.Errorf("table %d is missing header %q: %w",
				s.tableIndex, want, ErrLayoutMismatch)
		}
	}

	var rows []SeasonPitchXWOBA
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() == 0 {
			return
		}
		cell := func(name string) string {
			i := headers[name]
			if i >= cells.Length() {
				return ""
			}
			return strings.TrimSpace(cells.Eq(i).Text())
		}

		season, err := strconv.Atoi(cell("Year"))
		if err != nil {
			return
		}
		xwoba, err := strconv.ParseFloat(cell("xwOBA"), 64)
		if err != nil {
			return
		}
		rows = append(rows, SeasonPitchXWOBA{
			Season:    season,
			PitchType: cell("Pitch Type"),
			XWOBA:     xwoba,
		})
	})

	if len(rows) == 0 {
		return nil, fmt.Errorf("table %d has no parseable rows: %w", s.tableIndex, ErrLayoutMismatch)
	}
	return rows, nil
}

// FilterRows keeps rows from seasons after minSeason whose pitch type is in
// names. Matches the study's restriction to recent seasons and the
// player's primary pitches.
func FilterRows(rows []SeasonPitchXWOBA, minSeason int, names []string) []SeasonPitchXWOBA {
	var out []SeasonPitchXWOBA
	for _, r := range rows {
		if r.Season <= minSeason {
			continue
		}
		for _, n := range names {
			if r.PitchType == n {
				out = append(out, r)
				break
			}
		}
	}
	return out
}
