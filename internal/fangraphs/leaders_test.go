package fangraphs

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
)

const leadersJSON = `{
  "data": [
    {"PlayerName": "Carlos Rodon", "Season": 2022, "FA% (sc)": 0.61, "SL% (sc)": 0.33, "CH% (sc)": 0.04},
    {"PlayerName": "Carlos Rodon", "Season": 2021, "FA% (sc)": 0.59, "SL% (sc)": 0.31, "CH% (sc)": 0.08},
    {"PlayerName": "Gerrit Cole", "Season": 2021, "FA% (sc)": 0.52, "SL% (sc)": 0.22, "CH% (sc)": 0.09},
    {"PlayerName": "Carlos Rodon", "Season": "2023", "FA% (sc)": "0.55", "SL% (sc)": 0.28},
    {"PlayerName": "Carlos Rodon"}
  ],
  "totalCount": 5
}`

type fakeGetter struct {
	body []byte
	url  string
	err  error
}

func (f *fakeGetter) Get(_ context.Context, url string) ([]byte, error) {
	f.url = url
	return f.body, f.err
}

func TestPitchUsage(t *testing.T) {
	g := &fakeGetter{body: []byte(leadersJSON)}
	c := NewClient(g)

	got, err := c.PitchUsage(context.Background(), "Carlos Rodon", 2021, 2024)
	if err != nil {
		t.Fatalf("PitchUsage returned error: %v", err)
	}

	// Row with no Season is dropped; other players are excluded; output is
	// sorted by season even though the payload is not.
	if len(got) != 3 {
		t.Fatalf("got %d seasons, want 3", len(got))
	}
	for i, want := range []int{2021, 2022, 2023} {
		if got[i].Season != want {
			t.Errorf("season[%d] = %d, want %d", i, got[i].Season, want)
		}
	}

	if got[0].Fastball == nil || math.Abs(*got[0].Fastball-0.59) > 1e-9 {
		t.Errorf("2021 fastball usage = %v, want 0.59", got[0].Fastball)
	}
	// Stringified numbers decode too.
	if got[2].Fastball == nil || math.Abs(*got[2].Fastball-0.55) > 1e-9 {
		t.Errorf("2023 fastball usage = %v, want 0.55", got[2].Fastball)
	}
	// Missing usage key stays missing.
	if got[2].Changeup != nil {
		t.Errorf("2023 changeup usage = %v, want missing", *got[2].Changeup)
	}
}

func TestPitchUsageQuery(t *testing.T) {
	g := &fakeGetter{body: []byte(leadersJSON)}
	c := NewClient(g)

	if _, err := c.PitchUsage(context.Background(), "Carlos Rodon", 2021, 2024); err != nil {
		t.Fatalf("PitchUsage returned error: %v", err)
	}
	for _, want := range []string{"stats=pit", "qual=0", "ind=1", "season1=2021", "season=2024"} {
		if !strings.Contains(g.url, want) {
			t.Errorf("url %q missing %q", g.url, want)
		}
	}
}

func TestPitchUsageNotFound(t *testing.T) {
	g := &fakeGetter{body: []byte(leadersJSON)}
	c := NewClient(g)

	_, err := c.PitchUsage(context.Background(), "Nobody Whatsoever", 2021, 2024)
	if !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("got err %v, want ErrPlayerNotFound", err)
	}
}
