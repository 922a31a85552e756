package statcast

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

const peopleSearchURL = "https://statsapi.mlb.com/api/v1/people/search"

// PlayerID is an MLBAM player identifier.
type PlayerID int

// peopleSearchResponse is the StatsAPI people-search payload.
type peopleSearchResponse struct {
	People []struct {
		ID       int    `json:"id"`
		FullName string `json:"fullName"`
		Active   bool   `json:"active"`
	} `json:"people"`
}

// ResolvePlayer maps a (last name, first name) pair to the player's MLBAM
// id. Matching is case-insensitive on the full name. Zero matches is
// ErrPlayerNotFound; more than one is ErrPlayerAmbiguous with the candidate
// ids listed, since picking one silently would chart the wrong player.
func (c *Client) ResolvePlayer(ctx context.Context, lastName, firstName string) (PlayerID, error) {
	q := url.Values{}
	q.Set("names", firstName+" "+lastName)

	body, err := c.http.Get(ctx, peopleSearchURL+"?"+q.Encode())
	if err != nil {
		return 0, fmt.Errorf("player search: %w", err)
	}

	var resp peopleSearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, fmt.Errorf("parsing player search response: %w", err)
	}

	want := strings.ToLower(strings.TrimSpace(firstName + " " + lastName))
	var matches []PlayerID
	for _, p := range resp.People {
		if strings.ToLower(p.FullName) == want {
			matches = append(matches, PlayerID(p.ID))
		}
	}

	switch len(matches) {
	case 0:
		return 0, fmt.Errorf("%q %q: %w", firstName, lastName, ErrPlayerNotFound)
	case 1:
		return matches[0], nil
	default:
		return 0, fmt.Errorf("%q %q matches ids %v: %w", firstName, lastName, matches, ErrPlayerAmbiguous)
	}
}
