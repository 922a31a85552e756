package statcast

import "errors"

var (
	// ErrPlayerNotFound is returned when a name lookup matches nobody.
	ErrPlayerNotFound = errors.New("player not found")

	// ErrPlayerAmbiguous is returned when a name lookup matches more than
	// one player. Callers must disambiguate rather than have us guess.
	ErrPlayerAmbiguous = errors.New("player name is ambiguous")

	// ErrNoData is returned when a fetch covers a valid player and range
	// but the provider has no pitches for it.
	ErrNoData = errors.New("no data for range")
)
