package pitchdata

import "fmt"

// MeanOf returns the arithmetic mean of col over t, skipping rows where the
// value is missing. A table with no usable values is ErrEmptyInput rather
// than NaN: NaN would flow silently into chart labels.
func (t Table) MeanOf(col Column) (float64, error) {
	var sum float64
	var n int
	for _, p := range t {
		if v, ok := col.Get(p); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, fmt.Errorf("mean of %s: %w", col.Name, ErrEmptyInput)
	}
	return sum / float64(n), nil
}

// RatioPercent returns 100 * len(num) / len(denom) rounded to two decimals.
// Used for whiff rate with num = swinging strikes and denom = swings.
func RatioPercent(num, denom Table) (float64, error) {
	if len(denom) == 0 {
		return 0, ErrZeroDenominator
	}
	return Round2(100 * float64(len(num)) / float64(len(denom))), nil
}

// ZoneBounds returns the mean top and bottom of the player's recorded
// strike zone over t. Statcast records the zone per pitch, so the plotted
// rectangle is the average of what umpires were given for this player.
func (t Table) ZoneBounds() (top, bot float64, err error) {
	top, err = t.MeanOf(ColSZTop)
	if err != nil {
		return 0, 0, fmt.Errorf("zone top: %w", err)
	}
	bot, err = t.MeanOf(ColSZBot)
	if err != nil {
		return 0, 0, fmt.Errorf("zone bottom: %w", err)
	}
	return top, bot, nil
}
