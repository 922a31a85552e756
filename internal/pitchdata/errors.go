package pitchdata

import "errors"

var (
	// ErrUnrecognizedGroup is returned when a filter selector names a group
	// that does not exist in its category table and is not "all".
	ErrUnrecognizedGroup = errors.New("unrecognized group name")

	// ErrEmptyInput is returned when an aggregate is asked for on a table
	// with no usable values.
	ErrEmptyInput = errors.New("empty aggregation input")

	// ErrZeroDenominator is returned when a ratio's denominator table is empty.
	ErrZeroDenominator = errors.New("zero denominator")
)
