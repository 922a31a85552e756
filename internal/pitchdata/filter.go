package pitchdata

import "fmt"

// Selection names up to three filter dimensions. The zero value (or "all"
// in any field) leaves that dimension unfiltered. PitchType and Description
// must be known group names; Handedness is only honored for the literal
// values L and R, anything else means all.
type Selection struct {
	PitchType   string
	Description string
	Handedness  string
}

// Filterer applies Selections against its category tables. Construct one
// with NewFilterer; the group tables are fixed at construction so tests can
// swap them without touching package state.
type Filterer struct {
	pitchTypes   Groups
	descriptions Groups
}

// NewFilterer returns a Filterer over the standard Statcast group tables.
func NewFilterer() *Filterer {
	return &Filterer{
		pitchTypes:   PitchTypeGroups(),
		descriptions: DescriptionGroups(),
	}
}

// NewFiltererWith returns a Filterer over caller-supplied group tables.
func NewFiltererWith(pitchTypes, descriptions Groups) *Filterer {
	return &Filterer{pitchTypes: pitchTypes, descriptions: descriptions}
}

// Filter returns the rows of t matching every selected dimension. A group
// name that is neither "all" nor present in its category table is an
// ErrUnrecognizedGroup: silently ignoring it would mask caller typos.
func (f *Filterer) Filter(t Table, sel Selection) (Table, error) {
	if err := f.check(sel); err != nil {
		return nil, err
	}

	hand := sel.Handedness
	if hand != "L" && hand != "R" {
		hand = ""
	}

	out := make(Table, 0, len(t))
	for _, p := range t {
		if sel.PitchType != "" && sel.PitchType != GroupAll &&
			!f.pitchTypes.Contains(sel.PitchType, p.PitchType) {
			continue
		}
		if sel.Description != "" && sel.Description != GroupAll &&
			!f.descriptions.Contains(sel.Description, p.Description) {
			continue
		}
		if hand != "" && p.PitcherHand != hand {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *Filterer) check(sel Selection) error {
	if name := sel.PitchType; name != "" && name != GroupAll {
		if _, ok := f.pitchTypes[name]; !ok {
			return fmt.Errorf("pitch type %q: %w", name, ErrUnrecognizedGroup)
		}
	}
	if name := sel.Description; name != "" && name != GroupAll {
		if _, ok := f.descriptions[name]; !ok {
			return fmt.Errorf("description %q: %w", name, ErrUnrecognizedGroup)
		}
	}
	return nil
}
