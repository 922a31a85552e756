package pitchdata

import (
	"errors"
	"testing"
)

func pitch(pitchType, description, hand string) Pitch {
	return Pitch{PitchType: pitchType, Description: description, PitcherHand: hand}
}

func sampleTable() Table {
	return Table{
		pitch("FF", "swinging_strike", "R"),
		pitch("FF", "ball", "R"),
		pitch("SI", "hit_into_play", "L"),
		pitch("FC", "called_strike", "R"),
		pitch("SL", "foul", "L"),
		pitch("CU", "swinging_strike_blocked", "R"),
		pitch("ST", "ball", "L"),
		pitch("CH", "hit_into_play", "R"),
		pitch("FS", "foul_tip", "L"),
		pitch("EP", "ball", "R"), // eephus, in no group
	}
}

func TestFilterAllIsIdentity(t *testing.T) {
	f := NewFilterer()
	src := sampleTable()

	tests := []struct {
		name string
		sel  Selection
	}{
		{"explicit all", Selection{PitchType: "all", Description: "all", Handedness: "all"}},
		{"zero value", Selection{}},
		{"bogus handedness means all", Selection{Handedness: "S"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Filter(src, tt.sel)
			if err != nil {
				t.Fatalf("Filter returned error: %v", err)
			}
			if len(got) != len(src) {
				t.Fatalf("got %d rows, want %d", len(got), len(src))
			}
			for i := range got {
				if got[i] != src[i] {
					t.Errorf("row %d changed: got %+v want %+v", i, got[i], src[i])
				}
			}
		})
	}
}

func TestFilterSingleDimension(t *testing.T) {
	f := NewFilterer()
	src := sampleTable()

	tests := []struct {
		name     string
		sel      Selection
		wantRows int
		member   func(Pitch) bool
	}{
		{
			"fastball group", Selection{PitchType: "fastball"}, 4,
			func(p Pitch) bool { return p.PitchType == "FF" || p.PitchType == "SI" || p.PitchType == "FC" },
		},
		{
			"breaking group", Selection{PitchType: "breaking"}, 3,
			func(p Pitch) bool { return p.PitchType == "SL" || p.PitchType == "CU" || p.PitchType == "ST" },
		},
		{
			"swinging strike group", Selection{Description: "swinging strike"}, 3,
			func(p Pitch) bool {
				return p.Description == "swinging_strike" ||
					p.Description == "swinging_strike_blocked" ||
					p.Description == "foul_tip"
			},
		},
		{
			"left handed", Selection{Handedness: "L"}, 4,
			func(p Pitch) bool { return p.PitcherHand == "L" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Filter(src, tt.sel)
			if err != nil {
				t.Fatalf("Filter returned error: %v", err)
			}
			if len(got) != tt.wantRows {
				t.Fatalf("got %d rows, want %d", len(got), tt.wantRows)
			}
			for _, p := range got {
				if !tt.member(p) {
					t.Errorf("row %+v should have been excluded", p)
				}
			}
			// Every excluded row must genuinely not match.
			excluded := len(src) - len(got)
			var miss int
			for _, p := range src {
				if !tt.member(p) {
					miss++
				}
			}
			if miss != excluded {
				t.Errorf("%d rows excluded but %d rows fail membership", excluded, miss)
			}
		})
	}
}

func TestFilterConjunction(t *testing.T) {
	f := NewFilterer()
	got, err := f.Filter(sampleTable(), Selection{
		PitchType:   "fastball",
		Description: "swinging strike",
		Handedness:  "R",
	})
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d rows, want 1", len(got))
	}
	if got[0].PitchType != "FF" || got[0].Description != "swinging_strike" {
		t.Errorf("wrong row survived: %+v", got[0])
	}
}

func TestFilterUnrecognizedGroup(t *testing.T) {
	f := NewFilterer()

	tests := []struct {
		name string
		sel  Selection
	}{
		{"unknown pitch type", Selection{PitchType: "curveball"}},
		{"unknown description", Selection{Description: "whiff"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.Filter(sampleTable(), tt.sel)
			if !errors.Is(err, ErrUnrecognizedGroup) {
				t.Fatalf("got err %v, want ErrUnrecognizedGroup", err)
			}
		})
	}
}

func TestFilterDoesNotMutateSource(t *testing.T) {
	f := NewFilterer()
	src := sampleTable()
	want := sampleTable()

	if _, err := f.Filter(src, Selection{PitchType: "offspeed"}); err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	for i := range src {
		if src[i] != want[i] {
			t.Fatalf("source row %d mutated: %+v", i, src[i])
		}
	}
}

func TestFilterCustomGroups(t *testing.T) {
	f := NewFiltererWith(Groups{"hard": {"FF"}}, Groups{"take": {"ball"}})

	got, err := f.Filter(sampleTable(), Selection{PitchType: "hard", Description: "take"})
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d rows, want 1", len(got))
	}
	if _, err := f.Filter(sampleTable(), Selection{PitchType: "fastball"}); !errors.Is(err, ErrUnrecognizedGroup) {
		t.Fatalf("standard group should be unknown to custom filterer, got err %v", err)
	}
}
