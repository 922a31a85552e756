package pitchdata

// GroupAll is the reserved selector meaning "do not filter this dimension".
const GroupAll = "all"

// Groups maps a human-readable group name to the set of raw codes it
// matches. Group code sets are disjoint within a table except for
// deliberate supersets like "swing".
type Groups map[string][]string

// Contains reports whether code is in the named group.
func (g Groups) Contains(name, code string) bool {
	for _, c := range g[name] {
		if c == code {
			return true
		}
	}
	return false
}

// PitchTypeGroups maps pitch-type group names to Statcast pitch-type codes.
func PitchTypeGroups() Groups {
	return Groups{
		"fastball": {"FF", "SI", "FC"},
		"breaking": {"SL", "CU", "ST", "SV", "KC"},
		"offspeed": {"FS", "CH"},
	}
}

// DescriptionGroups maps outcome group names to Statcast description codes.
// "swing" intentionally overlaps the other swing-related groups: it is the
// denominator for whiff rate.
func DescriptionGroups() Groups {
	return Groups{
		"in play":         {"hit_into_play"},
		"swinging strike": {"swinging_strike", "swinging_strike_blocked", "foul_tip"},
		"called strike":   {"called_strike"},
		"foul":            {"foul"},
		"ball":            {"ball", "blocked_ball"},
		"hit by pitch":    {"hit_by_pitch"},
		"swing":           {"hit_into_play", "swinging_strike", "swinging_strike_blocked", "foul_tip", "foul"},
	}
}

// DescriptionColors maps description codes to the scatter colors used on
// strike-zone plots.
func DescriptionColors() map[string]string {
	return map[string]string{
		"swinging_strike":         "red",
		"foul_tip":                "red",
		"swinging_strike_blocked": "red",
		"ball":                    "blue",
		"blocked_ball":            "blue",
		"hit_into_play":           "green",
		"called_strike":           "orange",
		"foul":                    "purple",
		"foul_bunt":               "purple",
		"hit_by_pitch":            "brown",
	}
}
