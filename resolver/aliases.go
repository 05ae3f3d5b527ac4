// SPDX-License-Identifier: MIT

package resolver

// Alias maps a common variant of a location name to its canonical ID.
type Alias struct {
	Phrase     string // lower-case text to look for inside a fragment
	LocationID string
}

// defaultAliases is ordered: the first alias contained in a fragment wins.
var defaultAliases = []Alias{
	{"gate 1", "gate1"},
	{"gate 2", "gate2"},
	{"main gate 1", "gate1"},
	{"main gate 2", "gate2"},
	{"admin 1", "admin1"},
	{"admin 2", "admin2"},
	{"admin block 1", "admin1"},
	{"admin block 2", "admin2"},
	{"flag post", "flagpost"},
	{"flagpost", "flagpost"},
	{"parents stay", "parents_stay"},
	{"parents area", "parents_stay"},
	{"staff quarters", "staff_quarters"},
	{"food court", "food_court"},
	{"hostel 1", "hostel1"},
	{"hostel one", "hostel1"},
	{"sports area", "sports_area"},
	{"sports ground", "sports_area"},
	{"ground", "sports_area"},
}

// DefaultAliases returns a copy of the alias table for the reference campus.
func DefaultAliases() []Alias {
	out := make([]Alias, len(defaultAliases))
	copy(out, defaultAliases)

	return out
}
