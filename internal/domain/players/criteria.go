package players

import "strings"

// Criteria is the set of optional filter constraints for a player search.
// Zero values mean "no constraint": none of these stats is ever filtered at
// exactly zero in practice, so the zero value doubles as the unset sentinel.
type Criteria struct {
	MinPoints   float64
	MinRebounds float64
	MinAssists  float64
	Position    string // case-insensitive substring match against the position code
	Team        string // exact match against the 3-letter code, caller uppercases
}

// Matches reports whether the player satisfies every supplied constraint.
func (c Criteria) Matches(p Player) bool {
	if c.MinPoints > 0 && p.Points < c.MinPoints {
		return false
	}
	if c.MinRebounds > 0 && p.TotalRebounds < c.MinRebounds {
		return false
	}
	if c.MinAssists > 0 && p.Assists < c.MinAssists {
		return false
	}
	if c.Position != "" && !containsFold(p.Position, c.Position) {
		return false
	}
	if c.Team != "" && p.Team != c.Team {
		return false
	}
	return true
}

// MatchesName reports whether the player's name contains the term,
// case-insensitively. An empty term matches every player.
func MatchesName(p Player, term string) bool {
	if term == "" {
		return true
	}
	return containsFold(p.Name, term)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
