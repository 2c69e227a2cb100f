// Package players defines the per-player season record and the derived shapes
// returned by player queries.
package players

import "math"

// Player is one player-season row from the stats dataset. Immutable after
// load; percentage fields are fractions in [0,1] (0 when the source cell was
// missing).
type Player struct {
	Name                 string  `json:"name"`
	Position             string  `json:"position"` // may hold compound codes such as "SG-SF"
	Team                 string  `json:"team"`     // 3-letter code
	GamesPlayed          int     `json:"gamesPlayed"`
	MinutesPerGame       float64 `json:"minutesPerGame"`
	FieldGoalsPerGame    float64 `json:"fieldGoalsPerGame"`
	FieldGoalAttempts    float64 `json:"fieldGoalAttempts"`
	FieldGoalPct         float64 `json:"fieldGoalPct"`
	ThreePointersPerGame float64 `json:"threePointersPerGame"`
	ThreePointAttempts   float64 `json:"threePointAttempts"`
	ThreePointPct        float64 `json:"threePointPct"`
	FreeThrowsPerGame    float64 `json:"freeThrowsPerGame"`
	FreeThrowAttempts    float64 `json:"freeThrowAttempts"`
	FreeThrowPct         float64 `json:"freeThrowPct"`
	OffensiveRebounds    float64 `json:"offensiveRebounds"`
	DefensiveRebounds    float64 `json:"defensiveRebounds"`
	TotalRebounds        float64 `json:"totalRebounds"`
	Assists              float64 `json:"assists"`
	Steals               float64 `json:"steals"`
	Blocks               float64 `json:"blocks"`
	Turnovers            float64 `json:"turnovers"`
	PersonalFouls        float64 `json:"personalFouls"`
	Points               float64 `json:"points"`
}

// SearchResult is the enriched row returned by criteria searches. Percentages
// are scaled to 0-100 for display.
type SearchResult struct {
	Name                 string  `json:"name"`
	Position             string  `json:"position"`
	Team                 string  `json:"team"`
	Points               float64 `json:"points"`
	Rebounds             float64 `json:"rebounds"`
	Assists              float64 `json:"assists"`
	GamesPlayed          int     `json:"gamesPlayed"`
	MinutesPerGame       float64 `json:"minutesPerGame"`
	FieldGoalPercentage  float64 `json:"fieldGoalPercentage"`
	ThreePointPercentage float64 `json:"threePointPercentage"`
}

// BasicStats is the headline stat block of a player profile.
type BasicStats struct {
	PointsPerGame        float64 `json:"pointsPerGame"`
	ReboundsPerGame      float64 `json:"reboundsPerGame"`
	AssistsPerGame       float64 `json:"assistsPerGame"`
	FieldGoalPercentage  float64 `json:"fieldGoalPercentage"`
	ThreePointPercentage float64 `json:"threePointPercentage"`
	FreeThrowPercentage  float64 `json:"freeThrowPercentage"`
}

// DetailedStats is the expanded stat block of a player profile.
type DetailedStats struct {
	GamesPlayed          int     `json:"gamesPlayed"`
	MinutesPerGame       float64 `json:"minutesPerGame"`
	FieldGoalsPerGame    float64 `json:"fieldGoalsPerGame"`
	FieldGoalAttempts    float64 `json:"fieldGoalAttempts"`
	ThreePointersPerGame float64 `json:"threePointersPerGame"`
	ThreePointAttempts   float64 `json:"threePointAttempts"`
	FreeThrowsPerGame    float64 `json:"freeThrowsPerGame"`
	FreeThrowAttempts    float64 `json:"freeThrowAttempts"`
	OffensiveRebounds    float64 `json:"offensiveRebounds"`
	DefensiveRebounds    float64 `json:"defensiveRebounds"`
	StealsPerGame        float64 `json:"stealsPerGame"`
	BlocksPerGame        float64 `json:"blocksPerGame"`
	Turnovers            float64 `json:"turnovers"`
	PersonalFouls        float64 `json:"personalFouls"`
}

// Profile combines identity, formatted stat blocks, and the radar profile for
// a single player.
type Profile struct {
	Name          string        `json:"name"`
	Position      string        `json:"position"`
	Team          string        `json:"team"`
	BasicStats    BasicStats    `json:"basicStats"`
	DetailedStats DetailedStats `json:"detailedStats"`
	RadarStats    RadarProfile  `json:"radarStats"`
}

// NewSearchResult formats a player row for criteria-search output.
func NewSearchResult(p Player) SearchResult {
	return SearchResult{
		Name:                 p.Name,
		Position:             p.Position,
		Team:                 p.Team,
		Points:               p.Points,
		Rebounds:             p.TotalRebounds,
		Assists:              p.Assists,
		GamesPlayed:          p.GamesPlayed,
		MinutesPerGame:       p.MinutesPerGame,
		FieldGoalPercentage:  displayPct(p.FieldGoalPct),
		ThreePointPercentage: displayPct(p.ThreePointPct),
	}
}

// NewProfile assembles the full profile for a player row.
func NewProfile(p Player) Profile {
	return Profile{
		Name:     p.Name,
		Position: p.Position,
		Team:     p.Team,
		BasicStats: BasicStats{
			PointsPerGame:        p.Points,
			ReboundsPerGame:      p.TotalRebounds,
			AssistsPerGame:       p.Assists,
			FieldGoalPercentage:  displayPct(p.FieldGoalPct),
			ThreePointPercentage: displayPct(p.ThreePointPct),
			FreeThrowPercentage:  displayPct(p.FreeThrowPct),
		},
		DetailedStats: DetailedStats{
			GamesPlayed:          p.GamesPlayed,
			MinutesPerGame:       p.MinutesPerGame,
			FieldGoalsPerGame:    p.FieldGoalsPerGame,
			FieldGoalAttempts:    p.FieldGoalAttempts,
			ThreePointersPerGame: p.ThreePointersPerGame,
			ThreePointAttempts:   p.ThreePointAttempts,
			FreeThrowsPerGame:    p.FreeThrowsPerGame,
			FreeThrowAttempts:    p.FreeThrowAttempts,
			OffensiveRebounds:    p.OffensiveRebounds,
			DefensiveRebounds:    p.DefensiveRebounds,
			StealsPerGame:        p.Steals,
			BlocksPerGame:        p.Blocks,
			Turnovers:            p.Turnovers,
			PersonalFouls:        p.PersonalFouls,
		},
		RadarStats: ComputeRadar(p),
	}
}

// displayPct scales a stored [0,1] fraction to 0-100. Missing values (NaN)
// render as 0 so responses always encode cleanly.
func displayPct(fraction float64) float64 {
	if math.IsNaN(fraction) {
		return 0
	}
	return fraction * 100
}
