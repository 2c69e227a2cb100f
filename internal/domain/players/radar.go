package players

import "math"

// Radar calibration divisors, chosen against typical elite single-season
// totals. Fixed constants: callers needing different scaling post-process the
// output rather than reconfiguring the engine.
const (
	scoringDivisor    = 30 // points per game
	reboundingDivisor = 15 // total rebounds per game
	playmakingDivisor = 10 // assists per game
	defenseDivisor    = 5  // steals + blocks per game
)

// RadarProfile holds five normalized [0,1] scores for comparative display.
type RadarProfile struct {
	Scoring    float64 `json:"scoring"`
	Rebounding float64 `json:"rebounding"`
	Playmaking float64 `json:"playmaking"`
	Efficiency float64 `json:"efficiency"`
	Defense    float64 `json:"defense"`
}

// ComputeRadar derives the radar profile for a player row. Pure function:
// missing (NaN) inputs count as 0, every component is clamped to [0,1].
// Efficiency is the raw field-goal fraction, only clamped, never re-divided.
func ComputeRadar(p Player) RadarProfile {
	return RadarProfile{
		Scoring:    normalize(p.Points, scoringDivisor),
		Rebounding: normalize(p.TotalRebounds, reboundingDivisor),
		Playmaking: normalize(p.Assists, playmakingDivisor),
		Efficiency: clamp01(sanitize(p.FieldGoalPct)),
		Defense:    normalize(sanitize(p.Steals)+sanitize(p.Blocks), defenseDivisor),
	}
}

func normalize(value, divisor float64) float64 {
	return clamp01(sanitize(value) / divisor)
}

func clamp01(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

func sanitize(value float64) float64 {
	if math.IsNaN(value) {
		return 0
	}
	return value
}
