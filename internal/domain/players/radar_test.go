package players

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestComputeRadarScalesAgainstDivisors(t *testing.T) {
	p := Player{
		Name:          "Alice Example",
		Points:        28.5,
		TotalRebounds: 6,
		Assists:       11,
		FieldGoalPct:  0.512,
		Steals:        1.5,
		Blocks:        1,
	}

	radar := ComputeRadar(p)

	if !almostEqual(radar.Scoring, 0.95) {
		t.Fatalf("expected scoring 0.95, got %v", radar.Scoring)
	}
	if !almostEqual(radar.Rebounding, 0.4) {
		t.Fatalf("expected rebounding 0.4, got %v", radar.Rebounding)
	}
	if !almostEqual(radar.Playmaking, 1) {
		t.Fatalf("expected playmaking clamped to 1, got %v", radar.Playmaking)
	}
	if !almostEqual(radar.Efficiency, 0.512) {
		t.Fatalf("expected efficiency to pass through raw fraction, got %v", radar.Efficiency)
	}
	if !almostEqual(radar.Defense, 0.5) {
		t.Fatalf("expected defense 0.5, got %v", radar.Defense)
	}
}

func TestComputeRadarClampsAboveDivisor(t *testing.T) {
	radar := ComputeRadar(Player{Points: 40, TotalRebounds: 20, Assists: 14, Steals: 4, Blocks: 3})

	if radar.Scoring != 1 {
		t.Fatalf("expected 40 points to clamp to 1, got %v", radar.Scoring)
	}
	if radar.Rebounding != 1 || radar.Playmaking != 1 || radar.Defense != 1 {
		t.Fatalf("expected all oversized components to clamp to 1, got %+v", radar)
	}
}

func TestComputeRadarZeroPlayer(t *testing.T) {
	radar := ComputeRadar(Player{})
	if radar != (RadarProfile{}) {
		t.Fatalf("expected all-zero profile, got %+v", radar)
	}
}

func TestComputeRadarToleratesNaN(t *testing.T) {
	nan := math.NaN()
	radar := ComputeRadar(Player{Points: nan, TotalRebounds: nan, Assists: nan, FieldGoalPct: nan, Steals: nan, Blocks: nan})

	for name, v := range map[string]float64{
		"scoring":    radar.Scoring,
		"rebounding": radar.Rebounding,
		"playmaking": radar.Playmaking,
		"efficiency": radar.Efficiency,
		"defense":    radar.Defense,
	} {
		if v != 0 {
			t.Fatalf("expected %s to be 0 for NaN input, got %v", name, v)
		}
	}
}

func TestComputeRadarComponentsWithinUnitInterval(t *testing.T) {
	inputs := []Player{
		{Points: 12.3, TotalRebounds: 3.1, Assists: 2.2, FieldGoalPct: 0.43, Steals: 0.9, Blocks: 0.2},
		{Points: 36, TotalRebounds: 18, Assists: 12, FieldGoalPct: 1, Steals: 3, Blocks: 4},
		{FieldGoalPct: 1.7}, // defensive clamp even for out-of-range fractions
	}

	for _, p := range inputs {
		radar := ComputeRadar(p)
		for _, v := range []float64{radar.Scoring, radar.Rebounding, radar.Playmaking, radar.Efficiency, radar.Defense} {
			if v < 0 || v > 1 {
				t.Fatalf("component out of [0,1] for input %+v: %+v", p, radar)
			}
		}
	}
}
