// Package testutil provides shared fixtures for tests.
package testutil

import (
	"time"

	"github.com/Abhilekh0724/hoops-stats-service/internal/domain"
	"github.com/Abhilekh0724/hoops-stats-service/internal/domain/players"
	"github.com/Abhilekh0724/hoops-stats-service/internal/domain/teams"
)

// SamplePlayer returns a player fixture with the provided identity and
// headline stats; everything else carries plausible defaults.
func SamplePlayer(name, position, team string, points float64) players.Player {
	return players.Player{
		Name:                 name,
		Position:             position,
		Team:                 team,
		GamesPlayed:          70,
		MinutesPerGame:       30,
		FieldGoalsPerGame:    7,
		FieldGoalAttempts:    15,
		FieldGoalPct:         0.47,
		ThreePointersPerGame: 1.5,
		ThreePointAttempts:   4,
		ThreePointPct:        0.36,
		FreeThrowsPerGame:    4,
		FreeThrowAttempts:    5,
		FreeThrowPct:         0.8,
		OffensiveRebounds:    1.5,
		DefensiveRebounds:    4.5,
		TotalRebounds:        6,
		Assists:              4,
		Steals:               1,
		Blocks:               0.5,
		Turnovers:            2,
		PersonalFouls:        2.2,
		Points:               points,
	}
}

// SampleFranchise returns a franchise fixture for the team identifier.
func SampleFranchise(teamID string) teams.Franchise {
	return teams.Franchise{
		TeamID:     teamID,
		FullName:   "The " + teamID,
		League:     "NBA",
		Conference: "East",
		Division:   "Atlantic",
	}
}

// SampleGame returns a game fixture for the team on the given day offset
// within March 2015.
func SampleGame(teamID string, day int, result teams.GameResult, elo float64) teams.TeamGame {
	return teams.TeamGame{
		TeamID:        teamID,
		Date:          time.Date(2015, time.March, day, 0, 0, 0, 0, time.UTC),
		Result:        result,
		PointsFor:     102,
		PointsAgainst: 99,
		EloAfter:      elo,
		LeagueID:      "NBA",
	}
}

// SampleSnapshot assembles a snapshot from the provided rows with a fixed
// load id.
func SampleSnapshot(playerRows []players.Player, gameRows []teams.TeamGame, franchiseRows []teams.Franchise) *domain.Snapshot {
	return domain.NewSnapshot("test-load", time.Date(2015, time.April, 1, 0, 0, 0, 0, time.UTC), playerRows, gameRows, franchiseRows)
}

// StubStore is a Store implementation backed by a fixed snapshot; a nil
// snapshot reports unavailable.
type StubStore struct {
	Snap *domain.Snapshot
}

// Snapshot implements the app Store contract.
func (s *StubStore) Snapshot() (*domain.Snapshot, bool) {
	if s.Snap == nil {
		return nil, false
	}
	return s.Snap, true
}
