// Package teams defines franchise identity, per-team game rows, and the
// summary shapes returned by team queries.
package teams

import "time"

// GameResult is the W/L outcome of a single game.
type GameResult string

const (
	ResultWin  GameResult = "W"
	ResultLoss GameResult = "L"
)

// Franchise is the static identity record for a team, independent of any
// season or game.
type Franchise struct {
	TeamID     string `json:"teamId"`
	FullName   string `json:"fullName"`
	League     string `json:"league"`
	Conference string `json:"conference"`
	Division   string `json:"division"`
}

// TeamGame is one historical game row for a team. Immutable after load.
type TeamGame struct {
	TeamID        string     `json:"teamId"`
	Date          time.Time  `json:"date"`
	Result        GameResult `json:"result"`
	PointsFor     float64    `json:"pointsFor"`
	PointsAgainst float64    `json:"pointsAgainst"`
	EloAfter      float64    `json:"eloAfter"`
	LeagueID      string     `json:"leagueId"`
}

// GameLine is the display form of a recent game.
type GameLine struct {
	Date          string     `json:"date"`
	Result        GameResult `json:"result"`
	PointsFor     float64    `json:"pointsFor"`
	PointsAgainst float64    `json:"pointsAgainst"`
	EloAfter      float64    `json:"eloAfter"`
}

// SeasonStats aggregates a team's full game history in the snapshot.
type SeasonStats struct {
	Wins             int     `json:"wins"`
	Losses           int     `json:"losses"`
	AvgPointsFor     float64 `json:"avgPointsFor"`
	AvgPointsAgainst float64 `json:"avgPointsAgainst"`
	CurrentElo       float64 `json:"currentElo"`
}

// FranchiseInfo is the identity block embedded in a summary.
type FranchiseInfo struct {
	FullName   string `json:"fullName"`
	League     string `json:"league"`
	Conference string `json:"conference"`
	Division   string `json:"division"`
}

// Summary combines franchise identity, the recent-games window, and the
// full-history season aggregates for one team.
type Summary struct {
	Name        string        `json:"name"`
	Info        FranchiseInfo `json:"info"`
	RecentGames []GameLine    `json:"recentGames"`
	SeasonStats SeasonStats   `json:"seasonStats"`
}
