package teams

import "github.com/Abhilekh0724/hoops-stats-service/internal/timeutil"

// RecentGamesWindow caps the display window of most-recent games. The season
// aggregates always cover the full history, never just this window.
const RecentGamesWindow = 10

// BuildSummary assembles the summary for a franchise from its full game
// selection. games must be non-empty and ordered date-descending; callers
// guard the empty case with their own not-found condition.
func BuildSummary(f Franchise, games []TeamGame) Summary {
	return Summary{
		Name: f.TeamID,
		Info: FranchiseInfo{
			FullName:   f.FullName,
			League:     f.League,
			Conference: f.Conference,
			Division:   f.Division,
		},
		RecentGames: recentWindow(games),
		SeasonStats: aggregateSeason(games),
	}
}

func recentWindow(games []TeamGame) []GameLine {
	n := len(games)
	if n > RecentGamesWindow {
		n = RecentGamesWindow
	}
	lines := make([]GameLine, 0, n)
	for _, g := range games[:n] {
		lines = append(lines, GameLine{
			Date:          timeutil.FormatDate(g.Date),
			Result:        g.Result,
			PointsFor:     g.PointsFor,
			PointsAgainst: g.PointsAgainst,
			EloAfter:      g.EloAfter,
		})
	}
	return lines
}

func aggregateSeason(games []TeamGame) SeasonStats {
	stats := SeasonStats{}
	if len(games) == 0 {
		return stats
	}

	var totalFor, totalAgainst float64
	for _, g := range games {
		switch g.Result {
		case ResultWin:
			stats.Wins++
		case ResultLoss:
			stats.Losses++
		}
		totalFor += g.PointsFor
		totalAgainst += g.PointsAgainst
	}

	count := float64(len(games))
	stats.AvgPointsFor = totalFor / count
	stats.AvgPointsAgainst = totalAgainst / count
	// Most recent game first by construction.
	stats.CurrentElo = games[0].EloAfter
	return stats
}
