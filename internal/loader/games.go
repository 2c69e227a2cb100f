package loader

import (
	"fmt"
	"io"

	"github.com/Abhilekh0724/hoops-stats-service/internal/domain/teams"
	"github.com/Abhilekh0724/hoops-stats-service/internal/timeutil"
)

// parseTeamGames reads the historical results table, keeping only rows whose
// league matches. The league filter runs once here, never per query. Rows
// with an unparseable date or no team identifier are skipped.
func parseTeamGames(r io.Reader, league string) ([]teams.TeamGame, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, fmt.Errorf("games table: %w", err)
	}

	rows := make([]teams.TeamGame, 0, len(t.rows))
	for _, row := range t.rows {
		if league != "" && t.text(row, "lg_id") != league {
			continue
		}
		teamID := t.text(row, "team_id")
		if teamID == "" {
			continue
		}
		date, err := timeutil.ParseGameDate(t.text(row, "date_game"))
		if err != nil {
			continue
		}
		rows = append(rows, teams.TeamGame{
			TeamID:        teamID,
			Date:          date,
			Result:        teams.GameResult(t.text(row, "game_result")),
			PointsFor:     t.number(row, "pts"),
			PointsAgainst: t.number(row, "opp_pts"),
			EloAfter:      t.number(row, "elo_n"),
			LeagueID:      t.text(row, "lg_id"),
		})
	}
	return rows, nil
}
