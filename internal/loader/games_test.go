package loader

import (
	"strings"
	"testing"

	"github.com/Abhilekh0724/hoops-stats-service/internal/domain/teams"
)

const gamesCSV = `team_id,date_game,game_result,pts,opp_pts,elo_n,lg_id
ABC,11/1/1946,W,101,88,1512.3,NBA
ABC,1946-11-03,L,90,95,1502.1,NBA
XYZ,11/2/1946,W,99,97,1488.0,ABA
,11/4/1946,W,100,90,1500.0,NBA
ABC,not-a-date,W,100,90,1500.0,NBA
`

func TestParseTeamGamesFiltersLeagueOnce(t *testing.T) {
	rows, err := parseTeamGames(strings.NewReader(gamesCSV), "NBA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected only valid NBA rows, got %d", len(rows))
	}
	for _, g := range rows {
		if g.LeagueID != "NBA" {
			t.Fatalf("expected NBA rows only, got %s", g.LeagueID)
		}
	}
}

func TestParseTeamGamesFields(t *testing.T) {
	rows, err := parseTeamGames(strings.NewReader(gamesCSV), "NBA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := rows[0]
	if first.TeamID != "ABC" || first.Result != teams.ResultWin {
		t.Fatalf("unexpected first row: %+v", first)
	}
	if first.PointsFor != 101 || first.PointsAgainst != 88 || first.EloAfter != 1512.3 {
		t.Fatalf("unexpected numbers: %+v", first)
	}
	if got := first.Date.Format("2006-01-02"); got != "1946-11-01" {
		t.Fatalf("expected legacy date parsed, got %s", got)
	}
	if got := rows[1].Date.Format("2006-01-02"); got != "1946-11-03" {
		t.Fatalf("expected canonical date parsed, got %s", got)
	}
}

func TestParseTeamGamesEmptyLeagueKeepsAll(t *testing.T) {
	rows, err := parseTeamGames(strings.NewReader(gamesCSV), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected ABA row kept without a league filter, got %d", len(rows))
	}
}
