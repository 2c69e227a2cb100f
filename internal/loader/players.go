package loader

import (
	"fmt"
	"io"

	"github.com/Abhilekh0724/hoops-stats-service/internal/domain/players"
)

// parsePlayers reads the per-player season stats table. Rows without a player
// name are skipped; every other field degrades to 0 when missing.
func parsePlayers(r io.Reader) ([]players.Player, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, fmt.Errorf("players table: %w", err)
	}

	rows := make([]players.Player, 0, len(t.rows))
	for _, row := range t.rows {
		name := t.text(row, "player")
		if name == "" {
			continue
		}
		rows = append(rows, players.Player{
			Name:                 name,
			Position:             t.text(row, "pos"),
			Team:                 t.text(row, "tm"),
			GamesPlayed:          t.count(row, "g"),
			MinutesPerGame:       t.number(row, "mp"),
			FieldGoalsPerGame:    t.number(row, "fg"),
			FieldGoalAttempts:    t.number(row, "fga"),
			FieldGoalPct:         t.number(row, "fg%"),
			ThreePointersPerGame: t.number(row, "3p"),
			ThreePointAttempts:   t.number(row, "3pa"),
			ThreePointPct:        t.number(row, "3p%"),
			FreeThrowsPerGame:    t.number(row, "ft"),
			FreeThrowAttempts:    t.number(row, "fta"),
			FreeThrowPct:         t.number(row, "ft%"),
			OffensiveRebounds:    t.number(row, "orb"),
			DefensiveRebounds:    t.number(row, "drb"),
			TotalRebounds:        t.number(row, "trb"),
			Assists:              t.number(row, "ast"),
			Steals:               t.number(row, "stl"),
			Blocks:               t.number(row, "blk"),
			Turnovers:            t.number(row, "tov"),
			PersonalFouls:        t.number(row, "pf"),
			Points:               t.number(row, "pts"),
		})
	}
	return rows, nil
}
