package loader

import (
	"fmt"
	"io"

	"github.com/Abhilekh0724/hoops-stats-service/internal/domain/teams"
)

// parseFranchises reads the franchise identity table. Order is preserved; it
// drives the team listing endpoint.
func parseFranchises(r io.Reader) ([]teams.Franchise, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, fmt.Errorf("franchises table: %w", err)
	}

	rows := make([]teams.Franchise, 0, len(t.rows))
	for _, row := range t.rows {
		teamID := t.text(row, "team")
		if teamID == "" {
			continue
		}
		rows = append(rows, teams.Franchise{
			TeamID:     teamID,
			FullName:   t.text(row, "full_name"),
			League:     t.text(row, "league"),
			Conference: t.text(row, "conference"),
			Division:   t.text(row, "division"),
		})
	}
	return rows, nil
}
