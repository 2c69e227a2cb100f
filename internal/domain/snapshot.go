package domain

import (
	"sort"
	"time"

	"github.com/Abhilekh0724/hoops-stats-service/internal/domain/players"
	"github.com/Abhilekh0724/hoops-stats-service/internal/domain/teams"
)

// Snapshot is the immutable, fully-loaded in-memory copy of the source
// tables. It is constructed once by the loader and shared by reference across
// concurrent callers; nothing mutates it after construction, so reads need no
// coordination.
type Snapshot struct {
	loadID   string
	loadedAt time.Time

	players    []players.Player
	gamesByTID map[string][]teams.TeamGame
	gameCount  int
	franchises map[string]teams.Franchise
	teamOrder  []string
}

// NewSnapshot builds a snapshot from already-typed rows. Games are grouped
// per team and ordered date-descending (the canonical query order, most
// recent first). Franchises keep their source order for team listings; a
// duplicated team ID keeps the first row.
func NewSnapshot(loadID string, loadedAt time.Time, playerRows []players.Player, gameRows []teams.TeamGame, franchiseRows []teams.Franchise) *Snapshot {
	gamesByTID := make(map[string][]teams.TeamGame)
	for _, g := range gameRows {
		gamesByTID[g.TeamID] = append(gamesByTID[g.TeamID], g)
	}
	for _, games := range gamesByTID {
		games := games
		sort.SliceStable(games, func(i, j int) bool { return games[i].Date.After(games[j].Date) })
	}

	franchises := make(map[string]teams.Franchise, len(franchiseRows))
	teamOrder := make([]string, 0, len(franchiseRows))
	for _, f := range franchiseRows {
		if _, ok := franchises[f.TeamID]; ok {
			continue
		}
		franchises[f.TeamID] = f
		teamOrder = append(teamOrder, f.TeamID)
	}

	return &Snapshot{
		loadID:     loadID,
		loadedAt:   loadedAt,
		players:    playerRows,
		gamesByTID: gamesByTID,
		gameCount:  len(gameRows),
		franchises: franchises,
		teamOrder:  teamOrder,
	}
}

// LoadID identifies this load for logs and readiness reporting.
func (s *Snapshot) LoadID() string { return s.loadID }

// LoadedAt reports when the snapshot was constructed.
func (s *Snapshot) LoadedAt() time.Time { return s.loadedAt }

// Players returns the player table in load order. Read-only.
func (s *Snapshot) Players() []players.Player { return s.players }

// TeamGames returns a team's games ordered date-descending. Read-only; an
// unknown team yields nil.
func (s *Snapshot) TeamGames(teamID string) []teams.TeamGame {
	return s.gamesByTID[teamID]
}

// Franchise resolves a team identifier; absence means the team is unknown.
func (s *Snapshot) Franchise(teamID string) (teams.Franchise, bool) {
	f, ok := s.franchises[teamID]
	return f, ok
}

// TeamIDs lists the known franchise identifiers in source order.
func (s *Snapshot) TeamIDs() []string {
	out := make([]string, len(s.teamOrder))
	copy(out, s.teamOrder)
	return out
}

// PlayerCount reports the number of player rows.
func (s *Snapshot) PlayerCount() int { return len(s.players) }

// GameCount reports the number of game rows across all teams.
func (s *Snapshot) GameCount() int { return s.gameCount }

// FranchiseCount reports the number of known franchises.
func (s *Snapshot) FranchiseCount() int { return len(s.franchises) }
