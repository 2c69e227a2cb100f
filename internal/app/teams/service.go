// Package teams exposes the team query operations over the dataset snapshot:
// the known-team listing and per-team summaries.
package teams

import (
	"github.com/Abhilekh0724/hoops-stats-service/internal/domain"
	domainteams "github.com/Abhilekh0724/hoops-stats-service/internal/domain/teams"
)

// Store provides the current dataset snapshot.
type Store interface {
	Snapshot() (*domain.Snapshot, bool)
}

// Service coordinates team queries using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// TeamIDs lists the team identifiers known to the franchise table, in source
// order.
func (s *Service) TeamIDs() ([]string, error) {
	snap, ok := s.store.Snapshot()
	if !ok {
		return nil, domain.ErrDataUnavailable
	}
	return snap.TeamIDs(), nil
}

// Summary returns franchise identity, the recent-games window, and the
// full-history season aggregates for one team. A team missing from the
// franchise table and a known team with zero game rows are distinct
// conditions.
func (s *Service) Summary(teamID string) (domainteams.Summary, error) {
	snap, ok := s.store.Snapshot()
	if !ok {
		return domainteams.Summary{}, domain.ErrDataUnavailable
	}

	franchise, ok := snap.Franchise(teamID)
	if !ok {
		return domainteams.Summary{}, domain.ErrTeamNotFound
	}

	games := snap.TeamGames(teamID)
	if len(games) == 0 {
		return domainteams.Summary{}, domain.ErrNoGamesForTeam
	}

	return domainteams.BuildSummary(franchise, games), nil
}
