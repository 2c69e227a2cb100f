// Package players exposes the player query operations over the dataset
// snapshot: name search, criteria search, and single-player profiles.
package players

import (
	"sort"

	"github.com/Abhilekh0724/hoops-stats-service/internal/domain"
	domainplayers "github.com/Abhilekh0724/hoops-stats-service/internal/domain/players"
)

// Store provides the current dataset snapshot.
type Store interface {
	Snapshot() (*domain.Snapshot, bool)
}

// Service coordinates player queries using a Store. Every operation is a pure
// read over the snapshot; concurrent calls need no coordination.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// SearchNames returns the names of players whose name contains the term,
// case-insensitively, in snapshot order. An empty term matches everyone.
func (s *Service) SearchNames(term string) ([]string, error) {
	snap, ok := s.store.Snapshot()
	if !ok {
		return nil, domain.ErrDataUnavailable
	}

	names := make([]string, 0)
	for _, p := range snap.Players() {
		if domainplayers.MatchesName(p, term) {
			names = append(names, p.Name)
		}
	}
	return names, nil
}

// SearchByCriteria returns enriched rows for every player matching all
// supplied constraints, sorted by points descending. The sort is stable, so
// equal-point players keep their snapshot order.
func (s *Service) SearchByCriteria(criteria domainplayers.Criteria) ([]domainplayers.SearchResult, error) {
	snap, ok := s.store.Snapshot()
	if !ok {
		return nil, domain.ErrDataUnavailable
	}

	matched := make([]domainplayers.Player, 0)
	for _, p := range snap.Players() {
		if criteria.Matches(p) {
			matched = append(matched, p)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool { return matched[i].Points > matched[j].Points })

	results := make([]domainplayers.SearchResult, 0, len(matched))
	for _, p := range matched {
		results = append(results, domainplayers.NewSearchResult(p))
	}
	return results, nil
}

// Profile returns the full profile for an exact player name. The first row
// with that name wins when a name repeats across the table.
func (s *Service) Profile(name string) (domainplayers.Profile, error) {
	snap, ok := s.store.Snapshot()
	if !ok {
		return domainplayers.Profile{}, domain.ErrDataUnavailable
	}

	for _, p := range snap.Players() {
		if p.Name == name {
			return domainplayers.NewProfile(p), nil
		}
	}
	return domainplayers.Profile{}, domain.ErrPlayerNotFound
}
