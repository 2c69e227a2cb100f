// Package domain holds the shared types and failure conditions exposed by the
// query engines.
package domain

import "errors"

// Failure conditions surfaced by the engines. Callers distinguish them with
// errors.Is; absence of data is never reported as an empty success.
var (
	// ErrDataUnavailable means the dataset snapshot failed to load or is not
	// ready yet. Fatal for the current call, retryable for the process.
	ErrDataUnavailable = errors.New("dataset snapshot unavailable")

	// ErrPlayerNotFound means an exact-name lookup had zero matches.
	ErrPlayerNotFound = errors.New("player not found")

	// ErrTeamNotFound means the team identifier has no franchise entry.
	ErrTeamNotFound = errors.New("team not found")

	// ErrNoGamesForTeam means the franchise is known but has no game rows in
	// the snapshot.
	ErrNoGamesForTeam = errors.New("no games recorded for team")
)
