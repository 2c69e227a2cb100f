package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Abhilekh0724/hoops-stats-service/internal/domain"
	"github.com/Abhilekh0724/hoops-stats-service/internal/logging"
)

const (
	codeBadRequest       = "bad_request"
	codeUnauthorized     = "unauthorized"
	codeMethodNotAllowed = "method_not_allowed"
	codePlayerNotFound   = "player_not_found"
	codeTeamNotFound     = "team_not_found"
	codeNoGamesForTeam   = "no_games_for_team"
	codeDataUnavailable  = "data_unavailable"
	codeInternalError    = "internal_error"
)

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(loggerFromRequest(r, nil), "encode response", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, r, status, errorBody{Error: message, Code: code})
}

// statusForError maps domain sentinel errors onto HTTP statuses and stable
// machine-readable codes.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, codePlayerNotFound
	case errors.Is(err, domain.ErrTeamNotFound):
		return http.StatusNotFound, codeTeamNotFound
	case errors.Is(err, domain.ErrNoGamesForTeam):
		return http.StatusNotFound, codeNoGamesForTeam
	case errors.Is(err, domain.ErrDataUnavailable):
		return http.StatusServiceUnavailable, codeDataUnavailable
	default:
		return http.StatusInternalServerError, codeInternalError
	}
}

func loggerFromRequest(r *http.Request, fallback *slog.Logger) *slog.Logger {
	return logging.FromContext(r.Context(), fallback)
}
