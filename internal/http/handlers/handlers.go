package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	playersapp "github.com/Abhilekh0724/hoops-stats-service/internal/app/players"
	teamsapp "github.com/Abhilekh0724/hoops-stats-service/internal/app/teams"
	"github.com/Abhilekh0724/hoops-stats-service/internal/domain"
	domainplayers "github.com/Abhilekh0724/hoops-stats-service/internal/domain/players"
	"github.com/Abhilekh0724/hoops-stats-service/internal/logging"
	"github.com/Abhilekh0724/hoops-stats-service/internal/metrics"
)

// Store exposes the read side of the snapshot store used by readiness checks.
type Store interface {
	Snapshot() (*domain.Snapshot, bool)
}

// Handler serves the public API endpoints.
type Handler struct {
	players  *playersapp.Service
	teams    *teamsapp.Service
	store    Store
	recorder *metrics.Recorder
	logger   *slog.Logger
	now      func() time.Time
}

func New(players *playersapp.Service, teams *teamsapp.Service, store Store, recorder *metrics.Recorder, logger *slog.Logger) *Handler {
	return &Handler{
		players:  players,
		teams:    teams,
		store:    store,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

// Health reports process liveness. It stays green even when no snapshot is
// loaded so orchestrators do not restart a process that is merely degraded.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports whether a snapshot is loaded and queryable.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.store.Snapshot()
	if !ok {
		writeError(w, r, http.StatusServiceUnavailable, codeDataUnavailable, "no dataset snapshot loaded")
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{
		"status":     "ready",
		"loadId":     snap.LoadID(),
		"loadedAt":   snap.LoadedAt().UTC().Format(time.RFC3339),
		"players":    snap.PlayerCount(),
		"games":      snap.GameCount(),
		"franchises": snap.FranchiseCount(),
	})
}

// Players handles GET /api/players?search=<term> and returns matching names.
func (h *Handler) Players(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	term := r.URL.Query().Get("search")
	start := h.now()
	names, err := h.players.SearchNames(term)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.recorder.RecordQuery("players.search_names", len(names), h.now().Sub(start))

	writeJSON(w, r, http.StatusOK, map[string]any{"players": names})
}

// SearchPlayers handles GET /api/players/search with threshold and
// category filters.
func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	q := r.URL.Query()
	criteria := domainplayers.Criteria{
		MinPoints:   floatParam(q.Get("min_points")),
		MinRebounds: floatParam(q.Get("min_rebounds")),
		MinAssists:  floatParam(q.Get("min_assists")),
		Position:    strings.TrimSpace(q.Get("position")),
		Team:        strings.ToUpper(strings.TrimSpace(q.Get("team"))),
	}

	start := h.now()
	results, err := h.players.SearchByCriteria(criteria)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.recorder.RecordQuery("players.search_criteria", len(results), h.now().Sub(start))

	writeJSON(w, r, http.StatusOK, map[string]any{
		"count":   len(results),
		"players": results,
	})
}

// PlayerProfile handles GET /api/player/{name}.
func (h *Handler) PlayerProfile(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/api/player/")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	if name == "" {
		writeError(w, r, http.StatusBadRequest, codeBadRequest, "player name is required")
		return
	}

	start := h.now()
	profile, err := h.players.Profile(name)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.recorder.RecordQuery("players.profile", 1, h.now().Sub(start))

	writeJSON(w, r, http.StatusOK, profile)
}

// Teams handles GET /api/teams and lists the known team identifiers.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	ids, err := h.teams.TeamIDs()
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"teams": ids})
}

// TeamSummary handles GET /api/team/{id}.
func (h *Handler) TeamSummary(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	teamID := strings.ToUpper(strings.TrimPrefix(r.URL.Path, "/api/team/"))
	if teamID == "" {
		writeError(w, r, http.StatusBadRequest, codeBadRequest, "team id is required")
		return
	}

	start := h.now()
	summary, err := h.teams.Summary(teamID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.recorder.RecordQuery("teams.summary", len(summary.RecentGames), h.now().Sub(start))

	writeJSON(w, r, http.StatusOK, summary)
}

func requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return false
	}
	return true
}

// floatParam parses a numeric query parameter. Missing or malformed values
// become zero, which the criteria layer treats as unset.
func floatParam(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return value
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := statusForError(err)
	if status >= http.StatusInternalServerError {
		logging.Error(loggerFromRequest(r, h.logger), "request failed", err)
	}
	writeError(w, r, status, code, err.Error())
}
