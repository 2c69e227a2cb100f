package handlers

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Abhilekh0724/hoops-stats-service/internal/domain"
	"github.com/Abhilekh0724/hoops-stats-service/internal/logging"
)

// ReloadFunc rebuilds a snapshot from the configured dataset files.
type ReloadFunc func(ctx context.Context) (*domain.Snapshot, error)

// AdminHandler serves operator-only endpoints behind bearer token auth.
type AdminHandler struct {
	reload ReloadFunc
	token  string
	logger *slog.Logger
}

func NewAdminHandler(reload ReloadFunc, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{reload: reload, token: token, logger: logger}
}

// Reload handles POST /admin/datasets/reload. A successful reload swaps in a
// fresh snapshot; a failed one leaves the current snapshot serving.
func (h *AdminHandler) Reload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}
	if !h.authorize(r) {
		writeError(w, r, http.StatusUnauthorized, codeUnauthorized, "invalid or missing bearer token")
		return
	}

	logger := loggerFromRequest(r, h.logger)
	snap, err := h.reload(r.Context())
	if err != nil {
		logging.Error(logger, "dataset reload failed", err)
		writeError(w, r, http.StatusInternalServerError, codeInternalError, "dataset reload failed")
		return
	}

	logging.Info(logger, "dataset reload complete",
		slog.String(logging.FieldLoadID, snap.LoadID()),
		slog.Int(logging.FieldCount, snap.PlayerCount()),
	)
	writeJSON(w, r, http.StatusOK, map[string]any{
		"status":     "reloaded",
		"loadId":     snap.LoadID(),
		"loadedAt":   snap.LoadedAt().UTC().Format(time.RFC3339),
		"players":    snap.PlayerCount(),
		"games":      snap.GameCount(),
		"franchises": snap.FranchiseCount(),
	})
}

// authorize accepts requests carrying the configured bearer token. An empty
// configured token rejects everything.
func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	header := r.Header.Get("Authorization")
	presented, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(presented), []byte(h.token)) == 1
}
