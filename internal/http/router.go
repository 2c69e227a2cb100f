package http

import (
	"net/http"

	"github.com/Abhilekh0724/hoops-stats-service/internal/http/handlers"
)

// NewRouter wires the public API routes onto a ServeMux. Admin routes are
// mounted separately so deployments without an admin token never expose them.
func NewRouter(h *handlers.Handler, admin *handlers.AdminHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/ready", h.Ready)
	mux.HandleFunc("/api/players", h.Players)
	mux.HandleFunc("/api/players/search", h.SearchPlayers)
	mux.HandleFunc("/api/player/", h.PlayerProfile)
	mux.HandleFunc("/api/teams", h.Teams)
	mux.HandleFunc("/api/team/", h.TeamSummary)

	if admin != nil {
		mux.HandleFunc("/admin/datasets/reload", admin.Reload)
	}

	return mux
}
