package api

import (
	"net/http"
	"strings"

	"github.com/okian/courtside/pkg/logger"
)

// GameHandler handles shot chart and play-by-play requests.
type GameHandler struct {
	deps   Dependencies
	logger logger.Logger
}

// NewGameHandler creates a new game handler.
func NewGameHandler(deps Dependencies, log logger.Logger) *GameHandler {
	return &GameHandler{deps: deps, logger: log}
}

// HandleGetShots handles GET /api/v1/shots[?team=] requests.
func (h *GameHandler) HandleGetShots(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_shots"
	report, err := h.deps.Shots(r.Context(), strings.TrimSpace(r.URL.Query().Get("team")))
	if err != nil {
		writeServiceError(r.Context(), w, h.logger, op, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// HandleGetFeed handles GET /api/v1/feed requests.
func (h *GameHandler) HandleGetFeed(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_feed"
	rows, err := h.deps.Feed(r.Context())
	if err != nil {
		writeServiceError(r.Context(), w, h.logger, op, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
