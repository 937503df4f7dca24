package api

import (
	"net/http"

	"github.com/okian/courtside/pkg/logger"
)

const sortByName = "name"

// TeamsHandler handles team aggregate requests.
type TeamsHandler struct {
	deps   Dependencies
	logger logger.Logger
}

// NewTeamsHandler creates a new teams handler.
func NewTeamsHandler(deps Dependencies, log logger.Logger) *TeamsHandler {
	return &TeamsHandler{deps: deps, logger: log}
}

// HandleGetTeams handles GET /api/v1/teams[?sort=name] requests. Teams are
// listed in first-appearance order unless sorted by name.
func (h *TeamsHandler) HandleGetTeams(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_teams"
	sorted := false
	switch r.URL.Query().Get("sort") {
	case "":
	case sortByName:
		sorted = true
	default:
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	rows, err := h.deps.Teams(r.Context(), sorted)
	if err != nil {
		writeServiceError(r.Context(), w, h.logger, op, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
