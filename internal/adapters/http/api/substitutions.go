package api

import (
	"net/http"
	"strings"

	"github.com/okian/courtside/pkg/logger"
)

// SubstitutionsHandler handles substitution and impact requests.
type SubstitutionsHandler struct {
	deps   Dependencies
	logger logger.Logger
}

// NewSubstitutionsHandler creates a new substitutions handler.
func NewSubstitutionsHandler(deps Dependencies, log logger.Logger) *SubstitutionsHandler {
	return &SubstitutionsHandler{deps: deps, logger: log}
}

// HandleGetSubstitutions handles GET /api/v1/substitutions requests.
func (h *SubstitutionsHandler) HandleGetSubstitutions(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_substitutions"
	subs, err := h.deps.Substitutions(r.Context())
	if err != nil {
		writeServiceError(r.Context(), w, h.logger, op, err)
		return
	}
	writeJSON(w, http.StatusOK, subs)
}

// HandleGetImpact handles GET /api/v1/impact[?team=] requests.
func (h *SubstitutionsHandler) HandleGetImpact(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_impact"
	report, err := h.deps.Impact(r.Context(), strings.TrimSpace(r.URL.Query().Get("team")))
	if err != nil {
		writeServiceError(r.Context(), w, h.logger, op, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
