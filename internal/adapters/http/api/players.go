package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/okian/courtside/internal/domain/aggregate"
	"github.com/okian/courtside/pkg/logger"
)

// PlayersHandler handles player aggregate and comparison requests.
type PlayersHandler struct {
	deps   Dependencies
	logger logger.Logger
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(deps Dependencies, log logger.Logger) *PlayersHandler {
	return &PlayersHandler{deps: deps, logger: log}
}

type playersResponse struct {
	Names   []string                `json:"names"`
	Players []aggregate.PlayerStats `json:"players"`
}

// HandleGetPlayers handles GET /api/v1/players requests.
func (h *PlayersHandler) HandleGetPlayers(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_players"
	names, err := h.deps.PlayerNames(r.Context())
	if err != nil {
		writeServiceError(r.Context(), w, h.logger, op, err)
		return
	}
	players, err := h.deps.Players(r.Context())
	if err != nil {
		writeServiceError(r.Context(), w, h.logger, op, err)
		return
	}
	writeJSON(w, http.StatusOK, playersResponse{Names: names, Players: players})
}

// HandleGetPlayer handles GET /api/v1/players/{name} requests.
func (h *PlayersHandler) HandleGetPlayer(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_player"
	name := strings.TrimSpace(mux.Vars(r)["name"])
	if name == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	p, err := h.deps.Player(r.Context(), name)
	if err != nil {
		writeServiceError(r.Context(), w, h.logger, op, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// HandleCompare handles GET /api/v1/compare?player1=&player2= requests.
func (h *PlayersHandler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	const op = "api.compare"
	q := r.URL.Query()
	p1, p2 := strings.TrimSpace(q.Get("player1")), strings.TrimSpace(q.Get("player2"))
	switch {
	case p1 == "":
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, errors.New("missing player1")))
		return
	case p2 == "":
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, errors.New("missing player2")))
		return
	}
	c, err := h.deps.Compare(r.Context(), p1, p2)
	if err != nil {
		writeServiceError(r.Context(), w, h.logger, op, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}
