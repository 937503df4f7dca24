// Package api serves the read-only JSON views over a loaded game.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	service "github.com/okian/courtside/internal/app"
	"github.com/okian/courtside/internal/domain/aggregate"
	"github.com/okian/courtside/internal/domain/feed"
	"github.com/okian/courtside/internal/domain/substitution"
	"github.com/okian/courtside/pkg/logger"
	"github.com/okian/courtside/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Dependencies required by HTTP handlers. *service.Service satisfies it.
type Dependencies interface {
	Teams(ctx context.Context, sorted bool) ([]aggregate.TeamStats, error)
	Players(ctx context.Context) ([]aggregate.PlayerStats, error)
	PlayerNames(ctx context.Context) ([]string, error)
	Player(ctx context.Context, name string) (aggregate.PlayerStats, error)
	Compare(ctx context.Context, player1, player2 string) (aggregate.Comparison, error)
	Substitutions(ctx context.Context) ([]substitution.Substitution, error)
	Impact(ctx context.Context, team string) (service.ImpactReport, error)
	Shots(ctx context.Context, team string) (service.ShotReport, error)
	Feed(ctx context.Context) ([]feed.Row, error)
}

// Server wires HTTP routes for the stats API.
type Server struct {
	healthHandler *HealthHandler
	statsHandler  *StatsHandler
	teamsHandler  *TeamsHandler
	playerHandler *PlayersHandler
	subsHandler   *SubstitutionsHandler
	gameHandler   *GameHandler

	corsOrigins []string
	logger      logger.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithCORSOrigins sets the origins allowed by CORS. Empty allows every origin.
func WithCORSOrigins(origins []string) Option {
	return func(s *Server) {
		s.corsOrigins = origins
	}
}

// WithLogger sets the logger used for failed requests.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...Option) *Server {
	s := &Server{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Named("api")
	}
	s.healthHandler = NewHealthHandler(statsProvider)
	s.statsHandler = NewStatsHandler(statsProvider)
	s.teamsHandler = NewTeamsHandler(deps, s.logger)
	s.playerHandler = NewPlayersHandler(deps, s.logger)
	s.subsHandler = NewSubstitutionsHandler(deps, s.logger)
	s.gameHandler = NewGameHandler(deps, s.logger)
	return s
}

// Register attaches all routes to router.
func (s *Server) Register(router *mux.Router) {
	router.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz")).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{})).Methods(http.MethodGet)
	router.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats")).Methods(http.MethodGet)

	v1 := router.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/teams", MetricsMiddleware(s.teamsHandler.HandleGetTeams, "teams")).Methods(http.MethodGet)
	v1.HandleFunc("/players", MetricsMiddleware(s.playerHandler.HandleGetPlayers, "players")).Methods(http.MethodGet)
	v1.HandleFunc("/players/{name}", MetricsMiddleware(s.playerHandler.HandleGetPlayer, "player")).Methods(http.MethodGet)
	v1.HandleFunc("/compare", MetricsMiddleware(s.playerHandler.HandleCompare, "compare")).Methods(http.MethodGet)
	v1.HandleFunc("/substitutions", MetricsMiddleware(s.subsHandler.HandleGetSubstitutions, "substitutions")).Methods(http.MethodGet)
	v1.HandleFunc("/impact", MetricsMiddleware(s.subsHandler.HandleGetImpact, "impact")).Methods(http.MethodGet)
	v1.HandleFunc("/shots", MetricsMiddleware(s.gameHandler.HandleGetShots, "shots")).Methods(http.MethodGet)
	v1.HandleFunc("/feed", MetricsMiddleware(s.gameHandler.HandleGetFeed, "feed")).Methods(http.MethodGet)
}

// Handler returns the full route tree behind CORS and panic recovery. extra
// registers additional routes, such as the docs, on the same router.
func (s *Server) Handler(extra ...func(*mux.Router)) http.Handler {
	router := mux.NewRouter()
	router.Use(RecoveryMiddleware(s.logger))
	router.NotFoundHandler = http.HandlerFunc(handleNotFound)
	s.Register(router)
	for _, register := range extra {
		register(router)
	}

	origins := s.corsOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(router)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

func handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "not_found", WrapKind("api.route", ErrNotFound, errors.New(r.URL.Path)))
}

// writeServiceError translates service errors into HTTP responses.
func writeServiceError(ctx context.Context, w http.ResponseWriter, log logger.Logger, op string, err error) {
	switch {
	case errors.Is(err, service.ErrNotLoaded):
		writeError(w, http.StatusServiceUnavailable, "not_loaded", Wrap(op, err))
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", Wrap(op, err))
	default:
		log.Error(ctx, "request failed", logger.String("op", op), logger.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}
