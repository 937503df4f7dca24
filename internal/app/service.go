// Package service loads a game once and serves the aggregate views the HTTP
// API exposes.
package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/okian/courtside/internal/adapters/source"
	"github.com/okian/courtside/internal/domain/aggregate"
	"github.com/okian/courtside/internal/domain/feed"
	"github.com/okian/courtside/internal/domain/model"
	"github.com/okian/courtside/internal/domain/shotchart"
	"github.com/okian/courtside/internal/domain/substitution"
	"github.com/okian/courtside/pkg/logger"
	"github.com/okian/courtside/pkg/metrics"
)

// Sentinel error kinds for this package.
var (
	ErrNotLoaded = errors.New("no game loaded")
	ErrNotFound  = errors.New("not found")
)

// Load stage labels for metrics.
const (
	stageRead   = "read"
	stageDecode = "decode"
	stageFold   = "fold"
)

// ImpactReport is the substitution impact view for one team filter.
type ImpactReport struct {
	Team    string                      `json:"team"`
	Teams   []string                    `json:"teams"`
	Players []substitution.PlayerImpact `json:"players"`
	Summary substitution.Summary        `json:"summary"`
}

// ShotReport is the shot chart view for one team filter.
type ShotReport struct {
	Team  string           `json:"team"`
	Teams []string         `json:"teams"`
	Shots []shotchart.Shot `json:"shots"`
}

// Stats describes the loaded game for monitoring.
type Stats struct {
	Loaded        bool      `json:"loaded"`
	GameID        string    `json:"game_id,omitempty"`
	Events        int       `json:"events"`
	Teams         int       `json:"teams"`
	Players       int       `json:"players"`
	Substitutions int       `json:"substitutions"`
	DroppedHalves int       `json:"dropped_halves"`
	PendingHalves int       `json:"pending_halves"`
	CachedFilters int       `json:"cached_filters"`
	LoadedAt      time.Time `json:"loaded_at"`
	Partitions    int       `json:"fold_partitions"`
}

// snapshot is everything derived from one load. It is replaced, never
// mutated, except for the impact cache.
type snapshot struct {
	game     model.Game
	teams    aggregate.TeamTable
	players  aggregate.PlayerTable
	subs     []substitution.Substitution
	subTeams []string
	dropped  int
	pending  int
	loadedAt time.Time

	cacheMu sync.Mutex
	impacts map[string]ImpactReport
}

// Service holds the current game snapshot.
type Service struct {
	mu   sync.RWMutex
	snap *snapshot

	partitions int
	threshold  int
	folder     *aggregate.Folder
	logger     logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithFoldPartitions sets how many goroutines share a large fold.
func WithFoldPartitions(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.partitions = n
		}
	}
}

// WithParallelThreshold sets the event count at which folds partition.
func WithParallelThreshold(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.threshold = n
		}
	}
}

// New constructs a Service with no game loaded.
func New(opts ...Option) *Service {
	s := &Service{
		partitions: 1,
		threshold:  5000,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	s.folder = aggregate.NewFolder(
		aggregate.WithPartitions(s.partitions),
		aggregate.WithParallelThreshold(s.threshold),
	)
	return s
}

// Load reads a game from src and replaces the current snapshot. On error the
// previous snapshot is kept.
func (s *Service) Load(ctx context.Context, src source.Source) error {
	start := time.Now()
	game, err := src.Game(ctx)
	if err != nil {
		stage := stageRead
		if errors.Is(err, source.ErrDecode) {
			stage = stageDecode
		}
		metrics.RecordLoadError(stage)
		s.logger.Error(ctx, "game load failed", logger.String("stage", stage), logger.Error(err))
		return fmt.Errorf("load game: %w", err)
	}

	snap, err := s.build(ctx, game)
	if err != nil {
		metrics.RecordLoadError(stageFold)
		s.logger.Error(ctx, "game fold failed", logger.Error(err))
		return fmt.Errorf("load game: %w", err)
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	metrics.RecordGameLoaded(len(game.Events), snap.teams.Len(), snap.players.Len(), len(snap.subs))
	metrics.RecordSubstitutionsDropped(snap.dropped)
	s.logger.Info(ctx, "game loaded",
		logger.String("gameId", game.GameID),
		logger.Int("events", len(game.Events)),
		logger.Int("teams", snap.teams.Len()),
		logger.Int("players", snap.players.Len()),
		logger.Int("substitutions", len(snap.subs)),
		logger.Int("droppedHalves", snap.dropped),
		logger.Duration("took", time.Since(start)),
	)
	return nil
}

func (s *Service) build(ctx context.Context, game model.Game) (*snapshot, error) {
	t0 := time.Now()
	teams, err := s.folder.Teams(ctx, game.Events)
	if err != nil {
		return nil, err
	}
	metrics.RecordFoldDuration(metrics.TableTeams, sinceMs(t0))

	t1 := time.Now()
	players, err := s.folder.Players(ctx, game.Events)
	if err != nil {
		return nil, err
	}
	metrics.RecordFoldDuration(metrics.TablePlayers, sinceMs(t1))

	// Pairing depends on input order and stays sequential.
	p := substitution.NewPairer()
	for _, e := range game.Events {
		p.Observe(e)
	}
	subs := p.Result()

	return &snapshot{
		game:     game,
		teams:    teams,
		players:  players,
		subs:     subs,
		subTeams: substitution.Teams(subs),
		dropped:  p.Dropped(),
		pending:  p.Pending(),
		loadedAt: time.Now().UTC(),
		impacts:  make(map[string]ImpactReport),
	}, nil
}

func (s *Service) current() (*snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return nil, ErrNotLoaded
	}
	return s.snap, nil
}

// Teams returns team rows in first-appearance order, or by code when sorted.
func (s *Service) Teams(_ context.Context, sorted bool) ([]aggregate.TeamStats, error) {
	snap, err := s.current()
	if err != nil {
		return nil, err
	}
	if sorted {
		return snap.teams.SortedRows(), nil
	}
	return snap.teams.Rows(), nil
}

// Players returns every player row ordered by name.
func (s *Service) Players(_ context.Context) ([]aggregate.PlayerStats, error) {
	snap, err := s.current()
	if err != nil {
		return nil, err
	}
	return snap.players.Rows(), nil
}

// PlayerNames returns the sorted list of known players.
func (s *Service) PlayerNames(_ context.Context) ([]string, error) {
	snap, err := s.current()
	if err != nil {
		return nil, err
	}
	return snap.players.Names(), nil
}

// Player returns one player's line.
func (s *Service) Player(_ context.Context, name string) (aggregate.PlayerStats, error) {
	snap, err := s.current()
	if err != nil {
		return aggregate.PlayerStats{}, err
	}
	p, ok := snap.players.Lookup(name)
	if !ok {
		return aggregate.PlayerStats{}, fmt.Errorf("player %q: %w", name, ErrNotFound)
	}
	return p, nil
}

// Compare returns two players side by side.
func (s *Service) Compare(_ context.Context, player1, player2 string) (aggregate.Comparison, error) {
	snap, err := s.current()
	if err != nil {
		return aggregate.Comparison{}, err
	}
	c, ok := snap.players.Compare(player1, player2)
	if !ok {
		return aggregate.Comparison{}, fmt.Errorf("compare %q and %q: %w", player1, player2, ErrNotFound)
	}
	return c, nil
}

// Substitutions returns the reconstructed substitutions in time order.
func (s *Service) Substitutions(_ context.Context) ([]substitution.Substitution, error) {
	snap, err := s.current()
	if err != nil {
		return nil, err
	}
	return append([]substitution.Substitution{}, snap.subs...), nil
}

// Impact returns the substitution impact view for team, "" or "all" for
// every team. Results are cached per filter for the life of the snapshot.
func (s *Service) Impact(ctx context.Context, team string) (ImpactReport, error) {
	snap, err := s.current()
	if err != nil {
		return ImpactReport{}, err
	}
	if team == "" {
		team = substitution.AllTeams
	}

	snap.cacheMu.Lock()
	defer snap.cacheMu.Unlock()
	if r, ok := snap.impacts[team]; ok {
		metrics.RecordImpactCache(true)
		return r, nil
	}
	metrics.RecordImpactCache(false)

	start := time.Now()
	players := substitution.Analyze(snap.game.Events, snap.subs, team)
	r := ImpactReport{
		Team:    team,
		Teams:   snap.subTeams,
		Players: players,
		Summary: substitution.Summarize(snap.subs, players),
	}
	metrics.RecordImpactDuration(sinceMs(start))
	s.logger.Debug(ctx, "impact analyzed",
		logger.String("team", team),
		logger.Int("players", len(players)),
		logger.Duration("took", time.Since(start)),
	)
	// Filters naming no substituting team are not memoized.
	if team == substitution.AllTeams || slices.Contains(snap.subTeams, team) {
		snap.impacts[team] = r
	}
	return r, nil
}

// Shots returns the located field goal attempts for team.
func (s *Service) Shots(_ context.Context, team string) (ShotReport, error) {
	snap, err := s.current()
	if err != nil {
		return ShotReport{}, err
	}
	if team == "" {
		team = shotchart.AllTeams
	}
	return ShotReport{
		Team:  team,
		Teams: shotchart.Teams(snap.game.Events),
		Shots: shotchart.Shots(snap.game.Events, team),
	}, nil
}

// Feed returns the play-by-play rows in sequence order.
func (s *Service) Feed(_ context.Context) ([]feed.Row, error) {
	snap, err := s.current()
	if err != nil {
		return nil, err
	}
	return feed.Rows(snap.game.Events), nil
}

// Stats returns service statistics for monitoring.
func (s *Service) Stats() Stats {
	snap, err := s.current()
	if err != nil {
		return Stats{Partitions: s.partitions}
	}
	snap.cacheMu.Lock()
	cached := len(snap.impacts)
	snap.cacheMu.Unlock()
	return Stats{
		Loaded:        true,
		GameID:        snap.game.GameID,
		Events:        len(snap.game.Events),
		Teams:         snap.teams.Len(),
		Players:       snap.players.Len(),
		Substitutions: len(snap.subs),
		DroppedHalves: snap.dropped,
		PendingHalves: snap.pending,
		CachedFilters: cached,
		LoadedAt:      snap.loadedAt,
		Partitions:    s.partitions,
	}
}

func sinceMs(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000
}
