// Package metrics provides Prometheus metrics for the courtside stats service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values for the fold duration histogram.
const (
	TableTeams   = "teams"
	TablePlayers = "players"
)

// Manager owns the service's Prometheus collectors.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	customLabels     map[string]string
	registry         prometheus.Registerer

	// Load metrics
	gamesLoaded   prometheus.Counter
	loadErrors    *prometheus.CounterVec
	eventsLoaded  prometheus.Gauge
	teamsLoaded   prometheus.Gauge
	playersLoaded prometheus.Gauge
	foldDuration  *prometheus.HistogramVec

	// Substitution metrics
	substitutionsPaired  prometheus.Gauge
	substitutionsDropped prometheus.Counter
	impactDuration       prometheus.Histogram
	impactCacheHits      prometheus.Counter
	impactCacheMisses    prometheus.Counter

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec

	// System metrics
	memoryUsage    prometheus.Gauge
	goroutineCount prometheus.Gauge
	gcPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton used by the package-level helpers

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // registry served on /metrics

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "courtside",
		subsystem:        "stats",
		histogramBuckets: prometheus.DefBuckets,
		customLabels:     make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.customLabels,
	}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.customLabels,
	}
}

func (m *Manager) histogramOpts(name, help string) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		Buckets:     m.histogramBuckets,
		ConstLabels: m.customLabels,
	}
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.gamesLoaded = auto.NewCounter(m.counterOpts("games_loaded_total", "Total number of games loaded"))
	m.loadErrors = auto.NewCounterVec(m.counterOpts("load_errors_total", "Total number of failed game loads by stage"), []string{"stage"})
	m.eventsLoaded = auto.NewGauge(m.gaugeOpts("events", "Number of events in the loaded game"))
	m.teamsLoaded = auto.NewGauge(m.gaugeOpts("teams", "Number of teams in the loaded game"))
	m.playersLoaded = auto.NewGauge(m.gaugeOpts("players", "Number of players in the loaded game"))
	m.foldDuration = auto.NewHistogramVec(m.histogramOpts("fold_duration_milliseconds", "Team and player fold duration in milliseconds"), []string{"table"})

	m.substitutionsPaired = auto.NewGauge(m.gaugeOpts("substitutions_paired", "Number of substitutions reconstructed for the loaded game"))
	m.substitutionsDropped = auto.NewCounter(m.counterOpts("substitution_halves_dropped_total", "Incoming substitution halves without an outgoing partner"))
	m.impactDuration = auto.NewHistogram(m.histogramOpts("impact_duration_milliseconds", "Substitution impact analysis duration in milliseconds"))
	m.impactCacheHits = auto.NewCounter(m.counterOpts("impact_cache_hits_total", "Impact requests served from the per-filter cache"))
	m.impactCacheMisses = auto.NewCounter(m.counterOpts("impact_cache_misses_total", "Impact requests that ran an analysis"))

	m.httpRequests = auto.NewCounterVec(m.counterOpts("http_requests_total", "Total number of HTTP requests by endpoint and method"), []string{"endpoint", "method", "status_code"})
	m.httpRequestDuration = auto.NewHistogramVec(m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds"), []string{"endpoint", "method", "status_code"})
	m.errorsByEndpoint = auto.NewCounterVec(m.counterOpts("errors_by_endpoint_total", "Total number of errors by endpoint"), []string{"endpoint", "method", "error_type"})

	m.memoryUsage = auto.NewGauge(m.gaugeOpts("system_memory_bytes", "Heap bytes allocated by the process"))
	m.goroutineCount = auto.NewGauge(m.gaugeOpts("system_goroutines", "Number of running goroutines"))
	m.gcPauseTime = auto.NewHistogram(m.histogramOpts("system_gc_pause_milliseconds", "Average GC pause in milliseconds"))
}

// RecordGameLoaded records a successful load and its table sizes.
func (m *Manager) RecordGameLoaded(events, teams, players, substitutions int) {
	m.gamesLoaded.Inc()
	m.eventsLoaded.Set(float64(events))
	m.teamsLoaded.Set(float64(teams))
	m.playersLoaded.Set(float64(players))
	m.substitutionsPaired.Set(float64(substitutions))
}

// RecordLoadError counts a failed load at stage.
func (m *Manager) RecordLoadError(stage string) { m.loadErrors.WithLabelValues(stage).Inc() }

// RecordFoldDuration observes a fold of table in milliseconds.
func (m *Manager) RecordFoldDuration(table string, ms float64) {
	m.foldDuration.WithLabelValues(table).Observe(ms)
}

// RecordSubstitutionsDropped adds unmatched incoming halves.
func (m *Manager) RecordSubstitutionsDropped(n int) { m.substitutionsDropped.Add(float64(n)) }

// RecordImpactDuration observes an impact analysis in milliseconds.
func (m *Manager) RecordImpactDuration(ms float64) { m.impactDuration.Observe(ms) }

// RecordImpactCache counts an impact lookup as a hit or a miss.
func (m *Manager) RecordImpactCache(hit bool) {
	if hit {
		m.impactCacheHits.Inc()
		return
	}
	m.impactCacheMisses.Inc()
}

// RecordHTTPRequest records an HTTP request and its duration in milliseconds.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string, ms float64) {
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(ms)
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func (m *Manager) RecordErrorByEndpoint(endpoint, method, errorType string) {
	m.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the allocated heap size.
func (m *Manager) UpdateSystemMemoryUsage(bytes uint64) { m.memoryUsage.Set(float64(bytes)) }

// UpdateSystemGoroutineCount sets the goroutine count.
func (m *Manager) UpdateSystemGoroutineCount(n int) { m.goroutineCount.Set(float64(n)) }

// RecordSystemGCPauseTime observes the average GC pause.
func (m *Manager) RecordSystemGCPauseTime(ms float64) { m.gcPauseTime.Observe(ms) }

// Package-level helpers record on the global manager.

// RecordGameLoaded records a successful load and its table sizes.
func RecordGameLoaded(events, teams, players, substitutions int) {
	globalManager.RecordGameLoaded(events, teams, players, substitutions)
}

// RecordLoadError counts a failed load at stage.
func RecordLoadError(stage string) { globalManager.RecordLoadError(stage) }

// RecordFoldDuration observes a fold of table in milliseconds.
func RecordFoldDuration(table string, ms float64) { globalManager.RecordFoldDuration(table, ms) }

// RecordSubstitutionsDropped adds unmatched incoming halves.
func RecordSubstitutionsDropped(n int) { globalManager.RecordSubstitutionsDropped(n) }

// RecordImpactDuration observes an impact analysis in milliseconds.
func RecordImpactDuration(ms float64) { globalManager.RecordImpactDuration(ms) }

// RecordImpactCache counts an impact lookup as a hit or a miss.
func RecordImpactCache(hit bool) { globalManager.RecordImpactCache(hit) }

// RecordHTTPRequest records an HTTP request and its duration in milliseconds.
func RecordHTTPRequest(endpoint, method, statusCode string, ms float64) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode, ms)
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.RecordErrorByEndpoint(endpoint, method, errorType)
}

// UpdateSystemMemoryUsage sets the allocated heap size.
func UpdateSystemMemoryUsage(bytes uint64) { globalManager.UpdateSystemMemoryUsage(bytes) }

// UpdateSystemGoroutineCount sets the goroutine count.
func UpdateSystemGoroutineCount(n int) { globalManager.UpdateSystemGoroutineCount(n) }

// RecordSystemGCPauseTime observes the average GC pause.
func RecordSystemGCPauseTime(ms float64) { globalManager.RecordSystemGCPauseTime(ms) }

// Init rebuilds the package-level manager from opts on a fresh registry, which
// GetRegistry then returns. It is not safe to call while metrics are being
// recorded; call it once at startup.
func Init(opts ...Option) {
	registry := prometheus.NewRegistry()
	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, WithPrometheusRegistry(registry))
	globalManager = NewManager(all...)
	customRegistry = registry
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
