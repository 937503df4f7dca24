// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - New(ctx) builds a Config populated with defaults.
// - Load(ctx) layers an optional YAML file and COURTSIDE_ env vars on top.
// - External errors are wrapped with this package's sentinel errors.
package config

import (
	"context"
	"runtime"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataPath names the play-by-play JSON document served by the API.
	DataPath string `koanf:"data_path"`

	// FoldPartitions sets how many goroutines share a large team/player fold.
	FoldPartitions int `koanf:"fold_partitions"`

	// ParallelThreshold is the event count at which folds start partitioning.
	ParallelThreshold int `koanf:"parallel_threshold"`

	// CORSOrigins lists browser origins allowed to call the API.
	CORSOrigins []string `koanf:"cors_origins"`

	// MetricsNamespace and MetricsSubsystem prefix every exported metric name.
	MetricsNamespace string `koanf:"metrics_namespace"`
	MetricsSubsystem string `koanf:"metrics_subsystem"`

	// MetricsBuckets overrides the latency histogram buckets, in milliseconds.
	MetricsBuckets []float64 `koanf:"metrics_buckets"`

	// MetricsLabels are constant labels attached to every metric.
	MetricsLabels map[string]string `koanf:"metrics_labels"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention and is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:          "info",
		LogFormat:         "text",
		Addr:              ":9080",
		DataPath:          "data/play-by-play.json",
		FoldPartitions:    runtime.NumCPU(),
		ParallelThreshold: 5000,
		CORSOrigins:       []string{"*"},
		MetricsNamespace:  "courtside",
		MetricsSubsystem:  "stats",
	}
}
