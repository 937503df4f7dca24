package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/okian/courtside/internal/adapters/source"
	service "github.com/okian/courtside/internal/app"
	"github.com/okian/courtside/internal/config"
	"github.com/okian/courtside/internal/gamegen"
	"github.com/okian/courtside/pkg/logger"
	"github.com/okian/courtside/pkg/metrics"
	"github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(logger.WithWriter(&bytes.Buffer{})); err != nil {
		panic(err)
	}
}

func TestMainApplicationIntegration(t *testing.T) {
	convey.Convey("Given a generated game on disk and env configuration", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "game.json")
		_, err := gamegen.Run(context.Background(), gamegen.Config{Seed: 5, Actions: 300, OutputFile: path})
		convey.So(err, convey.ShouldBeNil)

		_ = os.Setenv("COURTSIDE_ADDR", ":0")
		_ = os.Setenv("COURTSIDE_DATA_PATH", path)
		_ = os.Setenv("COURTSIDE_FOLD_PARTITIONS", "4")
		_ = os.Setenv("COURTSIDE_PARALLEL_THRESHOLD", "50")
		defer func() {
			_ = os.Unsetenv("COURTSIDE_ADDR")
			_ = os.Unsetenv("COURTSIDE_DATA_PATH")
			_ = os.Unsetenv("COURTSIDE_FOLD_PARTITIONS")
			_ = os.Unsetenv("COURTSIDE_PARALLEL_THRESHOLD")
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		cfg, err := config.Load(ctx)
		convey.So(err, convey.ShouldBeNil)

		svc := service.New(
			service.WithFoldPartitions(cfg.FoldPartitions),
			service.WithParallelThreshold(cfg.ParallelThreshold),
		)
		convey.So(svc.Load(ctx, source.File{Path: cfg.DataPath}), convey.ShouldBeNil)

		convey.Convey("When the HTTP server is built", func() {
			srv := newHTTPServer(cfg, svc, logger.Get())

			convey.Convey("Then it carries the configured address and timeouts", func() {
				convey.So(srv.Addr, convey.ShouldEqual, ":0")
				convey.So(srv.ReadTimeout, convey.ShouldEqual, readTimeout)
				convey.So(srv.ReadHeaderTimeout, convey.ShouldEqual, readHeaderTimeout)
			})

			convey.Convey("Then its handler serves the loaded game", func() {
				w := httptest.NewRecorder()
				srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/teams", nil))
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Body.String(), convey.ShouldContainSubstring, "LAL")

				w = httptest.NewRecorder()
				srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stats", nil))
				convey.So(w.Body.String(), convey.ShouldContainSubstring, gamegen.GameID(5))

				w = httptest.NewRecorder()
				srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			})
		})
	})

	convey.Convey("Given a missing data file", t, func() {
		svc := service.New()

		convey.Convey("Then the load fails with a read error", func() {
			err := svc.Load(context.Background(), source.File{Path: filepath.Join(t.TempDir(), "absent.json")})
			convey.So(errors.Is(err, source.ErrReadSource), convey.ShouldBeTrue)
			convey.So(svc.Stats().Loaded, convey.ShouldBeFalse)
		})
	})
}

func TestMainApplicationComponents(t *testing.T) {
	convey.Convey("Given main application components", t, func() {
		convey.Convey("When testing system metrics updater", func() {
			convey.Convey("Then it returns once the context is done", func() {
				ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
				defer cancel()

				convey.So(func() {
					startSystemMetricsUpdater(ctx)
				}, convey.ShouldNotPanic)
			})
		})

		convey.Convey("When metrics settings are configured", func() {
			cfg := config.New(context.Background())
			cfg.MetricsNamespace = "arena"
			cfg.MetricsLabels = map[string]string{"env": "staging"}
			metrics.Init(metricsOptions(cfg)...)
			defer metrics.Init()
			metrics.RecordGameLoaded(1, 1, 1, 0)

			convey.Convey("Then the served registry uses them", func() {
				families, err := metrics.GetRegistry().Gather()
				convey.So(err, convey.ShouldBeNil)
				names := make([]string, 0, len(families))
				for _, f := range families {
					names = append(names, f.GetName())
				}
				convey.So(names, convey.ShouldContain, "arena_stats_games_loaded_total")
			})
		})

		convey.Convey("When testing system metrics update", func() {
			convey.Convey("Then it should update metrics without panicking", func() {
				convey.So(func() {
					updateSystemMetrics()
				}, convey.ShouldNotPanic)
			})
		})
	})
}

func TestMainApplicationErrorHandling(t *testing.T) {
	convey.Convey("Given an empty data path", t, func() {
		_ = os.Setenv("COURTSIDE_DATA_PATH", "")
		defer func() { _ = os.Unsetenv("COURTSIDE_DATA_PATH") }()

		convey.Convey("Then configuration loading should fail", func() {
			cfg, err := config.Load(context.Background())
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(cfg, convey.ShouldBeNil)
		})
	})
}
