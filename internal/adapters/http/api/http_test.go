package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/okian/courtside/internal/adapters/http/api"
	"github.com/okian/courtside/internal/adapters/source"
	service "github.com/okian/courtside/internal/app"
	"github.com/okian/courtside/internal/domain/aggregate"
	"github.com/okian/courtside/internal/domain/feed"
	"github.com/okian/courtside/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(logger.WithWriter(&bytes.Buffer{})); err != nil {
		panic(err)
	}
}

const game = `{
  "gameId": "0022300099",
  "actions": [
    {"actionNumber": 1, "clock": "PT11M40.00S", "timeActual": "2024-03-01T19:01:00Z", "period": 1, "teamId": 1, "teamTricode": "LAL",
     "actionType": "3pt", "isFieldGoal": 1, "shotResult": "Made", "playerName": "LeBron James", "x": 25, "y": 50,
     "scoreHome": "3", "scoreAway": "0"},
    {"actionNumber": 2, "clock": "PT11M20.00S", "timeActual": "2024-03-01T19:02:00Z", "period": 1, "teamId": 2, "teamTricode": "BOS",
     "actionType": "2pt", "isFieldGoal": 1, "shotResult": "Made", "playerName": "Jayson Tatum", "x": 75, "y": 50,
     "scoreHome": "3", "scoreAway": "2"},
    {"actionNumber": 3, "clock": "PT10M00.00S", "timeActual": "2024-03-01T19:03:00Z", "period": 1, "teamId": 2, "teamTricode": "BOS",
     "actionType": "substitution", "subType": "out", "playerName": "Jayson Tatum", "scoreHome": "3", "scoreAway": "2"},
    {"actionNumber": 4, "clock": "PT10M00.00S", "timeActual": "2024-03-01T19:03:00Z", "period": 1, "teamId": 2, "teamTricode": "BOS",
     "actionType": "substitution", "subType": "in", "playerName": "Al Horford", "scoreHome": "3", "scoreAway": "2"}
  ]
}`

func newHandler(deps api.Dependencies, stats api.StatsProvider) http.Handler {
	return api.NewServer(deps, stats).Handler()
}

func loadedService() *service.Service {
	svc := service.New()
	if err := svc.Load(context.Background(), source.Bytes(game)); err != nil {
		panic(err)
	}
	return svc
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func decode(w *httptest.ResponseRecorder, v any) {
	So(json.Unmarshal(w.Body.Bytes(), v), ShouldBeNil)
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// failingDeps fails every team read and panics on the feed. Other methods
// are left to the embedded nil interface and must not be reached.
type failingDeps struct {
	api.Dependencies
}

func (failingDeps) Teams(context.Context, bool) ([]aggregate.TeamStats, error) {
	return nil, errors.New("disk on fire")
}

func (failingDeps) Feed(context.Context) ([]feed.Row, error) {
	panic("boom")
}

func TestServer_Routes(t *testing.T) {
	Convey("Given a server over a loaded game", t, func() {
		svc := loadedService()
		h := newHandler(svc, svc)

		Convey("Then health reports the game as loaded", func() {
			w := get(h, "/healthz")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Content-Type"), ShouldStartWith, "application/json")
			var body map[string]any
			decode(w, &body)
			So(body["status"], ShouldEqual, "ok")
			So(body["loaded"], ShouldEqual, true)
		})

		Convey("Then stats describe the snapshot", func() {
			w := get(h, "/stats")
			So(w.Code, ShouldEqual, http.StatusOK)
			var stats service.Stats
			decode(w, &stats)
			So(stats.GameID, ShouldEqual, "0022300099")
			So(stats.Events, ShouldEqual, 4)
			So(stats.Substitutions, ShouldEqual, 1)
		})

		Convey("Then metrics are exposed in the text format", func() {
			get(h, "/api/v1/teams")
			w := get(h, "/metrics")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "courtside_")
		})

		Convey("Then teams keep first appearance unless sorted by name", func() {
			var rows []aggregate.TeamStats
			decode(get(h, "/api/v1/teams"), &rows)
			So(len(rows), ShouldEqual, 2)
			So(rows[0].Team, ShouldEqual, "LAL")
			So(rows[0].PTS, ShouldEqual, 3)

			decode(get(h, "/api/v1/teams?sort=name"), &rows)
			So(rows[0].Team, ShouldEqual, "BOS")

			w := get(h, "/api/v1/teams?sort=points")
			So(w.Code, ShouldEqual, http.StatusBadRequest)
			var e errorBody
			decode(w, &e)
			So(e.Code, ShouldEqual, "bad_request")
		})

		Convey("Then players are listed and looked up by name", func() {
			var list struct {
				Names   []string                `json:"names"`
				Players []aggregate.PlayerStats `json:"players"`
			}
			decode(get(h, "/api/v1/players"), &list)
			So(list.Names, ShouldResemble, []string{"Al Horford", "Jayson Tatum", "LeBron James"})
			So(len(list.Players), ShouldEqual, 3)

			w := get(h, "/api/v1/players/LeBron%20James")
			So(w.Code, ShouldEqual, http.StatusOK)
			var p aggregate.PlayerStats
			decode(w, &p)
			So(p.Name, ShouldEqual, "LeBron James")
			So(p.FG3M, ShouldEqual, 1)

			w = get(h, "/api/v1/players/Nobody")
			So(w.Code, ShouldEqual, http.StatusNotFound)
			var e errorBody
			decode(w, &e)
			So(e.Code, ShouldEqual, "not_found")
			So(e.Message, ShouldContainSubstring, "api.get_player")
		})

		Convey("Then two players can be compared", func() {
			w := get(h, "/api/v1/compare?player1=LeBron%20James&player2=Jayson%20Tatum")
			So(w.Code, ShouldEqual, http.StatusOK)
			var c aggregate.Comparison
			decode(w, &c)
			So(c.Player1.PTS, ShouldEqual, 3)
			So(c.Player2.PTS, ShouldEqual, 2)

			So(get(h, "/api/v1/compare?player1=LeBron%20James").Code, ShouldEqual, http.StatusBadRequest)
			So(get(h, "/api/v1/compare?player1=LeBron%20James&player2=Nobody").Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("Then substitutions and impact are served", func() {
			var subs []map[string]any
			decode(get(h, "/api/v1/substitutions"), &subs)
			So(len(subs), ShouldEqual, 1)
			So(subs[0]["player_out"], ShouldEqual, "Jayson Tatum")

			var report service.ImpactReport
			decode(get(h, "/api/v1/impact?team=BOS"), &report)
			So(report.Team, ShouldEqual, "BOS")
			So(report.Teams, ShouldResemble, []string{"BOS"})
			So(len(report.Players), ShouldEqual, 2)
			So(report.Players[0].PlayerName, ShouldEqual, "Jayson Tatum")
			So(report.Players[0].ImpactScore, ShouldEqual, -2.0)

			decode(get(h, "/api/v1/impact"), &report)
			So(report.Team, ShouldEqual, "all")
		})

		Convey("Then shots and the feed are served", func() {
			var shots service.ShotReport
			decode(get(h, "/api/v1/shots?team=BOS"), &shots)
			So(len(shots.Shots), ShouldEqual, 1)
			So(shots.Shots[0].Player, ShouldEqual, "Jayson Tatum")
			So(shots.Teams, ShouldResemble, []string{"LAL", "BOS"})

			var rows []map[string]any
			decode(get(h, "/api/v1/feed"), &rows)
			So(len(rows), ShouldEqual, 4)
			So(rows[0]["clock"], ShouldEqual, "11:40")
			So(rows[1]["score"], ShouldEqual, "3-2")
		})

		Convey("Then unknown routes get a JSON 404", func() {
			w := get(h, "/api/v1/standings")
			So(w.Code, ShouldEqual, http.StatusNotFound)
			var e errorBody
			decode(w, &e)
			So(e.Code, ShouldEqual, "not_found")
		})

		Convey("Then write methods are rejected", func() {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/teams", nil))
			So(w.Code, ShouldEqual, http.StatusMethodNotAllowed)
		})

		Convey("Then browser origins are allowed", func() {
			req := httptest.NewRequest(http.MethodOptions, "/api/v1/teams", nil)
			req.Header.Set("Origin", "http://localhost:5173")
			req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			So(w.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "*")
		})
	})

	Convey("Given a server restricted to one origin", t, func() {
		svc := loadedService()
		h := api.NewServer(svc, svc, api.WithCORSOrigins([]string{"https://stats.example.com"})).Handler()

		Convey("Then only that origin is echoed", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/teams", nil)
			req.Header.Set("Origin", "https://stats.example.com")
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			So(w.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "https://stats.example.com")

			req = httptest.NewRequest(http.MethodGet, "/api/v1/teams", nil)
			req.Header.Set("Origin", "https://elsewhere.example.com")
			w = httptest.NewRecorder()
			h.ServeHTTP(w, req)
			So(w.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "")
		})
	})
}

func TestServer_Failures(t *testing.T) {
	Convey("Given a server with no game loaded", t, func() {
		svc := service.New()
		h := newHandler(svc, svc)

		Convey("Then reads are unavailable but health is ok", func() {
			w := get(h, "/api/v1/teams")
			So(w.Code, ShouldEqual, http.StatusServiceUnavailable)
			var e errorBody
			decode(w, &e)
			So(e.Code, ShouldEqual, "not_loaded")

			w = get(h, "/healthz")
			So(w.Code, ShouldEqual, http.StatusOK)
			var body map[string]any
			decode(w, &body)
			So(body["loaded"], ShouldEqual, false)
		})
	})

	Convey("Given dependencies that fail", t, func() {
		h := newHandler(failingDeps{}, service.New())

		Convey("Then unexpected errors become 500s", func() {
			w := get(h, "/api/v1/teams")
			So(w.Code, ShouldEqual, http.StatusInternalServerError)
			var e errorBody
			decode(w, &e)
			So(e.Code, ShouldEqual, "internal_error")
			So(e.Message, ShouldContainSubstring, "disk on fire")
		})

		Convey("Then a panicking handler is recovered", func() {
			w := get(h, "/api/v1/feed")
			So(w.Code, ShouldEqual, http.StatusInternalServerError)
		})
	})
}
