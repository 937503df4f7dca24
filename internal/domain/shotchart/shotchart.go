// Package shotchart projects field goal attempts onto court coordinates.
package shotchart

import (
	"github.com/okian/courtside/internal/domain/classify"
	"github.com/okian/courtside/internal/domain/model"
)

// Court geometry in display units. Vendor coordinates range over 0-100 on
// both axes.
const (
	CourtWidth  = 380.0
	CourtHeight = 180.0
	CourtOffset = 10.0
	vendorScale = 100.0
)

// AllTeams is the filter value that selects every team.
const AllTeams = "all"

// Shot is one located field goal attempt.
type Shot struct {
	Sequence int64   `json:"sequence"`
	Team     string  `json:"team"`
	Player   string  `json:"player"`
	Made     bool    `json:"made"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	CourtX   float64 `json:"court_x"`
	CourtY   float64 `json:"court_y"`
}

// Project maps vendor coordinates onto the court.
func Project(x, y float64) (float64, float64) {
	return CourtOffset + x/vendorScale*CourtWidth, CourtOffset + y/vendorScale*CourtHeight
}

// Shots returns field goal attempts carrying both coordinates, in input
// order, limited to team unless team is "" or AllTeams.
func Shots(events []model.Event, team string) []Shot {
	shots := []Shot{}
	for _, e := range events {
		if !classify.IsFieldGoalAttempt(e) || e.X == nil || e.Y == nil {
			continue
		}
		if team != "" && team != AllTeams && e.TeamTricode != team {
			continue
		}
		cx, cy := Project(*e.X, *e.Y)
		shots = append(shots, Shot{
			Sequence: e.Sequence,
			Team:     e.TeamTricode,
			Player:   e.PlayerName,
			Made:     classify.IsMade(e),
			X:        *e.X,
			Y:        *e.Y,
			CourtX:   cx,
			CourtY:   cy,
		})
	}
	return shots
}

// Teams returns distinct non-empty team codes in first-appearance order.
func Teams(events []model.Event) []string {
	seen := make(map[string]struct{}, 2)
	teams := []string{}
	for _, e := range events {
		if e.TeamTricode == "" {
			continue
		}
		if _, ok := seen[e.TeamTricode]; ok {
			continue
		}
		seen[e.TeamTricode] = struct{}{}
		teams = append(teams, e.TeamTricode)
	}
	return teams
}
