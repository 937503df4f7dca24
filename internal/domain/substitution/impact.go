package substitution

import (
	"math"
	"sort"
	"time"

	"github.com/okian/courtside/internal/domain/model"
)

// Window is the wall-clock span sampled on each side of a substitution.
const Window = 3 * time.Minute

// AllTeams is the filter value that selects every team.
const AllTeams = "all"

// Action-type tokens matched exactly by the window reducer.
const (
	actionTwo       = "2pt"
	actionThree     = "3pt"
	actionFreeThrow = "freethrow"
	actionRebound   = "rebound"
	madeResult      = "Made"
)

// StatLine is the mini line computed for one window.
type StatLine struct {
	Points   int `json:"points"`
	Rebounds int `json:"rebounds"`
	Assists  int `json:"assists"`
}

// PlayerImpact averages a player's window lines over every substitution they
// took part in. The role a player did not occupy contributes zero, so an
// outgoing-only player always has zero "after" averages.
type PlayerImpact struct {
	PlayerName        string  `json:"player_name"`
	Substitutions     int     `json:"substitutions"`
	AvgPointsBefore   float64 `json:"avg_points_before"`
	AvgPointsAfter    float64 `json:"avg_points_after"`
	AvgReboundsBefore float64 `json:"avg_rebounds_before"`
	AvgReboundsAfter  float64 `json:"avg_rebounds_after"`
	AvgAssistsBefore  float64 `json:"avg_assists_before"`
	AvgAssistsAfter   float64 `json:"avg_assists_after"`
	ImpactScore       float64 `json:"impact_score"`
}

// Summary describes one impact analysis.
type Summary struct {
	TotalSubstitutions int     `json:"total_substitutions"`
	PlayersAnalyzed    int     `json:"players_analyzed"`
	AvgImpactScore     float64 `json:"avg_impact_score"`
}

// Reduce computes the mini line of events: 2/3/1 points for made two, three
// and free-throw actions, one rebound per rebound action of any sub-type, one
// assist per event carrying a non-zero assist id whatever the shot outcome.
func Reduce(events []model.Event) StatLine {
	var s StatLine
	for _, e := range events {
		s = reduceOne(s, e)
	}
	return s
}

func reduceOne(s StatLine, e model.Event) StatLine {
	if e.ShotResult == madeResult {
		switch e.ActionType {
		case actionTwo:
			s.Points += 2
		case actionThree:
			s.Points += 3
		case actionFreeThrow:
			s.Points++
		}
	}
	if e.ActionType == actionRebound {
		s.Rebounds++
	}
	if e.AssistPersonID != 0 {
		s.Assists++
	}
	return s
}

// Before returns the events of player in [at-Window, at).
func Before(events []model.Event, player string, at time.Time) []model.Event {
	from := at.Add(-Window)
	return selectEvents(events, player, func(t time.Time) bool {
		return !t.Before(from) && t.Before(at)
	})
}

// After returns the events of player in (at, at+Window].
func After(events []model.Event, player string, at time.Time) []model.Event {
	until := at.Add(Window)
	return selectEvents(events, player, func(t time.Time) bool {
		return t.After(at) && !t.After(until)
	})
}

func selectEvents(events []model.Event, player string, in func(time.Time) bool) []model.Event {
	var out []model.Event
	for _, e := range events {
		if e.PlayerName != player || !e.HasTime {
			continue
		}
		if in(e.Time) {
			out = append(out, e)
		}
	}
	return out
}

// Analyze computes per-player impact across subs, keeping only substitutions
// of team unless team is "" or AllTeams. Substitutions with an unparsable
// timestamp still count but sample empty windows. The result is sorted by
// descending absolute impact score; players without a qualifying
// substitution are absent.
func Analyze(events []model.Event, subs []Substitution, team string) []PlayerImpact {
	var order []string
	acc := make(map[string]*PlayerImpact)
	get := func(name string) *PlayerImpact {
		p, ok := acc[name]
		if !ok {
			p = &PlayerImpact{PlayerName: name}
			acc[name] = p
			order = append(order, name)
		}
		return p
	}

	for _, sub := range subs {
		if team != "" && team != AllTeams && sub.TeamTricode != team {
			continue
		}
		var before, after StatLine
		if at, ok := sub.Time(); ok {
			before = Reduce(Before(events, sub.PlayerOut, at))
			after = Reduce(After(events, sub.PlayerIn, at))
		}

		out := get(sub.PlayerOut)
		in := get(sub.PlayerIn)
		out.Substitutions++
		in.Substitutions++

		out.AvgPointsBefore += float64(before.Points)
		out.AvgReboundsBefore += float64(before.Rebounds)
		out.AvgAssistsBefore += float64(before.Assists)

		in.AvgPointsAfter += float64(after.Points)
		in.AvgReboundsAfter += float64(after.Rebounds)
		in.AvgAssistsAfter += float64(after.Assists)
	}

	impacts := make([]PlayerImpact, 0, len(order))
	for _, name := range order {
		p := acc[name]
		if p.Substitutions == 0 {
			continue
		}
		n := float64(p.Substitutions)
		p.AvgPointsBefore /= n
		p.AvgPointsAfter /= n
		p.AvgReboundsBefore /= n
		p.AvgReboundsAfter /= n
		p.AvgAssistsBefore /= n
		p.AvgAssistsAfter /= n
		p.ImpactScore = (p.AvgPointsAfter - p.AvgPointsBefore) +
			(p.AvgReboundsAfter - p.AvgReboundsBefore) +
			(p.AvgAssistsAfter - p.AvgAssistsBefore)
		impacts = append(impacts, *p)
	}

	sort.SliceStable(impacts, func(i, j int) bool {
		return math.Abs(impacts[i].ImpactScore) > math.Abs(impacts[j].ImpactScore)
	})
	return impacts
}

// Summarize reports the unfiltered substitution count, the number of players
// analyzed and their mean absolute impact score.
func Summarize(subs []Substitution, impacts []PlayerImpact) Summary {
	s := Summary{TotalSubstitutions: len(subs), PlayersAnalyzed: len(impacts)}
	if len(impacts) == 0 {
		return s
	}
	var total float64
	for _, p := range impacts {
		total += math.Abs(p.ImpactScore)
	}
	s.AvgImpactScore = total / float64(len(impacts))
	return s
}
