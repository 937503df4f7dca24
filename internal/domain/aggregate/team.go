package aggregate

import "github.com/okian/courtside/internal/domain/model"

// TeamStats is one team's aggregate line keyed by tricode.
type TeamStats struct {
	Team string `json:"team"`
	Line
	Percentages
}

// TeamTable maps team tricode to TeamStats in first-appearance order.
type TeamTable struct {
	t *table
}

// FoldTeams aggregates events by team tricode. Events without a tricode are
// skipped and contribute to no team.
func FoldTeams(events []model.Event) TeamTable {
	return TeamTable{t: fold(events, teamKey)}
}

// Len returns the number of teams.
func (tt TeamTable) Len() int {
	if tt.t == nil {
		return 0
	}
	return len(tt.t.order)
}

// Get returns the stats for team.
func (tt TeamTable) Get(team string) (TeamStats, bool) {
	if tt.t == nil {
		return TeamStats{}, false
	}
	l, ok := tt.t.lines[team]
	if !ok {
		return TeamStats{}, false
	}
	return teamStats(team, l), true
}

// Rows returns every team in first-appearance order.
func (tt TeamTable) Rows() []TeamStats {
	if tt.t == nil {
		return []TeamStats{}
	}
	return tt.rows(tt.t.order)
}

// SortedRows returns every team ordered by tricode.
func (tt TeamTable) SortedRows() []TeamStats {
	if tt.t == nil {
		return []TeamStats{}
	}
	return tt.rows(tt.t.sortedKeys())
}

func (tt TeamTable) rows(keys []string) []TeamStats {
	out := make([]TeamStats, 0, len(keys))
	for _, k := range keys {
		out = append(out, teamStats(k, tt.t.lines[k]))
	}
	return out
}

func teamStats(team string, l Line) TeamStats {
	return TeamStats{Team: team, Line: l, Percentages: l.Percentages()}
}
