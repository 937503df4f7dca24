package aggregate

import "github.com/okian/courtside/internal/domain/model"

// PlayerStats is one player's aggregate line.
//
// Players are keyed by display name only. Two players sharing a name collapse
// into a single record; the feed carries no stable id we aggregate on.
type PlayerStats struct {
	Name string `json:"name"`
	Line
	Percentages
}

// PlayerTable maps player name to PlayerStats.
type PlayerTable struct {
	t *table
}

// Comparison pairs two player records side by side.
type Comparison struct {
	Player1 PlayerStats `json:"player1"`
	Player2 PlayerStats `json:"player2"`
}

// FoldPlayers aggregates events by player name, skipping unnamed events.
func FoldPlayers(events []model.Event) PlayerTable {
	return PlayerTable{t: fold(events, playerKey)}
}

// Len returns the number of players.
func (pt PlayerTable) Len() int {
	if pt.t == nil {
		return 0
	}
	return len(pt.t.order)
}

// Names returns every known player name in lexicographic order.
func (pt PlayerTable) Names() []string {
	if pt.t == nil {
		return []string{}
	}
	return pt.t.sortedKeys()
}

// Lookup returns the record for name.
func (pt PlayerTable) Lookup(name string) (PlayerStats, bool) {
	if pt.t == nil {
		return PlayerStats{}, false
	}
	l, ok := pt.t.lines[name]
	if !ok {
		return PlayerStats{}, false
	}
	return playerStats(name, l), true
}

// Rows returns every player ordered by name.
func (pt PlayerTable) Rows() []PlayerStats {
	names := pt.Names()
	out := make([]PlayerStats, 0, len(names))
	for _, n := range names {
		out = append(out, playerStats(n, pt.t.lines[n]))
	}
	return out
}

// Compare returns both records when both names are known.
func (pt PlayerTable) Compare(player1, player2 string) (Comparison, bool) {
	a, ok := pt.Lookup(player1)
	if !ok {
		return Comparison{}, false
	}
	b, ok := pt.Lookup(player2)
	if !ok {
		return Comparison{}, false
	}
	return Comparison{Player1: a, Player2: b}, true
}

func playerStats(name string, l Line) PlayerStats {
	return PlayerStats{Name: name, Line: l, Percentages: l.Percentages()}
}
