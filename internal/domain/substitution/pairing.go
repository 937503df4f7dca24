// Package substitution reconstructs player substitutions from their in/out
// halves and measures the performance around each one.
package substitution

import (
	"sort"
	"time"

	"github.com/okian/courtside/internal/domain/classify"
	"github.com/okian/courtside/internal/domain/model"
	"github.com/okian/courtside/internal/domain/normalize"
)

// Substitution is a reconstructed "PlayerOut replaced by PlayerIn" event.
type Substitution struct {
	Timestamp   string    `json:"timestamp"`
	PlayerOut   string    `json:"player_out"`
	PlayerIn    string    `json:"player_in"`
	TeamID      int64     `json:"team_id"`
	TeamTricode string    `json:"team_tricode"`
	time        time.Time // parsed Timestamp, zero when unparsable
	hasTime     bool
}

// Time returns the parsed timestamp. ok is false when it is unparsable.
func (s Substitution) Time() (time.Time, bool) {
	return s.time, s.hasTime
}

// New builds a Substitution, parsing timestamp for ordering and windowing.
func New(timestamp, playerOut, playerIn string, teamID int64, teamTricode string) Substitution {
	s := Substitution{
		Timestamp:   timestamp,
		PlayerOut:   playerOut,
		PlayerIn:    playerIn,
		TeamID:      teamID,
		TeamTricode: teamTricode,
	}
	s.time, s.hasTime = normalize.Timestamp(timestamp)
	return s
}

type pairKey struct {
	teamID    int64
	timestamp string
}

// Pairer matches outgoing and incoming halves sharing (team id, timestamp).
// Use Observe for each event in input order, then Result.
type Pairer struct {
	pending map[pairKey]string
	subs    []Substitution
	dropped int
}

// NewPairer creates an empty Pairer.
func NewPairer() *Pairer {
	return &Pairer{pending: make(map[pairKey]string)}
}

// Observe feeds one event. An outgoing half registers under its key,
// replacing any earlier outgoing half with the same key. An incoming half
// pairs with the pending outgoing half or is dropped.
func (p *Pairer) Observe(e model.Event) {
	switch {
	case classify.IsSubstitutionOut(e):
		p.pending[pairKey{teamID: e.TeamID, timestamp: e.TimeActual}] = e.PlayerName
	case classify.IsSubstitutionIn(e):
		key := pairKey{teamID: e.TeamID, timestamp: e.TimeActual}
		out, ok := p.pending[key]
		if !ok {
			p.dropped++
			return
		}
		delete(p.pending, key)
		p.subs = append(p.subs, New(e.TimeActual, out, e.PlayerName, e.TeamID, e.TeamTricode))
	}
}

// Dropped returns how many incoming halves found no outgoing partner.
func (p *Pairer) Dropped() int { return p.dropped }

// Pending returns how many outgoing halves are still unmatched.
func (p *Pairer) Pending() int { return len(p.pending) }

// Result returns the paired substitutions sorted ascending by timestamp.
// Unparsable timestamps sort first; ties keep pairing order.
func (p *Pairer) Result() []Substitution {
	out := append([]Substitution(nil), p.subs...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch {
		case !a.hasTime:
			return b.hasTime
		case !b.hasTime:
			return false
		default:
			return a.time.Before(b.time)
		}
	})
	return out
}

// Pair reconstructs substitutions from events in input order.
func Pair(events []model.Event) []Substitution {
	p := NewPairer()
	for _, e := range events {
		p.Observe(e)
	}
	return p.Result()
}

// Teams returns the sorted distinct team tricodes across subs.
func Teams(subs []Substitution) []string {
	seen := make(map[string]struct{}, 2)
	teams := []string{}
	for _, s := range subs {
		if _, ok := seen[s.TeamTricode]; ok {
			continue
		}
		seen[s.TeamTricode] = struct{}{}
		teams = append(teams, s.TeamTricode)
	}
	sort.Strings(teams)
	return teams
}
