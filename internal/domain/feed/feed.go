// Package feed renders events as play-by-play rows.
package feed

import (
	"sort"

	"github.com/okian/courtside/internal/domain/clock"
	"github.com/okian/courtside/internal/domain/model"
)

// Row is one play-by-play line.
type Row struct {
	Sequence    int64  `json:"sequence"`
	Clock       string `json:"clock"`
	Period      int    `json:"period"`
	Player      string `json:"player"`
	Description string `json:"description"`
	Score       string `json:"score"`
}

// Rows returns one row per event ordered by sequence. Events sharing a
// sequence keep their input order. events is not modified.
func Rows(events []model.Event) []Row {
	idx := make([]int, len(events))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return events[idx[a]].Sequence < events[idx[b]].Sequence
	})

	rows := make([]Row, 0, len(events))
	for _, i := range idx {
		rows = append(rows, row(events[i]))
	}
	return rows
}

func row(e model.Event) Row {
	player := e.PlayerName
	if player == "" {
		player = clock.Missing
	}
	c := e.Clock
	if c == "" {
		c = clock.Missing
	}
	return Row{
		Sequence:    e.Sequence,
		Clock:       c,
		Period:      e.Period,
		Player:      player,
		Description: e.Description,
		Score:       e.ScoreHome + "-" + e.ScoreAway,
	}
}
