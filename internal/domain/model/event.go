// Package model contains the play-by-play domain models passed between layers.
package model

import (
	"strings"
	"time"

	"github.com/okian/courtside/internal/domain/clock"
	"github.com/okian/courtside/internal/domain/normalize"
)

// RawEvent mirrors one vendor action as decoded from JSON. Fields whose type
// varies between feeds are kept as any and normalized by FromRaw.
type RawEvent struct {
	OrderNumber       any `json:"orderNumber"`
	ActionNumber      any `json:"actionNumber"`
	Clock             any `json:"clock"`
	TimeActual        any `json:"timeActual"`
	Period            any `json:"period"`
	TeamID            any `json:"teamId"`
	TeamTricode       any `json:"teamTricode"`
	ActionType        any `json:"actionType"`
	SubType           any `json:"subType"`
	Descriptor        any `json:"descriptor"`
	Description       any `json:"description"`
	ScoreHome         any `json:"scoreHome"`
	ScoreAway         any `json:"scoreAway"`
	PlayerName        any `json:"playerName"`
	PlayerNameI       any `json:"playerNameI"`
	ShotResult        any `json:"shotResult"`
	ShotDistance      any `json:"shotDistance"`
	X                 any `json:"x"`
	Y                 any `json:"y"`
	IsFieldGoal       any `json:"isFieldGoal"`
	PointsTotal       any `json:"pointsTotal"`
	AssistPersonID    any `json:"assistPersonId"`
	AssistPlayerNameI any `json:"assistPlayerNameI"`
	Qualifiers        any `json:"qualifiers"`
}

// RawGame is the vendor play-by-play document.
type RawGame struct {
	GameID  any        `json:"gameId"`
	Type    any        `json:"type"`
	Actions []RawEvent `json:"actions"`
}

// Event is one normalized play-by-play occurrence. Events are read-only once
// built; aggregators take them by value.
type Event struct {
	Sequence     int64
	Clock        string // display form, see clock.Normalize
	TimeActual   string // raw wall-clock value, used as a pairing key
	Time         time.Time
	HasTime      bool
	Period       int
	TeamID       int64
	TeamTricode  string
	ActionType   string
	SubType      string
	Descriptor   string
	Description  string
	ScoreHome    string
	ScoreAway    string
	PlayerName   string
	PlayerNameI  string
	ShotResult   string
	ShotDistance *float64
	X            *float64
	Y            *float64
	FieldGoal    bool
	PointsTotal  *float64
	// AssistPersonID is 0 when absent or not numeric.
	AssistPersonID    int64
	AssistPlayerNameI string
	Qualifiers        []string
}

// Game is a normalized play-by-play document in input order.
type Game struct {
	GameID string
	Events []Event
}

// FromRaw normalizes raw. index is the zero-based array position, used as the
// sequence when neither orderNumber nor actionNumber is present.
func FromRaw(raw RawEvent, index int) Event {
	e := Event{
		Sequence:          sequence(raw, index),
		Clock:             clock.Normalize(raw.Clock),
		TimeActual:        strings.TrimSpace(normalize.Text(raw.TimeActual)),
		Period:            int(normalize.Int(raw.Period)),
		TeamID:            normalize.Int(raw.TeamID),
		TeamTricode:       strings.TrimSpace(normalize.Text(raw.TeamTricode)),
		ActionType:        normalize.Text(raw.ActionType),
		SubType:           normalize.Text(raw.SubType),
		Descriptor:        normalize.Text(raw.Descriptor),
		Description:       normalize.Text(raw.Description),
		ScoreHome:         normalize.Text(raw.ScoreHome),
		ScoreAway:         normalize.Text(raw.ScoreAway),
		PlayerName:        strings.TrimSpace(normalize.Text(raw.PlayerName)),
		PlayerNameI:       normalize.Text(raw.PlayerNameI),
		ShotResult:        normalize.Text(raw.ShotResult),
		ShotDistance:      normalize.OptionalNumber(raw.ShotDistance),
		X:                 normalize.OptionalNumber(raw.X),
		Y:                 normalize.OptionalNumber(raw.Y),
		FieldGoal:         normalize.Flag(raw.IsFieldGoal),
		PointsTotal:       normalize.OptionalNumber(raw.PointsTotal),
		AssistPersonID:    normalize.Int(raw.AssistPersonID),
		AssistPlayerNameI: normalize.Text(raw.AssistPlayerNameI),
		Qualifiers:        normalize.Strings(raw.Qualifiers),
	}
	e.Time, e.HasTime = normalize.Timestamp(e.TimeActual)
	return e
}

// FromRawGame normalizes every action of raw, preserving input order.
func FromRawGame(raw RawGame) Game {
	events := make([]Event, len(raw.Actions))
	for i, a := range raw.Actions {
		events[i] = FromRaw(a, i)
	}
	return Game{GameID: normalize.Text(raw.GameID), Events: events}
}

func sequence(raw RawEvent, index int) int64 {
	if n, ok := normalize.Number(raw.OrderNumber); ok {
		return int64(n)
	}
	if n, ok := normalize.Number(raw.ActionNumber); ok {
		return int64(n)
	}
	return int64(index + 1)
}
