// Package aggregate folds classified events into per-team and per-player
// shooting, rebounding and assist lines.
package aggregate

import (
	"github.com/okian/courtside/internal/domain/classify"
	"github.com/okian/courtside/internal/domain/model"
)

const percentScale = 100

// Line is a running box-score line.
type Line struct {
	FGM  int `json:"fgm"`
	FGA  int `json:"fga"`
	FG3M int `json:"fg3m"`
	FG3A int `json:"fg3a"`
	FTM  int `json:"ftm"`
	FTA  int `json:"fta"`
	OREB int `json:"oreb"`
	DREB int `json:"dreb"`
	AST  int `json:"ast"`
	PTS  int `json:"pts"`
}

// Percentages are derived shooting splits in [0,100].
type Percentages struct {
	FGPct  float64 `json:"fg_pct"`
	FG3Pct float64 `json:"fg3_pct"`
	FTPct  float64 `json:"ft_pct"`
}

// Apply is the fold step: it returns l with e counted. l is not modified.
func Apply(l Line, e model.Event) Line {
	made := classify.IsMade(e)

	if classify.IsFieldGoalAttempt(e) {
		l.FGA++
		if made {
			l.FGM++
		}
		if classify.IsThreePointAttempt(e) {
			l.FG3A++
			if made {
				l.FG3M++
			}
		}
	}
	if classify.IsFreeThrowAttempt(e) {
		l.FTA++
		if made {
			l.FTM++
		}
	}
	if classify.IsAssistedMadeFieldGoal(e) {
		l.AST++
	}
	switch {
	case classify.IsReboundOffensive(e):
		l.OREB++
	case classify.IsReboundDefensive(e):
		l.DREB++
	}
	l.PTS += classify.Points(e)
	return l
}

// Merge adds two partial lines. It is commutative and associative.
func Merge(a, b Line) Line {
	return Line{
		FGM:  a.FGM + b.FGM,
		FGA:  a.FGA + b.FGA,
		FG3M: a.FG3M + b.FG3M,
		FG3A: a.FG3A + b.FG3A,
		FTM:  a.FTM + b.FTM,
		FTA:  a.FTA + b.FTA,
		OREB: a.OREB + b.OREB,
		DREB: a.DREB + b.DREB,
		AST:  a.AST + b.AST,
		PTS:  a.PTS + b.PTS,
	}
}

// Percentages derives shooting splits from l.
func (l Line) Percentages() Percentages {
	return Percentages{
		FGPct:  Pct(l.FGM, l.FGA),
		FG3Pct: Pct(l.FG3M, l.FG3A),
		FTPct:  Pct(l.FTM, l.FTA),
	}
}

// Rebounds returns offensive plus defensive rebounds.
func (l Line) Rebounds() int { return l.OREB + l.DREB }

// Pct returns made/attempted*100, or 0 when nothing was attempted.
func Pct(made, attempted int) float64 {
	if attempted <= 0 {
		return 0
	}
	return float64(made) / float64(attempted) * percentScale
}
