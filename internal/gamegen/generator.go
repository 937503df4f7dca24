package gamegen

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/okian/courtside/internal/domain/model"
)

// Game clock and pacing constants.
const (
	periodSeconds = 720
	periods       = 4
	onCourt       = 5
	minGap        = 4  // seconds between actions, wall clock
	maxGap        = 24 // seconds between actions, wall clock
)

// Action mix out of 100.
const (
	pctFieldGoal    = 45
	pctFreeThrow    = 55
	pctSubstitution = 70
)

var gameNamespace = uuid.MustParse("6f1d9a52-4c43-4c5e-9a3b-6f0b8c2d7e11")

type side struct {
	Team
	court []int // roster indexes on the floor
	bench []int
	score int
}

type generator struct {
	r      *rand.Rand
	sides  [2]*side
	out    []model.RawEvent
	wall   time.Time
	clock  float64
	period int
	stats  Stats
}

// GameID derives a stable game id from seed.
func GameID(seed int64) string {
	return uuid.NewSHA1(gameNamespace, []byte(strconv.FormatInt(seed, 10))).String()
}

// Generate builds a game with at least cfg.Actions actions. Substitution
// halves share (teamId, timeActual) so they pair, and running scores follow
// the 2/3/1 point rule.
func Generate(cfg Config) (model.RawGame, Stats) {
	if cfg.Actions <= 0 {
		cfg.Actions = DefaultActions
	}
	start := cfg.Start
	if start.IsZero() {
		start = defaultStart
	}
	home, away := DefaultTeams()
	seed := uint64(cfg.Seed)
	g := &generator{
		r:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		sides:  [2]*side{newSide(home), newSide(away)},
		wall:   start,
		clock:  periodSeconds,
		period: 1,
	}

	g.emit(model.RawEvent{ActionType: "period", SubType: "start", Description: "Period Start"})
	g.emit(model.RawEvent{ActionType: "jumpball", PlayerName: g.name(0, g.sides[0].court[4]), Description: "Jump Ball"})

	for len(g.out) < cfg.Actions {
		g.advance()
		t := g.r.IntN(2)
		switch roll := g.r.IntN(100); {
		case roll < pctFieldGoal:
			g.fieldGoal(t)
		case roll < pctFreeThrow:
			g.freeThrows(t)
		case roll < pctSubstitution:
			g.substitute(t)
		default:
			g.foul(t)
		}
	}

	g.stats.Actions = len(g.out)
	g.stats.HomeScore = g.sides[0].score
	g.stats.AwayScore = g.sides[1].score
	g.stats.Duration = g.wall.Sub(start)
	return model.RawGame{GameID: GameID(cfg.Seed), Type: "playbyplay", Actions: g.out}, g.stats
}

func newSide(t Team) *side {
	s := &side{Team: t}
	for i := range t.Roster {
		if i < onCourt {
			s.court = append(s.court, i)
		} else {
			s.bench = append(s.bench, i)
		}
	}
	return s
}

func (g *generator) name(t, idx int) string { return g.sides[t].Roster[idx] }

func (g *generator) personID(t, idx int) int64 {
	return int64(1_600_000 + t*100 + idx + 1)
}

func (g *generator) advance() {
	gap := minGap + g.r.IntN(maxGap-minGap+1)
	g.wall = g.wall.Add(time.Duration(gap) * time.Second)
	g.clock -= float64(gap) * 0.8
	if g.clock <= 0 && g.period < periods {
		g.period++
		g.clock = periodSeconds
		g.emit(model.RawEvent{ActionType: "period", SubType: "start", Description: "Period Start"})
	}
	if g.clock < 0 {
		g.clock = 0
	}
}

// emit appends e with sequence, clock, period, time and running score.
func (g *generator) emit(e model.RawEvent) {
	n := len(g.out) + 1
	e.ActionNumber = n
	e.OrderNumber = n * 10
	e.Clock = fmt.Sprintf("PT%02dM%05.2fS", int(g.clock)/60, g.clock-float64(int(g.clock)/60*60))
	e.Period = g.period
	e.TimeActual = g.wall.Format(time.RFC3339)
	e.ScoreHome = strconv.Itoa(g.sides[0].score)
	e.ScoreAway = strconv.Itoa(g.sides[1].score)
	g.out = append(g.out, e)
}

func (g *generator) tag(e model.RawEvent, t, idx int) model.RawEvent {
	s := g.sides[t]
	e.TeamID = s.ID
	e.TeamTricode = s.Tricode
	e.PlayerName = s.Roster[idx]
	e.PlayerNameI = s.Roster[idx][:1] + ". " + s.Roster[idx]
	return e
}

func (g *generator) pick(idxs []int) int { return idxs[g.r.IntN(len(idxs))] }

func (g *generator) fieldGoal(t int) {
	s := g.sides[t]
	shooter := g.pick(s.court)
	three := g.r.IntN(3) == 0
	made := g.r.IntN(100) < 46

	actionType, points, x, y := "2pt", 2, 10+g.r.Float64()*30, 20+g.r.Float64()*60
	if three {
		actionType, points, x, y = "3pt", 3, 40+g.r.Float64()*55, g.r.Float64()*100
	}
	e := g.tag(model.RawEvent{
		ActionType:   actionType,
		SubType:      "Jump Shot",
		IsFieldGoal:  1,
		ShotResult:   "Missed",
		ShotDistance: float64(int(x / 3.5)),
		X:            x,
		Y:            y,
	}, t, shooter)
	g.stats.FieldGoals++

	if !made {
		e.Description = fmt.Sprintf("MISS %s %s", s.Roster[shooter], actionType)
		g.emit(e)
		g.rebound(t)
		return
	}
	e.ShotResult = "Made"
	s.score += points
	e.Description = fmt.Sprintf("%s %s (%d PTS)", s.Roster[shooter], actionType, points)
	if g.r.IntN(100) < 60 {
		if mate := g.teammate(t, shooter); mate >= 0 {
			e.AssistPersonID = g.personID(t, mate)
			e.AssistPlayerNameI = s.Roster[mate][:1] + ". " + s.Roster[mate]
		}
	}
	g.emit(e)
}

func (g *generator) teammate(t, not int) int {
	var mates []int
	for _, idx := range g.sides[t].court {
		if idx != not {
			mates = append(mates, idx)
		}
	}
	if len(mates) == 0 {
		return -1
	}
	return g.pick(mates)
}

func (g *generator) rebound(shooting int) {
	t, subType := 1-shooting, "defensive"
	if g.r.IntN(100) < 25 {
		t, subType = shooting, "offensive"
	}
	g.advance()
	e := g.tag(model.RawEvent{ActionType: "rebound", SubType: subType}, t, g.pick(g.sides[t].court))
	e.Description = fmt.Sprintf("%s REBOUND (%s)", e.PlayerName, subType)
	g.stats.Rebounds++
	g.emit(e)
}

func (g *generator) freeThrows(t int) {
	s := g.sides[t]
	shooter := g.pick(s.court)
	for i := 1; i <= 2; i++ {
		e := g.tag(model.RawEvent{ActionType: "freethrow", SubType: fmt.Sprintf("%d of 2", i), ShotResult: "Missed"}, t, shooter)
		if g.r.IntN(100) < 78 {
			e.ShotResult = "Made"
			s.score++
		}
		e.Description = fmt.Sprintf("%s Free Throw %d of 2 %s", s.Roster[shooter], i, e.ShotResult)
		g.stats.FreeThrows++
		g.emit(e)
	}
}

// substitute emits the out and in halves at the same wall-clock instant.
func (g *generator) substitute(t int) {
	s := g.sides[t]
	oi, bi := g.r.IntN(len(s.court)), g.r.IntN(len(s.bench))
	out, in := s.court[oi], s.bench[bi]

	g.emit(g.tag(model.RawEvent{ActionType: "substitution", SubType: "out", Description: "SUB out: " + s.Roster[out]}, t, out))
	g.emit(g.tag(model.RawEvent{ActionType: "substitution", SubType: "in", Description: "SUB in: " + s.Roster[in]}, t, in))
	s.court[oi], s.bench[bi] = in, out
	g.stats.Substitutions++
}

func (g *generator) foul(t int) {
	e := g.tag(model.RawEvent{ActionType: "foul", SubType: "personal"}, t, g.pick(g.sides[t].court))
	e.Description = e.PlayerName.(string) + " P.FOUL"
	g.emit(e)
}
