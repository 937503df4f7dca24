// Package gamegen produces synthetic play-by-play documents for demos and
// load tests.
package gamegen

import "time"

// Default generator configuration constants.
const (
	DefaultActions = 500
	DefaultSeed    = 1
)

// Config holds configuration for one generated game.
type Config struct {
	Seed       int64     // PRNG seed; equal seeds give identical games
	Actions    int       // minimum number of actions to emit
	OutputFile string    // destination file, generated_game_TIMESTAMP.json when empty
	Start      time.Time // wall-clock tip-off, 2024-03-01T19:00:00Z when zero
}

// Stats summarizes a generated game.
type Stats struct {
	Actions       int
	FieldGoals    int
	FreeThrows    int
	Rebounds      int
	Substitutions int
	HomeScore     int
	AwayScore     int
	Duration      time.Duration
}

// Team is one generated side.
type Team struct {
	ID      int64
	Tricode string
	Roster  []string
}

var defaultStart = time.Date(2024, time.March, 1, 19, 0, 0, 0, time.UTC)

// DefaultTeams returns the home and away sides used by Generate.
func DefaultTeams() (home, away Team) {
	home = Team{ID: 1610612747, Tricode: "LAL", Roster: []string{
		"James", "Davis", "Reaves", "Russell", "Hachimura", "Prince", "Vincent", "Wood", "Christie",
	}}
	away = Team{ID: 1610612738, Tricode: "BOS", Roster: []string{
		"Tatum", "Brown", "White", "Holiday", "Porzingis", "Horford", "Hauser", "Pritchard", "Kornet",
	}}
	return home, away
}
