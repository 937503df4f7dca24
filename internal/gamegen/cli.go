package gamegen

import "os"

// ShowHelp prints usage information for the game generator.
func ShowHelp() {
	_, _ = os.Stdout.WriteString(`Courtside Game Generator
========================

Writes a synthetic play-by-play document the courtside server can load.

Usage:
  go run ./cmd/gamegen [options]

Options:
  -output string
        Output file (default: generated_game_TIMESTAMP.json)
  -seed int
        PRNG seed; the same seed always produces the same game (default 1)
  -actions int
        Minimum number of actions to generate (default 500)
  -help
        Show this help message

Examples:
  # Generate the default game into the server's data path
  go run ./cmd/gamegen -output data/play-by-play.json

  # A large game for fold benchmarks
  go run ./cmd/gamegen -actions 20000 -seed 7 -output /tmp/big.json
`)
}
