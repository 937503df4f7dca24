package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/courtside/internal/gamegen"
	"github.com/okian/courtside/pkg/logger"
)

const defaultRunTimeout = time.Minute

func main() {
	var (
		outputFile = flag.String("output", "", "Output file for the generated game (default: generated_game_TIMESTAMP.json)")
		seed       = flag.Int64("seed", gamegen.DefaultSeed, "PRNG seed")
		actions    = flag.Int("actions", gamegen.DefaultActions, "Minimum number of actions to generate")
		help       = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		gamegen.ShowHelp()
		return
	}

	if err := logger.Init(); err != nil {
		_, _ = os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	if _, err := gamegen.Run(ctx, gamegen.Config{Seed: *seed, Actions: *actions, OutputFile: *outputFile}); err != nil {
		_, _ = os.Stderr.WriteString("Generation failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
