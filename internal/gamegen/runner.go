package gamegen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/okian/courtside/internal/adapters/source"
	"github.com/okian/courtside/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0750
)

// Run generates a game and writes it to cfg.OutputFile. It returns the
// written path.
func Run(ctx context.Context, cfg Config) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	logger.Get().Info(ctx, "generating game",
		logger.Int64("seed", cfg.Seed),
		logger.Int("actions", cfg.Actions))

	raw, stats := Generate(cfg)

	path, err := saveGameToFile(ctx, cfg.OutputFile, func(f *os.File) error {
		return source.Encode(f, raw)
	})
	if err != nil {
		return "", err
	}

	logger.Get().Info(ctx, "game generated",
		logger.String("file", path),
		logger.Any("gameId", raw.GameID),
		logger.Int("actions", stats.Actions),
		logger.Int("fieldGoals", stats.FieldGoals),
		logger.Int("freeThrows", stats.FreeThrows),
		logger.Int("rebounds", stats.Rebounds),
		logger.Int("substitutions", stats.Substitutions),
		logger.String("score", fmt.Sprintf("%d-%d", stats.HomeScore, stats.AwayScore)),
		logger.Duration("wallClock", stats.Duration))
	return path, nil
}

func saveGameToFile(ctx context.Context, filename string, write func(*os.File) error) (string, error) {
	if filename == "" {
		filename = "generated_game_" + time.Now().Format("20060102_150405") + ".json"
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return "", fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Get().Error(ctx, "failed to close file", logger.Error(err))
		}
	}()

	if err := write(file); err != nil {
		return "", fmt.Errorf("failed to write game: %w", err)
	}
	return filename, nil
}
