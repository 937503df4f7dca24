package aggregate

import (
	"context"
	"fmt"

	"github.com/okian/courtside/internal/domain/model"
	"golang.org/x/sync/errgroup"
)

// Default folder configuration constants.
const (
	defaultPartitions        = 1
	defaultParallelThreshold = 5000
)

// Option applies a configuration option to the Folder.
type Option func(*Folder)

// WithPartitions sets how many contiguous partitions a large fold is split into.
func WithPartitions(n int) Option {
	return func(f *Folder) {
		if n > 0 {
			f.partitions = n
		}
	}
}

// WithParallelThreshold sets the minimum event count before partitioning.
func WithParallelThreshold(n int) Option {
	return func(f *Folder) {
		if n > 0 {
			f.threshold = n
		}
	}
}

// Folder runs team and player folds, partitioning large inputs across
// goroutines. Partial tables are merged in partition order, so the result is
// identical to a sequential fold.
type Folder struct {
	partitions int
	threshold  int
}

// NewFolder creates a Folder with configuration options.
func NewFolder(opts ...Option) *Folder {
	f := &Folder{
		partitions: defaultPartitions,
		threshold:  defaultParallelThreshold,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Teams folds events by team tricode.
func (f *Folder) Teams(ctx context.Context, events []model.Event) (TeamTable, error) {
	t, err := f.run(ctx, events, teamKey)
	if err != nil {
		return TeamTable{}, err
	}
	return TeamTable{t: t}, nil
}

// Players folds events by player name.
func (f *Folder) Players(ctx context.Context, events []model.Event) (PlayerTable, error) {
	t, err := f.run(ctx, events, playerKey)
	if err != nil {
		return PlayerTable{}, err
	}
	return PlayerTable{t: t}, nil
}

func (f *Folder) run(ctx context.Context, events []model.Event, key keyFunc) (*table, error) {
	parts := f.partitions
	if parts > len(events) {
		parts = len(events)
	}
	if parts <= 1 || len(events) < f.threshold {
		return fold(events, key), nil
	}

	partials := make([]*table, parts)
	size := (len(events) + parts - 1) / parts
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < parts; i++ {
		lo := i * size
		hi := min(lo+size, len(events))
		if lo >= hi {
			partials[i] = newTable()
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("fold partition %d: %w", i, err)
			}
			partials[i] = fold(events[lo:hi], key)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := newTable()
	for _, p := range partials {
		merged.merge(p)
	}
	return merged, nil
}
