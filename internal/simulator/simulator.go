// Package simulator plays large numbers of rounds against the house and
// aggregates the outcomes. Rounds are distributed across workers, each
// with its own table and independently seeded shoe, so runs parallelise
// without shared state and reproduce exactly from a seed.
package simulator

import (
	"context"
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack21/blackjack"
	"github.com/lox/blackjack21/internal/game"
	"github.com/lox/blackjack21/internal/randutil"
	"github.com/lox/blackjack21/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Rounds    int
	Seats     []game.Seat
	Strategy  Strategy
	HitSoft17 bool
	Decks     int // 0 sizes the shoe to the seat count
	Seed      int64
	Workers   int // 0 means one per CPU
	Logger    *log.Logger
}

// Simulator runs blackjack round simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	return &Simulator{config: config}
}

// Run executes the simulation and returns aggregated statistics. Workers
// play their share of rounds independently; their per-worker statistics
// are merged once every worker finishes.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Rounds <= 0 {
		return nil, fmt.Errorf("rounds must be positive, got %d", s.config.Rounds)
	}
	if s.config.Strategy == nil {
		return nil, fmt.Errorf("a strategy is required")
	}

	workers := s.config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > s.config.Rounds {
		workers = s.config.Rounds
	}

	logger := s.config.Logger
	if logger == nil {
		logger = log.Default()
	}

	decks := s.config.Decks
	if decks == 0 {
		decks = blackjack.DeckCountFor(len(s.config.Seats))
	}

	roundsPerWorker := s.config.Rounds / workers
	remainder := s.config.Rounds % workers

	logger.Debug("starting simulation",
		"rounds", s.config.Rounds,
		"workers", workers,
		"strategy", s.config.Strategy.Name(),
		"decks", decks,
		"seed", s.config.Seed)

	g, ctx := errgroup.WithContext(ctx)
	results := make([]*statistics.Statistics, workers)

	for w := 0; w < workers; w++ {
		rounds := roundsPerWorker
		if w < remainder {
			rounds++
		}
		// Each worker derives its own seed so streams never overlap and
		// a run is replayable from (seed, workers).
		workerSeed := s.config.Seed + int64(w)*0x9e3779b9
		idx := w

		g.Go(func() error {
			stats, err := s.runWorker(ctx, rounds, workerSeed)
			if err != nil {
				return fmt.Errorf("worker %d: %w", idx, err)
			}
			results[idx] = stats
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := &statistics.Statistics{}
	for _, stats := range results {
		total.Merge(stats)
	}
	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return total, nil
}

// runWorker plays rounds on a private table until its share is done or
// the context is cancelled.
func (s *Simulator) runWorker(ctx context.Context, rounds int, seed int64) (*statistics.Statistics, error) {
	decks := s.config.Decks
	if decks == 0 {
		decks = blackjack.DeckCountFor(len(s.config.Seats))
	}

	shoe := blackjack.NewShoe(randutil.New(seed), decks)
	table, err := game.NewTable(s.config.Seats, shoe,
		game.WithHitSoft17(s.config.HitSoft17),
	)
	if err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for i := 0; i < rounds; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if err := PlayRound(table, s.config.Strategy); err != nil {
			return nil, fmt.Errorf("round %d: %w", i+1, err)
		}
		stats.AddRound(table.Players())
	}
	return stats, nil
}

// PlayRound drives one round to completion, asking the strategy for each
// acting hand's move.
func PlayRound(table *game.Table, strategy Strategy) error {
	if err := table.StartRound(); err != nil {
		return err
	}

	for table.Phase() == game.PhasePlayersTurn {
		_, hand, ok := table.Current()
		if !ok {
			return fmt.Errorf("players' turn with no acting hand")
		}
		upcard, _ := table.DealerUpcard()

		var err error
		switch action := strategy.Next(hand, upcard); action {
		case game.ActionHit:
			_, err = table.Hit()
		case game.ActionStand:
			err = table.Stand()
		case game.ActionDouble:
			_, err = table.DoubleDown()
		case game.ActionSplit:
			err = table.Split()
		case game.ActionSurrender:
			err = table.Surrender()
		default:
			return fmt.Errorf("strategy returned unplayable action %s", action)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
