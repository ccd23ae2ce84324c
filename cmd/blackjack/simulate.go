package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/lox/blackjack21/internal/config"
	"github.com/lox/blackjack21/internal/game"
	"github.com/lox/blackjack21/internal/randutil"
	"github.com/lox/blackjack21/internal/simulator"
)

// SimulateCmd plays many rounds in parallel and reports outcome rates.
type SimulateCmd struct {
	Config   string `kong:"default='table.hcl',help='Table configuration file (HCL)'"`
	Rounds   int    `kong:"default='100000',help='Number of rounds to simulate'"`
	Strategy string `kong:"help='Override the configured strategy: basic, mimic, stand'"`
	Seed     *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	Workers  int    `kong:"default='0',help='Worker count (0 for one per CPU)'"`
	Debug    bool   `kong:"help='Enable debug logging'"`
}

func (c *SimulateCmd) Run() error {
	logger := setupLogger(c.Debug)

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Strategy != "" {
		cfg.Rules.Strategy = c.Strategy
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	strategy, err := simulator.ForName(cfg.Rules.Strategy)
	if err != nil {
		return err
	}

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
	} else {
		seed = randutil.Seed()
	}
	logger.Info("simulating", "rounds", c.Rounds, "strategy", strategy.Name(), "seed", seed)

	seats := make([]game.Seat, len(cfg.Players))
	for i, p := range cfg.Players {
		seats[i] = game.Seat{Name: p.Name, Bet: p.Bet}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sim := simulator.New(simulator.Config{
		Rounds:    c.Rounds,
		Seats:     seats,
		Strategy:  strategy,
		HitSoft17: cfg.Rules.HitSoft17,
		Decks:     cfg.Rules.Decks,
		Seed:      seed,
		Workers:   c.Workers,
		Logger:    logger,
	})

	start := time.Now()
	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Println(headerStyle.Render(fmt.Sprintf(" %s strategy ", strategy.Name())))
	fmt.Println(stats.Summary())
	fmt.Println(infoStyle.Render(fmt.Sprintf("%.0f rounds/sec, %s elapsed, seed %d",
		float64(stats.Rounds)/elapsed.Seconds(), elapsed.Round(time.Millisecond), seed)))
	return nil
}
