package main

import (
	"fmt"

	"github.com/lox/blackjack21/blackjack"
	"github.com/lox/blackjack21/internal/config"
	"github.com/lox/blackjack21/internal/game"
	"github.com/lox/blackjack21/internal/randutil"
	"github.com/lox/blackjack21/internal/simulator"
)

// DealCmd plays one fully visible round, auto-piloted by a strategy.
type DealCmd struct {
	Config   string `kong:"default='table.hcl',help='Table configuration file (HCL)'"`
	Strategy string `kong:"help='Override the configured strategy: basic, mimic, stand'"`
	Seed     *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	Debug    bool   `kong:"help='Enable debug logging'"`
}

func (c *DealCmd) Run() error {
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
		logger.Info("using deterministic seed", "seed", seed)
	} else {
		seed = randutil.Seed()
		logger.Debug("using random seed", "seed", seed)
	}

	seats := make([]game.Seat, len(cfg.Players))
	for i, p := range cfg.Players {
		seats[i] = game.Seat{Name: p.Name, Bet: p.Bet}
	}

	decks := cfg.Rules.Decks
	if decks == 0 {
		decks = blackjack.DeckCountFor(len(seats))
	}
	shoe := blackjack.NewShoe(randutil.New(seed), decks)

	bus := game.NewEventBus()
	bus.Subscribe(&roundPrinter{dealerName: cfg.Rules.DealerName})

	table, err := game.NewTable(seats, shoe,
		game.WithDealerName(cfg.Rules.DealerName),
		game.WithHitSoft17(cfg.Rules.HitSoft17),
		game.WithLogger(logger),
		game.WithEventBus(bus),
	)
	if err != nil {
		return fmt.Errorf("building table: %w", err)
	}

	return simulator.PlayRound(table, strategy)
}
