package simulator

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack21/internal/game"
)

func testConfig(rounds int, strategy Strategy) Config {
	return Config{
		Rounds:   rounds,
		Seats:    []game.Seat{{Name: "Sim", Bet: 100}},
		Strategy: strategy,
		Seed:     42,
		Workers:  2,
		Logger:   log.New(io.Discard),
	}
}

func TestRunCompletesEveryRound(t *testing.T) {
	t.Parallel()

	sim := New(testConfig(200, BasicStrategy{}))
	stats, err := sim.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 200, stats.Rounds)
	assert.GreaterOrEqual(t, stats.Hands, 200, "splits can only add hands")
	assert.Equal(t, 0, stats.Count(game.ResultPending))
}

func TestRunIsReproducible(t *testing.T) {
	t.Parallel()

	a, err := New(testConfig(100, BasicStrategy{})).Run(context.Background())
	require.NoError(t, err)
	b, err := New(testConfig(100, BasicStrategy{})).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestRunStandStrategyNeverBusts(t *testing.T) {
	t.Parallel()

	stats, err := New(testConfig(150, AlwaysStandStrategy{})).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Count(game.ResultPlayerBust))
}

func TestRunRejectsBadConfig(t *testing.T) {
	t.Parallel()

	_, err := New(testConfig(0, BasicStrategy{})).Run(context.Background())
	assert.Error(t, err)

	cfg := testConfig(10, nil)
	_, err = New(cfg).Run(context.Background())
	assert.Error(t, err)
}

func TestRunHonoursCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(testConfig(100000, BasicStrategy{})).Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunMultipleSeats(t *testing.T) {
	t.Parallel()

	cfg := testConfig(50, MimicDealerStrategy{})
	cfg.Seats = []game.Seat{
		{Name: "Sim 1", Bet: 100},
		{Name: "Sim 2", Bet: 100},
		{Name: "Sim 3", Bet: 100},
	}

	stats, err := New(cfg).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 50, stats.Rounds)
	assert.GreaterOrEqual(t, stats.Hands, 150)
}
