package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack21/internal/game"
)

func TestAddAndRates(t *testing.T) {
	t.Parallel()

	var s Statistics
	s.Rounds = 4
	for _, r := range []game.Result{
		game.ResultBlackjack,
		game.ResultPlayerWin,
		game.ResultDealerWin,
		game.ResultPush,
	} {
		s.Add(r)
	}

	assert.Equal(t, 4, s.Hands)
	assert.Equal(t, 1, s.Count(game.ResultBlackjack))
	assert.InDelta(t, 0.25, s.Rate(game.ResultPush), 1e-9)
	assert.InDelta(t, 0.5, s.WinRate(), 1e-9)
	assert.InDelta(t, 0.25, s.LossRate(), 1e-9)
	assert.InDelta(t, 0.25, s.PushRate(), 1e-9)
	require.NoError(t, s.Validate())
}

func TestMerge(t *testing.T) {
	t.Parallel()

	var a, b Statistics
	a.Rounds = 1
	a.Add(game.ResultPlayerWin)
	b.Rounds = 2
	b.Add(game.ResultPlayerWin)
	b.Add(game.ResultDealerBust)

	a.Merge(&b)
	assert.Equal(t, 3, a.Rounds)
	assert.Equal(t, 3, a.Hands)
	assert.Equal(t, 2, a.Count(game.ResultPlayerWin))
	assert.Equal(t, 1, a.Count(game.ResultDealerBust))
	require.NoError(t, a.Validate())
}

func TestAddRound(t *testing.T) {
	t.Parallel()

	alice := game.NewPlayer("Alice", 100)
	alice.Hands[0].Result = game.ResultPlayerWin
	bob := game.NewPlayer("Bob", 50)
	bob.Hands[0].Result = game.ResultPlayerBust

	var s Statistics
	s.AddRound([]*game.Player{alice, bob})

	assert.Equal(t, 1, s.Rounds)
	assert.Equal(t, 2, s.Hands)
	require.NoError(t, s.Validate())
}

func TestValidateCatchesPending(t *testing.T) {
	t.Parallel()

	var s Statistics
	s.Rounds = 1
	s.Add(game.ResultPending)
	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "without a result")
}

func TestEmptyStatistics(t *testing.T) {
	t.Parallel()

	var s Statistics
	assert.Equal(t, 0.0, s.WinRate())
	assert.Equal(t, 0.0, s.Rate(game.ResultPush))
	require.NoError(t, s.Validate())
}
