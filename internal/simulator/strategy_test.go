package simulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack21/blackjack"
	"github.com/lox/blackjack21/internal/game"
)

func handOf(t *testing.T, strs ...string) *game.Hand {
	t.Helper()
	h := game.NewHand(100)
	for _, s := range strs {
		card, err := blackjack.ParseCard(s)
		require.NoError(t, err)
		h.AddCard(card)
	}
	return h
}

func card(t *testing.T, s string) blackjack.Card {
	t.Helper()
	c, err := blackjack.ParseCard(s)
	require.NoError(t, err)
	return c
}

func TestForName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"basic", "mimic", "stand"} {
		strategy, err := ForName(name)
		require.NoError(t, err)
		assert.Equal(t, name, strategy.Name())
	}

	_, err := ForName("martingale")
	assert.Error(t, err)
}

func TestBasicStrategy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cards  []string
		upcard string
		want   game.Action
	}{
		{"split aces", []string{"Ah", "As"}, "6h", game.ActionSplit},
		{"split eights", []string{"8h", "8s"}, "Th", game.ActionSplit},
		{"no split on tens", []string{"Th", "Kh"}, "6h", game.ActionStand},
		{"double eleven", []string{"6h", "5h"}, "Th", game.ActionDouble},
		{"double ten", []string{"6h", "4h"}, "9h", game.ActionDouble},
		{"hit stiff against strong upcard", []string{"Th", "4h"}, "Th", game.ActionHit},
		{"stand stiff against weak upcard", []string{"Th", "4h"}, "5h", game.ActionStand},
		{"twelve hits a two", []string{"Th", "2h"}, "2s", game.ActionHit},
		{"twelve stands on a five", []string{"Th", "2h"}, "5s", game.ActionStand},
		{"stand on seventeen", []string{"Th", "7h"}, "Ah", game.ActionStand},
		{"hit soft eighteen", []string{"Ah", "7h"}, "Th", game.ActionHit},
		{"stand soft nineteen", []string{"Ah", "8h"}, "Th", game.ActionStand},
		{"hit low total", []string{"2h", "3h"}, "6h", game.ActionHit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := BasicStrategy{}.Next(handOf(t, tt.cards...), card(t, tt.upcard))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMimicDealerStrategy(t *testing.T) {
	t.Parallel()

	up := card(t, "Th")
	assert.Equal(t, game.ActionHit, MimicDealerStrategy{}.Next(handOf(t, "Th", "6h"), up))
	assert.Equal(t, game.ActionStand, MimicDealerStrategy{}.Next(handOf(t, "Th", "7h"), up))
	assert.Equal(t, game.ActionStand, MimicDealerStrategy{}.Next(handOf(t, "Ah", "6h"), up))
}

func TestAlwaysStandStrategy(t *testing.T) {
	t.Parallel()

	up := card(t, "Ah")
	assert.Equal(t, game.ActionStand, AlwaysStandStrategy{}.Next(handOf(t, "2h", "3h"), up))
}
