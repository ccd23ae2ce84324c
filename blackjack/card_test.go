package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		card  Card
		value int
	}{
		{NewCard(Hearts, Two), 2},
		{NewCard(Spades, Nine), 9},
		{NewCard(Clubs, Ten), 10},
		{NewCard(Diamonds, Jack), 10},
		{NewCard(Hearts, Queen), 10},
		{NewCard(Spades, King), 10},
		{NewCard(Hearts, Ace), 11},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.value, tt.card.Value(), "card %s", tt.card)
	}
}

func TestCardString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "A♠", NewCard(Spades, Ace).String())
	assert.Equal(t, "T♥", NewCard(Hearts, Ten).String())
	assert.Equal(t, "2♣", NewCard(Clubs, Two).String())
}

func TestCardIsRed(t *testing.T) {
	t.Parallel()

	assert.True(t, NewCard(Hearts, Ace).IsRed())
	assert.True(t, NewCard(Diamonds, Five).IsRed())
	assert.False(t, NewCard(Spades, Ace).IsRed())
	assert.False(t, NewCard(Clubs, Five).IsRed())
}

func TestParseCard(t *testing.T) {
	t.Parallel()

	card, err := ParseCard("Ah")
	require.NoError(t, err)
	assert.Equal(t, NewCard(Hearts, Ace), card)

	card, err = ParseCard("Td")
	require.NoError(t, err)
	assert.Equal(t, NewCard(Diamonds, Ten), card)

	card, err = ParseCard("2s")
	require.NoError(t, err)
	assert.Equal(t, NewCard(Spades, Two), card)
}

func TestParseCardErrors(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "A", "Ahx", "1h", "Xs", "Az"} {
		_, err := ParseCard(s)
		assert.Error(t, err, "input %q", s)
	}
}
