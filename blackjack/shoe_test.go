package blackjack

import (
	rand "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestNewShoeSize(t *testing.T) {
	t.Parallel()

	one := NewShoe(testRNG(1), 1)
	assert.Equal(t, 52, one.Size())
	assert.Equal(t, 52, one.Remaining())

	three := NewShoe(testRNG(1), 3)
	assert.Equal(t, 156, three.Size())
}

func TestNewShoeContainsEveryCard(t *testing.T) {
	t.Parallel()

	s := NewShoe(testRNG(7), 2)
	seen := make(map[Card]int)
	for {
		card, err := s.Draw()
		if err != nil {
			require.ErrorIs(t, err, ErrNoCards)
			break
		}
		seen[card]++
	}

	require.Len(t, seen, 52)
	for card, count := range seen {
		assert.Equal(t, 2, count, "card %s", card)
	}
}

func TestShoeDrawExhaustion(t *testing.T) {
	t.Parallel()

	s := NewShoe(testRNG(1), 1)
	for i := 0; i < 52; i++ {
		_, err := s.Draw()
		require.NoError(t, err)
	}

	_, err := s.Draw()
	assert.ErrorIs(t, err, ErrNoCards)
	assert.Equal(t, 0, s.Remaining())
}

func TestShoePenetration(t *testing.T) {
	t.Parallel()

	s := NewShoe(testRNG(1), 1)
	assert.Equal(t, 0.0, s.Penetration())

	for i := 0; i < 13; i++ {
		_, err := s.Draw()
		require.NoError(t, err)
	}
	assert.InDelta(t, 0.25, s.Penetration(), 1e-9)

	s.Reset()
	assert.Equal(t, 0.0, s.Penetration())
	assert.Equal(t, 52, s.Remaining())
}

func TestShoeDeterministicWithSeed(t *testing.T) {
	t.Parallel()

	a := NewShoe(testRNG(42), 1)
	b := NewShoe(testRNG(42), 1)
	for i := 0; i < 52; i++ {
		ca, err := a.Draw()
		require.NoError(t, err)
		cb, err := b.Draw()
		require.NoError(t, err)
		assert.Equal(t, ca, cb)
	}
}

func TestDeckCountFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, DeckCountFor(1))
	assert.Equal(t, 1, DeckCountFor(4))
	assert.Equal(t, 2, DeckCountFor(5))
	assert.Equal(t, 2, DeckCountFor(9))
	assert.Equal(t, 3, DeckCountFor(10))
}

func TestNewShoePanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { NewShoe(nil, 1) })
	assert.Panics(t, func() { NewShoe(testRNG(1), 0) })
}
