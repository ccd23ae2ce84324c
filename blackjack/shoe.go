package blackjack

import (
	"errors"
	rand "math/rand/v2"
)

// ErrNoCards is returned by Draw when the shoe is exhausted.
var ErrNoCards = errors.New("no cards remain in the shoe")

// Shoe holds one or more shuffled 52-card decks and deals them in order.
// Drawn cards stay in the shoe so penetration can be tracked; Reset returns
// them all and reshuffles.
type Shoe struct {
	cards []Card
	next  int
	rng   *rand.Rand
}

// NewShoe creates a shuffled shoe of count decks with an explicit RNG.
// It panics if count is not positive or rng is nil; callers that need a
// table-sized default should use DeckCountFor.
func NewShoe(rng *rand.Rand, count int) *Shoe {
	if rng == nil {
		panic("rng is required for shoe creation")
	}
	if count < 1 {
		panic("shoe needs at least one deck")
	}

	s := &Shoe{
		cards: make([]Card, 0, count*52),
		rng:   rng,
	}
	for deck := 0; deck < count; deck++ {
		for suit := Spades; suit <= Clubs; suit++ {
			for rank := Two; rank <= Ace; rank++ {
				s.cards = append(s.cards, NewCard(suit, rank))
			}
		}
	}

	s.Shuffle()
	return s
}

// DeckCountFor returns the conventional deck count for a table of the
// given size: one deck per five players, rounded up.
func DeckCountFor(players int) int {
	return players/5 + 1
}

// Shuffle reshuffles every card in the shoe, drawn or not, using
// Fisher-Yates, and starts dealing from the top again.
func (s *Shoe) Shuffle() {
	s.next = 0
	for i := len(s.cards) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
}

// Draw deals the next card, or fails with ErrNoCards when exhausted.
func (s *Shoe) Draw() (Card, error) {
	if s.next >= len(s.cards) {
		return Card{}, ErrNoCards
	}
	card := s.cards[s.next]
	s.next++
	return card, nil
}

// Remaining returns the number of undrawn cards.
func (s *Shoe) Remaining() int {
	return len(s.cards) - s.next
}

// Size returns the total number of cards in the shoe, drawn or not.
func (s *Shoe) Size() int {
	return len(s.cards)
}

// Penetration returns the fraction of the shoe drawn since the last
// shuffle, in [0, 1].
func (s *Shoe) Penetration() float64 {
	if len(s.cards) == 0 {
		return 0
	}
	return float64(s.next) / float64(len(s.cards))
}

// Reset returns all drawn cards to the shoe and reshuffles.
func (s *Shoe) Reset() {
	s.Shuffle()
}
