package game

import (
	"github.com/lox/blackjack21/blackjack"
)

// Hand is one bet-attached sequence of cards belonging to a player. A
// player starts with a single hand; splitting appends siblings to the
// player's hand list. Cards only ever grow, except for the one card a
// split moves out into its sibling.
type Hand struct {
	Cards  []blackjack.Card
	Bet    int
	Result Result

	stood       bool
	surrendered bool
	doubled     bool
}

// NewHand creates an empty hand carrying the given bet.
func NewHand(bet int) *Hand {
	return &Hand{Bet: bet}
}

// AddCard appends a card. Legality of the deal is the table's concern, not
// the hand's.
func (h *Hand) AddCard(c blackjack.Card) {
	h.Cards = append(h.Cards, c)
}

// Stand marks the hand as manually stood. Idempotent.
func (h *Hand) Stand() {
	h.stood = true
}

// Total returns the hand's best blackjack total.
func (h *Hand) Total() int {
	return blackjack.Total(h.Cards)
}

// Soft reports whether the total counts an Ace as 11.
func (h *Hand) Soft() bool {
	return blackjack.IsSoft(h.Cards)
}

// Bust reports whether the total exceeds 21.
func (h *Hand) Bust() bool {
	return h.Total() > 21
}

// Standing reports whether the hand can take no further action: stood,
// surrendered, or at 21 or more.
func (h *Hand) Standing() bool {
	return h.stood || h.surrendered || h.Total() >= 21
}

// Surrendered reports whether the hand was surrendered.
func (h *Hand) Surrendered() bool {
	return h.surrendered
}

// Doubled reports whether the bet was doubled down.
func (h *Hand) Doubled() bool {
	return h.doubled
}

// FirstTurn reports whether the hand still holds exactly its two dealt
// cards, the window for double down, split and surrender.
func (h *Hand) FirstTurn() bool {
	return len(h.Cards) == 2
}

// Pair reports whether the hand is two cards of equal point value, the
// split requirement. Note this compares values, not ranks: a ten and a
// king split.
func (h *Hand) Pair() bool {
	return len(h.Cards) == 2 && h.Cards[0].Value() == h.Cards[1].Value()
}

// CanDouble reports whether the hand may still double down.
func (h *Hand) CanDouble() bool {
	return h.FirstTurn() && !h.Standing()
}

// CanSplit reports whether the hand may still be split.
func (h *Hand) CanSplit() bool {
	return h.Pair() && !h.Standing()
}

func (h *Hand) surrender() {
	h.surrendered = true
	h.stood = true
}

func (h *Hand) double() {
	h.Bet *= 2
	h.doubled = true
}
