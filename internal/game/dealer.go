package game

import (
	"github.com/lox/blackjack21/blackjack"
)

// Dealer holds the house hand. It carries no bet and no stand flag:
// whether the dealer stands is computed from the cards and the soft-17
// policy. The dealer never reaches back into the table; the card source is
// passed in when it plays.
type Dealer struct {
	Name  string
	Cards []blackjack.Card

	hitSoft17 bool
}

// NewDealer creates a dealer with an empty hand.
func NewDealer(name string, hitSoft17 bool) *Dealer {
	return &Dealer{Name: name, hitSoft17: hitSoft17}
}

// AddCard appends a card to the dealer's hand.
func (d *Dealer) AddCard(c blackjack.Card) {
	d.Cards = append(d.Cards, c)
}

// ClearHand empties the hand for a new round.
func (d *Dealer) ClearHand() {
	d.Cards = d.Cards[:0]
}

// Total returns the dealer's full hand total. Up-card-only visibility
// during the players' turn is enforced by the table, not here.
func (d *Dealer) Total() int {
	return blackjack.Total(d.Cards)
}

// Bust reports whether the dealer's total exceeds 21.
func (d *Dealer) Bust() bool {
	return d.Total() > 21
}

// Upcard returns the dealer's first card, the one visible to players
// before the dealer's turn.
func (d *Dealer) Upcard() (blackjack.Card, bool) {
	if len(d.Cards) == 0 {
		return blackjack.Card{}, false
	}
	return d.Cards[0], true
}

// Natural reports whether the dealer's first two cards total 21.
func (d *Dealer) Natural() bool {
	return len(d.Cards) == 2 && d.Total() == 21
}

// Standing reports whether the dealer draws no further cards: true above
// 17 (including busts), at 17 unless the total is soft and the house hits
// soft 17, false below 17. Player totals never enter into it.
func (d *Dealer) Standing() bool {
	total := d.Total()
	switch {
	case total > 17:
		return true
	case total == 17:
		return !(d.hitSoft17 && blackjack.IsSoft(d.Cards))
	default:
		return false
	}
}

// Play draws from src until the dealer stands. Must be called only once
// every player hand has concluded; the table enforces that.
func (d *Dealer) Play(src CardSource) error {
	for !d.Standing() {
		card, err := src.Draw()
		if err != nil {
			return err
		}
		d.AddCard(card)
	}
	return nil
}
