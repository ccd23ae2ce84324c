package game

// Player owns an ordered, growable list of hands. The list starts with
// exactly one hand; splits insert siblings after the hand they came from.
// Hand order defines the turn sequence and the hand numbering shown to
// callers.
type Player struct {
	Name  string
	Bet   int // original bet; per-hand bets live on the hands
	Hands []*Hand
}

// NewPlayer creates a player with a single empty hand at the original bet.
func NewPlayer(name string, bet int) *Player {
	return &Player{
		Name:  name,
		Bet:   bet,
		Hands: []*Hand{NewHand(bet)},
	}
}

// Split reports whether the player has split this round.
func (p *Player) Split() bool {
	return len(p.Hands) > 1
}

// CanSurrender reports whether the given hand may still be surrendered:
// two cards, player unsplit, hand live.
func (p *Player) CanSurrender(h *Hand) bool {
	return h.FirstTurn() && !p.Split() && !h.Standing()
}

// insertHand places h immediately after position i in the hand list.
func (p *Player) insertHand(i int, h *Hand) {
	p.Hands = append(p.Hands, nil)
	copy(p.Hands[i+2:], p.Hands[i+1:])
	p.Hands[i+1] = h
}
