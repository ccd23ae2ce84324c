package blackjack

// Total returns the best blackjack total for the given cards: the highest
// total not exceeding 21 if one exists, else the minimal total over 21.
// Every Ace is first counted as 11, then re-counted as 1 while the total
// busts, one Ace at a time. Dealer and player hands share this rule.
func Total(cards []Card) int {
	total := 0
	aces := 0
	for _, c := range cards {
		total += c.Value()
		if c.IsAce() {
			aces++
		}
	}
	for aces > 0 && total > 21 {
		total -= 10
		aces--
	}
	return total
}

// IsSoft reports whether the total still counts an Ace as 11, i.e.
// the hand can absorb a ten-value card without busting on that Ace.
func IsSoft(cards []Card) bool {
	total := 0
	aces := 0
	for _, c := range cards {
		total += c.Value()
		if c.IsAce() {
			aces++
		}
	}
	for aces > 0 && total > 21 {
		total -= 10
		aces--
	}
	return aces > 0
}
