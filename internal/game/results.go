package game

// Result is the final outcome of a single hand, assigned once when the
// round resolves. The zero value means the round is still in play.
type Result int

const (
	ResultPending Result = iota
	ResultBlackjack
	ResultPlayerWin
	ResultDealerBust
	ResultPush
	ResultDealerWin
	ResultPlayerBust
	ResultSurrender
)

// String returns the string representation of a result
func (r Result) String() string {
	switch r {
	case ResultPending:
		return "Pending"
	case ResultBlackjack:
		return "Blackjack"
	case ResultPlayerWin:
		return "Player Win"
	case ResultDealerBust:
		return "Dealer Bust"
	case ResultPush:
		return "Push"
	case ResultDealerWin:
		return "Dealer Win"
	case ResultPlayerBust:
		return "Player Bust"
	case ResultSurrender:
		return "Surrender"
	default:
		return "Unknown"
	}
}

// Won reports whether the hand beat the dealer.
func (r Result) Won() bool {
	return r == ResultBlackjack || r == ResultPlayerWin || r == ResultDealerBust
}

// Lost reports whether the hand lost to the dealer. Surrender counts as a
// loss; Push and Pending do not.
func (r Result) Lost() bool {
	return r == ResultDealerWin || r == ResultPlayerBust || r == ResultSurrender
}
