// Package game implements the core rules engine for casino Blackjack.
//
// The main type is Table, a single-round state machine that owns the
// players, the dealer and the turn cursor. It sequences the deal, the
// player decisions (hit/stand/double down/split/surrender), the dealer's
// play and the scoring of every hand.
//
// # Basic Usage
//
// Create a table over a shoe and play a round:
//
//	shoe := blackjack.NewShoe(randutil.New(42), 1)
//	t, err := game.NewTable([]game.Seat{{Name: "Alice", Bet: 100}}, shoe)
//	// Deal and act...
//	t.StartRound()
//	t.Hit()
//	t.Stand()
//	// Once Phase() == PhaseRoundOver every hand carries its Result.
//
// # Deterministic Testing
//
// Any CardSource works in place of a shoe; tests feed the table a
// scripted source so deals land exactly where a scenario wants them:
//
//	src := newScriptedSource("Th", "7d", "8s", "9c", "5h")
//	t, _ := game.NewTable(seats, src)
//
// # Architecture
//
// Ownership runs one way only: the Table owns the Dealer and Players, and
// passes the CardSource into dealer play as a parameter. Hands never reach
// back into the table; anything a hand's result depends on (the dealer's
// final total, naturals) is computed by the table at round end. The whole
// machine is synchronous: the last hand standing triggers dealer play and
// scoring inside the same call.
package game
