package game

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack21/blackjack"
)

// reshufflePenetration is the fraction of the shoe that may be dealt
// before the table forces a reshuffle between rounds.
const reshufflePenetration = 0.75

// CardSource supplies cards on demand. Draw fails with an error matching
// blackjack.ErrNoCards when exhausted; the table recovers once per draw by
// calling Reset and retrying. blackjack.Shoe satisfies this, and tests
// substitute scripted sources for deterministic deals.
type CardSource interface {
	Draw() (blackjack.Card, error)
	Penetration() float64
	Remaining() int
	Reset()
}

// Phase is the table's position in the round lifecycle.
type Phase int

const (
	PhaseInit Phase = iota
	PhasePlayersTurn
	PhaseDealerTurn
	PhaseRoundOver
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "init"
	case PhasePlayersTurn:
		return "players' turn"
	case PhaseDealerTurn:
		return "dealer's turn"
	case PhaseRoundOver:
		return "round over"
	default:
		return "unknown"
	}
}

// Action is a round-mutating operation, used in errors and events.
type Action int

const (
	ActionDeal Action = iota
	ActionHit
	ActionStand
	ActionDouble
	ActionSplit
	ActionSurrender
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case ActionDeal:
		return "deal"
	case ActionHit:
		return "hit"
	case ActionStand:
		return "stand"
	case ActionDouble:
		return "double down"
	case ActionSplit:
		return "split"
	case ActionSurrender:
		return "surrender"
	default:
		return "unknown"
	}
}

// Seat is a player registration: the (name, bet) pair a round is built
// from, and rebuilt from when the table is reused for another round.
type Seat struct {
	Name string
	Bet  int
}

// cursor addresses the acting hand in the flattened (player, hand) turn
// sequence.
type cursor struct {
	player int
	hand   int
}

// Table is the round state machine. It owns the players, the dealer and
// the turn cursor, and is the only component that mutates them. Operations
// run synchronously to completion; when the last hand concludes, dealer
// play and result scoring happen inside the same call. In a concurrent
// setting the whole table wants a single mutex, since every operation
// touches the cursor together with hand and dealer state.
type Table struct {
	players []*Player
	seats   []Seat
	dealer  *Dealer
	source  CardSource
	phase   Phase
	cursor  *cursor

	logger *log.Logger
	events EventBus
}

// NewTable creates a table for the given seats drawing from source.
// It returns ErrInvalidPlayerData if any seat has an empty name or a
// non-positive bet, and panics on missing collaborators.
func NewTable(seats []Seat, source CardSource, opts ...TableOption) (*Table, error) {
	if source == nil {
		panic("card source is required")
	}
	if len(seats) == 0 {
		panic("at least one player required")
	}

	cfg := defaultTableConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	players := make([]*Player, 0, len(seats))
	for i, seat := range seats {
		if seat.Name == "" || seat.Bet <= 0 {
			return nil, fmt.Errorf("seat %d (%q, bet %d): %w", i, seat.Name, seat.Bet, ErrInvalidPlayerData)
		}
		players = append(players, NewPlayer(seat.Name, seat.Bet))
	}

	return &Table{
		players: players,
		seats:   append([]Seat(nil), seats...),
		dealer:  NewDealer(cfg.dealerName, cfg.hitSoft17),
		source:  source,
		phase:   PhaseInit,
		logger:  cfg.logger,
		events:  cfg.events,
	}, nil
}

// Phase returns the table's current phase.
func (t *Table) Phase() Phase {
	return t.phase
}

// Players returns the ordered player list.
func (t *Table) Players() []*Player {
	return t.players
}

// DealerName returns the dealer's name.
func (t *Table) DealerName() string {
	return t.dealer.Name
}

// DealerUpcard returns the dealer's visible card, once dealt.
func (t *Table) DealerUpcard() (blackjack.Card, bool) {
	return t.dealer.Upcard()
}

// DealerTotal returns what players are entitled to see of the dealer's
// total: the up-card's value while hands are still being played, the full
// total once the round reaches the dealer or is over.
func (t *Table) DealerTotal() int {
	if t.phase == PhaseDealerTurn || t.phase == PhaseRoundOver {
		return t.dealer.Total()
	}
	if up, ok := t.dealer.Upcard(); ok {
		return up.Value()
	}
	return 0
}

// DealerCards returns the dealer cards visible at the current phase:
// only the up-card before the dealer plays, the whole hand after.
func (t *Table) DealerCards() []blackjack.Card {
	if t.phase == PhaseDealerTurn || t.phase == PhaseRoundOver {
		return t.dealer.Cards
	}
	if up, ok := t.dealer.Upcard(); ok {
		return []blackjack.Card{up}
	}
	return nil
}

// DealerBust reports whether the dealer busted. Meaningful once the round
// is over.
func (t *Table) DealerBust() bool {
	return t.dealer.Bust()
}

// Current returns the player and hand the cursor points at, or ok=false
// when no hand is waiting to act.
func (t *Table) Current() (*Player, *Hand, bool) {
	if t.cursor == nil {
		return nil, nil, false
	}
	p := t.players[t.cursor.player]
	return p, p.Hands[t.cursor.hand], true
}

// StartRound deals a fresh round. Legal from INIT or ROUND_OVER only; a
// restart from ROUND_OVER first clears the dealer, rebuilds every player
// from their registered seat, and reshuffles the source if its penetration
// has passed the threshold. Dealing is two round-robin passes: each player
// hand, then the dealer, twice. A dealer natural ends the round before any
// player acts.
func (t *Table) StartRound() error {
	if t.phase != PhaseInit && t.phase != PhaseRoundOver {
		return &InvalidActionError{Action: ActionDeal, Phase: t.phase}
	}
	if t.phase == PhaseRoundOver {
		t.resetRound()
	}

	needed := 2 * (len(t.players) + 1)
	if t.source.Remaining() < needed {
		t.logger.Debug("not enough cards for the deal, reshuffling", "remaining", t.source.Remaining(), "needed", needed)
		t.source.Reset()
		if t.source.Remaining() < needed {
			return fmt.Errorf("deck of %d cards cannot deal %d players: %w", t.source.Remaining(), len(t.players), blackjack.ErrNoCards)
		}
	}

	for pass := 0; pass < 2; pass++ {
		for _, p := range t.players {
			for _, h := range p.Hands {
				card, err := t.draw()
				if err != nil {
					return err
				}
				h.AddCard(card)
			}
		}
		card, err := t.draw()
		if err != nil {
			return err
		}
		t.dealer.AddCard(card)
	}

	up, _ := t.dealer.Upcard()
	t.logger.Debug("round dealt", "players", len(t.players), "upcard", up)
	t.publish(NewRoundStartEvent(t.players, up))

	if t.dealer.Natural() {
		// House blackjack: nobody gets a turn and the dealer draws
		// nothing further.
		t.logger.Debug("dealer natural, round over")
		t.cursor = nil
		t.phase = PhaseDealerTurn
		t.publish(NewDealerTurnEvent(t.dealer.Cards, t.dealer.Total(), false))
		t.finishRound()
		return nil
	}

	t.phase = PhasePlayersTurn
	t.cursor = &cursor{}
	if _, h, ok := t.Current(); ok && h.Standing() {
		return t.nextHand()
	}
	return nil
}

// Hit deals one card to the acting hand and returns it. Advances the turn
// if the card finishes the hand.
func (t *Table) Hit() (blackjack.Card, error) {
	p, h, err := t.actingHand(ActionHit)
	if err != nil {
		return blackjack.Card{}, err
	}

	card, err := t.draw()
	if err != nil {
		return blackjack.Card{}, err
	}
	h.AddCard(card)

	t.logger.Debug("hit", "player", p.Name, "card", card, "total", h.Total())
	t.publish(NewPlayerActionEvent(p, h, ActionHit, &card))

	if h.Standing() {
		return card, t.nextHand()
	}
	return card, nil
}

// Stand finishes the acting hand voluntarily and advances the turn.
func (t *Table) Stand() error {
	p, h, err := t.actingHand(ActionStand)
	if err != nil {
		return err
	}

	h.Stand()
	t.logger.Debug("stand", "player", p.Name, "total", h.Total())
	t.publish(NewPlayerActionEvent(p, h, ActionStand, nil))

	return t.nextHand()
}

// Surrender gives up the acting hand. Only legal on a two-card hand of an
// unsplit player.
func (t *Table) Surrender() error {
	p, h, err := t.actingHand(ActionSurrender)
	if err != nil {
		return err
	}
	if !h.FirstTurn() {
		return &PlayError{Player: p.Name, Action: ActionSurrender, Reason: reasonNotFirstTurn}
	}
	if p.Split() {
		return &PlayError{Player: p.Name, Action: ActionSurrender, Reason: reasonAfterSplit}
	}

	h.surrender()
	t.logger.Debug("surrender", "player", p.Name)
	t.publish(NewPlayerActionEvent(p, h, ActionSurrender, nil))

	return t.nextHand()
}

// DoubleDown doubles the acting hand's bet in exchange for exactly one
// more card, then force-stands it. Only legal on a two-card hand. The card
// is drawn before the bet is touched, so a failed draw leaves the hand
// unchanged.
func (t *Table) DoubleDown() (blackjack.Card, error) {
	p, h, err := t.actingHand(ActionDouble)
	if err != nil {
		return blackjack.Card{}, err
	}
	if !h.CanDouble() {
		return blackjack.Card{}, &PlayError{Player: p.Name, Action: ActionDouble, Reason: reasonNotFirstTurn}
	}

	card, err := t.draw()
	if err != nil {
		return blackjack.Card{}, err
	}
	h.double()
	h.AddCard(card)
	h.Stand()

	t.logger.Debug("double down", "player", p.Name, "card", card, "bet", h.Bet, "total", h.Total())
	t.publish(NewPlayerActionEvent(p, h, ActionDouble, &card))

	return card, t.nextHand()
}

// Split divides the acting two-card pair into two hands, each keeping one
// of the originals, each dealt one fresh card, the sibling inserted right
// after the current hand at the player's original bet. Both replacement
// cards are drawn before any hand is touched, so a short shoe fails the
// split cleanly. Split Aces take no further cards.
func (t *Table) Split() error {
	p, h, err := t.actingHand(ActionSplit)
	if err != nil {
		return err
	}
	if !h.FirstTurn() {
		return &PlayError{Player: p.Name, Action: ActionSplit, Reason: reasonNotFirstTurn}
	}
	if !h.Pair() {
		return &PlayError{Player: p.Name, Action: ActionSplit, Reason: reasonNotPair}
	}

	first, err := t.draw()
	if err != nil {
		return err
	}
	second, err := t.draw()
	if err != nil {
		return err
	}

	moved := h.Cards[1]
	h.Cards = h.Cards[:1]
	sibling := NewHand(p.Bet)
	sibling.AddCard(moved)
	p.insertHand(t.cursor.hand, sibling)

	h.AddCard(first)
	sibling.AddCard(second)

	if moved.IsAce() {
		// Split Aces receive one card each and are done.
		h.Stand()
		sibling.Stand()
	}

	t.logger.Debug("split", "player", p.Name, "hands", len(p.Hands))
	t.publish(NewPlayerActionEvent(p, h, ActionSplit, nil))

	if h.Standing() {
		return t.nextHand()
	}
	return nil
}

// actingHand checks phase and cursor, returning the hand the action
// applies to.
func (t *Table) actingHand(action Action) (*Player, *Hand, error) {
	if t.phase != PhasePlayersTurn || t.cursor == nil {
		return nil, nil, &InvalidActionError{Action: action, Phase: t.phase}
	}
	p, h, _ := t.Current()
	if h.Standing() {
		return nil, nil, &PlayError{Player: p.Name, Action: action, Reason: reasonStanding}
	}
	return p, h, nil
}

// nextHand advances the cursor to the next non-standing hand in
// (player, hand) order. When none remains the round cascades: the dealer
// plays out and every hand is scored, all within this call.
func (t *Table) nextHand() error {
	playerIdx, handIdx := t.cursor.player, t.cursor.hand
	for ; playerIdx < len(t.players); playerIdx++ {
		hands := t.players[playerIdx].Hands
		for ; handIdx < len(hands); handIdx++ {
			if !hands[handIdx].Standing() {
				t.cursor = &cursor{player: playerIdx, hand: handIdx}
				return nil
			}
		}
		handIdx = 0
	}

	t.cursor = nil
	t.phase = PhaseDealerTurn

	// Reaching dealer play with a live hand means the cursor logic is
	// broken, not that the caller misused the table.
	for _, p := range t.players {
		for _, h := range p.Hands {
			if !h.Standing() {
				panic(fmt.Sprintf("dealer playing while %s still has a live hand", p.Name))
			}
		}
	}

	if err := t.dealer.Play(retrySource{t}); err != nil {
		return err
	}
	t.logger.Debug("dealer played", "total", t.dealer.Total(), "bust", t.dealer.Bust())
	t.publish(NewDealerTurnEvent(t.dealer.Cards, t.dealer.Total(), t.dealer.Bust()))

	t.finishRound()
	return nil
}

// finishRound scores every hand and closes the round.
func (t *Table) finishRound() {
	dealerNatural := t.dealer.Natural()
	dealerBust := t.dealer.Bust()
	dealerTotal := t.dealer.Total()

	for _, p := range t.players {
		for _, h := range p.Hands {
			h.Result = handResult(p, h, dealerNatural, dealerBust, dealerTotal)
			t.logger.Debug("hand scored", "player", p.Name, "total", h.Total(), "result", h.Result)
		}
	}

	t.phase = PhaseRoundOver
	t.publish(NewRoundEndEvent(t.players, t.dealer.Cards, dealerTotal))
}

// handResult scores one hand against the dealer. A natural blackjack sits
// outside the ordinary total comparison: it only ever pushes against
// another natural, and a dealer natural beats any non-natural 21.
func handResult(p *Player, h *Hand, dealerNatural, dealerBust bool, dealerTotal int) Result {
	natural := h.FirstTurn() && h.Total() == 21 && !p.Split()

	switch {
	case h.Surrendered():
		return ResultSurrender
	case h.Bust():
		return ResultPlayerBust
	case natural && dealerNatural:
		return ResultPush
	case natural:
		return ResultBlackjack
	case dealerNatural:
		return ResultDealerWin
	case dealerBust:
		return ResultDealerBust
	case h.Total() > dealerTotal:
		return ResultPlayerWin
	case h.Total() < dealerTotal:
		return ResultDealerWin
	default:
		return ResultPush
	}
}

// resetRound rebuilds the table for reuse: dealer hand cleared, every
// player recreated from their seat (splits and doubled bets from the prior
// round discarded), and the shoe reshuffled once it is three quarters
// dealt.
func (t *Table) resetRound() {
	t.dealer.ClearHand()
	for i, seat := range t.seats {
		t.players[i] = NewPlayer(seat.Name, seat.Bet)
	}
	if t.source.Penetration() > reshufflePenetration {
		t.logger.Debug("penetration threshold passed, reshuffling", "penetration", t.source.Penetration())
		t.source.Reset()
	}
	t.phase = PhaseInit
}

// draw takes a card from the source, recovering once from exhaustion by
// reshuffling and retrying. A second failure means the deck is too small
// for the table and propagates.
func (t *Table) draw() (blackjack.Card, error) {
	card, err := t.source.Draw()
	if err == nil {
		return card, nil
	}
	if !errors.Is(err, blackjack.ErrNoCards) {
		return blackjack.Card{}, err
	}

	t.logger.Debug("shoe exhausted mid-round, reshuffling")
	t.source.Reset()

	card, err = t.source.Draw()
	if err != nil {
		return blackjack.Card{}, fmt.Errorf("deck too small for this table: %w", err)
	}
	return card, nil
}

func (t *Table) publish(event GameEvent) {
	if t.events != nil {
		t.events.Publish(event)
	}
}

// retrySource wraps the table's draw path, so the dealer's own drawing
// gets the same reshuffle-once recovery as player draws.
type retrySource struct {
	t *Table
}

func (r retrySource) Draw() (blackjack.Card, error) { return r.t.draw() }
func (r retrySource) Penetration() float64          { return r.t.source.Penetration() }
func (r retrySource) Remaining() int                { return r.t.source.Remaining() }
func (r retrySource) Reset()                        { r.t.source.Reset() }
