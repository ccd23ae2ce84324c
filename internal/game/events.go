package game

import (
	"time"

	"github.com/lox/blackjack21/blackjack"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for round domain events
const (
	EventTypeRoundStart   EventType = "round_start"
	EventTypePlayerAction EventType = "player_action"
	EventTypeDealerTurn   EventType = "dealer_turn"
	EventTypeRoundEnd     EventType = "round_end"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event that occurs during a round
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// RoundStartEvent is published once the initial deal is complete.
type RoundStartEvent struct {
	Players   []*Player
	Upcard    blackjack.Card
	timestamp time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundStartEvent creates a new round start event
func NewRoundStartEvent(players []*Player, upcard blackjack.Card) RoundStartEvent {
	return RoundStartEvent{
		Players:   players,
		Upcard:    upcard,
		timestamp: time.Now(),
	}
}

// PlayerActionEvent is published when a player acts on a hand. Card is set
// for actions that dealt one (hit, double down).
type PlayerActionEvent struct {
	Player    *Player
	Hand      *Hand
	Action    Action
	Card      *blackjack.Card
	timestamp time.Time
}

func (e PlayerActionEvent) EventType() EventType { return EventTypePlayerAction }
func (e PlayerActionEvent) Timestamp() time.Time { return e.timestamp }

// NewPlayerActionEvent creates a new player action event
func NewPlayerActionEvent(player *Player, hand *Hand, action Action, card *blackjack.Card) PlayerActionEvent {
	return PlayerActionEvent{
		Player:    player,
		Hand:      hand,
		Action:    action,
		Card:      card,
		timestamp: time.Now(),
	}
}

// DealerTurnEvent is published when the dealer's hand is revealed, after
// any drawing is done. A dealt natural publishes it too, with just the two
// dealt cards.
type DealerTurnEvent struct {
	Cards     []blackjack.Card
	Total     int
	Bust      bool
	timestamp time.Time
}

func (e DealerTurnEvent) EventType() EventType { return EventTypeDealerTurn }
func (e DealerTurnEvent) Timestamp() time.Time { return e.timestamp }

// NewDealerTurnEvent creates a new dealer turn event
func NewDealerTurnEvent(cards []blackjack.Card, total int, bust bool) DealerTurnEvent {
	copied := make([]blackjack.Card, len(cards))
	copy(copied, cards)
	return DealerTurnEvent{
		Cards:     copied,
		Total:     total,
		Bust:      bust,
		timestamp: time.Now(),
	}
}

// RoundEndEvent is published after the dealer has played and every hand
// has its result.
type RoundEndEvent struct {
	Players     []*Player
	DealerCards []blackjack.Card
	DealerTotal int
	timestamp   time.Time
}

func (e RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }
func (e RoundEndEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundEndEvent creates a new round end event
func NewRoundEndEvent(players []*Player, dealerCards []blackjack.Card, dealerTotal int) RoundEndEvent {
	cards := make([]blackjack.Card, len(dealerCards))
	copy(cards, dealerCards)
	return RoundEndEvent{
		Players:     players,
		DealerCards: cards,
		DealerTotal: dealerTotal,
		timestamp:   time.Now(),
	}
}

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory event bus implementation
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
