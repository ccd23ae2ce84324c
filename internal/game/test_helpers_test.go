package game

import (
	"fmt"

	"github.com/lox/blackjack21/blackjack"
)

// scriptedSource deals a fixed card order so scenarios land exactly where
// a test wants them. Reset rewinds to the top of the script.
type scriptedSource struct {
	cards  []blackjack.Card
	next   int
	resets int
}

func newScriptedSource(cards ...string) *scriptedSource {
	return &scriptedSource{cards: mustCards(cards...)}
}

func mustCards(strs ...string) []blackjack.Card {
	cards := make([]blackjack.Card, len(strs))
	for i, s := range strs {
		card, err := blackjack.ParseCard(s)
		if err != nil {
			panic(fmt.Sprintf("bad card %q in script: %v", s, err))
		}
		cards[i] = card
	}
	return cards
}

func (s *scriptedSource) Draw() (blackjack.Card, error) {
	if s.next >= len(s.cards) {
		return blackjack.Card{}, blackjack.ErrNoCards
	}
	card := s.cards[s.next]
	s.next++
	return card, nil
}

func (s *scriptedSource) Penetration() float64 {
	if len(s.cards) == 0 {
		return 0
	}
	return float64(s.next) / float64(len(s.cards))
}

func (s *scriptedSource) Remaining() int {
	return len(s.cards) - s.next
}

func (s *scriptedSource) Reset() {
	s.next = 0
	s.resets++
}

// eventRecorder captures published events for assertions.
type eventRecorder struct {
	events []GameEvent
}

func (r *eventRecorder) OnEvent(event GameEvent) {
	r.events = append(r.events, event)
}

func (r *eventRecorder) types() []EventType {
	types := make([]EventType, len(r.events))
	for i, e := range r.events {
		types[i] = e.EventType()
	}
	return types
}
