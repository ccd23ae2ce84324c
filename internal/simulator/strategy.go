package simulator

import (
	"fmt"

	"github.com/lox/blackjack21/blackjack"
	"github.com/lox/blackjack21/internal/game"
)

// Strategy decides the next action for an acting hand. Implementations
// must only return actions that are legal for the hand they are shown:
// the simulator plays whatever comes back.
type Strategy interface {
	Name() string
	Next(h *game.Hand, upcard blackjack.Card) game.Action
}

// ForName returns the named strategy, one of "basic", "mimic" or "stand".
func ForName(name string) (Strategy, error) {
	switch name {
	case "basic":
		return BasicStrategy{}, nil
	case "mimic":
		return MimicDealerStrategy{}, nil
	case "stand":
		return AlwaysStandStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown strategy: %s", name)
	}
}

// BasicStrategy is a simplified basic-strategy chart: split Aces and
// eights, double hard 10 and 11, hit stiff totals against a strong
// up-card and stand on them against a weak one.
type BasicStrategy struct{}

func (BasicStrategy) Name() string { return "basic" }

func (BasicStrategy) Next(h *game.Hand, upcard blackjack.Card) game.Action {
	total := h.Total()

	if h.CanSplit() {
		switch h.Cards[0].Value() {
		case 11, 8:
			return game.ActionSplit
		}
	}

	if h.CanDouble() && !h.Soft() && (total == 10 || total == 11) {
		return game.ActionDouble
	}

	if h.Soft() {
		if total >= 19 {
			return game.ActionStand
		}
		return game.ActionHit
	}

	switch {
	case total >= 17:
		return game.ActionStand
	case total >= 13:
		// Stiff hand: stand against a weak up-card, hit into a strong one.
		if upcard.Value() <= 6 {
			return game.ActionStand
		}
		return game.ActionHit
	case total == 12:
		if upcard.Value() >= 4 && upcard.Value() <= 6 {
			return game.ActionStand
		}
		return game.ActionHit
	default:
		return game.ActionHit
	}
}

// MimicDealerStrategy plays the dealer's own rule: hit below 17, stand at
// or above it.
type MimicDealerStrategy struct{}

func (MimicDealerStrategy) Name() string { return "mimic" }

func (MimicDealerStrategy) Next(h *game.Hand, upcard blackjack.Card) game.Action {
	if h.Total() < 17 {
		return game.ActionHit
	}
	return game.ActionStand
}

// AlwaysStandStrategy stands on everything. Useful as a baseline: it never
// busts, so every loss comes from the dealer outdrawing it.
type AlwaysStandStrategy struct{}

func (AlwaysStandStrategy) Name() string { return "stand" }

func (AlwaysStandStrategy) Next(h *game.Hand, upcard blackjack.Card) game.Action {
	return game.ActionStand
}
