package game

import (
	"errors"
	"fmt"
)

// ErrInvalidPlayerData is returned by NewTable when a seat has an empty
// name or a non-positive bet.
var ErrInvalidPlayerData = errors.New("players must have a name and a positive bet")

// InvalidActionError reports an operation invoked in the wrong phase, or
// with no hand left to act on. It is a protocol violation by the caller,
// never swallowed by the table.
type InvalidActionError struct {
	Action Action
	Phase  Phase
}

func (e *InvalidActionError) Error() string {
	return fmt.Sprintf("cannot %s during %s", e.Action, e.Phase)
}

// PlayError reports an action that is legal for the phase but not for the
// current hand's state: doubling after a hit, splitting unequal cards,
// surrendering after a split, or acting on a standing hand.
type PlayError struct {
	Player string
	Action Action
	Reason string
}

func (e *PlayError) Error() string {
	return fmt.Sprintf("%s cannot %s: %s", e.Player, e.Action, e.Reason)
}

// Reasons used in PlayError messages.
const (
	reasonStanding     = "hand is already standing"
	reasonNotFirstTurn = "not on first turn"
	reasonAfterSplit   = "not after splitting"
	reasonNotPair      = "cards are not of equal value"
)
