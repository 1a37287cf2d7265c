package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is returned when an operation is not legal in the current state
	ErrInvalidTransition = errors.New("invalid state transition")
	// ErrUnknownUpgrade is returned when a level-up choice index is out of range
	ErrUnknownUpgrade = errors.New("unknown upgrade")
)

func invalid(op string, from State) error {
	return fmt.Errorf("%w: %s while %s", ErrInvalidTransition, op, from)
}
