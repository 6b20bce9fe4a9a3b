package poker

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCard matches any *ValidationError via errors.Is.
	ErrInvalidCard = errors.New("poker: invalid card")

	// ErrHandSize matches any *InsufficientCardsError via errors.Is.
	ErrHandSize = errors.New("poker: wrong number of cards")
)

// ValidationError reports a rank or suit outside the recognized domain.
type ValidationError struct {
	// Index is the position of the offending card in the hand, or -1 for a lone card.
	Index int
	// Field is "rank", "suit" or "code".
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("card %d: invalid %s %q: %s", e.Index, e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidCard
}

// InsufficientCardsError reports a hand that does not hold exactly Want cards.
type InsufficientCardsError struct {
	Got  int
	Want int
}

func (e *InsufficientCardsError) Error() string {
	return fmt.Sprintf("hand has %d cards, want %d", e.Got, e.Want)
}

func (e *InsufficientCardsError) Is(target error) bool {
	return target == ErrHandSize
}

func invalid(field, value, reason string) *ValidationError {
	return &ValidationError{Index: -1, Field: field, Value: value, Reason: reason}
}
