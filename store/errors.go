package store

import (
	"fmt"

	"lushlocks-backend/models"
)

// NotFoundError is returned when an update targets an id that is not in
// the collection. Removals never return it: removing something already
// absent is a no-op, and callers rely on being able to tell the two apart.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// ValidationError is returned when a create or update is missing required
// fields or carries malformed values.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvalidTransitionError is returned when an order status change violates
// the fulfillment state machine.
type InvalidTransitionError struct {
	From models.OrderStatus
	To   models.OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot change order status from %s to %s", e.From, e.To)
}
