package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a status-change request originating
// from a customer or restaurant: confirming, advancing through preparation,
// or cancelling while cancellation is still legal.
//
// Cancellation is not a separate operation: it is this command with
// requested = cancelled, subject to the same forward-only rules.
type ChangeOrderStatusCommand struct {
	orderID   kernel.UUID
	requested order.Status
	actorID   kernel.UUID
	actorRole order.Role

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a status-change command.
// Validates the identifiers, that the requested status is one of the defined
// statuses, and that the actor role is valid. Whether the transition itself
// is legal is decided by the state machine in the handler.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	requested order.Status,
	actorID kernel.UUID,
	actorRole order.Role,
) (ChangeOrderStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ChangeOrderStatusCommand{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	if err := requested.Validate(); err != nil {
		return ChangeOrderStatusCommand{}, err
	}
	if err := actorID.Validate(); err != nil {
		return ChangeOrderStatusCommand{}, errs.NewValueIsInvalidErrorWithCause("actorId", err)
	}
	if err := actorRole.Validate(); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		orderID:   orderID,
		requested: requested,
		actorID:   actorID,
		actorRole: actorRole,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// NewCancelOrderCommand creates a cancellation command: sugar for a
// status-change request targeting cancelled.
func NewCancelOrderCommand(orderID, actorID kernel.UUID, actorRole order.Role) (ChangeOrderStatusCommand, error) {
	return NewChangeOrderStatusCommand(orderID, order.StatusCancelled, actorID, actorRole)
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeOrderStatusCommandIsNotConstructed if validation fails.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Requested returns the requested target status.
func (c ChangeOrderStatusCommand) Requested() order.Status {
	return c.requested
}

// ActorID returns the identifier of the acting customer or restaurant.
func (c ChangeOrderStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the role of the actor attempting the change.
func (c ChangeOrderStatusCommand) ActorRole() order.Role {
	return c.actorRole
}
