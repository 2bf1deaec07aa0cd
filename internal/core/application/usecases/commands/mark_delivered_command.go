package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand represents the bound courier completing a delivery.
type MarkDeliveredCommand struct {
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a delivery-completion command for the
// given order/courier pair. Both identifiers must be valid UUIDs.
func NewMarkDeliveredCommand(orderID, courierID kernel.UUID) (MarkDeliveredCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkDeliveredCommand{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	if err := courierID.Validate(); err != nil {
		return MarkDeliveredCommand{}, errs.NewValueIsInvalidErrorWithCause("courierId", err)
	}

	return MarkDeliveredCommand{
		orderID:   orderID,
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkDeliveredCommandIsNotConstructed if validation fails.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being delivered.
func (c MarkDeliveredCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the identifier of the reporting courier.
func (c MarkDeliveredCommand) CourierID() kernel.UUID {
	return c.courierID
}
