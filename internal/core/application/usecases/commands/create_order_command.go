package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ItemInput is a line item as submitted by the storefront: the catalog
// reference plus the price snapshot taken at checkout time. Unit prices are
// client-snapshot values; totals are never trusted from the client and are
// recomputed server-side.
type ItemInput struct {
	MenuItemID     kernel.UUID
	Name           string
	Quantity       int
	UnitPriceCents int64
}

// CreateOrderCommand represents a customer checkout: which restaurant, which
// items, where to deliver, and how to pay.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, restaurantID, items,
//	    "12 Baker Street", order.PaymentMethodCard, "ring twice")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	customerID      kernel.UUID
	restaurantID    kernel.UUID
	items           []ItemInput
	deliveryAddress string
	paymentMethod   order.PaymentMethod
	notes           string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command for a customer checkout.
// Validates identifiers, a non-empty item list, a non-blank address, and the
// payment method. Per-item validation (quantity, price) happens when the
// handler builds the order aggregate.
func NewCreateOrderCommand(
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	items []ItemInput,
	deliveryAddress string,
	paymentMethod order.PaymentMethod,
	notes string,
) (CreateOrderCommand, error) {
	if err := customerID.Validate(); err != nil {
		return CreateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("customerId", err)
	}
	if err := restaurantID.Validate(); err != nil {
		return CreateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("restaurantId", err)
	}
	if len(items) == 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("items")
	}
	if deliveryAddress == "" {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("deliveryAddress")
	}
	if err := paymentMethod.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}

	itemsCopy := make([]ItemInput, len(items))
	copy(itemsCopy, items)

	return CreateOrderCommand{
		customerID:      customerID,
		restaurantID:    restaurantID,
		items:           itemsCopy,
		deliveryAddress: deliveryAddress,
		paymentMethod:   paymentMethod,
		notes:           notes,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// RestaurantID returns the target restaurant's identifier.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Items returns the submitted line items.
func (c CreateOrderCommand) Items() []ItemInput {
	return c.items
}

// DeliveryAddress returns the free-text delivery destination.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// PaymentMethod returns how the customer pays.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// Notes returns the optional customer notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}
