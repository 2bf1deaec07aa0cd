package commands

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for customer checkout.
// Verifies the restaurant against the catalog, prices the order server-side
// with the configured delivery fee, confirms prepaid card charges with the
// payment collaborator, and persists the order in pending status.
type CreateOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	catalog     ports.RestaurantCatalog
	payments    ports.PaymentGateway
	deliveryFee kernel.Money
	logger      *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// The delivery fee is the fixed per-order fee added to every subtotal.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.RestaurantCatalog,
	payments ports.PaymentGateway,
	deliveryFee kernel.Money,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		catalog:     catalog,
		payments:    payments,
		deliveryFee: deliveryFee,
		logger:      logger.With("component", "create_order_handler"),
	}
}

// Handle processes the checkout command and returns the created order.
//
// The subtotal and total are recomputed here from the submitted item
// snapshots; client-sent totals are never trusted. Payment confirmation is
// informational: a failed or unreachable charge marks the payment status but
// never blocks creation, and cash orders simply stay unpaid.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	known, err := h.catalog.Exists(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}
	if !known {
		return nil, errs.NewObjectNotFoundError("restaurantId", cmd.RestaurantID().String())
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		price, priceErr := kernel.NewMoney(input.UnitPriceCents)
		if priceErr != nil {
			return nil, priceErr
		}
		item, itemErr := order.NewItem(input.MenuItemID, input.Name, input.Quantity, price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.CustomerID(),
		cmd.RestaurantID(),
		items,
		cmd.DeliveryAddress(),
		cmd.PaymentMethod(),
		h.deliveryFee,
		cmd.Notes(),
	)
	if err != nil {
		return nil, err
	}

	if cmd.PaymentMethod() == order.PaymentMethodCard {
		charged, chargeErr := h.payments.ConfirmPrepaid(ctx, aggregate.ID(), aggregate.Total())
		switch {
		case chargeErr != nil:
			h.logger.WarnContext(ctx, "payment confirmation unreachable",
				"order_id", aggregate.ID().String(), "error", chargeErr)
			aggregate.MarkPaymentFailed()
		case charged:
			aggregate.MarkPaid()
		default:
			aggregate.MarkPaymentFailed()
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
