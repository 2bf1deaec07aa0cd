package commands

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// MarkDeliveredCommandHandler completes a delivery. Only the courier bound at
// claim time may report delivery; the transition itself goes through the same
// compare-and-swap path as every other status change.
type MarkDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewMarkDeliveredCommandHandler creates a handler for delivery completion.
func NewMarkDeliveredCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "mark_delivered_handler"),
	}
}

// Handle processes the delivery report and returns the delivered order.
//
// Error surface: ObjectNotFoundError for unknown orders,
// UnauthorizedRoleError when the reporting courier is not the bound one, and
// InvalidTransitionError when the order is not in picked_up status.
func (h MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	repo := h.uowFactory.Create().OrderRepository()

	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	bound := aggregate.Courier()
	if bound == nil || !bound.IsEqual(cmd.CourierID()) {
		return nil, errs.NewUnauthorizedRoleError(order.RoleCourier.String(), "deliver an order claimed by another courier")
	}

	updated, previous, err := swapOrderStatus(ctx, repo, aggregate, order.StatusDelivered, order.RoleCourier)
	if err != nil {
		return nil, err
	}

	event := order.NewStatusChangedEvent(updated.ID(), previous, updated.Status())
	if pubErr := h.publisher.PublishStatusChanged(ctx, event); pubErr != nil {
		h.logger.WarnContext(ctx, "status changed event publish failed",
			"order_id", updated.ID().String(),
			"old_status", previous.String(),
			"new_status", updated.Status().String(),
			"error", pubErr)
	}

	return updated, nil
}
