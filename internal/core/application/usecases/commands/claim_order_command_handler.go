package commands

import (
	"context"
	"errors"
	"log/slog"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// ClaimOrderCommandHandler performs the atomic claim. The in-memory aggregate
// validates that claiming is legal from the observed status; the store's
// compare-and-swap on (status = ready) is what actually serializes racing
// couriers. A losing courier gets AlreadyClaimedError and is expected to
// re-list and pick a different order, not retry this one.
type ClaimOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewClaimOrderCommandHandler creates a handler for courier claims.
func NewClaimOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "claim_order_handler"),
	}
}

// Handle processes the claim and returns the claimed order with the courier
// bound.
//
// Error surface: ObjectNotFoundError for unknown orders,
// AlreadyClaimedError when another courier holds the order or the
// compare-and-swap lost the race, and InvalidTransitionError when the order
// is not yet ready (or was cancelled before it ever became ready).
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	repo := h.uowFactory.Create().OrderRepository()

	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	previous := aggregate.Status()
	if rejection := aggregate.Claim(cmd.CourierID()); rejection != nil {
		// An order that already carries a courier was won by someone else;
		// anything else (not ready yet, cancelled first) is a plain
		// transition failure.
		if aggregate.Courier() != nil {
			return nil, errs.NewAlreadyClaimedError(cmd.OrderID().String())
		}
		return nil, rejectionToError(rejection)
	}

	err = repo.CompareAndSwapStatus(ctx, cmd.OrderID(), order.StatusReady, order.StatusPickedUp, ptrTo(cmd.CourierID()))
	if errors.Is(err, errs.ErrObjectConflict) {
		return nil, errs.NewAlreadyClaimedError(cmd.OrderID().String())
	}
	if err != nil {
		return nil, err
	}

	event := order.NewStatusChangedEvent(aggregate.ID(), previous, aggregate.Status())
	if pubErr := h.publisher.PublishStatusChanged(ctx, event); pubErr != nil {
		h.logger.WarnContext(ctx, "status changed event publish failed",
			"order_id", aggregate.ID().String(),
			"old_status", previous.String(),
			"new_status", aggregate.Status().String(),
			"error", pubErr)
	}

	return aggregate, nil
}

func ptrTo[T any](v T) *T {
	return &v
}
