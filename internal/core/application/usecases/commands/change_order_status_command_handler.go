package commands

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// ChangeOrderStatusCommandHandler orchestrates customer/restaurant status
// changes: load the order, check ownership, ask the state machine, and apply
// the accepted transition through the store's compare-and-swap.
//
// Concurrency: a lost compare-and-swap triggers exactly one reload and
// re-validation of the whole cycle. A second lost race surfaces as a
// conflict; callers re-fetch and decide. There are no in-memory locks
// anywhere on this path, so any number of replicas can run it.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
// The publisher receives a status-changed event after every accepted
// transition; its failures are logged, never propagated.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "change_order_status_handler"),
	}
}

// Handle processes the status-change command and returns the updated order.
//
// Error surface: ObjectNotFoundError for unknown orders,
// UnauthorizedRoleError for ownership or role violations,
// InvalidTransitionError when the state machine rejects the edge, and
// ObjectConflictError when the compare-and-swap loses its single retry or
// the requested status is already the stored one.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	repo := h.uowFactory.Create().OrderRepository()

	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = ensureActorOwnsOrder(aggregate, cmd.ActorID(), cmd.ActorRole()); err != nil {
		return nil, err
	}

	updated, previous, err := swapOrderStatus(ctx, repo, aggregate, cmd.Requested(), cmd.ActorRole())
	if err != nil {
		return nil, err
	}

	h.emitStatusChanged(ctx, updated, previous)
	return updated, nil
}

// emitStatusChanged publishes the event for an accepted transition.
// Best-effort: notification is not transactional with persistence.
func (h ChangeOrderStatusCommandHandler) emitStatusChanged(ctx context.Context, aggregate *order.Order, previous order.Status) {
	event := order.NewStatusChangedEvent(aggregate.ID(), previous, aggregate.Status())
	if err := h.publisher.PublishStatusChanged(ctx, event); err != nil {
		h.logger.WarnContext(ctx, "status changed event publish failed",
			"order_id", aggregate.ID().String(),
			"old_status", previous.String(),
			"new_status", aggregate.Status().String(),
			"error", err)
	}
}
