package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// ExpireStalePendingCommandHandler cancels stale pending orders. Each
// candidate is cancelled with an individual compare-and-swap on
// (pending -> cancelled); losing a swap means the restaurant confirmed the
// order in the meantime, which is exactly the preferred outcome, so lost
// races are skipped rather than retried.
type ExpireStalePendingCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewExpireStalePendingCommandHandler creates a handler for the expiry sweep.
func NewExpireStalePendingCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) ExpireStalePendingCommandHandler {
	return ExpireStalePendingCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "expire_stale_pending_handler"),
	}
}

// Handle cancels every pending order older than the command's max age and
// returns the number of orders it actually expired.
func (h ExpireStalePendingCommandHandler) Handle(ctx context.Context, cmd ExpireStalePendingCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	repo := h.uowFactory.Create().OrderRepository()

	cutoff := time.Now().UTC().Add(-cmd.MaxAge())
	stale, err := repo.ListStalePending(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, aggregate := range stale {
		swapErr := repo.CompareAndSwapStatus(ctx, aggregate.ID(), order.StatusPending, order.StatusCancelled, nil)
		if errors.Is(swapErr, errs.ErrObjectConflict) {
			continue
		}
		if swapErr != nil {
			return expired, swapErr
		}

		expired++
		event := order.NewStatusChangedEvent(aggregate.ID(), order.StatusPending, order.StatusCancelled)
		if pubErr := h.publisher.PublishStatusChanged(ctx, event); pubErr != nil {
			h.logger.WarnContext(ctx, "status changed event publish failed",
				"order_id", aggregate.ID().String(), "error", pubErr)
		}
	}

	return expired, nil
}
