package ports

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates. It is
// the only shared mutable resource across service replicas; all cross-request
// coordination goes through CompareAndSwapStatus.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError for unknown identifiers.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListForCustomer returns the customer's order history, newest first.
	ListForCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// ListForRestaurant returns the restaurant's order history, newest first.
	ListForRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*order.Order, error)

	// ListForCourier returns all orders bound to the courier, newest first.
	ListForCourier(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error)

	// ListReadyUnclaimed returns the claimable queue: orders in ready status
	// with no courier bound, oldest first (first-ready, first-served).
	ListReadyUnclaimed(ctx context.Context) ([]*order.Order, error)

	// ListStalePending returns pending orders created before the cutoff,
	// oldest first. Used by the expiry job.
	ListStalePending(ctx context.Context, cutoff time.Time) ([]*order.Order, error)

	// CompareAndSwapStatus applies the only status mutation the store allows:
	// set status to next if and only if the stored status still equals
	// expected. When courierID is non-nil it is bound in the same atomic
	// write (the claim case).
	//
	// Returns nil on success, errs.ObjectConflictError when the stored status
	// no longer matches expected (a concurrent writer won), and
	// errs.ObjectNotFoundError for unknown identifiers. The swap is atomic
	// with respect to concurrent callers across all replicas: for any number
	// of racing swaps with the same expected status, at most one succeeds.
	CompareAndSwapStatus(ctx context.Context, id kernel.UUID, expected, next order.Status, courierID *kernel.UUID) error
}
