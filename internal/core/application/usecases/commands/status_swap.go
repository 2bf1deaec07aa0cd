package commands

import (
	"context"
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// rejectionToError translates a state machine rejection into the error
// taxonomy surfaced at the HTTP boundary. Role mismatches become
// UnauthorizedRoleError (403); everything else becomes InvalidTransitionError
// (400) carrying both statuses and the machine's reason code.
func rejectionToError(rejection *order.Rejection) error {
	if rejection.Reason == order.ReasonUnauthorizedRole {
		return errs.NewUnauthorizedRoleError(
			rejection.Actor.String(),
			fmt.Sprintf("move order from %s to %s", rejection.Current, rejection.Requested),
		)
	}
	return errs.NewInvalidTransitionError(
		rejection.Current.String(),
		rejection.Requested.String(),
		string(rejection.Reason),
	)
}

// swapOrderStatus runs one read-validate-write cycle against the store's
// compare-and-swap, retrying the full cycle exactly once after a lost race.
//
// The aggregate passed in must be freshly loaded; on success it is returned
// with the transition applied. A request whose target status is already the
// stored status yields ObjectConflictError: the caller observed the
// transition as already applied and can treat that as success if it wants.
func swapOrderStatus(
	ctx context.Context,
	repo ports.OrderRepository,
	aggregate *order.Order,
	requested order.Status,
	actor order.Role,
) (*order.Order, order.Status, error) {
	orderID := aggregate.ID()

	for attempt := 0; attempt < 2; attempt++ {
		previous := aggregate.Status()

		if previous == requested {
			return nil, "", errs.NewObjectConflictErrorWithCause(
				"orderId", orderID.String(),
				fmt.Errorf("status is already %s", requested),
			)
		}

		if rejection := aggregate.TransitionTo(requested, actor); rejection != nil {
			return nil, "", rejectionToError(rejection)
		}

		err := repo.CompareAndSwapStatus(ctx, orderID, previous, requested, nil)
		if err == nil {
			return aggregate, previous, nil
		}
		if !errors.Is(err, errs.ErrObjectConflict) {
			return nil, "", err
		}

		// Lost the race: reload and re-validate once against the new status.
		aggregate, err = repo.Get(ctx, orderID)
		if err != nil {
			return nil, "", err
		}
	}

	return nil, "", errs.NewObjectConflictErrorWithCause(
		"orderId", orderID.String(),
		fmt.Errorf("status changed concurrently while requesting %s", requested),
	)
}

// ensureActorOwnsOrder verifies that the acting customer or restaurant is the
// one referenced by the order. Couriers are checked against the courier
// binding by the delivery commands instead.
func ensureActorOwnsOrder(aggregate *order.Order, actorID kernel.UUID, role order.Role) error {
	switch role {
	case order.RoleCustomer:
		if !aggregate.CustomerID().IsEqual(actorID) {
			return errs.NewUnauthorizedRoleError(role.String(), "act on another customer's order")
		}
	case order.RoleRestaurant:
		if !aggregate.RestaurantID().IsEqual(actorID) {
			return errs.NewUnauthorizedRoleError(role.String(), "act on another restaurant's order")
		}
	default:
		return errs.NewUnauthorizedRoleError(role.String(), "change order status directly")
	}
	return nil
}
