package queries

import (
	"context"
	"fmt"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// GetOrderQueryHandler serves single-order reads for owning actors.
type GetOrderQueryHandler struct {
	orderRepository ports.OrderRepository
}

func NewGetOrderQueryHandler(orderRepository ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orderRepository: orderRepository}
}

// Handle loads the order and checks that the actor owns it. Couriers do not
// read orders through this query; they use the delivery listings instead.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.orderRepository.Get(ctx, query.OrderID())
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	switch query.ActorRole() {
	case order.RoleCustomer:
		if !aggregate.CustomerID().IsEqual(query.ActorID()) {
			return nil, errs.NewUnauthorizedRoleError(string(query.ActorRole()), "read an order placed by another customer")
		}
	case order.RoleRestaurant:
		if !aggregate.RestaurantID().IsEqual(query.ActorID()) {
			return nil, errs.NewUnauthorizedRoleError(string(query.ActorRole()), "read an order belonging to another restaurant")
		}
	default:
		return nil, errs.NewUnauthorizedRoleError(string(query.ActorRole()), "read a single order")
	}

	return aggregate, nil
}
