package queries

import (
	"context"
	"fmt"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// GetRestaurantOrdersQueryHandler serves a restaurant's incoming orders.
type GetRestaurantOrdersQueryHandler struct {
	orderRepository ports.OrderRepository
}

func NewGetRestaurantOrdersQueryHandler(orderRepository ports.OrderRepository) GetRestaurantOrdersQueryHandler {
	return GetRestaurantOrdersQueryHandler{orderRepository: orderRepository}
}

func (h GetRestaurantOrdersQueryHandler) Handle(
	ctx context.Context, query GetRestaurantOrdersQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregates, err := h.orderRepository.ListForRestaurant(ctx, query.RestaurantID())
	if err != nil {
		return nil, fmt.Errorf("list restaurant orders: %w", err)
	}

	return aggregates, nil
}
