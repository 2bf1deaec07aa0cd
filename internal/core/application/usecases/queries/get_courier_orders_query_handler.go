package queries

import (
	"context"
	"fmt"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// GetCourierOrdersQueryHandler serves a courier's bound orders, narrowed to
// deliveries in flight or completed history.
type GetCourierOrdersQueryHandler struct {
	orderRepository ports.OrderRepository
}

func NewGetCourierOrdersQueryHandler(orderRepository ports.OrderRepository) GetCourierOrdersQueryHandler {
	return GetCourierOrdersQueryHandler{orderRepository: orderRepository}
}

func (h GetCourierOrdersQueryHandler) Handle(
	ctx context.Context, query GetCourierOrdersQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregates, err := h.orderRepository.ListForCourier(ctx, query.CourierID())
	if err != nil {
		return nil, fmt.Errorf("list courier orders: %w", err)
	}

	wanted := order.StatusPickedUp
	if query.Scope() == CourierOrdersScopeHistory {
		wanted = order.StatusDelivered
	}

	filtered := make([]*order.Order, 0, len(aggregates))
	for _, aggregate := range aggregates {
		if aggregate.Status() == wanted {
			filtered = append(filtered, aggregate)
		}
	}

	return filtered, nil
}
