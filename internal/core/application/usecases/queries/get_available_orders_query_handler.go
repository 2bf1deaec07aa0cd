package queries

import (
	"context"
	"fmt"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// GetAvailableOrdersQueryHandler serves the claimable queue for couriers.
type GetAvailableOrdersQueryHandler struct {
	orderRepository ports.OrderRepository
}

func NewGetAvailableOrdersQueryHandler(orderRepository ports.OrderRepository) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{orderRepository: orderRepository}
}

// Handle returns the claimable queue. The listing is advisory: a courier may
// still lose the claim to a concurrent rival even for an order shown here.
func (h GetAvailableOrdersQueryHandler) Handle(
	ctx context.Context, query GetAvailableOrdersQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregates, err := h.orderRepository.ListReadyUnclaimed(ctx)
	if err != nil {
		return nil, fmt.Errorf("list available orders: %w", err)
	}

	return aggregates, nil
}
