package queries

import (
	"context"
	"fmt"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// GetCustomerOrdersQueryHandler serves a customer's order history.
type GetCustomerOrdersQueryHandler struct {
	orderRepository ports.OrderRepository
}

func NewGetCustomerOrdersQueryHandler(orderRepository ports.OrderRepository) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{orderRepository: orderRepository}
}

func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context, query GetCustomerOrdersQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregates, err := h.orderRepository.ListForCustomer(ctx, query.CustomerID())
	if err != nil {
		return nil, fmt.Errorf("list customer orders: %w", err)
	}

	return aggregates, nil
}
