package queries_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListForCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListForRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListForCourier(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, courierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListReadyUnclaimed(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListStalePending(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) CompareAndSwapStatus(
	ctx context.Context, id kernel.UUID, expected, next order.Status, courierID *kernel.UUID,
) error {
	args := m.Called(ctx, id, expected, next, courierID)
	return args.Error(0)
}

func newPendingOrder(t *testing.T, customerID, restaurantID kernel.UUID) *order.Order {
	t.Helper()

	price, err := kernel.NewMoney(1200)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Margherita", 1, price)
	require.NoError(t, err)
	fee, err := kernel.NewMoney(300)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), customerID, restaurantID,
		[]order.Item{item}, "12 Baker St", order.PaymentMethodCash, fee, "")
	require.NoError(t, err)
	return aggregate
}

func newOrderInStatus(
	t *testing.T, customerID, restaurantID kernel.UUID, courierID *kernel.UUID, status order.Status,
) *order.Order {
	t.Helper()

	price, err := kernel.NewMoney(1200)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Margherita", 1, price)
	require.NoError(t, err)
	fee, err := kernel.NewMoney(300)
	require.NoError(t, err)
	now := time.Now().UTC()

	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), customerID, restaurantID, courierID,
		[]order.Item{item}, price, fee, price.Add(fee),
		"12 Baker St", order.PaymentMethodCash, order.PaymentStatusUnpaid, "",
		status, now.Add(-time.Hour), now)
	require.NoError(t, err)
	return aggregate
}
