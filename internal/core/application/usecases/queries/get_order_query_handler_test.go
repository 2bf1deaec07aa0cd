package queries_test

import (
	"errors"
	"testing"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestGetOrderQueryHandler_Handle_CustomerReadsOwnOrder(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	aggregate := newPendingOrder(t, customerID, kernel.NewUUID())

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()

	query, err := queries.NewGetOrderQuery(aggregate.ID(), customerID, order.RoleCustomer)
	require.NoError(t, err)

	h := queries.NewGetOrderQueryHandler(repo)
	got, err := h.Handle(ctx, query)
	require.NoError(t, err)
	require.True(t, got.ID().IsEqual(aggregate.ID()))
	repo.AssertExpectations(t)
}

func TestGetOrderQueryHandler_Handle_CustomerCannotReadForeignOrder(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t, kernel.NewUUID(), kernel.NewUUID())

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()

	query, err := queries.NewGetOrderQuery(aggregate.ID(), kernel.NewUUID(), order.RoleCustomer)
	require.NoError(t, err)

	h := queries.NewGetOrderQueryHandler(repo)
	_, err = h.Handle(ctx, query)
	require.ErrorIs(t, err, errs.ErrUnauthorizedRole)
}

func TestGetOrderQueryHandler_Handle_RestaurantReadsOwnOrder(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	aggregate := newPendingOrder(t, kernel.NewUUID(), restaurantID)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()

	query, err := queries.NewGetOrderQuery(aggregate.ID(), restaurantID, order.RoleRestaurant)
	require.NoError(t, err)

	h := queries.NewGetOrderQueryHandler(repo)
	got, err := h.Handle(ctx, query)
	require.NoError(t, err)
	require.True(t, got.RestaurantID().IsEqual(restaurantID))
}

func TestGetOrderQueryHandler_Handle_CourierIsRejected(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t, kernel.NewUUID(), kernel.NewUUID())

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()

	query, err := queries.NewGetOrderQuery(aggregate.ID(), kernel.NewUUID(), order.RoleCourier)
	require.NoError(t, err)

	h := queries.NewGetOrderQueryHandler(repo)
	_, err = h.Handle(ctx, query)
	require.ErrorIs(t, err, errs.ErrUnauthorizedRole)
}

func TestGetOrderQueryHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("orderId", orderID)).Once()

	query, err := queries.NewGetOrderQuery(orderID, kernel.NewUUID(), order.RoleCustomer)
	require.NoError(t, err)

	h := queries.NewGetOrderQueryHandler(repo)
	_, err = h.Handle(ctx, query)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetOrderQueryHandler_Handle_NotConstructedQuery(t *testing.T) {
	h := queries.NewGetOrderQueryHandler(new(MockOrderRepository))
	_, err := h.Handle(t.Context(), queries.GetOrderQuery{})
	require.Error(t, err)
	require.True(t, errors.Is(err, queries.ErrGetOrderQueryIsNotConstructed))
}
