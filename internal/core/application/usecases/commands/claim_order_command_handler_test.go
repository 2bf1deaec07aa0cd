package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func courierMatcher(courierID kernel.UUID) any {
	return mock.MatchedBy(func(id *kernel.UUID) bool {
		return id != nil && id.IsEqual(courierID)
	})
}

func TestClaimOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	aggregate := newOrderInStatus(t, kernel.NewUUID(), kernel.NewUUID(), nil, order.StatusReady)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	repo.On("CompareAndSwapStatus", ctx, aggregate.ID(), order.StatusReady, order.StatusPickedUp, courierMatcher(courierID)).
		Return(nil).Once()

	publisher := new(MockOrderEventPublisher)
	publisher.On("PublishStatusChanged", ctx, mock.AnythingOfType("order.StatusChangedEvent")).
		Return(nil).Once()

	cmd, err := commands.NewClaimOrderCommand(aggregate.ID(), courierID)
	require.NoError(t, err)

	h := commands.NewClaimOrderCommandHandler(readOnlyFactory(repo), publisher, testLogger())
	claimed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.StatusPickedUp, claimed.Status())
	require.NotNil(t, claimed.Courier())
	require.True(t, claimed.Courier().IsEqual(courierID))
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestClaimOrderCommandHandler_Handle_AlreadyClaimedInStore(t *testing.T) {
	ctx := t.Context()
	rival := kernel.NewUUID()
	aggregate := newOrderInStatus(t, kernel.NewUUID(), kernel.NewUUID(), &rival, order.StatusPickedUp)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()

	cmd, err := commands.NewClaimOrderCommand(aggregate.ID(), kernel.NewUUID())
	require.NoError(t, err)

	h := commands.NewClaimOrderCommandHandler(readOnlyFactory(repo), new(MockOrderEventPublisher), testLogger())
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrAlreadyClaimed)
	repo.AssertNotCalled(t, "CompareAndSwapStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Two couriers read the order as ready; the one whose swap loses gets
// AlreadyClaimedError.
func TestClaimOrderCommandHandler_Handle_LostRaceMapsToAlreadyClaimed(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	aggregate := newOrderInStatus(t, kernel.NewUUID(), kernel.NewUUID(), nil, order.StatusReady)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	repo.On("CompareAndSwapStatus", ctx, aggregate.ID(), order.StatusReady, order.StatusPickedUp, courierMatcher(courierID)).
		Return(errs.NewObjectConflictError("orderId", aggregate.ID().String())).Once()

	cmd, err := commands.NewClaimOrderCommand(aggregate.ID(), courierID)
	require.NoError(t, err)

	h := commands.NewClaimOrderCommandHandler(readOnlyFactory(repo), new(MockOrderEventPublisher), testLogger())
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrAlreadyClaimed)
}

func TestClaimOrderCommandHandler_Handle_NotReadyYet(t *testing.T) {
	ctx := t.Context()
	aggregate := newOrderInStatus(t, kernel.NewUUID(), kernel.NewUUID(), nil, order.StatusPreparing)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()

	cmd, err := commands.NewClaimOrderCommand(aggregate.ID(), kernel.NewUUID())
	require.NoError(t, err)

	h := commands.NewClaimOrderCommandHandler(readOnlyFactory(repo), new(MockOrderEventPublisher), testLogger())
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestClaimOrderCommandHandler_Handle_CancelledBeforeReady(t *testing.T) {
	ctx := t.Context()
	aggregate := newOrderInStatus(t, kernel.NewUUID(), kernel.NewUUID(), nil, order.StatusCancelled)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()

	cmd, err := commands.NewClaimOrderCommand(aggregate.ID(), kernel.NewUUID())
	require.NoError(t, err)

	h := commands.NewClaimOrderCommandHandler(readOnlyFactory(repo), new(MockOrderEventPublisher), testLogger())
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}
