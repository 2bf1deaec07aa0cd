package commands_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExpireStalePendingCommandHandler_Handle_ExpiresStaleOrders(t *testing.T) {
	ctx := t.Context()
	first := newPendingOrder(t, kernel.NewUUID(), kernel.NewUUID())
	second := newPendingOrder(t, kernel.NewUUID(), kernel.NewUUID())

	repo := new(MockOrderRepository)
	repo.On("ListStalePending", ctx, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{first, second}, nil).Once()
	repo.On("CompareAndSwapStatus", ctx, first.ID(), order.StatusPending, order.StatusCancelled, (*kernel.UUID)(nil)).
		Return(nil).Once()
	repo.On("CompareAndSwapStatus", ctx, second.ID(), order.StatusPending, order.StatusCancelled, (*kernel.UUID)(nil)).
		Return(nil).Once()

	publisher := new(MockOrderEventPublisher)
	publisher.On("PublishStatusChanged", ctx, mock.AnythingOfType("order.StatusChangedEvent")).
		Return(nil).Twice()

	cmd, err := commands.NewExpireStalePendingCommand(30 * time.Minute)
	require.NoError(t, err)

	h := commands.NewExpireStalePendingCommandHandler(readOnlyFactory(repo), publisher, testLogger())
	expired, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 2, expired)
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

// An order confirmed between the listing and the swap loses the race; that
// is the preferred outcome, so it is skipped, not counted, not an error.
func TestExpireStalePendingCommandHandler_Handle_SkipsConcurrentlyConfirmed(t *testing.T) {
	ctx := t.Context()
	confirmedMeanwhile := newPendingOrder(t, kernel.NewUUID(), kernel.NewUUID())
	stillStale := newPendingOrder(t, kernel.NewUUID(), kernel.NewUUID())

	repo := new(MockOrderRepository)
	repo.On("ListStalePending", ctx, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{confirmedMeanwhile, stillStale}, nil).Once()
	repo.On("CompareAndSwapStatus", ctx, confirmedMeanwhile.ID(), order.StatusPending, order.StatusCancelled, (*kernel.UUID)(nil)).
		Return(errs.NewObjectConflictError("orderId", confirmedMeanwhile.ID().String())).Once()
	repo.On("CompareAndSwapStatus", ctx, stillStale.ID(), order.StatusPending, order.StatusCancelled, (*kernel.UUID)(nil)).
		Return(nil).Once()

	publisher := new(MockOrderEventPublisher)
	publisher.On("PublishStatusChanged", ctx, mock.AnythingOfType("order.StatusChangedEvent")).
		Return(nil).Once()

	cmd, err := commands.NewExpireStalePendingCommand(30 * time.Minute)
	require.NoError(t, err)

	h := commands.NewExpireStalePendingCommandHandler(readOnlyFactory(repo), publisher, testLogger())
	expired, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 1, expired)
	repo.AssertExpectations(t)
}

func TestExpireStalePendingCommandHandler_Handle_NothingStale(t *testing.T) {
	ctx := t.Context()

	repo := new(MockOrderRepository)
	repo.On("ListStalePending", ctx, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{}, nil).Once()

	cmd, err := commands.NewExpireStalePendingCommand(30 * time.Minute)
	require.NoError(t, err)

	h := commands.NewExpireStalePendingCommandHandler(readOnlyFactory(repo), new(MockOrderEventPublisher), testLogger())
	expired, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Zero(t, expired)
}

func TestNewExpireStalePendingCommand_RejectsNonPositiveAge(t *testing.T) {
	_, err := commands.NewExpireStalePendingCommand(0)
	require.Error(t, err)
	_, err = commands.NewExpireStalePendingCommand(-time.Minute)
	require.Error(t, err)
}
