package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeliverOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	buyer := newTestCustomer(t, kernel.ZoneRegional)
	laptop := newTestProduct(t, "Laptop", 1500.0, 2200)
	ord := confirmedTestOrder(t, buyer, laptop, 1)
	require.NoError(t, ord.Ship(order.NewTrackingNumber()))

	cmd, err := commands.NewDeliverOrderCommand(ord.ID())
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	mock.InOrder(
		orders.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		orders.On("Update", ctx, ord).Return(nil).Once(),
	)

	h := commands.NewDeliverOrderCommandHandler(orders, services.NewNotificationDispatcher(nil))

	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.StatusDelivered, ord.Status())
	orders.AssertExpectations(t)
}

func TestDeliverOrderCommandHandler_Handle_NotShipped(t *testing.T) {
	ctx := t.Context()
	buyer := newTestCustomer(t, kernel.ZoneRegional)
	laptop := newTestProduct(t, "Laptop", 1500.0, 2200)
	ord := confirmedTestOrder(t, buyer, laptop, 1)

	cmd, err := commands.NewDeliverOrderCommand(ord.ID())
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	orders.On("Get", ctx, ord.ID()).Return(ord, nil).Once()

	h := commands.NewDeliverOrderCommandHandler(orders, services.NewNotificationDispatcher(nil))

	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidTransition)
	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
