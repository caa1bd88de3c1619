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

func TestShipOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	buyer := newTestCustomer(t, kernel.ZoneRegional)
	laptop := newTestProduct(t, "Laptop", 1500.0, 2200)
	ord := confirmedTestOrder(t, buyer, laptop, 1)

	cmd, err := commands.NewShipOrderCommand(ord.ID())
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	mock.InOrder(
		orders.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		orders.On("Update", ctx, ord).Return(nil).Once(),
	)

	dispatcher := services.NewNotificationDispatcher(nil)
	sms := &recordingObserver{name: "sms"}
	dispatcher.Subscribe(buyer.ID(), sms)

	h := commands.NewShipOrderCommandHandler(orders, dispatcher)

	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.StatusShipped, ord.Status())
	assert.Regexp(t, `^[A-Z]{2}\d{8}$`, ord.TrackingNumber())
	require.Len(t, sms.received, 1)
	assert.Contains(t, sms.received[0].Message, ord.TrackingNumber())

	orders.AssertExpectations(t)
}

func TestShipOrderCommandHandler_Handle_NotConfirmed(t *testing.T) {
	ctx := t.Context()
	buyer := newTestCustomer(t, kernel.ZoneRegional)
	laptop := newTestProduct(t, "Laptop", 1500.0, 2200)
	ord := newTestOrder(t, buyer, laptop, 1, false)

	cmd, err := commands.NewShipOrderCommand(ord.ID())
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	orders.On("Get", ctx, ord.ID()).Return(ord, nil).Once()

	h := commands.NewShipOrderCommandHandler(orders, services.NewNotificationDispatcher(nil))

	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidTransition)
	assert.Empty(t, ord.TrackingNumber())
	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestShipOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewShipOrderCommandHandler(new(MockOrderRepository),
		services.NewNotificationDispatcher(nil))

	err := h.Handle(t.Context(), commands.ShipOrderCommand{})

	require.ErrorIs(t, err, commands.ErrShipOrderCommandIsNotConstructed)
}
