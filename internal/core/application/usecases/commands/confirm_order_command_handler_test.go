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

func TestConfirmOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	buyer := newTestCustomer(t, kernel.ZoneRegional)
	laptop := newTestProduct(t, "Laptop", 1500.0, 2200)
	ord := newTestOrder(t, buyer, laptop, 1, false)

	cmd, err := commands.NewConfirmOrderCommand(ord.ID())
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	mock.InOrder(
		orders.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		orders.On("Update", ctx, ord).Return(nil).Once(),
	)

	dispatcher := services.NewNotificationDispatcher(nil)
	email := &recordingObserver{name: "email"}
	dispatcher.Subscribe(buyer.ID(), email)

	h := commands.NewConfirmOrderCommandHandler(orders, services.NewShippingSelector(), dispatcher)

	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.StatusConfirmed, ord.Status())
	require.NotNil(t, ord.ShippingPlan())
	assert.Equal(t, order.MethodEconomic, ord.ShippingPlan().Method())
	require.Len(t, email.received, 1)
	assert.Equal(t, order.StatusConfirmed, email.received[0].Status)

	orders.AssertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_NoApplicableStrategy(t *testing.T) {
	ctx := t.Context()
	buyer := newTestCustomer(t, kernel.ZoneRemote)
	laptop := newTestProduct(t, "Laptop", 1500.0, 2200)
	ord := newTestOrder(t, buyer, laptop, 1, false)

	cmd, err := commands.NewConfirmOrderCommand(ord.ID())
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	orders.On("Get", ctx, ord.ID()).Return(ord, nil).Once()

	h := commands.NewConfirmOrderCommandHandler(orders,
		services.NewShippingSelector(), services.NewNotificationDispatcher(nil))

	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrNoApplicableStrategy)
	assert.Equal(t, order.StatusCreated, ord.Status())
	assert.Nil(t, ord.ShippingPlan())
	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestConfirmOrderCommandHandler_Handle_AlreadyConfirmed(t *testing.T) {
	ctx := t.Context()
	buyer := newTestCustomer(t, kernel.ZoneRegional)
	laptop := newTestProduct(t, "Laptop", 1500.0, 2200)
	ord := confirmedTestOrder(t, buyer, laptop, 1)

	cmd, err := commands.NewConfirmOrderCommand(ord.ID())
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	orders.On("Get", ctx, ord.ID()).Return(ord, nil).Once()

	h := commands.NewConfirmOrderCommandHandler(orders,
		services.NewShippingSelector(), services.NewNotificationDispatcher(nil))

	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidTransition)
	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestConfirmOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewConfirmOrderCommandHandler(new(MockOrderRepository),
		services.NewShippingSelector(), services.NewNotificationDispatcher(nil))

	err := h.Handle(t.Context(), commands.ConfirmOrderCommand{})

	require.ErrorIs(t, err, commands.ErrConfirmOrderCommandIsNotConstructed)
}
