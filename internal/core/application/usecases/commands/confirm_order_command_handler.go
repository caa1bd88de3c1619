package commands

import (
	"context"
	"fmt"
	"time"

	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
)

// ConfirmOrderCommandHandler handles order confirmation: it runs shipping
// strategy selection and moves the order from Created to Confirmed with the
// selected plan attached.
//
// When no strategy can serve the order the confirmation is aborted before
// anything is persisted and the order stays in Created status.
type ConfirmOrderCommandHandler struct {
	orderRepo  ports.OrderRepository
	selector   services.ShippingSelector
	dispatcher *services.NotificationDispatcher
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
func NewConfirmOrderCommandHandler(
	orderRepo ports.OrderRepository,
	selector services.ShippingSelector,
	dispatcher *services.NotificationDispatcher,
) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		orderRepo:  orderRepo,
		selector:   selector,
		dispatcher: dispatcher,
	}
}

// Handle processes the order confirmation command.
func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	ord, err := h.orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	plan, err := h.selector.Select(ord, time.Now())
	if err != nil {
		return err
	}

	if err = ord.Confirm(plan); err != nil {
		return err
	}

	if err = h.orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	h.dispatcher.Publish(ctx, notificationFor(ord,
		fmt.Sprintf("your order has been confirmed: %s shipping for %.2f, estimated delivery %s",
			plan.Method(), plan.Cost(), plan.ETA().Format(time.RFC1123))))

	return nil
}
