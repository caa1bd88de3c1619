package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
)

// CompleteDeliveriesCommandHandler walks all shipped orders and marks those
// whose estimated delivery time has passed as delivered.
type CompleteDeliveriesCommandHandler struct {
	orderRepo  ports.OrderRepository
	dispatcher *services.NotificationDispatcher
}

// NewCompleteDeliveriesCommandHandler creates a handler for the delivery
// completion batch operation.
func NewCompleteDeliveriesCommandHandler(
	orderRepo ports.OrderRepository,
	dispatcher *services.NotificationDispatcher,
) CompleteDeliveriesCommandHandler {
	return CompleteDeliveriesCommandHandler{
		orderRepo:  orderRepo,
		dispatcher: dispatcher,
	}
}

// Handle processes the delivery completion command.
// Orders still in transit are left untouched; each completed order is
// persisted and its customer notified. One order's failure does not hold up
// the rest of the batch: the failure is collected and the walk continues, so
// an order that lost a concurrent transition is simply retried on the next
// run.
func (h *CompleteDeliveriesCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveriesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	shipped, err := h.orderRepo.GetAllInShippedStatus(ctx)
	if err != nil {
		return err
	}

	var failures []error
	now := time.Now()
	for _, ord := range shipped {
		if plan := ord.ShippingPlan(); plan == nil || plan.ETA().After(now) {
			continue
		}

		if err = ord.Deliver(); err != nil {
			failures = append(failures, fmt.Errorf("order %s: %w", ord.ID(), err))
			continue
		}

		if err = h.orderRepo.Update(ctx, ord); err != nil {
			failures = append(failures, fmt.Errorf("order %s: %w", ord.ID(), err))
			continue
		}

		h.dispatcher.Publish(ctx, notificationFor(ord, "your order has been delivered"))
	}

	return errors.Join(failures...)
}
