package commands

import (
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// notificationFor builds the observer notification for an order's current
// status.
func notificationFor(o *order.Order, message string) ports.Notification {
	return ports.Notification{
		OrderID:    o.ID(),
		CustomerID: o.CustomerID(),
		Status:     o.Status(),
		Message:    message,
		OccurredAt: time.Now(),
	}
}
