package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// Notification carries the facts of one order status change to observers.
// It is a plain value: observers receive a copy and cannot affect the order.
type Notification struct {
	OrderID    kernel.UUID
	CustomerID kernel.UUID
	Status     order.Status
	Message    string
	OccurredAt time.Time
}

// NotificationObserver is one delivery channel for order status
// notifications. Implementations must not mutate the notification and should
// treat delivery as best-effort: a returned error is logged by the publisher,
// never propagated to the order workflow.
type NotificationObserver interface {
	// Name identifies the channel, e.g. "email" or "sms".
	Name() string

	// Notify delivers the notification over this channel.
	Notify(ctx context.Context, notification Notification) error
}

// ObserverFactory builds the notification channels applicable to a customer.
// Every customer gets email and SMS by default; a customer without a phone
// number gets no SMS channel.
type ObserverFactory interface {
	ObserversFor(c *customer.Customer) []NotificationObserver
}
