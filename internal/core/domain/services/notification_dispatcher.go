package services

import (
	"context"
	"log/slog"
	"sync"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
)

// NotificationDispatcher is a domain service that fans order status
// notifications out to the channels subscribed for each customer.
//
// Business rules:
//   - Subscriptions are per customer and keyed by channel name; subscribing
//     the same channel twice is a no-op
//   - Channels are notified in subscription order
//   - Delivery is best-effort: a failing channel is logged and the remaining
//     channels are still notified, the order workflow never sees the error
//
// The dispatcher is safe for concurrent use.
type NotificationDispatcher struct {
	mu        sync.RWMutex
	observers map[kernel.UUID][]ports.NotificationObserver
	log       *slog.Logger
}

// NewNotificationDispatcher creates a NotificationDispatcher. A nil logger
// falls back to slog.Default.
func NewNotificationDispatcher(log *slog.Logger) *NotificationDispatcher {
	if log == nil {
		log = slog.Default()
	}
	return &NotificationDispatcher{
		observers: make(map[kernel.UUID][]ports.NotificationObserver),
		log:       log,
	}
}

// Subscribe registers a notification channel for a customer. Subscribing a
// channel whose name is already registered for that customer is a no-op, so
// the operation is safe to repeat.
func (d *NotificationDispatcher) Subscribe(customerID kernel.UUID, observer ports.NotificationObserver) {
	if observer == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, existing := range d.observers[customerID] {
		if existing.Name() == observer.Name() {
			return
		}
	}
	d.observers[customerID] = append(d.observers[customerID], observer)
}

// Unsubscribe removes the named channel from a customer's subscriptions.
// Unknown names are ignored.
func (d *NotificationDispatcher) Unsubscribe(customerID kernel.UUID, name string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	subscribed := d.observers[customerID]
	for i, observer := range subscribed {
		if observer.Name() == name {
			d.observers[customerID] = append(subscribed[:i:i], subscribed[i+1:]...)
			return
		}
	}
}

// Channels returns the names of the channels subscribed for a customer, in
// subscription order.
func (d *NotificationDispatcher) Channels(customerID kernel.UUID) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.observers[customerID]))
	for _, observer := range d.observers[customerID] {
		names = append(names, observer.Name())
	}
	return names
}

// Publish notifies every channel subscribed for the notification's customer,
// in subscription order. Channel failures are logged and skipped.
func (d *NotificationDispatcher) Publish(ctx context.Context, notification ports.Notification) {
	d.mu.RLock()
	subscribed := make([]ports.NotificationObserver, len(d.observers[notification.CustomerID]))
	copy(subscribed, d.observers[notification.CustomerID])
	d.mu.RUnlock()

	for _, observer := range subscribed {
		if err := observer.Notify(ctx, notification); err != nil {
			d.log.Error("notification delivery failed",
				"channel", observer.Name(),
				"orderID", notification.OrderID.String(),
				"status", notification.Status.String(),
				"error", err)
		}
	}
}
