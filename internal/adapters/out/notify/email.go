// Package notify provides the notification channel adapters: email, SMS and
// push. Deliveries are simulated by structured log output; swapping in a real
// provider only touches this package.
package notify

import (
	"context"

	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/rs/zerolog"
)

// EmailObserver delivers order notifications to a customer's email address.
type EmailObserver struct {
	address string
	log     zerolog.Logger
}

// NewEmailObserver creates an email channel for the given address.
func NewEmailObserver(address string, log zerolog.Logger) (*EmailObserver, error) {
	if address == "" {
		return nil, errs.NewValueIsRequiredError("address")
	}

	return &EmailObserver{
		address: address,
		log:     log,
	}, nil
}

// Name identifies the channel.
func (o *EmailObserver) Name() string {
	return "email"
}

// Notify delivers the notification.
func (o *EmailObserver) Notify(_ context.Context, n ports.Notification) error {
	o.log.Info().
		Str("channel", o.Name()).
		Str("to", o.address).
		Str("order_id", n.OrderID.String()).
		Str("status", n.Status.String()).
		Time("occurred_at", n.OccurredAt).
		Msg(n.Message)
	return nil
}
