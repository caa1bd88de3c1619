package notify

import (
	"context"

	"ordering/internal/core/ports"

	"github.com/rs/zerolog"
)

// PushObserver delivers order notifications as push messages keyed by the
// customer identifier. Unlike email and SMS it needs no contact details, so
// it can be subscribed for any customer.
type PushObserver struct {
	log zerolog.Logger
}

// NewPushObserver creates a push channel.
func NewPushObserver(log zerolog.Logger) *PushObserver {
	return &PushObserver{log: log}
}

// Name identifies the channel.
func (o *PushObserver) Name() string {
	return "push"
}

// Notify delivers the notification.
func (o *PushObserver) Notify(_ context.Context, n ports.Notification) error {
	o.log.Info().
		Str("channel", o.Name()).
		Str("customer_id", n.CustomerID.String()).
		Str("order_id", n.OrderID.String()).
		Str("status", n.Status.String()).
		Time("occurred_at", n.OccurredAt).
		Msg(n.Message)
	return nil
}
