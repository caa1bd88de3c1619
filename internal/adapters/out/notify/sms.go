package notify

import (
	"context"

	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/rs/zerolog"
)

// SMSObserver delivers order notifications to a customer's phone number.
type SMSObserver struct {
	phone string
	log   zerolog.Logger
}

// NewSMSObserver creates an SMS channel for the given phone number.
func NewSMSObserver(phone string, log zerolog.Logger) (*SMSObserver, error) {
	if phone == "" {
		return nil, errs.NewValueIsRequiredError("phone")
	}

	return &SMSObserver{
		phone: phone,
		log:   log,
	}, nil
}

// Name identifies the channel.
func (o *SMSObserver) Name() string {
	return "sms"
}

// Notify delivers the notification.
func (o *SMSObserver) Notify(_ context.Context, n ports.Notification) error {
	o.log.Info().
		Str("channel", o.Name()).
		Str("to", o.phone).
		Str("order_id", n.OrderID.String()).
		Str("status", n.Status.String()).
		Time("occurred_at", n.OccurredAt).
		Msg(n.Message)
	return nil
}
