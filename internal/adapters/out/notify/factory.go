package notify

import (
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/ports"

	"github.com/rs/zerolog"
)

var _ ports.ObserverFactory = (*ObserverFactory)(nil)

// ObserverFactory builds the default notification channels for a customer:
// email always, SMS when a phone number is on file.
type ObserverFactory struct {
	log zerolog.Logger
}

// NewObserverFactory creates the default channel factory.
func NewObserverFactory(log zerolog.Logger) *ObserverFactory {
	return &ObserverFactory{log: log}
}

// ObserversFor returns the channels applicable to the customer.
func (f *ObserverFactory) ObserversFor(c *customer.Customer) []ports.NotificationObserver {
	if c == nil {
		return nil
	}

	observers := make([]ports.NotificationObserver, 0, 2)

	if email, err := NewEmailObserver(c.Email(), f.log); err == nil {
		observers = append(observers, email)
	}
	if c.Phone() != "" {
		if sms, err := NewSMSObserver(c.Phone(), f.log); err == nil {
			observers = append(observers, sms)
		}
	}

	return observers
}
