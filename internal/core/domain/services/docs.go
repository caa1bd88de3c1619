// Package services contains stateless domain services that coordinate
// business operations across aggregates.
//
// ShippingSelector chooses a shipping strategy for an order at confirmation
// time: urgent orders get the fastest applicable strategy, standard orders
// the cheapest, and orders no strategy can serve are rejected.
//
// NotificationDispatcher fans order status notifications out to the channels
// subscribed per customer, best-effort and in subscription order.
package services
