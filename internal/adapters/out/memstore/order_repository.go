package memstore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// ErrConcurrentModification is returned when an Update carries an aggregate
// whose history does not extend the stored one: another writer got there
// first and the caller must re-read and retry.
var ErrConcurrentModification = errors.New("order was modified concurrently")

// OrderRepository is the in-memory order store. Aggregates are stored and
// returned as independent copies, so callers never share mutable state; a
// history prefix check on Update serializes conflicting transitions of the
// same order.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[kernel.UUID]*order.Order
	seq    []kernel.UUID // order IDs in insertion order
}

// NewOrderRepository creates an empty order repository.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders: make(map[kernel.UUID]*order.Order),
	}
}

// Add persists a new order. Fails when the identifier is already taken.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	snapshot, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[snapshot.ID()]; ok {
		return errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("order %s already exists", snapshot.ID()))
	}

	r.orders[snapshot.ID()] = snapshot
	r.seq = append(r.seq, snapshot.ID())
	return nil
}

// Update persists changes to an existing order. The incoming aggregate's
// history must extend the stored history, otherwise the update is rejected
// with ErrConcurrentModification.
func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	snapshot, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.orders[snapshot.ID()]
	if !ok {
		return errs.NewObjectNotFoundError("orderID", snapshot.ID())
	}

	if !extendsHistory(stored.History(), snapshot.History()) {
		return ErrConcurrentModification
	}

	r.orders[snapshot.ID()] = snapshot
	return nil
}

// Get retrieves an order by its identifier. The returned aggregate is a copy.
func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	stored, ok := r.orders[id]
	r.mu.RUnlock()

	if !ok {
		return nil, errs.NewObjectNotFoundError("orderID", id)
	}
	return cloneOrder(stored)
}

// GetByCustomer retrieves all orders of one customer, oldest first.
func (r *OrderRepository) GetByCustomer(_ context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*order.Order, 0)
	for _, id := range r.seq {
		stored := r.orders[id]
		if !stored.CustomerID().IsEqual(customerID) {
			continue
		}

		snapshot, err := cloneOrder(stored)
		if err != nil {
			return nil, err
		}
		orders = append(orders, snapshot)
	}
	return orders, nil
}

// GetAllInShippedStatus retrieves all orders currently in transit, oldest
// first.
func (r *OrderRepository) GetAllInShippedStatus(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*order.Order, 0)
	for _, id := range r.seq {
		stored := r.orders[id]
		if stored.Status() != order.StatusShipped {
			continue
		}

		snapshot, err := cloneOrder(stored)
		if err != nil {
			return nil, err
		}
		orders = append(orders, snapshot)
	}
	return orders, nil
}

// cloneOrder rehydrates an independent copy of the aggregate.
func cloneOrder(o *order.Order) (*order.Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		o.ID(),
		o.CustomerID(),
		o.Items(),
		o.Destination(),
		o.IsUrgent(),
		o.Status(),
		o.ShippingPlan(),
		o.TrackingNumber(),
		o.CreatedAt(),
		o.History(),
	)
}

// extendsHistory reports whether next starts with the whole of prev. Equal
// histories count as extending: idempotent re-writes are allowed.
func extendsHistory(prev, next []order.StatusChange) bool {
	if len(next) < len(prev) {
		return false
	}
	for i := range prev {
		if prev[i].Status() != next[i].Status() || !prev[i].At().Equal(next[i].At()) {
			return false
		}
	}
	return true
}
