package memstore

import (
	"context"
	"fmt"
	"sync"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// CustomerRepository is the in-memory customer store. Like the order store it
// hands out independent copies of the aggregates.
type CustomerRepository struct {
	mu        sync.RWMutex
	customers map[kernel.UUID]*customer.Customer
}

// NewCustomerRepository creates an empty customer repository.
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{
		customers: make(map[kernel.UUID]*customer.Customer),
	}
}

// Add persists a new customer. Fails when the identifier is already taken.
func (r *CustomerRepository) Add(_ context.Context, aggregate *customer.Customer) error {
	snapshot, err := cloneCustomer(aggregate)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.customers[snapshot.ID()]; ok {
		return errs.NewValueIsInvalidErrorWithCause("customerID",
			fmt.Errorf("customer %s already exists", snapshot.ID()))
	}

	r.customers[snapshot.ID()] = snapshot
	return nil
}

// Update persists changes to an existing customer.
func (r *CustomerRepository) Update(_ context.Context, aggregate *customer.Customer) error {
	snapshot, err := cloneCustomer(aggregate)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.customers[snapshot.ID()]; !ok {
		return errs.NewObjectNotFoundError("customerID", snapshot.ID())
	}

	r.customers[snapshot.ID()] = snapshot
	return nil
}

// Get retrieves a customer by identifier. The returned aggregate is a copy.
func (r *CustomerRepository) Get(_ context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	stored, ok := r.customers[id]
	r.mu.RUnlock()

	if !ok {
		return nil, errs.NewObjectNotFoundError("customerID", id)
	}
	return cloneCustomer(stored)
}

func cloneCustomer(c *customer.Customer) (*customer.Customer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(
		c.ID(),
		c.Name(),
		c.Email(),
		c.Phone(),
		c.Destination(),
		c.OrderIDs(),
	)
}
