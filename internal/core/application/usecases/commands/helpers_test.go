package commands_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"

	"github.com/stretchr/testify/require"
)

func newTestCustomer(t *testing.T, zone kernel.Zone) *customer.Customer {
	t.Helper()

	destination, err := kernel.NewDestination("Bursa", zone)
	require.NoError(t, err)

	c, err := customer.NewCustomer(kernel.NewUUID(), "Ada",
		"ada@example.com", "+90-555-0001", destination)
	require.NoError(t, err)

	return c
}

func newTestProduct(t *testing.T, name string, price float64, weightGrams int) *product.Product {
	t.Helper()

	p, err := product.NewProduct(kernel.NewUUID(), name,
		product.CategoryElectronics, price, weightGrams, 100)
	require.NoError(t, err)

	return p
}

func newTestOrder(t *testing.T, c *customer.Customer, p *product.Product, quantity int, urgent bool) *order.Order {
	t.Helper()

	item, err := order.NewItemFromProduct(p, quantity)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), c.ID(),
		[]order.Item{item}, c.Destination(), urgent)
	require.NoError(t, err)

	return o
}

func confirmedTestOrder(t *testing.T, c *customer.Customer, p *product.Product, quantity int) *order.Order {
	t.Helper()

	o := newTestOrder(t, c, p, quantity, false)
	plan, err := order.NewShippingPlan(order.MethodEconomic, 20.0, o.CreatedAt().Add(120*time.Hour))
	require.NoError(t, err)
	require.NoError(t, o.Confirm(plan))

	return o
}
