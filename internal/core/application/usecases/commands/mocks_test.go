package commands_test

import (
	"context"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var (
	_ ports.OrderRepository    = (*MockOrderRepository)(nil)
	_ ports.CustomerRepository = (*MockCustomerRepository)(nil)
	_ ports.ProductCatalog     = (*MockProductCatalog)(nil)
	_ ports.InventoryLedger    = (*MockInventoryLedger)(nil)
	_ ports.ObserverFactory    = (*MockObserverFactory)(nil)
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInShippedStatus(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductCatalog) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductCatalog) List(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductCatalog) ListByCategory(ctx context.Context, c product.Category) ([]*product.Product, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

type MockInventoryLedger struct{ mock.Mock }

func (m *MockInventoryLedger) SetStock(ctx context.Context, productID kernel.UUID, quantity int) error {
	args := m.Called(ctx, productID, quantity)
	return args.Error(0)
}

func (m *MockInventoryLedger) Reserve(ctx context.Context, productID kernel.UUID, quantity int) (int, error) {
	args := m.Called(ctx, productID, quantity)
	return args.Int(0), args.Error(1)
}

func (m *MockInventoryLedger) Release(ctx context.Context, productID kernel.UUID, quantity int) (int, error) {
	args := m.Called(ctx, productID, quantity)
	return args.Int(0), args.Error(1)
}

func (m *MockInventoryLedger) Query(ctx context.Context, productID kernel.UUID) (int, error) {
	args := m.Called(ctx, productID)
	return args.Int(0), args.Error(1)
}

type MockObserverFactory struct{ mock.Mock }

func (m *MockObserverFactory) ObserversFor(c *customer.Customer) []ports.NotificationObserver {
	args := m.Called(c)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]ports.NotificationObserver)
}

type recordingObserver struct {
	name     string
	received []ports.Notification
}

func (r *recordingObserver) Name() string { return r.name }

func (r *recordingObserver) Notify(_ context.Context, n ports.Notification) error {
	r.received = append(r.received, n)
	return nil
}
