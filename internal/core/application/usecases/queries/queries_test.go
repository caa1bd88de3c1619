package queries_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	_ ports.OrderRepository = (*MockOrderRepository)(nil)
	_ ports.ProductCatalog  = (*MockProductCatalog)(nil)
	_ ports.InventoryLedger = (*MockInventoryLedger)(nil)
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

func newShippedOrder(t *testing.T) *order.Order {
	t.Helper()

	destination, err := kernel.NewDestination("Ankara", kernel.ZoneLocal)
	require.NoError(t, err)

	item, err := order.NewItem(kernel.NewUUID(), "Laptop", 1500.0, 2200, 2)
	require.NoError(t, err)

	ord, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{item}, destination, false)
	require.NoError(t, err)

	plan, err := order.NewShippingPlan(order.MethodFast, 54.0, time.Now().Add(48*time.Hour))
	require.NoError(t, err)
	require.NoError(t, ord.Confirm(plan))
	require.NoError(t, ord.Ship("AB12345678"))

	return ord
}

func TestGetOrderQueryHandler_Handle(t *testing.T) {
	t.Run("should return the full order view", func(t *testing.T) {
		ctx := t.Context()
		ord := newShippedOrder(t)

		orders := new(MockOrderRepository)
		orders.On("Get", ctx, ord.ID()).Return(ord, nil).Once()

		query, err := queries.NewGetOrderQuery(ord.ID())
		require.NoError(t, err)

		h := queries.NewGetOrderQueryHandler(orders)
		resp, err := h.Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, ord.ID().String(), resp.ID)
		assert.Equal(t, "Shipped", resp.Status)
		assert.Equal(t, "AB12345678", resp.TrackingNumber)
		assert.Equal(t, "Fast", resp.ShippingMethod)
		assert.InDelta(t, 54.0, resp.ShippingCost, 0.001)
		assert.InDelta(t, 3000.0, resp.Subtotal, 0.001)
		assert.InDelta(t, 3054.0, resp.Total, 0.001)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "Laptop", resp.Items[0].ProductName)
		require.Len(t, resp.History, 3)
		assert.Equal(t, "Created", resp.History[0].Status)
		assert.Equal(t, "Shipped", resp.History[2].Status)
	})

	t.Run("should fail validation for a query created directly", func(t *testing.T) {
		h := queries.NewGetOrderQueryHandler(new(MockOrderRepository))

		_, err := h.Handle(t.Context(), queries.GetOrderQuery{})

		require.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
	})
}

func TestListProductsQueryHandler_Handle(t *testing.T) {
	laptop, err := product.NewProduct(kernel.NewUUID(), "Laptop",
		product.CategoryElectronics, 1500.0, 2200, 10)
	require.NoError(t, err)
	novel, err := product.NewProduct(kernel.NewUUID(), "Novel",
		product.CategoryBooks, 25.0, 400, 50)
	require.NoError(t, err)

	t.Run("should join catalog entries with stock levels", func(t *testing.T) {
		ctx := t.Context()
		catalog := new(MockProductCatalog)
		ledger := new(MockInventoryLedger)
		catalog.On("List", ctx).Return([]*product.Product{laptop, novel}, nil).Once()
		ledger.On("Query", ctx, laptop.ID()).Return(7, nil).Once()
		ledger.On("Query", ctx, novel.ID()).Return(0, nil).Once()

		h := queries.NewListProductsQueryHandler(catalog, ledger)
		resp, err := h.Handle(ctx, queries.NewListProductsQuery())

		require.NoError(t, err)
		require.Len(t, resp, 2)
		assert.Equal(t, "Laptop", resp[0].Name)
		assert.Equal(t, 7, resp[0].Available)
		assert.Equal(t, "Novel", resp[1].Name)
		assert.Zero(t, resp[1].Available)
	})

	t.Run("should filter by category", func(t *testing.T) {
		ctx := t.Context()
		catalog := new(MockProductCatalog)
		ledger := new(MockInventoryLedger)
		catalog.On("ListByCategory", ctx, product.CategoryBooks).
			Return([]*product.Product{novel}, nil).Once()
		ledger.On("Query", ctx, novel.ID()).Return(50, nil).Once()

		query, err := queries.NewListProductsByCategoryQuery(product.CategoryBooks)
		require.NoError(t, err)

		h := queries.NewListProductsQueryHandler(catalog, ledger)
		resp, err := h.Handle(ctx, query)

		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, "Books", resp[0].Category)
	})

	t.Run("should reject an unknown category", func(t *testing.T) {
		_, err := queries.NewListProductsByCategoryQuery(product.CategoryUnknown)

		require.Error(t, err)
	})
}

func TestGetCustomerOrdersQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	ord := newShippedOrder(t)

	orders := new(MockOrderRepository)
	orders.On("GetByCustomer", ctx, ord.CustomerID()).
		Return([]*order.Order{ord}, nil).Once()

	query, err := queries.NewGetCustomerOrdersQuery(ord.CustomerID())
	require.NoError(t, err)

	h := queries.NewGetCustomerOrdersQueryHandler(orders)
	resp, err := h.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, ord.ID().String(), resp[0].ID)
	assert.Equal(t, "Shipped", resp[0].Status)
	assert.Equal(t, 2, resp[0].ItemCount)
	assert.InDelta(t, 3054.0, resp[0].Total, 0.001)
}

func TestGetStockQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()

	ledger := new(MockInventoryLedger)
	ledger.On("Query", ctx, productID).Return(42, nil).Once()

	query, err := queries.NewGetStockQuery(productID)
	require.NoError(t, err)

	h := queries.NewGetStockQueryHandler(ledger)
	resp, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, productID.String(), resp.ProductID)
	assert.Equal(t, 42, resp.Available)
}
