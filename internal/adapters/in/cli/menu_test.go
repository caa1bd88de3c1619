package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"ordering/internal/adapters/in/cli"
	"ordering/internal/adapters/out/memstore"
	"ordering/internal/adapters/out/notify"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/domain/services"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMenu(t *testing.T, script string) (*cli.Menu, *bytes.Buffer) {
	t.Helper()

	inventory := memstore.NewInventory()
	orders := memstore.NewOrderRepository()
	customers := memstore.NewCustomerRepository()
	dispatcher := services.NewNotificationDispatcher(nil)
	factory := notify.NewObserverFactory(zerolog.Nop())
	selector := services.NewShippingSelector()

	phone, err := product.NewProduct(kernel.NewUUID(), "Smartphone",
		product.CategoryElectronics, 25000.0, 180, 10)
	require.NoError(t, err)
	jeans, err := product.NewProduct(kernel.NewUUID(), "Jeans",
		product.CategoryClothing, 1200.0, 600, 30)
	require.NoError(t, err)
	require.NoError(t, inventory.Add(t.Context(), phone))
	require.NoError(t, inventory.Add(t.Context(), jeans))

	var out bytes.Buffer
	menu := cli.NewMenu(
		strings.NewReader(script),
		&out,
		commands.NewRegisterCustomerCommandHandler(customers),
		commands.NewCreateOrderCommandHandler(orders, customers, inventory,
			inventory, dispatcher, factory),
		commands.NewConfirmOrderCommandHandler(orders, selector, dispatcher),
		commands.NewShipOrderCommandHandler(orders, dispatcher),
		commands.NewDeliverOrderCommandHandler(orders, dispatcher),
		commands.NewCancelOrderCommandHandler(orders, inventory, dispatcher),
		queries.NewGetOrderQueryHandler(orders),
		queries.NewGetCustomerOrdersQueryHandler(orders),
		queries.NewListProductsQueryHandler(inventory, inventory),
	)

	return menu, &out
}

func TestMenu_Run(t *testing.T) {
	t.Run("should exit on option zero", func(t *testing.T) {
		menu, out := newMenu(t, "0\n")

		require.NoError(t, menu.Run(t.Context()))
		assert.Contains(t, out.String(), "Goodbye!")
	})

	t.Run("should stop silently when input ends", func(t *testing.T) {
		menu, _ := newMenu(t, "")
		require.NoError(t, menu.Run(t.Context()))
	})

	t.Run("should require registration before placing an order", func(t *testing.T) {
		menu, out := newMenu(t, "4\n0\n")

		require.NoError(t, menu.Run(t.Context()))
		assert.Contains(t, out.String(), "Register a customer first.")
	})

	t.Run("should place an order from a browsed cart", func(t *testing.T) {
		script := strings.Join([]string{
			"1",               // register customer
			"Ada", "ada@example.com", "+90-555-0001", "Izmir", "Regional",
			"2",               // browse products
			"", "1", "2",      // no filter, pick first product, quantity 2
			"3",               // view cart
			"",                // keep all lines
			"4",               // place order
			"n",               // not urgent
			"5",               // my orders
			"0",               // exit
		}, "\n") + "\n"

		menu, out := newMenu(t, script)

		require.NoError(t, menu.Run(t.Context()))

		text := out.String()
		assert.Contains(t, text, "welcome, Ada")
		assert.Contains(t, text, "Smartphone x2 added to cart.")
		assert.Contains(t, text, "Cart total: 50000.00")
		assert.Contains(t, text, "Order placed.")
		assert.Contains(t, text, "Created")
	})

	t.Run("should filter the catalog by category", func(t *testing.T) {
		script := strings.Join([]string{
			"2", "Clothing", "", // browse with filter, skip adding
			"0",
		}, "\n") + "\n"

		menu, out := newMenu(t, script)

		require.NoError(t, menu.Run(t.Context()))

		text := out.String()
		assert.Contains(t, text, "Jeans")
		assert.NotContains(t, text, "Smartphone")
	})

	t.Run("should report domain errors without stopping the loop", func(t *testing.T) {
		script := strings.Join([]string{
			"1",
			"Ada", "ada@example.com", "", "Izmir", "Regional",
			"2", "", "1", "99", // more than the available stock
			"4", "n",
			"0",
		}, "\n") + "\n"

		menu, out := newMenu(t, script)

		require.NoError(t, menu.Run(t.Context()))

		text := out.String()
		assert.Contains(t, text, "insufficient stock")
		assert.Contains(t, text, "Goodbye!")
	})

	t.Run("should reject actions on an unknown order", func(t *testing.T) {
		script := "6\n" + kernel.NewUUID().String() + "\n2\n0\n"

		menu, out := newMenu(t, script)

		require.NoError(t, menu.Run(t.Context()))
		assert.Contains(t, out.String(), "Error:")
	})
}
