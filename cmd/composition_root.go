package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"ordering/internal/adapters/out/memstore"
	"ordering/internal/adapters/out/notify"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/domain/services"

	"github.com/rs/zerolog"
)

type CompositionRoot struct {
	inventory    *memstore.Inventory
	orderRepo    *memstore.OrderRepository
	customerRepo *memstore.CustomerRepository

	dispatcher      *services.NotificationDispatcher
	observerFactory *notify.ObserverFactory
	selector        services.ShippingSelector
}

func NewCompositionRoot(_ Config, logger *slog.Logger, notifyLog zerolog.Logger) CompositionRoot {
	return CompositionRoot{
		inventory:       memstore.NewInventory(),
		orderRepo:       memstore.NewOrderRepository(),
		customerRepo:    memstore.NewCustomerRepository(),
		dispatcher:      services.NewNotificationDispatcher(logger),
		observerFactory: notify.NewObserverFactory(notifyLog),
		selector:        services.NewShippingSelector(),
	}
}

// SeedCatalog loads the demo products into the inventory.
func (c *CompositionRoot) SeedCatalog(ctx context.Context) error {
	seed := []struct {
		name        string
		category    product.Category
		price       float64
		weightGrams int
		stock       int
	}{
		{"iPhone 15", product.CategoryElectronics, 25000, 200, 10},
		{"Samsung Galaxy S23", product.CategoryElectronics, 20000, 170, 15},
		{"AirPods Pro", product.CategoryElectronics, 4500, 60, 20},
		{"Levi's 501 Jeans", product.CategoryClothing, 1200, 600, 30},
		{"Nike Air Max", product.CategoryFootwear, 2500, 900, 12},
		{"Harry Potter Set", product.CategoryBooks, 750, 3500, 5},
		{"Protein Powder", product.CategoryHealth, 800, 1000, 25},
	}

	for _, entry := range seed {
		p, err := product.NewProduct(kernel.NewUUID(), entry.name,
			entry.category, entry.price, entry.weightGrams, entry.stock)
		if err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
		if err = c.inventory.Add(ctx, p); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
	}

	return nil
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	return commands.NewRegisterCustomerCommandHandler(c.customerRepo)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderRepo, c.customerRepo,
		c.inventory, c.inventory, c.dispatcher, c.observerFactory)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.orderRepo, c.selector, c.dispatcher)
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	return commands.NewShipOrderCommandHandler(c.orderRepo, c.dispatcher)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.orderRepo, c.dispatcher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderRepo, c.inventory, c.dispatcher)
}

func (c *CompositionRoot) CreateCompleteDeliveriesCommandHandler() commands.CompleteDeliveriesCommandHandler {
	return commands.NewCompleteDeliveriesCommandHandler(c.orderRepo, c.dispatcher)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.inventory, c.inventory)
}

func (c *CompositionRoot) CreateGetStockQueryHandler() queries.GetStockQueryHandler {
	return queries.NewGetStockQueryHandler(c.inventory)
}
