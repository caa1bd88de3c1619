package commands

import (
	"context"
	"fmt"

	"ordering/internal/core/domain/model/cart"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for placing an order.
// Resolves the requested products against the catalog, reserves stock
// all-or-nothing, creates the order in Created status, and notifies the
// customer's channels.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(orders, customers, catalog,
//	    ledger, dispatcher, observerFactory)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), customerID, lines, false)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	orderRepo       ports.OrderRepository
	customerRepo    ports.CustomerRepository
	catalog         ports.ProductCatalog
	ledger          ports.InventoryLedger
	dispatcher      *services.NotificationDispatcher
	observerFactory ports.ObserverFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	orderRepo ports.OrderRepository,
	customerRepo ports.CustomerRepository,
	catalog ports.ProductCatalog,
	ledger ports.InventoryLedger,
	dispatcher *services.NotificationDispatcher,
	observerFactory ports.ObserverFactory,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orderRepo:       orderRepo,
		customerRepo:    customerRepo,
		catalog:         catalog,
		ledger:          ledger,
		dispatcher:      dispatcher,
		observerFactory: observerFactory,
	}
}

// Handle processes the order placement command.
//
// Workflow:
//   - Resolve the customer and each requested product
//   - Build a cart and reject the request when it is empty
//   - Reserve stock for every line, releasing everything already reserved
//     when one line fails, so a failed placement never leaks stock
//   - Create the order with item snapshots frozen at today's prices
//   - Register the customer's default notification channels and publish the
//     creation notification
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	customer, err := h.customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	basket, err := h.buildCart(ctx, cmd.Lines())
	if err != nil {
		return err
	}
	if basket.IsEmpty() {
		return cart.ErrEmptyCart
	}

	items, err := h.reserveAndSnapshot(ctx, basket)
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), customer.ID(), items,
		customer.Destination(), cmd.IsUrgent())
	if err != nil {
		h.releaseItems(ctx, items)
		return err
	}

	if err = h.orderRepo.Add(ctx, newOrder); err != nil {
		h.releaseItems(ctx, items)
		return err
	}

	if err = customer.AddOrder(newOrder.ID()); err != nil {
		h.abandonOrder(ctx, newOrder)
		return err
	}
	if err = h.customerRepo.Update(ctx, customer); err != nil {
		h.abandonOrder(ctx, newOrder)
		return err
	}

	for _, observer := range h.observerFactory.ObserversFor(customer) {
		h.dispatcher.Subscribe(customer.ID(), observer)
	}
	h.dispatcher.Publish(ctx, notificationFor(newOrder,
		fmt.Sprintf("your order of %d items has been created", newOrder.TotalQuantity())))

	return nil
}

// buildCart resolves each requested line against the catalog and accumulates
// it into a cart, merging repeated products.
func (h *CreateOrderCommandHandler) buildCart(ctx context.Context, lines []OrderLine) (*cart.Cart, error) {
	basket := cart.NewCart()
	for _, line := range lines {
		p, err := h.catalog.Get(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if err = basket.AddItem(p, line.Quantity); err != nil {
			return nil, err
		}
	}
	return basket, nil
}

// reserveAndSnapshot reserves stock for every cart item and freezes the order
// line snapshots. Reservation is all-or-nothing: the first failure releases
// everything reserved so far and aborts.
func (h *CreateOrderCommandHandler) reserveAndSnapshot(ctx context.Context, basket *cart.Cart) ([]order.Item, error) {
	items := make([]order.Item, 0, len(basket.Items()))
	for _, cartItem := range basket.Items() {
		p := cartItem.Product()

		if _, err := h.ledger.Reserve(ctx, p.ID(), cartItem.Quantity()); err != nil {
			h.releaseItems(ctx, items)
			return nil, err
		}

		item, err := order.NewItemFromProduct(p, cartItem.Quantity())
		if err != nil {
			h.releaseItems(ctx, items)
			_, _ = h.ledger.Release(ctx, p.ID(), cartItem.Quantity())
			return nil, err
		}

		items = append(items, item)
	}
	return items, nil
}

// abandonOrder backs out an already persisted order when a later placement
// step fails: the order is cancelled in place and its reservations returned,
// so callers never observe a live order from a failed placement.
func (h *CreateOrderCommandHandler) abandonOrder(ctx context.Context, ord *order.Order) {
	if err := ord.Cancel(); err != nil {
		return
	}
	if err := h.orderRepo.Update(ctx, ord); err != nil {
		return
	}
	h.releaseItems(ctx, ord.Items())
}

// releaseItems returns the reservations held by the given snapshots to the
// pool.
func (h *CreateOrderCommandHandler) releaseItems(ctx context.Context, items []order.Item) {
	for _, item := range items {
		_, _ = h.ledger.Release(ctx, item.ProductID(), item.Quantity())
	}
}
