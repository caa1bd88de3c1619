// Package cli provides an interactive terminal menu over the ordering
// use cases: browsing the catalog, building a cart, placing orders and
// driving them through their lifecycle.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
)

// cartLine is one pending product selection in the session cart.
type cartLine struct {
	productID kernel.UUID
	name      string
	unitPrice float64
	quantity  int
}

// Menu is the terminal adapter. It holds the session state of a single
// operator: the signed-in customer and an in-progress cart.
type Menu struct {
	in  *bufio.Scanner
	out io.Writer

	registerCustomerHandler commands.RegisterCustomerCommandHandler
	createOrderHandler      commands.CreateOrderCommandHandler
	confirmOrderHandler     commands.ConfirmOrderCommandHandler
	shipOrderHandler        commands.ShipOrderCommandHandler
	deliverOrderHandler     commands.DeliverOrderCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler

	getOrderHandler          queries.GetOrderQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
	listProductsHandler      queries.ListProductsQueryHandler

	customerID   kernel.UUID
	customerName string
	cart         []cartLine
}

// NewMenu creates the terminal menu reading commands from in and writing
// prompts and results to out.
func NewMenu(
	in io.Reader,
	out io.Writer,
	registerCustomerHandler commands.RegisterCustomerCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	listProductsHandler queries.ListProductsQueryHandler,
) *Menu {
	return &Menu{
		in:                       bufio.NewScanner(in),
		out:                      out,
		registerCustomerHandler:  registerCustomerHandler,
		createOrderHandler:       createOrderHandler,
		confirmOrderHandler:      confirmOrderHandler,
		shipOrderHandler:         shipOrderHandler,
		deliverOrderHandler:      deliverOrderHandler,
		cancelOrderHandler:       cancelOrderHandler,
		getOrderHandler:          getOrderHandler,
		getCustomerOrdersHandler: getCustomerOrdersHandler,
		listProductsHandler:      listProductsHandler,
	}
}

// Run drives the main menu loop until the operator exits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printHeader()
		m.printf("1. Register customer\n")
		m.printf("2. Browse products\n")
		m.printf("3. View cart\n")
		m.printf("4. Place order\n")
		m.printf("5. My orders\n")
		m.printf("6. Order actions\n")
		m.printf("0. Exit\n")

		choice, ok := m.prompt("Select an option")
		if !ok {
			return nil
		}

		var err error
		switch choice {
		case "0":
			m.printf("Goodbye!\n")
			return nil
		case "1":
			err = m.registerCustomer(ctx)
		case "2":
			err = m.browseProducts(ctx)
		case "3":
			m.viewCart()
		case "4":
			err = m.placeOrder(ctx)
		case "5":
			err = m.viewOrders(ctx)
		case "6":
			err = m.orderActions(ctx)
		default:
			m.printf("Unknown option: %s\n", choice)
		}

		if err != nil {
			m.printf("Error: %v\n", err)
		}
	}
}

func (m *Menu) printHeader() {
	m.printf("\n%s\n", strings.Repeat("=", 48))
	if m.customerName != "" {
		m.printf("ORDER MANAGEMENT - welcome, %s\n", m.customerName)
	} else {
		m.printf("ORDER MANAGEMENT\n")
	}
	m.printf("%s\n", strings.Repeat("=", 48))
}

func (m *Menu) registerCustomer(ctx context.Context) error {
	name, ok := m.prompt("Name")
	if !ok {
		return nil
	}
	email, ok := m.prompt("Email")
	if !ok {
		return nil
	}
	phone, ok := m.prompt("Phone (optional)")
	if !ok {
		return nil
	}
	city, ok := m.prompt("City")
	if !ok {
		return nil
	}
	zoneName, ok := m.prompt("Zone (Local/Regional/National/Remote)")
	if !ok {
		return nil
	}

	zone, err := kernel.ZoneFromString(zoneName)
	if err != nil {
		return err
	}
	destination, err := kernel.NewDestination(city, zone)
	if err != nil {
		return err
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewRegisterCustomerCommand(customerID, name, email, phone, destination)
	if err != nil {
		return err
	}
	if err = m.registerCustomerHandler.Handle(ctx, cmd); err != nil {
		return err
	}

	m.customerID = customerID
	m.customerName = name
	m.cart = nil
	m.printf("Registered. Customer id: %s\n", customerID)
	return nil
}

func (m *Menu) browseProducts(ctx context.Context) error {
	filter, ok := m.prompt("Category filter (empty for all)")
	if !ok {
		return nil
	}

	query := queries.NewListProductsQuery()
	if filter != "" {
		category, err := product.CategoryFromString(filter)
		if err != nil {
			return err
		}
		query, err = queries.NewListProductsByCategoryQuery(category)
		if err != nil {
			return err
		}
	}

	products, err := m.listProductsHandler.Handle(ctx, query)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		m.printf("No products found.\n")
		return nil
	}

	for i, p := range products {
		m.printf("%d. %-24s %-12s %8.2f  (%d in stock)\n",
			i+1, p.Name, p.Category, p.Price, p.Available)
	}

	pick, ok := m.prompt("Add to cart (number, empty to skip)")
	if !ok || pick == "" {
		return nil
	}
	index, err := strconv.Atoi(pick)
	if err != nil || index < 1 || index > len(products) {
		m.printf("Invalid selection: %s\n", pick)
		return nil
	}

	quantityText, ok := m.prompt("Quantity")
	if !ok {
		return nil
	}
	quantity, err := strconv.Atoi(quantityText)
	if err != nil || quantity < 1 {
		m.printf("Invalid quantity: %s\n", quantityText)
		return nil
	}

	chosen := products[index-1]
	productID, err := kernel.UUIDFromString(chosen.ID)
	if err != nil {
		return err
	}

	m.addToCart(cartLine{
		productID: productID,
		name:      chosen.Name,
		unitPrice: chosen.Price,
		quantity:  quantity,
	})
	m.printf("%s x%d added to cart.\n", chosen.Name, quantity)
	return nil
}

func (m *Menu) addToCart(line cartLine) {
	for i := range m.cart {
		if m.cart[i].productID.IsEqual(line.productID) {
			m.cart[i].quantity += line.quantity
			return
		}
	}
	m.cart = append(m.cart, line)
}

func (m *Menu) viewCart() {
	if len(m.cart) == 0 {
		m.printf("Cart is empty.\n")
		return
	}

	var total float64
	for i, line := range m.cart {
		subtotal := line.unitPrice * float64(line.quantity)
		total += subtotal
		m.printf("%d. %-24s x%-3d %10.2f\n", i+1, line.name, line.quantity, subtotal)
	}
	m.printf("Cart total: %.2f\n", total)

	pick, ok := m.prompt("Remove line (number, empty to keep)")
	if !ok || pick == "" {
		return
	}
	index, err := strconv.Atoi(pick)
	if err != nil || index < 1 || index > len(m.cart) {
		m.printf("Invalid selection: %s\n", pick)
		return
	}
	removed := m.cart[index-1]
	m.cart = append(m.cart[:index-1], m.cart[index:]...)
	m.printf("%s removed from cart.\n", removed.name)
}

func (m *Menu) placeOrder(ctx context.Context) error {
	if m.customerID.Validate() != nil {
		m.printf("Register a customer first.\n")
		return nil
	}
	if len(m.cart) == 0 {
		m.printf("Cart is empty.\n")
		return nil
	}

	urgentAnswer, ok := m.prompt("Urgent delivery? (y/n)")
	if !ok {
		return nil
	}
	urgent := strings.EqualFold(urgentAnswer, "y")

	lines := make([]commands.OrderLine, 0, len(m.cart))
	for _, line := range m.cart {
		lines = append(lines, commands.OrderLine{ProductID: line.productID, Quantity: line.quantity})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, m.customerID, lines, urgent)
	if err != nil {
		return err
	}
	if err = m.createOrderHandler.Handle(ctx, cmd); err != nil {
		return err
	}

	m.cart = nil
	m.printf("Order placed. Order id: %s\n", orderID)
	return nil
}

func (m *Menu) viewOrders(ctx context.Context) error {
	if m.customerID.Validate() != nil {
		m.printf("Register a customer first.\n")
		return nil
	}

	query, err := queries.NewGetCustomerOrdersQuery(m.customerID)
	if err != nil {
		return err
	}
	summaries, err := m.getCustomerOrdersHandler.Handle(ctx, query)
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		m.printf("No orders yet.\n")
		return nil
	}

	for _, summary := range summaries {
		m.printf("%s  %-10s %2d items %10.2f", summary.ID, summary.Status,
			summary.ItemCount, summary.Total)
		if summary.TrackingNumber != "" {
			m.printf("  tracking %s", summary.TrackingNumber)
		}
		m.printf("\n")
	}
	return nil
}

func (m *Menu) orderActions(ctx context.Context) error {
	idText, ok := m.prompt("Order id")
	if !ok {
		return nil
	}
	orderID, err := kernel.UUIDFromString(idText)
	if err != nil {
		return err
	}

	m.printf("1. Show details\n")
	m.printf("2. Confirm\n")
	m.printf("3. Ship\n")
	m.printf("4. Deliver\n")
	m.printf("5. Cancel\n")

	choice, ok := m.prompt("Select an action")
	if !ok {
		return nil
	}

	switch choice {
	case "1":
		return m.showOrder(ctx, orderID)
	case "2":
		cmd, cmdErr := commands.NewConfirmOrderCommand(orderID)
		if cmdErr != nil {
			return cmdErr
		}
		if err = m.confirmOrderHandler.Handle(ctx, cmd); err != nil {
			return err
		}
		m.printf("Order confirmed.\n")
	case "3":
		cmd, cmdErr := commands.NewShipOrderCommand(orderID)
		if cmdErr != nil {
			return cmdErr
		}
		if err = m.shipOrderHandler.Handle(ctx, cmd); err != nil {
			return err
		}
		m.printf("Order shipped.\n")
	case "4":
		cmd, cmdErr := commands.NewDeliverOrderCommand(orderID)
		if cmdErr != nil {
			return cmdErr
		}
		if err = m.deliverOrderHandler.Handle(ctx, cmd); err != nil {
			return err
		}
		m.printf("Order delivered.\n")
	case "5":
		cmd, cmdErr := commands.NewCancelOrderCommand(orderID)
		if cmdErr != nil {
			return cmdErr
		}
		if err = m.cancelOrderHandler.Handle(ctx, cmd); err != nil {
			return err
		}
		m.printf("Order cancelled.\n")
	default:
		m.printf("Unknown action: %s\n", choice)
	}
	return nil
}

func (m *Menu) showOrder(ctx context.Context, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return err
	}
	resp, err := m.getOrderHandler.Handle(ctx, query)
	if err != nil {
		return err
	}

	m.printf("Order %s  %s  destination %s\n", resp.ID, resp.Status, resp.Destination)
	for _, item := range resp.Items {
		m.printf("  %-24s x%-3d %10.2f\n", item.ProductName, item.Quantity, item.Subtotal)
	}
	m.printf("Subtotal: %.2f\n", resp.Subtotal)
	if resp.ShippingMethod != "" {
		m.printf("Shipping: %s for %.2f, estimated %s\n",
			resp.ShippingMethod, resp.ShippingCost, resp.EstimatedAt.Format("Mon, 02 Jan 2006 15:04"))
	}
	if resp.TrackingNumber != "" {
		m.printf("Tracking: %s\n", resp.TrackingNumber)
	}
	m.printf("Total: %.2f\n", resp.Total)
	m.printf("History:\n")
	for _, change := range resp.History {
		m.printf("  %-10s %s\n", change.Status, change.At.Format("Mon, 02 Jan 2006 15:04"))
	}
	return nil
}

// prompt prints the message and reads one trimmed line. The second return
// value is false when input is exhausted.
func (m *Menu) prompt(message string) (string, bool) {
	m.printf("%s: ", message)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}
