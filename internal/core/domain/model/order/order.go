package order

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method. This ensures all orders
	// are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrItemsAreRequired is returned when attempting to create an order
	// with no items. Callers normally surface this as the empty-cart error.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")

	// ErrTrackingNumberIsRequired is returned when shipping an order without
	// a tracking number.
	ErrTrackingNumberIsRequired = errs.NewValueIsRequiredError("trackingNumber")
)

// StatusChange is one entry in an order's transition history: the status
// entered and when.
type StatusChange struct {
	status Status
	at     time.Time
}

// Status returns the status entered by this change.
func (c StatusChange) Status() Status {
	return c.status
}

// At returns when the change happened.
func (c StatusChange) At() time.Time {
	return c.at
}

// Order is the aggregate root for a purchase. It manages the order lifecycle
// from creation through confirmation and shipping to delivery, or down the
// cancellation branch.
//
// Order follows these invariants:
//   - Must have valid unique order and customer identifiers
//   - Item snapshots are frozen at creation and never change
//   - Status transitions follow the state machine defined on Status
//   - A shipping plan is attached exactly once, on confirmation
//   - History is append-only: every successful transition adds one entry,
//     and no entry ever follows a terminal status
//   - Can only be created through the NewOrder constructor
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the owning customer
	customerID kernel.UUID

	// items are the order lines snapshotted at creation time
	items []Item

	// destination is the delivery destination frozen at creation
	destination kernel.Destination

	// urgent marks the order for expedited shipping selection
	urgent bool

	// status is the current state in the order lifecycle
	status Status

	// plan is the shipping plan (nil until confirmation)
	plan *ShippingPlan

	// trackingNumber is the carrier tracking number (empty until shipped)
	trackingNumber string

	// createdAt is the creation timestamp
	createdAt time.Time

	// history records every (status, timestamp) transition, append-only
	history []StatusChange

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order in Created status with validation. This is
// the only way to create a valid Order.
//
// Parameters:
//   - id: unique order identifier
//   - customerID: identifier of the owning customer
//   - items: order line snapshots (must be non-empty and individually valid)
//   - destination: delivery destination
//   - urgent: expedited shipping flag
//
// The creation timestamp and the first history entry (Created) are recorded
// here; inventory reservation is the caller's responsibility and must happen
// before the order becomes visible.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []Item,
	destination kernel.Destination,
	urgent bool,
) (*Order, error) {
	now := time.Now()
	o := &Order{
		urgent:        urgent,
		status:        StatusCreated,
		createdAt:     now,
		history:       []StatusChange{{status: StatusCreated, at: now}},
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setDestination(destination),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state. Unlike NewOrder it
// accepts any lifecycle position: status, plan, tracking number and history
// are taken as stored. Used by repositories to rehydrate aggregates; not for
// creating new orders.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []Item,
	destination kernel.Destination,
	urgent bool,
	status Status,
	plan *ShippingPlan,
	trackingNumber string,
	createdAt time.Time,
	history []StatusChange,
) (*Order, error) {
	o := &Order{
		urgent:         urgent,
		trackingNumber: trackingNumber,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setDestination(destination),
		o.setStatus(status),
		o.setPlan(plan),
		o.setCreatedAt(createdAt),
		o.setHistory(history),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder. This prevents bypassing validation by directly instantiating the
// struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns the order line snapshots. The returned slice is a copy.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Destination returns the delivery destination.
func (o *Order) Destination() kernel.Destination {
	return o.destination
}

// IsUrgent reports whether the order was flagged for expedited shipping.
func (o *Order) IsUrgent() bool {
	return o.urgent
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// ShippingPlan returns the attached shipping plan, or nil before confirmation.
func (o *Order) ShippingPlan() *ShippingPlan {
	return o.plan
}

// TrackingNumber returns the carrier tracking number, empty until shipped.
func (o *Order) TrackingNumber() string {
	return o.trackingNumber
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// History returns the (status, timestamp) transition history in
// chronological order. The returned slice is a copy.
func (o *Order) History() []StatusChange {
	history := make([]StatusChange, len(o.history))
	copy(history, o.history)
	return history
}

// Subtotal returns the order total before shipping.
func (o *Order) Subtotal() float64 {
	var total float64
	for _, item := range o.items {
		total += item.Subtotal()
	}
	return total
}

// Total returns the order total including the shipping cost, when a plan is
// attached.
func (o *Order) Total() float64 {
	total := o.Subtotal()
	if o.plan != nil {
		total += o.plan.Cost()
	}
	return total
}

// TotalQuantity returns the number of units across all lines.
func (o *Order) TotalQuantity() int {
	var total int
	for _, item := range o.items {
		total += item.Quantity()
	}
	return total
}

// TotalWeightGrams returns the total shipment weight.
func (o *Order) TotalWeightGrams() int {
	var total int
	for _, item := range o.items {
		total += item.TotalWeightGrams()
	}
	return total
}

// Confirm transitions the order to Confirmed and attaches the shipping plan
// produced by strategy selection.
//
// Business rules:
//   - Only Created orders can be confirmed
//   - The plan must be a valid, constructed ShippingPlan
//   - On any error the order is left exactly as it was
func (o *Order) Confirm(plan ShippingPlan) error {
	if err := plan.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.plan = &plan
	o.recordTransition(newStatus)
	return nil
}

// Ship transitions the order to Shipped and records the carrier tracking
// number.
//
// Business rules:
//   - Only Confirmed orders can be shipped
//   - A non-empty tracking number is required
func (o *Order) Ship(trackingNumber string) error {
	if trackingNumber == "" {
		return ErrTrackingNumberIsRequired
	}

	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.trackingNumber = trackingNumber
	o.recordTransition(newStatus)
	return nil
}

// Deliver transitions the order to Delivered, the happy-path terminal state.
//
// Business rules:
//   - Only Shipped orders can be delivered
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.recordTransition(newStatus)
	return nil
}

// Cancel transitions the order to Cancelled.
//
// Business rules:
//   - Only Created or Confirmed orders can be cancelled
//   - Releasing the inventory reservations is the caller's responsibility
//     and must happen together with this transition
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.recordTransition(newStatus)
	return nil
}

func (o *Order) recordTransition(newStatus Status) {
	o.status = newStatus
	o.history = append(o.history, StatusChange{status: newStatus, at: time.Now()})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setDestination(destination kernel.Destination) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setPlan(plan *ShippingPlan) error {
	if plan == nil {
		o.plan = nil
		return nil
	}
	if err := plan.Validate(); err != nil {
		return err
	}
	p := *plan
	o.plan = &p
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setHistory(history []StatusChange) error {
	if len(history) == 0 {
		return errs.NewValueIsRequiredError("history")
	}
	o.history = make([]StatusChange, len(history))
	copy(o.history, history)
	return nil
}
