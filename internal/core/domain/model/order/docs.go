// Package order provides domain entities and business logic for the order
// lifecycle. It implements the Order aggregate root with state transitions,
// immutable line-item snapshots, and the shipping plan attached on
// confirmation.
//
// The package includes:
//   - Order: the aggregate root managing identity, items, and lifecycle
//   - Status: a state machine that enforces valid status transitions
//   - Item: an immutable snapshot of one order line
//   - ShippingPlan: the immutable result of shipping strategy selection
//
// Key business rules:
//   - Orders must have a valid identifier, customer, destination, and at
//     least one item
//   - Status follows Created -> Confirmed -> Shipped -> Delivered, with a
//     cancellation branch from Created and Confirmed
//   - Delivered and Cancelled are terminal; history is append-only
//   - Item snapshots freeze name, price, and weight at creation time
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are
// enforced.
package order
