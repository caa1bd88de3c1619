package order

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions to ensure orders follow the correct
// business workflow.
//
// State transitions:
//
//	Created ──> Confirmed ──> Shipped ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal: no transition leaves them.
// Status is a value object that validates state transitions and provides
// string representations for display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusCreated is the initial status assigned at order creation.
	// Created orders hold inventory reservations but no shipping plan yet.
	StatusCreated

	// StatusConfirmed indicates the order has been confirmed and a shipping
	// plan has been attached.
	StatusConfirmed

	// StatusShipped indicates the order has left the warehouse. A tracking
	// number is assigned on this transition.
	StatusShipped

	// StatusDelivered indicates the order reached the customer.
	// This is a terminal state.
	StatusDelivered

	// StatusCancelled indicates the order was cancelled before shipping and
	// its inventory reservations were released. This is a terminal state.
	StatusCancelled
)

// ErrInvalidTransition is the sentinel for all illegal status transitions.
// Use errors.Is against it; the concrete InvalidTransitionError carries the
// offending pair.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports an attempt to move an order from From to To
// when the state machine has no such edge.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given pair.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: from %s to %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusCreated:   "Created",
		StatusConfirmed: "Confirmed",
		StatusShipped:   "Shipped",
		StatusDelivered: "Delivered",
		StatusCancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusCreated:   "Created",
		StatusConfirmed: "Confirmed",
		StatusShipped:   "Shipped",
		StatusDelivered: "Delivered",
		StatusCancelled: "Cancelled",
	}
}

// getAllowedTransitions is the single source of truth for the state machine.
// Every transition method below consults this table.
func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusCreated:   {StatusConfirmed, StatusCancelled},
		StatusConfirmed: {StatusShipped, StatusCancelled},
		StatusShipped:   {StatusDelivered},
		StatusDelivered: {},
		StatusCancelled: {},
	}
}

// String returns the human-readable name of the status, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks that the Status is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// StatusFromString parses a status from its string name, matching the String
// representation. Used when decoding transition requests from external input.
func StatusFromString(str string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == str {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status name", str))
}

// IsTerminal reports whether no transition leaves the status.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether the state machine has an edge from s to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the edge from s to target and returns the new
// status, or an InvalidTransitionError naming both statuses when the state
// machine has no such edge.
//
// Example:
//
//	newStatus, err := currentStatus.TransitionTo(order.StatusConfirmed)
//	if err != nil {
//	    var invalid *order.InvalidTransitionError
//	    errors.As(err, &invalid) // invalid.From, invalid.To
//	}
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(target) {
		return StatusUnknown, NewInvalidTransitionError(s, target)
	}
	return target, nil
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Created -> Confirmed
func (s Status) Confirm() (Status, error) {
	return s.TransitionTo(StatusConfirmed)
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - Confirmed -> Shipped
func (s Status) Ship() (Status, error) {
	return s.TransitionTo(StatusShipped)
}

// Deliver transitions the status to Delivered, a terminal state.
//
// Valid transitions:
//   - Shipped -> Delivered
func (s Status) Deliver() (Status, error) {
	return s.TransitionTo(StatusDelivered)
}

// Cancel transitions the status to Cancelled, a terminal state.
//
// Valid transitions:
//   - Created -> Cancelled
//   - Confirmed -> Cancelled
//
// Shipped orders can no longer be cancelled.
func (s Status) Cancel() (Status, error) {
	return s.TransitionTo(StatusCancelled)
}
