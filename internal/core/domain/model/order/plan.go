package order

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ShippingMethod identifies one of the closed set of shipping strategies.
// The set is fixed at design time: selection logic enumerates these variants
// rather than dispatching over open-ended implementations.
type ShippingMethod int

const (
	// MethodUnknown represents an invalid or undefined method.
	MethodUnknown ShippingMethod = iota

	// MethodFast is express ground delivery: pricier, roughly two days.
	MethodFast

	// MethodEconomic is standard ground delivery: cheap (free above a
	// subtotal threshold), roughly five days.
	MethodEconomic

	// MethodDrone is same-day aerial delivery for light, local orders.
	MethodDrone
)

func getShippingMethodStrings() map[ShippingMethod]string {
	return map[ShippingMethod]string{
		MethodUnknown:  "Unknown",
		MethodFast:     "Fast",
		MethodEconomic: "Economic",
		MethodDrone:    "Drone",
	}
}

// String returns the method name, or "Unknown" for invalid values.
func (m ShippingMethod) String() string {
	if str, ok := getShippingMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks that the method is one of the defined shipping methods.
func (m ShippingMethod) Validate() error {
	if m != MethodFast && m != MethodEconomic && m != MethodDrone {
		return errs.NewValueIsInvalidErrorWithCause("shippingMethod",
			fmt.Errorf("%d is not a valid shipping method", m))
	}
	return nil
}

// ErrShippingPlanIsNotConstructed is returned when using an improperly
// initialized ShippingPlan.
var ErrShippingPlanIsNotConstructed = errors.New(
	"ShippingPlan must be created via NewShippingPlan constructor")

// ShippingPlan is the immutable result of shipping strategy selection,
// attached to an order exactly once, on confirmation: the chosen method,
// the computed cost, and the estimated delivery time.
type ShippingPlan struct { //nolint:recvcheck //using for validation
	method ShippingMethod
	cost   float64
	eta    time.Time

	guard guard.ConstructorGuard
}

// NewShippingPlan creates a ShippingPlan with validation. Cost must be
// non-negative and the estimated delivery time must be set.
func NewShippingPlan(method ShippingMethod, cost float64, eta time.Time) (ShippingPlan, error) {
	plan := ShippingPlan{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		plan.setMethod(method),
		plan.setCost(cost),
		plan.setETA(eta),
	); err != nil {
		return ShippingPlan{}, err
	}

	return plan, nil
}

// Validate ensures the ShippingPlan was created through NewShippingPlan.
func (p ShippingPlan) Validate() error {
	return p.guard.Validate(ErrShippingPlanIsNotConstructed)
}

// Method returns the selected shipping method.
func (p ShippingPlan) Method() ShippingMethod {
	return p.method
}

// Cost returns the computed shipping cost.
func (p ShippingPlan) Cost() float64 {
	return p.cost
}

// ETA returns the estimated delivery time.
func (p ShippingPlan) ETA() time.Time {
	return p.eta
}

// String returns a short display representation.
func (p ShippingPlan) String() string {
	return fmt.Sprintf("%s (%.2f, ETA %s)", p.method, p.cost, p.eta.Format(time.RFC3339))
}

func (p *ShippingPlan) setMethod(method ShippingMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	p.method = method
	return nil
}

func (p *ShippingPlan) setCost(cost float64) error {
	if cost < 0 {
		return errs.NewValueIsInvalidErrorWithCause("cost", fmt.Errorf("%f is negative", cost))
	}
	p.cost = cost
	return nil
}

func (p *ShippingPlan) setETA(eta time.Time) error {
	if eta.IsZero() {
		return errs.NewValueIsRequiredError("eta")
	}
	p.eta = eta
	return nil
}

const (
	trackingLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	trackingDigits  = "0123456789"
)

// NewTrackingNumber generates a carrier tracking number in the
// two-letters-eight-digits format, e.g. "KX39402718". Assigned to an order
// when it ships.
func NewTrackingNumber() string {
	buf := make([]byte, 10)
	for i := range 2 {
		buf[i] = trackingLetters[rand.IntN(len(trackingLetters))]
	}
	for i := 2; i < 10; i++ {
		buf[i] = trackingDigits[rand.IntN(len(trackingDigits))]
	}
	return string(buf)
}
