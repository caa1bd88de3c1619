package services

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/order"
)

// ErrNoApplicableStrategy is returned when no shipping strategy can serve an
// order. This occurs when the destination has no carrier coverage at all, or
// when every otherwise applicable strategy rejects the shipment.
var ErrNoApplicableStrategy = errors.New("no applicable shipping strategy")

// NoApplicableStrategyError reports which order could not be matched to a
// shipping strategy and where it was going.
type NoApplicableStrategyError struct {
	Order *order.Order
}

// NewNoApplicableStrategyError creates a NoApplicableStrategyError.
func NewNoApplicableStrategyError(o *order.Order) *NoApplicableStrategyError {
	return &NoApplicableStrategyError{Order: o}
}

// Error implements the error interface.
func (e *NoApplicableStrategyError) Error() string {
	return fmt.Sprintf("%s: order %s to %s",
		ErrNoApplicableStrategy, e.Order.ID(), e.Order.Destination())
}

// Unwrap supports errors.Is checks against ErrNoApplicableStrategy.
func (e *NoApplicableStrategyError) Unwrap() error {
	return ErrNoApplicableStrategy
}

// ShippingStrategy estimates cost and transit time for one shipping method.
// Each strategy is a pure calculation over the order snapshot: applicability
// and estimation never mutate the order and never touch external state.
type ShippingStrategy interface {
	// Method identifies the strategy.
	Method() order.ShippingMethod

	// IsApplicable reports whether the strategy can serve the order.
	IsApplicable(o *order.Order) bool

	// Estimate returns the shipping cost and the transit duration for the
	// order. Only meaningful when IsApplicable returns true.
	Estimate(o *order.Order) (cost float64, transit time.Duration)
}

const (
	droneMaxWeightGrams = 5000
	droneBaseCost       = 100.0
	dronePerUnitCost    = 10.0
	droneTransit        = 4 * time.Hour

	fastBaseCost         = 50.0
	fastPerUnitCost      = 5.0
	fastDiscountSubtotal = 1000.0
	fastDiscountRate     = 0.10
	fastTransit          = 48 * time.Hour

	economicCost         = 20.0
	economicFreeSubtotal = 500.0
	economicTransit      = 120 * time.Hour
)

// FastShipping is express ground delivery. Available anywhere carriers
// operate; orders above a subtotal threshold get a discount.
type FastShipping struct{}

// Method identifies the strategy.
func (FastShipping) Method() order.ShippingMethod { return order.MethodFast }

// IsApplicable reports whether express couriers cover the destination.
func (FastShipping) IsApplicable(o *order.Order) bool {
	return o.Destination().HasCarrierCoverage()
}

// Estimate prices the shipment at a base fee plus a per-unit fee, with a
// percentage discount once the order subtotal crosses the threshold.
func (FastShipping) Estimate(o *order.Order) (float64, time.Duration) {
	cost := fastBaseCost + fastPerUnitCost*float64(o.TotalQuantity())
	if o.Subtotal() > fastDiscountSubtotal {
		cost *= 1 - fastDiscountRate
	}
	return cost, fastTransit
}

// EconomicShipping is standard ground delivery. Available anywhere carriers
// operate; free above a subtotal threshold.
type EconomicShipping struct{}

// Method identifies the strategy.
func (EconomicShipping) Method() order.ShippingMethod { return order.MethodEconomic }

// IsApplicable reports whether ground carriers cover the destination.
func (EconomicShipping) IsApplicable(o *order.Order) bool {
	return o.Destination().HasCarrierCoverage()
}

// Estimate prices the shipment at a flat fee, waived once the order subtotal
// crosses the free-shipping threshold.
func (EconomicShipping) Estimate(o *order.Order) (float64, time.Duration) {
	if o.Subtotal() > economicFreeSubtotal {
		return 0, economicTransit
	}
	return economicCost, economicTransit
}

// DroneShipping is same-day aerial delivery, limited to drone-eligible zones
// and light shipments.
type DroneShipping struct{}

// Method identifies the strategy.
func (DroneShipping) Method() order.ShippingMethod { return order.MethodDrone }

// IsApplicable reports whether the destination is drone-eligible and the
// shipment is within the drone payload limit.
func (DroneShipping) IsApplicable(o *order.Order) bool {
	return o.Destination().IsDroneEligible() && o.TotalWeightGrams() <= droneMaxWeightGrams
}

// Estimate prices the shipment at a base fee plus a per-unit fee.
func (DroneShipping) Estimate(o *order.Order) (float64, time.Duration) {
	return droneBaseCost + dronePerUnitCost*float64(o.TotalQuantity()), droneTransit
}

// ShippingSelector is a domain service responsible for choosing the shipping
// strategy for an order at confirmation time and turning its estimate into a
// ShippingPlan.
//
// Business rules:
//   - Urgent orders prefer the fastest applicable strategy
//   - Non-urgent orders prefer the cheapest applicable strategy
//   - An order whose destination no strategy can serve fails with
//     ErrNoApplicableStrategy and must not be confirmed
//
// Example usage:
//
//	selector := services.NewShippingSelector()
//	plan, err := selector.Select(ord, time.Now())
//	if errors.Is(err, services.ErrNoApplicableStrategy) {
//	    // destination cannot be served, reject the confirmation
//	    return
//	}
//	if err != nil {
//	    return
//	}
//	// attach the plan: ord.Confirm(plan)
type ShippingSelector struct {
	urgent   []ShippingStrategy
	standard []ShippingStrategy
}

// NewShippingSelector creates a ShippingSelector with the built-in strategy
// set: drone, fast and economic, ranked by speed for urgent orders and by
// cost for standard ones.
func NewShippingSelector() ShippingSelector {
	return ShippingSelector{
		urgent:   []ShippingStrategy{DroneShipping{}, FastShipping{}, EconomicShipping{}},
		standard: []ShippingStrategy{EconomicShipping{}, FastShipping{}, DroneShipping{}},
	}
}

// Select picks the shipping strategy for the order and returns the resulting
// plan. The estimated delivery time is now plus the strategy's transit
// duration.
//
// Returns ErrNoApplicableStrategy (as a NoApplicableStrategyError) when no
// strategy can serve the order.
func (s ShippingSelector) Select(o *order.Order, now time.Time) (order.ShippingPlan, error) {
	if err := o.Validate(); err != nil {
		return order.ShippingPlan{}, err
	}

	strategy := s.pick(o)
	if strategy == nil {
		return order.ShippingPlan{}, NewNoApplicableStrategyError(o)
	}

	cost, transit := strategy.Estimate(o)
	return order.NewShippingPlan(strategy.Method(), cost, now.Add(transit))
}

func (s ShippingSelector) pick(o *order.Order) ShippingStrategy {
	ranked := s.standard
	if o.IsUrgent() {
		ranked = s.urgent
	}

	for _, strategy := range ranked {
		if strategy.IsApplicable(o) {
			return strategy
		}
	}
	return nil
}
