// Package guard provides a defensive construction pattern for domain objects.
// Embedding a ConstructorGuard in a struct makes zero-value instances
// distinguishable from instances created through their designated constructor,
// so Validate methods can reject objects that bypassed validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether its enclosing object was created through a
// constructor function. The zero value is "not constructed" and fails
// validation, which is the whole point: direct struct literals and zero
// values are detectable.
//
// Example:
//
//	type Plan struct {
//	    cost  float64
//	    guard guard.ConstructorGuard
//	}
//
//	func NewPlan(cost float64) (Plan, error) {
//	    if cost < 0 {
//	        return Plan{}, errors.New("cost cannot be negative")
//	    }
//	    return Plan{cost: cost, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p Plan) Validate() error {
//	    return p.guard.Validate(ErrPlanIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as
// properly constructed. Call it only from constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for constructed guards. For zero-value guards it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
