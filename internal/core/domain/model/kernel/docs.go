// Package kernel provides shared value objects used across the domain model.
//
// The package includes:
//   - UUID: validated unique identifiers for entities and aggregates
//   - Destination: a delivery destination with a city and delivery zone
//   - Zone: the closed set of delivery zones with shipping eligibility rules
//
// Value objects in this package are immutable, created only through
// constructor functions, and validated on construction. The zero value of
// each type is invalid by design and fails Validate.
package kernel
