package kernel

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// Zone classifies how far a delivery destination is from the fulfillment
// center. The zone determines which shipping methods can serve the
// destination.
type Zone int

const (
	// ZoneUnknown represents an invalid or undefined zone.
	// This value (0) helps catch uninitialized Zone values.
	ZoneUnknown Zone = iota

	// ZoneLocal covers same-city destinations. Local destinations are the
	// only ones eligible for drone delivery.
	ZoneLocal

	// ZoneRegional covers destinations within the surrounding region.
	ZoneRegional

	// ZoneNational covers domestic destinations outside the region.
	ZoneNational

	// ZoneRemote covers destinations outside any carrier's coverage.
	// No shipping method can serve a remote destination.
	ZoneRemote
)

func getZoneStrings() map[Zone]string {
	return map[Zone]string{
		ZoneUnknown:  "Unknown",
		ZoneLocal:    "Local",
		ZoneRegional: "Regional",
		ZoneNational: "National",
		ZoneRemote:   "Remote",
	}
}

func getValidZoneStrings() map[Zone]string {
	//nolint:exhaustive // ZoneUnknown is intentionally excluded as it's invalid
	return map[Zone]string{
		ZoneLocal:    "Local",
		ZoneRegional: "Regional",
		ZoneNational: "National",
		ZoneRemote:   "Remote",
	}
}

// String returns the human-readable name of the zone, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (z Zone) String() string {
	if str, ok := getZoneStrings()[z]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks that the Zone value is one of the defined zones.
// ZoneUnknown and out-of-range values are invalid.
func (z Zone) Validate() error {
	if _, ok := getValidZoneStrings()[z]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("zone", fmt.Errorf("%d is not a valid zone", z))
	}
	return nil
}

// ZoneFromString parses a zone from its string name, case-sensitively
// matching the String representation. Used when reconstructing destinations
// from external input.
func ZoneFromString(s string) (Zone, error) {
	for zone, str := range getValidZoneStrings() {
		if str == s {
			return zone, nil
		}
	}
	return ZoneUnknown, errs.NewValueIsInvalidErrorWithCause("zone", fmt.Errorf("%q is not a valid zone name", s))
}

// ErrDestinationIsNotConstructed is returned when attempting to use an
// improperly initialized Destination. Destinations must be created via
// NewDestination.
var ErrDestinationIsNotConstructed = errs.NewValueIsRequiredError(
	"destination must be created via NewDestination constructor")

// ErrCityIsRequired is returned when a destination is created without a city name.
var ErrCityIsRequired = errs.NewValueIsRequiredError("city")

// Destination is an immutable value object describing where an order is
// delivered: a city name plus the delivery zone the city falls into.
// Shipping method applicability is decided from the zone alone.
//
// Example:
//
//	dest, err := kernel.NewDestination("Riverton", kernel.ZoneLocal)
//	if err != nil {
//	    // handle validation error
//	}
//	dest.IsDroneEligible() // true: local destinations allow drone delivery
type Destination struct { //nolint:recvcheck //using for validation
	city  string
	zone  Zone
	guard guard.ConstructorGuard
}

// NewDestination creates a Destination with the given city and zone.
// The city must be non-empty and the zone must be a defined zone value.
func NewDestination(city string, zone Zone) (Destination, error) {
	dest := Destination{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(dest.setCity(city), dest.setZone(zone)); err != nil {
		return Destination{}, err
	}

	return dest, nil
}

// City returns the destination city name.
func (d Destination) City() string {
	return d.city
}

// Zone returns the delivery zone of the destination.
func (d Destination) Zone() Zone {
	return d.zone
}

// IsDroneEligible reports whether the destination can be served by drone
// delivery. Only local destinations are drone-eligible.
func (d Destination) IsDroneEligible() bool {
	return d.zone == ZoneLocal
}

// HasCarrierCoverage reports whether any ground carrier serves the
// destination. Remote destinations have no coverage at all.
func (d Destination) HasCarrierCoverage() bool {
	return d.zone != ZoneRemote && d.zone != ZoneUnknown
}

// IsEqual compares two destinations by value.
func (d Destination) IsEqual(other Destination) bool {
	return d.city == other.city && d.zone == other.zone
}

// String returns a "City (Zone)" representation for display and logging.
func (d Destination) String() string {
	return fmt.Sprintf("%s (%s)", d.city, d.zone)
}

// Validate ensures the Destination was created through NewDestination.
func (d Destination) Validate() error {
	return d.guard.Validate(ErrDestinationIsNotConstructed)
}

func (d *Destination) setCity(city string) error {
	if city == "" {
		return ErrCityIsRequired
	}
	d.city = city
	return nil
}

func (d *Destination) setZone(zone Zone) error {
	if err := zone.Validate(); err != nil {
		return err
	}
	d.zone = zone
	return nil
}
