package kernel

import (
	"errors"
	"fmt"
	"math"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// EarthRadiusKm is the mean radius of the Earth used for great-circle
// distance calculation.
const EarthRadiusKm = 6371.0

// ErrLocationIsNotConstructed is returned when attempting to use an improperly
// initialized Location. Locations must be created via NewLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location represents a geographic point as a pair of signed decimal-degree
// coordinates. Location is an immutable value object.
//
// Coordinate ranges are intentionally not validated: callers own the
// responsibility of supplying meaningful latitudes and longitudes, and
// out-of-range inputs produce a mathematically defined but meaningless
// distance. The zero value of Location is invalid and fails validation;
// use the constructor to create instances.
//
// Example:
//
//	loc := kernel.NewLocation(41.0082, 28.9784)
//	fmt.Printf("Location: %s", loc) // Output: Location(41.008200,28.978400)
type Location struct {
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewLocation creates a new Location from latitude and longitude in signed
// decimal degrees.
func NewLocation(lat float64, lng float64) Location {
	return Location{
		lat:   lat,
		lng:   lng,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate checks if the Location was properly constructed using the constructor.
// The zero value of Location is invalid and will fail this validation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Lat returns the latitude in signed decimal degrees.
func (l Location) Lat() float64 {
	return l.lat
}

// Lng returns the longitude in signed decimal degrees.
func (l Location) Lng() float64 {
	return l.lng
}

// String returns a human-readable representation in the format
// "Location(lat,lng)". Implements the fmt.Stringer interface.
func (l Location) String() string {
	return fmt.Sprintf("Location(%f,%f)", l.lat, l.lng)
}

// IsEqual compares two locations for coordinate equality.
// Both locations must be properly constructed for the comparison to succeed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l.lat == other.lat && l.lng == other.lng, nil
}

// DistanceTo calculates the great-circle distance in kilometers between two
// locations using the Haversine formula on a sphere of radius EarthRadiusKm.
// The function is pure, deterministic and symmetric: a.DistanceTo(b) equals
// b.DistanceTo(a), and the distance between identical points is zero.
//
// Both locations must be properly constructed for the calculation to succeed.
//
// Example:
//
//	a := kernel.NewLocation(0, 0)
//	b := kernel.NewLocation(0, 1)
//	km, _ := a.DistanceTo(b) // km ≈ 111.19
func (l Location) DistanceTo(other Location) (float64, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dLat := degreesToRadians(other.lat - l.lat)
	dLng := degreesToRadians(other.lng - l.lng)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degreesToRadians(l.lat))*math.Cos(degreesToRadians(other.lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c, nil
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
