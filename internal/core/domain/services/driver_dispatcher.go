package services

import (
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// ErrNoDriverAvailable is returned when no suitable driver can be selected
// for an order. This occurs when no candidates are provided or none of the
// provided candidates has a reported location.
var ErrNoDriverAvailable = errs.NewPreconditionFailedError(
	"no available drivers with location found")

// DriverDispatcher is a domain service responsible for selecting the optimal
// driver for a delivery order based on straight-line proximity.
//
// Key responsibilities:
//   - Validating the order and each candidate before selection
//   - Computing the great-circle distance from the order to each candidate
//   - Selecting the minimum-distance candidate deterministically
//
// Business rules:
//   - Only candidates with a reported location participate
//   - The first candidate seen at a strictly smaller distance wins
//   - Exact distance ties break toward the lexicographically smaller
//     driver id, so the result does not depend on candidate ordering
//
// Example usage:
//
//	dispatcher := services.NewDriverDispatcher()
//	nearest, km, err := dispatcher.SelectNearest(order, drivers)
//	if errors.Is(err, errs.ErrPreconditionFailed) {
//	    // No candidate could serve this order
//	    return
//	}
type DriverDispatcher struct{}

// NewDriverDispatcher creates a new DriverDispatcher instance.
func NewDriverDispatcher() DriverDispatcher {
	return DriverDispatcher{}
}

// SelectNearest picks the candidate closest to the order's delivery location
// and returns it together with the computed distance in kilometers.
//
// Returns ErrNoDriverAvailable when the candidate set is empty or no
// candidate has a reported location.
func (d DriverDispatcher) SelectNearest(
	o *order.Order,
	candidates []*driver.Driver,
) (*driver.Driver, float64, error) {
	if err := o.Validate(); err != nil {
		return nil, 0, err
	}

	var (
		nearest *driver.Driver
		minKm   float64
	)

	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			return nil, 0, err
		}

		if !candidate.HasLocation() {
			continue
		}

		km, err := o.Location().DistanceTo(*candidate.Location())
		if err != nil {
			return nil, 0, err
		}

		if nearest == nil || km < minKm || (km == minKm && candidate.ID().String() < nearest.ID().String()) {
			nearest = candidate
			minKm = km
		}
	}

	if nearest == nil {
		return nil, 0, ErrNoDriverAvailable
	}

	return nearest, minKm, nil
}
