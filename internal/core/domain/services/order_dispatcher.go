package services

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
)

// MaxAssignmentRadiusMeters is the dispatch radius: couriers farther than
// this from the pickup point are never assigned.
const MaxAssignmentRadiusMeters = 10_000.0

// ErrCourierNotFound is returned when no suitable courier is available for
// order dispatch. This occurs when no couriers are provided, none are active,
// or none are within the assignment radius of the pickup point.
var ErrCourierNotFound = errors.New("courier not found")

// OrderDispatcher is a domain service responsible for finding and assigning
// the nearest active courier for a delivery order.
//
// Business rules:
//   - Orders must be valid and in Pending status before dispatch
//   - Only active couriers are considered
//   - The courier must be within MaxAssignmentRadiusMeters of the pickup point
//   - Selection minimizes haversine distance; ties break on ascending courier ID
//   - Assignment is a point-in-time read of courier positions, not a
//     reservation: a courier may be selected for two orders created
//     concurrently, and resolves the conflict operationally
//
// Example usage:
//
//	dispatcher := NewOrderDispatcher()
//	assigned, err := dispatcher.Dispatch(o, couriers)
//	if errors.Is(err, ErrCourierNotFound) {
//	    // Order stays pending
//	    return
//	}
type OrderDispatcher struct{}

// NewOrderDispatcher creates a new OrderDispatcher instance.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Dispatch finds the nearest eligible courier for the order and assigns it.
//
// Parameters:
//   - o: The order to be dispatched (must be valid and Pending)
//   - couriers: Candidate couriers to consider; inactive ones are skipped
//
// Returns:
//   - *courier.Courier: The courier assigned to the order
//   - error: ErrCourierNotFound if no eligible courier exists, or
//     validation/assignment errors
//
// On success the order is mutated: status Assigned, courier recorded,
// assignment timestamp stamped. On any error the order is unchanged.
func (d OrderDispatcher) Dispatch(o *order.Order, couriers []*courier.Courier) (*courier.Courier, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	nearest, err := d.findNearestCourier(o, couriers)
	if err != nil {
		return nil, err
	}

	if err = o.Assign(nearest.ID()); err != nil {
		return nil, err
	}

	return nearest, nil
}

// findNearestCourier scans the candidates for the active courier closest to
// the order's pickup point within the assignment radius.
//
// Ties on distance resolve to the lexicographically smaller courier ID, so
// the selection is deterministic regardless of input ordering.
func (d OrderDispatcher) findNearestCourier(o *order.Order, couriers []*courier.Courier) (*courier.Courier, error) {
	var (
		nearest      *courier.Courier
		bestDistance float64
	)

	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		if !c.IsActive() {
			continue
		}

		distance, err := c.Location().DistanceMetersTo(o.PickupLocation())
		if err != nil {
			return nil, err
		}

		if distance > MaxAssignmentRadiusMeters {
			continue
		}

		if nearest == nil || distance < bestDistance ||
			(distance == bestDistance && strings.Compare(c.ID().String(), nearest.ID().String()) < 0) {
			bestDistance = distance
			nearest = c
		}
	}

	if nearest == nil {
		return nil, ErrCourierNotFound
	}

	return nearest, nil
}
