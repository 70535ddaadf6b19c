package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct delivery workflow.
//
// State transitions:
//
//	Pending ──> Assigned ──> Picked ──> Delivered
//	   │
//	   └──> Cancelled
//
// Delivered and Cancelled are terminal: no transitions leave them.
// Status is a value object that validates state transitions and provides the
// wire/storage representation.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of an order created with no courier in
	// range. Pending orders wait for assignment and may still be cancelled
	// by the owning shop.
	Pending

	// Assigned indicates a courier has been matched to the order.
	Assigned

	// Picked indicates the assigned courier has collected the package.
	Picked

	// Delivered indicates the package reached the customer. Terminal.
	Delivered

	// Cancelled indicates the shop withdrew the order before assignment. Terminal.
	Cancelled
)

// getStatusStrings returns the storage representation of every status.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Assigned:  "assigned",
		Picked:    "picked",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns only the valid statuses, to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Assigned:  "assigned",
		Picked:    "picked",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses a status from its wire representation.
// Used when decoding transition requests and when restoring from storage.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status ("pending",
// "assigned", ...), or "unknown" for invalid values.
// Implements the fmt.Stringer interface and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transition may leave this status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Pending -> Assigned (courier matched, at creation or by redispatch)
//
// Any other source status is rejected: assignment is a system-side effect,
// never a direct transition from an already assigned or terminal state.
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewInvalidTransitionError(s.String(), Assigned.String())
	}

	return Assigned, nil
}

// Pick transitions the status to Picked.
//
// Valid transitions:
//   - Assigned -> Picked (courier collected the package)
//
// Requesting Picked from any other status fails, including Picked itself:
// repeating a transition is rejected, not silently absorbed.
func (s Status) Pick() (Status, error) {
	if s != Assigned {
		return Unknown, errs.NewInvalidTransitionError(s.String(), Picked.String())
	}

	return Picked, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Picked -> Delivered (package handed to the customer)
//
// Delivered is terminal; no further transitions are possible.
func (s Status) Deliver() (Status, error) {
	if s != Picked {
		return Unknown, errs.NewInvalidTransitionError(s.String(), Delivered.String())
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled (shop withdraws an unassigned order)
//
// Orders already handed to a courier cannot be cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewInvalidTransitionError(s.String(), Cancelled.String())
	}

	return Cancelled, nil
}

// ValidateCanHaveCourier validates the consistency between order status and
// courier assignment when restoring from storage.
//
// Rules:
//   - Pending and Cancelled orders must not have a courier assigned
//   - Assigned, Picked and Delivered orders must have a courier assigned
func (s Status) ValidateCanHaveCourier(courier bool) error {
	requiresCourier := s == Assigned || s == Picked || s == Delivered

	if courier && !requiresCourier {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}

	if !courier && requiresCourier {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	return nil
}
