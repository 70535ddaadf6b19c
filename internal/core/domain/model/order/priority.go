package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Priority is the urgency class a shop attaches to an order.
//
// Priority is captured, validated and persisted, but the dispatch logic does
// not consult it: nearest-courier selection ignores urgency. It is inert
// metadata until a priority-aware scheduling policy exists.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	// PriorityNormal is the default priority.
	PriorityNormal

	// PriorityUrgent marks an order the shop wants handled quickly.
	PriorityUrgent

	// PriorityExpress marks the highest urgency class.
	PriorityExpress
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityNormal:  "normal",
		PriorityUrgent:  "urgent",
		PriorityExpress: "express",
	}
}

// PriorityFromString parses a priority from its wire representation.
// The empty string maps to PriorityNormal, matching the creation default.
func PriorityFromString(s string) (Priority, error) {
	if s == "" {
		return PriorityNormal, nil
	}
	for priority, str := range getPriorityStrings() {
		if str == s {
			return priority, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"priority is invalid", fmt.Errorf("%q is not a valid priority", s))
}

// Validate checks if the Priority value is valid.
func (p Priority) Validate() error {
	if _, ok := getPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"priority is invalid", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String returns "normal", "urgent" or "express", or "unknown" for invalid values.
func (p Priority) String() string {
	if s, ok := getPriorityStrings()[p]; ok {
		return s
	}
	return "unknown"
}
