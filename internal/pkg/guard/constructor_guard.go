// Package guard provides the constructor guard used by value objects and
// aggregates to detect instances that bypassed their constructors.
//
// The zero value of a guarded type is invalid: embedding a ConstructorGuard
// and setting it via NewConstructorGuard inside the constructor makes
// Validate fail for any instance created with a struct literal or left at
// its zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by Validate when
// no custom error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed.
// Embed it as a private field and assign NewConstructorGuard() inside the
// constructor; the zero value fails Validate.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard creates a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil for a properly constructed guard.
// For a zero-value guard it returns notConstructedErr, or
// ErrDefaultConstructorGuard when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}

	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}

	return notConstructedErr
}
