package kernel

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when using an improperly initialized Actor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError(
	"actor must be created via NewActor constructor")

// Role identifies the kind of authenticated party acting on the system.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleShop is a shop owner: creates orders and may cancel pending ones.
	RoleShop

	// RoleCourier is a courier: picks up and delivers assigned orders.
	RoleCourier
)

// getRoleStrings returns the wire/storage representation of each role.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleShop:    "shop",
		RoleCourier: "courier",
	}
}

// RoleFromString parses a role from its wire representation.
// Accepts "shop" (and the legacy alias "store") and "courier".
func RoleFromString(s string) (Role, error) {
	switch s {
	case "shop", "store":
		return RoleShop, nil
	case "courier":
		return RoleCourier, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
			"role is invalid", fmt.Errorf("%q is not a valid role", s))
	}
}

// Validate checks if the Role value is valid.
// RoleUnknown and any other values are invalid.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns "shop" or "courier" for valid roles, "unknown" otherwise.
// Implements the fmt.Stringer interface and is safe on any Role value.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// Actor is the authenticated party attached to every mutating request.
// Authentication middleware verifies the caller and supplies the actor; the
// domain trusts the pair and only checks rights against the target entity.
//
// Actor is an immutable value object; the zero value is invalid.
type Actor struct { //nolint:recvcheck //using for validation
	id    UUID
	role  Role
	guard guard.ConstructorGuard
}

// NewActor creates an Actor from a validated identity and role.
func NewActor(id UUID, role Role) (Actor, error) {
	actor := Actor{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(actor.setID(id), actor.setRole(role)); err != nil {
		return Actor{}, err
	}

	return actor, nil
}

// Validate checks if the Actor was properly constructed.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the actor's identity.
func (a Actor) ID() UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// IsShop reports whether the actor acts as a shop owner.
func (a Actor) IsShop() bool {
	return a.role == RoleShop
}

// IsCourier reports whether the actor acts as a courier.
func (a Actor) IsCourier() bool {
	return a.role == RoleCourier
}

func (a *Actor) setID(id UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	a.id = id
	return nil
}

func (a *Actor) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	a.role = role
	return nil
}
