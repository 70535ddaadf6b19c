// Package courier provides domain entities and business logic for courier
// management in the dispatch system. It implements the Courier aggregate root
// with identity, credentials, position and availability.
//
// The package includes:
//   - Courier: The aggregate root managing identity, position and availability
//   - Status: The presence state shown to shops (offline, available, busy)
//
// Key business rules:
//   - Couriers must have a valid identifier, name, email and password hash
//   - Only active couriers are eligible for order assignment
//   - Activation stamps a went-active timestamp so active time is computed
//     server-side rather than trusted from the client
//   - Position updates go through MoveTo with coordinate validation
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package courier
